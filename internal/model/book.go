package model

import "time"

// Book is one tracked read, owned by exactly one user. The (user_id, title)
// index keeps titles unique per shelf at the database level.
type Book struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"not null;uniqueIndex:idx_user_title" json:"user_id"`
	Title     string     `gorm:"size:255;not null;uniqueIndex:idx_user_title" json:"title"`
	Author    string     `gorm:"size:255;not null" json:"author"`
	DateRead  *time.Time `gorm:"type:date" json:"date_read,omitempty"`
	ISBN      string     `gorm:"size:32" json:"isbn"`
	Rating    float64    `gorm:"type:decimal(3,1);not null" json:"rating"`
	Notes     string     `gorm:"type:text" json:"notes"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
