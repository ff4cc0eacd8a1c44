package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"bookshelf/internal/model"
)

type BookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) *BookRepository {
	return &BookRepository{db: db}
}

func (r *BookRepository) Create(book *model.Book) error {
	if err := r.db.Create(book).Error; err != nil {
		return fmt.Errorf("create book failed: %w", err)
	}
	return nil
}

func (r *BookRepository) ListByUser(userID uint) ([]model.Book, error) {
	var books []model.Book
	if err := r.db.Where("user_id = ?", userID).Order("rating DESC").Find(&books).Error; err != nil {
		return nil, fmt.Errorf("list books failed: %w", err)
	}
	return books, nil
}

func (r *BookRepository) GetByIDAndUser(bookID, userID uint) (*model.Book, error) {
	var book model.Book
	if err := r.db.Where("id = ? AND user_id = ?", bookID, userID).First(&book).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get book failed: %w", err)
	}
	return &book, nil
}

// Update overwrites every mutable field of a book the user owns. Returns the
// number of rows touched so callers can distinguish not-owned from updated.
func (r *BookRepository) Update(book *model.Book) (int64, error) {
	result := r.db.Model(&model.Book{}).
		Where("id = ? AND user_id = ?", book.ID, book.UserID).
		Updates(map[string]interface{}{
			"title":     book.Title,
			"author":    book.Author,
			"date_read": book.DateRead,
			"isbn":      book.ISBN,
			"rating":    book.Rating,
			"notes":     book.Notes,
		})
	if result.Error != nil {
		return 0, fmt.Errorf("update book failed: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *BookRepository) DeleteByIDAndUser(bookID, userID uint) (int64, error) {
	result := r.db.Where("id = ? AND user_id = ?", bookID, userID).Delete(&model.Book{})
	if result.Error != nil {
		return 0, fmt.Errorf("delete book failed: %w", result.Error)
	}
	return result.RowsAffected, nil
}
