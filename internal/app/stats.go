package app

import (
	"math"
	"strings"

	"bookshelf/internal/model"
)

// Stats are the derived numbers shown on the dashboard.
type Stats struct {
	TotalBooks     int     `json:"total_books"`
	AverageRating  float64 `json:"average_rating"`
	AnnotatedCount int     `json:"annotated_count"`
}

// Summarize computes shelf statistics. Average rating is rounded to one
// decimal and is 0 for an empty shelf.
func Summarize(books []model.Book) Stats {
	stats := Stats{TotalBooks: len(books)}
	if len(books) == 0 {
		return stats
	}

	var sum float64
	for _, book := range books {
		sum += book.Rating
		if strings.TrimSpace(book.Notes) != "" {
			stats.AnnotatedCount++
		}
	}
	stats.AverageRating = math.Round(sum/float64(len(books))*10) / 10
	return stats
}
