package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bookshelf/internal/model"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name  string
		books []model.Book
		want  Stats
	}{
		{
			name:  "empty shelf",
			books: nil,
			want:  Stats{TotalBooks: 0, AverageRating: 0, AnnotatedCount: 0},
		},
		{
			name: "average rounds to one decimal",
			books: []model.Book{
				{Rating: 5},
				{Rating: 3},
				{Rating: 4},
			},
			want: Stats{TotalBooks: 3, AverageRating: 4.0, AnnotatedCount: 0},
		},
		{
			name: "uneven average",
			books: []model.Book{
				{Rating: 5},
				{Rating: 4},
				{Rating: 4},
			},
			want: Stats{TotalBooks: 3, AverageRating: 4.3, AnnotatedCount: 0},
		},
		{
			name: "blank notes do not count as annotated",
			books: []model.Book{
				{Rating: 5, Notes: "a modern classic"},
				{Rating: 3, Notes: "   "},
				{Rating: 4, Notes: "reread in winter"},
			},
			want: Stats{TotalBooks: 3, AverageRating: 4.0, AnnotatedCount: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summarize(tt.books))
		})
	}
}
