package app

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"bookshelf/internal/model"
)

var (
	ErrTitleExists  = errors.New("title already on shelf")
	ErrBookNotFound = errors.New("book not found")
)

// BookStore is the slice of the book repository the book service needs.
type BookStore interface {
	Create(book *model.Book) error
	ListByUser(userID uint) ([]model.Book, error)
	GetByIDAndUser(bookID, userID uint) (*model.Book, error)
	Update(book *model.Book) (int64, error)
	DeleteByIDAndUser(bookID, userID uint) (int64, error)
}

type BookService struct {
	bookStore BookStore
}

// BookInput carries raw form values; parsing happens here so handlers stay
// thin and every entry path shares the same validation.
type BookInput struct {
	Title    string
	Author   string
	DateRead string
	ISBN     string
	Rating   string
	Notes    string
}

func NewBookService(bookStore BookStore) *BookService {
	return &BookService{bookStore: bookStore}
}

// Dashboard returns the user's shelf sorted by rating plus its statistics.
func (s *BookService) Dashboard(userID uint) ([]model.Book, Stats, error) {
	if userID == 0 {
		return nil, Stats{}, ErrInvalidInput
	}
	books, err := s.bookStore.ListByUser(userID)
	if err != nil {
		return nil, Stats{}, err
	}
	return books, Summarize(books), nil
}

// Add inserts a book for the user. The (user_id, title) unique index is the
// duplicate-title guard, so two concurrent adds cannot both slip through.
func (s *BookService) Add(userID uint, input BookInput) (*model.Book, error) {
	book, err := s.parse(userID, input)
	if err != nil {
		return nil, err
	}
	if err := s.bookStore.Create(book); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrTitleExists
		}
		return nil, err
	}
	return book, nil
}

// Edit overwrites every field of a book the user owns. Editing a book that
// does not exist or belongs to someone else reports not-found either way.
func (s *BookService) Edit(userID, bookID uint, input BookInput) error {
	if bookID == 0 {
		return ErrInvalidInput
	}
	book, err := s.parse(userID, input)
	if err != nil {
		return err
	}
	book.ID = bookID

	rows, err := s.bookStore.Update(book)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrTitleExists
		}
		return err
	}
	if rows == 0 {
		return ErrBookNotFound
	}
	return nil
}

func (s *BookService) Delete(userID, bookID uint) error {
	if userID == 0 || bookID == 0 {
		return ErrInvalidInput
	}
	rows, err := s.bookStore.DeleteByIDAndUser(bookID, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrBookNotFound
	}
	return nil
}

func (s *BookService) parse(userID uint, input BookInput) (*model.Book, error) {
	title := strings.TrimSpace(input.Title)
	author := strings.TrimSpace(input.Author)
	if userID == 0 || title == "" || author == "" {
		return nil, ErrInvalidInput
	}

	rating, err := strconv.ParseFloat(strings.TrimSpace(input.Rating), 64)
	if err != nil {
		return nil, ErrInvalidInput
	}

	var dateRead *time.Time
	if raw := strings.TrimSpace(input.DateRead); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, ErrInvalidInput
		}
		dateRead = &parsed
	}

	return &model.Book{
		UserID:   userID,
		Title:    title,
		Author:   author,
		DateRead: dateRead,
		ISBN:     strings.TrimSpace(input.ISBN),
		Rating:   rating,
		Notes:    input.Notes,
	}, nil
}
