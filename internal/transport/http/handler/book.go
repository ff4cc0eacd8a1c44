package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookshelf/internal/app"
	"bookshelf/internal/transport/http/middleware"
)

type BookHandler struct {
	bookService *app.BookService
}

// BookForm mirrors the HTML form's wire names: "auther" is the author and
// "note" is the rating; "notes" is the free-text field.
type BookForm struct {
	Title  string `form:"title" binding:"required"`
	Auther string `form:"auther" binding:"required"`
	Date   string `form:"date"`
	ISBN   string `form:"isbn"`
	Note   string `form:"note" binding:"required"`
	Notes  string `form:"notes"`
}

type EditBookForm struct {
	ID uint `form:"id" binding:"required,gt=0"`
	BookForm
}

type DeleteBookForm struct {
	ID uint `form:"id" binding:"required,gt=0"`
}

func NewBookHandler(bookService *app.BookService) *BookHandler {
	return &BookHandler{bookService: bookService}
}

// Dashboard renders the shelf with its statistics, best-rated first.
func (h *BookHandler) Dashboard(c *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	books, stats, err := h.bookService.Dashboard(principal.UserID)
	if err != nil {
		log.Printf("load dashboard failed: %v", err)
		c.Redirect(http.StatusFound, "/login")
		return
	}

	c.HTML(http.StatusOK, "main.html", gin.H{
		"user":       principal,
		"books":      books,
		"totalBooks": stats.TotalBooks,
		"avgRating":  stats.AverageRating,
		"notesCount": stats.AnnotatedCount,
	})
}

func (h *BookHandler) Add(c *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	var form BookForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "invalid book form")
		return
	}

	_, err := h.bookService.Add(principal.UserID, bookInput(form))
	if err != nil {
		switch {
		case errors.Is(err, app.ErrTitleExists):
			c.String(http.StatusConflict, "this book you already added it")
		case errors.Is(err, app.ErrInvalidInput):
			c.String(http.StatusBadRequest, "invalid book form")
		default:
			log.Printf("add book failed: %v", err)
			c.Redirect(http.StatusFound, "/main")
		}
		return
	}

	c.Redirect(http.StatusFound, "/main")
}

func (h *BookHandler) Edit(c *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	var form EditBookForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "invalid book form")
		return
	}

	err := h.bookService.Edit(principal.UserID, form.ID, bookInput(form.BookForm))
	if err != nil {
		switch {
		case errors.Is(err, app.ErrBookNotFound):
			c.String(http.StatusNotFound, "book not found")
		case errors.Is(err, app.ErrTitleExists):
			c.String(http.StatusConflict, "this book you already added it")
		case errors.Is(err, app.ErrInvalidInput):
			c.String(http.StatusBadRequest, "invalid book form")
		default:
			log.Printf("edit book failed: %v", err)
			c.Redirect(http.StatusFound, "/main")
		}
		return
	}

	c.Redirect(http.StatusFound, "/main")
}

func (h *BookHandler) Delete(c *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	var form DeleteBookForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "invalid book id")
		return
	}

	if err := h.bookService.Delete(principal.UserID, form.ID); err != nil {
		switch {
		case errors.Is(err, app.ErrBookNotFound):
			c.String(http.StatusNotFound, "book not found")
		case errors.Is(err, app.ErrInvalidInput):
			c.String(http.StatusBadRequest, "invalid book id")
		default:
			log.Printf("delete book failed: %v", err)
			c.Redirect(http.StatusFound, "/main")
		}
		return
	}

	c.Redirect(http.StatusFound, "/main")
}

func bookInput(form BookForm) app.BookInput {
	return app.BookInput{
		Title:    form.Title,
		Author:   form.Auther,
		DateRead: form.Date,
		ISBN:     form.ISBN,
		Rating:   form.Note,
		Notes:    form.Notes,
	}
}
