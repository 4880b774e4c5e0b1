package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"bookshelf/internal/application"
	"bookshelf/internal/domain/entity"
	"bookshelf/pkg/helpers"
	"bookshelf/pkg/response"
	"bookshelf/pkg/validation"
)

// BookHandler serves the catalog CRUD endpoints. All routes here sit behind
// the auth middleware.
type BookHandler struct {
	Svc    *application.BookService
	Logger *logrus.Logger
}

func NewBookHandler(svc *application.BookService, logger *logrus.Logger) *BookHandler {
	return &BookHandler{Svc: svc, Logger: logger}
}

type addBookRequest struct {
	Title  string `json:"title" binding:"required"`
	Author string `json:"author" binding:"required"`
	Year   int    `json:"year"`
	Cover  string `json:"cover"`
	URL    string `json:"url"`
}

type deleteBookRequest struct {
	Title string `json:"title" binding:"required"`
}

// List handles GET /books.
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.Svc.List(c.Request.Context())
	if err != nil {
		helpers.LogError(h.Logger, "list books failed", err, nil)
		response.Error(c, http.StatusInternalServerError, "Error fetching books")
		return
	}
	response.Raw(c, http.StatusOK, books)
}

// Get handles GET /getbook?title=.
func (h *BookHandler) Get(c *gin.Context) {
	title := c.Query("title")
	if title == "" {
		response.Error(c, http.StatusBadRequest, "Title is required")
		return
	}
	b, err := h.Svc.Get(c.Request.Context(), title)
	switch {
	case errors.Is(err, application.ErrBookNotFound):
		response.Error(c, http.StatusNotFound, "Book not found")
	case err != nil:
		helpers.LogError(h.Logger, "get book failed", err, logrus.Fields{"title": title})
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
	default:
		response.Raw(c, http.StatusOK, b)
	}
}

// Add handles POST /addbook.
func (h *BookHandler) Add(c *gin.Context) {
	var req addBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorDetails(c, http.StatusBadRequest, "Title and author are required", validation.ToDetails(err))
		return
	}

	book := &entity.Book{
		Title:  req.Title,
		Author: req.Author,
		Year:   req.Year,
		Cover:  req.Cover,
		URL:    req.URL,
	}
	id, err := h.Svc.Add(c.Request.Context(), book)
	switch {
	case errors.Is(err, application.ErrBookExists):
		response.Error(c, http.StatusBadRequest, "Book already exists")
	case err != nil:
		helpers.LogError(h.Logger, "add book failed", err, logrus.Fields{"title": req.Title})
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
	default:
		response.Success(c, "Book added successfully", gin.H{"id": id})
	}
}

// Update handles PUT /updatebook/:title.
func (h *BookHandler) Update(c *gin.Context) {
	title := c.Param("title")
	var patch entity.BookPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.ErrorDetails(c, http.StatusBadRequest, "Invalid payload", validation.ToDetails(err))
		return
	}

	err := h.Svc.Update(c.Request.Context(), title, patch)
	switch {
	case errors.Is(err, application.ErrBookNotFound):
		response.Error(c, http.StatusNotFound, "Book not found")
	case errors.Is(err, application.ErrBookExists):
		response.Error(c, http.StatusBadRequest, "Book already exists")
	case err != nil:
		helpers.LogError(h.Logger, "update book failed", err, logrus.Fields{"title": title})
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
	default:
		response.Success(c, "Book updated successfully", nil)
	}
}

// Delete handles DELETE /deletebook with the title in the request body.
func (h *BookHandler) Delete(c *gin.Context) {
	var req deleteBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorDetails(c, http.StatusBadRequest, "Title is required", validation.ToDetails(err))
		return
	}

	err := h.Svc.Delete(c.Request.Context(), req.Title)
	switch {
	case errors.Is(err, application.ErrBookNotFound):
		response.Error(c, http.StatusNotFound, "Book not found")
	case err != nil:
		helpers.LogError(h.Logger, "delete book failed", err, logrus.Fields{"title": req.Title})
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
	default:
		response.Success(c, "Book deleted successfully", nil)
	}
}

// Search handles GET /searchbooks?q=. Returns an empty list when the search
// index is not configured.
func (h *BookHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error(c, http.StatusBadRequest, "Query is required")
		return
	}
	hits, err := h.Svc.Search(c.Request.Context(), q, 10)
	if err != nil {
		helpers.LogError(h.Logger, "search books failed", err, logrus.Fields{"q": q})
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}
	response.Raw(c, http.StatusOK, hits)
}
