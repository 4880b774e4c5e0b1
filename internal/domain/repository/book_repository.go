package repository

import (
	"context"

	"bookshelf/internal/domain/entity"
)

// BookRepository defines the interface for book store operations.
// Title is the lookup key throughout; the store guarantees its uniqueness.
type BookRepository interface {
	List(ctx context.Context) ([]entity.Book, error)
	GetByTitle(ctx context.Context, title string) (*entity.Book, error)
	Create(ctx context.Context, b *entity.Book) (string, error)
	UpdateByTitle(ctx context.Context, title string, patch entity.BookPatch) error
	DeleteByTitle(ctx context.Context, title string) error
}
