package catalog

import (
	"context"

	"bookcatalog/internal/pagination"
)

// Repository defines the contract for book storage.
type Repository interface {
	// Search returns books whose title or author contains q as a
	// case-insensitive substring, or all books when q is empty.
	Search(ctx context.Context, q string, req pagination.Request) (pagination.Page[Book], error)
	// FindByID returns fault.NotFound when no book has the given id.
	FindByID(ctx context.Context, id int64) (Book, error)
	// Add persists a new book and returns it with its assigned id.
	Add(ctx context.Context, title, author string, pubYear int) (Book, error)
	// Exists reports whether a book with the given id is in the catalog.
	Exists(ctx context.Context, id int64) (bool, error)
}
