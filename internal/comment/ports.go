package comment

import (
	"context"

	"bookcatalog/internal/pagination"
)

// Repository defines the contract for comment storage. Every operation is
// scoped to a book: a comment id that exists under a different book is
// treated as not found.
type Repository interface {
	// List returns the book's comments, optionally filtered by author and
	// text substring, oldest first by default.
	List(ctx context.Context, bookID int64, author, text string, req pagination.Request) (pagination.Page[Comment], error)
	// FindByID returns fault.NotFound when the comment is absent or belongs
	// to another book.
	FindByID(ctx context.Context, bookID, commentID int64) (Comment, error)
	// Add persists a new comment with a server-assigned creation timestamp.
	Add(ctx context.Context, bookID int64, author, text string) (Comment, error)
	// Delete removes the comment unconditionally. The 24-hour rule lives in
	// Service, never here.
	Delete(ctx context.Context, bookID, commentID int64) error
}

// BookDirectory is the slice of the catalog the comment store needs for its
// referential check. Satisfied by catalog.PostgresRepo.
type BookDirectory interface {
	Exists(ctx context.Context, id int64) (bool, error)
}
