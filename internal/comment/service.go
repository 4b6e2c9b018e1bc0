package comment

import (
	"context"
	"strings"
	"time"

	"bookcatalog/internal/fault"
	"bookcatalog/internal/pagination"
)

// Service provides comment business logic, including the rule that a comment
// may only be deleted within 24 hours of its creation.
type Service struct {
	repo  Repository
	books BookDirectory
	now   func() time.Time
}

func NewService(repo Repository, books BookDirectory) *Service {
	return &Service{repo: repo, books: books, now: time.Now}
}

func (s *Service) List(ctx context.Context, bookID int64, author, text string, req pagination.Request) (pagination.Page[Comment], error) {
	return s.repo.List(ctx, bookID, author, text, req.Normalize())
}

func (s *Service) FindByID(ctx context.Context, bookID, commentID int64) (Comment, error) {
	return s.repo.FindByID(ctx, bookID, commentID)
}

// Add validates author and text, checks that the book exists, then inserts.
// The creation timestamp is assigned by storage, not the client.
func (s *Service) Add(ctx context.Context, bookID int64, author, text string) (Comment, error) {
	author = strings.TrimSpace(author)
	text = strings.TrimSpace(text)

	if author == "" {
		return Comment{}, fault.Invalid("author must not be blank")
	}
	if text == "" {
		return Comment{}, fault.Invalid("text must not be blank")
	}

	exists, err := s.books.Exists(ctx, bookID)
	if err != nil {
		return Comment{}, err
	}
	if !exists {
		return Comment{}, fault.Invalid("book does not exist")
	}

	return s.repo.Add(ctx, bookID, author, text)
}

// Delete removes a comment only while its deletion window is open. The check
// and the delete are not atomic: a concurrent delete of the same comment
// simply makes the loser see NotFound, which is acceptable.
func (s *Service) Delete(ctx context.Context, bookID, commentID int64) error {
	c, err := s.repo.FindByID(ctx, bookID, commentID)
	if err != nil {
		return err
	}

	// Guard against malformed records; not expected in normal operation.
	if c.CreatedAt.IsZero() {
		return fault.Precondition("time of creation is unknown")
	}

	elapsed := s.now().UTC().Sub(c.CreatedAt.UTC()).Truncate(time.Second)
	if elapsed > DeletionWindow {
		return fault.Precondition("comment older than 24 hours, cannot delete")
	}

	return s.repo.Delete(ctx, bookID, commentID)
}
