package catalog

import (
	"context"
	"strings"

	"bookcatalog/internal/fault"
	"bookcatalog/internal/pagination"
)

// Service provides catalog business logic on top of a Repository.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Search(ctx context.Context, q string, req pagination.Request) (pagination.Page[Book], error) {
	return s.repo.Search(ctx, q, req.Normalize())
}

func (s *Service) FindByID(ctx context.Context, id int64) (Book, error) {
	return s.repo.FindByID(ctx, id)
}

// Add validates the input before touching storage: title and author must be
// non-blank after trimming and the publication year positive.
func (s *Service) Add(ctx context.Context, title, author string, pubYear int) (Book, error) {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)

	if title == "" {
		return Book{}, fault.Invalid("title must not be blank")
	}
	if author == "" {
		return Book{}, fault.Invalid("author must not be blank")
	}
	if pubYear <= 0 {
		return Book{}, fault.Invalid("pub_year must be positive")
	}

	return s.repo.Add(ctx, title, author, pubYear)
}
