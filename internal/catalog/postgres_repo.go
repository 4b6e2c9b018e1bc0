package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookcatalog/internal/fault"
	"bookcatalog/internal/pagination"
)

// PostgresRepo implements Repository against the books table.
type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

// sortColumn maps an allowlisted sort name to its column. Unknown names fall
// back to id, which keeps paging stable under concurrent inserts.
func sortColumn(sort string) string {
	switch sort {
	case "title":
		return "title"
	case "author":
		return "author"
	case "pub_year", "year":
		return "pub_year"
	default:
		return "id"
	}
}

func sortDirection(desc bool) string {
	if desc {
		return "DESC"
	}
	return "ASC"
}

func (r *PostgresRepo) Search(ctx context.Context, q string, req pagination.Request) (pagination.Page[Book], error) {
	clauses := []string{"1=1"}
	args := []any{}
	argn := 1

	if q != "" {
		clauses = append(clauses, fmt.Sprintf("(title ILIKE $%d OR author ILIKE $%d)", argn, argn+1))
		pattern := "%" + q + "%"
		args = append(args, pattern, pattern)
		argn += 2
	}

	// Count and data share the same WHERE so total never drifts from items.
	where := "WHERE " + strings.Join(clauses, " AND ")

	countSQL := "SELECT COUNT(*) FROM books " + where
	var total int
	if err := r.db.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return pagination.Page[Book]{}, fault.Storage(fmt.Errorf("count books: %w", err))
	}

	dataSQL := fmt.Sprintf(`
		SELECT id, title, author, pub_year
		FROM books
		%s
		ORDER BY %s %s, id ASC
		LIMIT $%d OFFSET $%d`,
		where, sortColumn(req.Sort), sortDirection(req.Desc), argn, argn+1)

	args = append(args, req.Limit(), req.Offset())
	rows, err := r.db.Query(ctx, dataSQL, args...)
	if err != nil {
		return pagination.Page[Book]{}, fault.Storage(fmt.Errorf("list books: %w", err))
	}
	defer rows.Close()

	var items []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.PubYear); err != nil {
			return pagination.Page[Book]{}, fault.Storage(fmt.Errorf("scan book: %w", err))
		}
		items = append(items, b)
	}
	if err := rows.Err(); err != nil {
		return pagination.Page[Book]{}, fault.Storage(fmt.Errorf("list books: %w", err))
	}

	return pagination.Page[Book]{Items: items, Total: total}, nil
}

func (r *PostgresRepo) FindByID(ctx context.Context, id int64) (Book, error) {
	const query = `
		SELECT id, title, author, pub_year
		FROM books
		WHERE id = $1`

	var b Book
	err := r.db.QueryRow(ctx, query, id).Scan(&b.ID, &b.Title, &b.Author, &b.PubYear)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, fault.NotFound("book not found")
		}
		return Book{}, fault.Storage(fmt.Errorf("find book %d: %w", id, err))
	}
	return b, nil
}

func (r *PostgresRepo) Add(ctx context.Context, title, author string, pubYear int) (Book, error) {
	const query = `
		INSERT INTO books (title, author, pub_year)
		VALUES ($1, $2, $3)
		RETURNING id`

	b := Book{Title: title, Author: author, PubYear: pubYear}
	if err := r.db.QueryRow(ctx, query, title, author, pubYear).Scan(&b.ID); err != nil {
		return Book{}, fault.Storage(fmt.Errorf("insert book: %w", err))
	}
	return b, nil
}

func (r *PostgresRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM books WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fault.Storage(fmt.Errorf("book exists %d: %w", id, err))
	}
	return exists, nil
}
