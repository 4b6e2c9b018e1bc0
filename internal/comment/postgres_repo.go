package comment

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

// PostgresRepo implements Repository against the comments table.
type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

// sortColumn maps an allowlisted sort name to its column. The default is
// created_at, so listings read oldest first.
func sortColumn(sort string) string {
	switch sort {
	case "author":
		return "author"
	case "id":
		return "id"
	default:
		return "created_at"
	}
}

func sortDirection(desc bool) string {
	if desc {
		return "DESC"
	}
	return "ASC"
}

func (r *PostgresRepo) List(ctx context.Context, bookID int64, author, text string, req pagination.Request) (pagination.Page[Comment], error) {
	// book_id is always the first clause; comments never leak across books.
	clauses := []string{"book_id = $1"}
	args := []any{bookID}
	argn := 2

	if author != "" {
		clauses = append(clauses, fmt.Sprintf("author ILIKE $%d", argn))
		args = append(args, "%"+author+"%")
		argn++
	}
	if text != "" {
		clauses = append(clauses, fmt.Sprintf("text ILIKE $%d", argn))
		args = append(args, "%"+text+"%")
		argn++
	}

	where := "WHERE " + strings.Join(clauses, " AND ")

	countSQL := "SELECT COUNT(*) FROM comments " + where
	var total int
	if err := r.db.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return pagination.Page[Comment]{}, fault.Storage(fmt.Errorf("count comments: %w", err))
	}

	dataSQL := fmt.Sprintf(`
		SELECT id, book_id, author, text, created_at
		FROM comments
		%s
		ORDER BY %s %s, id ASC
		LIMIT $%d OFFSET $%d`,
		where, sortColumn(req.Sort), sortDirection(req.Desc), argn, argn+1)

	args = append(args, req.Limit(), req.Offset())
	rows, err := r.db.Query(ctx, dataSQL, args...)
	if err != nil {
		return pagination.Page[Comment]{}, fault.Storage(fmt.Errorf("list comments: %w", err))
	}
	defer rows.Close()

	var items []Comment
	for rows.Next() {
		var c Comment
		if err := rows.Scan(&c.ID, &c.BookID, &c.Author, &c.Text, &c.CreatedAt); err != nil {
			return pagination.Page[Comment]{}, fault.Storage(fmt.Errorf("scan comment: %w", err))
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return pagination.Page[Comment]{}, fault.Storage(fmt.Errorf("list comments: %w", err))
	}

	return pagination.Page[Comment]{Items: items, Total: total}, nil
}

func (r *PostgresRepo) FindByID(ctx context.Context, bookID, commentID int64) (Comment, error) {
	const query = `
		SELECT id, book_id, author, text, created_at
		FROM comments
		WHERE id = $1 AND book_id = $2`

	var c Comment
	err := r.db.QueryRow(ctx, query, commentID, bookID).Scan(&c.ID, &c.BookID, &c.Author, &c.Text, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Comment{}, fault.NotFound("comment not found")
		}
		return Comment{}, fault.Storage(fmt.Errorf("find comment %d: %w", commentID, err))
	}
	return c, nil
}

func (r *PostgresRepo) Add(ctx context.Context, bookID int64, author, text string) (Comment, error) {
	const query = `
		INSERT INTO comments (book_id, author, text, created_at)
		VALUES ($1, $2, $3, now())
		RETURNING id, created_at`

	c := Comment{BookID: bookID, Author: author, Text: text}
	if err := r.db.QueryRow(ctx, query, bookID, author, text).Scan(&c.ID, &c.CreatedAt); err != nil {
		return Comment{}, fault.Storage(fmt.Errorf("insert comment: %w", err))
	}
	return c, nil
}

func (r *PostgresRepo) Delete(ctx context.Context, bookID, commentID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1 AND book_id = $2`, commentID, bookID)
	if err != nil {
		return fault.Storage(fmt.Errorf("delete comment %d: %w", commentID, err))
	}
	if tag.RowsAffected() == 0 {
		return fault.NotFound("comment not found")
	}
	return nil
}
