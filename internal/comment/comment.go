package comment

import "time"

// DeletionWindow is how long after creation a comment may still be deleted.
const DeletionWindow = 24 * time.Hour

// Comment is a reader comment scoped to a single book. CreatedAt is assigned
// by the database at insert time and drives the deletion window.
type Comment struct {
	ID        int64     `json:"id"`
	BookID    int64     `json:"book_id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
