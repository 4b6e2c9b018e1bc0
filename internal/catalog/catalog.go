package catalog

// Book represents a book in the catalog. The ID is assigned by the database
// on insert; books are never updated or deleted in the current scope.
type Book struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Author  string `json:"author"`
	PubYear int    `json:"pub_year"`
}
