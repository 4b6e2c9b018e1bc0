package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortColumn(t *testing.T) {
	assert.Equal(t, "title", sortColumn("title"))
	assert.Equal(t, "author", sortColumn("author"))
	assert.Equal(t, "pub_year", sortColumn("pub_year"))
	assert.Equal(t, "pub_year", sortColumn("year"))

	// Unknown names fall back to the stable default instead of reaching SQL.
	assert.Equal(t, "id", sortColumn(""))
	assert.Equal(t, "id", sortColumn("created_at; DROP TABLE books"))
}

func TestSortDirection(t *testing.T) {
	assert.Equal(t, "ASC", sortDirection(false))
	assert.Equal(t, "DESC", sortDirection(true))
}
