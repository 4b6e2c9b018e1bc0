// Package pagination carries page/size/sort intent into the stores and the
// page-result shape back out of them.
package pagination

import "strconv"

const (
	// MaxSize caps the page size a caller may request.
	MaxSize = 100
	// DefaultSize is used when the caller supplies no usable size.
	DefaultSize = 20
)

// Request describes one page of an ordered result set. Page is 0-based.
// Sort names a column from the store's allowlist; unknown names fall back to
// the store's default order (primary key ascending) rather than failing.
type Request struct {
	Page int
	Size int
	Sort string
	Desc bool
}

// Normalize clamps out-of-range values instead of rejecting them. Callers
// pass unchecked client input straight through, so a negative page becomes 0
// and a size outside [1, MaxSize] becomes the default.
func (r Request) Normalize() Request {
	if r.Page < 0 {
		r.Page = 0
	}
	if r.Size <= 0 || r.Size > MaxSize {
		r.Size = DefaultSize
	}
	return r
}

// Limit returns the SQL LIMIT value.
func (r Request) Limit() int { return r.Size }

// Offset returns the SQL OFFSET value for the 0-based page index.
func (r Request) Offset() int { return r.Page * r.Size }

// Page is one bounded slice of an ordered result set plus the total number
// of items matching the same predicate. Total is computed over the filtered
// set, never the whole table.
type Page[T any] struct {
	Items []T
	Total int
}

// TotalPages returns how many pages of the given size cover Total items.
func (p Page[T]) TotalPages(size int) int {
	if size <= 0 {
		return 0
	}
	return (p.Total + size - 1) / size
}

// FromQuery builds a normalized Request from raw query-string values.
func FromQuery(page, size, sort, desc string) Request {
	p, _ := strconv.Atoi(page)
	s, _ := strconv.Atoi(size)
	return Request{
		Page: p,
		Size: s,
		Sort: sort,
		Desc: desc == "true",
	}.Normalize()
}
