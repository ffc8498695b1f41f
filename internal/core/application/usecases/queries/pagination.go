// Package queries contains read-only operations over the relational store.
// Queries bypass the domain aggregates and read projection rows directly,
// the read side of the CQRS split.
package queries

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// Pagination is a page/size pair shared by every list query. Zero values
// are normalized to the first page with the default size.
type Pagination struct {
	page     int
	pageSize int
}

// NewPagination normalizes the requested page and size.
func NewPagination(page, pageSize int) Pagination {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return Pagination{page: page, pageSize: pageSize}
}

// Page returns the 1-based page number.
func (p Pagination) Page() int { return p.page }

// PageSize returns the page size.
func (p Pagination) PageSize() int { return p.pageSize }

// Limit returns the SQL LIMIT value.
func (p Pagination) Limit() int { return p.pageSize }

// Offset returns the SQL OFFSET value.
func (p Pagination) Offset() int { return (p.page - 1) * p.pageSize }
