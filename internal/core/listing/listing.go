// Package listing builds the predicate, order and pagination rules for
// collection queries. It stays SQL-free; the db adapter renders them.
package listing

import "errors"

type Sort string

const (
	SortNone      Sort = ""
	SortAlphaAsc  Sort = "alpha_asc"
	SortAlphaDesc Sort = "alpha_desc"
	SortCreate    Sort = "create"
	SortUpdate    Sort = "update"
)

var ErrUnknownSort = errors.New("unknown sort key")

// ParseSort rejects any non-empty value outside the sort vocabulary. An empty
// value means no explicit order; repositories then fall back to id order so
// pagination stays stable.
func ParseSort(value string) (Sort, error) {
	switch Sort(value) {
	case SortNone, SortAlphaAsc, SortAlphaDesc, SortCreate, SortUpdate:
		return Sort(value), nil
	}
	return SortNone, ErrUnknownSort
}

// StatusScope is the status predicate for a project listing.
type StatusScope int

const (
	ScopeOpen StatusScope = iota
	ScopeClosed
	ScopeAll
)

type Filter struct {
	WithClosed bool
	OnlyClosed bool
	SortBy     Sort
}

// Normalize applies the flag precedence rule: withClosed wins over onlyClosed.
func (f Filter) Normalize() Filter {
	if f.WithClosed {
		f.OnlyClosed = false
	}
	return f
}

// Scope resolves the normalized flags into a status predicate.
func (f Filter) Scope() StatusScope {
	f = f.Normalize()
	switch {
	case f.OnlyClosed:
		return ScopeClosed
	case f.WithClosed:
		return ScopeAll
	default:
		return ScopeOpen
	}
}

const (
	DefaultPage    = 1
	DefaultPerPage = 5
)

// Pagination is a 1-based page window. Zero values fall back to the defaults.
type Pagination struct {
	Page    int
	PerPage int
}

func NewPagination(page, perPage int) Pagination {
	if page < 1 {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	return Pagination{Page: page, PerPage: perPage}
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PerPage
}

func (p Pagination) Limit() int {
	return p.PerPage
}

// Page is one window of a collection plus the totals the client needs to walk
// it. A page past the end carries no records and no error.
type Page[T any] struct {
	Data       []T
	Page       int
	PerPage    int
	Total      int
	TotalPages int
}

func NewPage[T any](data []T, p Pagination, total int) Page[T] {
	if data == nil {
		data = []T{}
	}
	return Page[T]{
		Data:       data,
		Page:       p.Page,
		PerPage:    p.PerPage,
		Total:      total,
		TotalPages: TotalPages(total, p.PerPage),
	}
}

func TotalPages(total, perPage int) int {
	if total <= 0 || perPage < 1 {
		return 0
	}
	return (total + perPage - 1) / perPage
}
