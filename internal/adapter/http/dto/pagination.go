package dto

// Page is the collection envelope: one window of records plus the totals the
// client needs to walk the collection.
type Page[T any] struct {
	Data       []T `json:"data"`
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}
