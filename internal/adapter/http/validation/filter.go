package validation

import (
	"errors"
	"strconv"

	"github.com/ninniks/ProjectManagement/internal/core/listing"
)

var ErrInvalidFilter = errors.New("invalid filter parameters")

// BuildProjectListQuery turns raw query parameters into a normalized listing
// spec. Unknown sort keys and malformed values are rejected here so the core
// only ever sees validated input.
func BuildProjectListQuery(sortBy, withClosed, onlyClosed, page, perPage string) (listing.Filter, listing.Pagination, error) {
	sort, err := listing.ParseSort(sortBy)
	if err != nil {
		return listing.Filter{}, listing.Pagination{}, ErrInvalidFilter
	}

	withClosedFlag, err := parseBoolParam(withClosed)
	if err != nil {
		return listing.Filter{}, listing.Pagination{}, ErrInvalidFilter
	}

	onlyClosedFlag, err := parseBoolParam(onlyClosed)
	if err != nil {
		return listing.Filter{}, listing.Pagination{}, ErrInvalidFilter
	}

	pagination, err := buildPagination(page, perPage)
	if err != nil {
		return listing.Filter{}, listing.Pagination{}, err
	}

	filter := listing.Filter{
		WithClosed: withClosedFlag,
		OnlyClosed: onlyClosedFlag,
		SortBy:     sort,
	}.Normalize()

	return filter, pagination, nil
}

func BuildTaskListQuery(sortBy, page, perPage string) (listing.Sort, listing.Pagination, error) {
	sort, err := listing.ParseSort(sortBy)
	if err != nil {
		return listing.SortNone, listing.Pagination{}, ErrInvalidFilter
	}

	pagination, err := buildPagination(page, perPage)
	if err != nil {
		return listing.SortNone, listing.Pagination{}, err
	}

	return sort, pagination, nil
}

func buildPagination(page, perPage string) (listing.Pagination, error) {
	pageNum, err := parseIntParam(page, listing.DefaultPage)
	if err != nil {
		return listing.Pagination{}, ErrInvalidFilter
	}

	perPageNum, err := parseIntParam(perPage, listing.DefaultPerPage)
	if err != nil {
		return listing.Pagination{}, ErrInvalidFilter
	}

	return listing.NewPagination(pageNum, perPageNum), nil
}

func parseIntParam(value string, fallback int) (int, error) {
	if value == "" {
		return fallback, nil
	}
	return strconv.Atoi(value)
}

func parseBoolParam(value string) (bool, error) {
	switch value {
	case "", "0", "false":
		return false, nil
	case "1", "true":
		return true, nil
	}
	return false, ErrInvalidFilter
}
