package domain

import (
	"fmt"
	"time"
)

const (
	DefaultLimit     = 10000
	SortAsc          = "asc"
	SortDesc         = "desc"
	DefaultSortField = "createdAt"
)

// sortColumns maps the accepted sorting fields to their columns.
var sortColumns = map[string]string{
	"id":        "id",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

// Query is the common list-query shape: optional creation-date range,
// paging and sorting. A date range only applies when both bounds are set:
// createdAt > StartDate AND createdAt <= EndDate.
type Query struct {
	StartDate        *time.Time
	EndDate          *time.Time
	Limit            int
	Offset           int
	SortingField     string
	SortingDirection string
}

// DefaultQuery mirrors the server-side defaults applied when a client
// omits paging parameters.
func DefaultQuery() Query {
	return Query{
		Limit:            DefaultLimit,
		Offset:           0,
		SortingField:     DefaultSortField,
		SortingDirection: SortDesc,
	}
}

// Validate rejects values that parsed cleanly but are semantically
// invalid. These surface as 422, distinct from binding failures (400).
func (q Query) Validate() error {
	if q.Limit < 0 {
		return ErrUnprocessable("Limit must not be negative.")
	}
	if q.Offset < 0 {
		return ErrUnprocessable("Offset must not be negative.")
	}
	if _, ok := sortColumns[q.SortingField]; !ok {
		return ErrUnprocessable(fmt.Sprintf("Unknown sorting field %q.", q.SortingField))
	}
	if q.SortingDirection != SortAsc && q.SortingDirection != SortDesc {
		return ErrUnprocessable(fmt.Sprintf("Unknown sorting direction %q.", q.SortingDirection))
	}
	if q.StartDate != nil && q.EndDate != nil && q.StartDate.After(*q.EndDate) {
		return ErrUnprocessable("Start date must be before end date.")
	}
	return nil
}

// OrderClause renders the validated sort as an SQL order-by expression.
func (q Query) OrderClause() string {
	return sortColumns[q.SortingField] + " " + q.SortingDirection
}

// HasRange reports whether both date bounds are present.
func (q Query) HasRange() bool { return q.StartDate != nil && q.EndDate != nil }

// Page is the list envelope. The reported limit is clamped to the total
// so clients never see a limit larger than the matching row count.
type Page[T any] struct {
	Total  int64 `json:"total"`
	Limit  int64 `json:"limit"`
	Offset int   `json:"offset"`
	Data   []T   `json:"data"`
}

func NewPage[T any](total int64, q Query, data []T) Page[T] {
	limit := int64(q.Limit)
	if total < limit {
		limit = total
	}
	if data == nil {
		data = []T{}
	}
	return Page[T]{Total: total, Limit: limit, Offset: q.Offset, Data: data}
}
