package queries

import (
	"errors"
	"fmt"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// ErrListOrdersQueryIsNotConstructed is returned when a ListOrdersQuery was
// not created via its constructor.
var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersFilter carries the optional filter criteria of a ListOrdersQuery.
// Zero values mean "not filtered by this field".
type ListOrdersFilter struct {
	CustomerName string
	Status       string
	OrderID      int64
	ProductName  string
}

// ListOrdersQuery retrieves a page of orders matching a set of optional
// filters. All filters combine with AND.
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	filter   ListOrdersFilter
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for a filtered, paginated order listing.
// page and pageSize must both be positive.
func NewListOrdersQuery(filter ListOrdersFilter, page int, pageSize int) (ListOrdersQuery, error) {
	query := ListOrdersQuery{
		filter: filter,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setPage(page),
		query.setPageSize(pageSize),
	); err != nil {
		return ListOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Filter returns the filter criteria.
func (q ListOrdersQuery) Filter() ListOrdersFilter {
	return q.filter
}

// Page returns the requested page number, starting at 1.
func (q ListOrdersQuery) Page() int {
	return q.page
}

// PageSize returns the number of orders per page.
func (q ListOrdersQuery) PageSize() int {
	return q.pageSize
}

func (q *ListOrdersQuery) setPage(page int) error {
	if page <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("page",
			fmt.Errorf("%d is not a positive integer", page))
	}
	q.page = page
	return nil
}

func (q *ListOrdersQuery) setPageSize(pageSize int) error {
	if pageSize <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("page_size",
			fmt.Errorf("%d is not a positive integer", pageSize))
	}
	q.pageSize = pageSize
	return nil
}
