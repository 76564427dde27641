// Package queries contains read-only operations over the order store.
// Queries never mutate state and always return records already stripped of
// sensitive fields by the store.
package queries

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"pizzeria/internal/core/domain/model/order"
)

// ErrInvalidSinceExpression is returned for malformed "last" filter
// expressions such as "90x" or "m5".
var ErrInvalidSinceExpression = errors.New("since expression must look like '60m' or '2h'")

var sinceExpression = regexp.MustCompile(`^(\d+)([mh])$`)

// GetOrdersQuery lists orders matching a set of optional filters.
// All filters combine with logical AND.
type GetOrdersQuery struct {
	// UserID restricts results to one customer's orders.
	UserID string

	// Statuses restricts results to the given statuses.
	Statuses []order.Status

	// Since restricts results to orders created within this duration.
	Since time.Duration
}

// NewGetOrdersQuery creates an unfiltered order listing query.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{}
}

// ParseStatuses sets the status filter from comma-separated wire values,
// e.g. "pending,in-preparation".
func (q *GetOrdersQuery) ParseStatuses(values []string) error {
	statuses := make([]order.Status, 0, len(values))
	for _, v := range values {
		status, err := order.StatusFromString(v)
		if err != nil {
			return err
		}
		statuses = append(statuses, status)
	}
	q.Statuses = statuses
	return nil
}

// ParseSince sets the creation-window filter from a compact duration
// expression: a positive integer followed by 'm' (minutes) or 'h' (hours).
func (q *GetOrdersQuery) ParseSince(expr string) error {
	match := sinceExpression.FindStringSubmatch(expr)
	if match == nil {
		return fmt.Errorf("%w: %q", ErrInvalidSinceExpression, expr)
	}

	value, err := strconv.Atoi(match[1])
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidSinceExpression, expr)
	}

	switch match[2] {
	case "m":
		q.Since = time.Duration(value) * time.Minute
	case "h":
		q.Since = time.Duration(value) * time.Hour
	}
	return nil
}
