// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries read straight from the database and return read models; they never
// take row locks.
package queries

import (
	"errors"
	"math"
	"strings"

	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// DefaultPlacesLimit is the page size used when the caller sets none.
const DefaultPlacesLimit = 100

var ErrGetPlacesQueryIsNotConstructed = errors.New(
	"GetPlacesQuery must be created via NewGetPlacesQuery constructor",
)

// GetPlacesQuery lists places, optionally filtered by city name.
//
// Example:
//
//	query, err := NewGetPlacesQuery("par", DefaultPlacesLimit)
//	if err != nil {
//	    return err
//	}
//	views, err := handler.Handle(ctx, query)
type GetPlacesQuery struct {
	cityName string
	limit    int
	guard    guard.ConstructorGuard
}

// NewGetPlacesQuery creates the query. An empty cityName matches every place;
// otherwise a place matches when any of its cities contains cityName, ignoring
// case.
func NewGetPlacesQuery(cityName string, limit int) (GetPlacesQuery, error) {
	if limit < 1 {
		return GetPlacesQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, math.MaxInt32)
	}
	return GetPlacesQuery{
		cityName: strings.TrimSpace(cityName),
		limit:    limit,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetPlacesQuery) Validate() error {
	return q.guard.Validate(ErrGetPlacesQueryIsNotConstructed)
}

func (q GetPlacesQuery) CityName() string { return q.cityName }
func (q GetPlacesQuery) Limit() int       { return q.limit }
