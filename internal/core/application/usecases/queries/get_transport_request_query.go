package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/place"
	"freight/internal/pkg/guard"
)

var ErrGetTransportRequestQueryIsNotConstructed = errors.New(
	"GetTransportRequestQuery must be created via NewGetTransportRequestQuery constructor",
)

// GetTransportRequestQuery looks up one stored transport request.
type GetTransportRequestQuery struct {
	id    kernel.UUID
	guard guard.ConstructorGuard
}

func NewGetTransportRequestQuery(id kernel.UUID) (GetTransportRequestQuery, error) {
	if err := id.Validate(); err != nil {
		return GetTransportRequestQuery{}, err
	}
	return GetTransportRequestQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetTransportRequestQuery) Validate() error {
	return q.guard.Validate(ErrGetTransportRequestQueryIsNotConstructed)
}

func (q GetTransportRequestQuery) ID() kernel.UUID { return q.id }

// GetTransportRequestQueryResponse is the stored record with both places
// described the same way as in a fulfillment result.
type GetTransportRequestQueryResponse struct {
	ID              kernel.UUID
	From            place.View
	To              place.View
	LoadClass       kernel.LoadClass
	Quantity        int
	Status          string
	RequestedAt     time.Time
	UpdatedAt       time.Time
	VehicleIDs      []kernel.UUID
	TransportMeanID string
}
