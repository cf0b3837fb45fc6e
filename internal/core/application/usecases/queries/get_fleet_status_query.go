package queries

import (
	"errors"

	"freight/internal/core/domain/model/fleet"
	"freight/internal/pkg/guard"
)

var ErrGetFleetStatusQueryIsNotConstructed = errors.New(
	"GetFleetStatusQuery must be created via NewGetFleetStatusQuery constructor",
)

// GetFleetStatusQuery summarizes the fleet per vehicle type.
type GetFleetStatusQuery struct {
	guard guard.ConstructorGuard
}

func NewGetFleetStatusQuery() GetFleetStatusQuery {
	return GetFleetStatusQuery{guard: guard.NewConstructorGuard()}
}

func (q GetFleetStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetFleetStatusQueryIsNotConstructed)
}

// FleetTypeStatus counts the vehicles of one type. Busy vehicles are the ones
// carrying cargo; outside a fulfillment run there are none.
type FleetTypeStatus struct {
	Type          fleet.Type
	Idle          int
	Busy          int
	TotalCapacity int
}
