package ports

import (
	"context"

	"freight/internal/core/domain/model/fleet"
	"freight/internal/core/domain/model/kernel"
)

// IdleVehicleQuery selects the single best idle vehicle for an allocation
// step. Candidates are ranked by the position of their type in Types, then by
// how close their capacity is to Remaining, then by id.
type IdleVehicleQuery struct {
	Types []fleet.Type
	// At restricts the search to one place; nil searches the whole fleet.
	At        *kernel.Location
	Exclude   []kernel.UUID
	Remaining int
}

type VehicleRepository interface {
	Add(ctx context.Context, aggregate *fleet.Vehicle) error

	Update(ctx context.Context, aggregate *fleet.Vehicle) error

	Get(ctx context.Context, id kernel.UUID) (*fleet.Vehicle, error)

	// FindIdle returns the best match locked for the surrounding transaction.
	// Rows locked by other transactions are skipped. When nothing matches it
	// returns an errs.ObjectNotFoundError.
	FindIdle(ctx context.Context, query IdleVehicleQuery) (*fleet.Vehicle, error)
}
