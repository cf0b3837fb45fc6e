package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/place"
)

type PlaceRepository interface {
	Add(ctx context.Context, aggregate *place.Place) error

	// Update writes back the storage ledger of a hub and records any new
	// deliveries of a Destination.
	Update(ctx context.Context, aggregate *place.Place) error

	Get(ctx context.Context, id kernel.UUID) (*place.Place, error)

	// GetForUpdate loads the place and holds a row lock on it until the
	// surrounding transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*place.Place, error)
}
