package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/place"
)

// PlaceViewCache keeps formatted place views. Places and their city links do
// not change during fulfillment, so entries stay valid until they expire.
type PlaceViewCache interface {
	// Get reports false on a miss.
	Get(ctx context.Context, placeID kernel.UUID) (place.View, bool, error)

	Set(ctx context.Context, placeID kernel.UUID, view place.View) error
}
