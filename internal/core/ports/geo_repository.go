package ports

import (
	"context"

	"freight/internal/core/domain/model/geo"
	"freight/internal/core/domain/model/kernel"
)

type GeoRepository interface {
	AddNation(ctx context.Context, nation *geo.Nation) error

	AddCity(ctx context.Context, city *geo.City) error

	// GetCities returns the cities found for ids; missing ids are skipped.
	GetCities(ctx context.Context, ids []kernel.UUID) ([]*geo.City, error)

	GetNation(ctx context.Context, id kernel.UUID) (*geo.Nation, error)
}
