package ports

import (
	"context"
)

type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

type UnitOfWork interface {
	Begin(ctx context.Context) error

	Commit(ctx context.Context) error

	Rollback(ctx context.Context) error

	PlaceRepository() PlaceRepository

	VehicleRepository() VehicleRepository

	GeoRepository() GeoRepository

	TransportRequestRepository() TransportRequestRepository
}
