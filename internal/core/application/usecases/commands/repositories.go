// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"freight/internal/core/ports"
)

type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	PlaceRepoFactory interface {
		PlaceRepository() ports.PlaceRepository
	}

	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	GeoRepoFactory interface {
		GeoRepository() ports.GeoRepository
	}

	TransportRequestRepoFactory interface {
		TransportRequestRepository() ports.TransportRequestRepository
	}

	// UoW spans every aggregate a fulfillment run touches.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   origin, err := uow.PlaceRepository().GetForUpdate(ctx, id)
	//   // ... plan and execute with uow.VehicleRepository()
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		PlaceRepoFactory
		VehicleRepoFactory
		GeoRepoFactory
		TransportRequestRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
