package seed

import (
	"context"
	"fmt"
	"log/slog"

	"freight/internal/core/ports"
)

// Load writes ds in a single unit of work. It is meant for an empty schema;
// loading over existing rows fails on the first duplicate key.
func Load(ctx context.Context, uowFactory ports.UnitOfWorkFactory, ds Dataset, logger *slog.Logger) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	geoRepo := uow.GeoRepository()
	for _, n := range ds.Nations {
		if err := geoRepo.AddNation(ctx, n); err != nil {
			return fmt.Errorf("add nation %s: %w", n.Name(), err)
		}
	}
	for _, c := range ds.Cities {
		if err := geoRepo.AddCity(ctx, c); err != nil {
			return fmt.Errorf("add city %s: %w", c.Name(), err)
		}
	}
	logger.InfoContext(ctx, "Geography loaded", "nations", len(ds.Nations), "cities", len(ds.Cities))

	placeRepo := uow.PlaceRepository()
	for _, p := range ds.Places {
		if err := placeRepo.Add(ctx, p); err != nil {
			return fmt.Errorf("add place %s: %w", p.ID(), err)
		}
	}
	logger.InfoContext(ctx, "Places loaded", "places", len(ds.Places))

	vehicleRepo := uow.VehicleRepository()
	for _, v := range ds.Vehicles {
		if err := vehicleRepo.Add(ctx, v); err != nil {
			return fmt.Errorf("add vehicle %s: %w", v.ID(), err)
		}
	}
	logger.InfoContext(ctx, "Fleet loaded", "vehicles", len(ds.Vehicles))

	return uow.Commit(ctx)
}
