package services

import (
	"context"
	"errors"
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/place"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

var (
	ErrPlanDoesNotCoverQuantity = errors.New("plan does not cover the requested quantity")
	ErrVehicleNotAtOrigin       = errors.New("assigned vehicle is not at the origin")
)

// FulfillmentExecutor carries a planned load from origin to destination.
//
// Business rules:
//   - Storage at the origin is drawn down once, before any vehicle is loaded
//   - Each vehicle is loaded, moved, delivered and unloaded in plan order
//   - Every vehicle ends idle and empty at the destination
//
// Example usage:
//
//	executor := NewFulfillmentExecutor()
//	err := executor.Execute(ctx, uow.PlaceRepository(), uow.VehicleRepository(),
//	    origin, destination, kernel.LoadClassPackage, 500, plan, journal)
//	if errors.Is(err, place.ErrInsufficientStorage) {
//	    // The origin holds less than requested; nothing was committed
//	    return err
//	}
type FulfillmentExecutor struct{}

func NewFulfillmentExecutor() FulfillmentExecutor {
	return FulfillmentExecutor{}
}

// Execute picks the load up at origin and carries it to destination with the
// planned vehicles. Every mutation is persisted through the given
// repositories; the caller commits or rolls back the surrounding unit of work.
//
// Returns:
//   - ErrPlanDoesNotCoverQuantity or ErrVehicleNotAtOrigin for a plan that
//     does not fit the request, checked before anything is written
//   - errs.InternalFaultError when origin or destination was not constructed
//   - place and fleet domain errors, or repository errors, from the steps
func (FulfillmentExecutor) Execute(
	ctx context.Context,
	places ports.PlaceRepository,
	vehicles ports.VehicleRepository,
	origin, destination *place.Place,
	lc kernel.LoadClass,
	quantity int,
	plan Plan,
	journal *Journal,
) error {
	if err := errors.Join(origin.Validate(), destination.Validate()); err != nil {
		return errs.NewInternalFaultError("execute plan", err)
	}
	if plan.Total() != quantity {
		return fmt.Errorf("%w: planned %d, requested %d", ErrPlanDoesNotCoverQuantity, plan.Total(), quantity)
	}

	from, to := origin.Location(), destination.Location()
	for _, a := range plan.Assignments {
		if !a.Vehicle.IsAt(from) {
			return fmt.Errorf("%w: %s is at %s", ErrVehicleNotAtOrigin, a.Vehicle.ID(), a.Vehicle.Location())
		}
	}

	if origin.Kind().HasStorage() {
		if err := origin.PickUp(lc, quantity); err != nil {
			return err
		}
		if err := places.Update(ctx, origin); err != nil {
			return err
		}
	}

	for _, a := range plan.Assignments {
		v := a.Vehicle
		if err := v.LoadCargo(lc, a.Quantity); err != nil {
			return err
		}
		if err := vehicles.Update(ctx, v); err != nil {
			return err
		}
		journal.record(Movement{Kind: MovementLoad, VehicleID: v.ID(), From: from, To: from, LoadClass: lc, Quantity: a.Quantity})

		if err := v.MoveTo(to); err != nil {
			return err
		}
		if err := vehicles.Update(ctx, v); err != nil {
			return err
		}
		journal.record(Movement{Kind: MovementMove, VehicleID: v.ID(), From: from, To: to, LoadClass: lc, Quantity: a.Quantity})

		if err := destination.Deliver(v.ID(), lc, a.Quantity); err != nil {
			return err
		}
		if err := places.Update(ctx, destination); err != nil {
			return err
		}
		journal.record(Movement{Kind: MovementDeliver, VehicleID: v.ID(), From: to, To: to, LoadClass: lc, Quantity: a.Quantity})

		if _, _, err := v.Unload(); err != nil {
			return err
		}
		if err := vehicles.Update(ctx, v); err != nil {
			return err
		}
		journal.record(Movement{Kind: MovementUnload, VehicleID: v.ID(), From: to, To: to})
	}
	return nil
}
