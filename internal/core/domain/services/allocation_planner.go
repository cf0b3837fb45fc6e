package services

import (
	"context"
	"errors"
	"fmt"

	"freight/internal/core/domain/model/fleet"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

// ErrInsufficientCapacity is matched when the reachable idle fleet cannot
// cover the requested quantity.
var ErrInsufficientCapacity = errors.New("insufficient fleet capacity")

// InsufficientCapacityError reports what was left uncovered and how many
// vehicles had been chosen before the fleet ran out.
type InsufficientCapacityError struct {
	Remaining int
	Selected  int
}

func (e *InsufficientCapacityError) Error() string {
	return fmt.Sprintf("%s: %d units uncovered after selecting %d vehicles",
		ErrInsufficientCapacity, e.Remaining, e.Selected)
}

func (e *InsufficientCapacityError) Unwrap() error {
	return ErrInsufficientCapacity
}

// Allocation is the input of a planning run.
type Allocation struct {
	Origin    kernel.Location
	LoadClass kernel.LoadClass
	Quantity  int
	// Types are the eligible vehicle types in preference order.
	Types []fleet.Type
}

func (a Allocation) Validate() error {
	var errList []error
	if err := a.Origin.Validate(); err != nil {
		errList = append(errList, err)
	}
	if a.Quantity <= 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("quantity", a.Quantity, 1, "unbounded"))
	}
	if len(a.Types) == 0 {
		errList = append(errList, errs.NewValueIsRequiredError("types"))
	}
	return errors.Join(errList...)
}

// Assignment is one selected vehicle and the share of the load it carries.
type Assignment struct {
	Vehicle   *fleet.Vehicle
	Quantity  int
	Relocated bool
}

type Plan struct {
	Assignments []Assignment
}

func (p Plan) VehicleIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(p.Assignments))
	for i, a := range p.Assignments {
		ids[i] = a.Vehicle.ID()
	}
	return ids
}

func (p Plan) Total() int {
	total := 0
	for _, a := range p.Assignments {
		total += a.Quantity
	}
	return total
}

// AllocationPlanner chooses the vehicles that carry one transport request.
//
// Business rules:
//   - Only idle vehicles of an eligible type are considered
//   - Vehicles already at the origin are exhausted before any relocation
//   - Within a pass, the earlier type in Allocation.Types wins, then the
//     capacity closest to the remaining quantity, then the lower id
//   - No vehicle is selected twice in one plan
//
// Example usage:
//
//	planner := NewAllocationPlanner()
//	journal := &Journal{}
//	plan, err := planner.Plan(ctx, uow.VehicleRepository(), Allocation{
//	    Origin:    origin.Location(),
//	    LoadClass: kernel.LoadClassStandard,
//	    Quantity:  30000,
//	    Types:     types,
//	}, journal)
//	if errors.Is(err, ErrInsufficientCapacity) {
//	    // The reachable idle fleet is too small; roll the unit of work back
//	    return err
//	}
type AllocationPlanner struct{}

// NewAllocationPlanner creates a stateless planner. One instance may serve
// concurrent runs.
func NewAllocationPlanner() AllocationPlanner {
	return AllocationPlanner{}
}

// Plan selects vehicles greedily until the quantity is covered. Idle vehicles
// already at the origin are used first; only then are vehicles from elsewhere
// relocated to the origin, each relocation persisted and journaled before the
// vehicle is assigned. Every step assigns at least one unit, so the loop ends.
//
// Parameters:
//   - vehicles: the vehicle repository of the caller's unit of work
//   - alloc: origin, load class, quantity and eligible types in preference order
//   - journal: receives one RELOCATE entry per moved vehicle; nil records nothing
//
// Returns:
//   - Plan: the assignments, whose quantities sum to alloc.Quantity
//   - error: *InsufficientCapacityError when the fleet runs out,
//     errs.InternalFaultError for an invalid alloc, or a repository error
func (AllocationPlanner) Plan(
	ctx context.Context,
	vehicles ports.VehicleRepository,
	alloc Allocation,
	journal *Journal,
) (Plan, error) {
	if err := alloc.Validate(); err != nil {
		return Plan{}, errs.NewInternalFaultError("plan allocation", err)
	}

	var (
		plan      Plan
		remaining = alloc.Quantity
		selected  []kernel.UUID
	)

	assign := func(v *fleet.Vehicle, relocated bool) {
		share := min(remaining, v.Capacity())
		plan.Assignments = append(plan.Assignments, Assignment{Vehicle: v, Quantity: share, Relocated: relocated})
		selected = append(selected, v.ID())
		remaining -= share
	}

	origin := alloc.Origin
	for remaining > 0 {
		v, err := findIdle(ctx, vehicles, alloc.Types, &origin, selected, remaining)
		if err != nil {
			return Plan{}, err
		}
		if v == nil {
			break
		}
		assign(v, false)
	}

	for remaining > 0 {
		v, err := findIdle(ctx, vehicles, alloc.Types, nil, selected, remaining)
		if err != nil {
			return Plan{}, err
		}
		if v == nil {
			break
		}
		relocated := false
		if !v.IsAt(origin) {
			from := v.Location()
			if err = v.Relocate(origin); err != nil {
				return Plan{}, err
			}
			if err = vehicles.Update(ctx, v); err != nil {
				return Plan{}, err
			}
			journal.record(Movement{Kind: MovementRelocate, VehicleID: v.ID(), From: from, To: origin})
			relocated = true
		}
		assign(v, relocated)
	}

	if remaining > 0 {
		return Plan{}, &InsufficientCapacityError{Remaining: remaining, Selected: len(plan.Assignments)}
	}
	return plan, nil
}

func findIdle(
	ctx context.Context,
	vehicles ports.VehicleRepository,
	types []fleet.Type,
	at *kernel.Location,
	exclude []kernel.UUID,
	remaining int,
) (*fleet.Vehicle, error) {
	v, err := vehicles.FindIdle(ctx, ports.IdleVehicleQuery{
		Types:     types,
		At:        at,
		Exclude:   exclude,
		Remaining: remaining,
	})
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !v.IsIdle() {
		return nil, fmt.Errorf("vehicle %s returned as idle: %w", v.ID(), fleet.ErrVehicleIsBusy)
	}
	return v, nil
}
