package fleet

import (
	"errors"
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle or RestoreVehicle constructor")
	// ErrVehicleIsBusy is returned when an operation needs an idle vehicle.
	ErrVehicleIsBusy = errors.New("vehicle is not idle")
	// ErrVehicleIsEmpty is returned when moving goods a vehicle does not hold.
	ErrVehicleIsEmpty = errors.New("vehicle carries no load")
	// ErrLoadClassNotCarried is returned when a vehicle type cannot hold a class.
	ErrLoadClassNotCarried = errors.New("load class not carried by vehicle type")
)

// Vehicle is a single transport mean of the fleet. It is idle exactly when it
// carries nothing; an idle vehicle always reports the EMPTY load type.
// Fulfillment only ever changes load, load type and location.
type Vehicle struct {
	id       kernel.UUID
	typ      Type
	capacity int
	load     int
	loadType kernel.LoadClass
	location kernel.Location
	guard    guard.ConstructorGuard
}

// NewVehicle creates an idle vehicle parked at location.
func NewVehicle(id kernel.UUID, typ Type, capacity int, location kernel.Location) (*Vehicle, error) {
	return RestoreVehicle(id, typ, capacity, 0, kernel.LoadClassEmpty, location)
}

// RestoreVehicle rebuilds a vehicle from storage.
func RestoreVehicle(
	id kernel.UUID,
	typ Type,
	capacity int,
	load int,
	loadType kernel.LoadClass,
	location kernel.Location,
) (*Vehicle, error) {
	v := &Vehicle{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		v.setID(id),
		v.setType(typ),
		v.setCapacity(capacity),
		v.setLocation(location),
	); err != nil {
		return nil, err
	}
	if err := v.setCargo(load, loadType); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

func (v *Vehicle) ID() kernel.UUID            { return v.id }
func (v *Vehicle) Type() Type                 { return v.typ }
func (v *Vehicle) Capacity() int              { return v.capacity }
func (v *Vehicle) Load() int                  { return v.load }
func (v *Vehicle) LoadType() kernel.LoadClass { return v.loadType }
func (v *Vehicle) Location() kernel.Location  { return v.location }

func (v *Vehicle) IsIdle() bool {
	return v.load == 0
}

func (v *Vehicle) IsAt(loc kernel.Location) bool {
	return v.location.IsEqual(loc)
}

// Relocate moves an idle vehicle without cargo.
func (v *Vehicle) Relocate(to kernel.Location) error {
	if !v.IsIdle() {
		return ErrVehicleIsBusy
	}
	return v.setLocation(to)
}

// LoadCargo fills an idle vehicle with qty units of lc.
func (v *Vehicle) LoadCargo(lc kernel.LoadClass, qty int) error {
	if !v.IsIdle() {
		return ErrVehicleIsBusy
	}
	if !v.typ.Carries(lc) {
		return fmt.Errorf("%w: %s cannot carry %s", ErrLoadClassNotCarried, v.typ, lc)
	}
	if qty <= 0 || qty > v.capacity {
		return errs.NewValueIsOutOfRangeError("load", qty, 1, v.capacity)
	}
	v.load = qty
	v.loadType = lc
	return nil
}

// MoveTo drives a loaded vehicle to its destination.
func (v *Vehicle) MoveTo(to kernel.Location) error {
	if v.IsIdle() {
		return ErrVehicleIsEmpty
	}
	return v.setLocation(to)
}

// Unload empties the vehicle and returns what it carried.
func (v *Vehicle) Unload() (kernel.LoadClass, int, error) {
	if v.IsIdle() {
		return "", 0, ErrVehicleIsEmpty
	}
	lc, qty := v.loadType, v.load
	v.load = 0
	v.loadType = kernel.LoadClassEmpty
	return lc, qty, nil
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setType(typ Type) error {
	if err := typ.Validate(); err != nil {
		return err
	}
	v.typ = typ
	return nil
}

func (v *Vehicle) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacity", fmt.Errorf("%d is not greater than 0", capacity))
	}
	v.capacity = capacity
	return nil
}

func (v *Vehicle) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	v.location = location
	return nil
}

func (v *Vehicle) setCargo(load int, loadType kernel.LoadClass) error {
	if load < 0 || load > v.capacity {
		return errs.NewValueIsOutOfRangeError("load", load, 0, v.capacity)
	}
	if (load == 0) != (loadType == kernel.LoadClassEmpty) {
		return errs.NewValueIsInvalidErrorWithCause("loadType",
			fmt.Errorf("load %d does not match load type %s", load, loadType))
	}
	v.load = load
	v.loadType = loadType
	return nil
}
