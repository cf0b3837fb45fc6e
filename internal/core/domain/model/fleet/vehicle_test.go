package fleet_test

import (
	"testing"

	"freight/internal/core/domain/model/fleet"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func location(t *testing.T, kind kernel.PlaceKind) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(kernel.NewUUID(), kind)
	require.NoError(t, err)
	return loc
}

func idleLorry(t *testing.T, capacity int) *fleet.Vehicle {
	t.Helper()
	v, err := fleet.NewVehicle(kernel.NewUUID(), fleet.TypeLorry, capacity, location(t, kernel.PlaceKindTrainStation))
	require.NoError(t, err)
	return v
}

func TestNewVehicle(t *testing.T) {
	t.Run("starts idle and empty", func(t *testing.T) {
		v := idleLorry(t, 1200)

		require.NoError(t, v.Validate())
		assert.True(t, v.IsIdle())
		assert.Equal(t, kernel.LoadClassEmpty, v.LoadType())
		assert.Equal(t, 1200, v.Capacity())
	})

	t.Run("rejects bad input", func(t *testing.T) {
		_, err := fleet.NewVehicle(kernel.UUID{}, fleet.Type("Bike"), 0, kernel.Location{})

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, kernel.ErrLocationIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreVehicle_CargoConsistency(t *testing.T) {
	loc := location(t, kernel.PlaceKindPort)

	_, err := fleet.RestoreVehicle(kernel.NewUUID(), fleet.TypeShip, 100, 101, kernel.LoadClassStandard, loc)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = fleet.RestoreVehicle(kernel.NewUUID(), fleet.TypeShip, 100, 0, kernel.LoadClassStandard, loc)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = fleet.RestoreVehicle(kernel.NewUUID(), fleet.TypeShip, 100, 5, kernel.LoadClassEmpty, loc)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	v, err := fleet.RestoreVehicle(kernel.NewUUID(), fleet.TypeShip, 100, 5, kernel.LoadClassStandard, loc)
	require.NoError(t, err)
	assert.False(t, v.IsIdle())
}

func TestVehicle_Lifecycle(t *testing.T) {
	v := idleLorry(t, 1800)
	dest := location(t, kernel.PlaceKindDestination)

	require.NoError(t, v.LoadCargo(kernel.LoadClassWideLoad, 1800))
	assert.False(t, v.IsIdle())
	require.ErrorIs(t, v.Relocate(dest), fleet.ErrVehicleIsBusy)
	require.ErrorIs(t, v.LoadCargo(kernel.LoadClassWideLoad, 1), fleet.ErrVehicleIsBusy)

	require.NoError(t, v.MoveTo(dest))
	assert.True(t, v.IsAt(dest))

	lc, qty, err := v.Unload()
	require.NoError(t, err)
	assert.Equal(t, kernel.LoadClassWideLoad, lc)
	assert.Equal(t, 1800, qty)
	assert.True(t, v.IsIdle())
	assert.Equal(t, kernel.LoadClassEmpty, v.LoadType())
	assert.True(t, v.IsAt(dest))
}

func TestVehicle_LoadCargo(t *testing.T) {
	t.Run("quantity is bounded by capacity", func(t *testing.T) {
		v := idleLorry(t, 1200)
		require.ErrorIs(t, v.LoadCargo(kernel.LoadClassStandard, 1201), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, v.LoadCargo(kernel.LoadClassStandard, 0), errs.ErrValueIsOutOfRange)
		assert.True(t, v.IsIdle())
	})

	t.Run("class must be carried by the type", func(t *testing.T) {
		v, err := fleet.NewVehicle(kernel.NewUUID(), fleet.TypeLocalServing, 200, location(t, kernel.PlaceKindAirport))
		require.NoError(t, err)
		require.ErrorIs(t, v.LoadCargo(kernel.LoadClassStandard, 10), fleet.ErrLoadClassNotCarried)
	})
}

func TestVehicle_EmptyMoves(t *testing.T) {
	v := idleLorry(t, 2900)
	elsewhere := location(t, kernel.PlaceKindAirport)

	require.ErrorIs(t, v.MoveTo(elsewhere), fleet.ErrVehicleIsEmpty)
	_, _, err := v.Unload()
	require.ErrorIs(t, err, fleet.ErrVehicleIsEmpty)

	require.NoError(t, v.Relocate(elsewhere))
	assert.True(t, v.IsAt(elsewhere))
	assert.True(t, v.IsIdle())
}
