package services_test

import (
	"errors"
	"testing"

	"freight/internal/core/domain/model/fleet"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/services"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	idA = "00000000-0000-0000-0000-00000000000a"
	idB = "00000000-0000-0000-0000-00000000000b"
	idC = "00000000-0000-0000-0000-00000000000c"
	idD = "00000000-0000-0000-0000-00000000000d"
)

func TestAllocationPlanner_OnSiteSingleVehicle(t *testing.T) {
	// Given
	paris := hub(t, kernel.PlaceKindTrainStation, nil)
	train := vehicleAt(t, idA, fleet.TypeTrain, 34800, paris)
	vehicles := newMemoryFleet(train)
	journal := &services.Journal{}

	// When
	plan, err := services.NewAllocationPlanner().Plan(t.Context(), vehicles, services.Allocation{
		Origin:    paris.Location(),
		LoadClass: kernel.LoadClassStandard,
		Quantity:  30000,
		Types:     []fleet.Type{fleet.TypeTrain, fleet.TypeLorry},
	}, journal)

	// Then
	require.NoError(t, err)
	require.Len(t, plan.Assignments, 1)
	assert.True(t, train.ID().IsEqual(plan.Assignments[0].Vehicle.ID()))
	assert.Equal(t, 30000, plan.Assignments[0].Quantity)
	assert.False(t, plan.Assignments[0].Relocated)
	assert.Empty(t, journal.Entries())
	assert.Empty(t, vehicles.writes)
}

func TestAllocationPlanner_TieBreak(t *testing.T) {
	origin := hub(t, kernel.PlaceKindTrainStation, nil)
	types := []fleet.Type{fleet.TypeTrain, fleet.TypeLorry}

	t.Run("specialized type wins over closer capacity", func(t *testing.T) {
		lorry := vehicleAt(t, idA, fleet.TypeLorry, 1200, origin)
		train := vehicleAt(t, idB, fleet.TypeTrain, 34800, origin)

		plan, err := services.NewAllocationPlanner().Plan(t.Context(), newMemoryFleet(lorry, train), services.Allocation{
			Origin: origin.Location(), LoadClass: kernel.LoadClassStandard, Quantity: 1000, Types: types,
		}, &services.Journal{})

		require.NoError(t, err)
		assert.Equal(t, []kernel.UUID{train.ID()}, plan.VehicleIDs())
	})

	t.Run("closest capacity within a type, then id", func(t *testing.T) {
		big := vehicleAt(t, idA, fleet.TypeLorry, 2900, origin)
		mid := vehicleAt(t, idC, fleet.TypeLorry, 1800, origin)
		midTwin := vehicleAt(t, idB, fleet.TypeLorry, 1800, origin)

		plan, err := services.NewAllocationPlanner().Plan(t.Context(), newMemoryFleet(big, mid, midTwin), services.Allocation{
			Origin: origin.Location(), LoadClass: kernel.LoadClassWideLoad, Quantity: 1700, Types: []fleet.Type{fleet.TypeLorry},
		}, &services.Journal{})

		require.NoError(t, err)
		assert.Equal(t, []kernel.UUID{midTwin.ID()}, plan.VehicleIDs())
	})

	t.Run("remaining shrinks between picks", func(t *testing.T) {
		big := vehicleAt(t, idA, fleet.TypeLorry, 2900, origin)
		mid := vehicleAt(t, idB, fleet.TypeLorry, 1800, origin)
		small := vehicleAt(t, idC, fleet.TypeLorry, 1200, origin)

		plan, err := services.NewAllocationPlanner().Plan(t.Context(), newMemoryFleet(big, mid, small), services.Allocation{
			Origin: origin.Location(), LoadClass: kernel.LoadClassStandard, Quantity: 4000, Types: []fleet.Type{fleet.TypeLorry},
		}, &services.Journal{})

		require.NoError(t, err)
		// 4000: 2900 closest; 1100 left: 1200 closest.
		assert.Equal(t, []kernel.UUID{big.ID(), small.ID()}, plan.VehicleIDs())
		assert.Equal(t, 2900, plan.Assignments[0].Quantity)
		assert.Equal(t, 1100, plan.Assignments[1].Quantity)
	})
}

func TestAllocationPlanner_IsDeterministic(t *testing.T) {
	origin := hub(t, kernel.PlaceKindPort, nil)
	elsewhere := hub(t, kernel.PlaceKindAirport, nil)

	build := func() *memoryFleet {
		return newMemoryFleet(
			vehicleAt(t, idD, fleet.TypeLorry, 1200, origin),
			vehicleAt(t, idB, fleet.TypeLorry, 1200, origin),
			vehicleAt(t, idC, fleet.TypeLorry, 1800, elsewhere),
			vehicleAt(t, idA, fleet.TypeShip, 870, elsewhere),
		)
	}
	alloc := services.Allocation{
		Origin:    origin.Location(),
		LoadClass: kernel.LoadClassStandard,
		Quantity:  3500,
		Types:     []fleet.Type{fleet.TypeShip, fleet.TypeLorry},
	}

	var first []kernel.UUID
	for i := range 5 {
		plan, err := services.NewAllocationPlanner().Plan(t.Context(), build(), alloc, &services.Journal{})
		require.NoError(t, err)
		if i == 0 {
			first = plan.VehicleIDs()
			continue
		}
		assert.Equal(t, first, plan.VehicleIDs())
	}
	assert.Equal(t, []kernel.UUID{
		kernel.MustParseUUID(idB), kernel.MustParseUUID(idD), kernel.MustParseUUID(idA), kernel.MustParseUUID(idC),
	}, first)
}

func TestAllocationPlanner_RelocatesWhenOnSiteIsExhausted(t *testing.T) {
	// Given: a destination origin with nothing on site and one lorry elsewhere.
	origin := hub(t, kernel.PlaceKindDestination, nil)
	depot := hub(t, kernel.PlaceKindAirport, nil)
	lorry := vehicleAt(t, idA, fleet.TypeLorry, 1800, depot)
	vehicles := newMemoryFleet(lorry)
	journal := &services.Journal{}

	// When
	plan, err := services.NewAllocationPlanner().Plan(t.Context(), vehicles, services.Allocation{
		Origin:    origin.Location(),
		LoadClass: kernel.LoadClassPackage,
		Quantity:  500,
		Types:     []fleet.Type{fleet.TypeLorry, fleet.TypeLocalServing},
	}, journal)

	// Then
	require.NoError(t, err)
	require.Len(t, plan.Assignments, 1)
	assert.True(t, plan.Assignments[0].Relocated)
	assert.Equal(t, 500, plan.Assignments[0].Quantity)
	assert.True(t, lorry.IsAt(origin.Location()))
	require.Len(t, vehicles.writes, 1)

	entries := journal.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, services.MovementRelocate, entries[0].Kind)
	assert.True(t, entries[0].From.IsEqual(depot.Location()))
	assert.True(t, entries[0].To.IsEqual(origin.Location()))
}

func TestAllocationPlanner_PrefersOnSiteOverBetterRemoteFit(t *testing.T) {
	origin := hub(t, kernel.PlaceKindTrainStation, nil)
	remote := hub(t, kernel.PlaceKindTrainStation, nil)
	onSite := vehicleAt(t, idB, fleet.TypeLorry, 1200, origin)
	perfect := vehicleAt(t, idA, fleet.TypeLorry, 2000, remote)

	plan, err := services.NewAllocationPlanner().Plan(t.Context(), newMemoryFleet(onSite, perfect), services.Allocation{
		Origin: origin.Location(), LoadClass: kernel.LoadClassStandard, Quantity: 2000, Types: []fleet.Type{fleet.TypeLorry},
	}, &services.Journal{})

	require.NoError(t, err)
	assert.Equal(t, []kernel.UUID{onSite.ID(), perfect.ID()}, plan.VehicleIDs())
	assert.Equal(t, []int{1200, 800}, []int{plan.Assignments[0].Quantity, plan.Assignments[1].Quantity})
	assert.False(t, plan.Assignments[0].Relocated)
	assert.True(t, plan.Assignments[1].Relocated)
}

func TestAllocationPlanner_InsufficientCapacity(t *testing.T) {
	origin := hub(t, kernel.PlaceKindTrainStation, map[kernel.LoadClass]int{kernel.LoadClassStandard: 100000})
	elsewhere := hub(t, kernel.PlaceKindPort, nil)
	vehicles := newMemoryFleet(
		vehicleAt(t, idA, fleet.TypeTrain, 34800, origin),
		vehicleAt(t, idB, fleet.TypeLorry, 2900, elsewhere),
		vehicleAt(t, idC, fleet.TypeShip, 870000, elsewhere), // not eligible
	)

	_, err := services.NewAllocationPlanner().Plan(t.Context(), vehicles, services.Allocation{
		Origin: origin.Location(), LoadClass: kernel.LoadClassStandard, Quantity: 40000,
		Types: []fleet.Type{fleet.TypeTrain, fleet.TypeLorry},
	}, &services.Journal{})

	require.ErrorIs(t, err, services.ErrInsufficientCapacity)
	var shortfall *services.InsufficientCapacityError
	require.ErrorAs(t, err, &shortfall)
	assert.Equal(t, 40000-34800-2900, shortfall.Remaining)
	assert.Equal(t, 2, shortfall.Selected)
	assert.Equal(t, 100000, origin.Quantity(kernel.LoadClassStandard))
}

func TestAllocationPlanner_SkipsBusyVehicles(t *testing.T) {
	origin := hub(t, kernel.PlaceKindTrainStation, nil)
	busy, err := fleet.RestoreVehicle(kernel.MustParseUUID(idA), fleet.TypeTrain, 34800, 10,
		kernel.LoadClassStandard, origin.Location())
	require.NoError(t, err)

	_, err = services.NewAllocationPlanner().Plan(t.Context(), newMemoryFleet(busy), services.Allocation{
		Origin: origin.Location(), LoadClass: kernel.LoadClassStandard, Quantity: 1, Types: []fleet.Type{fleet.TypeTrain},
	}, &services.Journal{})

	require.ErrorIs(t, err, services.ErrInsufficientCapacity)
}

func TestAllocationPlanner_PropagatesStoreErrors(t *testing.T) {
	origin := hub(t, kernel.PlaceKindDestination, nil)
	remote := hub(t, kernel.PlaceKindPort, nil)
	vehicles := newMemoryFleet(vehicleAt(t, idA, fleet.TypeLorry, 1200, remote))
	storeDown := errs.NewTransientFailureError("update vehicle", errors.New("connection reset"))
	vehicles.failOn = storeDown

	_, err := services.NewAllocationPlanner().Plan(t.Context(), vehicles, services.Allocation{
		Origin: origin.Location(), LoadClass: kernel.LoadClassPackage, Quantity: 10, Types: []fleet.Type{fleet.TypeLorry},
	}, &services.Journal{})

	require.ErrorIs(t, err, errs.ErrTransientFailure)
}

func TestAllocation_Validate(t *testing.T) {
	err := services.Allocation{}.Validate()

	require.ErrorIs(t, err, kernel.ErrLocationIsNotConstructed)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestAllocationPlanner_InvalidAllocationIsAnInternalFault(t *testing.T) {
	_, err := services.NewAllocationPlanner().Plan(t.Context(), newMemoryFleet(), services.Allocation{}, &services.Journal{})

	require.ErrorIs(t, err, errs.ErrInternalFault)
	assert.NotErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.NotErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "quantity")
}

func TestAllocationPlanner_NilJournal(t *testing.T) {
	origin := hub(t, kernel.PlaceKindDestination, nil)
	depot := hub(t, kernel.PlaceKindAirport, nil)
	lorry := vehicleAt(t, idA, fleet.TypeLorry, 1200, depot)
	vehicles := newMemoryFleet(lorry)

	plan, err := services.NewAllocationPlanner().Plan(t.Context(), vehicles, services.Allocation{
		Origin: origin.Location(), LoadClass: kernel.LoadClassPackage, Quantity: 100, Types: []fleet.Type{fleet.TypeLorry},
	}, nil)

	require.NoError(t, err)
	require.Len(t, plan.Assignments, 1)
	assert.True(t, plan.Assignments[0].Relocated)
	assert.True(t, lorry.IsAt(origin.Location()))
	assert.Len(t, vehicles.writes, 1)
}
