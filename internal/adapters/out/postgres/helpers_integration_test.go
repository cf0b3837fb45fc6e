package postgres_test

import (
	"context"
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/fleet"
	"freight/internal/core/domain/model/geo"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/place"

	"github.com/stretchr/testify/require"
)

type uowFactory func() commands.UoW

func (f uowFactory) Create() commands.UoW {
	return f()
}

func mustNation(t *testing.T, name string) *geo.Nation {
	t.Helper()
	n, err := geo.NewNation(kernel.NewUUID(), name)
	require.NoError(t, err)
	return n
}

func mustCity(t *testing.T, name, postcode string, nation *geo.Nation) *geo.City {
	t.Helper()
	c, err := geo.NewCity(kernel.NewUUID(), name, postcode, nation.ID())
	require.NoError(t, err)
	return c
}

func (suite *UnitOfWorkIntegrationTestSuite) place(
	kind kernel.PlaceKind, street string, city *geo.City, stock map[kernel.LoadClass]int,
) *place.Place {
	p, err := place.RestorePlace(kernel.NewUUID(), kind, street, []kernel.UUID{city.ID()}, stock)
	suite.Require().NoError(err)
	return p
}

func (suite *UnitOfWorkIntegrationTestSuite) vehicle(typ fleet.Type, capacity int, at *place.Place) *fleet.Vehicle {
	v, err := fleet.NewVehicle(kernel.NewUUID(), typ, capacity, at.Location())
	suite.Require().NoError(err)
	return v
}

func (suite *UnitOfWorkIntegrationTestSuite) addPlaces(places ...*place.Place) {
	repo := suite.factory.Create().PlaceRepository()
	for _, p := range places {
		suite.Require().NoError(repo.Add(context.Background(), p))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) addVehicles(vehicles ...*fleet.Vehicle) {
	repo := suite.factory.Create().VehicleRepository()
	for _, v := range vehicles {
		suite.Require().NoError(repo.Add(context.Background(), v))
	}
}
