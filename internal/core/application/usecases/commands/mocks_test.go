package commands_test

import (
	"context"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/fleet"
	"freight/internal/core/domain/model/geo"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/place"
	"freight/internal/core/domain/model/request"
	"freight/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockPlaceRepository struct{ mock.Mock }

func (m *MockPlaceRepository) Add(ctx context.Context, p *place.Place) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPlaceRepository) Update(ctx context.Context, p *place.Place) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPlaceRepository) Get(ctx context.Context, id kernel.UUID) (*place.Place, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*place.Place), args.Error(1)
}

func (m *MockPlaceRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*place.Place, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*place.Place), args.Error(1)
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, v *fleet.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) Update(ctx context.Context, v *fleet.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*fleet.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fleet.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) FindIdle(ctx context.Context, q ports.IdleVehicleQuery) (*fleet.Vehicle, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fleet.Vehicle), args.Error(1)
}

type MockGeoRepository struct{ mock.Mock }

func (m *MockGeoRepository) AddNation(ctx context.Context, n *geo.Nation) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockGeoRepository) AddCity(ctx context.Context, c *geo.City) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockGeoRepository) GetCities(ctx context.Context, ids []kernel.UUID) ([]*geo.City, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*geo.City), args.Error(1)
}

func (m *MockGeoRepository) GetNation(ctx context.Context, id kernel.UUID) (*geo.Nation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*geo.Nation), args.Error(1)
}

type MockTransportRequestRepository struct{ mock.Mock }

func (m *MockTransportRequestRepository) Add(ctx context.Context, r *request.TransportRequest) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockTransportRequestRepository) Get(ctx context.Context, id kernel.UUID) (*request.TransportRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*request.TransportRequest), args.Error(1)
}

type MockPlaceViewCache struct{ mock.Mock }

func (m *MockPlaceViewCache) Get(ctx context.Context, id kernel.UUID) (place.View, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(place.View), args.Bool(1), args.Error(2)
}

func (m *MockPlaceViewCache) Set(ctx context.Context, id kernel.UUID, view place.View) error {
	args := m.Called(ctx, id, view)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) PlaceRepository() ports.PlaceRepository {
	args := m.Called()
	return args.Get(0).(ports.PlaceRepository)
}

func (m *MockUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

func (m *MockUoW) GeoRepository() ports.GeoRepository {
	args := m.Called()
	return args.Get(0).(ports.GeoRepository)
}

func (m *MockUoW) TransportRequestRepository() ports.TransportRequestRepository {
	args := m.Called()
	return args.Get(0).(ports.TransportRequestRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}
