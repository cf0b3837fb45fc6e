package services_test

import (
	"testing"

	"freight/internal/core/domain/model/fleet"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/place"

	"github.com/stretchr/testify/require"
)

func hub(t *testing.T, kind kernel.PlaceKind, stock map[kernel.LoadClass]int) *place.Place {
	t.Helper()
	p, err := place.RestorePlace(kernel.NewUUID(), kind, "Station Square 1", []kernel.UUID{kernel.NewUUID()}, stock)
	require.NoError(t, err)
	return p
}

func vehicleAt(t *testing.T, id string, typ fleet.Type, capacity int, at *place.Place) *fleet.Vehicle {
	t.Helper()
	v, err := fleet.NewVehicle(kernel.MustParseUUID(id), typ, capacity, at.Location())
	require.NoError(t, err)
	return v
}
