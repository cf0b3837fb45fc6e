package geo_test

import (
	"testing"

	"freight/internal/core/domain/model/geo"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNation(t *testing.T) {
	id := kernel.NewUUID()
	n, err := geo.NewNation(id, "  Italy ")

	require.NoError(t, err)
	require.NoError(t, n.Validate())
	assert.Equal(t, "Italy", n.Name())
	assert.True(t, id.IsEqual(n.ID()))

	_, err = geo.NewNation(kernel.UUID{}, "")
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCity(t *testing.T) {
	nationID := kernel.NewUUID()
	c, err := geo.NewCity(kernel.NewUUID(), "Milan", " 20100", nationID)

	require.NoError(t, err)
	assert.Equal(t, "Milan", c.Name())
	assert.Equal(t, "20100", c.Postcode())
	assert.True(t, nationID.IsEqual(c.NationID()))

	_, err = geo.NewCity(kernel.NewUUID(), "Milan", "", kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestZeroValuesAreInvalid(t *testing.T) {
	var n geo.Nation
	var c *geo.City
	require.ErrorIs(t, n.Validate(), geo.ErrNationIsNotConstructed)
	require.ErrorIs(t, c.Validate(), geo.ErrCityIsNotConstructed)
}
