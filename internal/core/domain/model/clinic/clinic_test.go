package clinic_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/clinic"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClinic(t *testing.T) {
	location, err := kernel.NewGeoPoint(55.751244, 37.618423)
	require.NoError(t, err)

	t.Run("creates clinic without contact", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := clinic.NewClinic(id, "Vet Center", "Tverskaya 1", location, nil)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "Vet Center", c.Name())
		assert.Equal(t, "Tverskaya 1", c.Address())
		assert.Nil(t, c.ContactID())

		equal, err := c.Location().IsEqual(location)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("creates clinic with contact", func(t *testing.T) {
		contactID := kernel.NewUUID()

		c, err := clinic.NewClinic(kernel.NewUUID(), "Vet Center", "Tverskaya 1", location, &contactID)

		require.NoError(t, err)
		require.NotNil(t, c.ContactID())
		assert.True(t, c.ContactID().IsEqual(contactID))
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		_, err := clinic.NewClinic(kernel.NewUUID(), "", "Tverskaya 1", location, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, clinic.ErrNameIsRequired)
	})

	t.Run("empty address is rejected", func(t *testing.T) {
		_, err := clinic.NewClinic(kernel.NewUUID(), "Vet Center", "", location, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, clinic.ErrAddressIsRequired)
	})

	t.Run("unconstructed location is rejected", func(t *testing.T) {
		var zero kernel.GeoPoint
		_, err := clinic.NewClinic(kernel.NewUUID(), "Vet Center", "Tverskaya 1", zero, nil)

		require.Error(t, err)
	})
}

func TestClinic_Validate(t *testing.T) {
	var nilClinic *clinic.Clinic
	assert.Equal(t, clinic.ErrClinicIsNotConstructed, nilClinic.Validate())

	var zero clinic.Clinic
	assert.Equal(t, clinic.ErrClinicIsNotConstructed, zero.Validate())
}
