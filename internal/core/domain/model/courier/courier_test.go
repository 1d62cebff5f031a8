package courier_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCourier(t *testing.T) {
	t.Run("creates active courier", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := courier.NewCourier(id, "Alice")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "Alice", c.Name())
		assert.True(t, c.IsActive())
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		_, err := courier.NewCourier(kernel.NewUUID(), "")

		require.Error(t, err)
		assert.ErrorIs(t, err, courier.ErrNameIsRequired)
	})

	t.Run("invalid id is rejected", func(t *testing.T) {
		var id kernel.UUID
		_, err := courier.NewCourier(id, "Alice")

		require.Error(t, err)
	})
}

func TestCourier_ActivationToggle(t *testing.T) {
	c, err := courier.NewCourier(kernel.NewUUID(), "Bob")
	require.NoError(t, err)

	require.NoError(t, c.Deactivate())
	assert.False(t, c.IsActive())

	require.NoError(t, c.Activate())
	assert.True(t, c.IsActive())
}

func TestRestoreCourier(t *testing.T) {
	c, err := courier.RestoreCourier(kernel.NewUUID(), "Carol", false)

	require.NoError(t, err)
	assert.False(t, c.IsActive())
}

func TestCourier_Validate(t *testing.T) {
	t.Run("nil and zero value fail", func(t *testing.T) {
		var nilCourier *courier.Courier
		assert.Equal(t, courier.ErrCourierIsNotConstructed, nilCourier.Validate())

		var zero courier.Courier
		assert.Equal(t, courier.ErrCourierIsNotConstructed, zero.Validate())
	})
}
