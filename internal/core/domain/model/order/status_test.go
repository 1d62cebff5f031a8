package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	cases := map[order.Status]string{
		order.Unknown:          "Unknown",
		order.New:              "New",
		order.Assembly:         "Assembly",
		order.ReadyForPickup:   "ReadyForPickup",
		order.AwaitingTaxiLink: "AwaitingTaxiLink",
		order.Delivering:       "Delivering",
		order.Delivered:        "Delivered",
		order.Canceled:         "Canceled",
		order.Status(99):       "Unknown",
	}

	for status, expected := range cases {
		assert.Equal(t, expected, status.String())
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses pass", func(t *testing.T) {
		for _, s := range []order.Status{
			order.New, order.Assembly, order.ReadyForPickup,
			order.AwaitingTaxiLink, order.Delivering, order.Delivered, order.Canceled,
		} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("unknown and out-of-range fail", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
		require.Error(t, order.Status(42).Validate())
	})
}

func TestStatus_TakeForAssembly(t *testing.T) {
	t.Run("new order can be taken", func(t *testing.T) {
		next, err := order.New.TakeForAssembly()

		require.NoError(t, err)
		assert.Equal(t, order.Assembly, next)
	})

	t.Run("any other status is rejected", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Assembly, order.ReadyForPickup, order.AwaitingTaxiLink,
			order.Delivering, order.Delivered, order.Canceled,
		} {
			_, err := s.TakeForAssembly()
			require.ErrorIs(t, err, errs.ErrInvalidTransition)
		}
	})
}

func TestStatus_MarkAssembled(t *testing.T) {
	t.Run("courier delivery becomes ready for pickup", func(t *testing.T) {
		next, err := order.Assembly.MarkAssembled(order.CourierDelivery)

		require.NoError(t, err)
		assert.Equal(t, order.ReadyForPickup, next)
	})

	t.Run("taxi delivery awaits tracking link", func(t *testing.T) {
		next, err := order.Assembly.MarkAssembled(order.TaxiDelivery)

		require.NoError(t, err)
		assert.Equal(t, order.AwaitingTaxiLink, next)
	})

	t.Run("rejected outside assembly", func(t *testing.T) {
		_, err := order.New.MarkAssembled(order.CourierDelivery)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestStatus_Dispatch(t *testing.T) {
	t.Run("ready order can be dispatched", func(t *testing.T) {
		next, err := order.ReadyForPickup.Dispatch()

		require.NoError(t, err)
		assert.Equal(t, order.Delivering, next)
	})

	t.Run("dispatching twice is rejected", func(t *testing.T) {
		_, err := order.Delivering.Dispatch()
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestStatus_Complete(t *testing.T) {
	t.Run("delivering order completes", func(t *testing.T) {
		next, err := order.Delivering.Complete()

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, next)
	})

	t.Run("completing twice is rejected", func(t *testing.T) {
		_, err := order.Delivered.Complete()
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestStatus_CompleteTaxi(t *testing.T) {
	t.Run("awaiting link completes", func(t *testing.T) {
		next, err := order.AwaitingTaxiLink.CompleteTaxi()

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, next)
	})

	t.Run("rejected before assembly", func(t *testing.T) {
		for _, s := range []order.Status{order.New, order.Assembly} {
			_, err := s.CompleteTaxi()
			require.ErrorIs(t, err, errs.ErrInvalidTransition)
		}
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("any non-terminal status cancels", func(t *testing.T) {
		for _, s := range []order.Status{
			order.New, order.Assembly, order.ReadyForPickup,
			order.AwaitingTaxiLink, order.Delivering,
		} {
			next, err := s.Cancel()
			require.NoError(t, err)
			assert.Equal(t, order.Canceled, next)
		}
	})

	t.Run("terminal statuses are rejected", func(t *testing.T) {
		for _, s := range []order.Status{order.Delivered, order.Canceled} {
			_, err := s.Cancel()
			require.ErrorIs(t, err, errs.ErrInvalidTransition)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Canceled.IsTerminal())
	assert.False(t, order.New.IsTerminal())
	assert.False(t, order.Delivering.IsTerminal())
}

// The lifecycle never allows a transition back to an earlier state: every
// transition method either advances the status or rejects the move.
func TestStatus_OnlyMovesForward(t *testing.T) {
	forward := map[order.Status]order.Status{
		order.Assembly:         order.New,
		order.ReadyForPickup:   order.Assembly,
		order.Delivering:       order.ReadyForPickup,
		order.AwaitingTaxiLink: order.Assembly,
	}

	for later, earlier := range forward {
		_, err := later.TakeForAssembly()
		require.Error(t, err, "TakeForAssembly from %s", later)
		if earlier == order.New {
			continue
		}
		_, err = later.MarkAssembled(order.CourierDelivery)
		require.Error(t, err, "MarkAssembled from %s", later)
	}
}
