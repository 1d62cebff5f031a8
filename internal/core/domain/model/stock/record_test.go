package stock_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/stock"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	t.Run("creates record with non-negative quantity", func(t *testing.T) {
		r, err := stock.NewRecord("IMP-4012", 10)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.Equal(t, "IMP-4012", r.SKU())
		assert.Equal(t, 10, r.Available())
	})

	t.Run("zero quantity is allowed", func(t *testing.T) {
		r, err := stock.NewRecord("IMP-4012", 0)

		require.NoError(t, err)
		assert.Equal(t, 0, r.Available())
	})

	t.Run("negative quantity is rejected", func(t *testing.T) {
		_, err := stock.NewRecord("IMP-4012", -1)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("empty sku is rejected", func(t *testing.T) {
		_, err := stock.NewRecord("", 1)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRecord_Reserve(t *testing.T) {
	t.Run("subtracts available units", func(t *testing.T) {
		r, _ := stock.NewRecord("A", 10)

		require.NoError(t, r.Reserve(4))
		assert.Equal(t, 6, r.Available())
	})

	t.Run("reserving everything leaves zero", func(t *testing.T) {
		r, _ := stock.NewRecord("A", 3)

		require.NoError(t, r.Reserve(3))
		assert.Equal(t, 0, r.Available())
	})

	t.Run("over-reservation is rejected without change", func(t *testing.T) {
		r, _ := stock.NewRecord("A", 3)

		err := r.Reserve(4)

		require.ErrorIs(t, err, errs.ErrInsufficientStock)
		assert.Equal(t, 3, r.Available())

		var insufficient *errs.InsufficientStockError
		require.ErrorAs(t, err, &insufficient)
		assert.Equal(t, "A", insufficient.SKU)
		assert.Equal(t, 3, insufficient.Available)
		assert.Equal(t, 4, insufficient.Requested)
	})

	t.Run("non-positive amount is rejected", func(t *testing.T) {
		r, _ := stock.NewRecord("A", 3)

		require.Error(t, r.Reserve(0))
		require.Error(t, r.Reserve(-2))
		assert.Equal(t, 3, r.Available())
	})
}

func TestRecord_Release(t *testing.T) {
	t.Run("adds units back", func(t *testing.T) {
		r, _ := stock.NewRecord("A", 1)

		require.NoError(t, r.Release(2))
		assert.Equal(t, 3, r.Available())
	})

	t.Run("non-positive amount is rejected", func(t *testing.T) {
		r, _ := stock.NewRecord("A", 1)

		require.Error(t, r.Release(0))
	})
}

func TestRecord_Overwrite(t *testing.T) {
	t.Run("last writer wins", func(t *testing.T) {
		r, _ := stock.NewRecord("A", 1)

		require.NoError(t, r.Overwrite(42))
		assert.Equal(t, 42, r.Available())

		require.NoError(t, r.Overwrite(0))
		assert.Equal(t, 0, r.Available())
	})

	t.Run("negative value is rejected", func(t *testing.T) {
		r, _ := stock.NewRecord("A", 1)

		require.ErrorIs(t, r.Overwrite(-5), errs.ErrValueIsOutOfRange)
		assert.Equal(t, 1, r.Available())
	})
}

func TestRecord_Validate(t *testing.T) {
	t.Run("nil and zero value fail", func(t *testing.T) {
		var nilRecord *stock.Record
		assert.Equal(t, stock.ErrRecordIsNotConstructed, nilRecord.Validate())

		var zero stock.Record
		assert.Equal(t, stock.ErrRecordIsNotConstructed, zero.Validate())
	})
}
