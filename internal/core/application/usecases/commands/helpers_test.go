package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testLines(t *testing.T) []*order.Line {
	t.Helper()
	lineA, err := order.NewLine(kernel.NewUUID(), "SKU-A", "Implant A", 5)
	require.NoError(t, err)
	lineB, err := order.NewLine(kernel.NewUUID(), "SKU-B", "Abutment B", 3)
	require.NoError(t, err)
	return []*order.Line{lineA, lineB}
}

// orderInStatus restores a courier-delivery order directly in the given
// status with mutually consistent timestamps and assignment.
func orderInStatus(t *testing.T, id kernel.UUID, status order.Status) *order.Order {
	t.Helper()

	createdAt := time.Now().UTC().Add(-time.Hour)
	var assembledAt, deliveredAt *time.Time
	var courierID *kernel.UUID

	if status != order.New && status != order.Assembly && status != order.Canceled {
		at := createdAt.Add(10 * time.Minute)
		assembledAt = &at
	}
	if status == order.Delivered {
		at := createdAt.Add(30 * time.Minute)
		deliveredAt = &at
	}
	if status == order.Delivering || status == order.Delivered {
		cid := kernel.NewUUID()
		courierID = &cid
	}

	restored, err := order.RestoreOrder(
		id, kernel.NewUUID(), kernel.NewUUID(),
		testLines(t), false, order.CourierDelivery,
		status, courierID, nil, createdAt, assembledAt, deliveredAt,
	)
	require.NoError(t, err)
	return restored
}
