package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// Notifier pushes a message to a recipient over an external channel.
//
// Delivery is best-effort and at-most-once: handlers call Notify only after
// their transaction has committed, log failures and never roll back for them.
type Notifier interface {
	Notify(ctx context.Context, recipientID kernel.UUID, message string) error
}
