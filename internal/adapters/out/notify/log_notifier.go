// Package notify provides the outbound notification adapter.
// The current implementation writes notifications to the structured log;
// swapping in a messenger or email gateway only requires another
// ports.Notifier implementation.
package notify

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// LogNotifier implements ports.Notifier by emitting a structured log record
// per notification.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier that writes to the given logger.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify records the notification in the log.
func (n *LogNotifier) Notify(ctx context.Context, recipientID kernel.UUID, message string) error {
	if err := recipientID.Validate(); err != nil {
		return err
	}
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}

	n.logger.InfoContext(ctx, "notification sent",
		"recipient_id", recipientID.String(),
		"message", message,
	)
	return nil
}
