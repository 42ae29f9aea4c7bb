package notifier

import (
	"context"

	"speed/internal/domain/entity"
)

// NoOpNotifier is used when no webhook is configured.
type NoOpNotifier struct{}

// NewNoOpNotifier creates a new NoOpNotifier instance.
func NewNoOpNotifier() *NoOpNotifier {
	return &NoOpNotifier{}
}

// Name implements Notifier.
func (n *NoOpNotifier) Name() string { return "noop" }

// NotifyDigest does nothing.
func (n *NoOpNotifier) NotifyDigest(context.Context, entity.QueueDigest) error {
	return nil
}
