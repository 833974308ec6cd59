package store

import (
	"context"

	"github.com/serroba/golinks/internal/analytics"
	"go.uber.org/zap"
)

// Noop is an analytics.Store that only logs events. Used when no durable
// event store is configured.
type Noop struct {
	logger *zap.Logger
}

// NewNoop creates a logging no-op analytics store.
func NewNoop(logger *zap.Logger) *Noop {
	return &Noop{logger: logger}
}

func (n *Noop) SaveLinkVisited(_ context.Context, event *analytics.LinkVisitedEvent) error {
	n.logger.Info("link visited event received",
		zap.String("shortcut", event.Shortcut),
		zap.String("referrer", event.Referrer),
		zap.String("country", event.Country),
		zap.Time("visitedAt", event.VisitedAt),
	)

	return nil
}
