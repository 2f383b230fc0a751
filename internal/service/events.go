package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/marketstall/market-api/internal/events"
)

// publish never fails the calling operation; a lost event is only logged.
func publish(ctx context.Context, p events.Publisher, e events.Event) {
	if p == nil {
		return
	}

	if err := p.Publish(ctx, e); err != nil {
		zap.L().Warn("failed to publish event",
			zap.String("type", e.Type),
			zap.String("entity_id", e.EntityID),
			zap.Error(err),
		)
	}
}
