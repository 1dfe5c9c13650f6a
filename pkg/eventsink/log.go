package eventsink

import (
	"context"
	"moderation/pkg/logger"

	"go.uber.org/zap"
)

// LogSink writes events to the context logger. It is used when no external
// consumer is configured.
type LogSink struct{}

func (LogSink) Deliver(ctx context.Context, event Event) (RateLimitStatus, error) {
	logger.Info(ctx, "change request event",
		zap.String("eventID", event.ID),
		zap.Stringer("changeID", event.ChangeID),
		zap.String("status", string(event.Status)),
		zap.String("entityType", string(event.EntityType)),
		zap.Int64("companyID", int64(event.EntityID)),
		zap.String("fieldKey", event.FieldKey),
		zap.Time("occurredAt", event.OccurredAt))

	return RateLimitStatus{}, nil
}

var _ Sink = LogSink{}
