// Package eventsink defines the outbound events emitted when a change request
// changes status and the sinks they are delivered to.
package eventsink

import (
	"context"
	"moderation/pkg/domain"
	"time"
)

// RateLimitStatus describes the rate-limit budget a sink reported with its
// last response.
type RateLimitStatus struct {
	Limit     int       // Limit is the total number of allowed requests in the current window.
	Remaining int       // Remaining indicates how many requests are left in the current window.
	ResetAt   time.Time // ResetAt is when the rate-limit window resets.
}

// Event is emitted once per (change request, status). Delivery is at-least-once;
// consumers deduplicate on ID.
type Event struct {
	// ID is "<change id>:<status>".
	ID         string
	ChangeID   domain.ChangeID
	Status     domain.ChangeStatus
	EntityType domain.EntityType
	EntityID   domain.CompanyID
	FieldKey   string
	// ReviewedBy is set for approvals and rejections.
	ReviewedBy      *domain.UserID
	RejectionReason string
	OccurredAt      time.Time
}

// EventID builds the idempotency key of the event for a change reaching status.
func EventID(changeID domain.ChangeID, status domain.ChangeStatus) string {
	return changeID.String() + ":" + string(status)
}

// Sink delivers events to an external consumer.
//
//go:generate mockgen -package mockeventsink -source=interface.go -destination=mock/mockeventsink.go *
type Sink interface {
	// Deliver sends the event. The returned status is the sink's rate-limit view
	// and is zero when the sink does not report one.
	Deliver(ctx context.Context, event Event) (RateLimitStatus, error)
}
