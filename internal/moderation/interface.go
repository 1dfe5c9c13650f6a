// Package moderation implements the change request workflow: owners submit
// proposed edits of their company profile, reviewers approve or reject them, and
// approved edits are applied to the canonical profile in a single transaction.
package moderation

import (
	"context"
	"moderation/pkg/domain"
	"moderation/pkg/eventsink"
	"moderation/pkg/storage"
)

// SubmitRequest is an owner's proposed edit.
type SubmitRequest struct {
	EntityType domain.EntityType
	EntityID   domain.CompanyID
	// FieldKey names the profile attribute for field changes. It may be left empty
	// for the other entity types; their sentinel key is filled in.
	FieldKey    string
	Payload     domain.Payload
	SubmittedBy domain.UserID
}

// ApprovalResult is returned by Approve.
type ApprovalResult struct {
	Change domain.ChangeRequest
	// EntityVersion is the company version produced by applying the change.
	EntityVersion int64
	// AlreadyResolved is true when the change had been approved before this call.
	AlreadyResolved bool
}

// ResolutionResult is returned by Reject.
type ResolutionResult struct {
	Change domain.ChangeRequest
	// AlreadyResolved is true when the change had been rejected before this call.
	AlreadyResolved bool
}

// Delivery is the outcome of delivering one notification.
type Delivery struct {
	// Change is nil when delivery failed before the change request was loaded.
	Change    *domain.ChangeRequest
	RateLimit eventsink.RateLimitStatus
}

//go:generate mockgen -package mockmoderation -source=interface.go -destination=mock/mockmoderation.go *
type Moderator interface {
	SubmitChange(ctx context.Context, req SubmitRequest) (*domain.ChangeRequest, error)
	ListPending(ctx context.Context, entityID *domain.CompanyID) ([]domain.ChangeRequest, error)
	GetChange(ctx context.Context, ID domain.ChangeID) (*domain.ChangeRequest, error)
	Approve(ctx context.Context, ID domain.ChangeID, reviewerID domain.UserID) (*ApprovalResult, error)
	Reject(ctx context.Context,
		ID domain.ChangeID,
		reviewerID domain.UserID,
		reason string) (*ResolutionResult, error)
	// CheckInvariants reports every entity field holding more than one pending request.
	CheckInvariants(ctx context.Context) ([]storage.DuplicatePending, error)
	// DeliverNotification sends the event of a change reaching a status to the sink.
	DeliverNotification(ctx context.Context, args NotifyJobArgs) (Delivery, error)
}
