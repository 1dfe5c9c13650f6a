package storage

import (
	"context"
	"moderation/pkg/domain"
	"time"
)

// ChangeTransition carries the resolution fields written together with a status change.
// These, plus the status, are the only columns of a change request that are ever updated.
type ChangeTransition struct {
	// ReviewedBy is the reviewer resolving the request; nil for supersession.
	ReviewedBy *domain.UserID
	// RejectionReason must be non-empty when transitioning to rejected.
	RejectionReason string
	// ResolvedAt is stamped on every transition out of pending.
	ResolvedAt time.Time
}

// PendingFilter narrows ListPendingChangeRequests.
type PendingFilter struct {
	// EntityID restricts the result to one company when set.
	EntityID *domain.CompanyID
	// Limit caps the number of rows; zero means no limit.
	Limit uint
}

// PendingCount is the number of pending change requests of one company.
type PendingCount struct {
	EntityID domain.CompanyID `db:"entity_id"`
	Pending  int64            `db:"pending"`
}

// DuplicatePending describes a (company, field) pair that has more than one pending
// change request. Such a group should never exist.
type DuplicatePending struct {
	EntityID domain.CompanyID `db:"entity_id"`
	FieldKey string           `db:"field_key"`
	Count    int64            `db:"count"`
}

// ChangeRequestStorage persists change requests. There is no delete operation: change
// requests are kept forever and only move between statuses.
type ChangeRequestStorage interface {
	// CreateChangeRequest inserts a new change request and returns the stored row
	// including its generated id and creation time. ErrDuplicatePending is returned
	// when a pending request for the same entity and field already exists.
	CreateChangeRequest(ctx context.Context, change domain.ChangeRequest) (*domain.ChangeRequest, error)
	// ChangeRequestByID returns the change request or nil when it does not exist.
	ChangeRequestByID(ctx context.Context, ID domain.ChangeID) (*domain.ChangeRequest, error)
	// PendingChangeRequest returns the pending request for the entity and field, or nil.
	// With forUpdate the row is locked until the surrounding transaction ends.
	PendingChangeRequest(ctx context.Context,
		entityID domain.CompanyID,
		fieldKey string,
		forUpdate bool) (*domain.ChangeRequest, error)
	// ListPendingChangeRequests returns pending requests ordered by creation time.
	ListPendingChangeRequests(ctx context.Context, filter PendingFilter) ([]domain.ChangeRequest, error)
	// TransitionChangeRequest atomically moves a request from one status to another,
	// writing the resolution fields. It returns the updated row, ErrStaleStatus when
	// the row is in a different status, or nil when the row does not exist.
	TransitionChangeRequest(ctx context.Context,
		ID domain.ChangeID,
		from, to domain.ChangeStatus,
		transition ChangeTransition) (*domain.ChangeRequest, error)
	// PendingCountsByEntity returns the number of pending requests per company.
	// Companies without pending requests are omitted.
	PendingCountsByEntity(ctx context.Context, entityIDs ...domain.CompanyID) ([]PendingCount, error)
	// DuplicatePendingGroups returns every (company, field) pair holding more than one
	// pending request.
	DuplicatePendingGroups(ctx context.Context) ([]DuplicatePending, error)
}
