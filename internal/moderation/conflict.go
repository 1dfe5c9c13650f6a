package moderation

import (
	"context"
	"errors"
	"fmt"
	"moderation/pkg/domain"
	"moderation/pkg/serrors"
	"moderation/pkg/storage"
)

// DecisionKind is the outcome of checking a submission against pending requests.
type DecisionKind int

const (
	// DecisionNone means no request was pending for the field.
	DecisionNone DecisionKind = iota
	// DecisionSupersede means the pending request was marked superseded.
	DecisionSupersede
)

// Decision reports what resolveConflict did.
type Decision struct {
	Kind DecisionKind
	// Superseded is the request that was superseded, if any.
	Superseded *domain.ChangeRequest
}

// resolveConflict must run inside the submission transaction. It locks the pending
// request for the entity field, if there is one, and either supersedes it or refuses
// the submission depending on the conflict policy. Fields are independent: only a
// request with the exact same field key conflicts.
func (s *Service) resolveConflict(ctx context.Context,
	tx storage.AllStorage,
	entityID domain.CompanyID,
	fieldKey string) (Decision, error) {
	existing, err := tx.PendingChangeRequest(ctx, entityID, fieldKey, true)
	if err != nil {
		return Decision{}, fmt.Errorf("could not get pending change request: %w", err)
	}
	if existing == nil {
		return Decision{Kind: DecisionNone}, nil
	}

	if s.options.ConflictPolicy == ConflictPolicyReject {
		return Decision{}, serrors.With(serrors.ErrConflict,
			"change request %s is already pending for field %q", existing.ID, fieldKey)
	}

	superseded, err := tx.TransitionChangeRequest(ctx,
		existing.ID,
		domain.ChangeStatusPending,
		domain.ChangeStatusSuperseded,
		storage.ChangeTransition{})
	switch {
	case errors.Is(err, storage.ErrStaleStatus), err == nil && superseded == nil:
		// resolved by a reviewer before the lock was taken
		return Decision{Kind: DecisionNone}, nil
	case err != nil:
		return Decision{}, fmt.Errorf("could not supersede change request: %w", err)
	}

	return Decision{Kind: DecisionSupersede, Superseded: superseded}, nil
}
