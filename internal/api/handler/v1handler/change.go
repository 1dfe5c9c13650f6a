package v1handler

import (
	"context"
	"moderation/internal/api/specs/v1specs"
	"moderation/internal/moderation"
	"moderation/pkg/domain"
	"moderation/pkg/serrors"

	"github.com/google/uuid"
)

func DomainPayloadToV1Specs(in *domain.Payload) v1specs.ChangePayload {
	var out v1specs.ChangePayload
	if in.Field != nil {
		var diff v1specs.FieldDiff
		if in.Field.NewValue != nil {
			diff.NewValue = *in.Field.NewValue
		}
		if in.Field.OldValue != nil {
			diff.OldValue = v1specs.NewOptNilString(*in.Field.OldValue)
		} else {
			diff.OldValue.SetToNull()
		}
		out.Field = &diff
	}
	if in.Media != nil {
		out.Media = &v1specs.MediaRef{AssetId: in.Media.AssetID, Checksum: in.Media.Checksum}
	}
	if in.Category != nil {
		out.Category = &v1specs.CategoryChange{
			Operation:  v1specs.CategoryChangeOperation(in.Category.Operation),
			CategoryId: int64(in.Category.CategoryID),
		}
	}

	return out
}

func V1SpecsPayloadToDomain(in *v1specs.ChangePayload) domain.Payload {
	var out domain.Payload
	if in.Field != nil {
		newValue := in.Field.NewValue
		out.Field = &domain.FieldDiff{OldValue: in.Field.OldValue.Ptr(), NewValue: &newValue}
	}
	if in.Media != nil {
		out.Media = &domain.MediaRef{AssetID: in.Media.AssetId, Checksum: in.Media.Checksum}
	}
	if in.Category != nil {
		out.Category = &domain.CategoryChange{
			Operation:  domain.CategoryOperation(in.Category.Operation),
			CategoryID: domain.CategoryID(in.Category.CategoryId),
		}
	}

	return out
}

func DomainChangeToV1Specs(in *domain.ChangeRequest) v1specs.Change {
	out := v1specs.Change{
		ID:                    uuid.UUID(in.ID),
		EntityType:            v1specs.EntityType(in.EntityType),
		EntityId:              int64(in.EntityID),
		FieldKey:              in.FieldKey,
		Payload:               DomainPayloadToV1Specs(&in.Payload),
		Status:                v1specs.ChangeStatus(in.Status),
		SubmittedBy:           uuid.UUID(in.SubmittedBy),
		EntityVersionAtSubmit: in.EntityVersionAtSubmit,
		CreatedAt:             in.CreatedAt,
	}
	if in.ReviewedBy != nil {
		out.ReviewedBy = v1specs.NewOptUUID(uuid.UUID(*in.ReviewedBy))
	}
	if in.RejectionReason != "" {
		out.RejectionReason = v1specs.NewOptString(in.RejectionReason)
	}
	if !in.ResolvedAt.IsZero() {
		out.ResolvedAt.SetTo(in.ResolvedAt)
	}

	return out
}

// SubmitChange proposes a change of a company on behalf of the authenticated user.
func (h Handler) SubmitChange(
	ctx context.Context,
	req *v1specs.SubmitChangeRequest,
	params v1specs.SubmitChangeParams) (*v1specs.Change, error) {
	change, err := h.deps.Moderator.SubmitChange(ctx, moderation.SubmitRequest{
		EntityType:  domain.EntityType(req.EntityType),
		EntityID:    domain.CompanyID(params.CompanyID),
		FieldKey:    req.FieldKey.Value,
		Payload:     V1SpecsPayloadToDomain(&req.Payload),
		SubmittedBy: GetUserIDFromContext(ctx),
	})
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	out := DomainChangeToV1Specs(change)

	return &out, nil
}

// ListPendingChanges returns pending change requests, optionally of one company.
func (h Handler) ListPendingChanges(
	ctx context.Context,
	params v1specs.ListPendingChangesParams) (*v1specs.ChangeList, error) {
	var entityID *domain.CompanyID
	if params.CompanyID.IsSet() {
		id := domain.CompanyID(params.CompanyID.Value)
		entityID = &id
	}

	changes, err := h.deps.Moderator.ListPending(ctx, entityID)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	items := make([]v1specs.Change, 0, len(changes))
	for i := range changes {
		items = append(items, DomainChangeToV1Specs(&changes[i]))
	}

	return &v1specs.ChangeList{Items: items}, nil
}

// GetChange returns a change request by ID.
func (h Handler) GetChange(ctx context.Context, params v1specs.GetChangeParams) (*v1specs.Change, error) {
	change, err := h.deps.Moderator.GetChange(ctx, domain.ChangeID(params.ChangeID))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	out := DomainChangeToV1Specs(change)

	return &out, nil
}

// ApproveChange approves a change request as the authenticated reviewer.
func (h Handler) ApproveChange(
	ctx context.Context,
	params v1specs.ApproveChangeParams) (*v1specs.ApprovalResult, error) {
	res, err := h.deps.Moderator.Approve(ctx, domain.ChangeID(params.ChangeID), GetUserIDFromContext(ctx))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &v1specs.ApprovalResult{
		Change:          DomainChangeToV1Specs(&res.Change),
		EntityVersion:   res.EntityVersion,
		AlreadyResolved: res.AlreadyResolved,
	}, nil
}

// RejectChange rejects a change request as the authenticated reviewer.
func (h Handler) RejectChange(
	ctx context.Context,
	req *v1specs.RejectChangeRequest,
	params v1specs.RejectChangeParams) (*v1specs.ResolutionResult, error) {
	res, err := h.deps.Moderator.Reject(ctx,
		domain.ChangeID(params.ChangeID),
		GetUserIDFromContext(ctx),
		req.Reason)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &v1specs.ResolutionResult{
		Change:          DomainChangeToV1Specs(&res.Change),
		AlreadyResolved: res.AlreadyResolved,
	}, nil
}

// GetPendingCount returns how many change requests of a company await review.
func (h Handler) GetPendingCount(
	ctx context.Context,
	params v1specs.GetPendingCountParams) (*v1specs.PendingCount, error) {
	if h.deps.Stats == nil {
		return nil, serrors.With(serrors.ErrUnavailable, "pending counts are not available")
	}

	pending, err := h.deps.Stats.PendingCount(ctx, domain.CompanyID(params.CompanyID))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &v1specs.PendingCount{CompanyId: params.CompanyID, Pending: pending}, nil
}
