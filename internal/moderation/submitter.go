package moderation

import (
	"context"
	"errors"
	"fmt"
	"moderation/pkg/domain"
	"moderation/pkg/logger"
	"moderation/pkg/serrors"
	"moderation/pkg/storage"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// SubmitChange validates an owner's edit and stores it as a pending change request.
// A request already pending for the same company field is superseded (or, with the
// reject policy, the submission fails with a conflict). Both happen in one
// transaction together with enqueueing their notifications, so at most one request
// per field is ever pending and no committed status change goes unannounced.
func (s *Service) SubmitChange(ctx context.Context, req SubmitRequest) (res *domain.ChangeRequest, err error) {
	ctx, span := s.startSpan(ctx, "SubmitChange",
		attribute.String("entity_type", string(req.EntityType)),
		attribute.Int64("entity_id", int64(req.EntityID)))
	defer func() { endSpan(span, err) }()

	req, err = s.normalizeSubmission(req)
	if err != nil {
		s.countSubmission(ctx, req.EntityType, "invalid")

		return nil, err
	}
	ctx = logger.WithFields(ctx,
		zap.Stringer("entityID", req.EntityID),
		zap.String("fieldKey", req.FieldKey),
		zap.Stringer("submittedBy", req.SubmittedBy))

	var (
		created  *domain.ChangeRequest
		decision Decision
	)
	for attempt := 1; ; attempt++ {
		created, decision, err = s.submitOnce(ctx, req)
		if err == nil {
			break
		}
		if !errors.Is(err, storage.ErrDuplicatePending) {
			s.countSubmission(ctx, req.EntityType, "failed")

			return nil, err
		}
		if attempt >= s.options.SubmitRetries {
			s.countSubmission(ctx, req.EntityType, "conflict")

			return nil, serrors.Wrap(serrors.ErrConflict, err, "concurrent submissions for field %q", req.FieldKey)
		}

		logger.Debug(ctx, "lost race against a concurrent submission, retrying", zap.Int("attempt", attempt))
	}

	s.countSubmission(ctx, req.EntityType, "accepted")
	if decision.Kind == DecisionSupersede {
		s.metrics.supersessions.Add(ctx, 1)
		logger.Info(ctx, "pending change request superseded",
			zap.Stringer("supersededID", decision.Superseded.ID),
			zap.Stringer("changeID", created.ID))
	}

	return created, nil
}

func (s *Service) submitOnce(ctx context.Context, req SubmitRequest) (*domain.ChangeRequest, Decision, error) {
	var (
		created  *domain.ChangeRequest
		decision Decision
	)

	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		company, err := tx.CompanyByID(ctx, req.EntityID, false)
		if err != nil {
			return fmt.Errorf("could not get company: %w", err)
		}
		if company == nil {
			return serrors.With(serrors.ErrNotFound, "company not found")
		}

		if cat := req.Payload.Category; cat != nil && cat.Operation == domain.CategoryOperationAdd {
			exists, err := tx.CategoryExists(ctx, cat.CategoryID)
			if err != nil {
				return fmt.Errorf("could not check category: %w", err)
			}
			if !exists {
				return serrors.With(serrors.ErrBadRequest, "unknown category %d", cat.CategoryID)
			}
		}

		decision, err = s.resolveConflict(ctx, tx, req.EntityID, req.FieldKey)
		if err != nil {
			return err
		}

		created, err = tx.CreateChangeRequest(ctx, domain.ChangeRequest{
			EntityType:            req.EntityType,
			EntityID:              req.EntityID,
			FieldKey:              req.FieldKey,
			Payload:               req.Payload,
			Status:                domain.ChangeStatusPending,
			SubmittedBy:           req.SubmittedBy,
			EntityVersionAtSubmit: company.Version,
		})
		if err != nil {
			return fmt.Errorf("could not create change request: %w", err)
		}

		if decision.Kind == DecisionSupersede {
			if err := s.dispatcher.Notify(ctx, tx, decision.Superseded.ID, domain.ChangeStatusSuperseded); err != nil {
				return err
			}
		}

		return s.dispatcher.Notify(ctx, tx, created.ID, domain.ChangeStatusPending)
	}); err != nil {
		return nil, Decision{}, fmt.Errorf("could not submit change request: %w", err)
	}

	return created, decision, nil
}

func (s *Service) countSubmission(ctx context.Context, entityType domain.EntityType, outcome string) {
	s.metrics.submissions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("entity_type", string(entityType)),
		attribute.String("outcome", outcome)))
}
