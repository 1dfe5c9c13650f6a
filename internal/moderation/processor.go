package moderation

import (
	"context"
	"errors"
	"fmt"
	"moderation/pkg/domain"
	"moderation/pkg/logger"
	"moderation/pkg/serrors"
	"moderation/pkg/storage"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// Approve applies a pending change request to its company and marks it approved.
// Applying and resolving happen in one transaction: either the company gets the new
// value, a bumped version and a revision record and the request becomes approved, or
// nothing is written at all.
//
// Approving an already approved request returns the original result with
// AlreadyResolved set. Approving a rejected or superseded request fails with
// *AlreadyResolvedError.
func (s *Service) Approve(ctx context.Context,
	ID domain.ChangeID,
	reviewerID domain.UserID) (res *ApprovalResult, err error) {
	ctx, span := s.startSpan(ctx, "Approve", attribute.String("change_id", ID.String()))
	defer func() { endSpan(span, err) }()

	start := time.Now()
	defer func() {
		s.metrics.approveLatency.Record(ctx, time.Since(start).Seconds())
	}()

	if reviewerID.IsZero() {
		return nil, serrors.With(serrors.ErrBadRequest, "reviewer is required")
	}
	ctx = logger.WithFields(ctx, zap.Stringer("changeID", ID), zap.Stringer("reviewerID", reviewerID))

	change, err := s.GetChange(ctx, ID)
	if err != nil {
		return nil, err
	}
	if change.Status != domain.ChangeStatusPending {
		return s.approvedAlready(ctx, *change)
	}

	// no network call may happen while the company row is locked
	if err := s.verifyMedia(ctx, *change); err != nil {
		logger.Warn(ctx, "media pre-flight failed", zap.Error(err))

		return nil, err
	}

	var (
		company  *domain.Company
		approved *domain.ChangeRequest
	)
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		company, approved, err = s.applyApproval(ctx, tx, *change, reviewerID)

		return err
	}); err != nil {
		if errors.Is(err, storage.ErrStaleStatus) {
			// lost against a concurrent reviewer
			current, err := s.GetChange(ctx, ID)
			if err != nil {
				return nil, err
			}

			return s.approvedAlready(ctx, *current)
		}

		return nil, fmt.Errorf("could not approve change request: %w", err)
	}

	s.countResolution(ctx, domain.ChangeStatusApproved)
	logger.Info(ctx, "change request approved", zap.Int64("entityVersion", company.Version))

	return &ApprovalResult{Change: *approved, EntityVersion: company.Version}, nil
}

// applyApproval runs inside the approval transaction and returns the updated company
// and the approved request.
func (s *Service) applyApproval(ctx context.Context,
	tx storage.AllStorage,
	pre domain.ChangeRequest,
	reviewerID domain.UserID) (*domain.Company, *domain.ChangeRequest, error) {
	company, err := tx.CompanyByID(ctx, pre.EntityID, true)
	if err != nil {
		return nil, nil, fmt.Errorf("could not lock company: %w", err)
	}
	if company == nil {
		return nil, nil, serrors.With(serrors.ErrNotFound, "company not found")
	}

	// the request may have been resolved while we waited for the lock
	change, err := tx.ChangeRequestByID(ctx, pre.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("could not get change request: %w", err)
	}
	if change == nil {
		return nil, nil, serrors.With(serrors.ErrNotFound, "change request not found")
	}
	if change.Status != domain.ChangeStatusPending {
		return nil, nil, storage.ErrStaleStatus
	}

	if company.Version != change.EntityVersionAtSubmit {
		logger.Warn(ctx, "company was modified after the change was submitted, needs investigation",
			zap.Int64("entityVersion", company.Version),
			zap.Int64("submittedAgainst", change.EntityVersionAtSubmit))

		return nil, nil, serrors.With(serrors.ErrConflict,
			"company is at version %d but the change was submitted against version %d",
			company.Version, change.EntityVersionAtSubmit)
	}

	next, err := applyChange(ctx, tx, company, *change)
	if err != nil {
		return nil, nil, serrors.Wrap(serrors.ErrApplyFailure, err, "could not apply change")
	}

	updated, err := tx.UpdateCompany(ctx, *next, company.Version)
	if err != nil {
		if errors.Is(err, storage.ErrStaleVersion) {
			return nil, nil, serrors.Wrap(serrors.ErrConflict, err, "company was modified concurrently")
		}

		return nil, nil, fmt.Errorf("could not update company: %w", err)
	}

	revision, err := newRevision(company, updated, change.ID)
	if err != nil {
		return nil, nil, serrors.Wrap(serrors.ErrApplyFailure, err, "could not compute revision")
	}
	if err := tx.StoreCompanyRevision(ctx, *revision); err != nil {
		return nil, nil, fmt.Errorf("could not store company revision: %w", err)
	}

	approved, err := tx.TransitionChangeRequest(ctx,
		change.ID,
		domain.ChangeStatusPending,
		domain.ChangeStatusApproved,
		storage.ChangeTransition{ReviewedBy: &reviewerID})
	if err != nil {
		return nil, nil, fmt.Errorf("could not mark change request approved: %w", err)
	}
	if approved == nil {
		return nil, nil, serrors.With(serrors.ErrNotFound, "change request not found")
	}

	if err := s.dispatcher.Notify(ctx, tx, approved.ID, domain.ChangeStatusApproved); err != nil {
		return nil, nil, err
	}

	return updated, approved, nil
}

// approvedAlready answers an approval of a request that is no longer pending.
func (s *Service) approvedAlready(ctx context.Context, change domain.ChangeRequest) (*ApprovalResult, error) {
	switch change.Status {
	case domain.ChangeStatusApproved:
		revision, err := s.storage.CompanyRevisionByChangeID(ctx, change.ID)
		if err != nil {
			return nil, fmt.Errorf("could not get company revision: %w", err)
		}
		version := change.EntityVersionAtSubmit + 1
		if revision != nil {
			version = revision.Version
		}

		return &ApprovalResult{Change: change, EntityVersion: version, AlreadyResolved: true}, nil
	case domain.ChangeStatusPending:
		return nil, serrors.Wrap(serrors.ErrStaleStatus, storage.ErrStaleStatus, "change request is still pending")
	default:
		return nil, &AlreadyResolvedError{Change: change}
	}
}

// verifyMedia confirms that the asset referenced by a logo or banner change exists and
// has the recorded checksum. Any failure leaves the request pending.
func (s *Service) verifyMedia(ctx context.Context, change domain.ChangeRequest) error {
	if !change.EntityType.IsMedia() {
		return nil
	}

	ref := change.Payload.Media
	asset, err := s.media.Resolve(ctx, ref.AssetID)
	if err != nil {
		return serrors.Wrap(serrors.ErrApplyFailure, err, "could not resolve media asset %q", ref.AssetID)
	}
	if asset == nil {
		return serrors.With(serrors.ErrApplyFailure, "media asset %q does not exist", ref.AssetID)
	}
	if !strings.EqualFold(asset.Checksum, ref.Checksum) {
		return serrors.With(serrors.ErrApplyFailure, "media asset %q checksum mismatch", ref.AssetID)
	}

	return nil
}

// Reject resolves a pending change request without touching its company. The reason
// is mandatory. Rejecting an already rejected request returns it with AlreadyResolved
// set; rejecting an approved or superseded one fails with *AlreadyResolvedError.
func (s *Service) Reject(ctx context.Context,
	ID domain.ChangeID,
	reviewerID domain.UserID,
	reason string) (res *ResolutionResult, err error) {
	ctx, span := s.startSpan(ctx, "Reject", attribute.String("change_id", ID.String()))
	defer func() { endSpan(span, err) }()

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "rejection reason is required")
	}
	if reviewerID.IsZero() {
		return nil, serrors.With(serrors.ErrBadRequest, "reviewer is required")
	}
	ctx = logger.WithFields(ctx, zap.Stringer("changeID", ID), zap.Stringer("reviewerID", reviewerID))

	var rejected *domain.ChangeRequest
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		rejected, err = tx.TransitionChangeRequest(ctx,
			ID,
			domain.ChangeStatusPending,
			domain.ChangeStatusRejected,
			storage.ChangeTransition{ReviewedBy: &reviewerID, RejectionReason: reason})
		if err != nil {
			return err
		}
		if rejected == nil {
			return serrors.With(serrors.ErrNotFound, "change request not found")
		}

		return s.dispatcher.Notify(ctx, tx, rejected.ID, domain.ChangeStatusRejected)
	}); err != nil {
		if !errors.Is(err, storage.ErrStaleStatus) {
			return nil, fmt.Errorf("could not reject change request: %w", err)
		}

		current, err := s.GetChange(ctx, ID)
		if err != nil {
			return nil, err
		}
		if current.Status == domain.ChangeStatusRejected {
			return &ResolutionResult{Change: *current, AlreadyResolved: true}, nil
		}

		return nil, &AlreadyResolvedError{Change: *current}
	}

	s.countResolution(ctx, domain.ChangeStatusRejected)
	logger.Info(ctx, "change request rejected")

	return &ResolutionResult{Change: *rejected}, nil
}

func (s *Service) countResolution(ctx context.Context, status domain.ChangeStatus) {
	s.metrics.resolutions.Add(ctx, 1, metric.WithAttributes(attribute.String("status", string(status))))
}
