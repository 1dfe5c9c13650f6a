package moderation

import (
	"context"
	"fmt"
	"moderation/pkg/domain"
	"moderation/pkg/eventsink"
	"moderation/pkg/logger"
	"moderation/pkg/serrors"
	"moderation/pkg/storage"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// NotifyJobArgs contains the arguments of a notification job submitted to River.
// A change request reaches every status at most once, so the pair is used as the
// unique key of the job and duplicate enqueues collapse into one delivery.
type NotifyJobArgs struct {
	ChangeID domain.ChangeID     `json:"changeId" river:"unique"`
	Status   domain.ChangeStatus `json:"status"   river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the notification worker.
func (args NotifyJobArgs) Kind() string { return "NotifyChangeJob" }

// InsertOpts returns the River options that control how the job is enqueued.
func (args NotifyJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		// one job per (change, status) in any state
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}

// Dispatcher enqueues notification jobs in the transaction that changes the status,
// so a job exists if and only if the status change committed.
type Dispatcher struct {
	maxAttempts int
	failures    metric.Int64Counter
}

// Notify enqueues the notification of a change request reaching status through jobs,
// which must be the storage of the transaction making the change. An error must roll
// that transaction back.
func (d *Dispatcher) Notify(ctx context.Context,
	jobs storage.JobStorage,
	ID domain.ChangeID,
	status domain.ChangeStatus) error {
	added, err := jobs.AddJob(ctx, NotifyJobArgs{
		ChangeID:    ID,
		Status:      status,
		maxAttempts: d.maxAttempts,
	}, nil)
	if err != nil {
		d.failures.Add(ctx, 1, metric.WithAttributes(attribute.String("status", string(status))))
		logger.Error(ctx, "could not enqueue notification",
			zap.Stringer("changeID", ID),
			zap.String("status", string(status)),
			zap.Error(err))

		return fmt.Errorf("could not enqueue %s notification: %w", status, err)
	}
	if !added {
		logger.Debug(ctx, "notification already enqueued",
			zap.Stringer("changeID", ID),
			zap.String("status", string(status)))
	}

	return nil
}

// DeliverNotification loads the change request named by args and delivers its event
// to the sink. The returned delivery carries the sink's rate-limit view even when
// delivery failed.
func (s *Service) DeliverNotification(ctx context.Context, args NotifyJobArgs) (Delivery, error) {
	change, err := s.storage.ChangeRequestByID(ctx, args.ChangeID)
	if err != nil {
		return Delivery{}, fmt.Errorf("could not get change request: %w", err)
	}
	if change == nil {
		return Delivery{}, serrors.With(serrors.ErrNotFound, "change request not found")
	}

	event := newEvent(*change, args.Status)
	rl, err := s.sink.Deliver(ctx, event)
	if err != nil {
		return Delivery{Change: change, RateLimit: rl}, fmt.Errorf("could not deliver event: %w", err)
	}

	return Delivery{Change: change, RateLimit: rl}, nil
}

// newEvent builds the event of change reaching status. The status comes from the job
// and not from the row: a pending event is still sent after the request was resolved.
func newEvent(change domain.ChangeRequest, status domain.ChangeStatus) eventsink.Event {
	event := eventsink.Event{
		ID:         eventsink.EventID(change.ID, status),
		ChangeID:   change.ID,
		Status:     status,
		EntityType: change.EntityType,
		EntityID:   change.EntityID,
		FieldKey:   change.FieldKey,
		OccurredAt: change.CreatedAt,
	}
	if status != domain.ChangeStatusPending && change.Status == status {
		event.ReviewedBy = change.ReviewedBy
		event.RejectionReason = change.RejectionReason
		event.OccurredAt = change.ResolvedAt
	}

	return event
}
