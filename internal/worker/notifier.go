package worker

import (
	"context"
	"errors"
	"fmt"
	"moderation/internal/moderation"
	"moderation/internal/stats"
	"moderation/pkg/eventsink"
	"moderation/pkg/logger"
	"moderation/pkg/serrors"
	"sync"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// NotificationWorker is a River worker that delivers change request events to the
// event sink. It embeds River's WorkerDefaults to integrate with the job runtime
// and provides its own cooperative rate limiting, so concurrent deliveries never
// exceed the budget the sink reports while still running in parallel when budget
// remains.
//
// # Rate limiting overview
//
// The worker tracks the last known rate-limit status of the sink (lastRLStatus)
// and the number of deliveries currently in flight (inFlightRequests). Before a
// delivery, reserveRL "reserves" a slot from the current budget. The effective
// remaining budget is computed as:
//
//	remaining := lastRLStatus.Remaining
//	if now > lastRLStatus.ResetAt { remaining = lastRLStatus.Limit }
//
// A delivery may start if remaining - inFlightRequests > 0. When there is no
// budget left, reserveRL waits until either the ResetAt time is reached or another
// in-flight delivery finishes and closes the finished channel.
//
// After a delivery, requestFinished is called with the status the sink returned.
// It decrements inFlightRequests, wakes every waiter and merges the
// status: a new ResetAt is always adopted, otherwise Remaining is only replaced
// when it decreases.
//
// Bootstrap behavior: before any status is known, lastRLStatus is a synthetic
// status with Limit=1, Remaining=1 and a far-future ResetAt, which lets exactly
// one delivery through. If it comes back without any rate-limit information the
// sink is treated as unlimited until it reports a status.
//
// Error handling: a change request that no longer exists cancels the job. A rate
// limited delivery is snoozed until ResetAt. Other errors are logged and returned
// so River retries with backoff.
type NotificationWorker struct {
	river.WorkerDefaults[moderation.NotifyJobArgs]

	// moderator loads the change request and delivers its event.
	moderator moderation.Moderator
	// aggregator caches pending counts that become stale once a status changes.
	aggregator stats.Aggregator
	// mu protects all fields below it.
	mu sync.Mutex
	// inFlightRequests counts deliveries currently running.
	inFlightRequests int
	// lastRLStatus stores the most recent view of the sink's rate limit.
	lastRLStatus *eventsink.RateLimitStatus
	// bootstrapping is true while the synthetic first status is in use.
	bootstrapping bool
	// unlimited is set when the sink does not report rate limits.
	unlimited bool
	// finished is closed and replaced when a delivery completes, waking every
	// goroutine waiting in reserveRL at once.
	finished chan struct{}
}

// NewNotificationWorker constructs a NotificationWorker.
func NewNotificationWorker(moderator moderation.Moderator, aggregator stats.Aggregator) *NotificationWorker {
	return &NotificationWorker{
		moderator:  moderator,
		aggregator: aggregator,
		finished:   make(chan struct{}),
	}
}

// Work delivers a single notification while respecting the sink's rate limit and
// maps errors to River actions.
func (w *NotificationWorker) Work(ctx context.Context, job *river.Job[moderation.NotifyJobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Stringer("changeID", job.Args.ChangeID),
		zap.String("status", string(job.Args.Status)))

	if err := w.reserveRL(ctx); err != nil {
		logger.Error(ctx, "error reserving rate limit", zap.Error(err))

		return fmt.Errorf("could not reserve rate limit: %w", err)
	}

	delivery, err := w.moderator.DeliverNotification(ctx, job.Args)
	w.requestFinished(ctx, delivery.RateLimit)

	// the change reached a new status whether or not the event got out
	if delivery.Change != nil && w.aggregator != nil {
		if err := w.aggregator.Invalidate(ctx, delivery.Change.EntityID); err != nil {
			logger.Warn(ctx, "could not invalidate pending count", zap.Error(err))
		}
	}

	if err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error delivering notification", zap.Error(err))

		if errors.Is(err, serrors.ErrRateLimited) {
			dur := time.Until(delivery.RateLimit.ResetAt)
			if dur < 0 {
				dur = 0
			}

			return river.JobSnooze(dur) //nolint: wrapcheck
		}

		return fmt.Errorf("could not deliver notification: %w", err)
	}

	logger.Info(ctx, "notification delivered")

	return nil
}

// requestFinished is called after every delivery attempt. It decrements the
// in-flight counter, wakes all waiters and merges newRLStatus into the last known
// status.
func (w *NotificationWorker) requestFinished(ctx context.Context, newRLStatus eventsink.RateLimitStatus) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.inFlightRequests > 0 {
		w.inFlightRequests--
	} else {
		w.inFlightRequests = 0
	}

	close(w.finished)
	w.finished = make(chan struct{})

	if newRLStatus.ResetAt.IsZero() {
		if w.bootstrapping {
			logger.Debug(ctx, "sink does not report rate limits")
			w.bootstrapping = false
			w.unlimited = true
		}

		return
	}

	log := func() {
		logger.Debug(ctx, "received rate limit status",
			zap.Int("limit", newRLStatus.Limit),
			zap.Int("remaining", newRLStatus.Remaining),
			zap.Time("resetAt", newRLStatus.ResetAt),
			zap.Int("inFlight", w.inFlightRequests))
	}

	w.unlimited = false
	if w.lastRLStatus == nil || w.bootstrapping {
		w.bootstrapping = false
		w.lastRLStatus = &newRLStatus
		log()

		return
	}

	if !w.lastRLStatus.ResetAt.Equal(newRLStatus.ResetAt) {
		w.lastRLStatus = &newRLStatus
		log()

		return
	}

	if newRLStatus.Remaining < w.lastRLStatus.Remaining {
		w.lastRLStatus = &newRLStatus
		log()
	}
}

// reserveRL reserves one unit of the rate-limit budget, blocking until one is
// available:
//  1. On first use, install the synthetic bootstrap status that allows one delivery.
//  2. Compute the effective remaining budget; past ResetAt it is the full Limit.
//  3. If remaining - inFlightRequests > 0, take the slot and return.
//  4. Otherwise wait for ResetAt or for any in-flight delivery to finish and retry.
//
// If ctx is canceled while waiting, an error is returned.
func (w *NotificationWorker) reserveRL(ctx context.Context) error {
	for {
		w.mu.Lock()

		if w.unlimited {
			w.inFlightRequests++
			w.mu.Unlock()

			return nil
		}

		if w.lastRLStatus == nil {
			w.lastRLStatus = &eventsink.RateLimitStatus{
				Limit:     1,
				Remaining: 1,
				ResetAt:   time.Now().Add(365 * 24 * time.Hour),
			}
			w.bootstrapping = true
		}

		remaining := w.lastRLStatus.Remaining
		if time.Now().UTC().After(w.lastRLStatus.ResetAt) {
			remaining = w.lastRLStatus.Limit
		}

		if remaining-w.inFlightRequests > 0 {
			logger.Debug(ctx, "reserved rate limit slot",
				zap.Int("remaining", remaining),
				zap.Int("limit", w.lastRLStatus.Limit),
				zap.Time("resetAt", w.lastRLStatus.ResetAt),
				zap.Int("inFlight", w.inFlightRequests))
			w.inFlightRequests++
			w.mu.Unlock()

			return nil
		}

		resetAt := w.lastRLStatus.ResetAt
		inFlight := w.inFlightRequests
		// taken under the lock so a delivery finishing right after Unlock is not missed
		finished := w.finished
		w.mu.Unlock()

		logger.Debug(ctx, "waiting for rate limit slot",
			zap.Int("remaining", remaining),
			zap.Time("resetAt", resetAt),
			zap.Int("inFlight", inFlight))

		timer := time.NewTimer(time.Until(resetAt))
		select {
		case <-ctx.Done():
			timer.Stop()

			return fmt.Errorf("timeout waiting for rate limit: %w", ctx.Err())
		case <-finished:
			timer.Stop()
		case <-timer.C:
		}
	}
}
