package moderation

import (
	"context"
	"errors"
	"fmt"
	"moderation/internal/config"
	"moderation/pkg/domain"
	"moderation/pkg/eventsink"
	"moderation/pkg/media"
	"moderation/pkg/metrics"
	"moderation/pkg/serrors"
	"moderation/pkg/storage"
	"regexp"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// ConflictPolicy decides what happens when a submission targets a field that already
// has a pending change request.
type ConflictPolicy string

const (
	// ConflictPolicySupersede marks the older pending request superseded and keeps the new one.
	ConflictPolicySupersede ConflictPolicy = "supersede"
	// ConflictPolicyReject refuses the new submission while a request is pending.
	ConflictPolicyReject ConflictPolicy = "reject"
)

const defaultSubmitRetries = 3

// Options configure the moderation service.
type Options struct {
	// ConflictPolicy is applied when a field already has a pending request.
	ConflictPolicy ConflictPolicy
	// SubmitRetries bounds how many times a submission that lost a race against a
	// concurrent submission for the same field is retried.
	SubmitRetries int
	// NotifyMaxAttempts is the maximum number of delivery attempts of a notification job.
	NotifyMaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		ConflictPolicy:    ConflictPolicy(cfg.Moderation.ConflictPolicy),
		SubmitRetries:     cfg.Moderation.SubmitRetries,
		NotifyMaxAttempts: cfg.Worker.NotifyMaxAttempts,
	}
}

var fieldKeyPattern = regexp.MustCompile(`^[a-z][a-z0-9_]{0,63}$`) //nolint: gochecknoglobals

type serviceMetrics struct {
	submissions    metric.Int64Counter
	supersessions  metric.Int64Counter
	resolutions    metric.Int64Counter
	notifyFailures metric.Int64Counter
	approveLatency metric.Float64Histogram
}

func newServiceMetrics() (*serviceMetrics, error) {
	meter := otel.Meter("moderation")

	submissions, err := meter.Int64Counter("moderation.submissions",
		metric.WithDescription("Change requests submitted, by entity type and outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create submissions counter: %w", err)
	}
	supersessions, err := meter.Int64Counter("moderation.supersessions",
		metric.WithDescription("Pending change requests superseded by a newer submission."))
	if err != nil {
		return nil, fmt.Errorf("could not create supersessions counter: %w", err)
	}
	resolutions, err := meter.Int64Counter("moderation.resolutions",
		metric.WithDescription("Change requests resolved by a reviewer, by status."))
	if err != nil {
		return nil, fmt.Errorf("could not create resolutions counter: %w", err)
	}
	notifyFailures, err := meter.Int64Counter("moderation.notify.enqueue_failures",
		metric.WithDescription("Notifications that could not be enqueued."))
	if err != nil {
		return nil, fmt.Errorf("could not create notify failures counter: %w", err)
	}
	approveLatency, err := meter.Float64Histogram("moderation.approve.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Time spent approving a change request."),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create approve histogram: %w", err)
	}

	return &serviceMetrics{
		submissions:    submissions,
		supersessions:  supersessions,
		resolutions:    resolutions,
		notifyFailures: notifyFailures,
		approveLatency: approveLatency,
	}, nil
}

// Service is the Moderator implementation. It coordinates the storage layer, the
// media resolver used to verify assets before applying them and the event sink
// notifications are delivered to.
type Service struct {
	options    Options
	storage    storage.Storage
	media      media.Resolver
	sink       eventsink.Sink
	dispatcher *Dispatcher
	validate   *validator.Validate
	tracer     trace.Tracer
	metrics    *serviceMetrics
}

var _ Moderator = (*Service)(nil)

// New creates a moderation service. Zero options fall back to the supersede policy
// and the default number of submit retries.
func New(st storage.Storage, resolver media.Resolver, sink eventsink.Sink, options Options) (*Service, error) {
	if st == nil || resolver == nil || sink == nil {
		return nil, errors.New("storage, media resolver and event sink are required")
	}

	switch options.ConflictPolicy {
	case "":
		options.ConflictPolicy = ConflictPolicySupersede
	case ConflictPolicySupersede, ConflictPolicyReject:
	default:
		return nil, fmt.Errorf("unknown conflict policy %q", options.ConflictPolicy)
	}
	if options.SubmitRetries <= 0 {
		options.SubmitRetries = defaultSubmitRetries
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.RegisterValidation("fieldkey", func(fl validator.FieldLevel) bool {
		return fieldKeyPattern.MatchString(fl.Field().String())
	}); err != nil {
		return nil, fmt.Errorf("could not register field key validation: %w", err)
	}

	m, err := newServiceMetrics()
	if err != nil {
		return nil, err
	}

	return &Service{
		options:  options,
		storage:  st,
		media:    resolver,
		sink:     sink,
		validate: validate,
		tracer:   otel.Tracer("moderation"),
		metrics:  m,
		dispatcher: &Dispatcher{
			maxAttempts: options.NotifyMaxAttempts,
			failures:    m.notifyFailures,
		},
	}, nil
}

// ListPending returns pending change requests ordered by submission time, optionally
// restricted to one company.
func (s *Service) ListPending(ctx context.Context, entityID *domain.CompanyID) ([]domain.ChangeRequest, error) {
	changes, err := s.storage.ListPendingChangeRequests(ctx, storage.PendingFilter{EntityID: entityID})
	if err != nil {
		return nil, fmt.Errorf("could not list pending change requests: %w", err)
	}

	return changes, nil
}

// GetChange returns a change request in any status.
func (s *Service) GetChange(ctx context.Context, ID domain.ChangeID) (*domain.ChangeRequest, error) {
	change, err := s.storage.ChangeRequestByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get change request: %w", err)
	}
	if change == nil {
		return nil, serrors.With(serrors.ErrNotFound, "change request not found")
	}

	return change, nil
}

// startSpan starts a span named after the operation with the change request attributes known so far.
func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "moderation."+name, trace.WithAttributes(attrs...))
}

// endSpan records err on span, if any, and ends it.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
