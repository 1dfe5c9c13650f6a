package v1specs

import (
	"context"
	"io"
	"moderation/pkg/metrics"
	"net/http"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/ogen-go/ogen/conv"
	"github.com/ogen-go/ogen/ogenerrors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// OperationName is the operationId of an operation in the v1 document.
type OperationName = string

const (
	SubmitChangeOperation       OperationName = "SubmitChange"
	ListPendingChangesOperation OperationName = "ListPendingChanges"
	GetChangeOperation          OperationName = "GetChange"
	ApproveChangeOperation      OperationName = "ApproveChange"
	RejectChangeOperation       OperationName = "RejectChange"
	GetPendingCountOperation    OperationName = "GetPendingCount"
)

// maxBodyBytes bounds request bodies; change payloads are small documents.
const maxBodyBytes = 1 << 20

// Handler handles operations described by the v1 API.
type Handler interface {
	// SubmitChange implements POST /companies/{companyID}/changes.
	SubmitChange(ctx context.Context, req *SubmitChangeRequest, params SubmitChangeParams) (*Change, error)
	// ListPendingChanges implements GET /changes.
	ListPendingChanges(ctx context.Context, params ListPendingChangesParams) (*ChangeList, error)
	// GetChange implements GET /changes/{changeID}.
	GetChange(ctx context.Context, params GetChangeParams) (*Change, error)
	// ApproveChange implements POST /changes/{changeID}/approve.
	ApproveChange(ctx context.Context, params ApproveChangeParams) (*ApprovalResult, error)
	// RejectChange implements POST /changes/{changeID}/reject.
	RejectChange(ctx context.Context, req *RejectChangeRequest, params RejectChangeParams) (*ResolutionResult, error)
	// GetPendingCount implements GET /companies/{companyID}/pending-count.
	GetPendingCount(ctx context.Context, params GetPendingCountParams) (*PendingCount, error)
	// NewError creates *ErrorStatusCode from error returned by handler or the server itself.
	NewError(ctx context.Context, err error) *ErrorStatusCode
}

// BearerAuth is the token sent in the Authorization header.
type BearerAuth struct {
	Token string
}

// SecurityHandler is handler for security parameters.
type SecurityHandler interface {
	// HandleBearerAuth handles bearerAuth security. The returned context is passed
	// to the operation handler.
	HandleBearerAuth(ctx context.Context, operationName OperationName, t BearerAuth) (context.Context, error)
}

type serverConfig struct {
	prefix         string
	meterProvider  metric.MeterProvider
	tracerProvider trace.TracerProvider
}

// Option configures the Server.
type Option func(cfg *serverConfig)

// WithPathPrefix mounts all routes under prefix.
func WithPathPrefix(prefix string) Option {
	return func(cfg *serverConfig) { cfg.prefix = strings.TrimRight(prefix, "/") }
}

// WithMeterProvider specifies a meter provider to use for creating a meter.
// If none is specified, the global provider is used.
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(cfg *serverConfig) {
		if provider != nil {
			cfg.meterProvider = provider
		}
	}
}

// WithTracerProvider specifies a tracer provider to use for creating a tracer.
// If none is specified, the global provider is used.
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(cfg *serverConfig) {
		if provider != nil {
			cfg.tracerProvider = provider
		}
	}
}

// Server serves the v1 API.
type Server struct {
	h      Handler
	sec    SecurityHandler
	router *mux.Router
	tracer trace.Tracer

	requests metric.Int64Counter
	errors   metric.Int64Counter
	duration metric.Float64Histogram
}

// NewServer creates new Server.
func NewServer(h Handler, sec SecurityHandler, opts ...Option) (*Server, error) {
	cfg := serverConfig{
		meterProvider:  otel.GetMeterProvider(),
		tracerProvider: otel.GetTracerProvider(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Server{
		h:      h,
		sec:    sec,
		tracer: cfg.tracerProvider.Tracer("moderation/api/v1"),
	}

	meter := cfg.meterProvider.Meter("moderation/api/v1")
	var err error
	if s.requests, err = meter.Int64Counter("api.v1.requests",
		metric.WithDescription("Number of handled v1 API requests")); err != nil {
		return nil, errors.Wrap(err, "create requests counter")
	}
	if s.errors, err = meter.Int64Counter("api.v1.errors",
		metric.WithDescription("Number of v1 API requests answered with an error")); err != nil {
		return nil, errors.Wrap(err, "create errors counter")
	}
	if s.duration, err = meter.Float64Histogram("api.v1.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Duration of v1 API requests"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...)); err != nil {
		return nil, errors.Wrap(err, "create duration histogram")
	}

	s.router = mux.NewRouter()
	s.router.NotFoundHandler = http.HandlerFunc(notFound)
	s.router.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	r := s.router
	if cfg.prefix != "" {
		r = s.router.PathPrefix(cfg.prefix).Subrouter()
	}
	r.Handle("/companies/{companyID}/changes",
		serve(s, SubmitChangeOperation, http.StatusCreated, decodeSubmitChange, s.submitChange)).
		Methods(http.MethodPost)
	r.Handle("/companies/{companyID}/pending-count",
		serve(s, GetPendingCountOperation, http.StatusOK, decodeGetPendingCount, h.GetPendingCount)).
		Methods(http.MethodGet)
	r.Handle("/changes",
		serve(s, ListPendingChangesOperation, http.StatusOK, decodeListPendingChanges, h.ListPendingChanges)).
		Methods(http.MethodGet)
	r.Handle("/changes/{changeID}",
		serve(s, GetChangeOperation, http.StatusOK, decodeGetChange, h.GetChange)).
		Methods(http.MethodGet)
	r.Handle("/changes/{changeID}/approve",
		serve(s, ApproveChangeOperation, http.StatusOK, decodeApproveChange, h.ApproveChange)).
		Methods(http.MethodPost)
	r.Handle("/changes/{changeID}/reject",
		serve(s, RejectChangeOperation, http.StatusOK, decodeRejectChange, s.rejectChange)).
		Methods(http.MethodPost)

	return s, nil
}

// ServeHTTP serves http request as defined by the v1 document.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

type encoder interface {
	Encode(e *jx.Encoder)
}

// serve builds the http.Handler of one operation: authenticate, decode, call the
// handler and encode either the result or the error.
func serve[P any, R encoder](
	s *Server,
	op OperationName,
	status int,
	decode func(r *http.Request) (P, error),
	call func(ctx context.Context, params P) (R, error),
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx, span := s.tracer.Start(r.Context(), op, trace.WithSpanKind(trace.SpanKindServer))
		defer span.End()

		opErrContext := ogenerrors.OperationContext{Name: op, ID: op}
		code := status
		res, err := func() (R, error) {
			var zero R
			ctx, err := s.securityBearerAuth(ctx, op, r)
			if err != nil {
				return zero, &ogenerrors.SecurityError{
					OperationContext: opErrContext,
					Security:         "BearerAuth",
					Err:              err,
				}
			}
			params, err := decode(r)
			if err != nil {
				var paramErr *ogenerrors.DecodeParamError
				if errors.As(err, &paramErr) {
					return zero, &ogenerrors.DecodeParamsError{OperationContext: opErrContext, Err: err}
				}

				return zero, &ogenerrors.DecodeRequestError{OperationContext: opErrContext, Err: err}
			}

			return call(ctx, params)
		}()
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			resp := s.h.NewError(ctx, err)
			code = resp.StatusCode
			writeJSON(w, code, &resp.Response)
		} else {
			writeJSON(w, code, res)
		}

		attrs := metric.WithAttributes(
			attribute.String("operation", op),
			attribute.Int("http.response.status_code", code))
		s.requests.Add(ctx, 1, attrs)
		if code >= http.StatusBadRequest {
			s.errors.Add(ctx, 1, attrs)
		}
		s.duration.Record(ctx, time.Since(start).Seconds(), attrs)
	})
}

func (s *Server) securityBearerAuth(ctx context.Context, op OperationName, r *http.Request) (context.Context, error) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return ctx, ogenerrors.ErrSecurityRequirementIsNotSatisfied
	}

	authCtx, err := s.sec.HandleBearerAuth(ctx, op, BearerAuth{Token: strings.TrimSpace(token)})
	if err != nil {
		return ctx, err //nolint: wrapcheck
	}

	return authCtx, nil
}

type submitChangeArgs struct {
	req    *SubmitChangeRequest
	params SubmitChangeParams
}

func (s *Server) submitChange(ctx context.Context, args submitChangeArgs) (*Change, error) {
	return s.h.SubmitChange(ctx, args.req, args.params) //nolint: wrapcheck
}

type rejectChangeArgs struct {
	req    *RejectChangeRequest
	params RejectChangeParams
}

func (s *Server) rejectChange(ctx context.Context, args rejectChangeArgs) (*ResolutionResult, error) {
	return s.h.RejectChange(ctx, args.req, args.params) //nolint: wrapcheck
}

func decodeSubmitChange(r *http.Request) (submitChangeArgs, error) {
	companyID, err := pathInt64(r, "companyID")
	if err != nil {
		return submitChangeArgs{}, err
	}

	var req SubmitChangeRequest
	if err := readJSON(r, &req); err != nil {
		return submitChangeArgs{}, err
	}
	if err := req.Validate(); err != nil {
		return submitChangeArgs{}, errors.Wrap(err, "validate")
	}

	return submitChangeArgs{req: &req, params: SubmitChangeParams{CompanyID: companyID}}, nil
}

func decodeGetPendingCount(r *http.Request) (GetPendingCountParams, error) {
	companyID, err := pathInt64(r, "companyID")
	if err != nil {
		return GetPendingCountParams{}, err
	}

	return GetPendingCountParams{CompanyID: companyID}, nil
}

func decodeListPendingChanges(r *http.Request) (ListPendingChangesParams, error) {
	var params ListPendingChangesParams

	raw := r.URL.Query().Get("companyId")
	if raw == "" {
		return params, nil
	}
	v, err := conv.ToInt64(raw)
	if err != nil {
		return params, &ogenerrors.DecodeParamError{Name: "companyId", In: "query", Err: err}
	}
	params.CompanyID = NewOptInt64(v)

	return params, nil
}

func decodeGetChange(r *http.Request) (GetChangeParams, error) {
	id, err := pathUUID(r, "changeID")

	return GetChangeParams{ChangeID: id}, err
}

func decodeApproveChange(r *http.Request) (ApproveChangeParams, error) {
	id, err := pathUUID(r, "changeID")

	return ApproveChangeParams{ChangeID: id}, err
}

func decodeRejectChange(r *http.Request) (rejectChangeArgs, error) {
	id, err := pathUUID(r, "changeID")
	if err != nil {
		return rejectChangeArgs{}, err
	}

	var req RejectChangeRequest
	if err := readJSON(r, &req); err != nil {
		return rejectChangeArgs{}, err
	}

	return rejectChangeArgs{req: &req, params: RejectChangeParams{ChangeID: id}}, nil
}

func pathInt64(r *http.Request, name string) (int64, error) {
	v, err := conv.ToInt64(mux.Vars(r)[name])
	if err != nil {
		return 0, &ogenerrors.DecodeParamError{Name: name, In: "path", Err: err}
	}

	return v, nil
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	v, err := conv.ToUUID(mux.Vars(r)[name])
	if err != nil {
		return uuid.Nil, &ogenerrors.DecodeParamError{Name: name, In: "path", Err: err}
	}

	return v, nil
}

// readJSON decodes the request body into v. Its errors are reported to the handler
// as *ogenerrors.DecodeRequestError.
func readJSON(r *http.Request, v interface{ Decode(d *jx.Decoder) error }) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return errors.Wrap(err, "read body")
	}
	switch {
	case len(body) == 0:
		return errors.New("request body is required")
	case len(body) > maxBodyBytes:
		return errors.New("request body is too large")
	}

	if err := v.Decode(jx.DecodeBytes(body)); err != nil {
		return errors.Wrap(err, "decode body")
	}

	return nil
}

func writeJSON(w http.ResponseWriter, code int, v encoder) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	v.Encode(e)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write(e.Bytes())
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusNotFound, &Error{Code: "NOT_FOUND", Message: "route not found"})
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, &Error{Code: "METHOD_NOT_ALLOWED", Message: "method not allowed"})
}
