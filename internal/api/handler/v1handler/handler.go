// Package v1handler implements the v1 API operations on top of the moderation
// service and maps its errors to HTTP responses.
package v1handler

import (
	"context"
	"errors"
	"moderation/internal/api/specs/v1specs"
	"moderation/internal/moderation"
	"moderation/internal/stats"
	"moderation/pkg/logger"
	"moderation/pkg/serrors"
	"net/http"

	"github.com/ogen-go/ogen/ogenerrors"
	"go.uber.org/zap"
)

// Deps are the services the handlers delegate to.
type Deps struct {
	Moderator moderation.Moderator
	Stats     stats.Aggregator
}

type Handler struct {
	deps Deps
}

// Ensure Handler implements v1specs.Handler.
var _ v1specs.Handler = (*Handler)(nil)

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

type errorMapping struct {
	status  int
	message string
}

var errorMappings = map[serrors.Kind]errorMapping{ //nolint: gochecknoglobals
	serrors.ErrBadRequest:      {http.StatusBadRequest, "bad request"},
	serrors.ErrUnauthorized:    {http.StatusUnauthorized, "unauthorized"},
	serrors.ErrForbidden:       {http.StatusForbidden, "forbidden"},
	serrors.ErrNotFound:        {http.StatusNotFound, "resource not found"},
	serrors.ErrConflict:        {http.StatusConflict, "conflict"},
	serrors.ErrAlreadyResolved: {http.StatusConflict, "change request is already resolved"},
	serrors.ErrStaleStatus:     {http.StatusConflict, "change request was modified concurrently"},
	serrors.ErrRateLimited:     {http.StatusTooManyRequests, "too many requests"},
	serrors.ErrApplyFailure:    {http.StatusServiceUnavailable, "change could not be applied, try again later"},
	serrors.ErrUnavailable:     {http.StatusServiceUnavailable, "service unavailable"},
	serrors.ErrTimeout:         {http.StatusGatewayTimeout, "request timed out"},
}

// NewError maps err to the response it is served with. Errors without a known kind
// become 500 and their details are only logged.
func (h Handler) NewError(ctx context.Context, err error) *v1specs.ErrorStatusCode {
	kind := serrors.KindOf(err)
	if kind == nil {
		var (
			paramsErr  *ogenerrors.DecodeParamsError
			requestErr *ogenerrors.DecodeRequestError
			secErr     *ogenerrors.SecurityError
		)
		switch {
		case errors.As(err, &paramsErr), errors.As(err, &requestErr):
			return newErrorStatusCode(http.StatusBadRequest, serrors.ErrBadRequest, err.Error())
		case errors.As(err, &secErr):
			logger.Debug(ctx, "request is not authenticated", zap.Error(err))

			return newErrorStatusCode(http.StatusUnauthorized, serrors.ErrUnauthorized, "unauthorized")
		}
	}

	mapping, ok := errorMappings[kind]
	if !ok {
		logger.Error(ctx, "internal error", zap.Error(err))

		return newErrorStatusCode(http.StatusInternalServerError, serrors.ErrInternal, "internal error")
	}

	if mapping.status >= http.StatusInternalServerError {
		logger.Warn(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}

	message := mapping.message
	var se *serrors.Error
	if errors.As(err, &se) && se.Message() != "" {
		message = se.Message()
	}

	res := newErrorStatusCode(mapping.status, kind, message)

	var resolved *moderation.AlreadyResolvedError
	if errors.As(err, &resolved) {
		res.Response.Message = resolved.Error()
		res.Response.Change = v1specs.NewOptChange(DomainChangeToV1Specs(&resolved.Change))
	}

	return res
}

func newErrorStatusCode(status int, kind serrors.Kind, message string) *v1specs.ErrorStatusCode {
	return &v1specs.ErrorStatusCode{
		StatusCode: status,
		Response: v1specs.Error{
			Code:    kind.Error(),
			Message: message,
		},
	}
}
