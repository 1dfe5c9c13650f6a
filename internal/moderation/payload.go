package moderation

import (
	"moderation/pkg/serrors"
	"strings"
)

// normalizeSubmission checks the structural well-formedness of req and returns it
// with its field key filled in and its media checksum lower-cased. Business rules
// beyond structure (whether a phone number looks like one, ...) are not checked.
func (s *Service) normalizeSubmission(req SubmitRequest) (SubmitRequest, error) {
	if !req.EntityType.Valid() {
		return req, serrors.With(serrors.ErrBadRequest, "unknown entity type %q", req.EntityType)
	}
	if req.EntityID <= 0 {
		return req, serrors.With(serrors.ErrBadRequest, "invalid company id")
	}
	if req.SubmittedBy.IsZero() {
		return req, serrors.With(serrors.ErrBadRequest, "submitter is required")
	}

	if key, fixed := req.EntityType.FixedFieldKey(); fixed {
		if req.FieldKey != "" && req.FieldKey != key {
			return req, serrors.With(serrors.ErrBadRequest,
				"field key of %s changes must be %q, got %q", req.EntityType, key, req.FieldKey)
		}
		req.FieldKey = key
	} else if err := s.validate.Var(req.FieldKey, "required,fieldkey"); err != nil {
		return req, serrors.Wrap(serrors.ErrBadRequest, err, "invalid field key %q", req.FieldKey)
	}

	if !req.Payload.Matches(req.EntityType) {
		return req, serrors.With(serrors.ErrBadRequest, "payload does not match entity type %s", req.EntityType)
	}
	if err := s.validate.Struct(req.Payload); err != nil {
		return req, serrors.Wrap(serrors.ErrBadRequest, err, "invalid payload")
	}

	if req.Payload.Media != nil {
		ref := *req.Payload.Media
		ref.Checksum = strings.ToLower(ref.Checksum)
		req.Payload.Media = &ref
	}

	return req, nil
}
