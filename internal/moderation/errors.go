package moderation

import (
	"fmt"
	"moderation/pkg/domain"
	"moderation/pkg/serrors"
)

// AlreadyResolvedError is returned when a reviewer action targets a change request
// that was already resolved with a different outcome. Change holds the request as it
// is stored, so callers can report what actually happened.
type AlreadyResolvedError struct {
	Change domain.ChangeRequest
}

func (e *AlreadyResolvedError) Error() string {
	return fmt.Sprintf("change request %s is already %s", e.Change.ID, e.Change.Status)
}

// Is makes errors.Is(err, serrors.ErrAlreadyResolved) match.
func (e *AlreadyResolvedError) Is(target error) bool {
	return target == serrors.ErrAlreadyResolved
}

// As lets serrors.KindOf report serrors.ErrAlreadyResolved for this error.
func (e *AlreadyResolvedError) As(target any) bool {
	if k, ok := target.(*serrors.Kind); ok {
		*k = serrors.ErrAlreadyResolved

		return true
	}

	return false
}
