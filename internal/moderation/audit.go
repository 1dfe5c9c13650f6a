package moderation

import (
	"context"
	"fmt"
	"moderation/pkg/logger"
	"moderation/pkg/storage"

	"go.uber.org/zap"
)

// CheckInvariants looks for company fields with more than one pending change request.
// Each finding is logged at error level; an empty result means the store is consistent.
func (s *Service) CheckInvariants(ctx context.Context) ([]storage.DuplicatePending, error) {
	groups, err := s.storage.DuplicatePendingGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not check pending change requests: %w", err)
	}

	for _, g := range groups {
		logger.Error(ctx, "more than one pending change request for a field",
			zap.Stringer("entityID", g.EntityID),
			zap.String("fieldKey", g.FieldKey),
			zap.Int64("count", g.Count))
	}

	return groups, nil
}
