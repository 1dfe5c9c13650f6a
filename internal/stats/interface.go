// Package stats answers dashboard queries about the moderation queue, such as how
// many change requests of a company are waiting for review.
package stats

import (
	"context"
	"moderation/pkg/domain"
)

//go:generate mockgen -package mockstats -source=interface.go -destination=mock/mockstats.go *
type Aggregator interface {
	// PendingCount returns the number of pending change requests of the company.
	PendingCount(ctx context.Context, entityID domain.CompanyID) (int64, error)
	// Invalidate drops any cached count of the company.
	Invalidate(ctx context.Context, entityID domain.CompanyID) error
}
