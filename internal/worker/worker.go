// Package worker runs the background River workers of the service.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"moderation/internal/config"
	"moderation/internal/moderation"
	"moderation/internal/stats"
	"moderation/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

const defaultMaxWorkers = 20

// Options configure the River client.
type Options struct {
	// MaxWorkers is the number of jobs of the default queue worked concurrently.
	MaxWorkers int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{MaxWorkers: cfg.Worker.MaxWorkers}
}

// Start registers the workers and starts a River client processing the default queue.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	moderator moderation.Moderator,
	aggregator stats.Aggregator,
	opts Options) (*river.Client[pgx.Tx], error) {
	if opts.MaxWorkers <= 0 {
		opts.MaxWorkers = defaultMaxWorkers
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewNotificationWorker(moderator, aggregator))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: opts.MaxWorkers},
		},
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
