package stats

import (
	"context"
	"errors"
	"fmt"
	"moderation/internal/config"
	"moderation/pkg/domain"
	"moderation/pkg/logger"
	"moderation/pkg/storage"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	keyPrefix = "moderation:pending:"
	genPrefix = "moderation:pending:gen:"
)

// errGenerationMoved aborts caching a count loaded before an invalidation.
var errGenerationMoved = errors.New("pending count generation moved")

// Options configure the pending-count cache.
type Options struct {
	// TTL bounds how stale a cached count may get when an invalidation is missed.
	TTL time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{TTL: cfg.Redis.PendingCountTTL}
}

// Cache is a read-through Redis cache in front of the change request store. With a
// nil client every call goes to the store. Redis failures are logged and never
// fail a query.
//
// Every invalidation bumps a per-company generation counter. A count is only
// cached if the generation it was loaded under is still current, so a load that
// raced with a write cannot put its stale result back after the write invalidated it.
type Cache struct {
	store   storage.ChangeRequestStorage
	client  *redis.Client
	options Options
}

var _ Aggregator = (*Cache)(nil)

// New creates a pending-count aggregator.
func New(store storage.ChangeRequestStorage, client *redis.Client, options Options) *Cache {
	return &Cache{store: store, client: client, options: options}
}

func key(entityID domain.CompanyID) string { return keyPrefix + entityID.String() }

func genKey(entityID domain.CompanyID) string { return genPrefix + entityID.String() }

// PendingCount returns the cached count of the company or loads it from the store.
func (c *Cache) PendingCount(ctx context.Context, entityID domain.CompanyID) (int64, error) {
	var (
		gen    int64
		genErr error
	)
	if c.client != nil {
		n, err := c.client.Get(ctx, key(entityID)).Int64()
		if err == nil {
			return n, nil
		}
		if !errors.Is(err, redis.Nil) {
			logger.Warn(ctx, "could not read cached pending count", zap.Stringer("entityID", entityID), zap.Error(err))
		}
		// read before loading: an invalidation from here on moves it
		gen, genErr = generation(ctx, c.client, entityID)
	}

	counts, err := c.store.PendingCountsByEntity(ctx, entityID)
	if err != nil {
		return 0, fmt.Errorf("could not count pending change requests: %w", err)
	}
	var n int64
	if len(counts) > 0 {
		n = counts[0].Pending
	}

	switch {
	case c.client == nil:
	case genErr != nil:
		logger.Warn(ctx, "could not read pending count generation", zap.Stringer("entityID", entityID), zap.Error(genErr))
	default:
		c.cacheCount(ctx, entityID, gen, n)
	}

	return n, nil
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// generation returns the current invalidation generation of the company.
func generation(ctx context.Context, cmd getter, entityID domain.CompanyID) (int64, error) {
	gen, err := cmd.Get(ctx, genKey(entityID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}

	return gen, err
}

// cacheCount caches n unless the company was invalidated since gen was read.
func (c *Cache) cacheCount(ctx context.Context, entityID domain.CompanyID, gen, n int64) {
	err := c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := generation(ctx, tx, entityID)
		if err != nil {
			return err
		}
		if current != gen {
			return errGenerationMoved
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key(entityID), n, c.options.TTL)

			return nil
		})

		return err
	}, genKey(entityID))

	switch {
	case err == nil:
	case errors.Is(err, errGenerationMoved), errors.Is(err, redis.TxFailedErr):
		logger.Debug(ctx, "pending count changed while loading, not caching", zap.Stringer("entityID", entityID))
	default:
		logger.Warn(ctx, "could not cache pending count", zap.Stringer("entityID", entityID), zap.Error(err))
	}
}

// Invalidate removes the cached count of the company and moves its generation, so
// loads already in flight do not cache what they read.
func (c *Cache) Invalidate(ctx context.Context, entityID domain.CompanyID) error {
	if c.client == nil {
		return nil
	}

	if _, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, genKey(entityID))
		pipe.Del(ctx, key(entityID))

		return nil
	}); err != nil {
		return fmt.Errorf("redis invalidate %s: %w", key(entityID), err)
	}

	return nil
}
