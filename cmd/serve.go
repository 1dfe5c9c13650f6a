package main

import (
	"context"
	"errors"
	"moderation/internal/api"
	"moderation/internal/api/handler/v1handler"
	"moderation/internal/config"
	"moderation/internal/moderation"
	"moderation/internal/stats"
	"moderation/internal/worker"
	"moderation/pkg/eventsink"
	"moderation/pkg/eventsink/webhook"
	"moderation/pkg/logger"
	"moderation/pkg/media/mediahttp"
	"moderation/pkg/storage/postgres"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getRedis returns a client for the pending-count cache, or nil when no address
// is configured.
func getRedis(ctx context.Context, cfg *config.Config) (*redis.Client, func()) {
	if cfg.Redis.Addr == "" {
		logger.Info(ctx, "redis is not configured, pending counts are not cached")

		return nil, func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		// the cache falls back to postgres on every error
		logger.Warn(ctx, "could not ping redis", zap.Error(err))
	}

	return client, func() {
		logger.Info(ctx, "closing redis client...")
		if err := client.Close(); err != nil {
			logger.Warn(ctx, "could not close redis client", zap.Error(err))
		}
	}
}

// newModerationService wires the moderation service with its outbound integrations.
func newModerationService(ctx context.Context, cfg *config.Config, strg *postgres.PgSQL) *moderation.Service {
	resolver := mediahttp.New(&http.Client{Timeout: cfg.Media.Timeout}, cfg.Media.BaseURL, cfg.Media.Token)

	var sink eventsink.Sink = eventsink.LogSink{}
	if cfg.EventSink.URL != "" {
		sink = webhook.New(&http.Client{Timeout: cfg.EventSink.Timeout}, cfg.EventSink.URL, cfg.EventSink.Token)
	} else {
		logger.Info(ctx, "event sink is not configured, events are logged")
	}

	svc, err := moderation.New(strg, resolver, sink, moderation.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create moderation service", zap.Error(err))
	}

	return svc
}

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and notification workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			redisClient, closeRedis := getRedis(ctx, cfg)
			defer closeRedis()

			svc := newModerationService(ctx, cfg, strg)
			aggregator := stats.New(strg, redisClient, stats.NewOptions(cfg))

			riverClient, err := worker.Start(ctx, strg.Pool, svc, aggregator, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{Deps: v1handler.Deps{
				Moderator: svc,
				Stats:     aggregator,
			}})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop workers", zap.Error(err))
			}
		},
	}

	return cmd
}
