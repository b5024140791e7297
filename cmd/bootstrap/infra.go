package bootstrap

import (
	"context"
	"log/slog"

	"salon-queue/internal/infra/cache"
	"salon-queue/internal/infra/jobs"
	"salon-queue/internal/infra/metrics"
	"salon-queue/internal/infra/notify"
	"salon-queue/internal/infra/ratelimit"
	"salon-queue/internal/infra/telemetry"
	"salon-queue/internal/pkg/config"
	"salon-queue/internal/usecase/commands"
	"salon-queue/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
		NewChangeFeed,
		NewRateLimiter,
	),
)

// NewRedis returns a nil client when REDIS_ADDR is empty; dependents fall back to in-process
// implementations.
func NewRedis(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*redis.Client, error) {
	rdb, err := cache.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}
	if rdb == nil {
		logger.Warn("redis not configured, using in-process change feed and rate limiter")
		return nil, nil
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	return rdb, nil
}

func NewChangeFeed(rdb *redis.Client) shared.ChangeFeed {
	if rdb == nil {
		return cache.NewMemoryChangeFeed()
	}
	return cache.NewRedisChangeFeed(rdb)
}

func NewRateLimiter(rdb *redis.Client, cfg config.Config) ratelimit.Limiter {
	if rdb == nil {
		return ratelimit.NewLocalLimiter(cfg.Redis.RateLimit, cfg.Redis.RateWindow)
	}
	return ratelimit.NewRedisLimiter(rdb, cfg.Redis.RateLimit, cfg.Redis.RateWindow, "salon-queue:rl")
}

var KafkaModule = fx.Module("kafka",
	fx.Provide(
		NewServingNotifier,
	),
)

func NewServingNotifier(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) shared.ServingNotifier {
	if len(notify.SplitBrokers(cfg.Kafka.Brokers)) == 0 {
		logger.Warn("kafka brokers not configured, serving events are only logged")
		return notify.NewLogNotifier(logger)
	}
	n := notify.NewKafkaNotifier(cfg.Kafka, logger)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return n.Close()
		},
	})
	return n
}

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.NewRegistry,
		func(r *metrics.Registry) shared.Recorder { return r },
	),
)

var TelemetryModule = fx.Module("telemetry",
	fx.Invoke(SetupTelemetry),
)

func SetupTelemetry(lc fx.Lifecycle, cfg config.Config) error {
	shutdown, err := telemetry.Setup(context.Background(), cfg.Telemetry)
	if err != nil {
		return err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return shutdown(ctx)
		},
	})
	return nil
}

var JobsModule = fx.Module("jobs",
	fx.Invoke(StartJobs),
)

func StartJobs(lc fx.Lifecycle, cfg config.Config, maintenance commands.MaintenanceCommands, logger *slog.Logger) error {
	if !cfg.Jobs.Enabled {
		return nil
	}
	s, err := jobs.NewScheduler(maintenance, cfg.Jobs.CompactionInterval, logger)
	if err != nil {
		return err
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return s.Start()
		},
		OnStop: func(_ context.Context) error {
			return s.Shutdown()
		},
	})
	return nil
}
