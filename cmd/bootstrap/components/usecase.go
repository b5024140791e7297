package components

import (
	"salon-queue/internal/domain/hours"
	"salon-queue/internal/domain/location"
	"salon-queue/internal/domain/queue"
	"salon-queue/internal/domain/reservation"
	"salon-queue/internal/pkg/clock"
	"salon-queue/internal/pkg/config"
	"salon-queue/internal/usecase"
	"salon-queue/internal/usecase/commands"
	"salon-queue/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) *hours.Resolver {
		q := cfg.Queue
		return hours.NewResolver(q.SlotInterval, q.ClosingWarning, q.CountdownVisible)
	},
	func(cfg config.Config, resolver *hours.Resolver) *location.Monitor {
		return location.NewMonitor(resolver, cfg.Queue.AllowWalkinsWhenClosing)
	},
	func(cfg config.Config, policy reservation.Policy) *queue.Builder {
		return queue.NewBuilder(cfg.Queue.DisplayBuffer, cfg.Queue.DefaultServiceDuration, policy)
	},
	func(cfg config.Config) reservation.Policy {
		return reservation.Policy{
			WalkinGrace:   cfg.Queue.WalkinGrace,
			ScheduledLead: cfg.Queue.ScheduledPromoteLead,
		}
	},
	func(cfg config.Config) config.QueueConfig {
		return cfg.Queue
	},
	commands.NewHooks,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
		commands.NewQueueUseCase,
		commands.NewProviderUseCase,
		commands.NewLocationUseCase,
		commands.NewMaintenanceUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewQueueQueries,
		queries.NewLocationQueries,
		queries.NewReservationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
