//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"salon-queue/internal/domain/hours"
	"salon-queue/internal/domain/location"
	"salon-queue/internal/domain/reservation"
	"salon-queue/internal/pkg/clock"
	"salon-queue/internal/usecase/commands"
	"salon-queue/internal/usecase/shared"
	"salon-queue/tests/common/builder"
	sharedmock "salon-queue/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

// fixture wires a unit of work whose transaction hands out the repository mocks.
type fixture struct {
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	reads        *sharedmock.MockCommandReads
	locations    *sharedmock.MockLocationRepository
	providers    *sharedmock.MockProviderRepository
	reservations *sharedmock.MockReservationRepository
	notifier     *sharedmock.MockServingNotifier
	feed         *sharedmock.MockChangeFeed
	recorder     *sharedmock.MockRecorder
	clock        *clock.MockClock
	hooks        *commands.Hooks
	resolver     *hours.Resolver
	monitor      *location.Monitor
	policy       reservation.Policy
	logger       *slog.Logger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		reads:        sharedmock.NewMockCommandReads(ctrl),
		locations:    sharedmock.NewMockLocationRepository(ctrl),
		providers:    sharedmock.NewMockProviderRepository(ctrl),
		reservations: sharedmock.NewMockReservationRepository(ctrl),
		notifier:     sharedmock.NewMockServingNotifier(ctrl),
		feed:         sharedmock.NewMockChangeFeed(ctrl),
		recorder:     sharedmock.NewMockRecorder(ctrl),
		clock:        clock.NewMockClock(builder.BaseTime),
		resolver:     hours.NewDefaultResolver(),
		policy:       reservation.DefaultPolicy(),
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	f.monitor = location.NewMonitor(f.resolver, false)
	f.hooks = commands.NewHooks(f.notifier, f.feed, f.recorder, f.logger)

	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Locations().Return(f.locations).AnyTimes()
	f.tx.EXPECT().Providers().Return(f.providers).AnyTimes()
	f.tx.EXPECT().Reservations().Return(f.reservations).AnyTimes()

	return f
}

// quietHooks accepts any feed touches and metric calls.
func (f *fixture) quietHooks() {
	f.feed.EXPECT().Touch(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.recorder.EXPECT().BookingCreated(gomock.Any()).AnyTimes()
	f.recorder.EXPECT().BookingRejected(gomock.Any(), gomock.Any()).AnyTimes()
	f.recorder.EXPECT().Promoted(gomock.Any()).AnyTimes()
	f.recorder.EXPECT().Expired(gomock.Any()).AnyTimes()
}

func (f *fixture) bookings() commands.BookingCommands {
	return commands.NewBookingUseCase(f.uow, f.resolver, f.monitor, f.policy, f.hooks, f.recorder, f.clock, f.logger)
}

func (f *fixture) queue() commands.QueueCommands {
	return commands.NewQueueUseCase(f.uow, f.policy, f.hooks, f.clock, f.logger)
}

func (f *fixture) providerCmds() commands.ProviderCommands {
	return commands.NewProviderUseCase(f.uow, f.hooks, f.clock, f.logger)
}

func (f *fixture) locationCmds() commands.LocationCommands {
	return commands.NewLocationUseCase(f.uow, f.monitor, f.hooks, f.clock)
}

func (f *fixture) maintenance() commands.MaintenanceCommands {
	return commands.NewMaintenanceUseCase(f.uow, f.policy, f.hooks, f.recorder, f.clock, f.logger)
}
