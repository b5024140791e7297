//go:build unit

package queries_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"salon-queue/internal/domain/hours"
	"salon-queue/internal/domain/location"
	"salon-queue/internal/domain/provider"
	"salon-queue/internal/domain/queue"
	"salon-queue/internal/domain/reservation"
	"salon-queue/internal/infra"
	"salon-queue/internal/pkg/clock"
	"salon-queue/internal/pkg/config"
	"salon-queue/internal/pkg/errs"
	"salon-queue/internal/usecase/queries"
	"salon-queue/tests/common/builder"
	queriesmock "salon-queue/tests/mock/queries"
	sharedmock "salon-queue/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type queueFixture struct {
	store *queriesmock.MockQueueStore
	feed  *sharedmock.MockChangeFeed
	clock *clock.MockClock
	cfg   config.QueueConfig
	sut   queries.QueueQueries
}

func newQueueFixture(t *testing.T) *queueFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &queueFixture{
		store: queriesmock.NewMockQueueStore(ctrl),
		feed:  sharedmock.NewMockChangeFeed(ctrl),
		clock: clock.NewMockClock(builder.BaseTime),
		cfg:   config.NewDefaultQueueConfig(),
	}
	f.sut = queries.NewQueueQueries(
		f.store,
		queue.NewBuilder(f.cfg.DisplayBuffer, f.cfg.DefaultServiceDuration, reservation.Policy{
			WalkinGrace:   f.cfg.WalkinGrace,
			ScheduledLead: f.cfg.ScheduledPromoteLead,
		}),
		location.NewMonitor(hours.NewDefaultResolver(), false),
		f.feed,
		f.cfg,
		f.clock,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	return f
}

func TestQueueState(t *testing.T) {
	loc := builder.NewLocationBuilder().BuildDomain()
	skill := uuid.New()
	svc := builder.NewServiceBuilder(loc.ID()).With(func(b *builder.ServiceBuilder) { b.ID = skill }).BuildDomain()
	snapshot := svc.Snapshot()

	t.Run("renders providers, waiting and booked entries", func(t *testing.T) {
		f := newQueueFixture(t)
		busy := builder.NewProviderBuilder(loc.ID(), skill).BuildDomain()
		green := builder.NewReservationBuilder(loc.ID()).ForService(snapshot).AssignedTo(busy.ID()).
			Serving(builder.BaseTime.Add(-10 * time.Minute)).BuildDomain()
		orange := builder.NewReservationBuilder(loc.ID()).ForService(snapshot).Arrived(builder.BaseTime.Add(-time.Minute)).BuildDomain()
		red := builder.NewReservationBuilder(loc.ID()).ForService(snapshot).BuildDomain()

		f.store.EXPECT().LoadQueue(gomock.Any(), loc.ID(), queries.QueueWindow{
			ExpiredSince:  builder.BaseTime.Add(-5 * time.Minute),
			ScheduledFrom: builder.BaseTime.Add(-10 * time.Minute),
			ScheduledTo:   builder.BaseTime.Add(15 * time.Minute),
		}).
			Return(&queries.QueueData{
				Location:  loc,
				Providers: []*provider.Provider{busy},
				Active:    []*reservation.Reservation{green, orange, red},
				Durations: map[uuid.UUID]time.Duration{skill: 30 * time.Minute},
			}, nil)
		f.feed.EXPECT().LastChange(gomock.Any(), loc.ID()).Return(time.Time{}, false, nil)

		view, err := f.sut.QueueState(context.Background(), loc.ID())

		require.NoError(t, err)
		assert.Equal(t, "OPEN", view.Location.State)
		require.Len(t, view.Providers, 1)
		assert.Equal(t, "OCCUPIED", view.Providers[0].Status)
		assert.Equal(t, 20, view.Providers[0].RemainingMinutes)
		require.NotNil(t, view.Providers[0].Serving)
		assert.Equal(t, green.ID(), view.Providers[0].Serving.ReservationID)

		require.Len(t, view.Waiting, 1)
		assert.Equal(t, 1, view.Waiting[0].Position)
		require.NotNil(t, view.Waiting[0].EstimatedWaitMinutes)
		assert.Equal(t, 20, *view.Waiting[0].EstimatedWaitMinutes)

		require.Len(t, view.Booked, 1)
		assert.Equal(t, 300, view.Booked[0].RemainingGraceSeconds)
		assert.False(t, view.Booked[0].Expired)
		assert.Equal(t, 10*time.Second, view.PollAfter)
	})

	t.Run("expired RED stays visible inside the display buffer", func(t *testing.T) {
		f := newQueueFixture(t)
		f.clock.Add(7 * time.Minute)
		red := builder.NewReservationBuilder(loc.ID()).BuildDomain()

		f.store.EXPECT().LoadQueue(gomock.Any(), loc.ID(), gomock.Any()).
			Return(&queries.QueueData{Location: loc, Active: []*reservation.Reservation{red}}, nil)
		f.feed.EXPECT().LastChange(gomock.Any(), loc.ID()).Return(time.Time{}, false, nil)

		view, err := f.sut.QueueState(context.Background(), loc.ID())

		require.NoError(t, err)
		require.Len(t, view.Booked, 1)
		assert.True(t, view.Booked[0].Expired)
		assert.Equal(t, "EXPIRED", view.Booked[0].Status)
	})

	t.Run("scheduled booking inside the lead window shows as booked before compaction", func(t *testing.T) {
		f := newQueueFixture(t)
		slotAt := builder.BaseTime.Add(10 * time.Minute)
		due := builder.NewReservationBuilder(loc.ID()).ForService(snapshot).Scheduled(slotAt).BuildDomain()

		f.store.EXPECT().LoadQueue(gomock.Any(), loc.ID(), gomock.Any()).
			Return(&queries.QueueData{Location: loc, Active: []*reservation.Reservation{due}}, nil)
		f.feed.EXPECT().LastChange(gomock.Any(), loc.ID()).Return(time.Time{}, false, nil)

		view, err := f.sut.QueueState(context.Background(), loc.ID())

		require.NoError(t, err)
		require.Len(t, view.Booked, 1)
		assert.Equal(t, due.ID(), view.Booked[0].ReservationID)
		assert.Equal(t, "RED", view.Booked[0].Status)
		require.NotNil(t, view.Booked[0].ExpiresAt)
		assert.Equal(t, slotAt.Add(5*time.Minute), *view.Booked[0].ExpiresAt)
		assert.Equal(t, 900, view.Booked[0].RemainingGraceSeconds)
		assert.Equal(t, reservation.StatusNone, due.Status())
	})

	t.Run("expired entry stays visible after compaction persisted it", func(t *testing.T) {
		f := newQueueFixture(t)
		f.clock.Add(6 * time.Minute)
		red := builder.NewReservationBuilder(loc.ID()).BuildDomain()
		require.True(t, red.Expire(f.clock.Now()))

		f.store.EXPECT().LoadQueue(gomock.Any(), loc.ID(), gomock.Any()).
			Return(&queries.QueueData{Location: loc, Active: []*reservation.Reservation{red}}, nil)
		f.feed.EXPECT().LastChange(gomock.Any(), loc.ID()).Return(time.Time{}, false, nil)

		view, err := f.sut.QueueState(context.Background(), loc.ID())

		require.NoError(t, err)
		require.Len(t, view.Booked, 1)
		assert.True(t, view.Booked[0].Expired)
		assert.Equal(t, "EXPIRED", view.Booked[0].Status)
		assert.Zero(t, view.Booked[0].RemainingGraceSeconds)
	})

	t.Run("unknown location", func(t *testing.T) {
		f := newQueueFixture(t)
		f.store.EXPECT().LoadQueue(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("load queue", nil, infra.KindNotFound))

		_, err := f.sut.QueueState(context.Background(), uuid.New())

		assert.True(t, errs.Is(err, errs.ErrLocationNotFound), "got %v", err)
	})
}

func TestQueueStatePollHint(t *testing.T) {
	loc := builder.NewLocationBuilder().BuildDomain()

	tests := []struct {
		name       string
		lastChange time.Time
		found      bool
		feedErr    error
		want       time.Duration
	}{
		{name: "recent change polls fast", lastChange: builder.BaseTime.Add(-10 * time.Second), found: true, want: 3 * time.Second},
		{name: "change at the quiet boundary polls fast", lastChange: builder.BaseTime.Add(-30 * time.Second), found: true, want: 3 * time.Second},
		{name: "quiet queue polls slow", lastChange: builder.BaseTime.Add(-time.Minute), found: true, want: 10 * time.Second},
		{name: "no recorded change polls slow", want: 10 * time.Second},
		{name: "feed failure polls fast", feedErr: errors.New("redis down"), want: 3 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newQueueFixture(t)
			f.store.EXPECT().LoadQueue(gomock.Any(), loc.ID(), gomock.Any()).
				Return(&queries.QueueData{Location: loc}, nil)
			f.feed.EXPECT().LastChange(gomock.Any(), loc.ID()).Return(tt.lastChange, tt.found, tt.feedErr)

			view, err := f.sut.QueueState(context.Background(), loc.ID())

			require.NoError(t, err)
			assert.Equal(t, tt.want, view.PollAfter)
			assert.Empty(t, view.Waiting)
		})
	}
}
