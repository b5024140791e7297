//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"salon-queue/internal/domain/catalog"
	"salon-queue/internal/domain/hours"
	"salon-queue/internal/domain/location"
	"salon-queue/internal/domain/provider"
	"salon-queue/internal/pkg/clock"
	"salon-queue/internal/pkg/errs"
	"salon-queue/internal/usecase/queries"
	"salon-queue/tests/common/builder"
	sharedmock "salon-queue/tests/mock/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type locationFixture struct {
	reads *sharedmock.MockCommandReads
	clock *clock.MockClock
	sut   queries.LocationQueries
}

func newLocationFixture(t *testing.T) *locationFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	reads := sharedmock.NewMockCommandReads(ctrl)
	uow.EXPECT().CommandReads().Return(reads)

	resolver := hours.NewDefaultResolver()
	clk := clock.NewMockClock(builder.BaseTime)
	return &locationFixture{
		reads: reads,
		clock: clk,
		sut:   queries.NewLocationQueries(uow, resolver, location.NewMonitor(resolver, false), clk),
	}
}

func TestLocationStatus(t *testing.T) {
	loc := builder.NewLocationBuilder().BuildDomain()

	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{name: "open", at: builder.BaseTime, want: "OPEN"},
		{name: "closing window", at: time.Date(2026, 3, 4, 17, 50, 0, 0, time.UTC), want: "CLOSING"},
		{name: "after hours", at: time.Date(2026, 3, 4, 18, 0, 0, 0, time.UTC), want: "CLOSED"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newLocationFixture(t)
			f.clock.Set(tt.at)
			f.reads.EXPECT().LocationByID(gomock.Any(), loc.ID()).Return(loc, nil)

			v, err := f.sut.Status(context.Background(), loc.ID())

			require.NoError(t, err)
			assert.Equal(t, tt.want, v.State)
			assert.Equal(t, loc.ID(), v.LocationID)
		})
	}
}

func TestSlots(t *testing.T) {
	loc := builder.NewLocationBuilder().BuildDomain()
	svc := builder.NewServiceBuilder(loc.ID()).BuildDomain()
	tomorrow := hours.DateOf(builder.BaseTime).AddDays(1)

	expectCatalog := func(f *locationFixture, s *catalog.Service, providers ...*provider.Provider) {
		f.reads.EXPECT().LocationByID(gomock.Any(), loc.ID()).Return(loc, nil)
		f.reads.EXPECT().ServiceByID(gomock.Any(), s.ID()).Return(s, nil)
		f.reads.EXPECT().ProvidersByLocation(gomock.Any(), loc.ID()).Return(providers, nil).MaxTimes(1)
	}

	t.Run("one provider with one unassigned booking fills that slot", func(t *testing.T) {
		f := newLocationFixture(t)
		p := builder.NewProviderBuilder(loc.ID(), svc.ID()).BuildDomain()
		expectCatalog(f, svc, p)
		f.reads.EXPECT().ScheduledBookings(gomock.Any(), loc.ID(), tomorrow).
			Return([]hours.SlotBooking{{Slot: hours.TimeOfDay(10 * 60)}}, nil)

		slots, err := f.sut.Slots(context.Background(), queries.SlotsParams{LocationID: loc.ID(), ServiceID: svc.ID(), Date: tomorrow})

		require.NoError(t, err)
		require.Len(t, slots, 18)
		assert.Equal(t, "09:00", slots[0].Time)
		assert.Equal(t, "17:30", slots[17].Time)
		for _, s := range slots {
			assert.Equal(t, s.Time != "10:00", s.Available, s.Time)
		}
	})

	t.Run("today lists nothing", func(t *testing.T) {
		f := newLocationFixture(t)
		expectCatalog(f, svc)
		f.reads.EXPECT().ScheduledBookings(gomock.Any(), loc.ID(), gomock.Any()).Return(nil, nil)

		slots, err := f.sut.Slots(context.Background(), queries.SlotsParams{
			LocationID: loc.ID(), ServiceID: svc.ID(), Date: hours.DateOf(builder.BaseTime),
		})

		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("disabled service lists nothing", func(t *testing.T) {
		f := newLocationFixture(t)
		disabled := builder.NewServiceBuilder(loc.ID()).With(func(b *builder.ServiceBuilder) { b.Enabled = false }).BuildDomain()
		f.reads.EXPECT().LocationByID(gomock.Any(), loc.ID()).Return(loc, nil)
		f.reads.EXPECT().ServiceByID(gomock.Any(), disabled.ID()).Return(disabled, nil)

		slots, err := f.sut.Slots(context.Background(), queries.SlotsParams{LocationID: loc.ID(), ServiceID: disabled.ID(), Date: tomorrow})

		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("service of another location", func(t *testing.T) {
		f := newLocationFixture(t)
		foreign := builder.NewServiceBuilder(uuid.New()).BuildDomain()
		f.reads.EXPECT().LocationByID(gomock.Any(), loc.ID()).Return(loc, nil)
		f.reads.EXPECT().ServiceByID(gomock.Any(), foreign.ID()).Return(foreign, nil)

		_, err := f.sut.Slots(context.Background(), queries.SlotsParams{LocationID: loc.ID(), ServiceID: foreign.ID(), Date: tomorrow})

		assert.True(t, errs.Is(err, errs.ErrServiceNotFound), "got %v", err)
	})
}

func TestEligibleProviders(t *testing.T) {
	loc := builder.NewLocationBuilder().BuildDomain()
	svc := builder.NewServiceBuilder(loc.ID()).BuildDomain()

	t.Run("orders by active load and skips paused or unskilled providers", func(t *testing.T) {
		f := newLocationFixture(t)
		loaded := builder.NewProviderBuilder(loc.ID(), svc.ID()).With(func(b *builder.ProviderBuilder) { b.Name = "Ana" }).BuildDomain()
		idle := builder.NewProviderBuilder(loc.ID(), svc.ID()).With(func(b *builder.ProviderBuilder) { b.Name = "Ben" }).BuildDomain()
		paused := builder.NewProviderBuilder(loc.ID(), svc.ID()).With(func(b *builder.ProviderBuilder) { b.Available = false }).BuildDomain()
		unskilled := builder.NewProviderBuilder(loc.ID()).BuildDomain()

		f.reads.EXPECT().ServiceByID(gomock.Any(), svc.ID()).Return(svc, nil)
		f.reads.EXPECT().ProvidersByLocation(gomock.Any(), loc.ID()).
			Return([]*provider.Provider{loaded, idle, paused, unskilled}, nil)
		f.reads.EXPECT().ActiveLoad(gomock.Any(), loc.ID(), builder.BaseTime).
			Return(map[uuid.UUID]int{loaded.ID(): 2}, nil)

		got, err := f.sut.EligibleProviders(context.Background(), loc.ID(), svc.ID())

		require.NoError(t, err)
		want := []queries.EligibleProviderView{
			{ID: idle.ID(), Name: "Ben", ActiveEntries: 0},
			{ID: loaded.ID(), Name: "Ana", ActiveEntries: 2},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("eligible providers mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("service of another location", func(t *testing.T) {
		f := newLocationFixture(t)
		foreign := builder.NewServiceBuilder(uuid.New()).BuildDomain()
		f.reads.EXPECT().ServiceByID(gomock.Any(), foreign.ID()).Return(foreign, nil)

		_, err := f.sut.EligibleProviders(context.Background(), loc.ID(), foreign.ID())

		assert.True(t, errs.Is(err, errs.ErrServiceNotFound), "got %v", err)
	})
}
