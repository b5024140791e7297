//go:build unit

package queue_test

import (
	"testing"
	"time"

	"salon-queue/internal/domain/catalog"
	"salon-queue/internal/domain/hours"
	"salon-queue/internal/domain/provider"
	"salon-queue/internal/domain/queue"
	"salon-queue/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	policy    = reservation.DefaultPolicy()
	loc       = uuid.New()
	base      = time.Date(2026, time.October, 19, 10, 0, 0, 0, time.UTC)
	cut       = catalog.Snapshot{ServiceID: uuid.New(), Name: "Cut", Duration: 30 * time.Minute, PriceCents: 3000}
	color     = catalog.Snapshot{ServiceID: uuid.New(), Name: "Color", Duration: 50 * time.Minute, PriceCents: 8000}
	durations = map[uuid.UUID]time.Duration{cut.ServiceID: cut.Duration, color.ServiceID: color.Duration}
)

func newProvider(available bool, skills ...uuid.UUID) *provider.Provider {
	return provider.ReconstructProvider(uuid.New(), loc, "p", skills, available, base)
}

func orange(t *testing.T, svc catalog.Snapshot, providerID *uuid.UUID, arrived time.Time) *reservation.Reservation {
	t.Helper()
	c, err := reservation.NewCustomer("Guest", "09000000000", nil)
	require.NoError(t, err)
	r := reservation.NewWalkin(loc, svc, providerID, c, policy, arrived.Add(-time.Minute))
	require.NoError(t, r.CheckIn(policy, arrived))
	return r
}

func green(t *testing.T, svc catalog.Snapshot, p *provider.Provider, servedAt time.Time) *reservation.Reservation {
	t.Helper()
	id := p.ID()
	r := orange(t, svc, &id, servedAt.Add(-time.Minute))
	require.NoError(t, r.StartServing(id, servedAt))
	return r
}

func TestSelectNext(t *testing.T) {
	p := newProvider(true, cut.ServiceID)
	pid := p.ID()
	other := uuid.New()

	t1 := orange(t, cut, &pid, base.Add(1*time.Minute))
	t2 := orange(t, cut, nil, base.Add(2*time.Minute))
	t3 := orange(t, cut, &pid, base.Add(3*time.Minute))
	foreign := orange(t, cut, &other, base)
	unskilled := orange(t, color, nil, base)

	pending := []*reservation.Reservation{t3, foreign, t2, unskilled, t1}

	var order []uuid.UUID
	for range 3 {
		next := queue.SelectNext(p, pending)
		require.NotNil(t, next)
		require.NoError(t, next.StartServing(pid, base.Add(10*time.Minute)))
		require.NoError(t, next.Complete(base.Add(20*time.Minute)))
		order = append(order, next.ID())
	}
	assert.Equal(t, []uuid.UUID{t1.ID(), t2.ID(), t3.ID()}, order)
	assert.Nil(t, queue.SelectNext(p, pending))
}

func TestSelectNext_TieBreaksOnID(t *testing.T) {
	p := newProvider(true, cut.ServiceID)
	pid := p.ID()
	a := orange(t, cut, &pid, base)
	b := orange(t, cut, &pid, base)

	want := a
	if b.ID().String() < a.ID().String() {
		want = b
	}
	assert.Equal(t, want.ID(), queue.SelectNext(p, []*reservation.Reservation{a, b}).ID())
	assert.Equal(t, want.ID(), queue.SelectNext(p, []*reservation.Reservation{b, a}).ID())
}

func TestBuilder_WaitEstimate(t *testing.T) {
	b := queue.NewBuilder(5*time.Minute, 30*time.Minute, policy)
	p := newProvider(true, cut.ServiceID, color.ServiceID) // average 40m
	pid := p.ID()
	now := base.Add(time.Hour)

	// 30m cut started 18 minutes ago leaves 12 minutes
	serving := green(t, cut, p, now.Add(-18*time.Minute))
	first := orange(t, cut, &pid, now.Add(-10*time.Minute))
	second := orange(t, color, &pid, now.Add(-5*time.Minute))

	snap := b.Build(loc, []*provider.Provider{p}, []*reservation.Reservation{second, serving, first}, durations, now)

	require.Len(t, snap.Providers, 1)
	st := snap.Providers[0]
	assert.Equal(t, queue.ProviderOccupied, st.State)
	assert.Equal(t, 12*time.Minute, st.Remaining)
	assert.Equal(t, 12, st.RemainingMinutes())
	assert.Equal(t, serving.ID(), st.Serving.ID())
	assert.Equal(t, 40*time.Minute, st.AverageDuration)
	assert.Equal(t, 2, st.Waiting)
	assert.Equal(t, 12*time.Minute+2*40*time.Minute, st.NextWait)

	require.Len(t, snap.Waiting, 2)
	assert.Equal(t, first.ID(), snap.Waiting[0].Reservation.ID())
	assert.Equal(t, 1, snap.Waiting[0].Position)
	assert.Equal(t, 12*time.Minute, *snap.Waiting[0].EstimatedWait)
	assert.Equal(t, 52*time.Minute, *snap.Waiting[1].EstimatedWait)
}

func TestBuilder_UnassignedTakesBestProvider(t *testing.T) {
	b := queue.NewBuilder(5*time.Minute, 30*time.Minute, policy)
	busy := newProvider(true, cut.ServiceID)
	idle := newProvider(true, cut.ServiceID)
	paused := newProvider(false, cut.ServiceID)
	now := base.Add(time.Hour)

	serving := green(t, cut, busy, now.Add(-5*time.Minute))
	walkin := orange(t, cut, nil, now.Add(-time.Minute))
	noone := orange(t, color, nil, now)

	snap := b.Build(loc, []*provider.Provider{busy, idle, paused},
		[]*reservation.Reservation{serving, walkin, noone}, durations, now)

	require.Len(t, snap.Waiting, 2)
	require.NotNil(t, snap.Waiting[0].EstimatedWait)
	assert.Zero(t, *snap.Waiting[0].EstimatedWait)
	assert.Nil(t, snap.Waiting[1].EstimatedWait)

	states := map[uuid.UUID]queue.ProviderState{}
	for _, st := range snap.Providers {
		states[st.ProviderID] = st.State
	}
	assert.Equal(t, queue.ProviderOccupied, states[busy.ID()])
	assert.Equal(t, queue.ProviderAvailable, states[idle.ID()])
	assert.Equal(t, queue.ProviderPaused, states[paused.ID()])
}

func TestBuilder_DisplayBuffer(t *testing.T) {
	b := queue.NewBuilder(5*time.Minute, 30*time.Minute, policy)
	c, err := reservation.NewCustomer("Guest", "09000000000", nil)
	require.NoError(t, err)

	fresh := reservation.NewWalkin(loc, cut, nil, c, policy, base)
	recent := reservation.NewWalkin(loc, cut, nil, c, policy, base.Add(-8*time.Minute))
	stale := reservation.NewWalkin(loc, cut, nil, c, policy, base.Add(-11*time.Minute))
	now := base.Add(2 * time.Minute)

	snap := b.Build(loc, nil, []*reservation.Reservation{fresh, recent, stale}, durations, now)

	require.Len(t, snap.Booked, 2)
	assert.Equal(t, fresh.ID(), snap.Booked[0].Reservation.ID())
	assert.False(t, snap.Booked[0].Expired)
	assert.Equal(t, 3*time.Minute, snap.Booked[0].RemainingGrace)

	assert.Equal(t, recent.ID(), snap.Booked[1].Reservation.ID())
	assert.True(t, snap.Booked[1].Expired)
	assert.Zero(t, snap.Booked[1].RemainingGrace)
}

func scheduled(t *testing.T, slotAt time.Time) *reservation.Reservation {
	t.Helper()
	c, err := reservation.NewCustomer("Guest", "09000000000", nil)
	require.NoError(t, err)
	slot := reservation.ScheduledSlot{Date: hours.DateOf(slotAt), Time: hours.TimeOfDayOf(slotAt), At: slotAt}
	return reservation.NewScheduled(loc, cut, nil, slot, c, slotAt.Add(-24*time.Hour))
}

func TestBuilder_DueScheduledIsBooked(t *testing.T) {
	b := queue.NewBuilder(5*time.Minute, 30*time.Minute, policy)

	due := scheduled(t, base.Add(10*time.Minute))
	later := scheduled(t, base.Add(time.Hour))
	missed := scheduled(t, base.Add(-11*time.Minute))

	snap := b.Build(loc, nil, []*reservation.Reservation{due, later, missed}, durations, base)

	require.Len(t, snap.Booked, 1)
	entry := snap.Booked[0]
	assert.Equal(t, due.ID(), entry.Reservation.ID())
	assert.Equal(t, reservation.StatusRed, entry.Reservation.Status())
	assert.Equal(t, base.Add(15*time.Minute), *entry.Reservation.ExpiresAt())
	assert.Equal(t, 15*time.Minute, entry.RemainingGrace)
	assert.False(t, entry.Expired)

	// the stored booking stays unpromoted until the job or a check-in writes it
	assert.Equal(t, reservation.StatusNone, due.Status())
	assert.Nil(t, due.ExpiresAt())
}

func TestBuilder_DisplayBufferSurvivesCompaction(t *testing.T) {
	b := queue.NewBuilder(5*time.Minute, 30*time.Minute, policy)
	c, err := reservation.NewCustomer("Guest", "09000000000", nil)
	require.NoError(t, err)

	// expired one minute ago
	walkin := reservation.NewWalkin(loc, cut, nil, c, policy, base.Add(-6*time.Minute))

	before := b.Build(loc, nil, []*reservation.Reservation{walkin}, durations, base)
	require.True(t, walkin.Expire(base))
	after := b.Build(loc, nil, []*reservation.Reservation{walkin}, durations, base)

	require.Len(t, before.Booked, 1)
	require.Len(t, after.Booked, 1)
	assert.True(t, after.Booked[0].Expired)
	assert.Zero(t, after.Booked[0].RemainingGrace)

	gone := b.Build(loc, nil, []*reservation.Reservation{walkin}, durations, base.Add(5*time.Minute))
	assert.Empty(t, gone.Booked)
}
