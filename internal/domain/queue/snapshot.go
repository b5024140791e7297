package queue

import (
	"time"

	"salon-queue/internal/domain/provider"
	"salon-queue/internal/domain/reservation"

	"github.com/google/uuid"
)

type ProviderState string

const (
	ProviderAvailable ProviderState = "AVAILABLE"
	ProviderOccupied  ProviderState = "OCCUPIED"
	ProviderPaused    ProviderState = "PAUSED"
)

type ProviderStatus struct {
	ProviderID uuid.UUID
	Name       string
	State      ProviderState
	// Remaining is set while OCCUPIED.
	Remaining       time.Duration
	Serving         *reservation.Reservation
	Waiting         int
	AverageDuration time.Duration
	// NextWait is the estimate for an entry joining this provider's queue now.
	NextWait time.Duration
}

func (s ProviderStatus) RemainingMinutes() int {
	return int((s.Remaining + time.Minute - 1) / time.Minute)
}

type WaitingEntry struct {
	Reservation *reservation.Reservation
	Position    int
	// EstimatedWait is nil when no provider can take the entry.
	EstimatedWait *time.Duration
}

type BookedEntry struct {
	Reservation    *reservation.Reservation
	RemainingGrace time.Duration
	// Expired entries are kept briefly for display only.
	Expired bool
}

type Snapshot struct {
	LocationID  uuid.UUID
	GeneratedAt time.Time
	Providers   []ProviderStatus
	Waiting     []WaitingEntry
	Booked      []BookedEntry
}

// Builder derives the queue view from providers and active reservations in memory.
type Builder struct {
	displayBuffer   time.Duration
	defaultDuration time.Duration
	policy          reservation.Policy
}

func NewBuilder(displayBuffer, defaultDuration time.Duration, policy reservation.Policy) *Builder {
	return &Builder{displayBuffer: displayBuffer, defaultDuration: defaultDuration, policy: policy}
}

// DeriveStatus computes a provider's live status from the flag and its GREEN entry.
func DeriveStatus(p *provider.Provider, green *reservation.Reservation, now time.Time) (ProviderState, time.Duration) {
	if !p.Available() {
		return ProviderPaused, 0
	}
	if green != nil {
		return ProviderOccupied, green.RemainingService(now)
	}
	return ProviderAvailable, 0
}

func (b *Builder) Build(
	locationID uuid.UUID,
	providers []*provider.Provider,
	active []*reservation.Reservation,
	durations map[uuid.UUID]time.Duration,
	now time.Time,
) Snapshot {
	snap := Snapshot{LocationID: locationID, GeneratedAt: now}

	green := make(map[uuid.UUID]*reservation.Reservation)
	var orange []*reservation.Reservation
	for _, r := range active {
		switch r.Status() {
		case reservation.StatusGreen:
			if r.ProviderID() != nil {
				green[*r.ProviderID()] = r
			}
		case reservation.StatusOrange:
			orange = append(orange, r)
		case reservation.StatusRed, reservation.StatusExpired:
			if e, ok := b.booked(r, now); ok {
				snap.Booked = append(snap.Booked, e)
			}
		case reservation.StatusNone:
			if due, ok := b.dueScheduled(r, now); ok {
				if e, ok := b.booked(due, now); ok {
					snap.Booked = append(snap.Booked, e)
				}
			}
		}
	}
	SortFIFO(orange)

	statuses := make(map[uuid.UUID]*ProviderStatus, len(providers))
	snap.Providers = make([]ProviderStatus, 0, len(providers))
	for _, p := range providers {
		state, remaining := DeriveStatus(p, green[p.ID()], now)
		snap.Providers = append(snap.Providers, ProviderStatus{
			ProviderID:      p.ID(),
			Name:            p.Name(),
			State:           state,
			Remaining:       remaining,
			Serving:         green[p.ID()],
			AverageDuration: p.AverageDuration(durations, b.defaultDuration),
		})
	}
	for i := range snap.Providers {
		statuses[snap.Providers[i].ProviderID] = &snap.Providers[i]
	}

	// ahead[p] counts ORANGE entries already queued in front for provider p.
	ahead := make(map[uuid.UUID]int, len(providers))
	snap.Waiting = make([]WaitingEntry, 0, len(orange))
	for i, r := range orange {
		entry := WaitingEntry{Reservation: r, Position: i + 1}

		if pid := r.ProviderID(); pid != nil {
			if st, ok := statuses[*pid]; ok && st.State != ProviderPaused {
				w := st.Remaining + time.Duration(ahead[*pid])*st.AverageDuration
				entry.EstimatedWait = &w
			}
			ahead[*pid]++
		} else {
			var best *time.Duration
			for _, p := range providers {
				st := statuses[p.ID()]
				if !p.EligibleFor(r.Service().ServiceID) {
					continue
				}
				w := st.Remaining + time.Duration(ahead[p.ID()])*st.AverageDuration
				if best == nil || w < *best {
					best = &w
				}
			}
			entry.EstimatedWait = best
			for _, p := range providers {
				if p.Performs(r.Service().ServiceID) {
					ahead[p.ID()]++
				}
			}
		}
		snap.Waiting = append(snap.Waiting, entry)
	}

	for i := range snap.Providers {
		st := &snap.Providers[i]
		st.Waiting = ahead[st.ProviderID]
		st.NextWait = st.Remaining + time.Duration(st.Waiting)*st.AverageDuration
	}
	return snap
}

// dueScheduled projects a scheduled booking inside its lead window as the RED entry the
// compaction job would persist. The stored row is not touched.
func (b *Builder) dueScheduled(r *reservation.Reservation, now time.Time) (*reservation.Reservation, bool) {
	if !r.DueForQueue(b.policy, now) {
		return nil, false
	}
	due := reservation.Reconstruct(r.Snapshot())
	due.EnterQueue(b.policy, now)
	return due, true
}

// booked covers RED rows, lazily expired RED rows and rows compaction already marked
// EXPIRED, so the display buffer does not depend on when the job last ran.
func (b *Builder) booked(r *reservation.Reservation, now time.Time) (BookedEntry, bool) {
	if r.StatusAt(now) == reservation.StatusRed {
		return BookedEntry{Reservation: r, RemainingGrace: r.RemainingGrace(now)}, true
	}
	if r.ExpiresAt() != nil && now.Sub(*r.ExpiresAt()) <= b.displayBuffer {
		return BookedEntry{Reservation: r, Expired: true}, true
	}
	return BookedEntry{}, false
}
