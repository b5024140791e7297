package queue

import (
	"bytes"
	"sort"

	"salon-queue/internal/domain/provider"
	"salon-queue/internal/domain/reservation"
)

// fifoLess orders ORANGE entries by arrival, then id.
func fifoLess(a, b *reservation.Reservation) bool {
	aa, ba := a.ArrivedAt(), b.ArrivedAt()
	switch {
	case aa != nil && ba != nil && !aa.Equal(*ba):
		return aa.Before(*ba)
	case aa == nil && ba != nil:
		return false
	case aa != nil && ba == nil:
		return true
	}
	ai, bi := a.ID(), b.ID()
	return bytes.Compare(ai[:], bi[:]) < 0
}

// SortFIFO sorts in place by arrival order.
func SortFIFO(entries []*reservation.Reservation) {
	sort.SliceStable(entries, func(i, j int) bool { return fifoLess(entries[i], entries[j]) })
}

// CanServe reports whether p may take the ORANGE entry r: assigned to p, or unassigned
// and within p's skills.
func CanServe(p *provider.Provider, r *reservation.Reservation) bool {
	if r.Status() != reservation.StatusOrange {
		return false
	}
	if r.ProviderID() != nil {
		return *r.ProviderID() == p.ID()
	}
	return p.Performs(r.Service().ServiceID)
}

// SelectNext picks the earliest-arrived ORANGE entry p can serve, or nil.
func SelectNext(p *provider.Provider, candidates []*reservation.Reservation) *reservation.Reservation {
	var next *reservation.Reservation
	for _, r := range candidates {
		if !CanServe(p, r) {
			continue
		}
		if next == nil || fifoLess(r, next) {
			next = r
		}
	}
	return next
}
