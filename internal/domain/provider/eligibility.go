package provider

import (
	"bytes"
	"sort"

	"github.com/google/uuid"
)

// Eligible filters providers able to take serviceID and orders them by fewest active
// queue entries, then by id, so new work spreads across the team.
func Eligible(providers []*Provider, serviceID uuid.UUID, activeLoad map[uuid.UUID]int) []*Provider {
	out := make([]*Provider, 0, len(providers))
	for _, p := range providers {
		if p.EligibleFor(serviceID) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		li, lj := activeLoad[out[i].id], activeLoad[out[j].id]
		if li != lj {
			return li < lj
		}
		return bytes.Compare(out[i].id[:], out[j].id[:]) < 0
	})
	return out
}

func IDs(providers []*Provider) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(providers))
	for _, p := range providers {
		ids = append(ids, p.id)
	}
	return ids
}

func Find(providers []*Provider, id uuid.UUID) (*Provider, bool) {
	for _, p := range providers {
		if p.id == id {
			return p, true
		}
	}
	return nil, false
}
