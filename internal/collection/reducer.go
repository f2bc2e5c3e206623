// Package collection holds the pure reducers that take a collection and an
// operation to a new collection. Inputs are never mutated; every result
// comes back sorted by date descending.
package collection

import (
	"sort"

	"github.com/yourname/moodtracker/internal"
)

type happinessKey struct {
	date      string
	happiness int
}

// SortHappiness returns a copy of list sorted by date descending. Validated
// dates are YYYY-MM-DD, for which lexical order is calendar order.
func SortHappiness(list []internal.HappinessEntry) []internal.HappinessEntry {
	out := append([]internal.HappinessEntry(nil), list...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

// SortMedia returns a copy of list sorted by date descending. Entries on the
// same date keep their relative order.
func SortMedia(list []internal.MediaEntry) []internal.MediaEntry {
	out := append([]internal.MediaEntry(nil), list...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

// AddHappiness inserts e, replacing any entry already on the same date.
// Last write wins; the one-entry-per-date invariant is kept by replacement,
// not by rejecting the write.
func AddHappiness(list []internal.HappinessEntry, e internal.HappinessEntry) []internal.HappinessEntry {
	out := make([]internal.HappinessEntry, 0, len(list)+1)
	out = append(out, e)
	for _, cur := range list {
		if cur.Date != e.Date {
			out = append(out, cur)
		}
	}
	return SortHappiness(out)
}

// UpdateHappiness removes old by (date, happiness) identity and inserts
// updated. When the date changed, any entry already occupying the new date
// is removed as well, so the one-entry-per-date invariant survives the move.
func UpdateHappiness(list []internal.HappinessEntry, old, updated internal.HappinessEntry) []internal.HappinessEntry {
	out := make([]internal.HappinessEntry, 0, len(list)+1)
	out = append(out, updated)
	for _, cur := range list {
		if cur.Date == old.Date && cur.Happiness == old.Happiness {
			continue
		}
		if updated.Date != old.Date && cur.Date == updated.Date {
			continue
		}
		out = append(out, cur)
	}
	return SortHappiness(out)
}

// DeleteHappiness removes every entry whose (date, happiness) pair appears
// in victims. Victims not present in list are ignored.
func DeleteHappiness(list []internal.HappinessEntry, victims []internal.HappinessEntry) []internal.HappinessEntry {
	drop := make(map[happinessKey]struct{}, len(victims))
	for _, v := range victims {
		drop[happinessKey{v.Date, v.Happiness}] = struct{}{}
	}

	out := make([]internal.HappinessEntry, 0, len(list))
	for _, cur := range list {
		if _, gone := drop[happinessKey{cur.Date, cur.Happiness}]; gone {
			continue
		}
		out = append(out, cur)
	}
	return SortHappiness(out)
}

// AddMedia prepends entries. Media entries carry no per-date uniqueness.
func AddMedia(list []internal.MediaEntry, entries ...internal.MediaEntry) []internal.MediaEntry {
	out := make([]internal.MediaEntry, 0, len(list)+len(entries))
	out = append(out, entries...)
	out = append(out, list...)
	return SortMedia(out)
}

// UpdateMedia replaces the single entry whose ID matches e.ID. A missing ID
// leaves the collection unchanged.
func UpdateMedia(list []internal.MediaEntry, e internal.MediaEntry) []internal.MediaEntry {
	out := make([]internal.MediaEntry, 0, len(list))
	for _, cur := range list {
		if cur.ID == e.ID {
			out = append(out, e)
		} else {
			out = append(out, cur)
		}
	}
	return SortMedia(out)
}

// DeleteMedia removes every entry whose ID appears in ids.
func DeleteMedia(list []internal.MediaEntry, ids []string) []internal.MediaEntry {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	out := make([]internal.MediaEntry, 0, len(list))
	for _, cur := range list {
		if _, gone := drop[cur.ID]; gone {
			continue
		}
		out = append(out, cur)
	}
	return SortMedia(out)
}
