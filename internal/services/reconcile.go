package services

import (
	"sort"
	"time"
)

// Dated is implemented by every log record keyed on a calendar date.
// Time-of-day never participates in matching.
type Dated interface {
	Day() time.Time
}

// Identified is implemented by records that are also addressable by ID,
// such as fitness entries where several may share a date.
type Identified interface {
	Dated
	EntryID() string
}

/// ReconcileByDate merges incoming into existing: an entry on the same
// calendar day is replaced wholesale, otherwise incoming is appended. The
// result is sorted newest first. Callers own persistence; the input slice
// is never mutated.
func ReconcileByDate[E Dated](existing []E, incoming E) []E {
	merged := make([]E, 0, len(existing)+1)
	merged = append(merged, existing...)

	matched := false
	for index := range merged {
		if SameDay(merged[index].Day(), incoming.Day()) {
			merged[index] = incoming
			matched = true
			break
		}
	}
	if !matched {
		merged = append(merged, incoming)
	}

	sortNewestFirst(merged)
	return merged
}

// ReconcileByID behaves like ReconcileByDate but matches on entry ID.
func ReconcileByID[E Identified](existing []E, incoming E) []E {
	merged := make([]E, 0, len(existing)+1)
	merged = append(merged, existing...)

	matched := false
	for index := range merged {
		if merged[index].EntryID() == incoming.EntryID() {
			merged[index] = incoming
			matched = true
			break
		}
	}
	if !matched {
		merged = append(merged, incoming)
	}

	sortNewestFirst(merged)
	return merged
}

// RemoveByDate drops the entry recorded on the given calendar day. A missing
// day is a no-op: the input slice is returned unchanged.
func RemoveByDate[E Dated](existing []E, day time.Time) []E {
	index := -1
	for position := range existing {
		if SameDay(existing[position].Day(), day) {
			index = position
			break
		}
	}
	if index < 0 {
		return existing
	}

	filtered := make([]E, 0, len(existing)-1)
	filtered = append(filtered, existing[:index]...)
	filtered = append(filtered, existing[index+1:]...)
	return filtered
}

// RemoveByID drops the entry with the given ID; a missing ID is a no-op.
func RemoveByID[E Identified](existing []E, id string) []E {
	index := -1
	for position := range existing {
		if existing[position].EntryID() == id {
			index = position
			break
		}
	}
	if index < 0 {
		return existing
	}

	filtered := make([]E, 0, len(existing)-1)
	filtered = append(filtered, existing[:index]...)
	filtered = append(filtered, existing[index+1:]...)
	return filtered
}

func sortNewestFirst[E Dated](entries []E) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Day().After(entries[j].Day())
	})
}
