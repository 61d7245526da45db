// Package schedule filters, categorizes and summarizes the cached
// shift collections for display. Everything here is pure: inputs are
// snapshots, outputs are fresh slices, nothing is cached between
// calls.
package schedule

import (
	"time"

	"github.com/ocroft/shiftdesk/pkg/core/model"
)

// Filter is the manager view's predicate set. Nil fields pass
// everything through; set fields are conjoined.
type Filter struct {
	WorkerID   *int64
	ShiftType  *model.ShiftType
	RangeStart *time.Time // normalized to 00:00:00 of its day
	RangeEnd   *time.Time // normalized to 23:59:59.999 of its day
}

// Apply returns the shifts matching every set predicate, preserving
// their relative order.
func (f Filter) Apply(shifts []model.Shift) []model.Shift {
	out := make([]model.Shift, 0, len(shifts))
	for _, sh := range shifts {
		if f.matches(sh) {
			out = append(out, sh)
		}
	}
	return out
}

func (f Filter) matches(sh model.Shift) bool {
	if f.WorkerID != nil && sh.Worker.ID != *f.WorkerID {
		return false
	}
	if f.ShiftType != nil && sh.ShiftType != *f.ShiftType {
		return false
	}
	if f.RangeStart != nil {
		if sh.StartTime.Before(startOfDay(*f.RangeStart)) {
			return false
		}
	}
	if f.RangeEnd != nil {
		if sh.StartTime.After(endOfDay(*f.RangeEnd)) {
			return false
		}
	}
	return true
}

// startOfDay truncates to 00:00:00 in the timestamp's location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfDay extends to 23:59:59.999 in the timestamp's location.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999_000_000, t.Location())
}
