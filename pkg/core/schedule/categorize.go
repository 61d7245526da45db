package schedule

import (
	"sort"
	"time"

	"github.com/ocroft/shiftdesk/pkg/core/model"
)

// Tab is the manager view's active time bucket. Buckets are mutually
// exclusive because exactly one tab is active at a time.
type Tab int

const (
	TabAll Tab = iota
	TabToday
	TabThisWeek
	TabThisMonth
)

func (t Tab) String() string {
	switch t {
	case TabToday:
		return "Today"
	case TabThisWeek:
		return "This Week"
	case TabThisMonth:
		return "This Month"
	default:
		return "All Shifts"
	}
}

// Categorize returns the shifts whose start time falls in the active
// tab's window, relative to now. "This Month" uses calendar month
// arithmetic, not a fixed 30 days. Order is preserved.
func Categorize(shifts []model.Shift, tab Tab, now time.Time) []model.Shift {
	if tab == TabAll {
		return append([]model.Shift(nil), shifts...)
	}

	today := startOfDay(now)
	nextWeek := today.AddDate(0, 0, 7)
	nextMonth := today.AddDate(0, 1, 0)

	out := make([]model.Shift, 0, len(shifts))
	for _, sh := range shifts {
		var in bool
		switch tab {
		case TabToday:
			in = startOfDay(sh.StartTime).Equal(today)
		case TabThisWeek:
			in = !sh.StartTime.Before(today) && sh.StartTime.Before(nextWeek)
		case TabThisMonth:
			in = !sh.StartTime.Before(today) && sh.StartTime.Before(nextMonth)
		}
		if in {
			out = append(out, sh)
		}
	}
	return out
}

// WorkerBuckets is the worker view's three simultaneous buckets. A
// completed shift whose window still covers now lands only in Past:
// the status disjunction takes precedence over the time window.
type WorkerBuckets struct {
	Current  []model.Shift
	Upcoming []model.Shift
	Past     []model.Shift
}

// BucketForWorker partitions a worker's shifts relative to now.
// Current and Upcoming are sorted ascending by start time, Past
// descending (most recent first).
func BucketForWorker(shifts []model.Shift, now time.Time) WorkerBuckets {
	var b WorkerBuckets
	for _, sh := range shifts {
		switch {
		case sh.Status == model.StatusCanceled || sh.Status == model.StatusCompleted || sh.EndTime.Before(now):
			b.Past = append(b.Past, sh)
		case sh.StartTime.After(now):
			b.Upcoming = append(b.Upcoming, sh)
		case !sh.StartTime.After(now) && !sh.EndTime.Before(now):
			b.Current = append(b.Current, sh)
		}
	}

	sort.SliceStable(b.Current, func(i, j int) bool {
		return b.Current[i].StartTime.Before(b.Current[j].StartTime)
	})
	sort.SliceStable(b.Upcoming, func(i, j int) bool {
		return b.Upcoming[i].StartTime.Before(b.Upcoming[j].StartTime)
	})
	sort.SliceStable(b.Past, func(i, j int) bool {
		return b.Past[i].StartTime.After(b.Past[j].StartTime)
	})

	return b
}
