package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ocroft/shiftdesk/pkg/core/model"
)

func shiftAt(id int64, workerID int64, shiftType model.ShiftType, start time.Time, dur time.Duration) model.Shift {
	return model.Shift{
		ID:        id,
		StartTime: start,
		EndTime:   start.Add(dur),
		Worker:    model.WorkerRef{ID: workerID},
		Status:    model.StatusScheduled,
		ShiftType: shiftType,
	}
}

func ids(shifts []model.Shift) []int64 {
	out := make([]int64, len(shifts))
	for i, sh := range shifts {
		out[i] = sh.ID
	}
	return out
}

func TestFilter_ConjunctionPreservesOrder(t *testing.T) {
	day := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	shifts := []model.Shift{
		shiftAt(1, 7, model.TypeRegular, day, 4*time.Hour),
		shiftAt(2, 7, model.TypeOvertime, day.Add(24*time.Hour), 4*time.Hour),
		shiftAt(3, 8, model.TypeRegular, day.Add(48*time.Hour), 4*time.Hour),
		shiftAt(4, 7, model.TypeRegular, day.Add(72*time.Hour), 4*time.Hour),
		shiftAt(5, 9, model.TypeTraining, day.Add(96*time.Hour), 4*time.Hour),
	}

	workerID := int64(7)
	shiftType := model.TypeRegular
	filtered := Filter{WorkerID: &workerID, ShiftType: &shiftType}.Apply(shifts)

	assert.Equal(t, []int64{1, 4}, ids(filtered))
}

func TestFilter_AbsentPredicatesPassThrough(t *testing.T) {
	day := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	shifts := []model.Shift{
		shiftAt(1, 7, model.TypeRegular, day, 4*time.Hour),
		shiftAt(2, 8, model.TypeOvertime, day, 4*time.Hour),
	}

	assert.Equal(t, []int64{1, 2}, ids(Filter{}.Apply(shifts)))
}

func TestFilter_DateRangeNormalization(t *testing.T) {
	shifts := []model.Shift{
		shiftAt(1, 7, model.TypeRegular, time.Date(2024, 6, 3, 0, 30, 0, 0, time.UTC), time.Hour),
		shiftAt(2, 7, model.TypeRegular, time.Date(2024, 6, 4, 23, 30, 0, 0, time.UTC), time.Hour),
		shiftAt(3, 7, model.TypeRegular, time.Date(2024, 6, 5, 0, 0, 1, 0, time.UTC), time.Hour),
		shiftAt(4, 7, model.TypeRegular, time.Date(2024, 6, 2, 23, 59, 0, 0, time.UTC), time.Hour),
	}

	// Range given as mid-day instants; normalization widens to whole days.
	start := time.Date(2024, 6, 3, 14, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 4, 14, 0, 0, 0, time.UTC)
	filtered := Filter{RangeStart: &start, RangeEnd: &end}.Apply(shifts)

	assert.Equal(t, []int64{1, 2}, ids(filtered))
}

func TestCategorize_Today(t *testing.T) {
	now := time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)
	shifts := []model.Shift{
		shiftAt(1, 7, model.TypeRegular, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), time.Hour),
		shiftAt(2, 7, model.TypeRegular, time.Date(2024, 6, 3, 23, 59, 0, 0, time.UTC), time.Hour),
		shiftAt(3, 7, model.TypeRegular, time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC), time.Hour),
		shiftAt(4, 7, model.TypeRegular, time.Date(2024, 6, 2, 12, 0, 0, 0, time.UTC), time.Hour),
	}

	assert.Equal(t, []int64{1, 2}, ids(Categorize(shifts, TabToday, now)))
}

func TestCategorize_ThisWeekBoundary(t *testing.T) {
	// Monday 2024-06-03; the window is [today, today+7d).
	now := time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)
	shifts := []model.Shift{
		shiftAt(1, 7, model.TypeRegular, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), time.Hour),
		shiftAt(2, 7, model.TypeRegular, time.Date(2024, 6, 9, 23, 0, 0, 0, time.UTC), time.Hour),
		shiftAt(3, 7, model.TypeRegular, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), time.Hour),
		shiftAt(4, 7, model.TypeRegular, time.Date(2024, 6, 2, 12, 0, 0, 0, time.UTC), time.Hour),
	}

	got := ids(Categorize(shifts, TabThisWeek, now))

	assert.Contains(t, got, int64(1))
	assert.Contains(t, got, int64(2), "last day inside the 7-day window")
	assert.NotContains(t, got, int64(3), "upper boundary is exclusive")
	assert.NotContains(t, got, int64(4), "yesterday is out")
}

func TestCategorize_ThisMonthUsesCalendarArithmetic(t *testing.T) {
	// Jan 31 + 1 calendar month lands on Mar 2 via Go's date
	// normalization, not a fixed 30 days later.
	now := time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC)
	shifts := []model.Shift{
		shiftAt(1, 7, model.TypeRegular, time.Date(2024, 2, 29, 9, 0, 0, 0, time.UTC), time.Hour),
		shiftAt(2, 7, model.TypeRegular, time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), time.Hour),
		shiftAt(3, 7, model.TypeRegular, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), time.Hour),
	}

	got := ids(Categorize(shifts, TabThisMonth, now))

	assert.Contains(t, got, int64(1))
	assert.Contains(t, got, int64(2))
	assert.NotContains(t, got, int64(3))
}

func TestCategorize_AllReturnsCopy(t *testing.T) {
	shifts := []model.Shift{shiftAt(1, 7, model.TypeRegular, time.Now(), time.Hour)}

	got := Categorize(shifts, TabAll, time.Now())

	require.Equal(t, ids(shifts), ids(got))
	got[0].ID = 99
	assert.Equal(t, int64(1), shifts[0].ID)
}

func TestBucketForWorker(t *testing.T) {
	now := time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)

	current := shiftAt(1, 7, model.TypeRegular, now.Add(-time.Hour), 4*time.Hour)
	upcomingLate := shiftAt(2, 7, model.TypeRegular, now.Add(48*time.Hour), 4*time.Hour)
	upcomingSoon := shiftAt(3, 7, model.TypeRegular, now.Add(2*time.Hour), 4*time.Hour)
	ended := shiftAt(4, 7, model.TypeRegular, now.Add(-26*time.Hour), 4*time.Hour)
	canceledFuture := shiftAt(5, 7, model.TypeRegular, now.Add(24*time.Hour), 4*time.Hour)
	canceledFuture.Status = model.StatusCanceled

	b := BucketForWorker([]model.Shift{upcomingLate, ended, current, canceledFuture, upcomingSoon}, now)

	assert.Equal(t, []int64{1}, ids(b.Current))
	assert.Equal(t, []int64{3, 2}, ids(b.Upcoming), "ascending by start time")
	assert.Equal(t, []int64{5, 4}, ids(b.Past), "descending by start time, most recent first")
}

func TestBucketForWorker_CompletedInsideWindowLandsOnlyInPast(t *testing.T) {
	now := time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)
	sh := shiftAt(1, 7, model.TypeRegular, now.Add(-time.Hour), 4*time.Hour)
	sh.Status = model.StatusCompleted

	b := BucketForWorker([]model.Shift{sh}, now)

	assert.Empty(t, b.Current, "status disjunction outranks the time window")
	assert.Empty(t, b.Upcoming)
	assert.Equal(t, []int64{1}, ids(b.Past))
}

func TestComputeShiftStats(t *testing.T) {
	now := time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)
	canceledActive := shiftAt(4, 9, model.TypeRegular, now.Add(-time.Hour), 2*time.Hour)
	canceledActive.Status = model.StatusCanceled

	stats := ComputeShiftStats([]model.Shift{
		shiftAt(1, 7, model.TypeRegular, now.Add(-time.Hour), 2*time.Hour),
		shiftAt(2, 7, model.TypeRegular, now.Add(2*time.Hour), 2*time.Hour),
		shiftAt(3, 8, model.TypeRegular, now.Add(-26*time.Hour), 2*time.Hour),
		canceledActive,
	}, now)

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.Active, "active is time-window membership, status-blind")
	assert.Equal(t, 1, stats.Upcoming)
	assert.Equal(t, map[int64]int{7: 2, 8: 1, 9: 1}, stats.PerWorker)
}

func TestComputeWorkerStats(t *testing.T) {
	stats := ComputeWorkerStats([]model.Worker{
		{ID: 1, Role: model.RoleWaiter, Active: true},
		{ID: 2, Role: model.RoleWaiter, Active: false},
		{ID: 3, Role: model.RoleChef, Active: true},
	})

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Active)
	assert.Equal(t, 1, stats.Inactive)
	assert.Equal(t, map[model.Role]int{model.RoleWaiter: 2, model.RoleChef: 1}, stats.PerRole)
}
