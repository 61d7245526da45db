package schedule

import (
	"time"

	"github.com/ocroft/shiftdesk/pkg/core/model"
)

// ShiftStats are display counters over one shift collection. They are
// recomputed from the snapshot on every call; nothing is cached.
type ShiftStats struct {
	Total int
	// Active counts time-window membership only, independent of the
	// persisted status.
	Active    int
	Upcoming  int
	PerWorker map[int64]int
}

// ComputeShiftStats derives the shift counters relative to now.
func ComputeShiftStats(shifts []model.Shift, now time.Time) ShiftStats {
	stats := ShiftStats{
		Total:     len(shifts),
		PerWorker: make(map[int64]int),
	}

	for _, sh := range shifts {
		if !sh.StartTime.After(now) && !sh.EndTime.Before(now) {
			stats.Active++
		}
		if sh.StartTime.After(now) {
			stats.Upcoming++
		}
		stats.PerWorker[sh.Worker.ID]++
	}

	return stats
}

// WorkerStats are display counters over the worker roster.
type WorkerStats struct {
	Total    int
	Active   int
	Inactive int
	PerRole  map[model.Role]int
}

// ComputeWorkerStats derives the roster counters.
func ComputeWorkerStats(workers []model.Worker) WorkerStats {
	stats := WorkerStats{
		Total:   len(workers),
		PerRole: make(map[model.Role]int),
	}

	for _, w := range workers {
		if w.Active {
			stats.Active++
		} else {
			stats.Inactive++
		}
		stats.PerRole[w.Role]++
	}

	return stats
}
