package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ocroft/shiftdesk/pkg/core/model"
)

func testShift(id int64, notes string) model.Shift {
	return model.Shift{
		ID:         id,
		StartTime:  time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 6, 1, 13, 0, 0, 0, time.UTC),
		Worker:     model.WorkerRef{ID: 7, Name: "Maya", Role: model.RoleWaiter},
		Restaurant: model.RestaurantRef{ID: 1},
		Status:     model.StatusScheduled,
		Notes:      notes,
	}
}

func shiftIDs(shifts []model.Shift) []int64 {
	ids := make([]int64, len(shifts))
	for i, sh := range shifts {
		ids[i] = sh.ID
	}
	return ids
}

func TestCreate_NotConjuredIntoUnfetchedRestaurantScope(t *testing.T) {
	s := New()

	s.CommitShift(OpCreateShift, ShiftMutation{Kind: ShiftCreated, Shift: testShift(1, "")})

	assert.Equal(t, []int64{1}, shiftIDs(s.Shifts()))
	assert.Empty(t, s.RestaurantShifts(), "never-fetched restaurant cache must stay empty")
}

func TestCreate_AppendsToPopulatedRestaurantScope(t *testing.T) {
	s := New()
	s.CommitShift(OpFetchRestaurantShifts, ShiftMutation{
		Kind:   RestaurantShiftsLoaded,
		Shifts: []model.Shift{testShift(1, "")},
	})

	s.CommitShift(OpCreateShift, ShiftMutation{Kind: ShiftCreated, Shift: testShift(2, "")})

	assert.Equal(t, []int64{2}, shiftIDs(s.Shifts()))
	assert.Equal(t, []int64{1, 2}, shiftIDs(s.RestaurantShifts()), "create appends at end")
}

func TestUpdate_ReplacesInEveryCollection(t *testing.T) {
	s := New()
	s.applyShift(ShiftMutation{Kind: AllShiftsLoaded, Shifts: []model.Shift{testShift(1, ""), testShift(2, "")}})
	s.applyShift(ShiftMutation{Kind: RestaurantShiftsLoaded, Shifts: []model.Shift{testShift(2, "")}})
	s.applyShift(ShiftMutation{Kind: WorkerShiftsLoaded, Shifts: []model.Shift{testShift(2, ""), testShift(3, "")}})

	updated := testShift(2, "swapped section")
	updated.Status = model.StatusCheckedIn
	s.CommitShift(OpCheckIn, ShiftMutation{Kind: ShiftUpdated, Shift: updated})

	for _, got := range [][]model.Shift{s.Shifts(), s.RestaurantShifts(), s.WorkerShifts()} {
		for _, sh := range got {
			if sh.ID == 2 {
				assert.Equal(t, model.StatusCheckedIn, sh.Status)
				assert.Equal(t, "swapped section", sh.Notes)
			}
		}
	}

	// collections without the identifier, and record order, are untouched
	assert.Equal(t, []int64{1, 2}, shiftIDs(s.Shifts()))
	assert.Equal(t, []int64{2, 3}, shiftIDs(s.WorkerShifts()))
}

func TestUpdate_IsIdempotent(t *testing.T) {
	s := New()
	s.applyShift(ShiftMutation{Kind: AllShiftsLoaded, Shifts: []model.Shift{testShift(1, ""), testShift(2, "")}})

	m := ShiftMutation{Kind: ShiftUpdated, Shift: testShift(1, "edited")}
	s.applyShift(m)
	once := s.Shifts()

	s.applyShift(m)
	twice := s.Shifts()

	assert.Equal(t, once, twice)
}

func TestUpdate_OrderIndependentAcrossIdentifiers(t *testing.T) {
	load := ShiftMutation{Kind: AllShiftsLoaded, Shifts: []model.Shift{testShift(1, ""), testShift(2, "")}}
	a := ShiftMutation{Kind: ShiftUpdated, Shift: testShift(1, "a")}
	b := ShiftMutation{Kind: ShiftUpdated, Shift: testShift(2, "b")}

	s1 := New()
	s1.applyShift(load)
	s1.applyShift(a)
	s1.applyShift(b)

	s2 := New()
	s2.applyShift(load)
	s2.applyShift(b)
	s2.applyShift(a)

	assert.Equal(t, s1.Shifts(), s2.Shifts())
}

func TestDelete_RemovesEverywhereAndClearsSelection(t *testing.T) {
	s := New()
	s.applyShift(ShiftMutation{Kind: AllShiftsLoaded, Shifts: []model.Shift{testShift(1, ""), testShift(2, "")}})
	s.applyShift(ShiftMutation{Kind: RestaurantShiftsLoaded, Shifts: []model.Shift{testShift(2, "")}})
	s.applyShift(ShiftMutation{Kind: WorkerShiftsLoaded, Shifts: []model.Shift{testShift(2, "")}})
	s.SelectShift(2)

	s.CommitShift(OpDeleteShift, ShiftMutation{Kind: ShiftDeleted, ShiftID: 2})

	assert.Equal(t, []int64{1}, shiftIDs(s.Shifts()))
	assert.Empty(t, s.RestaurantShifts())
	assert.Empty(t, s.WorkerShifts())
	_, ok := s.SelectedShift()
	assert.False(t, ok, "selection must be cleared when the selected shift is deleted")
}

func TestDelete_LeavesUnrelatedSelectionAlone(t *testing.T) {
	s := New()
	s.applyShift(ShiftMutation{Kind: AllShiftsLoaded, Shifts: []model.Shift{testShift(1, ""), testShift(2, "")}})
	s.SelectShift(1)

	s.applyShift(ShiftMutation{Kind: ShiftDeleted, ShiftID: 2})

	sel, ok := s.SelectedShift()
	require.True(t, ok)
	assert.Equal(t, int64(1), sel.ID)
}

func TestSelectedShift_TracksReconciledRecord(t *testing.T) {
	s := New()
	s.applyShift(ShiftMutation{Kind: AllShiftsLoaded, Shifts: []model.Shift{testShift(1, "before")}})
	s.SelectShift(1)

	s.applyShift(ShiftMutation{Kind: ShiftUpdated, Shift: testShift(1, "after")})

	sel, ok := s.SelectedShift()
	require.True(t, ok)
	assert.Equal(t, "after", sel.Notes, "selection is a weak reference, never a stale copy")
}

func TestShiftFetched_UpsertsAndFocuses(t *testing.T) {
	s := New()

	s.CommitShift(OpGetShift, ShiftMutation{Kind: ShiftFetched, Shift: testShift(9, "fetched")})

	sel, ok := s.SelectedShift()
	require.True(t, ok)
	assert.Equal(t, int64(9), sel.ID)
	assert.Equal(t, []int64{9}, shiftIDs(s.Shifts()))

	// fetching again replaces rather than duplicating
	s.CommitShift(OpGetShift, ShiftMutation{Kind: ShiftFetched, Shift: testShift(9, "refetched")})
	require.Equal(t, []int64{9}, shiftIDs(s.Shifts()))
	sel, _ = s.SelectedShift()
	assert.Equal(t, "refetched", sel.Notes)
}

func TestLoadedCollections_ReplaceWholesale(t *testing.T) {
	s := New()
	s.applyShift(ShiftMutation{Kind: WorkerShiftsLoaded, Shifts: []model.Shift{testShift(1, ""), testShift(2, "")}})

	s.applyShift(ShiftMutation{Kind: WorkerShiftsLoaded, Shifts: []model.Shift{testShift(3, "")}})

	assert.Equal(t, []int64{3}, shiftIDs(s.WorkerShifts()))
}

func TestSnapshotsAreCopies(t *testing.T) {
	s := New()
	s.applyShift(ShiftMutation{Kind: AllShiftsLoaded, Shifts: []model.Shift{testShift(1, "")}})

	snap := s.Shifts()
	snap[0].Notes = "mutated by reader"

	fresh := s.Shifts()
	assert.Empty(t, fresh[0].Notes)
}

func TestBusyAndErrorFlags(t *testing.T) {
	s := New()

	s.Begin(OpCreateShift)
	assert.True(t, s.Busy(OpCreateShift))
	assert.False(t, s.Busy(OpDeleteShift), "operation classes are independent")

	s.Fail(OpCreateShift, "worker does not belong to the specified restaurant")
	assert.False(t, s.Busy(OpCreateShift))
	assert.Equal(t, "worker does not belong to the specified restaurant", s.Err(OpCreateShift))

	// a new attempt clears the prior error for that class only
	s.Fail(OpDeleteShift, "shift not found")
	s.Begin(OpCreateShift)
	assert.Empty(t, s.Err(OpCreateShift))
	assert.Equal(t, "shift not found", s.Err(OpDeleteShift))

	s.CommitShift(OpCreateShift, ShiftMutation{Kind: ShiftCreated, Shift: testShift(1, "")})
	assert.False(t, s.Busy(OpCreateShift))
}

func TestWorkerMutations(t *testing.T) {
	s := New()
	w1 := model.Worker{ID: 1, Name: "Maya", Role: model.RoleWaiter, Active: true}
	w2 := model.Worker{ID: 2, Name: "Ben", Role: model.RoleChef, Active: true}

	s.CommitWorker(OpFetchWorkers, WorkerMutation{Kind: WorkersLoaded, Workers: []model.Worker{w1}})
	s.CommitWorker(OpCreateWorker, WorkerMutation{Kind: WorkerCreated, Worker: w2})
	require.Len(t, s.Workers(), 2)

	toggled := w2
	toggled.Active = false
	s.CommitWorker(OpToggleWorker, WorkerMutation{Kind: WorkerUpdated, Worker: toggled})
	assert.False(t, s.Workers()[1].Active)

	s.SelectWorker(1)
	s.CommitWorker(OpDeleteWorker, WorkerMutation{Kind: WorkerDeleted, WorkerID: 1})
	assert.Len(t, s.Workers(), 1)
	_, ok := s.SelectedWorker()
	assert.False(t, ok)
}

func TestSessionLifecycle(t *testing.T) {
	s := New()
	_, ok := s.Session()
	require.False(t, ok)

	s.CommitWorker(OpLogin, WorkerMutation{Kind: SessionStarted, Session: model.WorkerSession{
		WorkerID:       7,
		Name:           "Maya",
		Role:           model.RoleWaiter,
		RestaurantID:   1,
		RestaurantName: "The Copper Pot",
	}})

	sess, ok := s.Session()
	require.True(t, ok)
	assert.Equal(t, int64(7), sess.WorkerID)

	s.applyWorker(WorkerMutation{Kind: SessionEnded})
	_, ok = s.Session()
	assert.False(t, ok)
}
