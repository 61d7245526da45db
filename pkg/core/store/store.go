// Package store holds the client-side caches of server truth: the
// independently fetched shift collections, the worker roster, the
// login session and the per-operation busy/error flags.
//
// The store is not safe for concurrent use. The CLI drives every
// mutation through the services layer from a single goroutine; all
// other components only read snapshots.
package store

import "github.com/ocroft/shiftdesk/pkg/core/model"

// Op identifies one class of remote operation. Busy and error state
// is tracked per class, so concurrent operations of different kinds
// do not clobber each other's flags.
type Op int

const (
	OpCreateShift Op = iota
	OpUpdateShift
	OpDeleteShift
	OpGetShift
	OpFetchWorkerShifts
	OpFetchRestaurantShifts
	OpCheckIn
	OpCheckOut
	OpCancelShift
	OpSetShiftStatus
	OpCreateWorker
	OpUpdateWorker
	OpDeleteWorker
	OpGetWorker
	OpFetchWorkers
	OpToggleWorker
	OpLogin
)

var opNames = map[Op]string{
	OpCreateShift:           "create-shift",
	OpUpdateShift:           "update-shift",
	OpDeleteShift:           "delete-shift",
	OpGetShift:              "get-shift",
	OpFetchWorkerShifts:     "fetch-worker-shifts",
	OpFetchRestaurantShifts: "fetch-restaurant-shifts",
	OpCheckIn:               "check-in",
	OpCheckOut:              "check-out",
	OpCancelShift:           "cancel-shift",
	OpSetShiftStatus:        "set-shift-status",
	OpCreateWorker:          "create-worker",
	OpUpdateWorker:          "update-worker",
	OpDeleteWorker:          "delete-worker",
	OpGetWorker:             "get-worker",
	OpFetchWorkers:          "fetch-workers",
	OpToggleWorker:          "toggle-worker",
	OpLogin:                 "login",
}

func (o Op) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return "unknown"
}

// Store is the single state container. The services layer is its only
// writer; everything else receives copied snapshots.
type Store struct {
	shifts           []model.Shift
	restaurantShifts []model.Shift
	workerShifts     []model.Shift

	// Selected records are weak references: an identifier plus a
	// lookup, never an owned copy, so they cannot diverge from the
	// reconciled collections.
	selectedShiftID  int64
	shiftSelected    bool
	selectedWorkerID int64
	workerSelected   bool

	workers []model.Worker
	session *model.WorkerSession

	busy map[Op]bool
	errs map[Op]string
}

// New returns an empty store.
func New() *Store {
	return &Store{
		busy: make(map[Op]bool),
		errs: make(map[Op]string),
	}
}

// Begin marks an operation class pending and clears its prior error.
func (s *Store) Begin(op Op) {
	s.busy[op] = true
	delete(s.errs, op)
}

// Fail records a failed operation. Collections are left untouched at
// their last-known-good state.
func (s *Store) Fail(op Op, msg string) {
	s.busy[op] = false
	s.errs[op] = msg
}

// CommitShift applies a shift mutation and clears the busy flag in
// the same logical step.
func (s *Store) CommitShift(op Op, m ShiftMutation) {
	s.applyShift(m)
	s.busy[op] = false
}

// CommitWorker applies a worker mutation and clears the busy flag.
func (s *Store) CommitWorker(op Op, m WorkerMutation) {
	s.applyWorker(m)
	s.busy[op] = false
}

// Busy reports whether an operation class has a request in flight.
func (s *Store) Busy(op Op) bool { return s.busy[op] }

// Err returns the last error message for an operation class, or "".
func (s *Store) Err(op Op) string { return s.errs[op] }

// Shifts returns a snapshot of the all-shifts collection.
func (s *Store) Shifts() []model.Shift { return copyShifts(s.shifts) }

// RestaurantShifts returns a snapshot of the restaurant-scoped collection.
func (s *Store) RestaurantShifts() []model.Shift { return copyShifts(s.restaurantShifts) }

// WorkerShifts returns a snapshot of the worker-scoped collection.
func (s *Store) WorkerShifts() []model.Shift { return copyShifts(s.workerShifts) }

// SelectShift focuses a shift by identifier for edit/status dialogs.
func (s *Store) SelectShift(id int64) {
	s.selectedShiftID = id
	s.shiftSelected = true
}

// ClearSelectedShift drops the shift focus.
func (s *Store) ClearSelectedShift() {
	s.selectedShiftID = 0
	s.shiftSelected = false
}

// SelectedShift resolves the focused shift against the collections.
// The all-shifts collection is canonical; the scoped collections are
// consulted as fallbacks. Returns false when nothing is selected or
// the record is no longer cached anywhere.
func (s *Store) SelectedShift() (model.Shift, bool) {
	if !s.shiftSelected {
		return model.Shift{}, false
	}
	for _, list := range [][]model.Shift{s.shifts, s.restaurantShifts, s.workerShifts} {
		for _, sh := range list {
			if sh.ID == s.selectedShiftID {
				return sh, true
			}
		}
	}
	return model.Shift{}, false
}

// Workers returns a snapshot of the worker roster.
func (s *Store) Workers() []model.Worker {
	out := make([]model.Worker, len(s.workers))
	copy(out, s.workers)
	return out
}

// SelectWorker focuses a worker by identifier.
func (s *Store) SelectWorker(id int64) {
	s.selectedWorkerID = id
	s.workerSelected = true
}

// ClearSelectedWorker drops the worker focus.
func (s *Store) ClearSelectedWorker() {
	s.selectedWorkerID = 0
	s.workerSelected = false
}

// SelectedWorker resolves the focused worker against the roster.
func (s *Store) SelectedWorker() (model.Worker, bool) {
	if !s.workerSelected {
		return model.Worker{}, false
	}
	for _, w := range s.workers {
		if w.ID == s.selectedWorkerID {
			return w, true
		}
	}
	return model.Worker{}, false
}

// Session returns the current login session, if any.
func (s *Store) Session() (model.WorkerSession, bool) {
	if s.session == nil {
		return model.WorkerSession{}, false
	}
	return *s.session, true
}

func copyShifts(in []model.Shift) []model.Shift {
	out := make([]model.Shift, len(in))
	copy(out, in)
	return out
}
