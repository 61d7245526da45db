package store

import "github.com/ocroft/shiftdesk/pkg/core/model"

// ShiftMutationKind enumerates every way a mutation result can change
// the shift collections. Check-in, check-out, cancel and status
// changes are full-record replacements and arrive as ShiftUpdated.
type ShiftMutationKind int

const (
	// ShiftCreated appends the record to its owning scopes.
	ShiftCreated ShiftMutationKind = iota
	// ShiftUpdated replaces the record wherever its identifier appears.
	ShiftUpdated
	// ShiftDeleted removes the identifier from every collection.
	ShiftDeleted
	// ShiftFetched upserts a single fetched record and focuses it.
	ShiftFetched
	// AllShiftsLoaded replaces the all-shifts collection.
	AllShiftsLoaded
	// WorkerShiftsLoaded replaces the worker-scoped collection.
	WorkerShiftsLoaded
	// RestaurantShiftsLoaded replaces the restaurant-scoped collection.
	RestaurantShiftsLoaded
)

// ShiftMutation carries one reconciliation instruction. Exactly one
// of Shift, ShiftID or Shifts is meaningful, depending on Kind.
type ShiftMutation struct {
	Kind    ShiftMutationKind
	Shift   model.Shift
	ShiftID int64
	Shifts  []model.Shift
}

// applyShift reconciles one mutation into every collection that may
// contain the record. Applying the same mutation twice, or two
// mutations for distinct identifiers in either order, converges to
// the same state: outstanding requests can resolve in any order.
func (s *Store) applyShift(m ShiftMutation) {
	switch m.Kind {
	case ShiftCreated:
		s.shifts = upsertShift(s.shifts, m.Shift)
		// A record is never conjured into a scope that has not been
		// fetched; an empty restaurant cache stays empty until its
		// own fetch populates it.
		if len(s.restaurantShifts) > 0 {
			s.restaurantShifts = upsertShift(s.restaurantShifts, m.Shift)
		}

	case ShiftUpdated:
		s.shifts = replaceShift(s.shifts, m.Shift)
		s.restaurantShifts = replaceShift(s.restaurantShifts, m.Shift)
		s.workerShifts = replaceShift(s.workerShifts, m.Shift)

	case ShiftDeleted:
		s.shifts = removeShift(s.shifts, m.ShiftID)
		s.restaurantShifts = removeShift(s.restaurantShifts, m.ShiftID)
		s.workerShifts = removeShift(s.workerShifts, m.ShiftID)
		if s.shiftSelected && s.selectedShiftID == m.ShiftID {
			s.ClearSelectedShift()
		}

	case ShiftFetched:
		s.shifts = upsertShift(s.shifts, m.Shift)
		s.restaurantShifts = replaceShift(s.restaurantShifts, m.Shift)
		s.workerShifts = replaceShift(s.workerShifts, m.Shift)
		s.SelectShift(m.Shift.ID)

	case AllShiftsLoaded:
		s.shifts = copyShifts(m.Shifts)

	case WorkerShiftsLoaded:
		s.workerShifts = copyShifts(m.Shifts)

	case RestaurantShiftsLoaded:
		s.restaurantShifts = copyShifts(m.Shifts)
	}
}

// WorkerMutationKind enumerates the worker-roster mutations.
type WorkerMutationKind int

const (
	WorkerCreated WorkerMutationKind = iota
	// WorkerUpdated covers edits and active-status toggles.
	WorkerUpdated
	WorkerDeleted
	WorkerFetched
	WorkersLoaded
	SessionStarted
	SessionEnded
)

// WorkerMutation carries one worker reconciliation instruction.
type WorkerMutation struct {
	Kind     WorkerMutationKind
	Worker   model.Worker
	WorkerID int64
	Workers  []model.Worker
	Session  model.WorkerSession
}

func (s *Store) applyWorker(m WorkerMutation) {
	switch m.Kind {
	case WorkerCreated:
		s.workers = upsertWorker(s.workers, m.Worker)

	case WorkerUpdated:
		s.workers = replaceWorker(s.workers, m.Worker)

	case WorkerDeleted:
		out := s.workers[:0:0]
		for _, w := range s.workers {
			if w.ID != m.WorkerID {
				out = append(out, w)
			}
		}
		s.workers = out
		if s.workerSelected && s.selectedWorkerID == m.WorkerID {
			s.ClearSelectedWorker()
		}

	case WorkerFetched:
		s.workers = upsertWorker(s.workers, m.Worker)
		s.SelectWorker(m.Worker.ID)

	case WorkersLoaded:
		out := make([]model.Worker, len(m.Workers))
		copy(out, m.Workers)
		s.workers = out

	case SessionStarted:
		sess := m.Session
		s.session = &sess

	case SessionEnded:
		s.session = nil
	}
}

// replaceShift swaps in the new record where the identifier matches.
// Surviving records keep their order; a list without the identifier
// is returned unchanged.
func replaceShift(list []model.Shift, rec model.Shift) []model.Shift {
	for i := range list {
		if list[i].ID == rec.ID {
			list[i] = rec
		}
	}
	return list
}

// upsertShift replaces an existing record or appends at the end. The
// replace arm keeps create idempotent and guarantees no collection
// ever holds two records with one identifier.
func upsertShift(list []model.Shift, rec model.Shift) []model.Shift {
	for i := range list {
		if list[i].ID == rec.ID {
			list[i] = rec
			return list
		}
	}
	return append(list, rec)
}

func removeShift(list []model.Shift, id int64) []model.Shift {
	out := list[:0:0]
	for _, sh := range list {
		if sh.ID != id {
			out = append(out, sh)
		}
	}
	return out
}

func replaceWorker(list []model.Worker, rec model.Worker) []model.Worker {
	for i := range list {
		if list[i].ID == rec.ID {
			list[i] = rec
		}
	}
	return list
}

func upsertWorker(list []model.Worker, rec model.Worker) []model.Worker {
	for i := range list {
		if list[i].ID == rec.ID {
			list[i] = rec
			return list
		}
	}
	return append(list, rec)
}
