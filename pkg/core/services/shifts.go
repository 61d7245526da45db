// Package services wraps every remote operation in its request
// lifecycle: mark the operation class pending, invoke the remote
// call, then commit the result into the store or record the failure.
// The store's collections are mutated through this package only.
//
// Nothing here retries or fences requests: two in-flight calls of the
// same kind for the same identifier resolve last-write-wins, exactly
// as the polling UI expects.
package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ocroft/shiftdesk/pkg/api"
	"github.com/ocroft/shiftdesk/pkg/core/model"
	"github.com/ocroft/shiftdesk/pkg/core/store"
)

// CreateShift validates the payload, creates the shift remotely and
// reconciles the returned record into its owning scopes.
func CreateShift(ctx context.Context, client api.ShiftAPI, st *store.Store, logger *zap.Logger, req api.CreateShiftRequest) (*model.Shift, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if err := validateTimes(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	reqID := uuid.NewString()
	logger.Info("Creating shift",
		zap.String("request_id", reqID),
		zap.Int64("worker_id", req.WorkerID),
		zap.Time("start", req.StartTime),
		zap.Time("end", req.EndTime))

	st.Begin(store.OpCreateShift)
	shift, err := client.CreateShift(ctx, req)
	if err != nil {
		logger.Warn("Create shift failed", zap.String("request_id", reqID), zap.Error(err))
		st.Fail(store.OpCreateShift, api.Message(err))
		return nil, err
	}

	st.CommitShift(store.OpCreateShift, store.ShiftMutation{Kind: store.ShiftCreated, Shift: *shift})
	logger.Info("Shift created", zap.String("request_id", reqID), zap.Int64("shift_id", shift.ID))
	return shift, nil
}

// UpdateShift edits a shift and replaces the record in every cached
// collection that contains it.
func UpdateShift(ctx context.Context, client api.ShiftAPI, st *store.Store, logger *zap.Logger, shiftID int64, req api.UpdateShiftRequest) (*model.Shift, error) {
	if req.StartTime != nil && req.EndTime != nil {
		if err := validateTimes(*req.StartTime, *req.EndTime); err != nil {
			return nil, err
		}
	}

	reqID := uuid.NewString()
	logger.Info("Updating shift", zap.String("request_id", reqID), zap.Int64("shift_id", shiftID))

	st.Begin(store.OpUpdateShift)
	shift, err := client.UpdateShift(ctx, shiftID, req)
	if err != nil {
		logger.Warn("Update shift failed", zap.String("request_id", reqID), zap.Error(err))
		st.Fail(store.OpUpdateShift, api.Message(err))
		return nil, err
	}

	st.CommitShift(store.OpUpdateShift, store.ShiftMutation{Kind: store.ShiftUpdated, Shift: *shift})
	return shift, nil
}

// DeleteShift removes a shift remotely, then from every collection;
// the selected-shift reference is cleared if it pointed at it.
func DeleteShift(ctx context.Context, client api.ShiftAPI, st *store.Store, logger *zap.Logger, shiftID int64) error {
	reqID := uuid.NewString()
	logger.Info("Deleting shift", zap.String("request_id", reqID), zap.Int64("shift_id", shiftID))

	st.Begin(store.OpDeleteShift)
	if err := client.DeleteShift(ctx, shiftID); err != nil {
		logger.Warn("Delete shift failed", zap.String("request_id", reqID), zap.Error(err))
		st.Fail(store.OpDeleteShift, api.Message(err))
		return err
	}

	st.CommitShift(store.OpDeleteShift, store.ShiftMutation{Kind: store.ShiftDeleted, ShiftID: shiftID})
	return nil
}

// GetShift fetches one shift and focuses it for dialogs.
func GetShift(ctx context.Context, client api.ShiftAPI, st *store.Store, logger *zap.Logger, shiftID int64) (*model.Shift, error) {
	logger.Debug("Fetching shift", zap.Int64("shift_id", shiftID))

	st.Begin(store.OpGetShift)
	shift, err := client.GetShift(ctx, shiftID)
	if err != nil {
		st.Fail(store.OpGetShift, api.Message(err))
		return nil, err
	}

	st.CommitShift(store.OpGetShift, store.ShiftMutation{Kind: store.ShiftFetched, Shift: *shift})
	return shift, nil
}

// FetchWorkerShifts refreshes the worker-scoped collection.
func FetchWorkerShifts(ctx context.Context, client api.ShiftAPI, st *store.Store, logger *zap.Logger, workerID int64, rng *api.DateRange) ([]model.Shift, error) {
	logger.Debug("Fetching worker shifts", zap.Int64("worker_id", workerID))

	st.Begin(store.OpFetchWorkerShifts)
	shifts, err := client.GetShiftsByWorker(ctx, workerID, rng)
	if err != nil {
		st.Fail(store.OpFetchWorkerShifts, api.Message(err))
		return nil, err
	}

	st.CommitShift(store.OpFetchWorkerShifts, store.ShiftMutation{Kind: store.WorkerShiftsLoaded, Shifts: shifts})
	logger.Debug("Worker shifts fetched", zap.Int("count", len(shifts)))
	return shifts, nil
}

// FetchRestaurantShifts refreshes the restaurant-scoped collection.
func FetchRestaurantShifts(ctx context.Context, client api.ShiftAPI, st *store.Store, logger *zap.Logger, restaurantID int64, rng *api.DateRange) ([]model.Shift, error) {
	logger.Debug("Fetching restaurant shifts", zap.Int64("restaurant_id", restaurantID))

	st.Begin(store.OpFetchRestaurantShifts)
	shifts, err := client.GetShiftsByRestaurant(ctx, restaurantID, rng)
	if err != nil {
		st.Fail(store.OpFetchRestaurantShifts, api.Message(err))
		return nil, err
	}

	st.CommitShift(store.OpFetchRestaurantShifts, store.ShiftMutation{Kind: store.RestaurantShiftsLoaded, Shifts: shifts})
	logger.Debug("Restaurant shifts fetched", zap.Int("count", len(shifts)))
	return shifts, nil
}

// CheckIn transitions a scheduled shift to checked-in. The server is
// authoritative; the returned record replaces the cached one.
func CheckIn(ctx context.Context, client api.ShiftAPI, st *store.Store, logger *zap.Logger, shiftID, workerID int64) (*model.Shift, error) {
	reqID := uuid.NewString()
	logger.Info("Checking in", zap.String("request_id", reqID), zap.Int64("shift_id", shiftID), zap.Int64("worker_id", workerID))

	st.Begin(store.OpCheckIn)
	shift, err := client.CheckIn(ctx, shiftID, workerID)
	if err != nil {
		logger.Warn("Check-in failed", zap.String("request_id", reqID), zap.Error(err))
		st.Fail(store.OpCheckIn, api.Message(err))
		return nil, err
	}

	st.CommitShift(store.OpCheckIn, store.ShiftMutation{Kind: store.ShiftUpdated, Shift: *shift})
	return shift, nil
}

// CheckOut transitions a checked-in shift to completed.
func CheckOut(ctx context.Context, client api.ShiftAPI, st *store.Store, logger *zap.Logger, shiftID, workerID int64) (*model.Shift, error) {
	reqID := uuid.NewString()
	logger.Info("Checking out", zap.String("request_id", reqID), zap.Int64("shift_id", shiftID), zap.Int64("worker_id", workerID))

	st.Begin(store.OpCheckOut)
	shift, err := client.CheckOut(ctx, shiftID, workerID)
	if err != nil {
		logger.Warn("Check-out failed", zap.String("request_id", reqID), zap.Error(err))
		st.Fail(store.OpCheckOut, api.Message(err))
		return nil, err
	}

	st.CommitShift(store.OpCheckOut, store.ShiftMutation{Kind: store.ShiftUpdated, Shift: *shift})
	return shift, nil
}

// CancelShift cancels a shift. Cancellation is a status, not a
// removal: the record stays in every collection.
func CancelShift(ctx context.Context, client api.ShiftAPI, st *store.Store, logger *zap.Logger, shiftID int64) (*model.Shift, error) {
	reqID := uuid.NewString()
	logger.Info("Canceling shift", zap.String("request_id", reqID), zap.Int64("shift_id", shiftID))

	st.Begin(store.OpCancelShift)
	shift, err := client.CancelShift(ctx, shiftID)
	if err != nil {
		logger.Warn("Cancel failed", zap.String("request_id", reqID), zap.Error(err))
		st.Fail(store.OpCancelShift, api.Message(err))
		return nil, err
	}

	st.CommitShift(store.OpCancelShift, store.ShiftMutation{Kind: store.ShiftUpdated, Shift: *shift})
	return shift, nil
}

// SetShiftStatus forces a shift to an explicit status.
func SetShiftStatus(ctx context.Context, client api.ShiftAPI, st *store.Store, logger *zap.Logger, shiftID int64, status model.ShiftStatus) (*model.Shift, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid shift status: %q", status)
	}

	reqID := uuid.NewString()
	logger.Info("Setting shift status",
		zap.String("request_id", reqID),
		zap.Int64("shift_id", shiftID),
		zap.String("status", string(status)))

	st.Begin(store.OpSetShiftStatus)
	shift, err := client.SetShiftStatus(ctx, shiftID, status)
	if err != nil {
		logger.Warn("Set status failed", zap.String("request_id", reqID), zap.Error(err))
		st.Fail(store.OpSetShiftStatus, api.Message(err))
		return nil, err
	}

	st.CommitShift(store.OpSetShiftStatus, store.ShiftMutation{Kind: store.ShiftUpdated, Shift: *shift})
	return shift, nil
}
