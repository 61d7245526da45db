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

// CreateWorker registers a new worker and appends it to the roster.
func CreateWorker(ctx context.Context, client api.WorkerAPI, st *store.Store, logger *zap.Logger, req api.CreateWorkerRequest) (*model.Worker, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if !req.Role.IsValid() {
		return nil, errInvalidRole(req.Role)
	}

	reqID := uuid.NewString()
	logger.Info("Creating worker", zap.String("request_id", reqID), zap.String("name", req.Name), zap.String("role", string(req.Role)))

	st.Begin(store.OpCreateWorker)
	worker, err := client.CreateWorker(ctx, req)
	if err != nil {
		logger.Warn("Create worker failed", zap.String("request_id", reqID), zap.Error(err))
		st.Fail(store.OpCreateWorker, api.Message(err))
		return nil, err
	}

	st.CommitWorker(store.OpCreateWorker, store.WorkerMutation{Kind: store.WorkerCreated, Worker: *worker})
	logger.Info("Worker created", zap.String("request_id", reqID), zap.Int64("worker_id", worker.ID))
	return worker, nil
}

// UpdateWorker edits a worker and replaces the roster record.
func UpdateWorker(ctx context.Context, client api.WorkerAPI, st *store.Store, logger *zap.Logger, workerID int64, req api.UpdateWorkerRequest) (*model.Worker, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if req.Role != nil && !req.Role.IsValid() {
		return nil, errInvalidRole(*req.Role)
	}

	reqID := uuid.NewString()
	logger.Info("Updating worker", zap.String("request_id", reqID), zap.Int64("worker_id", workerID))

	st.Begin(store.OpUpdateWorker)
	worker, err := client.UpdateWorker(ctx, workerID, req)
	if err != nil {
		logger.Warn("Update worker failed", zap.String("request_id", reqID), zap.Error(err))
		st.Fail(store.OpUpdateWorker, api.Message(err))
		return nil, err
	}

	st.CommitWorker(store.OpUpdateWorker, store.WorkerMutation{Kind: store.WorkerUpdated, Worker: *worker})
	return worker, nil
}

// DeleteWorker removes a worker from the server and the roster.
func DeleteWorker(ctx context.Context, client api.WorkerAPI, st *store.Store, logger *zap.Logger, workerID int64) error {
	reqID := uuid.NewString()
	logger.Info("Deleting worker", zap.String("request_id", reqID), zap.Int64("worker_id", workerID))

	st.Begin(store.OpDeleteWorker)
	if err := client.DeleteWorker(ctx, workerID); err != nil {
		logger.Warn("Delete worker failed", zap.String("request_id", reqID), zap.Error(err))
		st.Fail(store.OpDeleteWorker, api.Message(err))
		return err
	}

	st.CommitWorker(store.OpDeleteWorker, store.WorkerMutation{Kind: store.WorkerDeleted, WorkerID: workerID})
	return nil
}

// GetWorker fetches one worker and focuses it.
func GetWorker(ctx context.Context, client api.WorkerAPI, st *store.Store, logger *zap.Logger, workerID int64) (*model.Worker, error) {
	logger.Debug("Fetching worker", zap.Int64("worker_id", workerID))

	st.Begin(store.OpGetWorker)
	worker, err := client.GetWorker(ctx, workerID)
	if err != nil {
		st.Fail(store.OpGetWorker, api.Message(err))
		return nil, err
	}

	st.CommitWorker(store.OpGetWorker, store.WorkerMutation{Kind: store.WorkerFetched, Worker: *worker})
	return worker, nil
}

// FetchWorkers refreshes the restaurant's worker roster.
func FetchWorkers(ctx context.Context, client api.WorkerAPI, st *store.Store, logger *zap.Logger, restaurantID int64) ([]model.Worker, error) {
	logger.Debug("Fetching workers", zap.Int64("restaurant_id", restaurantID))

	st.Begin(store.OpFetchWorkers)
	workers, err := client.GetWorkersByRestaurant(ctx, restaurantID)
	if err != nil {
		st.Fail(store.OpFetchWorkers, api.Message(err))
		return nil, err
	}

	st.CommitWorker(store.OpFetchWorkers, store.WorkerMutation{Kind: store.WorkersLoaded, Workers: workers})
	logger.Debug("Workers fetched", zap.Int("count", len(workers)))
	return workers, nil
}

// ToggleWorkerStatus flips a worker's scheduling eligibility.
func ToggleWorkerStatus(ctx context.Context, client api.WorkerAPI, st *store.Store, logger *zap.Logger, workerID int64) (*model.Worker, error) {
	reqID := uuid.NewString()
	logger.Info("Toggling worker status", zap.String("request_id", reqID), zap.Int64("worker_id", workerID))

	st.Begin(store.OpToggleWorker)
	worker, err := client.ToggleWorkerStatus(ctx, workerID)
	if err != nil {
		logger.Warn("Toggle failed", zap.String("request_id", reqID), zap.Error(err))
		st.Fail(store.OpToggleWorker, api.Message(err))
		return nil, err
	}

	st.CommitWorker(store.OpToggleWorker, store.WorkerMutation{Kind: store.WorkerUpdated, Worker: *worker})
	return worker, nil
}

// Login authenticates a worker. The session keeps identity fields
// only; the password is dropped once the call returns.
func Login(ctx context.Context, client api.WorkerAPI, st *store.Store, logger *zap.Logger, email, password string) (*model.WorkerSession, error) {
	req := api.LoginRequest{Email: email, Password: password}
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	logger.Info("Logging in", zap.String("email", email))

	st.Begin(store.OpLogin)
	resp, err := client.Login(ctx, req)
	if err != nil {
		logger.Warn("Login failed", zap.Error(err))
		st.Fail(store.OpLogin, api.Message(err))
		return nil, err
	}

	session := model.WorkerSession{
		WorkerID:       resp.WorkerID,
		Name:           resp.Name,
		Role:           resp.Role,
		RestaurantID:   resp.RestaurantID,
		RestaurantName: resp.RestaurantName,
	}
	st.CommitWorker(store.OpLogin, store.WorkerMutation{Kind: store.SessionStarted, Session: session})
	logger.Info("Login succeeded", zap.Int64("worker_id", session.WorkerID), zap.String("restaurant", session.RestaurantName))
	return &session, nil
}

// Logout clears the session. Purely local; there is no server call.
func Logout(st *store.Store, logger *zap.Logger) {
	logger.Info("Logging out")
	st.CommitWorker(store.OpLogin, store.WorkerMutation{Kind: store.SessionEnded})
}

func errInvalidRole(r model.Role) error {
	return fmt.Errorf("invalid worker role: %q", r)
}
