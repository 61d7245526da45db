package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ocroft/shiftdesk/pkg/core/model"
)

// CreateWorkerRequest is the payload for registering a worker.
type CreateWorkerRequest struct {
	Name         string     `json:"name" validate:"required"`
	Email        string     `json:"email" validate:"required,email"`
	Password     string     `json:"password" validate:"required,min=6"`
	Phone        string     `json:"phone,omitempty"`
	Role         model.Role `json:"role" validate:"required"`
	RestaurantID int64      `json:"restaurantId" validate:"required"`
}

// UpdateWorkerRequest is a partial worker edit.
type UpdateWorkerRequest struct {
	Name  *string     `json:"name,omitempty"`
	Email *string     `json:"email,omitempty" validate:"omitempty,email"`
	Phone *string     `json:"phone,omitempty"`
	Role  *model.Role `json:"role,omitempty"`
}

// LoginRequest carries worker credentials. The password never
// outlives the call; the session keeps only identity fields.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is the server's answer to a successful login.
type LoginResponse struct {
	Message        string     `json:"message"`
	WorkerID       int64      `json:"workerId"`
	Name           string     `json:"name"`
	Role           model.Role `json:"role"`
	RestaurantID   int64      `json:"restaurantId"`
	RestaurantName string     `json:"restaurantName"`
}

// WorkerAPI is the remote worker surface consumed by the services
// layer.
type WorkerAPI interface {
	CreateWorker(ctx context.Context, req CreateWorkerRequest) (*model.Worker, error)
	UpdateWorker(ctx context.Context, workerID int64, req UpdateWorkerRequest) (*model.Worker, error)
	DeleteWorker(ctx context.Context, workerID int64) error
	GetWorker(ctx context.Context, workerID int64) (*model.Worker, error)
	GetWorkersByRestaurant(ctx context.Context, restaurantID int64) ([]model.Worker, error)
	ToggleWorkerStatus(ctx context.Context, workerID int64) (*model.Worker, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
}

func (c *Client) CreateWorker(ctx context.Context, req CreateWorkerRequest) (*model.Worker, error) {
	var worker model.Worker
	if err := c.do(ctx, http.MethodPost, "/api/workers/create", nil, req, &worker); err != nil {
		return nil, err
	}
	return &worker, nil
}

func (c *Client) UpdateWorker(ctx context.Context, workerID int64, req UpdateWorkerRequest) (*model.Worker, error) {
	var worker model.Worker
	path := fmt.Sprintf("/api/workers/%d", workerID)
	if err := c.do(ctx, http.MethodPut, path, nil, req, &worker); err != nil {
		return nil, err
	}
	return &worker, nil
}

func (c *Client) DeleteWorker(ctx context.Context, workerID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/workers/%d", workerID), nil, nil, nil)
}

func (c *Client) GetWorker(ctx context.Context, workerID int64) (*model.Worker, error) {
	var worker model.Worker
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/workers/%d", workerID), nil, nil, &worker); err != nil {
		return nil, err
	}
	return &worker, nil
}

func (c *Client) GetWorkersByRestaurant(ctx context.Context, restaurantID int64) ([]model.Worker, error) {
	var workers []model.Worker
	path := fmt.Sprintf("/api/workers/restaurant/%d", restaurantID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &workers); err != nil {
		return nil, err
	}
	return workers, nil
}

func (c *Client) ToggleWorkerStatus(ctx context.Context, workerID int64) (*model.Worker, error) {
	var worker model.Worker
	path := fmt.Sprintf("/api/workers/toggle-status/%d", workerID)
	if err := c.do(ctx, http.MethodPut, path, nil, nil, &worker); err != nil {
		return nil, err
	}
	return &worker, nil
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "/api/workers/login", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
