package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ocroft/shiftdesk/pkg/core/model"
)

// DateRange narrows a scoped shift fetch to shifts starting within
// [Start, End].
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (r DateRange) query() url.Values {
	q := url.Values{}
	q.Set("startTime", r.Start.Format(time.RFC3339))
	q.Set("endTime", r.End.Format(time.RFC3339))
	return q
}

// CreateShiftRequest is the payload for creating a shift. Validation
// tags are enforced client-side before the request is dispatched.
type CreateShiftRequest struct {
	WorkerID     int64           `json:"workerId" validate:"required"`
	RestaurantID int64           `json:"restaurantId" validate:"required"`
	StartTime    time.Time       `json:"startTime" validate:"required"`
	EndTime      time.Time       `json:"endTime" validate:"required"`
	ShiftType    model.ShiftType `json:"shiftType,omitempty"`
	Priority     model.Priority  `json:"priority,omitempty"`
	Location     string          `json:"location,omitempty"`
	Notes        string          `json:"notes,omitempty"`
}

// UpdateShiftRequest is a partial shift edit; nil fields are left
// unchanged by the server.
type UpdateShiftRequest struct {
	WorkerID  *int64           `json:"workerId,omitempty"`
	StartTime *time.Time       `json:"startTime,omitempty"`
	EndTime   *time.Time       `json:"endTime,omitempty"`
	ShiftType *model.ShiftType `json:"shiftType,omitempty"`
	Priority  *model.Priority  `json:"priority,omitempty"`
	Location  *string          `json:"location,omitempty"`
	Notes     *string          `json:"notes,omitempty"`
}

// ShiftAPI is the remote shift surface consumed by the services
// layer. *Client implements it; tests substitute fakes.
type ShiftAPI interface {
	CreateShift(ctx context.Context, req CreateShiftRequest) (*model.Shift, error)
	UpdateShift(ctx context.Context, shiftID int64, req UpdateShiftRequest) (*model.Shift, error)
	DeleteShift(ctx context.Context, shiftID int64) error
	GetShift(ctx context.Context, shiftID int64) (*model.Shift, error)
	GetShiftsByWorker(ctx context.Context, workerID int64, rng *DateRange) ([]model.Shift, error)
	GetShiftsByRestaurant(ctx context.Context, restaurantID int64, rng *DateRange) ([]model.Shift, error)
	CheckIn(ctx context.Context, shiftID, workerID int64) (*model.Shift, error)
	CheckOut(ctx context.Context, shiftID, workerID int64) (*model.Shift, error)
	CancelShift(ctx context.Context, shiftID int64) (*model.Shift, error)
	SetShiftStatus(ctx context.Context, shiftID int64, status model.ShiftStatus) (*model.Shift, error)
}

func (c *Client) CreateShift(ctx context.Context, req CreateShiftRequest) (*model.Shift, error) {
	var shift model.Shift
	if err := c.do(ctx, http.MethodPost, "/api/shifts/create", nil, req, &shift); err != nil {
		return nil, err
	}
	return &shift, nil
}

func (c *Client) UpdateShift(ctx context.Context, shiftID int64, req UpdateShiftRequest) (*model.Shift, error) {
	var shift model.Shift
	path := fmt.Sprintf("/api/shifts/%d", shiftID)
	if err := c.do(ctx, http.MethodPut, path, nil, req, &shift); err != nil {
		return nil, err
	}
	return &shift, nil
}

func (c *Client) DeleteShift(ctx context.Context, shiftID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/shifts/%d", shiftID), nil, nil, nil)
}

func (c *Client) GetShift(ctx context.Context, shiftID int64) (*model.Shift, error) {
	var shift model.Shift
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/shifts/%d", shiftID), nil, nil, &shift); err != nil {
		return nil, err
	}
	return &shift, nil
}

func (c *Client) GetShiftsByWorker(ctx context.Context, workerID int64, rng *DateRange) ([]model.Shift, error) {
	path := fmt.Sprintf("/api/shifts/worker/%d", workerID)
	var query url.Values
	if rng != nil {
		path += "/date-range"
		query = rng.query()
	}

	var shifts []model.Shift
	if err := c.do(ctx, http.MethodGet, path, query, nil, &shifts); err != nil {
		return nil, err
	}
	return shifts, nil
}

func (c *Client) GetShiftsByRestaurant(ctx context.Context, restaurantID int64, rng *DateRange) ([]model.Shift, error) {
	path := fmt.Sprintf("/api/shifts/restaurant/%d", restaurantID)
	var query url.Values
	if rng != nil {
		path += "/date-range"
		query = rng.query()
	}

	var shifts []model.Shift
	if err := c.do(ctx, http.MethodGet, path, query, nil, &shifts); err != nil {
		return nil, err
	}
	return shifts, nil
}

func (c *Client) CheckIn(ctx context.Context, shiftID, workerID int64) (*model.Shift, error) {
	var shift model.Shift
	path := fmt.Sprintf("/api/shifts/%d/check-in/%d", shiftID, workerID)
	if err := c.do(ctx, http.MethodPut, path, nil, nil, &shift); err != nil {
		return nil, err
	}
	return &shift, nil
}

func (c *Client) CheckOut(ctx context.Context, shiftID, workerID int64) (*model.Shift, error) {
	var shift model.Shift
	path := fmt.Sprintf("/api/shifts/%d/check-out/%d", shiftID, workerID)
	if err := c.do(ctx, http.MethodPut, path, nil, nil, &shift); err != nil {
		return nil, err
	}
	return &shift, nil
}

func (c *Client) CancelShift(ctx context.Context, shiftID int64) (*model.Shift, error) {
	var shift model.Shift
	path := fmt.Sprintf("/api/shifts/%d/cancel", shiftID)
	if err := c.do(ctx, http.MethodPut, path, nil, nil, &shift); err != nil {
		return nil, err
	}
	return &shift, nil
}

func (c *Client) SetShiftStatus(ctx context.Context, shiftID int64, status model.ShiftStatus) (*model.Shift, error) {
	var shift model.Shift
	query := url.Values{"status": []string{string(status)}}
	path := fmt.Sprintf("/api/shifts/%d/status", shiftID)
	if err := c.do(ctx, http.MethodPut, path, query, nil, &shift); err != nil {
		return nil, err
	}
	return &shift, nil
}
