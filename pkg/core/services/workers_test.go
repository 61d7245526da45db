package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ocroft/shiftdesk/pkg/api"
	"github.com/ocroft/shiftdesk/pkg/core/model"
	"github.com/ocroft/shiftdesk/pkg/core/store"
)

type fakeWorkerAPI struct {
	calls   int
	err     error
	worker  *model.Worker
	workers []model.Worker
	login   *api.LoginResponse
}

func (f *fakeWorkerAPI) CreateWorker(_ context.Context, req api.CreateWorkerRequest) (*model.Worker, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &model.Worker{ID: 1, Name: req.Name, Email: req.Email, Role: req.Role, Active: true}, nil
}

func (f *fakeWorkerAPI) UpdateWorker(_ context.Context, _ int64, _ api.UpdateWorkerRequest) (*model.Worker, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.worker, nil
}

func (f *fakeWorkerAPI) DeleteWorker(_ context.Context, _ int64) error {
	f.calls++
	return f.err
}

func (f *fakeWorkerAPI) GetWorker(_ context.Context, _ int64) (*model.Worker, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.worker, nil
}

func (f *fakeWorkerAPI) GetWorkersByRestaurant(_ context.Context, _ int64) ([]model.Worker, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.workers, nil
}

func (f *fakeWorkerAPI) ToggleWorkerStatus(_ context.Context, _ int64) (*model.Worker, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.worker, nil
}

func (f *fakeWorkerAPI) Login(_ context.Context, _ api.LoginRequest) (*api.LoginResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.login, nil
}

var _ api.WorkerAPI = (*fakeWorkerAPI)(nil)

func TestCreateWorker_Success(t *testing.T) {
	fake := &fakeWorkerAPI{}
	st := store.New()

	worker, err := CreateWorker(context.Background(), fake, st, zap.NewNop(), api.CreateWorkerRequest{
		Name:         "Maya",
		Email:        "maya@copperpot.example",
		Password:     "secret1",
		Role:         model.RoleWaiter,
		RestaurantID: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, "Maya", worker.Name)
	require.Len(t, st.Workers(), 1)
}

func TestCreateWorker_RejectsBadPayloadWithoutDispatch(t *testing.T) {
	fake := &fakeWorkerAPI{}
	st := store.New()

	tests := []struct {
		name string
		req  api.CreateWorkerRequest
	}{
		{
			name: "bad email",
			req: api.CreateWorkerRequest{
				Name: "Maya", Email: "not-an-email", Password: "secret1",
				Role: model.RoleWaiter, RestaurantID: 1,
			},
		},
		{
			name: "short password",
			req: api.CreateWorkerRequest{
				Name: "Maya", Email: "maya@copperpot.example", Password: "abc",
				Role: model.RoleWaiter, RestaurantID: 1,
			},
		},
		{
			name: "unknown role",
			req: api.CreateWorkerRequest{
				Name: "Maya", Email: "maya@copperpot.example", Password: "secret1",
				Role: "Sommelier", RestaurantID: 1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CreateWorker(context.Background(), fake, st, zap.NewNop(), tt.req)
			require.Error(t, err)
		})
	}
	assert.Zero(t, fake.calls)
	assert.Empty(t, st.Workers())
}

func TestToggleWorkerStatus_ReplacesRosterRecord(t *testing.T) {
	st := store.New()
	fake := &fakeWorkerAPI{workers: []model.Worker{{ID: 1, Name: "Maya", Role: model.RoleWaiter, Active: true}}}

	_, err := FetchWorkers(context.Background(), fake, st, zap.NewNop(), 1)
	require.NoError(t, err)

	fake.worker = &model.Worker{ID: 1, Name: "Maya", Role: model.RoleWaiter, Active: false}
	worker, err := ToggleWorkerStatus(context.Background(), fake, st, zap.NewNop(), 1)

	require.NoError(t, err)
	assert.False(t, worker.Active)
	require.Len(t, st.Workers(), 1)
	assert.False(t, st.Workers()[0].Active)
}

func TestDeleteWorker_RemovesFromRoster(t *testing.T) {
	st := store.New()
	fake := &fakeWorkerAPI{workers: []model.Worker{
		{ID: 1, Name: "Maya", Active: true},
		{ID: 2, Name: "Ben", Active: true},
	}}
	_, err := FetchWorkers(context.Background(), fake, st, zap.NewNop(), 1)
	require.NoError(t, err)

	require.NoError(t, DeleteWorker(context.Background(), fake, st, zap.NewNop(), 1))

	require.Len(t, st.Workers(), 1)
	assert.Equal(t, int64(2), st.Workers()[0].ID)
}

func TestLogin_StartsSessionWithoutPasswordMaterial(t *testing.T) {
	st := store.New()
	fake := &fakeWorkerAPI{login: &api.LoginResponse{
		Message:        "Login successful",
		WorkerID:       7,
		Name:           "Maya",
		Role:           model.RoleWaiter,
		RestaurantID:   1,
		RestaurantName: "The Copper Pot",
	}}

	session, err := Login(context.Background(), fake, st, zap.NewNop(), "maya@copperpot.example", "secret1")

	require.NoError(t, err)
	assert.Equal(t, int64(7), session.WorkerID)

	stored, ok := st.Session()
	require.True(t, ok)
	assert.Equal(t, "The Copper Pot", stored.RestaurantName)
}

func TestLogin_FailureRecordsServerMessage(t *testing.T) {
	st := store.New()
	fake := &fakeWorkerAPI{err: &api.Error{StatusCode: 401, Message: "Invalid password"}}

	_, err := Login(context.Background(), fake, st, zap.NewNop(), "maya@copperpot.example", "wrong1")

	require.Error(t, err)
	assert.Equal(t, "Invalid password", st.Err(store.OpLogin))
	_, ok := st.Session()
	assert.False(t, ok)
}

func TestLogout_EndsSession(t *testing.T) {
	st := store.New()
	fake := &fakeWorkerAPI{login: &api.LoginResponse{WorkerID: 7}}
	_, err := Login(context.Background(), fake, st, zap.NewNop(), "maya@copperpot.example", "secret1")
	require.NoError(t, err)

	Logout(st, zap.NewNop())

	_, ok := st.Session()
	assert.False(t, ok)
}
