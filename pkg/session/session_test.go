package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ocroft/shiftdesk/pkg/core/model"
)

func TestSaveLoadClear(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := Load()
	require.ErrorIs(t, err, ErrNoSession)

	sess := model.WorkerSession{
		WorkerID:       7,
		Name:           "Maya",
		Role:           model.RoleWaiter,
		RestaurantID:   1,
		RestaurantName: "The Copper Pot",
	}
	require.NoError(t, Save(sess))

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, sess, *loaded)

	require.NoError(t, Clear())
	_, err = Load()
	assert.ErrorIs(t, err, ErrNoSession)

	// clearing twice is not an error
	assert.NoError(t, Clear())
}
