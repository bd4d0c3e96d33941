package order

import (
	"context"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetStatus_Success_FiresReload(t *testing.T) {
	api := &mockOrderAPI{}
	reloads := 0
	ctrl := NewStatusController(api, func(_ context.Context) error {
		reloads++
		return nil
	})

	o, err := ctrl.SetStatus(context.Background(), "o1", StatusShipped)

	require.NoError(t, err)
	assert.Equal(t, "o1", api.lastID)
	assert.Equal(t, StatusShipped, api.lastSet)
	assert.Equal(t, StatusShipped, o.Status)
	assert.Equal(t, 1, reloads)
}

func TestSetStatus_BackendRejection_NoLocalMutation(t *testing.T) {
	api := &mockOrderAPI{updateErr: errors.New("illegal transition")}
	reloads := 0
	ctrl := NewStatusController(api, func(_ context.Context) error {
		reloads++
		return nil
	})

	o, err := ctrl.SetStatus(context.Background(), "o1", StatusShipped)

	require.Error(t, err)
	assert.ErrorContains(t, err, "illegal transition")
	assert.Nil(t, o, "rejected transition must not produce a locally mutated order")
	assert.Equal(t, 0, reloads, "reload must not fire on failure")
}

func TestSetStatus_UnknownStatusRejectedLocally(t *testing.T) {
	api := &mockOrderAPI{}
	ctrl := NewStatusController(api, nil)

	_, err := ctrl.SetStatus(context.Background(), "o1", Status("Teleported"))

	var usErr *UnknownStatusError
	require.ErrorAs(t, err, &usErr)
	assert.Equal(t, Status("Teleported"), usErr.Status)
	assert.Empty(t, api.lastID, "unknown status must never reach the network")
}

func TestSetStatus_AnyKnownStatusIsRequestable(t *testing.T) {
	// The client enforces no transition graph: every known status is
	// requestable and the backend decides legality.
	for _, s := range Statuses() {
		api := &mockOrderAPI{}
		ctrl := NewStatusController(api, nil)

		_, err := ctrl.SetStatus(context.Background(), "o1", s)

		require.NoError(t, err, "status %s", s)
		assert.Equal(t, s, api.lastSet)
	}
}

func TestSetStatus_ReloadFailureSurfaces(t *testing.T) {
	api := &mockOrderAPI{}
	ctrl := NewStatusController(api, func(_ context.Context) error {
		return errors.New("backend unreachable")
	})

	o, err := ctrl.SetStatus(context.Background(), "o1", StatusDelivered)

	require.Error(t, err)
	assert.NotNil(t, o, "the status change itself succeeded")
}

func TestCancel_FiresReload(t *testing.T) {
	api := &mockOrderAPI{}
	reloads := 0
	ctrl := NewStatusController(api, func(_ context.Context) error {
		reloads++
		return nil
	})

	require.NoError(t, ctrl.Cancel(context.Background(), "o1"))
	assert.Equal(t, "o1", api.cancelled)
	assert.Equal(t, 1, reloads)
}

func TestCancel_FailureSkipsReload(t *testing.T) {
	api := &mockOrderAPI{cancelErr: errors.New("already delivered")}
	reloads := 0
	ctrl := NewStatusController(api, func(_ context.Context) error {
		reloads++
		return nil
	})

	err := ctrl.Cancel(context.Background(), "o1")

	require.Error(t, err)
	assert.Equal(t, 0, reloads)
}

func TestStatusValid(t *testing.T) {
	for _, s := range Statuses() {
		assert.True(t, s.Valid(), "status %s", s)
	}
	assert.False(t, Status("").Valid())
	assert.False(t, Status("pending").Valid(), "statuses are case-sensitive")
}
