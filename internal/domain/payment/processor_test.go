package payment

import (
	"context"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockPaymentAPI struct {
	processed  string
	calls      int
	processErr error
	result     *Payment
}

func (m *mockPaymentAPI) List(_ context.Context) ([]Payment, error) { return nil, nil }

func (m *mockPaymentAPI) GetByID(_ context.Context, _ string) (*Payment, error) {
	return nil, ErrNotFound
}

func (m *mockPaymentAPI) ListByOrder(_ context.Context, _ string) ([]Payment, error) {
	return nil, nil
}

func (m *mockPaymentAPI) ListByStatus(_ context.Context, _ Status) ([]Payment, error) {
	return nil, nil
}

func (m *mockPaymentAPI) Create(_ context.Context, _ CreateRequest) (*Payment, error) {
	return nil, nil
}

func (m *mockPaymentAPI) Process(_ context.Context, id string) (*Payment, error) {
	m.calls++
	m.processed = id
	if m.processErr != nil {
		return nil, m.processErr
	}
	if m.result != nil {
		return m.result, nil
	}
	return &Payment{ID: id, Status: StatusCompleted, TransactionID: "TXN-42"}, nil
}

func confirmAlways(_ context.Context, _ string) (bool, error) { return true, nil }

func confirmNever(_ context.Context, _ string) (bool, error) { return false, nil }

func TestProcess_Confirmed(t *testing.T) {
	api := &mockPaymentAPI{}
	reloads := 0
	proc := NewProcessor(api, confirmAlways, func(_ context.Context) error {
		reloads++
		return nil
	})

	p, err := proc.Process(context.Background(), "pay1")

	require.NoError(t, err)
	assert.Equal(t, "pay1", api.processed)
	assert.Equal(t, StatusCompleted, p.Status)
	assert.Equal(t, "TXN-42", p.TransactionID, "backend assigns the transaction ID on completion")
	assert.Equal(t, 1, reloads)
}

func TestProcess_Declined_NoNetworkCall(t *testing.T) {
	api := &mockPaymentAPI{}
	proc := NewProcessor(api, confirmNever, nil)

	_, err := proc.Process(context.Background(), "pay1")

	require.ErrorIs(t, err, ErrNotConfirmed)
	assert.Equal(t, 0, api.calls)
}

func TestProcess_ConfirmError(t *testing.T) {
	api := &mockPaymentAPI{}
	proc := NewProcessor(api, func(_ context.Context, _ string) (bool, error) {
		return false, errors.New("prompt unavailable")
	}, nil)

	_, err := proc.Process(context.Background(), "pay1")

	require.Error(t, err)
	assert.ErrorContains(t, err, "prompt unavailable")
	assert.Equal(t, 0, api.calls)
}

func TestProcess_MissingID(t *testing.T) {
	api := &mockPaymentAPI{}
	proc := NewProcessor(api, confirmAlways, nil)

	_, err := proc.Process(context.Background(), "")

	require.ErrorIs(t, err, ErrMissingID)
	assert.Equal(t, 0, api.calls)
}

func TestProcess_BackendRejection_NoReload(t *testing.T) {
	api := &mockPaymentAPI{processErr: errors.New("payment is not pending")}
	reloads := 0
	proc := NewProcessor(api, confirmAlways, func(_ context.Context) error {
		reloads++
		return nil
	})

	_, err := proc.Process(context.Background(), "pay1")

	require.Error(t, err)
	assert.ErrorContains(t, err, "payment is not pending")
	assert.Equal(t, 0, reloads)
}

func TestProcess_NilConfirmSkipsGate(t *testing.T) {
	api := &mockPaymentAPI{}
	proc := NewProcessor(api, nil, nil)

	_, err := proc.Process(context.Background(), "pay1")

	require.NoError(t, err)
	assert.Equal(t, 1, api.calls)
}
