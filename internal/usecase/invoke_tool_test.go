package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luizzzvictor/mcp-comexstat/internal/domain"
	"github.com/luizzzvictor/mcp-comexstat/internal/registry"
	"github.com/luizzzvictor/mcp-comexstat/internal/usecase"
)

// fakeInvoker records invocations instead of hitting the network.
type fakeInvoker struct {
	calls  int
	lastOp string
	args   map[string]any
	result any
	err    error
}

func (f *fakeInvoker) Invoke(ctx context.Context, op domain.OperationSpec, args map[string]any) (any, error) {
	f.calls++
	f.lastOp = op.Name
	f.args = args
	return f.result, f.err
}

func newUseCase(inv *fakeInvoker) *usecase.InvokeToolUseCase {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return usecase.NewInvokeToolUseCase(registry.New(), inv, logger)
}

func TestExecute_Success(t *testing.T) {
	inv := &fakeInvoker{result: map[string]any{"updated": "2024-01-15"}}
	uc := newUseCase(inv)

	result, err := uc.Execute(context.Background(), "getLastUpdate", map[string]any{})
	require.NoError(t, err)

	assert.Equal(t, inv.result, result)
	assert.Equal(t, "getLastUpdate", inv.lastOp)
	assert.Equal(t, 1, inv.calls)
}

func TestExecute_NormalizedArgumentsReachInvoker(t *testing.T) {
	inv := &fakeInvoker{result: map[string]any{}}
	uc := newUseCase(inv)

	_, err := uc.Execute(context.Background(), "getFilterValues", map[string]any{"filter": "country"})
	require.NoError(t, err)

	// The default language is injected before the invoker sees the record.
	assert.Equal(t, "pt", inv.args["language"])
	assert.Equal(t, "country", inv.args["filter"])
}

func TestExecute_UnknownOperation(t *testing.T) {
	inv := &fakeInvoker{}
	uc := newUseCase(inv)

	_, err := uc.Execute(context.Background(), "mineBitcoin", map[string]any{})
	require.ErrorIs(t, err, usecase.ErrOperationNotFound)
	assert.Zero(t, inv.calls)
}

// Validation failures must never reach the invoker; no network call occurs.
func TestExecute_ValidationRejectsBeforeInvocation(t *testing.T) {
	inv := &fakeInvoker{}
	uc := newUseCase(inv)

	_, err := uc.Execute(context.Background(), "queryData", map[string]any{
		"flow":        "sideways",
		"monthDetail": false,
		"period":      map[string]any{"from": "2023-01", "to": "2023-12"},
		"details":     []any{"country"},
		"metrics":     []any{"metricFOB"},
	})

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Zero(t, inv.calls, "invoker must not be called on validation failure")
}

func TestExecute_InvokerErrorBubblesUp(t *testing.T) {
	upstream := &domain.UpstreamError{Status: 503, Message: "maintenance", Endpoint: "/general/dates/years"}
	inv := &fakeInvoker{err: upstream}
	uc := newUseCase(inv)

	_, err := uc.Execute(context.Background(), "getAvailableYears", map[string]any{})

	var uerr *domain.UpstreamError
	require.True(t, errors.As(err, &uerr))
	assert.Equal(t, 503, uerr.Status)
}
