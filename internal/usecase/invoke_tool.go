package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/luizzzvictor/mcp-comexstat/internal/registry"
)

// InvokeToolUseCase handles one tool invocation: look up the operation,
// validate the raw arguments, and forward the normalized record to the
// upstream invoker. Validation failures never reach the network.
type InvokeToolUseCase struct {
	registry *registry.Registry
	invoker  UpstreamInvoker
	logger   *slog.Logger
}

// NewInvokeToolUseCase creates a new InvokeToolUseCase.
func NewInvokeToolUseCase(reg *registry.Registry, invoker UpstreamInvoker, logger *slog.Logger) *InvokeToolUseCase {
	return &InvokeToolUseCase{
		registry: reg,
		invoker:  invoker,
		logger:   logger.With("usecase", "InvokeTool"),
	}
}

// Execute validates and runs the named operation, returning its shaped
// result. All errors bubble up to the tool boundary; none are absorbed here.
func (uc *InvokeToolUseCase) Execute(ctx context.Context, name string, raw map[string]any) (any, error) {
	log := uc.logger.With(slog.String("tool_name", name))

	op, ok := uc.registry.Find(name)
	if !ok {
		log.Warn("Unknown operation requested")
		return nil, fmt.Errorf("%w: %s", ErrOperationNotFound, name)
	}

	args, err := registry.ValidateArguments(op, raw)
	if err != nil {
		log.Warn("Argument validation failed", slog.Any("error", err))
		return nil, err
	}

	log.Debug("Invoking upstream operation")
	result, err := uc.invoker.Invoke(ctx, op, args)
	if err != nil {
		log.Error("Upstream invocation failed", slog.Any("error", err))
		return nil, err
	}

	log.Debug("Tool invocation successful")
	return result, nil
}
