package usecase

import (
	"context"
	"errors"

	"github.com/luizzzvictor/mcp-comexstat/internal/domain"
)

// Standard errors returned by use cases and adapters.
var (
	ErrOperationNotFound = errors.New("operation not found")
)

// UpstreamInvoker executes the single upstream HTTP call an operation maps to
// and returns the shaped result. Implementations own URL construction, the
// request body, error wrapping, and response shaping.
//
// The invoker is an explicit handle rather than a package-level client so
// tests can substitute a fake transport.
type UpstreamInvoker interface {
	Invoke(ctx context.Context, op domain.OperationSpec, args map[string]any) (any, error)
}
