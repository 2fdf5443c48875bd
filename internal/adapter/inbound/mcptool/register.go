package mcptool

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/luizzzvictor/mcp-comexstat/internal/registry"
	"github.com/luizzzvictor/mcp-comexstat/internal/usecase"
)

// Register adds every catalog operation to the MCP server and returns the
// number of tools registered.
func Register(s *server.MCPServer, reg *registry.Registry, uc *usecase.InvokeToolUseCase, logger *slog.Logger) int {
	log := logger.With("component", "mcptool")
	for _, op := range reg.List() {
		s.AddTool(BuildTool(op), newHandler(uc, op.Name))
		log.Debug("Registered tool", slog.String("tool_name", op.Name))
	}
	log.Info("Registered MCP tools", slog.Int("count", reg.Len()))
	return reg.Len()
}

// newHandler builds the tool handler: run the use case, marshal the shaped
// result to text content. Domain errors surface as tool error results, not
// protocol errors, so the client sees them as the tool's failure output.
func newHandler(uc *usecase.InvokeToolUseCase, opName string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := uc.Execute(ctx, opName, req.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		text, err := renderResult(result)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(text), nil
	}
}

func renderResult(result any) (string, error) {
	if s, ok := result.(string); ok {
		return s, nil
	}
	data, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("failed to marshal tool result: %w", err)
	}
	return string(data), nil
}
