// Package mcptool exposes the operation catalog as MCP tools on a
// mark3labs/mcp-go server.
package mcptool

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/luizzzvictor/mcp-comexstat/internal/domain"
)

// BuildTool converts an OperationSpec into an mcp.Tool with the matching
// JSON-schema input declaration.
func BuildTool(op domain.OperationSpec) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(op.Description)}
	for _, p := range op.Params {
		opts = append(opts, paramOption(p))
	}
	return mcp.NewTool(op.Name, opts...)
}

func paramOption(p domain.ParameterSpec) mcp.ToolOption {
	var props []mcp.PropertyOption
	if p.Description != "" {
		props = append(props, mcp.Description(p.Description))
	}
	if p.Required {
		props = append(props, mcp.Required())
	}

	switch p.Type {
	case domain.TypeNumber:
		if d, ok := toFloat(p.Default); ok {
			props = append(props, mcp.DefaultNumber(d))
		}
		return mcp.WithNumber(p.Name, props...)
	case domain.TypeBoolean:
		if d, ok := p.Default.(bool); ok {
			props = append(props, mcp.DefaultBool(d))
		}
		return mcp.WithBoolean(p.Name, props...)
	case domain.TypeObject:
		fields := make(map[string]any, len(p.Fields))
		for _, f := range p.Fields {
			fields[f.Name] = schemaMap(f)
		}
		props = append(props, mcp.Properties(fields))
		return mcp.WithObject(p.Name, props...)
	case domain.TypeArray:
		if p.Elem != nil {
			props = append(props, mcp.Items(schemaMap(*p.Elem)))
		}
		return mcp.WithArray(p.Name, props...)
	default:
		// string (and scalar, which clients submit as string or number)
		if len(p.Enum) > 0 {
			props = append(props, mcp.Enum(p.Enum...))
		}
		if d, ok := p.Default.(string); ok {
			props = append(props, mcp.DefaultString(d))
		}
		return mcp.WithString(p.Name, props...)
	}
}

// schemaMap renders a ParameterSpec as a raw JSON-schema fragment, used for
// nested object properties and array item declarations where mcp-go's typed
// options don't reach.
func schemaMap(p domain.ParameterSpec) map[string]any {
	m := make(map[string]any)
	switch p.Type {
	case domain.TypeScalar:
		m["type"] = []string{"number", "string"}
	case domain.TypeObject:
		m["type"] = "object"
		fields := make(map[string]any, len(p.Fields))
		var required []string
		for _, f := range p.Fields {
			fields[f.Name] = schemaMap(f)
			if f.Required {
				required = append(required, f.Name)
			}
		}
		m["properties"] = fields
		if len(required) > 0 {
			m["required"] = required
		}
	case domain.TypeArray:
		m["type"] = "array"
		if p.Elem != nil {
			m["items"] = schemaMap(*p.Elem)
		}
		if p.MinItems > 0 {
			m["minItems"] = p.MinItems
		}
	default:
		m["type"] = string(p.Type)
	}
	if p.Description != "" {
		m["description"] = p.Description
	}
	if p.Pattern != nil {
		m["pattern"] = p.Pattern.String()
	}
	if len(p.Enum) > 0 {
		m["enum"] = p.Enum
	}
	if p.Default != nil {
		m["default"] = p.Default
	}
	return m
}

func toFloat(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case int:
		return float64(val), true
	}
	return 0, false
}
