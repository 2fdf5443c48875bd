package registry

import (
	"fmt"
	"strings"

	"github.com/luizzzvictor/mcp-comexstat/internal/domain"
)

// ValidateArguments checks raw tool arguments against an operation spec and
// returns the normalized argument record: every required field present with
// its declared type, optional fields carrying their default or omitted, and
// every constrained value inside its enum or matching its pattern.
//
// Validation is all-or-nothing: the first violation aborts with a
// ValidationError naming the offending field, and nothing is forwarded
// upstream. Arguments not declared in the spec are dropped.
func ValidateArguments(op domain.OperationSpec, raw map[string]any) (map[string]any, error) {
	normalized := make(map[string]any, len(op.Params))
	for _, p := range op.Params {
		value, present := raw[p.Name]
		if !present || value == nil {
			if p.Required {
				return nil, &domain.ValidationError{Field: p.Name, Constraint: "is required"}
			}
			if p.Default != nil {
				normalized[p.Name] = p.Default
			}
			continue
		}
		checked, err := checkValue(p, value, p.Name)
		if err != nil {
			return nil, err
		}
		normalized[p.Name] = checked
	}
	return normalized, nil
}

func checkValue(p domain.ParameterSpec, value any, path string) (any, error) {
	switch p.Type {
	case domain.TypeString:
		s, ok := value.(string)
		if !ok {
			return nil, &domain.ValidationError{Field: path, Constraint: "must be a string"}
		}
		if p.Pattern != nil && !p.Pattern.MatchString(s) {
			return nil, &domain.ValidationError{Field: path, Constraint: "must match " + patternName(p)}
		}
		if len(p.Enum) > 0 && !contains(p.Enum, s) {
			return nil, &domain.ValidationError{
				Field:      path,
				Constraint: "must be one of: " + strings.Join(p.Enum, ", "),
			}
		}
		return s, nil

	case domain.TypeNumber:
		if !isNumber(value) {
			return nil, &domain.ValidationError{Field: path, Constraint: "must be a number"}
		}
		return value, nil

	case domain.TypeBoolean:
		b, ok := value.(bool)
		if !ok {
			return nil, &domain.ValidationError{Field: path, Constraint: "must be a boolean"}
		}
		return b, nil

	case domain.TypeScalar:
		if _, ok := value.(string); ok {
			return value, nil
		}
		if isNumber(value) {
			return value, nil
		}
		return nil, &domain.ValidationError{Field: path, Constraint: "must be a number or a string"}

	case domain.TypeObject:
		obj, ok := value.(map[string]any)
		if !ok {
			return nil, &domain.ValidationError{Field: path, Constraint: "must be an object"}
		}
		out := make(map[string]any, len(p.Fields))
		for _, f := range p.Fields {
			fieldPath := path + "." + f.Name
			fv, present := obj[f.Name]
			if !present || fv == nil {
				if f.Required {
					return nil, &domain.ValidationError{Field: fieldPath, Constraint: "is required"}
				}
				if f.Default != nil {
					out[f.Name] = f.Default
				}
				continue
			}
			checked, err := checkValue(f, fv, fieldPath)
			if err != nil {
				return nil, err
			}
			out[f.Name] = checked
		}
		return out, nil

	case domain.TypeArray:
		arr, ok := value.([]any)
		if !ok {
			return nil, &domain.ValidationError{Field: path, Constraint: "must be an array"}
		}
		if len(arr) < p.MinItems {
			return nil, &domain.ValidationError{
				Field:      path,
				Constraint: fmt.Sprintf("must contain at least %d element(s)", p.MinItems),
			}
		}
		out := make([]any, 0, len(arr))
		for i, ev := range arr {
			checked, err := checkValue(*p.Elem, ev, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			out = append(out, checked)
		}
		return out, nil

	default:
		return nil, &domain.ValidationError{Field: path, Constraint: "has an unsupported declared type"}
	}
}

func patternName(p domain.ParameterSpec) string {
	if p.Format != "" {
		return p.Format
	}
	return p.Pattern.String()
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// isNumber accepts the numeric types JSON decoding and Go callers produce.
func isNumber(v any) bool {
	switch v.(type) {
	case float64, float32, int, int32, int64:
		return true
	}
	return false
}
