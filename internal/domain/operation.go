package domain

import "regexp"

// ParamType is the declared runtime type of a tool parameter.
type ParamType string

const (
	TypeString  ParamType = "string"
	TypeNumber  ParamType = "number"
	TypeBoolean ParamType = "boolean"
	TypeObject  ParamType = "object"
	TypeArray   ParamType = "array"
	// TypeScalar accepts either a string or a number. Used by the historical
	// query, whose filter values the API takes in both forms.
	TypeScalar ParamType = "scalar"
)

// ParameterSpec declares one parameter of an operation: its type, whether it
// is required, an optional default, and its constraint (enum membership or a
// regex pattern). Object parameters carry Fields, array parameters carry Elem.
//
// An optional parameter without a default yields "absent" after validation; a
// default is injected only when one is declared.
type ParameterSpec struct {
	Name        string
	Description string
	Type        ParamType
	Required    bool
	Default     any
	Enum        []string
	Pattern     *regexp.Regexp
	Format      string          // human-readable pattern name for messages, e.g. "YYYY-MM"
	Fields      []ParameterSpec // for TypeObject
	Elem        *ParameterSpec  // for TypeArray
	MinItems    int             // for TypeArray
}

// ResponseShape selects how the mapper unwraps the upstream JSON envelope
// before handing the result back to the caller.
type ResponseShape int

const (
	// ShapeEnvelope returns the full envelope object unmodified.
	ShapeEnvelope ResponseShape = iota
	// ShapeRaw passes the response body through, decoded as JSON when possible.
	ShapeRaw
	// ShapeData unwraps the "data" field.
	ShapeData
	// ShapeDataList unwraps "data.list".
	ShapeDataList
	// ShapeDataUpdated unwraps "data.updated".
	ShapeDataUpdated
	// ShapeDataFirst unwraps "data[0]". The filter-values endpoint wraps its
	// result in an extra array layer; exactly one level is removed.
	ShapeDataFirst
)

// Invocation describes the single upstream HTTP call an operation maps to:
// method, path template ("{param}" placeholders), and which normalized
// arguments travel as path, query, or body parameters.
type Invocation struct {
	Method       string
	PathTemplate string
	PathParams   []string
	QueryParams  []string
	BodyParams   []string
	Shape        ResponseShape
	// PeriodCheck re-validates period.from/period.to against YYYY-MM
	// immediately before sending. Deliberately redundant with the registry.
	PeriodCheck bool
}

// OperationSpec identifies one tool: its name, argument schema, and upstream
// mapping. Specs are built once at startup and never mutated.
type OperationSpec struct {
	Name        string
	Description string
	Params      []ParameterSpec
	Invocation  Invocation
}

// Param returns the parameter spec with the given name, if declared.
func (op OperationSpec) Param(name string) (ParameterSpec, bool) {
	for _, p := range op.Params {
		if p.Name == name {
			return p, true
		}
	}
	return ParameterSpec{}, false
}
