package registry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luizzzvictor/mcp-comexstat/internal/domain"
	"github.com/luizzzvictor/mcp-comexstat/internal/registry"
)

// validQueryArgs returns a fully-populated queryData argument set, as it
// arrives after JSON decoding (numbers as float64).
func validQueryArgs() map[string]any {
	return map[string]any{
		"flow":        "export",
		"monthDetail": false,
		"period":      map[string]any{"from": "2023-01", "to": "2023-12"},
		"filters": []any{
			map[string]any{"filter": "country", "values": []any{float64(105)}},
		},
		"details": []any{"country", "month"},
		"metrics": []any{"metricFOB", "metricKG"},
	}
}

func mustFind(t *testing.T, name string) domain.OperationSpec {
	t.Helper()
	op, ok := registry.New().Find(name)
	require.True(t, ok, "operation %s not in catalog", name)
	return op
}

func TestValidateArguments_QueryDataSuccess(t *testing.T) {
	op := mustFind(t, "queryData")

	args, err := registry.ValidateArguments(op, validQueryArgs())
	require.NoError(t, err)

	assert.Equal(t, "export", args["flow"])
	assert.Equal(t, false, args["monthDetail"])
	assert.Equal(t, map[string]any{"from": "2023-01", "to": "2023-12"}, args["period"])
	// Optional language gets its default injected.
	assert.Equal(t, "pt", args["language"])
}

func TestValidateArguments_QueryDataFailures(t *testing.T) {
	op := mustFind(t, "queryData")

	tests := []struct {
		name       string
		mutate     func(args map[string]any)
		wantField  string
		wantSubstr string
	}{
		{
			name:       "flow outside enum",
			mutate:     func(a map[string]any) { a["flow"] = "transit" },
			wantField:  "flow",
			wantSubstr: "must be one of",
		},
		{
			name:       "missing required period",
			mutate:     func(a map[string]any) { delete(a, "period") },
			wantField:  "period",
			wantSubstr: "is required",
		},
		{
			name: "period.from missing zero padding",
			mutate: func(a map[string]any) {
				a["period"] = map[string]any{"from": "2023-1", "to": "2023-12"}
			},
			wantField:  "period.from",
			wantSubstr: "must match YYYY-MM",
		},
		{
			name: "period.to two-digit year",
			mutate: func(a map[string]any) {
				a["period"] = map[string]any{"from": "2023-01", "to": "23-01"}
			},
			wantField:  "period.to",
			wantSubstr: "must match YYYY-MM",
		},
		{
			name:       "monthDetail wrong type",
			mutate:     func(a map[string]any) { a["monthDetail"] = "false" },
			wantField:  "monthDetail",
			wantSubstr: "must be a boolean",
		},
		{
			name: "filter name outside enum",
			mutate: func(a map[string]any) {
				a["filters"] = []any{map[string]any{"filter": "continent", "values": []any{float64(1)}}}
			},
			wantField:  "filters[0].filter",
			wantSubstr: "must be one of",
		},
		{
			name: "filter values wrong element type",
			mutate: func(a map[string]any) {
				a["filters"] = []any{map[string]any{"filter": "country", "values": []any{"105"}}}
			},
			wantField:  "filters[0].values[0]",
			wantSubstr: "must be a number",
		},
		{
			name: "filter values empty",
			mutate: func(a map[string]any) {
				a["filters"] = []any{map[string]any{"filter": "country", "values": []any{}}}
			},
			wantField:  "filters[0].values",
			wantSubstr: "at least 1",
		},
		{
			name:       "metric outside enum",
			mutate:     func(a map[string]any) { a["metrics"] = []any{"metricTons"} },
			wantField:  "metrics[0]",
			wantSubstr: "must be one of",
		},
		{
			name:       "details empty",
			mutate:     func(a map[string]any) { a["details"] = []any{} },
			wantField:  "details",
			wantSubstr: "at least 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := validQueryArgs()
			tt.mutate(args)

			_, err := registry.ValidateArguments(op, args)
			require.Error(t, err)

			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %T", err)
			assert.Equal(t, tt.wantField, verr.Field)
			assert.Contains(t, verr.Constraint, tt.wantSubstr)
		})
	}
}

// "2023-13" matches the YYYY-MM pattern; month range semantics are left to
// the upstream API.
func TestValidateArguments_PatternDoesNotCheckMonthRange(t *testing.T) {
	op := mustFind(t, "queryData")

	args := validQueryArgs()
	args["period"] = map[string]any{"from": "2023-13", "to": "2023-13"}

	_, err := registry.ValidateArguments(op, args)
	assert.NoError(t, err)
}

func TestValidateArguments_FiltersOptional(t *testing.T) {
	op := mustFind(t, "queryData")

	args := validQueryArgs()
	delete(args, "filters")

	normalized, err := registry.ValidateArguments(op, args)
	require.NoError(t, err)

	// Optional with no default: absent, not synthesized.
	_, present := normalized["filters"]
	assert.False(t, present)
}

func TestValidateArguments_AuxiliaryTableDefaults(t *testing.T) {
	op := mustFind(t, "getAuxiliaryTable")

	args, err := registry.ValidateArguments(op, map[string]any{"table": "countries"})
	require.NoError(t, err)

	assert.Equal(t, "countries", args["table"])
	assert.Equal(t, 1, args["page"])
	assert.Equal(t, 100, args["pageSize"])
	_, present := args["search"]
	assert.False(t, present, "search has no default and must stay absent")
}

func TestValidateArguments_AuxiliaryTableRequired(t *testing.T) {
	op := mustFind(t, "getAuxiliaryTable")

	_, err := registry.ValidateArguments(op, map[string]any{})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "table", verr.Field)
}

func TestValidateArguments_ClassificationTableDefaults(t *testing.T) {
	tests := []struct {
		op      string
		perPage int
	}{
		{"getEconomicBlocks", 10},
		{"getHarmonizedSystem", 10},
		{"getNBM", 5},
	}
	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			op := mustFind(t, tt.op)
			args, err := registry.ValidateArguments(op, map[string]any{})
			require.NoError(t, err)
			assert.Equal(t, "pt", args["language"])
			assert.Equal(t, 1, args["page"])
			assert.Equal(t, tt.perPage, args["perPage"])
		})
	}
}

func TestValidateArguments_MunicipalitiesMonthDetailDefault(t *testing.T) {
	op := mustFind(t, "queryMunicipalitiesData")

	args := validQueryArgs()
	delete(args, "monthDetail")
	// Municipalities filters take free-form names.
	args["filters"] = []any{map[string]any{"filter": "city", "values": []any{float64(3550308)}}}

	normalized, err := registry.ValidateArguments(op, args)
	require.NoError(t, err)
	assert.Equal(t, false, normalized["monthDetail"])
}

func TestValidateArguments_HistoricalScalarValues(t *testing.T) {
	op := mustFind(t, "queryHistoricalData")

	args := validQueryArgs()
	args["metrics"] = []any{"metricFOB"}

	t.Run("number values", func(t *testing.T) {
		args["filters"] = []any{map[string]any{"filter": "country", "values": []any{float64(105)}}}
		_, err := registry.ValidateArguments(op, args)
		assert.NoError(t, err)
	})

	t.Run("string values", func(t *testing.T) {
		args["filters"] = []any{map[string]any{"filter": "nbm", "values": []any{"1011"}}}
		_, err := registry.ValidateArguments(op, args)
		assert.NoError(t, err)
	})

	t.Run("boolean values rejected", func(t *testing.T) {
		args["filters"] = []any{map[string]any{"filter": "country", "values": []any{true}}}
		_, err := registry.ValidateArguments(op, args)
		var verr *domain.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "filters[0].values[0]", verr.Field)
	})
}

func TestValidateArguments_UndeclaredArgumentsDropped(t *testing.T) {
	op := mustFind(t, "getCountries")

	args, err := registry.ValidateArguments(op, map[string]any{
		"search":  "braz",
		"verbose": true,
	})
	require.NoError(t, err)
	assert.Equal(t, "braz", args["search"])
	_, present := args["verbose"]
	assert.False(t, present)
}

func TestValidateArguments_NumberAcceptsGoInts(t *testing.T) {
	op := mustFind(t, "getStateDetails")

	args, err := registry.ValidateArguments(op, map[string]any{"ufId": 26})
	require.NoError(t, err)
	assert.Equal(t, 26, args["ufId"])

	args, err = registry.ValidateArguments(op, map[string]any{"ufId": float64(26)})
	require.NoError(t, err)
	assert.Equal(t, float64(26), args["ufId"])
}
