// Package registry holds the static catalog of Comexstat tool operations and
// validates inbound arguments against it. The catalog is built once at
// startup and is read-only afterwards; validation is a pure check with no
// side effects.
package registry

import (
	"github.com/luizzzvictor/mcp-comexstat/internal/domain"
)

// Registry is the immutable operation catalog.
type Registry struct {
	ops   map[string]domain.OperationSpec
	order []string
}

// New builds the full catalog.
func New() *Registry {
	r := &Registry{ops: make(map[string]domain.OperationSpec)}
	for _, op := range catalog() {
		r.ops[op.Name] = op
		r.order = append(r.order, op.Name)
	}
	return r
}

// Find returns the spec for the named operation.
func (r *Registry) Find(name string) (domain.OperationSpec, bool) {
	op, ok := r.ops[name]
	return op, ok
}

// List returns all operations in declaration order.
func (r *Registry) List() []domain.OperationSpec {
	out := make([]domain.OperationSpec, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.ops[name])
	}
	return out
}

// Len returns the number of declared operations.
func (r *Registry) Len() int { return len(r.order) }

// languageParam is shared by most read endpoints. The API answers in
// Portuguese unless told otherwise.
func languageParam() domain.ParameterSpec {
	return domain.ParameterSpec{
		Name:        "language",
		Description: "Response language (e.g. 'pt', 'en')",
		Type:        domain.TypeString,
		Default:     "pt",
	}
}

func periodParam() domain.ParameterSpec {
	monthField := func(name string) domain.ParameterSpec {
		return domain.ParameterSpec{
			Name:        name,
			Description: "Calendar month in YYYY-MM format",
			Type:        domain.TypeString,
			Required:    true,
			Pattern:     domain.MonthPattern,
			Format:      "YYYY-MM",
		}
	}
	return domain.ParameterSpec{
		Name:        "period",
		Description: "Inclusive month range bounding the query",
		Type:        domain.TypeObject,
		Required:    true,
		Fields:      []domain.ParameterSpec{monthField("from"), monthField("to")},
	}
}

func flowParam() domain.ParameterSpec {
	return domain.ParameterSpec{
		Name:        "flow",
		Description: "Trade direction",
		Type:        domain.TypeString,
		Required:    true,
		Enum:        domain.Flows,
	}
}

func detailsParam() domain.ParameterSpec {
	return domain.ParameterSpec{
		Name:        "details",
		Description: "Dimensions used to break down results",
		Type:        domain.TypeArray,
		Required:    true,
		MinItems:    1,
		Elem:        &domain.ParameterSpec{Type: domain.TypeString},
	}
}

// filtersParam builds the optional filters clause list. filterEnum narrows
// the accepted filter names (nil means free-form); valueType is the element
// type of each clause's values array.
func filtersParam(filterEnum []string, valueType domain.ParamType) domain.ParameterSpec {
	return domain.ParameterSpec{
		Name:        "filters",
		Description: "Filter clauses narrowing the query",
		Type:        domain.TypeArray,
		Elem: &domain.ParameterSpec{
			Type: domain.TypeObject,
			Fields: []domain.ParameterSpec{
				{
					Name:        "filter",
					Description: "Filter dimension name",
					Type:        domain.TypeString,
					Required:    true,
					Enum:        filterEnum,
				},
				{
					Name:        "values",
					Description: "Values to match",
					Type:        domain.TypeArray,
					Required:    true,
					MinItems:    1,
					Elem:        &domain.ParameterSpec{Type: valueType},
				},
			},
		},
	}
}

func metricsParam(enum []string) domain.ParameterSpec {
	return domain.ParameterSpec{
		Name:        "metrics",
		Description: "Measured quantities returned per result row",
		Type:        domain.TypeArray,
		Required:    true,
		MinItems:    1,
		Elem:        &domain.ParameterSpec{Type: domain.TypeString, Enum: enum},
	}
}

func pagingParams(pageSizeName string, pageSize int) []domain.ParameterSpec {
	return []domain.ParameterSpec{
		{Name: "search", Description: "Free-text search filter", Type: domain.TypeString},
		{Name: "page", Description: "Page number", Type: domain.TypeNumber, Default: 1},
		{Name: pageSizeName, Description: "Results per page", Type: domain.TypeNumber, Default: pageSize},
	}
}

func catalog() []domain.OperationSpec {
	queryBody := []string{"flow", "monthDetail", "period", "filters", "details", "metrics"}

	return []domain.OperationSpec{
		{
			Name:        "getLastUpdate",
			Description: "Get the date of the most recent Comexstat data update",
			Invocation: domain.Invocation{
				Method:       "GET",
				PathTemplate: "/general/dates/updated",
				Shape:        domain.ShapeDataUpdated,
			},
		},
		{
			Name:        "getAvailableYears",
			Description: "List the years covered by the Comexstat dataset",
			Invocation: domain.Invocation{
				Method:       "GET",
				PathTemplate: "/general/dates/years",
				Shape:        domain.ShapeData,
			},
		},
		{
			Name:        "getAvailableFilters",
			Description: "List the filter dimensions accepted by the query endpoints",
			Params:      []domain.ParameterSpec{languageParam()},
			Invocation: domain.Invocation{
				Method:       "GET",
				PathTemplate: "/general/filters",
				QueryParams:  []string{"language"},
				Shape:        domain.ShapeDataList,
			},
		},
		{
			Name:        "getFilterValues",
			Description: "List the possible values of one filter dimension",
			Params: []domain.ParameterSpec{
				{
					Name:        "filter",
					Description: "Filter dimension to enumerate (e.g. 'country', 'state', 'ncm')",
					Type:        domain.TypeString,
					Required:    true,
				},
				languageParam(),
			},
			Invocation: domain.Invocation{
				Method:       "GET",
				PathTemplate: "/general/filters/{filter}",
				PathParams:   []string{"filter"},
				QueryParams:  []string{"language"},
				Shape:        domain.ShapeDataFirst,
			},
		},
		{
			Name:        "getAvailableFields",
			Description: "List the detail fields available for breaking down query results",
			Params:      []domain.ParameterSpec{languageParam()},
			Invocation: domain.Invocation{
				Method:       "GET",
				PathTemplate: "/general/details",
				QueryParams:  []string{"language"},
				Shape:        domain.ShapeDataList,
			},
		},
		{
			Name:        "getAvailableMetrics",
			Description: "List the metrics the query endpoints can return",
			Params:      []domain.ParameterSpec{languageParam()},
			Invocation: domain.Invocation{
				Method:       "GET",
				PathTemplate: "/general/metrics",
				QueryParams:  []string{"language"},
				Shape:        domain.ShapeDataList,
			},
		},
		{
			Name:        "queryData",
			Description: "Query detailed export/import statistics with filters, details and metrics",
			Params: []domain.ParameterSpec{
				flowParam(),
				{
					Name:        "monthDetail",
					Description: "Break results down by month",
					Type:        domain.TypeBoolean,
					Required:    true,
				},
				periodParam(),
				filtersParam(domain.QueryFilters, domain.TypeNumber),
				detailsParam(),
				metricsParam(domain.QueryMetrics),
				languageParam(),
			},
			Invocation: domain.Invocation{
				Method:       "POST",
				PathTemplate: "/general",
				QueryParams:  []string{"language"},
				BodyParams:   queryBody,
				Shape:        domain.ShapeEnvelope,
				PeriodCheck:  true,
			},
		},
		{
			Name:        "queryMunicipalitiesData",
			Description: "Query export/import statistics broken down by Brazilian municipality",
			Params: []domain.ParameterSpec{
				flowParam(),
				{
					Name:        "monthDetail",
					Description: "Break results down by month",
					Type:        domain.TypeBoolean,
					Default:     false,
				},
				periodParam(),
				filtersParam(nil, domain.TypeNumber),
				detailsParam(),
				metricsParam(nil),
				languageParam(),
			},
			Invocation: domain.Invocation{
				Method:       "POST",
				PathTemplate: "/cities",
				QueryParams:  []string{"language"},
				BodyParams:   queryBody,
				Shape:        domain.ShapeEnvelope,
				PeriodCheck:  true,
			},
		},
		{
			Name:        "queryHistoricalData",
			Description: "Query historical trade statistics (pre-1997 series)",
			Params: []domain.ParameterSpec{
				flowParam(),
				{
					Name:        "monthDetail",
					Description: "Break results down by month",
					Type:        domain.TypeBoolean,
					Default:     false,
				},
				periodParam(),
				filtersParam(nil, domain.TypeScalar),
				detailsParam(),
				metricsParam(nil),
				languageParam(),
			},
			Invocation: domain.Invocation{
				Method:       "POST",
				PathTemplate: "/historical-data",
				QueryParams:  []string{"language"},
				BodyParams:   queryBody,
				Shape:        domain.ShapeEnvelope,
				PeriodCheck:  true,
			},
		},
		{
			Name:        "getAuxiliaryTable",
			Description: "Fetch a reference/lookup table (states, cities, countries, classification codes)",
			Params: append([]domain.ParameterSpec{
				{
					Name:        "table",
					Description: "Auxiliary table identifier",
					Type:        domain.TypeString,
					Required:    true,
				},
			}, pagingParams("pageSize", 100)...),
			Invocation: domain.Invocation{
				Method:       "GET",
				PathTemplate: "/auxiliary/{table}",
				PathParams:   []string{"table"},
				QueryParams:  []string{"search", "page", "pageSize"},
				Shape:        domain.ShapeRaw,
			},
		},
		{
			Name:        "getStates",
			Description: "List Brazilian federative units (states)",
			Invocation: domain.Invocation{
				Method:       "GET",
				PathTemplate: "/tables/uf",
				Shape:        domain.ShapeRaw,
			},
		},
		{
			Name:        "getStateDetails",
			Description: "Get details of one Brazilian state",
			Params: []domain.ParameterSpec{
				{Name: "ufId", Description: "State identifier", Type: domain.TypeNumber, Required: true},
			},
			Invocation: domain.Invocation{
				Method:       "GET",
				PathTemplate: "/tables/uf/{ufId}",
				PathParams:   []string{"ufId"},
				Shape:        domain.ShapeRaw,
			},
		},
		{
			Name:        "getCities",
			Description: "List Brazilian municipalities",
			Invocation: domain.Invocation{
				Method:       "GET",
				PathTemplate: "/tables/cities",
				Shape:        domain.ShapeRaw,
			},
		},
		{
			Name:        "getCityDetails",
			Description: "Get details of one Brazilian municipality",
			Params: []domain.ParameterSpec{
				{Name: "cityId", Description: "Municipality identifier", Type: domain.TypeNumber, Required: true},
			},
			Invocation: domain.Invocation{
				Method:       "GET",
				PathTemplate: "/tables/cities/{cityId}",
				PathParams:   []string{"cityId"},
				Shape:        domain.ShapeRaw,
			},
		},
		{
			Name:        "getCountries",
			Description: "List countries known to Comexstat",
			Params: []domain.ParameterSpec{
				{Name: "search", Description: "Free-text search filter", Type: domain.TypeString},
			},
			Invocation: domain.Invocation{
				Method:       "GET",
				PathTemplate: "/tables/countries",
				QueryParams:  []string{"search"},
				Shape:        domain.ShapeRaw,
			},
		},
		{
			Name:        "getCountryDetails",
			Description: "Get details of one country",
			Params: []domain.ParameterSpec{
				{Name: "countryId", Description: "Country identifier", Type: domain.TypeNumber, Required: true},
			},
			Invocation: domain.Invocation{
				Method:       "GET",
				PathTemplate: "/tables/countries/{countryId}",
				PathParams:   []string{"countryId"},
				Shape:        domain.ShapeRaw,
			},
		},
		{
			Name:        "getEconomicBlocks",
			Description: "List economic blocks, paginated",
			Params: append(pagingParams("perPage", 10), languageParam()),
			Invocation: domain.Invocation{
				Method:       "GET",
				PathTemplate: "/tables/economic-blocks",
				QueryParams:  []string{"search", "page", "perPage", "language"},
				Shape:        domain.ShapeRaw,
			},
		},
		{
			Name:        "getHarmonizedSystem",
			Description: "List Harmonized System (HS) classification codes, paginated",
			Params: append(pagingParams("perPage", 10), languageParam()),
			Invocation: domain.Invocation{
				Method:       "GET",
				PathTemplate: "/tables/hs",
				QueryParams:  []string{"search", "page", "perPage", "language"},
				Shape:        domain.ShapeRaw,
			},
		},
		{
			Name:        "getNBM",
			Description: "List NBM classification codes (pre-1997), paginated",
			Params: append(pagingParams("perPage", 5), languageParam()),
			Invocation: domain.Invocation{
				Method:       "GET",
				PathTemplate: "/tables/nbm",
				QueryParams:  []string{"search", "page", "perPage", "language"},
				Shape:        domain.ShapeRaw,
			},
		},
		{
			Name:        "getNBMDetails",
			Description: "Get details of one NBM classification code",
			Params: []domain.ParameterSpec{
				{Name: "coNbm", Description: "NBM code", Type: domain.TypeString, Required: true},
			},
			Invocation: domain.Invocation{
				Method:       "GET",
				PathTemplate: "/tables/nbm/{coNbm}",
				PathParams:   []string{"coNbm"},
				Shape:        domain.ShapeRaw,
			},
		},
	}
}
