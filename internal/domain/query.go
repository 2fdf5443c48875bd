package domain

import "regexp"

// Flow is the trade direction of a query.
const (
	FlowExport = "export"
	FlowImport = "import"
)

// Flows lists the accepted flow values.
var Flows = []string{FlowExport, FlowImport}

// QueryFilters is the closed set of filter names the detailed query endpoint
// accepts. The municipalities and historical endpoints take free-form names.
var QueryFilters = []string{
	"country",
	"state",
	"ncm",
	"economicBlock",
	"section",
	"chapter",
	"position",
	"subposition",
}

// QueryMetrics is the closed set of metric identifiers for the detailed
// query endpoint.
var QueryMetrics = []string{
	"metricFOB",
	"metricKG",
	"metricStatistic",
	"metricFreight",
	"metricInsurance",
	"metricCIF",
}

// MonthPattern constrains period bounds to calendar months ("2023-01").
// Semantic checks (from <= to, month <= 12) are left to the upstream API.
var MonthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// Period is an inclusive month range bounding a query.
type Period struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Validate checks both bounds against MonthPattern.
func (p Period) Validate() error {
	if !MonthPattern.MatchString(p.From) {
		return &MalformedPeriodError{Field: "period.from", Value: p.From}
	}
	if !MonthPattern.MatchString(p.To) {
		return &MalformedPeriodError{Field: "period.to", Value: p.To}
	}
	return nil
}
