package domain

import "fmt"

// ValidationError reports an inbound tool argument that failed its schema
// check. Field uses dotted/indexed paths for nested values (e.g.
// "period.from", "filters[0].filter").
type ValidationError struct {
	Field      string
	Constraint string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid argument: %s %s", e.Field, e.Constraint)
}

// MalformedPeriodError is raised by the request mapper's pre-flight period
// check. The registry validates period format too; this is a second gate for
// callers that construct requests without going through the registry.
type MalformedPeriodError struct {
	Field string
	Value string
}

func (e *MalformedPeriodError) Error() string {
	return fmt.Sprintf("malformed period: %s=%q must match YYYY-MM", e.Field, e.Value)
}

// UpstreamError wraps a non-2xx HTTP response or transport failure from the
// Comexstat API.
type UpstreamError struct {
	Status   int
	Message  string
	Endpoint string
}

func (e *UpstreamError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("upstream error (HTTP %d) from %s: %s", e.Status, e.Endpoint, e.Message)
	}
	return fmt.Sprintf("upstream error from %s: %s", e.Endpoint, e.Message)
}

// MalformedResponseError reports an upstream 2xx response whose body does not
// match the shape the operation declares (missing envelope fields, wrong
// nesting).
type MalformedResponseError struct {
	Endpoint string
	Reason   string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response from %s: %s", e.Endpoint, e.Reason)
}
