// Package comexstat maps normalized tool arguments onto upstream Comexstat
// API calls: one HTTP round trip per invocation, no retries, no caching.
package comexstat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/luizzzvictor/mcp-comexstat/internal/domain"
)

// Invoker implements usecase.UpstreamInvoker against the Comexstat HTTP API.
type Invoker struct {
	client  *http.Client
	baseURL string
	logger  *slog.Logger
	tracer  trace.Tracer
}

// New creates an Invoker. The http.Client is passed in explicitly so tests
// can point it at a fake upstream; nil falls back to http.DefaultClient.
func New(client *http.Client, baseURL string, logger *slog.Logger) *Invoker {
	if client == nil {
		client = http.DefaultClient
	}
	return &Invoker{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger.With("component", "comexstat_invoker"),
		tracer:  otel.Tracer("comexstat"),
	}
}

// Invoke builds the upstream request for the operation, executes it, and
// shapes the response. Transport failures and non-2xx statuses come back as
// UpstreamError; envelope mismatches as MalformedResponseError.
func (i *Invoker) Invoke(ctx context.Context, op domain.OperationSpec, args map[string]any) (any, error) {
	inv := op.Invocation
	log := i.logger.With(
		slog.String("operation", op.Name),
		slog.String("method", inv.Method),
		slog.String("path", inv.PathTemplate),
	)

	// Second gate on the period format, independent of the registry. Guards
	// callers that construct argument records without going through it.
	if inv.PeriodCheck {
		if err := recheckPeriod(args); err != nil {
			log.Warn("Pre-flight period check failed", slog.Any("error", err))
			return nil, err
		}
	}

	ctx, span := i.tracer.Start(ctx, "comexstat."+op.Name)
	defer span.End()

	endpoint := inv.PathTemplate
	for _, name := range inv.PathParams {
		v, ok := args[name]
		if !ok {
			return nil, fmt.Errorf("missing path parameter %q for operation %s", name, op.Name)
		}
		endpoint = strings.ReplaceAll(endpoint, "{"+name+"}", url.PathEscape(formatScalar(v)))
	}

	u, err := url.Parse(i.baseURL + endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid upstream URL %s%s: %w", i.baseURL, endpoint, err)
	}

	query := url.Values{}
	for _, name := range inv.QueryParams {
		if v, ok := args[name]; ok {
			query.Set(name, formatScalar(v))
		}
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var body io.Reader
	if inv.Method == http.MethodPost {
		payload := make(map[string]any, len(inv.BodyParams))
		for _, name := range inv.BodyParams {
			if v, ok := args[name]; ok {
				payload[name] = v
			}
		}
		data, err := json.Marshal(payload)
		if err != nil {
			log.Error("Failed to marshal request body", slog.Any("error", err))
			return nil, fmt.Errorf("failed to marshal request body for %s: %w", op.Name, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, inv.Method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", op.Name, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log.Debug("Executing upstream request", slog.String("url", u.String()))
	resp, err := i.client.Do(req)
	if err != nil {
		uerr := &domain.UpstreamError{Endpoint: endpoint, Message: err.Error()}
		log.Error("Upstream request failed", slog.Any("error", err))
		return nil, uerr
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Failed to read upstream response body", slog.Any("error", err))
		return nil, &domain.UpstreamError{
			Status:   resp.StatusCode,
			Message:  err.Error(),
			Endpoint: endpoint,
		}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		uerr := &domain.UpstreamError{
			Status:   resp.StatusCode,
			Message:  upstreamMessage(respBytes, resp.Status),
			Endpoint: endpoint,
		}
		log.Error("Upstream returned failure status",
			slog.Int("status_code", resp.StatusCode),
			slog.String("message", uerr.Message),
		)
		return nil, uerr
	}

	result, err := shapeResponse(inv.Shape, respBytes, endpoint)
	if err != nil {
		log.Error("Failed to shape upstream response", slog.Any("error", err))
		return nil, err
	}
	log.Debug("Upstream request succeeded", slog.Int("status_code", resp.StatusCode))
	return result, nil
}

func recheckPeriod(args map[string]any) error {
	p, ok := args["period"].(map[string]any)
	if !ok {
		return &domain.MalformedPeriodError{Field: "period", Value: fmt.Sprintf("%v", args["period"])}
	}
	from, _ := p["from"].(string)
	to, _ := p["to"].(string)
	return domain.Period{From: from, To: to}.Validate()
}

// upstreamMessage extracts the "message" field from a JSON error body,
// falling back to the raw body text and finally the HTTP status line.
func upstreamMessage(body []byte, status string) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	return status
}

func formatScalar(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		return fmt.Sprintf("%v", v)
	}
}
