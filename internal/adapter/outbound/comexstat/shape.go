package comexstat

import (
	"encoding/json"

	"github.com/luizzzvictor/mcp-comexstat/internal/domain"
)

// shapeResponse unwraps a 2xx response body according to the operation's
// declared shape. Parsing is defensive: a missing envelope field is a
// MalformedResponseError rather than a silent nil.
func shapeResponse(shape domain.ResponseShape, body []byte, endpoint string) (any, error) {
	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		if shape == domain.ShapeRaw {
			// Pass-through endpoints occasionally answer with plain text.
			return string(body), nil
		}
		return nil, &domain.MalformedResponseError{Endpoint: endpoint, Reason: "body is not valid JSON"}
	}

	switch shape {
	case domain.ShapeRaw, domain.ShapeEnvelope:
		return decoded, nil

	case domain.ShapeData:
		return dataField(decoded, endpoint)

	case domain.ShapeDataList:
		data, err := dataField(decoded, endpoint)
		if err != nil {
			return nil, err
		}
		obj, ok := data.(map[string]any)
		if !ok {
			return nil, &domain.MalformedResponseError{Endpoint: endpoint, Reason: `"data" is not an object`}
		}
		list, ok := obj["list"]
		if !ok {
			return nil, &domain.MalformedResponseError{Endpoint: endpoint, Reason: `"data.list" is missing`}
		}
		return list, nil

	case domain.ShapeDataUpdated:
		data, err := dataField(decoded, endpoint)
		if err != nil {
			return nil, err
		}
		obj, ok := data.(map[string]any)
		if !ok {
			return nil, &domain.MalformedResponseError{Endpoint: endpoint, Reason: `"data" is not an object`}
		}
		updated, ok := obj["updated"]
		if !ok {
			return nil, &domain.MalformedResponseError{Endpoint: endpoint, Reason: `"data.updated" is missing`}
		}
		return updated, nil

	case domain.ShapeDataFirst:
		// The API wraps this endpoint's result in an extra array layer;
		// exactly one level is removed.
		data, err := dataField(decoded, endpoint)
		if err != nil {
			return nil, err
		}
		arr, ok := data.([]any)
		if !ok {
			return nil, &domain.MalformedResponseError{Endpoint: endpoint, Reason: `"data" is not an array`}
		}
		if len(arr) == 0 {
			return nil, &domain.MalformedResponseError{Endpoint: endpoint, Reason: `"data" array is empty`}
		}
		return arr[0], nil

	default:
		return nil, &domain.MalformedResponseError{Endpoint: endpoint, Reason: "unknown response shape"}
	}
}

func dataField(decoded any, endpoint string) (any, error) {
	obj, ok := decoded.(map[string]any)
	if !ok {
		return nil, &domain.MalformedResponseError{Endpoint: endpoint, Reason: "expected a JSON object envelope"}
	}
	data, ok := obj["data"]
	if !ok {
		return nil, &domain.MalformedResponseError{Endpoint: endpoint, Reason: `"data" field is missing`}
	}
	return data, nil
}
