// Package analyze provides the HTTP handlers for the counting tools and
// the aggregate analysis endpoint.
package analyze

import (
	"bytes"
	"encoding/json"
	"errors"

	"textstats/internal/analyzer"
)

// CountRequest is the JSON body for a counting operation. Text is kept raw
// so the handler can reject non-string payloads (null, numbers, objects)
// before the analysis core ever sees them.
type CountRequest struct {
	Text   json.RawMessage `json:"text"`
	Locale string          `json:"locale,omitempty"`
}

// CountResponse carries a single count as a decimal text payload.
type CountResponse struct {
	Operation string `json:"operation"`
	Locale    string `json:"locale"`
	Result    string `json:"result"`
}

// AnalyzeResponse carries the aggregate result for one text.
type AnalyzeResponse struct {
	Locale string `json:"locale"`
	analyzer.Result
}

// ToolInfo describes one operation for the listing endpoint.
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ToolListResponse is the JSON body for GET /tools.
type ToolListResponse struct {
	Tools []ToolInfo `json:"tools"`
}

var errTextRequired = errors.New("text is required and must be a string")

var jsonNull = []byte("null")

// textString validates that the text member was a JSON string and returns
// its value. Absent members, JSON null, and any other JSON type are
// invalid-argument errors owned by the dispatcher, not the core.
func (r CountRequest) textString() (string, error) {
	raw := bytes.TrimSpace(r.Text)
	if len(raw) == 0 || bytes.Equal(raw, jsonNull) || raw[0] != '"' {
		return "", errTextRequired
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", errTextRequired
	}
	return s, nil
}
