package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

// ErrInvalidPayload is returned when a request body is missing or is not a JSON object
var ErrInvalidPayload = errors.New("invalid JSON data or Content-Type header missing")

// HitPayload is the request body accepted by the create and update hit routes
type HitPayload struct {
	Endpoint    *string         `json:"endpoint"`
	RequestBody json.RawMessage `json:"request_body,omitempty"`

	raw json.RawMessage
}

// DecodeHitPayload parses a request body into a HitPayload.
// Empty bodies, malformed JSON and JSON that is not an object are rejected.
func DecodeHitPayload(body []byte) (*HitPayload, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '{' {
		return nil, ErrInvalidPayload
	}

	var payload HitPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, ErrInvalidPayload
	}

	payload.raw = compact(body)
	return &payload, nil
}

// Validate checks the fields required to create a hit
func (p *HitPayload) Validate() []string {
	var errors []string

	if p.Endpoint == nil {
		errors = append(errors, "endpoint is required")
	} else if strings.TrimSpace(*p.Endpoint) == "" {
		errors = append(errors, "endpoint must not be empty")
	} else if len(*p.Endpoint) > 255 {
		errors = append(errors, "endpoint must be less than 256 characters")
	}

	return errors
}

// Body returns the request_body field as stored text.
// JSON strings are stored unquoted, other values as compact JSON, null as nil.
func (p *HitPayload) Body() *string {
	if p == nil {
		return nil
	}

	raw := bytes.TrimSpace(p.RequestBody)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	var s string
	if raw[0] == '"' && json.Unmarshal(raw, &s) == nil {
		return &s
	}

	text := string(compact(raw))
	return &text
}

// Raw returns the payload exactly as received, compacted, for audit records
func (p *HitPayload) Raw() json.RawMessage {
	if p == nil {
		return nil
	}
	return p.raw
}

// ParseJSON attempts to parse a request body; ok is false for empty or malformed input
func ParseJSON(body []byte) (value json.RawMessage, ok bool) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || !json.Valid(body) {
		return nil, false
	}
	return compact(body), true
}

// RenderBody renders a request body the way it is stored on observed hits:
// a top-level JSON string unquoted, any other JSON value as compact text,
// otherwise the literal "null".
func RenderBody(body []byte) string {
	value, ok := ParseJSON(body)
	if !ok {
		return "null"
	}

	var s string
	if value[0] == '"' && json.Unmarshal(value, &s) == nil {
		return s
	}
	return string(value)
}

func compact(raw []byte) json.RawMessage {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return json.RawMessage(raw)
	}
	return json.RawMessage(buf.Bytes())
}
