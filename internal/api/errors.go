package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrUnauthorized signals a 401 from any endpoint. The client expires the
// session before returning it; callers redirect to login, never render it as
// a field error.
var ErrUnauthorized = errors.New("session expired")

// FieldError is one structured validation failure tied to a request field.
type FieldError struct {
	Field   string
	Message string
}

// APIError is a structured non-401 failure from the server. A 422 with a
// detail array becomes per-field errors; a plain detail string stays a
// single top-level message (conflict/business errors such as duplicate
// email on registration).
type APIError struct {
	StatusCode int
	Message    string
	Fields     []FieldError
}

func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		parts := make([]string, 0, len(e.Fields))
		for _, f := range e.Fields {
			if f.Field != "" {
				parts = append(parts, f.Field+": "+f.Message)
				continue
			}
			parts = append(parts, f.Message)
		}
		return strings.Join(parts, "; ")
	}
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// Validation reports whether the error carries field-level detail.
func (e *APIError) Validation() bool { return len(e.Fields) > 0 }

// fastAPI error bodies: {"detail": "..."} or
// {"detail": [{"loc": ["body","amount"], "msg": "...", "type": "..."}]}.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

type detailItem struct {
	Loc []json.RawMessage `json:"loc"`
	Msg string            `json:"msg"`
}

func decodeAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil || len(eb.Detail) == 0 {
		apiErr.Message = http.StatusText(status)
		return apiErr
	}
	var msg string
	if json.Unmarshal(eb.Detail, &msg) == nil {
		apiErr.Message = msg
		return apiErr
	}
	var items []detailItem
	if json.Unmarshal(eb.Detail, &items) == nil {
		for _, it := range items {
			apiErr.Fields = append(apiErr.Fields, FieldError{Field: locField(it.Loc), Message: it.Msg})
		}
		if len(apiErr.Fields) > 0 {
			return apiErr
		}
	}
	apiErr.Message = http.StatusText(status)
	return apiErr
}

// locField extracts the field name from a FastAPI loc path, skipping the
// leading "body"/"query" segment and numeric indices.
func locField(loc []json.RawMessage) string {
	var parts []string
	for i, seg := range loc {
		var s string
		if json.Unmarshal(seg, &s) != nil {
			continue // numeric index
		}
		if i == 0 && (s == "body" || s == "query" || s == "path") {
			continue
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ".")
}
