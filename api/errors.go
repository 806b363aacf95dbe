package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error is a failed API call. StatusCode is 0 when no response arrived.
type Error struct {
	Method     string
	Path       string
	StatusCode int
	Payload    any
	Err        error
}

func newError(method, path string, status int, body []byte) *Error {
	e := &Error{Method: method, Path: path, StatusCode: status}
	if len(bytes.TrimSpace(body)) > 0 {
		dec := json.NewDecoder(bytes.NewReader(body))
		dec.UseNumber()
		var payload any
		if err := dec.Decode(&payload); err == nil {
			e.Payload = payload
		} else {
			e.Payload = string(body)
		}
	}
	return e
}

func (e *Error) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
	}
	if msg := DetailMessage(e.Payload, ""); msg != "" {
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, msg)
	}
	return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func statusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

func IsUnauthorized(err error) bool { return statusOf(err) == http.StatusUnauthorized }
func IsForbidden(err error) bool    { return statusOf(err) == http.StatusForbidden }
func IsNotFound(err error) bool     { return statusOf(err) == http.StatusNotFound }
func IsValidation(err error) bool   { return statusOf(err) == http.StatusUnprocessableEntity }

// ErrorMessage turns a failed call into the text shown next to the form or
// list that triggered it.
func ErrorMessage(err error, fallback string) string {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return fallback
	}
	return DetailMessage(apiErr.Payload, fallback)
}

// DetailMessage reads the detail field of an error payload: a string is used
// as is, a list yields its first element's msg, an object is serialised, and
// anything else gives fallback.
func DetailMessage(payload any, fallback string) string {
	body, ok := payload.(map[string]any)
	if !ok {
		return fallback
	}

	switch detail := body["detail"].(type) {
	case string:
		if detail != "" {
			return detail
		}
	case []any:
		if len(detail) > 0 {
			if first, ok := detail[0].(map[string]any); ok {
				if msg, ok := first["msg"].(string); ok && msg != "" {
					return msg
				}
			}
		}
	case map[string]any:
		if encoded, err := json.Marshal(detail); err == nil {
			return string(encoded)
		}
	}
	return fallback
}
