package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

// ErrTermsAcceptanceRequired is surfaced by Login when the server flags that
// the account must accept updated terms before a session can be established.
var ErrTermsAcceptanceRequired = errors.New("terms acceptance required")

// APIError is a non-2xx response reduced to a best-effort human-readable
// message plus any structured field errors the server attached.
type APIError struct {
	Status      int
	Message     string
	FieldErrors map[string]string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// IsValidation reports whether the error represents a server-side validation
// failure (HTTP 400/409 with field/message pairs).
func (e *APIError) IsValidation() bool {
	return (e.Status == http.StatusBadRequest || e.Status == http.StatusConflict) && len(e.FieldErrors) > 0
}

// IsUnauthorized reports whether the request was rejected for missing or
// invalid credentials.
func (e *APIError) IsUnauthorized() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

// decodeError builds an APIError from a response body. The backend emits
// several error shapes; try them in order rather than binding to one DTO.
func decodeError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}
	if len(body) == 0 {
		return apiErr
	}

	if !gjson.ValidBytes(body) {
		// Plain-text error body.
		apiErr.Message = string(body)
		return apiErr
	}

	for _, key := range []string{"message", "error"} {
		if v := gjson.GetBytes(body, key); v.Type == gjson.String && v.Str != "" {
			apiErr.Message = v.Str
			break
		}
	}

	for _, key := range []string{"fieldErrors", "errors"} {
		v := gjson.GetBytes(body, key)
		if !v.IsObject() {
			continue
		}
		apiErr.FieldErrors = map[string]string{}
		v.ForEach(func(field, msg gjson.Result) bool {
			apiErr.FieldErrors[field.String()] = msg.String()
			return true
		})
		break
	}

	return apiErr
}
