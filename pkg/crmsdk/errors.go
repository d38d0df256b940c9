package crmsdk

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sellside/prospectd/pkg/httpx"
)

// Machine-readable error codes surfaced by the API.
const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeConflict           = "conflict"
	ErrorCodeInvalidCode        = "invalid_code"
	ErrorCodeCodeExpired        = "code_expired"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeUnauthorized       = "unauthorized"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeServerError        = "server_error"
	ErrorCodeRateLimited        = "rate_limit_exceeded"
)

// APIError is the wire error shape shared by the server handlers (to write
// responses) and the SDK client (to represent failures).
type APIError struct {
	// StatusCode is the HTTP status for this error.
	StatusCode int `json:"-"`

	// Code is the machine-readable error code.
	Code string `json:"error"`

	// Description is a human-readable description of the error.
	Description string `json:"error_description"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, map[string]string{
		"error":             e.Code,
		"error_description": e.Description,
	})
}

// WithDescription returns a copy of the error carrying a specific message.
func (e *APIError) WithDescription(desc string) *APIError {
	return &APIError{StatusCode: e.StatusCode, Code: e.Code, Description: desc}
}

var (
	// ErrInvalidRequest is returned for malformed bodies, missing required
	// fields, or values failing validation.
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	// ErrConflict is returned when signing up with an email that already has
	// a verified account.
	ErrConflict = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeConflict,
		Description: "email already registered",
	}

	// ErrInvalidCode is returned when an OTP does not match or was already
	// consumed.
	ErrInvalidCode = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidCode,
		Description: "invalid verification code",
	}

	// ErrCodeExpired is returned when an OTP is past its expiry.
	ErrCodeExpired = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeCodeExpired,
		Description: "verification code expired",
	}

	// ErrInvalidCredentials is the uniform login failure: missing user,
	// unverified user, and wrong password are indistinguishable.
	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidCredentials,
		Description: "invalid credentials",
	}

	// ErrUnauthorized is returned when a request carries no valid credential.
	ErrUnauthorized = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeUnauthorized,
		Description: "missing or invalid credentials",
	}

	// ErrNotFound is returned when the referenced entity does not exist or
	// belongs to another user.
	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "not found",
	}

	// ErrServerError is returned for unexpected internal failures.
	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)

// parseAPIError decodes an error response body into an APIError. Bodies that
// are not valid error JSON produce a generic error with the response status.
func parseAPIError(resp *http.Response) *APIError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Code == "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        ErrorCodeServerError,
			Description: fmt.Sprintf("unexpected response status %d", resp.StatusCode),
		}
	}
	apiErr.StatusCode = resp.StatusCode
	return &apiErr
}
