package leadsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error kinds surfaced by the callable API.
const (
	ErrorCodeUnauthenticated  = "unauthenticated"
	ErrorCodePermissionDenied = "permission_denied"
	ErrorCodeInvalidArgument  = "invalid_argument"
	ErrorCodeNotFound         = "not_found"
	ErrorCodeInternal         = "internal"
)

// APIError is returned for any non-2xx response from the service.
type APIError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("leadsdk: %s (%d): %s", e.Code, e.StatusCode, e.Description)
}

// IsCode reports whether err is an *APIError with the given error code.
func IsCode(err error, code string) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Code == code
}

// errorFromResponse decodes the standard error body from a failed response.
func errorFromResponse(resp *http.Response) error {
	var body ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Error == "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        ErrorCodeInternal,
			Description: http.StatusText(resp.StatusCode),
		}
	}
	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        body.Error,
		Description: body.ErrorDescription,
	}
}
