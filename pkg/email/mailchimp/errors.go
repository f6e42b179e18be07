package mailchimp

import (
	"errors"
	"fmt"
)

var ErrInvalidAPIKey = errors.New("mailchimp api key has no datacenter suffix")

// APIError is the problem document returned by the Marketing API on failure.
type APIError struct {
	Type       string `json:"type"`
	Title      string `json:"title"`
	Status     int    `json:"status"`
	Detail     string `json:"detail"`
	Instance   string `json:"instance"`
	StatusCode int    `json:"-"`
}

func (e *APIError) Error() string {
	if e.Title == "" && e.Detail == "" {
		return fmt.Sprintf("mailchimp api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("mailchimp api error: status %d: %s: %s", e.StatusCode, e.Title, e.Detail)
}

// IsStatus reports whether err is an APIError with the given HTTP status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}
