package domain

import "fmt"

// RequestError is a failed call to the upstream Bloggie API: a non-2xx
// response. Message carries the server-provided explanation when the
// response body had one, otherwise the per-action default ("Login failed",
// "Registration failed", ...). Transport-level failures are not
// RequestErrors; callers surface those with a generic message instead.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("upstream request failed (%d): %s", e.StatusCode, e.Message)
}
