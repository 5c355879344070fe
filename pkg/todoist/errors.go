package todoist

import "fmt"

// APIError is a non-2xx response from the Todoist API.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("todoist %s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}
