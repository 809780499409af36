package todoist

import (
	"errors"
	"fmt"
)

// ErrEmptyLabelName indicates a label name was blank after trimming.
var ErrEmptyLabelName = errors.New("label name empty")

// APIError is a Todoist request that came back with a 4xx/5xx status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("todoist api error %d: %s", e.StatusCode, e.Body)
}
