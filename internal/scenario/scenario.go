package scenario

import "fmt"

// InvalidInputError marks a scenario rejected for out-of-range or missing
// parameters. The API layer maps it to a 400 response.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func invalidInput(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}
