package changes

import "fmt"

// InvalidArgumentError is raised synchronously at construction/validation
// time and never retried: a typed, exported-field error a caller can
// switch on instead of string-matching.
type InvalidArgumentError struct {
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return e.Message
}

// IllegalStateError marks lifecycle misuse: double start, stop without a
// running feed.
type IllegalStateError struct {
	Message string
}

func (e *IllegalStateError) Error() string {
	return e.Message
}

func invalidArgf(format string, args ...interface{}) *InvalidArgumentError {
	return &InvalidArgumentError{Message: fmt.Sprintf(format, args...)}
}
