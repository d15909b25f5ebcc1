package pagination

import (
	"io"

	"github.com/sirupsen/logrus"
)

// newDiscardLogger is the default sink for consumers that never configure
// a logger: silent by default, matching the convention of a library
// embedded inside a larger CLI.
func newDiscardLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// Option configures a Pagination at construction time.
type Option func(*settings)

type settings struct {
	logger logrus.FieldLogger
}

func newSettings(opts ...Option) *settings {
	s := &settings{logger: newDiscardLogger()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithLogger injects a logrus.FieldLogger for error-level output:
// terminal HTTP errors and boundary failures encountered while paging.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}
