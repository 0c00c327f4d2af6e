package collision

import (
	"errors"
	"fmt"
)

// ErrConfiguration is matched by every ConfigurationError.
var ErrConfiguration = errors.New("invalid shape configuration")

// ConfigurationError reports a shape that cannot be built.
type ConfigurationError struct {
	Shape  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrConfiguration, e.Shape, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

func configErr(shape, format string, args ...any) error {
	return &ConfigurationError{Shape: shape, Reason: fmt.Sprintf(format, args...)}
}
