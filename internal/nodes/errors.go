package nodes

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is wrapped by every ConfigError.
	ErrInvalidConfig = errors.New("nodes: invalid configuration")

	// ErrRenderSurfaceUnavailable is returned by a frame that has nothing to
	// draw on.
	ErrRenderSurfaceUnavailable = errors.New("nodes: render surface unavailable")
)

// ConfigError names the configuration field that failed validation.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("nodes: invalid %s: %s", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

func configErr(field, format string, args ...any) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
