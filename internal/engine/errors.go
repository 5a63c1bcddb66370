package engine

import "fmt"

// ConfigurationError reports an impossible session setup, such as an odd
// tile count or a tile count larger than the layout pool. It is the only
// error the engine surfaces to callers; invalid player input is absorbed
// as a no-op instead.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("engine: invalid configuration: %s", e.Reason)
}

func configErrorf(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}
