package evolve

import "fmt"

// ConfigurationError reports a malformed IndividualConfig: a missing or
// reversed interval, a fitness function that isn't set, or an empty variable
// specification. Raised at construction time, fatal to that call.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

func newConfigurationError(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// ArgumentError reports an invalid argument to an operator invocation, such
// as an empty parent set handed to the Variator.
type ArgumentError struct {
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("argument error: %s", e.Reason)
}

func newArgumentError(format string, args ...any) *ArgumentError {
	return &ArgumentError{Reason: fmt.Sprintf(format, args...)}
}
