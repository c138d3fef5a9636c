package jointstate

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration matches every ConfigError: unsupported model names,
	// parameter-vector length mismatches and out-of-range force indices.
	ErrConfiguration = errors.New("jointstate: configuration error")

	// ErrUnsupportedPointMutation names a point-mutation model that is not registered.
	ErrUnsupportedPointMutation = errors.New("jointstate: unsupported point mutation model")

	// ErrUnsupportedIGC names an IGC parameterization that is not implemented.
	ErrUnsupportedIGC = errors.New("jointstate: unsupported IGC parameterization")

	// ErrParamLength indicates the combined vector does not split into the
	// point-mutation and IGC slice sizes.
	ErrParamLength = errors.New("jointstate: parameter vector length mismatch")

	// ErrForceIndex indicates a force-map key outside the combined vector.
	ErrForceIndex = errors.New("jointstate: force index out of range")

	// ErrInvalidParameter indicates IGC parameters outside their domain (p > 1, NaN...).
	ErrInvalidParameter = errors.New("jointstate: invalid IGC parameter value")

	// ErrIncompatibleTransition is returned when a transition that is not a
	// single admissible event reaches the rate calculator.
	ErrIncompatibleTransition = errors.New("jointstate: incompatible transition")

	// ErrSymbolOutOfRange indicates a state coordinate outside the alphabet.
	ErrSymbolOutOfRange = errors.New("jointstate: symbol out of range")

	// ErrHeterogeneousShape indicates a state space whose coordinates use
	// alphabets of different sizes, or not exactly four coordinates.
	ErrHeterogeneousShape = errors.New("jointstate: state space must have 4 coordinates over one alphabet")

	// ErrInvalidSeparation indicates a site separation n < 1.
	ErrInvalidSeparation = errors.New("jointstate: site separation must be >= 1")
)

// ConfigError reports a configuration failure detected at partition or
// construction time. errors.Is matches both the specific sentinel in Err and
// ErrConfiguration.
type ConfigError struct {
	Op     string // failing operation, e.g. "Partition"
	Err    error  // specific sentinel
	Detail string // offending model name or lengths
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %v: %s", e.Op, e.Err, e.Detail)
}

// Unwrap exposes the specific sentinel.
func (e *ConfigError) Unwrap() error { return e.Err }

// Is makes every ConfigError match ErrConfiguration.
func (e *ConfigError) Is(target error) bool { return target == ErrConfiguration }

func configErrorf(op string, err error, format string, args ...any) error {
	return &ConfigError{Op: op, Err: err, Detail: fmt.Sprintf(format, args...)}
}
