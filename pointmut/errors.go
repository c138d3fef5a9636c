package pointmut

import "errors"

var (
	// ErrUnsupportedModel is returned when a model name is not registered.
	ErrUnsupportedModel = errors.New("pointmut: unsupported point mutation model")

	// ErrParamLength indicates a parameter slice whose length differs from Spec.NumParams.
	ErrParamLength = errors.New("pointmut: parameter vector length mismatch")

	// ErrForceIndex indicates a force-map key outside [0, NumParams).
	ErrForceIndex = errors.New("pointmut: force index out of range")

	// ErrInvalidParameter indicates parameters that do not describe a valid
	// rate table (negative frequency, non-positive kappa, NaN...).
	ErrInvalidParameter = errors.New("pointmut: invalid parameter value")

	// ErrSymbolOutOfRange indicates a symbol index outside the model alphabet.
	ErrSymbolOutOfRange = errors.New("pointmut: symbol out of range")

	// ErrInvalidSpec is returned by Register for incomplete specs.
	ErrInvalidSpec = errors.New("pointmut: invalid model spec")

	// ErrDuplicateModel is returned by Register when the name is taken.
	ErrDuplicateModel = errors.New("pointmut: model already registered")
)
