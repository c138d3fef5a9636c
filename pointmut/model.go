package pointmut

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/katalvlaran/psjs/matrix"
)

// Model is an immutable point-mutation model snapshot.
//
// Fields:
//   - spec : the registered Spec the model was built from.
//   - x    : log-scale parameters after force overrides.
//   - force: index → log-scale value pinned on every update (may be nil).
//   - q    : Alphabet×Alphabet generator, diagonal = −row sum.
type Model struct {
	spec  Spec
	x     []float64
	force map[int]float64
	q     *matrix.Dense
}

// New builds the named model from its log-scale parameter slice.
// Force entries pin x[index] to the given log-scale value, here and on every
// later Update.
//
// Errors:
//   - ErrUnsupportedModel, ErrParamLength, ErrForceIndex, ErrInvalidParameter.
func New(name string, x []float64, force map[int]float64) (*Model, error) {
	spec, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	for idx := range force {
		if idx < 0 || idx >= spec.NumParams {
			return nil, fmt.Errorf("New(%q): force[%d]: %w", name, idx, ErrForceIndex)
		}
	}
	m := &Model{spec: spec}
	if len(force) > 0 {
		m.force = maps.Clone(force)
	}

	return m.Update(x)
}

// Update returns a new Model with parameters x; the receiver is unchanged.
//
// Errors:
//   - ErrParamLength, ErrInvalidParameter.
//
// Complexity:
//   - Time O(k²) for an alphabet of size k.
func (m *Model) Update(x []float64) (*Model, error) {
	if len(x) != m.spec.NumParams {
		return nil, fmt.Errorf("Update(%q): got %d parameters, want %d: %w",
			m.spec.Name, len(x), m.spec.NumParams, ErrParamLength)
	}
	nx := slices.Clone(x)
	for idx, v := range m.force {
		nx[idx] = v
	}
	theta := make([]float64, len(nx))
	for i, v := range nx {
		theta[i] = math.Exp(v)
	}
	q, err := m.spec.Rates(theta)
	if err != nil {
		return nil, fmt.Errorf("Update(%q): %w", m.spec.Name, err)
	}
	if q.Rows() != m.spec.Alphabet || q.Cols() != m.spec.Alphabet {
		return nil, fmt.Errorf("Update(%q): rate table %dx%d: %w",
			m.spec.Name, q.Rows(), q.Cols(), matrix.ErrDimensionMismatch)
	}
	if err = matrix.FillDiagonalFromRows(q); err != nil {
		return nil, fmt.Errorf("Update(%q): %w", m.spec.Name, err)
	}
	if err = matrix.ValidateGenerator(q, matrix.DefaultGeneratorTol); err != nil {
		return nil, fmt.Errorf("Update(%q): %w", m.spec.Name, err)
	}

	return &Model{spec: m.spec, x: nx, force: m.force, q: q}, nil
}

// Name returns the registered model name.
func (m *Model) Name() string { return m.spec.Name }

// Alphabet returns the number of symbols.
func (m *Model) Alphabet() int { return m.spec.Alphabet }

// NumParams returns the parameter count of the model.
func (m *Model) NumParams() int { return m.spec.NumParams }

// Params returns a copy of the effective log-scale parameters.
func (m *Model) Params() []float64 { return slices.Clone(m.x) }

// Force returns a copy of the force map, nil when unconstrained.
func (m *Model) Force() map[int]float64 {
	if m.force == nil {
		return nil
	}

	return maps.Clone(m.force)
}

// Q returns a copy of the generator matrix.
func (m *Model) Q() *matrix.Dense { return m.q.Clone().(*matrix.Dense) }

// Rate returns Q[from][to].
//
// Errors:
//   - ErrSymbolOutOfRange when from or to is outside [0, Alphabet).
func (m *Model) Rate(from, to int) (float64, error) {
	if from < 0 || from >= m.spec.Alphabet || to < 0 || to >= m.spec.Alphabet {
		return 0, fmt.Errorf("Rate(%d,%d): %w", from, to, ErrSymbolOutOfRange)
	}

	return m.q.At(from, to)
}
