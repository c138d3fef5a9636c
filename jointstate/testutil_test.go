package jointstate_test

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/psjs/jointstate"
	"github.com/katalvlaran/psjs/matrix"
	"github.com/katalvlaran/psjs/pointmut"
)

const (
	// epsTiny is the tolerance for closed-form comparisons.
	epsTiny = 1e-12

	// binaryModel is a two-symbol point-mutation model registered for tests.
	binaryModel = "jointstate-test-binary"

	// sepN50 is the separation of the reference HKY scenario.
	sepN50 = 50
)

var registerBinary sync.Once

// ensureBinary registers binaryModel: rate a for 0→1 and b for 1→0.
func ensureBinary(t testing.TB) {
	t.Helper()
	registerBinary.Do(func() {
		err := pointmut.Register(pointmut.Spec{
			Name:      binaryModel,
			NumParams: 2,
			Alphabet:  2,
			Rates: func(theta []float64) (*matrix.Dense, error) {
				return matrix.NewDenseFromRows([][]float64{{0, theta[0]}, {theta[1], 0}})
			},
		})
		if err != nil && !errors.Is(err, pointmut.ErrDuplicateModel) {
			t.Fatalf("register binary model: %v", err)
		}
	})
}

// logOf maps natural-scale values to log scale.
func logOf(v ...float64) []float64 {
	out := make([]float64, len(v))
	for i := range v {
		out[i] = math.Log(v[i])
	}
	return out
}

// hkyParams is the reference vector log([0.3,0.5,0.2,9.5]) ++ log([0.3,1/30]).
func hkyParams() []float64 {
	return logOf(0.3, 0.5, 0.2, 9.5, 0.3, 1.0/30.0)
}

// mustHKY builds the reference HKY + "One rate" model.
func mustHKY(t testing.TB, opts ...jointstate.Option) *jointstate.Model {
	t.Helper()
	m, err := jointstate.New(hkyParams(), pointmut.HKY, jointstate.OneRate, opts...)
	require.NoError(t, err)
	return m
}

// mustBinary builds a two-symbol model with mutation rates (a, b) and IGC (initRate, p).
func mustBinary(t testing.TB, a, b, initRate, p float64) *jointstate.Model {
	t.Helper()
	ensureBinary(t)
	m, err := jointstate.New(logOf(a, b, initRate, p), binaryModel, jointstate.OneRate)
	require.NoError(t, err)
	return m
}

// closedForm evaluates the tract rates directly.
func closedForm(initRate, p float64, n int) (excl, incl float64) {
	stay := math.Pow(1-p, float64(n))
	return initRate / p * (1 - stay), initRate / p * stay
}

// countDiff counts differing coordinates.
func countDiff(t jointstate.Transition) int {
	n := 0
	for i := range t.From {
		if t.From[i] != t.To[i] {
			n++
		}
	}
	return n
}
