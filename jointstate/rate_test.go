package jointstate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/psjs/jointstate"
	"github.com/katalvlaran/psjs/pointmut"
)

// TestTractRates_ClosedForm checks the reference scenario at n=50.
func TestTractRates_ClosedForm(t *testing.T) {
	m := mustHKY(t)
	tr, err := m.TractRates(sepN50)
	require.NoError(t, err)

	excl, incl := closedForm(0.3, 1.0/30.0, sepN50)
	require.InDelta(t, excl, tr.ExcludesN, 1e-9)
	require.InDelta(t, incl, tr.IncludesN, 1e-9)
	require.Greater(t, tr.ExcludesN, 0.0)
	require.Greater(t, tr.IncludesN, 0.0)
	// init/p = 9 splits between the two terms.
	require.InDelta(t, 9.0, tr.ExcludesN+tr.IncludesN, 1e-9)
}

// TestTractRates_Limit verifies IncludesN → 0 and ExcludesN → init/p as n grows.
func TestTractRates_Limit(t *testing.T) {
	m := mustHKY(t)
	prev, err := m.TractRates(1)
	require.NoError(t, err)
	for _, n := range []int{2, 10, 100, 1000} {
		tr, err := m.TractRates(n)
		require.NoError(t, err)
		require.Less(t, tr.IncludesN, prev.IncludesN, "n=%d", n)
		require.Greater(t, tr.ExcludesN, prev.ExcludesN, "n=%d", n)
		prev = tr
	}
	far, err := m.TractRates(100000)
	require.NoError(t, err)
	require.InDelta(t, 0.0, far.IncludesN, epsTiny)
	require.InDelta(t, 9.0, far.ExcludesN, 1e-9)
}

// TestTractRates_InvalidSeparation rejects n < 1.
func TestTractRates_InvalidSeparation(t *testing.T) {
	m := mustHKY(t)
	for _, n := range []int{0, -3} {
		_, err := m.TractRates(n)
		require.ErrorIs(t, err, jointstate.ErrInvalidSeparation)
		_, err = m.ProcessDefinition(n, false)
		require.ErrorIs(t, err, jointstate.ErrInvalidSeparation)
		_, err = m.BruteForce(n, true)
		require.ErrorIs(t, err, jointstate.ErrInvalidSeparation)
	}
}

// TestTransitionRate_ReferenceScenario checks (0,2,2,3) → (0,2,2,1) at n=50.
func TestTransitionRate_ReferenceScenario(t *testing.T) {
	m := mustHKY(t)
	tr := jointstate.Transition{From: js{0, 2, 2, 3}, To: js{0, 2, 2, 1}}
	require.True(t, jointstate.IsCompatible(tr))

	qMut, err := m.PointMutation().Rate(pointmut.T, pointmut.C)
	require.NoError(t, err)

	rate, err := m.Rate(tr, sepN50)
	require.NoError(t, err)
	// The new C does not copy paralog 1 at site B (G), so IGC adds nothing.
	require.Equal(t, qMut, rate)

	prop, err := m.Proportion(tr, sepN50)
	require.NoError(t, err)
	require.Equal(t, 0.0, prop)
}

// TestTransitionRate_IGCTerms checks each single-coordinate branch and the
// two-site copy.
func TestTransitionRate_IGCTerms(t *testing.T) {
	m := mustHKY(t)
	tract, err := m.TractRates(sepN50)
	require.NoError(t, err)

	cases := []struct {
		name    string
		tr      jointstate.Transition
		mutFrom int
		mutTo   int
		igc     float64
	}{
		{"heterogeneous source", jointstate.Transition{From: js{0, 2, 2, 3}, To: js{0, 2, 2, 2}}, 3, 2, tract.ExcludesN},
		{"homogeneous source", jointstate.Transition{From: js{0, 2, 0, 3}, To: js{0, 2, 0, 2}}, 3, 2, tract.ExcludesN + tract.IncludesN},
		{"site A of paralog 1", jointstate.Transition{From: js{1, 3, 0, 3}, To: js{0, 3, 0, 3}}, 1, 0, tract.ExcludesN + tract.IncludesN},
		{"plain mutation", jointstate.Transition{From: js{1, 3, 0, 3}, To: js{2, 3, 0, 3}}, 1, 2, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			qMut, err := m.PointMutation().Rate(tc.mutFrom, tc.mutTo)
			require.NoError(t, err)

			rate, err := m.Rate(tc.tr, sepN50)
			require.NoError(t, err)
			require.InDelta(t, qMut+tc.igc, rate, epsTiny)

			prop, err := m.Proportion(tc.tr, sepN50)
			require.NoError(t, err)
			require.InDelta(t, tc.igc/(qMut+tc.igc), prop, epsTiny)
		})
	}

	copyTr := jointstate.Transition{From: js{0, 1, 2, 3}, To: js{0, 1, 0, 1}}
	rate, err := m.Rate(copyTr, sepN50)
	require.NoError(t, err)
	require.Equal(t, tract.IncludesN, rate)
	prop, err := m.Proportion(copyTr, sepN50)
	require.NoError(t, err)
	require.Equal(t, 1.0, prop)
}

// TestTransitionRate_AllCompatible checks the additive decomposition and the
// proportion range over every compatible transition.
func TestTransitionRate_AllCompatible(t *testing.T) {
	m := mustHKY(t)
	for _, n := range []int{1, 7, sepN50} {
		tract, err := m.TractRates(n)
		require.NoError(t, err)
		seq, err := m.BruteForce(n, false)
		require.NoError(t, err)
		for tr, rate := range seq {
			prop, err := m.Proportion(tr, n)
			require.NoError(t, err)
			require.GreaterOrEqual(t, prop, 0.0)
			require.LessOrEqual(t, prop, 1.0)

			switch countDiff(tr) {
			case 1:
				pos := 0
				for tr.From[pos] == tr.To[pos] {
					pos++
				}
				qMut, err := m.PointMutation().Rate(tr.From[pos], tr.To[pos])
				require.NoError(t, err)
				igc := rate - qMut
				ok := closeTo(igc, 0) || closeTo(igc, tract.ExcludesN) || closeTo(igc, tract.ExcludesN+tract.IncludesN)
				require.True(t, ok, "transition %v: igc contribution %g", tr, igc)
			case 2:
				require.Equal(t, tract.IncludesN, rate, "transition %v", tr)
				require.Equal(t, 1.0, prop, "transition %v", tr)
			default:
				t.Fatalf("transition %v changes %d coordinates", tr, countDiff(tr))
			}
		}
	}
}

func closeTo(a, b float64) bool {
	d := a - b
	return d < 1e-12 && d > -1e-12
}

// TestTransitionRate_Errors covers invariant violations surfaced as errors.
func TestTransitionRate_Errors(t *testing.T) {
	m := mustHKY(t)

	_, err := m.Rate(jointstate.Transition{From: js{0, 1, 2, 3}, To: js{0, 1, 2, 3}}, 1)
	require.ErrorIs(t, err, jointstate.ErrIncompatibleTransition)

	_, err = m.Rate(jointstate.Transition{From: js{0, 1, 2, 3}, To: js{1, 1, 3, 3}}, 1)
	require.ErrorIs(t, err, jointstate.ErrIncompatibleTransition)

	_, err = m.Rate(jointstate.Transition{From: js{0, 1, 2, 3}, To: js{0, 1, 2, 4}}, 1)
	require.ErrorIs(t, err, jointstate.ErrSymbolOutOfRange)

	_, err = m.Rate(jointstate.Transition{From: js{0, 1, 2, 3}, To: js{0, 1, 2, 0}}, 0)
	require.ErrorIs(t, err, jointstate.ErrInvalidSeparation)

	var zero jointstate.Model
	_, err = zero.TractRates(1)
	require.ErrorIs(t, err, jointstate.ErrUnsupportedIGC)
	require.ErrorIs(t, err, jointstate.ErrConfiguration)
}

// TestUpdate_Snapshot verifies Update leaves the receiver untouched.
func TestUpdate_Snapshot(t *testing.T) {
	m := mustHKY(t)
	tr := jointstate.Transition{From: js{0, 2, 0, 3}, To: js{0, 2, 0, 2}}
	before, err := m.Rate(tr, sepN50)
	require.NoError(t, err)

	next, err := m.Update(logOf(0.3, 0.5, 0.2, 9.5, 0.6, 0.1))
	require.NoError(t, err)

	after, err := m.Rate(tr, sepN50)
	require.NoError(t, err)
	require.Equal(t, before, after)

	changed, err := next.Rate(tr, sepN50)
	require.NoError(t, err)
	require.NotEqual(t, before, changed)
	require.Equal(t, hkyParams(), m.Params())
	require.NotEqual(t, m.Fingerprint(), next.Fingerprint())

	_, err = m.Update(hkyParams()[:3])
	require.ErrorIs(t, err, jointstate.ErrParamLength)
	require.ErrorIs(t, err, jointstate.ErrConfiguration)
}
