package jointstate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/psjs/jointstate"
)

type js = jointstate.JointState

// TestIsCompatible_Table walks each predicate rule.
func TestIsCompatible_Table(t *testing.T) {
	cases := []struct {
		name string
		from js
		to   js
		want bool
	}{
		{"self", js{0, 1, 2, 3}, js{0, 1, 2, 3}, false},
		{"one coordinate", js{0, 2, 2, 3}, js{0, 2, 2, 1}, true},
		{"one coordinate at site A", js{0, 2, 2, 3}, js{3, 2, 2, 3}, true},
		{"copy paralog 2 onto paralog 1", js{0, 1, 2, 3}, js{2, 3, 2, 3}, true},
		{"copy paralog 1 onto paralog 2", js{0, 1, 2, 3}, js{0, 1, 0, 1}, true},
		{"paralog 1 pair, not a copy", js{0, 1, 2, 3}, js{2, 2, 2, 3}, false},
		{"paralog 2 pair, not a copy", js{0, 1, 2, 3}, js{0, 1, 1, 1}, false},
		{"site A pair", js{0, 1, 2, 3}, js{1, 1, 3, 3}, false},
		{"cross pair {0,3}", js{0, 1, 2, 3}, js{3, 1, 2, 0}, false},
		{"three coordinates", js{0, 1, 2, 3}, js{1, 2, 3, 3}, false},
		{"four coordinates", js{0, 1, 2, 3}, js{3, 2, 1, 0}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := jointstate.IsCompatible(jointstate.Transition{From: tc.from, To: tc.to})
			require.Equal(t, tc.want, got)
		})
	}
}

// TestIsCompatible_NoSelfTransitions checks every state of a four-letter space.
func TestIsCompatible_NoSelfTransitions(t *testing.T) {
	count := 0
	for s := range jointstate.NewShape(4).States() {
		require.False(t, jointstate.IsCompatible(jointstate.Transition{From: s, To: s}), "state %v", s)
		count++
	}
	require.Equal(t, 256, count)
}

// TestOtherPositions checks the fixed adjacency table and its involution:
// the same-paralog neighbor of the same-paralog neighbor is the position itself.
func TestOtherPositions(t *testing.T) {
	want := map[int][3]int{
		0: {1, 2, 3},
		1: {0, 3, 2},
		2: {3, 0, 1},
		3: {2, 1, 0},
	}
	for pos, w := range want {
		nb := jointstate.OtherPositions(pos)
		require.Equal(t, w, [3]int{nb.SameParalogOtherSite, nb.OtherParalogSameSite, nb.OtherParalogOtherSite})
		require.Equal(t, pos, jointstate.OtherPositions(nb.SameParalogOtherSite).SameParalogOtherSite)
		require.Equal(t, pos, jointstate.OtherPositions(nb.OtherParalogSameSite).OtherParalogSameSite)
	}
	require.Panics(t, func() { jointstate.OtherPositions(4) })
	require.Panics(t, func() { jointstate.OtherPositions(-1) })
}

// TestClassify_Kinds covers each event kind.
func TestClassify_Kinds(t *testing.T) {
	cases := []struct {
		from, to js
		want     jointstate.EventKind
	}{
		{js{0, 2, 2, 3}, js{0, 2, 2, 1}, jointstate.EventMutation},
		{js{0, 2, 2, 3}, js{0, 2, 2, 2}, jointstate.EventIGCOrigin},
		{js{0, 2, 0, 3}, js{0, 2, 0, 2}, jointstate.EventIGCHomogeneous},
		{js{0, 1, 2, 3}, js{2, 3, 2, 3}, jointstate.EventTwoSiteCopy},
		{js{0, 1, 2, 3}, js{0, 1, 2, 3}, jointstate.EventIncompatible},
		{js{0, 1, 2, 3}, js{1, 1, 3, 3}, jointstate.EventIncompatible},
	}
	for _, tc := range cases {
		tr := jointstate.Transition{From: tc.from, To: tc.to}
		require.Equal(t, tc.want, jointstate.Classify(tr), "transition %v", tr)
	}
	require.Equal(t, "two-site-copy", jointstate.EventTwoSiteCopy.String())
	require.Equal(t, "EventKind(9)", jointstate.EventKind(9).String())
}

// TestStates_Order verifies lexicographic enumeration and restartability.
func TestStates_Order(t *testing.T) {
	shape := jointstate.NewShape(2)
	var first []js
	for s := range shape.States() {
		first = append(first, s)
	}
	require.Len(t, first, 16)
	require.Equal(t, js{0, 0, 0, 0}, first[0])
	require.Equal(t, js{0, 0, 0, 1}, first[1])
	require.Equal(t, js{1, 1, 1, 1}, first[15])

	var second []js
	for s := range shape.States() {
		second = append(second, s)
	}
	require.Equal(t, first, second)
	require.Equal(t, "(0,0,0,1)", first[1].String())
}
