package jointstate

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Coordinate layout of a JointState: (paralog 1, paralog 2) × (site A, site B).
const (
	Paralog1SiteA = iota
	Paralog1SiteB
	Paralog2SiteA
	Paralog2SiteB

	// NumCoords is the dimensionality of the joint state space.
	NumCoords
)

// JointState is the tuple (ia, ib, ja, jb) of symbol indices.
type JointState [NumCoords]int

// String renders the state as "(ia,ib,ja,jb)".
func (s JointState) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, v := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d", v)
	}
	b.WriteByte(')')

	return b.String()
}

// compareStates orders states lexicographically, last coordinate fastest.
func compareStates(a, b JointState) int {
	for i := range a {
		if c := cmp.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}

	return 0
}

// Transition is an ordered (From, To) pair of joint states.
type Transition struct {
	From JointState
	To   JointState
}

// String renders the transition as "(..)->(..)".
func (t Transition) String() string { return t.From.String() + "->" + t.To.String() }

// StateSpaceShape lists the alphabet size of every coordinate.
// Only homogeneous four-coordinate shapes are supported.
type StateSpaceShape []int

// NewShape returns the homogeneous shape for the given alphabet size.
func NewShape(alphabet int) StateSpaceShape {
	s := make(StateSpaceShape, NumCoords)
	for i := range s {
		s[i] = alphabet
	}

	return s
}

// Alphabet validates homogeneity and returns the common alphabet size.
func (s StateSpaceShape) Alphabet() (int, error) {
	if len(s) != NumCoords || s[0] <= 0 {
		return 0, fmt.Errorf("shape %v: %w", []int(s), ErrHeterogeneousShape)
	}
	for _, a := range s[1:] {
		if a != s[0] {
			return 0, fmt.Errorf("shape %v: %w", []int(s), ErrHeterogeneousShape)
		}
	}

	return s[0], nil
}

// Size returns the number of joint states (alphabet^4) of a homogeneous shape.
func (s StateSpaceShape) Size() int {
	n := 1
	for _, a := range s {
		n *= a
	}

	return n
}

// States yields every joint state in lexicographic order (last coordinate
// fastest). The sequence is restartable.
func (s StateSpaceShape) States() iter.Seq[JointState] {
	shape := slices.Clone(s)
	return func(yield func(JointState) bool) {
		if len(shape) != NumCoords {
			return
		}
		for _, a := range shape {
			if a <= 0 {
				return
			}
		}
		var st JointState
		for {
			if !yield(st) {
				return
			}
			// Odometer increment from the last coordinate.
			i := NumCoords - 1
			for ; i >= 0; i-- {
				st[i]++
				if st[i] < shape[i] {
					break
				}
				st[i] = 0
			}
			if i < 0 {
				return
			}
		}
	}
}

// ForceMap pins parameters of the combined log-scale vector by global index.
type ForceMap map[int]float64

// ProcessDefinition is the coordinate-list form of a sparse generator matrix
// for one site separation: entry k is the rate (or IGC weight) of the
// transition RowStates[k] → ColumnStates[k]. Exactly one of TransitionRates
// and Weights is populated.
type ProcessDefinition struct {
	RowStates       []JointState `json:"row_states" yaml:"row_states"`
	ColumnStates    []JointState `json:"column_states" yaml:"column_states"`
	TransitionRates []float64    `json:"transition_rates,omitempty" yaml:"transition_rates,omitempty"`
	Weights         []float64    `json:"weights,omitempty" yaml:"weights,omitempty"`
}

// IsWeights reports whether the definition carries IGC proportions.
func (p ProcessDefinition) IsWeights() bool { return p.Weights != nil }

// Values returns whichever third sequence is populated.
func (p ProcessDefinition) Values() []float64 {
	if p.Weights != nil {
		return p.Weights
	}

	return p.TransitionRates
}

// Len returns the number of entries.
func (p ProcessDefinition) Len() int { return len(p.RowStates) }

// Clone returns a deep copy.
func (p ProcessDefinition) Clone() ProcessDefinition {
	return ProcessDefinition{
		RowStates:       slices.Clone(p.RowStates),
		ColumnStates:    slices.Clone(p.ColumnStates),
		TransitionRates: slices.Clone(p.TransitionRates),
		Weights:         slices.Clone(p.Weights),
	}
}

// All yields (transition, value) pairs in entry order.
func (p ProcessDefinition) All() iter.Seq2[Transition, float64] {
	vals := p.Values()
	return func(yield func(Transition, float64) bool) {
		for k := range p.RowStates {
			if !yield(Transition{From: p.RowStates[k], To: p.ColumnStates[k]}, vals[k]) {
				return
			}
		}
	}
}
