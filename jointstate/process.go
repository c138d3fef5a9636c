package jointstate

import (
	"fmt"
	"iter"
	"slices"
	"sync"
)

// newDefinition allocates an empty definition with the third sequence chosen
// by the proportion flag.
func newDefinition(capacity int, proportion bool) ProcessDefinition {
	pd := ProcessDefinition{
		RowStates:    make([]JointState, 0, capacity),
		ColumnStates: make([]JointState, 0, capacity),
	}
	if proportion {
		pd.Weights = make([]float64, 0, capacity)
	} else {
		pd.TransitionRates = make([]float64, 0, capacity)
	}

	return pd
}

func (p *ProcessDefinition) add(t Transition, v float64) {
	p.RowStates = append(p.RowStates, t.From)
	p.ColumnStates = append(p.ColumnStates, t.To)
	if p.Weights != nil {
		p.Weights = append(p.Weights, v)
	} else {
		p.TransitionRates = append(p.TransitionRates, v)
	}
}

// mustRate scores a transition already known to be compatible and in range.
// Failure here is a logic defect.
func (m *Model) mustRate(t Transition, n int, proportion bool) float64 {
	v, err := m.TransitionRate(t, n, proportion)
	if err != nil {
		panic(fmt.Sprintf("jointstate: scoring compatible transition %v: %v", t, err))
	}

	return v
}

// BruteForce returns the reference enumeration of every compatible
// transition at separation n: the full cartesian product of the state space
// for both endpoints, filtered by IsCompatible and scored by TransitionRate.
// Order is lexicographic in (From, To). The sequence is lazy and restartable.
//
// It visits alphabet^8 candidate pairs and exists for correctness checks;
// see StructuredProcessDefinition for the direct enumeration.
//
// Errors:
//   - ErrInvalidSeparation when n < 1.
func (m *Model) BruteForce(n int, proportion bool) (iter.Seq2[Transition, float64], error) {
	if _, err := m.TractRates(n); err != nil {
		return nil, err
	}
	states := m.shape.States()

	return func(yield func(Transition, float64) bool) {
		for from := range states {
			for to := range states {
				t := Transition{From: from, To: to}
				if !IsCompatible(t) {
					continue
				}
				if !yield(t, m.mustRate(t, n, proportion)) {
					return
				}
			}
		}
	}, nil
}

// ProcessDefinition assembles the brute-force enumeration at separation n
// into row/column/value sequences. The value sequence is Weights when
// proportion is set and TransitionRates otherwise.
//
// Complexity: O(alphabet^8) candidate pairs.
func (m *Model) ProcessDefinition(n int, proportion bool) (ProcessDefinition, error) {
	seq, err := m.BruteForce(n, proportion)
	if err != nil {
		return ProcessDefinition{}, err
	}
	pd := newDefinition(m.expectedEntries(), proportion)
	for t, v := range seq {
		pd.add(t, v)
	}
	m.logger.Debug().
		Int("n", n).
		Bool("proportion", proportion).
		Int("entries", pd.Len()).
		Msg("brute-force process definition assembled")

	return pd, nil
}

// expectedEntries is the number of compatible transitions for a homogeneous
// alphabet k: four single-coordinate changes with k−1 targets each from every
// state, plus two tract copies from each of the k²(k−1)² states whose
// paralogs differ at both sites.
func (m *Model) expectedEntries() int {
	k := m.alphabet
	states := k * k * k * k

	return states*NumCoords*(k-1) + 2*k*k*(k-1)*(k-1)
}

// Successors returns every state reachable from `from` by one compatible
// transition, in lexicographic order, without scanning the state space.
func (m *Model) Successors(from JointState) []JointState {
	out := make([]JointState, 0, NumCoords*(m.alphabet-1)+2)
	for pos := 0; pos < NumCoords; pos++ {
		for sym := 0; sym < m.alphabet; sym++ {
			if sym == from[pos] {
				continue
			}
			to := from
			to[pos] = sym
			out = append(out, to)
		}
	}
	if from[Paralog1SiteA] != from[Paralog2SiteA] && from[Paralog1SiteB] != from[Paralog2SiteB] {
		out = append(out,
			JointState{from[Paralog2SiteA], from[Paralog2SiteB], from[Paralog2SiteA], from[Paralog2SiteB]},
			JointState{from[Paralog1SiteA], from[Paralog1SiteB], from[Paralog1SiteA], from[Paralog1SiteB]},
		)
	}
	slices.SortFunc(out, compareStates)

	return out
}

// StructuredProcessDefinition builds the same definition as ProcessDefinition
// by enumerating Successors of every state directly. Entry order is identical.
//
// Complexity: O(alphabet^4 · alphabet log alphabet).
func (m *Model) StructuredProcessDefinition(n int, proportion bool) (ProcessDefinition, error) {
	if _, err := m.TractRates(n); err != nil {
		return ProcessDefinition{}, err
	}
	pd := newDefinition(m.expectedEntries(), proportion)
	for from := range m.shape.States() {
		for _, to := range m.Successors(from) {
			t := Transition{From: from, To: to}
			pd.add(t, m.mustRate(t, n, proportion))
		}
	}
	m.logger.Debug().
		Int("n", n).
		Bool("proportion", proportion).
		Int("entries", pd.Len()).
		Msg("structured process definition assembled")

	return pd, nil
}

// ProcessDefinitions assembles one structured definition per separation in
// ns, concurrently. Results are index-aligned with ns. All separations are
// validated before any goroutine starts.
func (m *Model) ProcessDefinitions(ns []int, proportion bool) ([]ProcessDefinition, error) {
	for _, n := range ns {
		if n < 1 {
			return nil, fmt.Errorf("ProcessDefinitions(%d): %w", n, ErrInvalidSeparation)
		}
	}
	out := make([]ProcessDefinition, len(ns))
	errs := make([]error, len(ns))
	var wg sync.WaitGroup
	wg.Add(len(ns))
	for i, n := range ns {
		go func(i, n int) {
			defer wg.Done()
			out[i], errs[i] = m.StructuredProcessDefinition(n, proportion)
		}(i, n)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}
