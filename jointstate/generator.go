package jointstate

import (
	"fmt"

	"github.com/katalvlaran/psjs/matrix"
)

// StateIndex maps a joint state to its row in the dense generator:
// ((ia·k + ib)·k + ja)·k + jb for alphabet k.
func (m *Model) StateIndex(s JointState) (int, error) {
	idx := 0
	for i, v := range s {
		if v < 0 || v >= m.alphabet {
			return 0, fmt.Errorf("StateIndex %v: coordinate %d: %w", s, i, ErrSymbolOutOfRange)
		}
		idx = idx*m.alphabet + v
	}

	return idx, nil
}

// StateAt is the inverse of StateIndex.
func (m *Model) StateAt(idx int) (JointState, error) {
	if idx < 0 || idx >= m.shape.Size() {
		return JointState{}, fmt.Errorf("StateAt(%d): %w", idx, ErrSymbolOutOfRange)
	}
	var s JointState
	for i := NumCoords - 1; i >= 0; i-- {
		s[i] = idx % m.alphabet
		idx /= m.alphabet
	}

	return s, nil
}

// Generator materializes the dense alphabet^4 × alphabet^4 generator matrix
// at separation n: off-diagonal entries from the process definition,
// diagonal = −row sum. Intended for small alphabets.
func (m *Model) Generator(n int) (*matrix.Dense, error) {
	pd, err := m.StructuredProcessDefinition(n, false)
	if err != nil {
		return nil, err
	}
	size := m.shape.Size()
	g, err := matrix.NewDense(size, size)
	if err != nil {
		return nil, fmt.Errorf("Generator: %w", err)
	}
	var row, col int
	for t, v := range pd.All() {
		if row, err = m.StateIndex(t.From); err != nil {
			return nil, err
		}
		if col, err = m.StateIndex(t.To); err != nil {
			return nil, err
		}
		if err = g.Set(row, col, v); err != nil {
			return nil, fmt.Errorf("Generator %v: %w", t, err)
		}
	}
	if err = matrix.FillDiagonalFromRows(g); err != nil {
		return nil, fmt.Errorf("Generator: %w", err)
	}

	return g, nil
}
