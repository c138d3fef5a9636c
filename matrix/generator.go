// SPDX-License-Identifier: MIT

package matrix

// RowSums returns the sum of the off-diagonal entries of every row of a square
// matrix. The diagonal is skipped so the result is independent of whatever the
// diagonal currently holds.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(n²).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, err
	}
	sums := make([]float64, m.Rows())
	// Fast path: flat loop over the Dense buffer.
	if d, ok := m.(*Dense); ok {
		d.Do(func(i, j int, v float64) bool {
			if i != j {
				sums[i] += v
			}
			return true
		})

		return sums, nil
	}
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if i == j {
				continue
			}
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			sums[i] += v
		}
	}

	return sums, nil
}

// FillDiagonalFromRows sets every diagonal entry to minus the sum of the
// off-diagonal entries in its row, closing a table of rates into a generator.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (numeric policy).
// Complexity: O(n²).
func FillDiagonalFromRows(m Matrix) error {
	sums, err := RowSums(m)
	if err != nil {
		return err
	}
	for i, s := range sums {
		if err = m.Set(i, i, -s); err != nil {
			return err
		}
	}

	return nil
}
