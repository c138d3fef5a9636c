package pointmut

import (
	"fmt"
	"math"

	"github.com/katalvlaran/psjs/matrix"
)

// HKY is the name of the Hasegawa–Kishino–Yano nucleotide model.
const HKY = "HKY"

// Nucleotide indices in the fixed ACGT order used by every nucleotide model.
const (
	A = iota
	C
	G
	T
)

// Nucleotides is the symbol string for the nucleotide alphabet (index order).
const Nucleotides = "ACGT"

// hkyParams is the HKY parameter count:
// log([freq(A)+freq(G), A share of purines, C share of pyrimidines, kappa]).
const hkyParams = 4

var hkySpec = Spec{
	Name:      HKY,
	NumParams: hkyParams,
	Alphabet:  len(Nucleotides),
	Rates:     hkyRates,
}

// HKYFrequencies expands the purine-share parametrization into stationary
// frequencies (A, C, G, T).
func HKYFrequencies(pAG, pA, pC float64) [4]float64 {
	return [4]float64{
		A: pAG * pA,
		C: (1 - pAG) * pC,
		G: pAG * (1 - pA),
		T: (1 - pAG) * (1 - pC),
	}
}

// isTransition reports whether i<->j is a purine or pyrimidine swap (A<->G, C<->T).
func isTransition(i, j int) bool {
	return (i == A && j == G) || (i == G && j == A) || (i == C && j == T) || (i == T && j == C)
}

// hkyRates builds the HKY rate table normalized to one expected substitution
// per unit time. theta = (pAG, pA, pC, kappa) on the natural scale.
func hkyRates(theta []float64) (*matrix.Dense, error) {
	if len(theta) != hkyParams {
		return nil, fmt.Errorf("hkyRates: %w", ErrParamLength)
	}
	for i, v := range theta {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("hkyRates: theta[%d]=%g: %w", i, v, ErrInvalidParameter)
		}
	}
	kappa := theta[3]
	if kappa <= 0 {
		return nil, fmt.Errorf("hkyRates: kappa=%g: %w", kappa, ErrInvalidParameter)
	}
	pi := HKYFrequencies(theta[0], theta[1], theta[2])
	for i, f := range pi {
		if f < 0 {
			return nil, fmt.Errorf("hkyRates: freq(%c)=%g: %w", Nucleotides[i], f, ErrInvalidParameter)
		}
	}

	rows := make([][]float64, len(pi))
	var expected float64
	for i := range pi {
		rows[i] = make([]float64, len(pi))
		for j := range pi {
			if i == j {
				continue
			}
			r := pi[j]
			if isTransition(i, j) {
				r *= kappa
			}
			rows[i][j] = r
			expected += pi[i] * r
		}
	}
	if expected <= 0 {
		return nil, fmt.Errorf("hkyRates: expected rate %g: %w", expected, ErrInvalidParameter)
	}
	q, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("hkyRates: %w", err)
	}
	if err = q.Apply(func(_, _ int, v float64) float64 { return v / expected }); err != nil {
		return nil, fmt.Errorf("hkyRates: %w", err)
	}

	return q, nil
}
