package jointstate

import (
	"math"
	"slices"
)

// IGCModel names an IGC parameterization. The set is closed: only the names
// in SupportedIGC are accepted.
type IGCModel string

// OneRate is the single-initiation-rate IGC model with parameters
// log(initiation rate), log(tract termination probability p).
const OneRate IGCModel = "One rate"

// TractRates are the two closed-form IGC rates for a site separation n.
//
//	ExcludesN = init/p · (1 − (1−p)^n)  tract covers the origin site only
//	IncludesN = init/p · (1−p)^n        tract covers the origin and the site at distance n
type TractRates struct {
	ExcludesN float64
	IncludesN float64
}

// igcSpec is the dispatch entry of one IGC parameterization.
type igcSpec struct {
	numParams int
	// validate checks natural-scale parameters.
	validate func(theta []float64) bool
	// tract computes the rates for separation n >= 1.
	tract func(theta []float64, n int) TractRates
}

var igcModels = map[IGCModel]igcSpec{
	OneRate: {
		numParams: 2,
		validate:  oneRateValid,
		tract:     oneRateTract,
	},
}

// SupportedIGC lists the implemented IGC parameterizations.
func SupportedIGC() []IGCModel {
	out := make([]IGCModel, 0, len(igcModels))
	for name := range igcModels {
		out = append(out, name)
	}
	slices.Sort(out)

	return out
}

func oneRateValid(theta []float64) bool {
	for _, v := range theta {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	// init >= 0 always holds on the exp scale; p must be a probability.
	return theta[1] > 0 && theta[1] <= 1
}

func oneRateTract(theta []float64, n int) TractRates {
	initRate, p := theta[0], theta[1]
	stay := math.Pow(1-p, float64(n))

	return TractRates{
		ExcludesN: initRate / p * (1 - stay),
		IncludesN: initRate / p * stay,
	}
}
