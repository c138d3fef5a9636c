// Package pointmut implements single-locus point-mutation substitution models.
//
// A point-mutation model is identified by name (e.g. "HKY"), owns a fixed
// number of log-scale parameters and exposes the instantaneous rate table
// Q[from][to] over its alphabet. Models are immutable snapshots: Update
// returns a new *Model and never touches the receiver, so a *Model may be
// shared freely between goroutines.
//
// ⚙️ Usage:
//
//	m, err := pointmut.New(pointmut.HKY, x, nil)
//	if err != nil {
//	  // handle ErrUnsupportedModel / ErrParamLength / ErrInvalidParameter
//	}
//	q, _ := m.Rate(3, 1) // T -> C
//
// New models plug in through Register with a Spec describing the parameter
// count, alphabet size and the rate-table builder.
package pointmut
