// Package psjs is the root of the pair-site joint-state (PSJS) rate model for
// interlocus gene conversion (IGC) combined with point mutation.
//
// 🚀 What is psjs?
//
//	Two paralogous sequences are observed at two sites separated by n
//	positions. Their joint nucleotide state (ia, ib, ja, jb) evolves as a
//	continuous-time Markov process driven by point mutation at one
//	coordinate and by IGC copying a geometric-length tract from one paralog
//	onto the other. This module builds that process's generator matrix.
//
// Under the hood, everything is organized under four subpackages:
//
//	matrix/     dense row-major storage and generator validators
//	pointmut/   single-locus point-mutation models (HKY) behind a named registry
//	jointstate/ compatibility predicate, closed-form IGC rates, process definitions
//	config/     YAML / TOML model configuration
//
// Quick example:
//
//	m, _ := jointstate.New(x, pointmut.HKY, jointstate.OneRate)
//	pd, _ := m.ProcessDefinition(50, false) // row_states, column_states, transition_rates
//
//	go get github.com/katalvlaran/psjs
package psjs
