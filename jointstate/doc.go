// Package jointstate builds the instantaneous rate (generator) matrix of the
// pair-site joint-state model of interlocus gene conversion (IGC) combined
// with point mutation.
//
// 🚀 What is modeled?
//
//	Two paralogs i, j are observed at two sites a, b separated by n sites.
//	A joint state is the 4-tuple (ia, ib, ja, jb) of symbol indices.
//	Point mutation changes one coordinate at a time. IGC copies a contiguous
//	tract from one paralog onto the other; the tract length is geometric
//	with termination probability p, so a tract starting at one modeled site
//	covers the other with probability (1−p)^n.
//
// ✨ Key features:
//   - Transition compatibility predicate (IsCompatible) and event
//     classification (Classify).
//   - Closed-form rates and IGC proportions per transition (TransitionRate).
//   - Brute-force reference enumeration as a restartable iterator
//     (BruteForce / ProcessDefinition) and a structured enumerator that
//     visits only compatible pairs (Successors / StructuredProcessDefinition).
//   - Dense generator materialization (Generator), concurrent assembly over
//     several separations (ProcessDefinitions) and a fingerprint-keyed Cache.
//
// ⚙️ Usage:
//
//	m, err := jointstate.New(x, pointmut.HKY, jointstate.OneRate)
//	if err != nil {
//	  // errors.Is(err, jointstate.ErrConfiguration) for bad names / lengths
//	}
//	pd, err := m.ProcessDefinition(50, false)
//
// Concurrency:
//
//	A *Model is an immutable snapshot. Update returns a new *Model, so any
//	number of goroutines may assemble definitions from one snapshot while
//	another goroutine derives the next one.
package jointstate
