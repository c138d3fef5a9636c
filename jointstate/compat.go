package jointstate

// diffPositions returns the coordinates where from and to differ, ascending.
func diffPositions(from, to JointState) (pos [NumCoords]int, n int) {
	for i := range from {
		if from[i] != to[i] {
			pos[n] = i
			n++
		}
	}

	return pos, n
}

// isTractCopy reports whether a two-coordinate change {p0, p1} copies both
// sites of one paralog from the other paralog.
func isTractCopy(from, to JointState, p0, p1 int) bool {
	switch {
	case p0 == Paralog1SiteA && p1 == Paralog1SiteB:
		return to[Paralog1SiteA] == from[Paralog2SiteA] && to[Paralog1SiteB] == from[Paralog2SiteB]
	case p0 == Paralog2SiteA && p1 == Paralog2SiteB:
		return to[Paralog2SiteA] == from[Paralog1SiteA] && to[Paralog2SiteB] == from[Paralog1SiteB]
	default:
		return false
	}
}

// IsCompatible reports whether t is a single admissible event:
//   - self-transitions are excluded;
//   - any one-coordinate change is admissible (point mutation or single-site IGC);
//   - a two-coordinate change is admissible only when it rewrites both sites of
//     one paralog with the other paralog's values (whole-tract IGC copy);
//   - three or more changed coordinates are never admissible.
func IsCompatible(t Transition) bool {
	pos, n := diffPositions(t.From, t.To)
	switch n {
	case 1:
		return true
	case 2:
		return isTractCopy(t.From, t.To, pos[0], pos[1])
	default:
		return false
	}
}
