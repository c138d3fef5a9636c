package jointstate

import "fmt"

// Neighbors relates one coordinate of a JointState to the other three.
type Neighbors struct {
	SameParalogOtherSite  int
	OtherParalogSameSite  int
	OtherParalogOtherSite int
}

var neighborTable = [NumCoords]Neighbors{
	Paralog1SiteA: {Paralog1SiteB, Paralog2SiteA, Paralog2SiteB},
	Paralog1SiteB: {Paralog1SiteA, Paralog2SiteB, Paralog2SiteA},
	Paralog2SiteA: {Paralog2SiteB, Paralog1SiteA, Paralog1SiteB},
	Paralog2SiteB: {Paralog2SiteA, Paralog1SiteB, Paralog1SiteA},
}

// OtherPositions returns the adjacency triple of coordinate pos.
// pos outside [0, NumCoords) is a programmer error and panics.
func OtherPositions(pos int) Neighbors {
	if pos < 0 || pos >= NumCoords {
		panic(fmt.Sprintf("jointstate: OtherPositions: position %d out of range", pos))
	}

	return neighborTable[pos]
}
