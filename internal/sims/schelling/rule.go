package schelling

import "schelling/internal/core"

// Rule decides whether an agent is content with its neighborhood.
type Rule struct {
	Threshold float64
}

// Unsatisfied reports whether an agent with the given neighbor counts wants
// to move. An agent without occupied neighbors is always satisfied, and a
// like fraction exactly at the threshold counts as satisfied.
func (r Rule) Unsatisfied(similar, different int) bool {
	total := similar + different
	if total == 0 {
		return false
	}
	return float64(similar)/float64(total) < r.Threshold
}

// countNeighbors tallies the occupied in-bounds Moore neighbors of c that
// share or differ from c's race in cells. Empty and out-of-grid neighbors
// are skipped.
func countNeighbors(cells []Race, size core.Size, c core.Cell) (similar, different int) {
	race := cells[size.Index(c)]
	for _, d := range core.Moore {
		n := core.Cell{X: c.X + d.X, Y: c.Y + d.Y}
		if !size.Contains(n) {
			continue
		}
		other := cells[size.Index(n)]
		switch {
		case other == noAgent:
		case other == race:
			similar++
		default:
			different++
		}
	}
	return similar, different
}

// similarityRatio is the like-neighbor fraction used by the aggregate
// metric. Isolated agents count as fully similar.
func similarityRatio(similar, different int) float64 {
	total := similar + different
	if total == 0 {
		return 1
	}
	return float64(similar) / float64(total)
}
