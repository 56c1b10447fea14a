package schelling

// CalculateSimilarity returns the mean like-neighbor fraction over all
// agents. Unlike the satisfaction rule, an agent with no occupied neighbors
// contributes a ratio of 1.
func (w *World) CalculateSimilarity() (float64, error) {
	if w.agents.len() == 0 {
		return 0, ErrNoAgents
	}
	size := w.grid.size
	var sum float64
	for idx, race := range w.agents.cells {
		if race == noAgent {
			continue
		}
		sum += similarityRatio(countNeighbors(w.agents.cells, size, size.At(idx)))
	}
	return sum / float64(w.agents.len()), nil
}

// Unsatisfied counts the agents that would move if a round ran now.
func (w *World) Unsatisfied() int {
	size := w.grid.size
	n := 0
	for idx, race := range w.agents.cells {
		if race == noAgent {
			continue
		}
		if w.rule.Unsatisfied(countNeighbors(w.agents.cells, size, size.At(idx))) {
			n++
		}
	}
	return n
}

// RaceCounts returns the number of agents per race; index 0 is race 1.
func (w *World) RaceCounts() []int {
	counts := make([]int, w.cfg.Races)
	for _, race := range w.agents.cells {
		if race != noAgent {
			counts[race-1]++
		}
	}
	return counts
}
