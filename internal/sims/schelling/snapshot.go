package schelling

import "schelling/internal/core"

// Snapshot is a read-only copy of the grid for renderers and reports.
type Snapshot struct {
	Size   core.Size
	Races  int
	Agents map[core.Cell]Race
	Empty  []core.Cell
}

// Snapshot copies the current agent positions and empty cells. Empty cells
// are listed in row-major order.
func (w *World) Snapshot() Snapshot {
	size := w.grid.size
	s := Snapshot{
		Size:   size,
		Races:  w.cfg.Races,
		Agents: make(map[core.Cell]Race, w.agents.len()),
		Empty:  make([]core.Cell, 0, w.grid.emptyCount()),
	}
	for idx, race := range w.agents.cells {
		c := size.At(idx)
		if race != noAgent {
			s.Agents[c] = race
			continue
		}
		if w.grid.pos[idx] >= 0 {
			s.Empty = append(s.Empty, c)
		}
	}
	return s
}

// EmptyFraction returns the share of cells without an agent.
func (s Snapshot) EmptyFraction() float64 {
	total := s.Size.Area()
	if total == 0 {
		return 0
	}
	return float64(len(s.Empty)) / float64(total)
}
