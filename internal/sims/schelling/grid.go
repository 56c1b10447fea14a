package schelling

import (
	"fmt"
	"math"
	"math/rand/v2"

	"schelling/internal/core"
)

// gridModel owns the coordinate space and the set of empty cells. The
// occupied cells are the complement and are tracked by agentSet.
type gridModel struct {
	size core.Size

	// empty holds the row-major indices of vacant cells in no particular
	// order; pos maps a cell index to its slot in empty, or -1.
	empty []int
	pos   []int
}

func newGridModel(w, h int) *gridModel {
	size := core.Size{W: w, H: h}
	g := &gridModel{size: size, pos: make([]int, size.Area())}
	for i := range g.pos {
		g.pos[i] = -1
	}
	return g
}

func (g *gridModel) check(c core.Cell) error {
	if !g.size.Contains(c) {
		return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, c.X, c.Y, g.size.W, g.size.H)
	}
	return nil
}

// partition shuffles every cell and marks the first round(ratio*total) as
// empty. The remaining cells are returned in shuffled order for agent
// assignment.
func (g *gridModel) partition(ratio float64, rng *rand.Rand) []core.Cell {
	total := g.size.Area()
	cells := make([]core.Cell, total)
	for i := range cells {
		cells[i] = g.size.At(i)
	}
	rng.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })

	nEmpty := int(math.Round(ratio * float64(total)))
	if nEmpty > total {
		nEmpty = total
	}
	g.empty = g.empty[:0]
	for _, c := range cells[:nEmpty] {
		g.add(g.size.Index(c))
	}
	return cells[nEmpty:]
}

func (g *gridModel) add(idx int) {
	if g.pos[idx] >= 0 {
		return
	}
	g.pos[idx] = len(g.empty)
	g.empty = append(g.empty, idx)
}

func (g *gridModel) remove(idx int) {
	slot := g.pos[idx]
	if slot < 0 {
		return
	}
	last := len(g.empty) - 1
	moved := g.empty[last]
	g.empty[slot] = moved
	g.pos[moved] = slot
	g.empty = g.empty[:last]
	g.pos[idx] = -1
}

// IsEmpty reports whether c is vacant.
func (g *gridModel) IsEmpty(c core.Cell) (bool, error) {
	if err := g.check(c); err != nil {
		return false, err
	}
	return g.pos[g.size.Index(c)] >= 0, nil
}

func (g *gridModel) markEmpty(c core.Cell) error {
	if err := g.check(c); err != nil {
		return err
	}
	g.add(g.size.Index(c))
	return nil
}

func (g *gridModel) markOccupied(c core.Cell) error {
	if err := g.check(c); err != nil {
		return err
	}
	g.remove(g.size.Index(c))
	return nil
}

// sampleEmpty picks a vacant cell uniformly at random.
func (g *gridModel) sampleEmpty(rng *rand.Rand) (core.Cell, error) {
	if len(g.empty) == 0 {
		return core.Cell{}, ErrEmptyCapacity
	}
	return g.size.At(g.empty[rng.IntN(len(g.empty))]), nil
}

func (g *gridModel) emptyCount() int { return len(g.empty) }
