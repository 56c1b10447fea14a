package schelling

import (
	"fmt"

	"schelling/internal/core"
)

// Race labels an agent type. Valid races are 1..Config.Races; zero marks a
// cell without an agent.
type Race uint8

const noAgent Race = 0

// agentSet maps occupied cells to their race, stored densely in row-major
// order.
type agentSet struct {
	size  core.Size
	cells []Race
	count int
}

func newAgentSet(size core.Size) *agentSet {
	return &agentSet{size: size, cells: make([]Race, size.Area())}
}

// stripe hands out races round-robin over cells so that race counts differ
// by at most one.
func (a *agentSet) stripe(cells []core.Cell, races int) {
	for i, c := range cells {
		a.assign(c, Race(i%races+1))
	}
}

func (a *agentSet) assign(c core.Cell, r Race) {
	idx := a.size.Index(c)
	if a.cells[idx] == noAgent {
		a.count++
	}
	a.cells[idx] = r
}

// TypeOf returns the race of the agent occupying c.
func (a *agentSet) TypeOf(c core.Cell) (Race, error) {
	if !a.size.Contains(c) {
		return noAgent, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, c.X, c.Y)
	}
	r := a.cells[a.size.Index(c)]
	if r == noAgent {
		return noAgent, fmt.Errorf("%w: (%d,%d)", ErrUnoccupiedCell, c.X, c.Y)
	}
	return r, nil
}

func (a *agentSet) relocate(from, to core.Cell) error {
	r, err := a.TypeOf(from)
	if err != nil {
		return err
	}
	if !a.size.Contains(to) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, to.X, to.Y)
	}
	a.cells[a.size.Index(from)] = noAgent
	a.cells[a.size.Index(to)] = r
	return nil
}

func (a *agentSet) len() int { return a.count }
