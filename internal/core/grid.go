package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cell is an integer grid coordinate.
type Cell struct {
	X, Y int
}

// Area returns the number of cells in the grid.
func (s Size) Area() int { return s.W * s.H }

// Contains reports whether c lies inside the grid.
func (s Size) Contains(c Cell) bool {
	return c.X >= 0 && c.X < s.W && c.Y >= 0 && c.Y < s.H
}

// Index returns the row-major slice index for c.
func (s Size) Index(c Cell) int { return c.Y*s.W + c.X }

// At returns the cell stored at row-major index idx.
func (s Size) At(idx int) Cell { return Cell{X: idx % s.W, Y: idx / s.W} }

// Moore lists the offsets of the eight cells surrounding a cell.
var Moore = [8]Cell{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}
