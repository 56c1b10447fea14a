package schelling

import (
	"fmt"
	"image/color"
)

// racePalette follows the classic scatter-plot colors: blue, red, green,
// cyan, magenta, yellow, black. Index 0 is the empty cell.
var racePalette = []color.RGBA{
	{R: 245, G: 245, B: 240, A: 255},
	{R: 31, G: 84, B: 214, A: 255},
	{R: 214, G: 39, B: 40, A: 255},
	{R: 44, G: 160, B: 44, A: 255},
	{R: 23, G: 190, B: 207, A: 255},
	{R: 196, G: 58, B: 196, A: 255},
	{R: 230, G: 200, B: 20, A: 255},
	{R: 20, G: 20, B: 20, A: 255},
}

// Palette exposes the colors used to render races; cell values above the
// last entry wrap around the race colors.
func (w *World) Palette() []color.RGBA {
	return racePalette
}

// Cells exposes the display buffer: 0 for empty cells, otherwise a palette
// index for the occupying race.
func (w *World) Cells() []uint8 { return w.display }

func displayValue(r Race) uint8 {
	if r == noAgent {
		return 0
	}
	races := len(racePalette) - 1
	return uint8((int(r)-1)%races + 1)
}

func (w *World) rebuildDisplay() {
	for i, r := range w.agents.cells {
		w.display[i] = displayValue(r)
	}
}

// Status summarizes the run for on-screen display.
func (w *World) Status() string {
	sim, err := w.CalculateSimilarity()
	if err != nil {
		return fmt.Sprintf("round %d  %s  no agents", w.Rounds(), w.state)
	}
	return fmt.Sprintf("round %d  %s  similarity %.3f  unsatisfied %d", w.Rounds(), w.state, sim, w.Unsatisfied())
}
