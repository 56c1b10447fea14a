package schelling

import (
	"strings"
	"testing"

	"schelling/internal/core"
)

func TestDisplayWrapsRacesAroundPalette(t *testing.T) {
	races := len(racePalette) - 1
	cases := map[Race]uint8{
		noAgent:           0,
		1:                 1,
		Race(races):       uint8(races),
		Race(races + 1):   1,
		Race(2*races + 3): 3,
	}
	for r, want := range cases {
		if got := displayValue(r); got != want {
			t.Fatalf("race %d: display %d, want %d", r, got, want)
		}
	}
}

func TestCellsFollowAgents(t *testing.T) {
	cfg, layout := threeCellLayout()
	w := worldWithLayout(t, cfg, layout)
	if got := w.Cells(); got[0] != 1 || got[1] != 2 || got[2] != 0 {
		t.Fatalf("unexpected display %v", got)
	}
	if _, err := w.Round(); err != nil {
		t.Fatal(err)
	}
	if got := w.Cells(); got[0] != 2 || got[1] != 0 || got[2] != 1 {
		t.Fatalf("display not refreshed after round: %v", got)
	}
}

func TestStatusAndParameters(t *testing.T) {
	cfg, layout := threeCellLayout()
	w := worldWithLayout(t, cfg, layout)
	if s := w.Status(); !strings.Contains(s, "round 0") || !strings.Contains(s, "similarity 0.000") {
		t.Fatalf("unexpected status %q", s)
	}

	var found bool
	for _, g := range w.Parameters().Groups {
		for _, p := range g.Params {
			if p.Key == "threshold" {
				found = true
				if p.Value != "0.9" || p.Type != core.ParamTypeFloat {
					t.Fatalf("unexpected threshold parameter %+v", p)
				}
			}
		}
	}
	if !found {
		t.Fatal("threshold parameter missing")
	}
}
