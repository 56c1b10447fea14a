package schelling

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"schelling/internal/core"
)

// State tracks where a World is in its lifecycle.
type State uint8

const (
	StateUnpopulated State = iota
	StatePopulated
	StateConverged
	StateExhausted
)

func (s State) String() string {
	switch s {
	case StateUnpopulated:
		return "unpopulated"
	case StatePopulated:
		return "populated"
	case StateConverged:
		return "converged"
	case StateExhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Result summarizes one Update call.
type Result struct {
	State         State
	Rounds        int
	Moves         int
	MovesPerRound []int
}

// World is a Schelling segregation model on a bounded grid. A World is not
// safe for concurrent use; run independent configurations on separate
// instances instead.
type World struct {
	cfg  Config
	rule Rule

	grid   *gridModel
	agents *agentSet

	state   State
	history []int
	display []uint8

	rng *rand.Rand
}

// New returns an unpopulated World for cfg.
func New(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w := &World{cfg: cfg, rule: Rule{Threshold: cfg.SimilarityThreshold}}
	w.init(cfg.Seed)
	return w, nil
}

func (w *World) init(seed int64) {
	w.grid = newGridModel(w.cfg.Width, w.cfg.Height)
	w.agents = newAgentSet(w.grid.size)
	w.state = StateUnpopulated
	w.history = nil
	w.display = make([]uint8, w.grid.size.Area())
	w.rng = core.NewRNG(seed)
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "schelling" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return w.grid.size }

// Config returns the configuration the world was built from.
func (w *World) Config() Config { return w.cfg }

// State reports the lifecycle state.
func (w *World) State() State { return w.state }

// Rounds returns the number of relocation rounds run so far.
func (w *World) Rounds() int { return len(w.history) }

// Population returns the number of agents on the grid.
func (w *World) Population() int { return w.agents.len() }

// Populate shuffles the grid, leaves the configured fraction of cells empty
// and spreads the races evenly over the rest.
func (w *World) Populate() error {
	if w.state != StateUnpopulated {
		return ErrAlreadyPopulated
	}
	occupied := w.grid.partition(w.cfg.EmptyRatio, w.rng)
	w.agents.stripe(occupied, w.cfg.Races)
	w.state = StatePopulated
	w.rebuildDisplay()
	return nil
}

// Update runs relocation rounds until one round moves nobody or
// MaxIterations rounds have run. Calling it again after termination runs a
// fresh budget of rounds against the current grid.
func (w *World) Update() (Result, error) {
	if w.state == StateUnpopulated {
		return Result{}, ErrNotPopulated
	}
	res := Result{MovesPerRound: make([]int, 0, min(w.cfg.MaxIterations, 64))}
	for res.Rounds < w.cfg.MaxIterations {
		moves, err := w.round()
		if err != nil {
			return res, err
		}
		res.Rounds++
		res.Moves += moves
		res.MovesPerRound = append(res.MovesPerRound, moves)
		if moves == 0 {
			w.state = StateConverged
			res.State = w.state
			return res, nil
		}
	}
	w.state = StateExhausted
	res.State = w.state
	return res, nil
}

// Round runs a single relocation round and returns how many agents moved.
// It does not consult MaxIterations.
func (w *World) Round() (int, error) {
	if w.state == StateUnpopulated {
		return 0, ErrNotPopulated
	}
	moves, err := w.round()
	if err != nil {
		return moves, err
	}
	if moves == 0 {
		w.state = StateConverged
	}
	return moves, nil
}

// round judges every agent against the grid as it stood when the round
// began, while move targets come from the live empty set.
func (w *World) round() (int, error) {
	size := w.grid.size
	snapshot := slices.Clone(w.agents.cells)
	moves := 0
	for idx, race := range snapshot {
		if race == noAgent {
			continue
		}
		c := size.At(idx)
		if !w.rule.Unsatisfied(countNeighbors(snapshot, size, c)) {
			continue
		}
		if err := w.move(c); err != nil {
			w.rebuildDisplay()
			return moves, err
		}
		moves++
	}
	w.history = append(w.history, moves)
	w.rebuildDisplay()
	return moves, nil
}

// move relocates the agent at from to a random empty cell. The agent set
// and the empty set change together; from becomes a valid target for later
// moves in the same round.
func (w *World) move(from core.Cell) error {
	to, err := w.grid.sampleEmpty(w.rng)
	if err != nil {
		return fmt.Errorf("move agent at (%d,%d): %w", from.X, from.Y, err)
	}
	if err := w.agents.relocate(from, to); err != nil {
		return err
	}
	if err := w.grid.markOccupied(to); err != nil {
		return err
	}
	return w.grid.markEmpty(from)
}

// IsUnsatisfied reports whether the agent at c would move given the current
// grid.
func (w *World) IsUnsatisfied(c core.Cell) (bool, error) {
	if _, err := w.agents.TypeOf(c); err != nil {
		return false, err
	}
	return w.rule.Unsatisfied(countNeighbors(w.agents.cells, w.grid.size, c)), nil
}

// TypeOf returns the race of the agent at c.
func (w *World) TypeOf(c core.Cell) (Race, error) { return w.agents.TypeOf(c) }

// IsEmpty reports whether c is vacant.
func (w *World) IsEmpty(c core.Cell) (bool, error) { return w.grid.IsEmpty(c) }

// Reset rebuilds and repopulates the world. A zero seed falls back to the
// configured one.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.init(seed)
	// A freshly initialised world is always unpopulated.
	_ = w.Populate()
}

// Step advances the world by one round until it converges or runs out of
// its iteration budget.
func (w *World) Step() {
	if w.state != StatePopulated {
		return
	}
	if _, err := w.Round(); err != nil {
		return
	}
	if w.state == StatePopulated && len(w.history) >= w.cfg.MaxIterations {
		w.state = StateExhausted
	}
}

func init() {
	core.Register("schelling", func(cfg map[string]string) core.Sim {
		w, err := New(FromMap(cfg))
		if err != nil {
			w, _ = New(DefaultConfig())
		}
		return w
	})
}
