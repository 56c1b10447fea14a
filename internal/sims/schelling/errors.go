package schelling

import "errors"

var (
	// ErrOutOfBounds reports a cell coordinate outside the grid.
	ErrOutOfBounds = errors.New("schelling: cell out of bounds")
	// ErrUnoccupiedCell reports a lookup or move of a cell without an agent.
	ErrUnoccupiedCell = errors.New("schelling: cell has no agent")
	// ErrEmptyCapacity reports that no empty cell is left to move into.
	ErrEmptyCapacity = errors.New("schelling: no empty cells")
	// ErrAlreadyPopulated reports a second Populate call on one world.
	ErrAlreadyPopulated = errors.New("schelling: world already populated")
	// ErrNotPopulated reports an update or metric request before Populate.
	ErrNotPopulated = errors.New("schelling: world not populated")
	// ErrNoAgents reports a metric computed over an empty population.
	ErrNoAgents = errors.New("schelling: no agents")
	// ErrInvalidConfig reports a configuration outside its valid ranges.
	ErrInvalidConfig = errors.New("schelling: invalid config")
)
