package arena

import "github.com/vovakirdan/tui-lightcycle/internal/core"

// Outcome tags a tick result. Round endings are regular outcomes of the
// state machine, never errors.
type Outcome int

const (
	// Continuing means both players moved and the round goes on.
	Continuing Outcome = iota

	// PlayerEliminated means exactly one player crashed this tick;
	// the survivor wins the round.
	PlayerEliminated

	// DoubleElimination means both players crashed this tick: simultaneous
	// wall/trail strikes, a head-on into the same cell, or a swap. There
	// is no winner.
	DoubleElimination
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case Continuing:
		return "continuing"
	case PlayerEliminated:
		return "player eliminated"
	case DoubleElimination:
		return "double elimination"
	default:
		return "unknown"
	}
}

// PlayerTick is the per-player slice of a tick result: enough for the
// presentation layer to paint the affected cells without reading round
// internals.
type PlayerTick struct {
	ID core.PlayerID

	// Position is the player's committed cell after this tick. For an
	// eliminated player it is the last valid cell before the crash.
	Position core.Position

	// Proposed is the cell the player attempted to enter. For an
	// eliminated player this is the impact cell and may lie outside the
	// grid; render-effect use only.
	Proposed core.Position

	Eliminated bool
}

// TickResult is the outcome of one AdvanceTick call.
type TickResult struct {
	Tick    uint64
	Outcome Outcome

	// Winner is set only for PlayerEliminated.
	Winner core.PlayerID

	Players [2]PlayerTick
}

// Ended returns true if this tick terminated the round.
func (t TickResult) Ended() bool {
	return t.Outcome != Continuing
}
