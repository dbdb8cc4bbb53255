package cycles

import (
	"github.com/vovakirdan/tui-lightcycle/internal/core"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateRoundOver   GameStateType = "round_over"
	StateMatchOver   GameStateType = "match_over"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
	StateConfigError GameStateType = "config_error"
)

// PlayerSummary captures one cycle's position for determinism testing.
type PlayerSummary struct {
	ID         core.PlayerID
	X, Y       int
	DX, DY     int
	TrailLen   int
	Eliminated bool
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick           uint64
	Mode           string
	SimTick        uint64
	Round          int // 1-indexed round currently played or just ended
	Wins1          int
	Wins2          int
	Draws          int
	MoveEveryTicks int
	OccupiedCount  int
	Players        [2]PlayerSummary
	State          GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.configErr != nil:
		state = StateConfigError
	case g.tooSmall:
		state = StatePausedSmall
	case g.matchOver:
		state = StateMatchOver
	case g.roundOver:
		state = StateRoundOver
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:           g.tick,
		Mode:           string(g.mode),
		MoveEveryTicks: g.cfg.Cadence.MoveEveryTicks,
		State:          state,
	}

	if g.series != nil {
		snap.Wins1 = g.series.Wins(core.Player1)
		snap.Wins2 = g.series.Wins(core.Player2)
		snap.Draws = g.series.Draws()
		snap.Round = g.series.Rounds()
		if !g.roundOver && !g.matchOver {
			snap.Round++
		}
	}

	if g.round != nil {
		arenaSnap := g.round.Snapshot()
		snap.SimTick = arenaSnap.Tick
		snap.OccupiedCount = arenaSnap.Occupied
		for i, p := range arenaSnap.Players {
			snap.Players[i] = PlayerSummary{
				ID:         p.ID,
				X:          p.Position.X,
				Y:          p.Position.Y,
				DX:         p.Facing.DX,
				DY:         p.Facing.DY,
				TrailLen:   len(p.Trail),
				Eliminated: p.Eliminated,
			}
		}
	}

	return snap
}
