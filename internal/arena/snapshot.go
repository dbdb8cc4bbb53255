package arena

import "github.com/vovakirdan/tui-lightcycle/internal/core"

// PlayerSnapshot captures one player's visible state.
type PlayerSnapshot struct {
	ID         core.PlayerID
	Position   core.Position
	Facing     core.Direction
	Trail      []core.Position // every cell occupied this round, spawn first
	Eliminated bool
	Impact     core.Position // meaningful only when Eliminated
}

// Snapshot captures the complete round state for rendering and
// determinism testing. Trails are copies; mutating them does not touch
// the round.
type Snapshot struct {
	Status   Status
	Tick     uint64
	Width    int
	Height   int
	Occupied int // size of the occupied-cell set
	Players  [2]PlayerSnapshot
}

// Snapshot returns the current round snapshot.
func (r *Round) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := Snapshot{
		Status:   r.status,
		Tick:     r.tick,
		Width:    r.width,
		Height:   r.height,
		Occupied: len(r.occupied),
	}
	for i, p := range r.players {
		trail := make([]core.Position, len(p.trail))
		copy(trail, p.trail)
		snap.Players[i] = PlayerSnapshot{
			ID:         p.id,
			Position:   p.pos,
			Facing:     p.facing,
			Trail:      trail,
			Eliminated: p.eliminated,
			Impact:     p.impact,
		}
	}
	return snap
}
