// Package arena implements the authoritative light-cycle duel simulation.
// It owns the round state (player positions, facings, occupied cells) and
// advances it exactly one discrete tick per call. The package is pure
// computation over in-memory state: no rendering, no timers, no I/O. The
// host drives the cadence and draws from tick results and snapshots.
package arena

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-lightcycle/internal/core"
)

// Contract-violation errors. These signal caller bugs and are distinct
// from gameplay outcomes, which are regular TickResult values.
var (
	// ErrRoundNotRunning is returned when a tick is requested on a round
	// that has already ended or was never started.
	ErrRoundNotRunning = errors.New("arena: round is not running")

	// ErrInvalidRoster is returned by StartRound for a malformed roster:
	// duplicate ids, out-of-grid spawns, shared spawn cells or bad facings.
	ErrInvalidRoster = errors.New("arena: invalid roster")

	// ErrUnknownPlayer is returned when a direction request names a player
	// that is not part of the round.
	ErrUnknownPlayer = errors.New("arena: unknown player")

	// ErrInvalidDirection is returned when a direction request carries a
	// vector that is not one of the four unit directions.
	ErrInvalidDirection = errors.New("arena: invalid direction")
)

// Status is the lifecycle state of a round.
type Status int

const (
	// StatusIdle means no round has been started. It is the zero value so
	// that an empty round slot snapshots as idle.
	StatusIdle Status = iota
	StatusRunning
	StatusEnded
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Seed describes one player's starting state for a round.
type Seed struct {
	ID     core.PlayerID
	Spawn  core.Position
	Facing core.Direction
}

// playerState is the mutable per-player simulation state.
type playerState struct {
	id         core.PlayerID
	pos        core.Position
	facing     core.Direction
	pending    core.Direction // single-slot buffer, last valid request wins
	trail      []core.Position
	eliminated bool
	impact     core.Position // proposed cell at elimination, may be off-grid
}

// Round is the authoritative state of one duel round. All methods are
// serialized on an internal mutex so direction requests arriving from an
// input goroutine never observe a half-applied tick.
type Round struct {
	mu sync.Mutex

	width  int
	height int
	status Status
	tick   uint64

	players [2]*playerState

	// occupied holds every cell any player has ever occupied, spawn cells
	// included. It only grows for the lifetime of the round.
	occupied map[core.Position]bool
}

// StartRound creates a running round on a width×height grid with exactly
// two seeded players. Both spawn cells enter the occupied set immediately,
// so a tick-1 move onto the opponent's spawn is lethal like any other
// occupied cell. A malformed roster yields an ErrInvalidRoster error and
// no round.
func StartRound(width, height int, seeds [2]Seed) (*Round, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: grid %dx%d", ErrInvalidRoster, width, height)
	}
	if seeds[0].ID == core.NoPlayer || seeds[1].ID == core.NoPlayer {
		return nil, fmt.Errorf("%w: missing player id", ErrInvalidRoster)
	}
	if seeds[0].ID == seeds[1].ID {
		return nil, fmt.Errorf("%w: duplicate player id %s", ErrInvalidRoster, seeds[0].ID)
	}
	for _, s := range seeds {
		if !s.Spawn.InBounds(width, height) {
			return nil, fmt.Errorf("%w: spawn %v outside %dx%d grid", ErrInvalidRoster, s.Spawn, width, height)
		}
		if !s.Facing.Valid() {
			return nil, fmt.Errorf("%w: facing %v is not a unit direction", ErrInvalidRoster, s.Facing)
		}
	}
	if seeds[0].Spawn == seeds[1].Spawn {
		return nil, fmt.Errorf("%w: both players spawn at %v", ErrInvalidRoster, seeds[0].Spawn)
	}

	r := &Round{
		width:    width,
		height:   height,
		status:   StatusRunning,
		occupied: make(map[core.Position]bool),
	}
	for i, s := range seeds {
		r.players[i] = &playerState{
			id:      s.ID,
			pos:     s.Spawn,
			facing:  s.Facing,
			pending: s.Facing,
			trail:   []core.Position{s.Spawn},
		}
		r.occupied[s.Spawn] = true
	}
	return r, nil
}

// RequestDirection buffers a steering request for the given player.
// A request opposite to the player's current committed facing is a known,
// silent no-op: a 180° reversal is illegal, not a fault. The buffer is a
// single slot with last-write-wins semantics; only the most recent valid
// request before the next tick takes effect. Requests arriving after the
// round has ended are ignored (input races with the final tick).
func (r *Round) RequestDirection(id core.PlayerID, d core.Direction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !d.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidDirection, d)
	}
	p := r.player(id)
	if p == nil {
		return fmt.Errorf("%w: %s", ErrUnknownPlayer, id)
	}
	if r.status != StatusRunning {
		return nil
	}
	if d.IsOpposite(p.facing) {
		return nil
	}
	p.pending = d
	return nil
}

// AdvanceTick moves both players one cell simultaneously and adjudicates
// collisions. It is the only mutation point for positions and the occupied
// set. Calling it on a round that is not running is a caller error,
// reported as ErrRoundNotRunning; gameplay endings are regular results.
func (r *Round) AdvanceTick() (TickResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.status != StatusRunning {
		return TickResult{}, fmt.Errorf("%w (status %s)", ErrRoundNotRunning, r.status)
	}
	r.tick++

	// Commit buffered facings and propose next cells.
	var proposed [2]core.Position
	var crashed [2]bool
	for i, p := range r.players {
		p.facing = p.pending
		proposed[i] = p.pos.Add(p.facing)
		// Walls and trails, each player independently.
		if !proposed[i].InBounds(r.width, r.height) || r.occupied[proposed[i]] {
			crashed[i] = true
		}
	}

	// Cross-player adjudication, only for proposals that survived above.
	if !crashed[0] && !crashed[1] {
		switch {
		case proposed[0] == proposed[1]:
			// Head-on into the same cell: mutual elimination. Simultaneous
			// resolution leaves no ordering to break the tie.
			crashed[0], crashed[1] = true, true
		case proposed[0] == r.players[1].pos && proposed[1] == r.players[0].pos:
			// Swap: both heads pass through each other.
			crashed[0], crashed[1] = true, true
		}
	}

	res := TickResult{Tick: r.tick}
	if !crashed[0] && !crashed[1] {
		for i, p := range r.players {
			p.pos = proposed[i]
			p.trail = append(p.trail, proposed[i])
			r.occupied[proposed[i]] = true
		}
		res.Outcome = Continuing
	} else {
		// Eliminated players stop at their last valid cell; the proposed
		// cell is reported for impact effects only.
		r.status = StatusEnded
		for i, p := range r.players {
			if crashed[i] {
				p.eliminated = true
				p.impact = proposed[i]
			}
		}
		if crashed[0] && crashed[1] {
			res.Outcome = DoubleElimination
		} else {
			res.Outcome = PlayerEliminated
			if crashed[0] {
				res.Winner = r.players[1].id
			} else {
				res.Winner = r.players[0].id
			}
		}
	}

	for i, p := range r.players {
		res.Players[i] = PlayerTick{
			ID:         p.id,
			Position:   p.pos,
			Proposed:   proposed[i],
			Eliminated: crashed[i],
		}
	}
	return res, nil
}

// Status returns the round's lifecycle state.
func (r *Round) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

// Tick returns the number of ticks processed so far.
func (r *Round) Tick() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tick
}

// Size returns the grid dimensions.
func (r *Round) Size() (w, h int) {
	return r.width, r.height
}

// Occupied returns true if the cell is lethal to enter.
func (r *Round) Occupied(p core.Position) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.occupied[p]
}

// OccupiedCount returns the size of the occupied-cell set.
func (r *Round) OccupiedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.occupied)
}

// player returns the state for the given id, or nil. Callers hold the lock.
func (r *Round) player(id core.PlayerID) *playerState {
	for _, p := range r.players {
		if p.id == id {
			return p
		}
	}
	return nil
}
