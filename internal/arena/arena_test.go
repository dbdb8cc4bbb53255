package arena

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-lightcycle/internal/core"
)

// duelSeeds returns a roster far from walls and from each other,
// both players moving right in separate rows.
func duelSeeds() [2]Seed {
	return [2]Seed{
		{ID: core.Player1, Spawn: core.Position{X: 5, Y: 5}, Facing: core.Right},
		{ID: core.Player2, Spawn: core.Position{X: 5, Y: 15}, Facing: core.Right},
	}
}

func mustStart(t *testing.T, w, h int, seeds [2]Seed) *Round {
	t.Helper()
	r, err := StartRound(w, h, seeds)
	if err != nil {
		t.Fatalf("StartRound() failed: %v", err)
	}
	return r
}

func mustTick(t *testing.T, r *Round) TickResult {
	t.Helper()
	res, err := r.AdvanceTick()
	if err != nil {
		t.Fatalf("AdvanceTick() failed: %v", err)
	}
	return res
}

func TestStartRoundSeedsOccupied(t *testing.T) {
	r := mustStart(t, 20, 20, duelSeeds())

	if r.Status() != StatusRunning {
		t.Errorf("Status() = %v, expected running", r.Status())
	}
	if !r.Occupied(core.Position{X: 5, Y: 5}) || !r.Occupied(core.Position{X: 5, Y: 15}) {
		t.Error("spawn cells must be in the occupied set from tick 0")
	}
	if got := r.OccupiedCount(); got != 2 {
		t.Errorf("OccupiedCount() = %d, expected 2", got)
	}

	snap := r.Snapshot()
	for i, p := range snap.Players {
		if len(p.Trail) != 1 {
			t.Errorf("player %d trail length = %d, expected 1 (spawn only)", i, len(p.Trail))
		}
	}
}

func TestStartRoundRosterValidation(t *testing.T) {
	good := duelSeeds()

	tests := []struct {
		name  string
		w, h  int
		seeds [2]Seed
	}{
		{
			name: "duplicate ids",
			w:    20, h: 20,
			seeds: [2]Seed{
				{ID: core.Player1, Spawn: core.Position{X: 1, Y: 1}, Facing: core.Right},
				{ID: core.Player1, Spawn: core.Position{X: 5, Y: 5}, Facing: core.Left},
			},
		},
		{
			name: "missing id",
			w:    20, h: 20,
			seeds: [2]Seed{
				{ID: core.NoPlayer, Spawn: core.Position{X: 1, Y: 1}, Facing: core.Right},
				good[1],
			},
		},
		{
			name: "spawn outside grid",
			w:    20, h: 20,
			seeds: [2]Seed{
				{ID: core.Player1, Spawn: core.Position{X: 20, Y: 5}, Facing: core.Right},
				good[1],
			},
		},
		{
			name: "shared spawn cell",
			w:    20, h: 20,
			seeds: [2]Seed{
				{ID: core.Player1, Spawn: core.Position{X: 5, Y: 5}, Facing: core.Right},
				{ID: core.Player2, Spawn: core.Position{X: 5, Y: 5}, Facing: core.Left},
			},
		},
		{
			name: "zero facing",
			w:    20, h: 20,
			seeds: [2]Seed{
				{ID: core.Player1, Spawn: core.Position{X: 1, Y: 1}, Facing: core.Direction{}},
				good[1],
			},
		},
		{
			name:  "degenerate grid",
			w:     0,
			h:     20,
			seeds: good,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := StartRound(tc.w, tc.h, tc.seeds)
			if !errors.Is(err, ErrInvalidRoster) {
				t.Errorf("StartRound() error = %v, expected ErrInvalidRoster", err)
			}
		})
	}
}

func TestOccupiedGrowsPerContinuingTick(t *testing.T) {
	r := mustStart(t, 40, 40, duelSeeds())

	prev := r.OccupiedCount()
	for i := 0; i < 10; i++ {
		res := mustTick(t, r)
		if res.Outcome != Continuing {
			t.Fatalf("tick %d: outcome = %v, expected continuing", i+1, res.Outcome)
		}
		got := r.OccupiedCount()
		// Exactly one new cell per surviving, moved player.
		if got != prev+2 {
			t.Errorf("tick %d: occupied = %d, expected %d", i+1, got, prev+2)
		}
		prev = got
	}
}

func TestReversalIsSilentlyIgnored(t *testing.T) {
	r := mustStart(t, 40, 40, duelSeeds())

	// Facing right; a left request is a 180° reversal and must not stick.
	if err := r.RequestDirection(core.Player1, core.Left); err != nil {
		t.Fatalf("RequestDirection() failed: %v", err)
	}
	res := mustTick(t, r)
	if res.Players[0].Position != (core.Position{X: 6, Y: 5}) {
		t.Errorf("player kept moving right expected, got %v", res.Players[0].Position)
	}

	// For any request sequence, the committed facing never flips 180°
	// within one tick of its previous value.
	script := [][]core.Direction{
		{core.Down, core.Left},        // left is a reversal while facing right
		{core.Up, core.Down, core.Up}, // up is a reversal while facing down
		{core.Right},
		{core.Left, core.Left}, // reversal spam while facing right
		{core.Down},
	}
	prevFacing := r.Snapshot().Players[0].Facing
	for _, requests := range script {
		for _, d := range requests {
			if err := r.RequestDirection(core.Player1, d); err != nil {
				t.Fatalf("RequestDirection(%v) failed: %v", d, err)
			}
		}
		res := mustTick(t, r)
		if res.Ended() {
			break
		}
		facing := r.Snapshot().Players[0].Facing
		if facing.IsOpposite(prevFacing) {
			t.Fatalf("facing %v directly reverses previous facing %v", facing, prevFacing)
		}
		prevFacing = facing
	}
}

func TestLastValidRequestWins(t *testing.T) {
	r := mustStart(t, 40, 40, duelSeeds())

	// Several legal requests between ticks: only the most recent applies.
	for _, d := range []core.Direction{core.Up, core.Down, core.Up, core.Down} {
		if err := r.RequestDirection(core.Player1, d); err != nil {
			t.Fatalf("RequestDirection(%v) failed: %v", d, err)
		}
	}
	mustTick(t, r)

	snap := r.Snapshot()
	if snap.Players[0].Facing != core.Down {
		t.Errorf("facing = %v, expected down (last valid request)", snap.Players[0].Facing)
	}
	if snap.Players[0].Position != (core.Position{X: 5, Y: 6}) {
		t.Errorf("position = %v, expected (5,6)", snap.Players[0].Position)
	}
}

func TestWallEliminationAtColumnZero(t *testing.T) {
	seeds := [2]Seed{
		{ID: core.Player1, Spawn: core.Position{X: 0, Y: 5}, Facing: core.Left},
		{ID: core.Player2, Spawn: core.Position{X: 10, Y: 15}, Facing: core.Right},
	}
	r := mustStart(t, 20, 20, seeds)

	res := mustTick(t, r)
	if res.Outcome != PlayerEliminated {
		t.Fatalf("outcome = %v, expected player eliminated", res.Outcome)
	}
	if res.Winner != core.Player2 {
		t.Errorf("winner = %v, expected Player 2", res.Winner)
	}
	if !res.Players[0].Eliminated {
		t.Error("player 1 should be eliminated")
	}
	if res.Players[0].Proposed.X != -1 {
		t.Errorf("impact column = %d, expected -1", res.Players[0].Proposed.X)
	}
	// Eliminated player stays at its last valid cell.
	if res.Players[0].Position != seeds[0].Spawn {
		t.Errorf("eliminated position = %v, expected spawn %v", res.Players[0].Position, seeds[0].Spawn)
	}
	if r.Status() != StatusEnded {
		t.Errorf("Status() = %v, expected ended", r.Status())
	}
}

func TestSelfTrailElimination(t *testing.T) {
	seeds := [2]Seed{
		{ID: core.Player1, Spawn: core.Position{X: 5, Y: 5}, Facing: core.Right},
		{ID: core.Player2, Spawn: core.Position{X: 2, Y: 15}, Facing: core.Right},
	}
	r := mustStart(t, 20, 20, seeds)

	// Trace a tight loop: right, down, left, then up back onto the spawn.
	mustTick(t, r) // (6,5)
	if err := r.RequestDirection(core.Player1, core.Down); err != nil {
		t.Fatal(err)
	}
	mustTick(t, r) // (6,6)
	if err := r.RequestDirection(core.Player1, core.Left); err != nil {
		t.Fatal(err)
	}
	mustTick(t, r) // (5,6)
	if err := r.RequestDirection(core.Player1, core.Up); err != nil {
		t.Fatal(err)
	}
	res := mustTick(t, r) // proposes (5,5), the own spawn cell

	if res.Outcome != PlayerEliminated {
		t.Fatalf("outcome = %v, expected player eliminated", res.Outcome)
	}
	if res.Winner != core.Player2 {
		t.Errorf("winner = %v, expected Player 2", res.Winner)
	}
	if res.Players[0].Proposed != (core.Position{X: 5, Y: 5}) {
		t.Errorf("impact cell = %v, expected the revisited (5,5)", res.Players[0].Proposed)
	}
}

func TestSameCellCollision(t *testing.T) {
	// Both players propose the same free cell (5,5): mutual elimination
	// even though each move alone would have been legal.
	seeds := [2]Seed{
		{ID: core.Player1, Spawn: core.Position{X: 4, Y: 5}, Facing: core.Right},
		{ID: core.Player2, Spawn: core.Position{X: 6, Y: 5}, Facing: core.Left},
	}
	r := mustStart(t, 20, 20, seeds)

	res := mustTick(t, r)
	if res.Outcome != DoubleElimination {
		t.Fatalf("outcome = %v, expected double elimination", res.Outcome)
	}
	if res.Winner != core.NoPlayer {
		t.Errorf("winner = %v, expected nobody", res.Winner)
	}
	for i, p := range res.Players {
		if !p.Eliminated {
			t.Errorf("player %d should be eliminated", i)
		}
		if p.Position != seeds[i].Spawn {
			t.Errorf("player %d moved to %v, expected to stay at %v", i, p.Position, seeds[i].Spawn)
		}
	}
}

func TestSwapCollision(t *testing.T) {
	// Adjacent players steering into each other's current cell.
	seeds := [2]Seed{
		{ID: core.Player1, Spawn: core.Position{X: 4, Y: 5}, Facing: core.Right},
		{ID: core.Player2, Spawn: core.Position{X: 5, Y: 5}, Facing: core.Left},
	}
	r := mustStart(t, 20, 20, seeds)

	res := mustTick(t, r)
	if res.Outcome != DoubleElimination {
		t.Fatalf("outcome = %v, expected double elimination", res.Outcome)
	}
	if !res.Players[0].Eliminated || !res.Players[1].Eliminated {
		t.Error("both players should be eliminated in a swap")
	}
}

func TestHeadOnDuel(t *testing.T) {
	// 10×10, P1 at (2,5) moving right, P2 at (7,5) moving left, no steering.
	// The 5-cell gap closes by 2 per tick: after tick 2 the players sit on
	// adjacent cells (4,5) and (5,5); tick 3 is a swap attempt and both
	// proposals land on occupied cells, so the duel ends with no contest.
	seeds := [2]Seed{
		{ID: core.Player1, Spawn: core.Position{X: 2, Y: 5}, Facing: core.Right},
		{ID: core.Player2, Spawn: core.Position{X: 7, Y: 5}, Facing: core.Left},
	}
	r := mustStart(t, 10, 10, seeds)

	res := mustTick(t, r)
	if res.Outcome != Continuing {
		t.Fatalf("tick 1: outcome = %v", res.Outcome)
	}
	res = mustTick(t, r)
	if res.Outcome != Continuing {
		t.Fatalf("tick 2: outcome = %v", res.Outcome)
	}
	if res.Players[0].Position != (core.Position{X: 4, Y: 5}) {
		t.Errorf("tick 2: P1 at %v, expected (4,5)", res.Players[0].Position)
	}
	if res.Players[1].Position != (core.Position{X: 5, Y: 5}) {
		t.Errorf("tick 2: P2 at %v, expected (5,5)", res.Players[1].Position)
	}

	res = mustTick(t, r)
	if res.Outcome != DoubleElimination {
		t.Fatalf("tick 3: outcome = %v, expected double elimination", res.Outcome)
	}
	if res.Players[0].Proposed != (core.Position{X: 5, Y: 5}) {
		t.Errorf("tick 3: P1 proposed %v, expected P2's cell (5,5)", res.Players[0].Proposed)
	}
	if res.Players[1].Proposed != (core.Position{X: 4, Y: 5}) {
		t.Errorf("tick 3: P2 proposed %v, expected P1's cell (4,5)", res.Players[1].Proposed)
	}
}

func TestTickAfterEndIsContractViolation(t *testing.T) {
	seeds := [2]Seed{
		{ID: core.Player1, Spawn: core.Position{X: 0, Y: 5}, Facing: core.Left},
		{ID: core.Player2, Spawn: core.Position{X: 10, Y: 15}, Facing: core.Right},
	}
	r := mustStart(t, 20, 20, seeds)
	mustTick(t, r) // P1 hits the wall, round ends

	if _, err := r.AdvanceTick(); !errors.Is(err, ErrRoundNotRunning) {
		t.Errorf("AdvanceTick() after end = %v, expected ErrRoundNotRunning", err)
	}
}

func TestRequestDirectionContractViolations(t *testing.T) {
	r := mustStart(t, 20, 20, duelSeeds())

	if err := r.RequestDirection(core.NoPlayer, core.Up); !errors.Is(err, ErrUnknownPlayer) {
		t.Errorf("unknown player error = %v, expected ErrUnknownPlayer", err)
	}
	if err := r.RequestDirection(core.Player1, core.Direction{DX: 2}); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("bad vector error = %v, expected ErrInvalidDirection", err)
	}
}

func TestRequestDirectionAfterEndIsIgnored(t *testing.T) {
	seeds := [2]Seed{
		{ID: core.Player1, Spawn: core.Position{X: 0, Y: 5}, Facing: core.Left},
		{ID: core.Player2, Spawn: core.Position{X: 10, Y: 15}, Facing: core.Right},
	}
	r := mustStart(t, 20, 20, seeds)
	mustTick(t, r)

	// A keypress racing the final tick is not a fault.
	if err := r.RequestDirection(core.Player2, core.Up); err != nil {
		t.Errorf("RequestDirection() after end = %v, expected nil", err)
	}
}

func TestSnapshotTrailsAreCopies(t *testing.T) {
	r := mustStart(t, 40, 40, duelSeeds())
	mustTick(t, r)

	snap := r.Snapshot()
	snap.Players[0].Trail[0] = core.Position{X: -99, Y: -99}

	again := r.Snapshot()
	if again.Players[0].Trail[0] != (core.Position{X: 5, Y: 5}) {
		t.Error("mutating a snapshot trail must not affect the round")
	}
}

func TestSnapshotReflectsElimination(t *testing.T) {
	seeds := [2]Seed{
		{ID: core.Player1, Spawn: core.Position{X: 0, Y: 5}, Facing: core.Left},
		{ID: core.Player2, Spawn: core.Position{X: 10, Y: 15}, Facing: core.Right},
	}
	r := mustStart(t, 20, 20, seeds)
	mustTick(t, r)

	snap := r.Snapshot()
	if snap.Status != StatusEnded {
		t.Errorf("snapshot status = %v, expected ended", snap.Status)
	}
	if !snap.Players[0].Eliminated {
		t.Error("snapshot should mark player 1 eliminated")
	}
	if snap.Players[0].Impact != (core.Position{X: -1, Y: 5}) {
		t.Errorf("snapshot impact = %v, expected (-1,5)", snap.Players[0].Impact)
	}
	if snap.Players[1].Eliminated {
		t.Error("snapshot should not mark the survivor eliminated")
	}
}
