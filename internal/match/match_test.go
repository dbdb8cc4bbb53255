package match

import (
	"testing"

	"github.com/vovakirdan/tui-lightcycle/internal/arena"
	"github.com/vovakirdan/tui-lightcycle/internal/core"
)

func TestSeriesDecision(t *testing.T) {
	s := NewSeries(3)

	if s.Target() != 2 {
		t.Fatalf("Target() = %d, expected 2 for best-of-3", s.Target())
	}

	s.Record(arena.PlayerEliminated, core.Player1, CauseWall, 10)
	if _, done := s.Decided(); done {
		t.Fatal("series should not be decided after one win")
	}

	s.Record(arena.PlayerEliminated, core.Player2, CauseTrail, 25)
	if s.Leader() != core.NoPlayer {
		t.Errorf("Leader() = %v, expected tie", s.Leader())
	}

	s.Record(arena.PlayerEliminated, core.Player1, CauseTrail, 40)
	winner, done := s.Decided()
	if !done || winner != core.Player1 {
		t.Errorf("Decided() = (%v, %v), expected Player 1 win", winner, done)
	}
}

func TestSeriesDrawsProlong(t *testing.T) {
	s := NewSeries(3)

	s.Record(arena.DoubleElimination, core.NoPlayer, CauseHeadOn, 7)
	s.Record(arena.DoubleElimination, core.NoPlayer, CauseSwap, 3)
	s.Record(arena.PlayerEliminated, core.Player2, CauseWall, 12)

	if s.Draws() != 2 {
		t.Errorf("Draws() = %d, expected 2", s.Draws())
	}
	if s.Wins(core.Player2) != 1 {
		t.Errorf("Wins(Player2) = %d, expected 1", s.Wins(core.Player2))
	}
	if _, done := s.Decided(); done {
		t.Error("draws must not count toward the decision")
	}
}

func TestSeriesRecordNumbering(t *testing.T) {
	s := NewSeries(5)

	first := s.Record(arena.PlayerEliminated, core.Player1, CauseWall, 9)
	second := s.Record(arena.DoubleElimination, core.NoPlayer, CauseHeadOn, 4)

	if first.Number != 1 || second.Number != 2 {
		t.Errorf("round numbers = %d, %d; expected 1, 2", first.Number, second.Number)
	}

	records := s.Records()
	if len(records) != 2 {
		t.Fatalf("Records() length = %d, expected 2", len(records))
	}

	// The returned history is a copy.
	records[0].Winner = core.Player2
	if s.Records()[0].Winner != core.Player1 {
		t.Error("mutating Records() output must not affect the series")
	}
}

func TestCauseOf(t *testing.T) {
	gridW, gridH := 10, 10

	tests := []struct {
		name     string
		res      arena.TickResult
		expected Cause
	}{
		{
			name:     "continuing has no cause",
			res:      arena.TickResult{Outcome: arena.Continuing},
			expected: CauseNone,
		},
		{
			name: "wall strike",
			res: arena.TickResult{
				Outcome: arena.PlayerEliminated,
				Winner:  core.Player2,
				Players: [2]arena.PlayerTick{
					{ID: core.Player1, Position: core.Position{X: 0, Y: 5}, Proposed: core.Position{X: -1, Y: 5}, Eliminated: true},
					{ID: core.Player2, Position: core.Position{X: 5, Y: 5}, Proposed: core.Position{X: 6, Y: 5}},
				},
			},
			expected: CauseWall,
		},
		{
			name: "trail strike",
			res: arena.TickResult{
				Outcome: arena.PlayerEliminated,
				Winner:  core.Player1,
				Players: [2]arena.PlayerTick{
					{ID: core.Player1, Position: core.Position{X: 2, Y: 2}, Proposed: core.Position{X: 3, Y: 2}},
					{ID: core.Player2, Position: core.Position{X: 5, Y: 5}, Proposed: core.Position{X: 5, Y: 4}, Eliminated: true},
				},
			},
			expected: CauseTrail,
		},
		{
			name: "head-on same cell",
			res: arena.TickResult{
				Outcome: arena.DoubleElimination,
				Players: [2]arena.PlayerTick{
					{ID: core.Player1, Position: core.Position{X: 4, Y: 5}, Proposed: core.Position{X: 5, Y: 5}, Eliminated: true},
					{ID: core.Player2, Position: core.Position{X: 6, Y: 5}, Proposed: core.Position{X: 5, Y: 5}, Eliminated: true},
				},
			},
			expected: CauseHeadOn,
		},
		{
			name: "swap",
			res: arena.TickResult{
				Outcome: arena.DoubleElimination,
				Players: [2]arena.PlayerTick{
					{ID: core.Player1, Position: core.Position{X: 4, Y: 5}, Proposed: core.Position{X: 5, Y: 5}, Eliminated: true},
					{ID: core.Player2, Position: core.Position{X: 5, Y: 5}, Proposed: core.Position{X: 4, Y: 5}, Eliminated: true},
				},
			},
			expected: CauseSwap,
		},
		{
			name: "simultaneous independent crashes",
			res: arena.TickResult{
				Outcome: arena.DoubleElimination,
				Players: [2]arena.PlayerTick{
					{ID: core.Player1, Position: core.Position{X: 0, Y: 2}, Proposed: core.Position{X: -1, Y: 2}, Eliminated: true},
					{ID: core.Player2, Position: core.Position{X: 9, Y: 7}, Proposed: core.Position{X: 10, Y: 7}, Eliminated: true},
				},
			},
			expected: CauseMutual,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CauseOf(tc.res, gridW, gridH)
			if got != tc.expected {
				t.Errorf("CauseOf() = %v, expected %v", got, tc.expected)
			}
		})
	}
}
