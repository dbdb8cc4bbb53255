// Package match tracks a local duel series: round records, the running
// score and the best-of-N decision. Everything lives in memory for the
// current session; nothing is persisted.
package match

import (
	"github.com/vovakirdan/tui-lightcycle/internal/arena"
	"github.com/vovakirdan/tui-lightcycle/internal/core"
)

// Cause describes what ended a round, for display purposes.
type Cause int

const (
	CauseNone  Cause = iota
	CauseWall        // ran off the grid
	CauseTrail       // hit a trail (own or the opponent's)
	CauseHeadOn      // both steered into the same cell
	CauseSwap        // both passed through each other
	CauseMutual      // simultaneous independent crashes
)

// String returns a human-readable description of the cause.
func (c Cause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseTrail:
		return "trail"
	case CauseHeadOn:
		return "head-on"
	case CauseSwap:
		return "swap"
	case CauseMutual:
		return "mutual crash"
	default:
		return "-"
	}
}

// CauseOf derives the display cause from a terminal tick result.
// The round geometry (grid size) is needed to tell walls from trails.
func CauseOf(res arena.TickResult, gridW, gridH int) Cause {
	if !res.Ended() {
		return CauseNone
	}

	if res.Outcome == arena.PlayerEliminated {
		for _, p := range res.Players {
			if !p.Eliminated {
				continue
			}
			if !p.Proposed.InBounds(gridW, gridH) {
				return CauseWall
			}
			return CauseTrail
		}
		return CauseNone
	}

	// Both eliminated. Same proposal means head-on; each proposing the
	// other's cell means a swap; anything else is a simultaneous crash.
	a, b := res.Players[0], res.Players[1]
	switch {
	case a.Proposed == b.Proposed:
		return CauseHeadOn
	case a.Proposed == b.Position && b.Proposed == a.Position:
		return CauseSwap
	default:
		return CauseMutual
	}
}

// RoundRecord is one completed round of the series.
type RoundRecord struct {
	Number  int // 1-based round counter
	Outcome arena.Outcome
	Winner  core.PlayerID // NoPlayer for a double elimination
	Cause   Cause
	Ticks   uint64 // simulation ticks the round lasted
}

// Series accumulates round records for one match and resolves the winner.
// Draws (double eliminations) count for neither player.
type Series struct {
	bestOf  int
	records []RoundRecord
	wins    map[core.PlayerID]int
	draws   int
}

// NewSeries creates a series decided by the first player to win
// ceil(bestOf/2) rounds. A bestOf below 1 falls back to 3.
func NewSeries(bestOf int) *Series {
	if bestOf < 1 {
		bestOf = 3
	}
	return &Series{
		bestOf: bestOf,
		wins:   make(map[core.PlayerID]int),
	}
}

// BestOf returns the configured series length.
func (s *Series) BestOf() int {
	return s.bestOf
}

// Target returns the number of round wins that decides the series.
func (s *Series) Target() int {
	return s.bestOf/2 + 1
}

// Record appends a completed round. The round number is assigned here.
func (s *Series) Record(outcome arena.Outcome, winner core.PlayerID, cause Cause, ticks uint64) RoundRecord {
	rec := RoundRecord{
		Number:  len(s.records) + 1,
		Outcome: outcome,
		Winner:  winner,
		Cause:   cause,
		Ticks:   ticks,
	}
	s.records = append(s.records, rec)
	if winner == core.NoPlayer {
		s.draws++
	} else {
		s.wins[winner]++
	}
	return rec
}

// Wins returns the number of rounds the player has won.
func (s *Series) Wins(id core.PlayerID) int {
	return s.wins[id]
}

// Draws returns the number of double eliminations so far.
func (s *Series) Draws() int {
	return s.draws
}

// Rounds returns the number of completed rounds.
func (s *Series) Rounds() int {
	return len(s.records)
}

// Records returns a copy of the round history, oldest first.
func (s *Series) Records() []RoundRecord {
	out := make([]RoundRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Leader returns the player currently ahead, or NoPlayer on a tie.
func (s *Series) Leader() core.PlayerID {
	switch {
	case s.wins[core.Player1] > s.wins[core.Player2]:
		return core.Player1
	case s.wins[core.Player2] > s.wins[core.Player1]:
		return core.Player2
	default:
		return core.NoPlayer
	}
}

// Decided returns the match winner and true once a player has reached
// the target. Draws prolong the series.
func (s *Series) Decided() (core.PlayerID, bool) {
	for _, id := range []core.PlayerID{core.Player1, core.Player2} {
		if s.wins[id] >= s.Target() {
			return id, true
		}
	}
	return core.NoPlayer, false
}
