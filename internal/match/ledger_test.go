package match

import (
	"testing"

	"github.com/vovakirdan/tui-lightcycle/internal/arena"
	"github.com/vovakirdan/tui-lightcycle/internal/core"
)

func TestLedgerDropsEmptyMatches(t *testing.T) {
	var ledger Ledger

	ledger.Add(MatchRecord{Variant: "Light Cycles"})
	if ledger.Len() != 0 {
		t.Errorf("expected an empty match to be dropped, got %d entries", ledger.Len())
	}

	ledger.Add(MatchRecord{
		Variant: "Light Cycles",
		Winner:  "Cyan",
		Score:   "Cyan 2 : 0 Orange",
		Rounds: []RoundRecord{
			{Number: 1, Outcome: arena.PlayerEliminated, Winner: core.Player1, Cause: CauseWall, Ticks: 12},
			{Number: 2, Outcome: arena.PlayerEliminated, Winner: core.Player1, Cause: CauseTrail, Ticks: 30},
		},
	})
	if ledger.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", ledger.Len())
	}
}

func TestLedgerMatchesIsACopy(t *testing.T) {
	var ledger Ledger
	ledger.Add(MatchRecord{
		Variant: "Light Cycles",
		Rounds:  []RoundRecord{{Number: 1, Outcome: arena.DoubleElimination, Cause: CauseHeadOn, Ticks: 3}},
	})

	got := ledger.Matches()
	got[0].Variant = "mutated"

	if ledger.Matches()[0].Variant != "Light Cycles" {
		t.Errorf("mutating the returned slice changed the ledger")
	}
}
