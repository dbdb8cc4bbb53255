package match

// MatchRecord summarizes one finished (or abandoned) match for the
// session round history.
type MatchRecord struct {
	Variant string // display title of the variant played
	Winner  string // display name, empty when nobody won
	Score   string // formatted series score, e.g. "Cyan 2 : 1 Orange"
	Rounds  []RoundRecord
}

// Ledger accumulates match records for the lifetime of one program run.
// Nothing is persisted; closing the program forgets the session.
type Ledger struct {
	matches []MatchRecord
}

// Add appends a match record to the ledger. Matches with no rounds
// played are dropped so abandoning a duel at round 1 leaves no entry.
func (l *Ledger) Add(rec MatchRecord) {
	if len(rec.Rounds) == 0 {
		return
	}
	l.matches = append(l.matches, rec)
}

// Matches returns the recorded matches, oldest first.
func (l *Ledger) Matches() []MatchRecord {
	out := make([]MatchRecord, len(l.matches))
	copy(out, l.matches)
	return out
}

// Len returns the number of recorded matches.
func (l *Ledger) Len() int {
	return len(l.matches)
}
