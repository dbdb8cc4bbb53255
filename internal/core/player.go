package core

// PlayerID identifies one of the two duelists. The simulation and the
// input layer agree on these values; configuration maps them to names,
// colors and key bindings.
type PlayerID int

const (
	// NoPlayer is the zero value, used where no player applies
	// (e.g. the winner field of a double elimination).
	NoPlayer PlayerID = iota
	Player1
	Player2
)

// String returns a human-readable name for the player.
func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return "Nobody"
	}
}

// Other returns the opponent of this player.
func (p PlayerID) Other() PlayerID {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return NoPlayer
	}
}
