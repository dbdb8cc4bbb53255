package config

import (
	_ "embed"
)

//go:embed defaults/cycles.yaml
var defaultCyclesYAML []byte

// DefaultCyclesConfig returns the hardcoded default duel configuration,
// used as the last fallback if the embedded YAML cannot be parsed.
func DefaultCyclesConfig() CyclesConfig {
	return CyclesConfig{
		Grid: GridConfig{
			Width:  60,
			Height: 20,
		},
		Cadence: CadenceConfig{
			MoveEveryTicks: 4,
		},
		Match: MatchConfig{
			BestOf: 3,
		},
		Players: []PlayerConfig{
			{
				Name:   "Cyan",
				Color:  "cyan",
				Spawn:  SpawnConfig{X: 10, Y: 10},
				Facing: "right",
				Keys:   KeyBindings{Up: "w", Down: "s", Left: "a", Right: "d"},
			},
			{
				Name:   "Orange",
				Color:  "orange",
				Spawn:  SpawnConfig{X: 49, Y: 10},
				Facing: "left",
				Keys:   KeyBindings{Up: "up", Down: "down", Left: "left", Right: "right"},
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file, for the
// `config` command to print.
func DefaultYAML() []byte {
	return defaultCyclesYAML
}
