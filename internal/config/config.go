// Package config provides YAML-based configuration loading for the
// light-cycle duel: grid dimensions, simulation cadence, match length and
// the two-player roster with spawns, facings, colors and key bindings.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-lightcycle/internal/core"
)

// CyclesConfig contains all load-time configuration for a duel.
// The simulation treats it as immutable per round.
type CyclesConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Cadence CadenceConfig `yaml:"cadence"`
	Match   MatchConfig   `yaml:"match"`
	Players []PlayerConfig `yaml:"players"`
}

// GridConfig defines the playfield dimensions in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// CadenceConfig paces the simulation relative to platform ticks.
type CadenceConfig struct {
	// MoveEveryTicks is how many platform ticks pass between simulation
	// steps. At the default 60 ticks/second, 4 gives one cell every
	// ~66 ms.
	MoveEveryTicks int `yaml:"move_every_ticks"`
}

// MatchConfig defines the series length.
type MatchConfig struct {
	// BestOf is the series length; the first player to win more than
	// half of it takes the match. Draws count for neither player.
	BestOf int `yaml:"best_of"`
}

// PlayerConfig is the seed data and input mapping for one duelist.
type PlayerConfig struct {
	Name   string      `yaml:"name"`
	Color  string      `yaml:"color"`
	Spawn  SpawnConfig `yaml:"spawn"`
	Facing string      `yaml:"facing"`
	Keys   KeyBindings `yaml:"keys"`
}

// SpawnConfig is a grid cell in configuration form.
type SpawnConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Position converts the spawn to a core grid position.
func (s SpawnConfig) Position() core.Position {
	return core.Position{X: s.X, Y: s.Y}
}

// KeyBindings maps the four steering intents to key names as reported by
// the terminal (e.g. "w", "up", "left").
type KeyBindings struct {
	Up    string `yaml:"up"`
	Down  string `yaml:"down"`
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// All returns the bindings as an action-to-key map.
func (k KeyBindings) All() map[core.Action]string {
	return map[core.Action]string{
		core.ActionUp:    k.Up,
		core.ActionDown:  k.Down,
		core.ActionLeft:  k.Left,
		core.ActionRight: k.Right,
	}
}

// FacingDirection parses the configured initial facing.
func (p PlayerConfig) FacingDirection() (core.Direction, error) {
	return core.DirectionFromName(p.Facing)
}

// PlayerColor resolves the configured color name.
func (p PlayerConfig) PlayerColor() core.Color {
	return core.ColorFromName(p.Color)
}

// Validate checks the configuration for the same roster rules the
// simulation enforces, plus input-mapping completeness, so a bad file
// fails at load time instead of at round start.
func (c CyclesConfig) Validate() error {
	if c.Grid.Width < 3 || c.Grid.Height < 3 {
		return fmt.Errorf("config: grid %dx%d is too small", c.Grid.Width, c.Grid.Height)
	}
	if c.Cadence.MoveEveryTicks < 1 {
		return fmt.Errorf("config: move_every_ticks must be at least 1, got %d", c.Cadence.MoveEveryTicks)
	}
	if c.Match.BestOf < 1 {
		return fmt.Errorf("config: best_of must be at least 1, got %d", c.Match.BestOf)
	}
	if len(c.Players) != 2 {
		return fmt.Errorf("config: exactly 2 players required, got %d", len(c.Players))
	}

	seen := make(map[string]string) // key name -> owner, across both players
	for i, p := range c.Players {
		if p.Name == "" {
			return fmt.Errorf("config: player %d has no name", i+1)
		}
		if !p.Spawn.Position().InBounds(c.Grid.Width, c.Grid.Height) {
			return fmt.Errorf("config: player %q spawn (%d,%d) outside %dx%d grid",
				p.Name, p.Spawn.X, p.Spawn.Y, c.Grid.Width, c.Grid.Height)
		}
		if _, err := p.FacingDirection(); err != nil {
			return fmt.Errorf("config: player %q: %w", p.Name, err)
		}
		for action, keyName := range p.Keys.All() {
			if keyName == "" {
				return fmt.Errorf("config: player %q has no key for %s", p.Name, action)
			}
			if owner, dup := seen[keyName]; dup {
				return fmt.Errorf("config: key %q bound for both %q and %q", keyName, owner, p.Name)
			}
			seen[keyName] = p.Name
		}
	}

	if c.Players[0].Spawn == c.Players[1].Spawn {
		return fmt.Errorf("config: both players spawn at (%d,%d)", c.Players[0].Spawn.X, c.Players[0].Spawn.Y)
	}
	if c.Players[0].Name == c.Players[1].Name {
		return fmt.Errorf("config: both players are named %q", c.Players[0].Name)
	}
	return nil
}
