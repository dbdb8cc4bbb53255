// Package cycles implements the two-player light-cycle duel. The package
// is the presentation adapter around the arena simulation: it forwards
// steering intents, drives the tick cadence, tracks the match series and
// renders the playfield. All collision rules live in internal/arena.
package cycles

import (
	"fmt"

	"github.com/vovakirdan/tui-lightcycle/internal/arena"
	"github.com/vovakirdan/tui-lightcycle/internal/config"
	"github.com/vovakirdan/tui-lightcycle/internal/core"
	"github.com/vovakirdan/tui-lightcycle/internal/match"
	"github.com/vovakirdan/tui-lightcycle/internal/registry"
)

// Mode represents the game variant.
type Mode string

const (
	ModeDuel  Mode = "duel"
	ModeBlitz Mode = "blitz"
)

// playerIDs maps roster order to simulation ids.
var playerIDs = [2]core.PlayerID{core.Player1, core.Player2}

// Game implements the light-cycle duel.
type Game struct {
	mode    Mode
	cfg     config.CyclesConfig
	runtime core.RuntimeConfig

	tick       uint64
	moveTicker int // platform ticks until the next simulation step

	round      *arena.Round
	series     *match.Series
	lastResult arena.TickResult

	roundOver   bool // waiting for confirm between rounds
	matchOver   bool
	matchWinner core.PlayerID
	paused      bool
	tooSmall    bool
	configErr   error

	// Presentation state
	hudHeight  int
	mapOffsetX int
	mapOffsetY int
	names      map[core.PlayerID]string
	colors     map[core.PlayerID]core.Color
}

// Package-level config path, set by the CLI before game creation
// (same pattern as the other platform flags).
var configPath string

// SetConfigPath sets the config file path used by the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new standard duel.
func New() *Game {
	return &Game{
		mode: ModeDuel,
	}
}

// NewBlitz creates a duel at blitz pace (faster movement, best of 5).
func NewBlitz() *Game {
	return &Game{
		mode: ModeBlitz,
	}
}

func init() {
	registry.Register("duel", func() registry.Game {
		return New()
	})
	registry.Register("duel_blitz", func() registry.Game {
		return NewBlitz()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeBlitz {
		return "duel_blitz"
	}
	return "duel"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeBlitz {
		return "Light Cycles (Blitz)"
	}
	return "Light Cycles"
}

// Reset initializes or restarts the whole match.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.tick = 0
	g.paused = false
	g.matchOver = false
	g.matchWinner = core.NoPlayer
	g.configErr = nil
	g.hudHeight = 2

	cfg, err := config.LoadCycles(configPath)
	if err != nil {
		g.configErr = err
		return
	}
	if g.mode == ModeBlitz {
		config.ApplyBlitzPreset(&cfg)
	}
	g.cfg = cfg

	g.names = make(map[core.PlayerID]string)
	g.colors = make(map[core.PlayerID]core.Color)
	for i, p := range cfg.Players {
		g.names[playerIDs[i]] = p.Name
		g.colors[playerIDs[i]] = p.PlayerColor()
	}

	g.series = match.NewSeries(cfg.Match.BestOf)
	g.layOut()
	g.startRound()
}

// layOut centers the playfield and checks the screen fits.
func (g *Game) layOut() {
	requiredW := g.cfg.Grid.Width + 2  // border
	requiredH := g.cfg.Grid.Height + g.hudHeight + 3
	if g.runtime.ScreenW < requiredW || g.runtime.ScreenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false
	g.mapOffsetX = (g.runtime.ScreenW - g.cfg.Grid.Width) / 2
	g.mapOffsetY = g.hudHeight + 1
}

// startRound begins a fresh round with the configured roster.
func (g *Game) startRound() {
	var seeds [2]arena.Seed
	for i, p := range g.cfg.Players {
		facing, err := p.FacingDirection()
		if err != nil {
			g.configErr = err
			return
		}
		seeds[i] = arena.Seed{
			ID:     playerIDs[i],
			Spawn:  p.Spawn.Position(),
			Facing: facing,
		}
	}

	round, err := arena.StartRound(g.cfg.Grid.Width, g.cfg.Grid.Height, seeds)
	if err != nil {
		// The loader validates the same rules, so this is a programming
		// error; surface it instead of corrupting state.
		g.configErr = err
		return
	}
	g.round = round
	g.lastResult = arena.TickResult{}
	g.roundOver = false
	g.moveTicker = 0
}

// Step advances the game by one platform tick.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	g.tick++

	// Handle restart of a finished match
	if in.Any(core.ActionRestart) && (g.matchOver || g.configErr != nil) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Any(core.ActionPause) && !g.roundOver && !g.matchOver {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall || g.matchOver || g.configErr != nil {
		return core.StepResult{State: g.State()}
	}

	// Between rounds: wait for either player to confirm
	if g.roundOver {
		if in.Any(core.ActionConfirm) {
			g.startRound()
		}
		return core.StepResult{State: g.State()}
	}

	// Forward steering intents to the arena's direction buffer. Requests
	// land immediately so the buffer keeps true last-write-wins semantics
	// across platform ticks; within one frame the fixed order below makes
	// simultaneous presses deterministic.
	g.forwardSteering(in)

	// Advance the simulation on its cadence
	g.moveTicker++
	if g.moveTicker >= g.cfg.Cadence.MoveEveryTicks {
		g.moveTicker = 0
		g.advance()
	}

	return core.StepResult{State: g.State()}
}

// forwardSteering turns direction actions into arena requests.
func (g *Game) forwardSteering(in core.MultiInputFrame) {
	steering := []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}
	for _, id := range playerIDs {
		frame := in.Player(id)
		for _, action := range steering {
			if !frame.Has(action) {
				continue
			}
			dir, ok := action.Direction()
			if !ok {
				continue
			}
			// Reversals are silently discarded by the arena.
			_ = g.round.RequestDirection(id, dir)
		}
	}
}

// advance runs one simulation tick and records round endings.
func (g *Game) advance() {
	res, err := g.round.AdvanceTick()
	if err != nil {
		// Only reachable if stepping logic regresses; stop the round.
		g.configErr = err
		return
	}
	g.lastResult = res

	if !res.Ended() {
		return
	}

	cause := match.CauseOf(res, g.cfg.Grid.Width, g.cfg.Grid.Height)
	g.series.Record(res.Outcome, res.Winner, cause, res.Tick)
	g.roundOver = true

	if winner, done := g.series.Decided(); done {
		g.matchOver = true
		g.matchWinner = winner
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.seriesRounds(),
		GameOver: g.matchOver || g.configErr != nil,
		Paused:   g.paused,
	}
}

func (g *Game) seriesRounds() int {
	if g.series == nil {
		return 0
	}
	return g.series.Rounds()
}

// Records returns the round history of the current match, oldest first.
func (g *Game) Records() []match.RoundRecord {
	if g.series == nil {
		return nil
	}
	return g.series.Records()
}

// PlayerName returns the configured display name for a player.
func (g *Game) PlayerName(id core.PlayerID) string {
	if name, ok := g.names[id]; ok {
		return name
	}
	return id.String()
}

// Result summarizes the current match for the session ledger.
func (g *Game) Result() match.MatchRecord {
	rec := match.MatchRecord{
		Variant: g.Title(),
		Rounds:  g.Records(),
	}
	if g.series != nil {
		rec.Score = g.scoreline()
	}
	if winner, done := g.MatchWinner(); done {
		rec.Winner = g.PlayerName(winner)
	}
	return rec
}

// LastTick returns the result of the most recent simulation tick of the
// current round. The zero value means the round has not moved yet.
func (g *Game) LastTick() arena.TickResult {
	return g.lastResult
}

// MatchWinner returns the match winner once the series is decided.
func (g *Game) MatchWinner() (core.PlayerID, bool) {
	return g.matchWinner, g.matchOver
}

// scoreline formats the running series score for the HUD and overlays.
func (g *Game) scoreline() string {
	return fmt.Sprintf("%s %d : %d %s",
		g.PlayerName(core.Player1), g.series.Wins(core.Player1),
		g.series.Wins(core.Player2), g.PlayerName(core.Player2))
}
