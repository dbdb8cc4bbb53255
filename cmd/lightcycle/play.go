package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-lightcycle/internal/config"
	"github.com/vovakirdan/tui-lightcycle/internal/core"
	"github.com/vovakirdan/tui-lightcycle/internal/games/cycles"
	"github.com/vovakirdan/tui-lightcycle/internal/match"
	"github.com/vovakirdan/tui-lightcycle/internal/platform/tui"
	"github.com/vovakirdan/tui-lightcycle/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a duel",
	Long: `Start a duel directly. The variant defaults to the standard duel.

Controls:
  WASD        - Steer player 1 (left side)
  Arrow keys  - Steer player 2 (right side)
  Enter       - Next round (after a round ends)
  P           - Pause
  R           - Rematch (after the series is decided)
  Tab         - Round history
  Q/Ctrl+C    - Quit

Steering keys can be remapped in the config file; run
'lightcycle config' to see the defaults.

Examples:
  lightcycle play
  lightcycle play duel_blitz
  lightcycle play --config ./my-duel.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

// logger reports CLI diagnostics on stderr, outside the alt screen.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "lightcycle",
})

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "duel"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		logger.Error("unknown variant", "variant", gameID)
		logger.Print("Run 'lightcycle list' to see available variants.")
		os.Exit(1)
	}

	cfg := detectRuntime()
	duelCfg, err := loadDuelConfig()
	if err != nil {
		logger.Error("could not load config", "error", err)
		os.Exit(1)
	}

	ledger := &match.Ledger{}
	runSessions(gameID, duelCfg, &cfg, ledger)
}

// detectRuntime builds the runtime config from the terminal size and flags.
func detectRuntime() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	} else {
		logger.Warn("could not detect terminal size, using 80x24", "error", err)
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
}

// loadDuelConfig loads the duel configuration for the key bindings.
// The game itself loads the same file through its config path.
func loadDuelConfig() (config.CyclesConfig, error) {
	cycles.SetConfigPath(flagConfig)
	return config.LoadCycles(flagConfig)
}

// runSessions plays matches of the given variant until the user quits,
// detouring through the round history whenever Tab is pressed.
func runSessions(gameID string, duelCfg config.CyclesConfig, cfg *core.RuntimeConfig, ledger *match.Ledger) {
	for {
		game, err := registry.Create(gameID)
		if err != nil {
			logger.Error("could not create game", "error", err)
			os.Exit(1)
		}

		result, err := tui.Run(game, duelCfg, *cfg)
		if err != nil {
			logger.Error("game session failed", "error", err)
			os.Exit(1)
		}
		*cfg = result.Config

		// Record the match, finished or not
		if duel, ok := game.(*cycles.Game); ok {
			ledger.Add(duel.Result())
		}

		if !result.WantsScoreboard {
			return
		}

		goBack, err := tui.RunScoreboard(ledger, cfg.ScreenW, cfg.ScreenH)
		if err != nil {
			logger.Error("round history failed", "error", err)
			os.Exit(1)
		}
		if !goBack {
			return
		}
		// Back from the history starts a fresh match
	}
}
