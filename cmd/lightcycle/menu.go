package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lightcycle/internal/games/cycles"
	"github.com/vovakirdan/tui-lightcycle/internal/match"
	"github.com/vovakirdan/tui-lightcycle/internal/platform/tui"
	"github.com/vovakirdan/tui-lightcycle/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a variant picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
After a match ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Tab          - Round history
  Q            - Quit

Examples:
  lightcycle menu
  lightcycle menu --fps 30`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := detectRuntime()
	duelCfg, err := loadDuelConfig()
	if err != nil {
		logger.Error("could not load config", "error", err)
		os.Exit(1)
	}

	// One ledger for the whole menu session
	ledger := &match.Ledger{}

	for {
		menuResult, err := tui.RunMenu(duelCfg, cfg)
		if err != nil {
			logger.Error("menu failed", "error", err)
			break
		}

		// Carry size changes forward
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(ledger, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				logger.Error("round history failed", "error", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from the history
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		game, err := registry.Create(gameID)
		if err != nil {
			logger.Error("could not create game", "error", err)
			continue
		}

		result, err := tui.Run(game, duelCfg, cfg)
		if err != nil {
			logger.Error("game session failed", "error", err)
			break
		}
		cfg = result.Config

		if duel, ok := game.(*cycles.Game); ok {
			ledger.Add(duel.Result())
		}

		if result.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(ledger, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				logger.Error("round history failed", "error", sbErr)
			}
			if !goBack {
				break
			}
		}
		// Back to the menu for another match
	}
}
