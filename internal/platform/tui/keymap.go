package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-lightcycle/internal/config"
	"github.com/vovakirdan/tui-lightcycle/internal/core"
)

// KeyMapper translates Bubble Tea key messages to per-player game actions.
// Steering bindings come from the duel configuration so both players can
// share one keyboard; global keys are fixed.
type KeyMapper struct {
	steering map[string]playerAction
}

type playerAction struct {
	player core.PlayerID
	action core.Action
}

// playerIDs maps roster order to player ids, matching the game package.
var keymapPlayerIDs = [2]core.PlayerID{core.Player1, core.Player2}

// NewKeyMapper builds a key mapper from the configured bindings.
func NewKeyMapper(cfg config.CyclesConfig) *KeyMapper {
	km := &KeyMapper{
		steering: make(map[string]playerAction),
	}
	for i, p := range cfg.Players {
		if i >= len(keymapPlayerIDs) {
			break
		}
		for action, keyName := range p.Keys.All() {
			km.steering[keyName] = playerAction{
				player: keymapPlayerIDs[i],
				action: action,
			}
		}
	}
	return km
}

// MapKeyToMultiFrame updates a multi-input frame based on a key message.
// Global actions land on both players' frames so either hand can confirm,
// pause, or restart. Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToMultiFrame(msg tea.KeyMsg, frame *core.MultiInputFrame) bool {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return true
	}

	// Global actions, attributed to player 1 (games treat them
	// as "either player")
	switch key {
	case "enter":
		frame.Set(core.Player1, core.ActionConfirm)
		return false
	case "b", "esc":
		frame.Set(core.Player1, core.ActionBack)
		return false
	case "p":
		frame.Set(core.Player1, core.ActionPause)
		return false
	case "r":
		frame.Set(core.Player1, core.ActionRestart)
		return false
	}

	// Per-player steering
	if pa, ok := km.steering[key]; ok {
		frame.Set(pa.player, pa.action)
	}

	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
