package cycles

import (
	"fmt"

	"github.com/vovakirdan/tui-lightcycle/internal/arena"
	"github.com/vovakirdan/tui-lightcycle/internal/core"
)

// Render draws the game to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.configErr != nil {
		g.renderOverlay(dst, "Config error", g.configErr.Error())
		return
	}
	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderWalls(dst)
	g.renderCycles(dst)

	switch {
	case g.matchOver:
		g.renderOverlay(dst, g.matchBanner(), "Press R for a rematch")
	case g.roundOver:
		g.renderOverlay(dst, g.roundBanner(), "Press Enter for next round")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	var hud string
	if g.configErr != nil || g.series == nil {
		hud = " " + g.Title()
	} else {
		hud = fmt.Sprintf(" %s — Round %d  %s  (first to %d)",
			g.Title(), g.seriesRounds()+1, g.scoreline(), g.series.Target())
	}

	dst.DrawText(0, 0, hud)

	// Draw separator
	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}
}

// renderWalls draws the playfield border. The border sits one cell
// outside the grid so crossing it is always fatal.
func (g *Game) renderWalls(dst *core.Screen) {
	dst.DrawBox(core.NewRect(g.mapOffsetX-1, g.mapOffsetY-1, g.cfg.Grid.Width+2, g.cfg.Grid.Height+2))
}

// renderCycles draws both trails and heads, plus the impact marker
// for a freshly ended round.
func (g *Game) renderCycles(dst *core.Screen) {
	if g.round == nil {
		return
	}
	snap := g.round.Snapshot()

	for _, p := range snap.Players {
		color := g.colors[p.ID]
		for _, seg := range p.Trail {
			g.setCell(dst, seg, '▒', color)
		}
		head := '█'
		if p.Eliminated {
			head = '▒'
		}
		g.setCell(dst, p.Position, head, color.Bright())
	}

	// Impact markers land on the cell each loser tried to enter,
	// clamped onto the grid for wall hits.
	if snap.Status == arena.StatusEnded {
		for _, p := range snap.Players {
			if !p.Eliminated {
				continue
			}
			impact := core.Position{
				X: core.Clamp(p.Impact.X, 0, snap.Width-1),
				Y: core.Clamp(p.Impact.Y, 0, snap.Height-1),
			}
			g.setCell(dst, impact, '✕', core.ColorWhite.Bright())
		}
	}
}

// setCell plots one grid cell onto the screen if it is visible.
func (g *Game) setCell(dst *core.Screen, p core.Position, ch rune, color core.Color) {
	sx := g.mapOffsetX + p.X
	sy := g.mapOffsetY + p.Y
	if sx >= 0 && sx < dst.Width() && sy >= 0 && sy < dst.Height() {
		dst.SetColored(sx, sy, ch, color)
	}
}

// roundBanner describes the round that just ended.
func (g *Game) roundBanner() string {
	records := g.series.Records()
	if len(records) == 0 {
		return "Round over"
	}
	last := records[len(records)-1]
	if last.Outcome == arena.DoubleElimination {
		return fmt.Sprintf("Round %d: no contest (%s)", last.Number, last.Cause)
	}
	return fmt.Sprintf("Round %d: %s takes it (%s)", last.Number, g.PlayerName(last.Winner), last.Cause)
}

// matchBanner describes the decided match.
func (g *Game) matchBanner() string {
	return fmt.Sprintf("%s wins the match %d:%d",
		g.PlayerName(g.matchWinner),
		g.series.Wins(g.matchWinner),
		g.series.Wins(g.matchWinner.Other()))
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len([]rune(line1))
	if n := len([]rune(line2)); n > maxLen {
		maxLen = n
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
