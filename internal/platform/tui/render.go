package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/assets"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/game"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightCyan:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var (
	hudStyle     = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
	hudKeyStyle  = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6"))
	hudDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Background(lipgloss.Color("6"))
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// DrawSnapshot clears dst and draws every sprite of snap, then the overlay
// for the menu and result screens. Sprites without an asset are skipped.
func DrawSnapshot(dst *core.Screen, snap *game.Snapshot, reg *assets.Registry) {
	dst.Clear()
	if snap == nil {
		return
	}

	for _, s := range snap.Sprites() {
		a, ok := reg.Lookup(s.Kind)
		if !ok {
			continue
		}
		drawSprite(dst, s.Box, a)
	}

	switch snap.State {
	case game.StateMenu:
		drawOverlay(dst, core.ColorBrightCyan,
			"SPACE INVADERS",
			"",
			"shoot them down before they land",
			legend(reg),
			"enter, space or click to start")
	case game.StateWin:
		drawOverlay(dst, core.ColorBrightGreen,
			"YOU WIN",
			"",
			fmt.Sprintf("score %d", snap.Score),
			"enter to play again")
	case game.StateLose:
		drawOverlay(dst, core.ColorBrightRed,
			"GAME OVER",
			"",
			fmt.Sprintf("score %d", snap.Score),
			"enter to play again")
	}
}

// legend names every registered sprite next to its first art row.
func legend(reg *assets.Registry) string {
	var parts []string
	for _, a := range reg.List() {
		if a.Title == "" {
			continue
		}
		glyph := string(a.Fill)
		if len(a.Art) > 0 {
			glyph = strings.TrimSpace(a.Art[0])
		}
		parts = append(parts, glyph+" "+a.Title)
	}
	return strings.Join(parts, "   ")
}

func drawSprite(dst *core.Screen, box core.Rect, a assets.Asset) {
	for row := 0; row < box.H; row++ {
		for col := 0; col < box.W; col++ {
			dst.SetColored(box.X+col, box.Y+row, a.CellAt(col, row), a.Color)
		}
	}
}

// drawOverlay draws a framed message box in the middle of dst. The first
// line is the title.
func drawOverlay(dst *core.Screen, c core.Color, lines ...string) {
	inner := 0
	for _, l := range lines {
		inner = max(inner, len([]rune(l)))
	}
	w := min(inner+4, dst.Width())
	h := min(len(lines)+2, dst.Height())
	if w < 3 || h < 3 {
		return
	}

	cx, cy := core.NewRect(0, 0, dst.Width(), dst.Height()).Center()
	box := core.NewRect(cx-w/2, cy-h/2, w, h)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	for i, l := range lines {
		y := box.Y + 1 + i
		if y >= box.Bottom()-1 {
			break
		}
		x := box.X + (w-len([]rune(l)))/2
		color := core.ColorWhite
		if i == 0 {
			color = c
		}
		dst.DrawTextColored(x, y, l, color)
	}
}

// RenderHUD renders the status row: score and state on the left, helpText
// on the right, padded or cut to width. helpText is expected to carry the HUD
// background already (see newHelp).
func RenderHUD(snap *game.Snapshot, width int, helpText string) string {
	if width <= 0 {
		return ""
	}
	left := " SCORE 0"
	if snap != nil {
		left = fmt.Sprintf(" SCORE %d  %s", snap.Score, strings.ToUpper(snap.State.String()))
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(helpText) - 1
	if helpText == "" || gap < 1 {
		return hudStyle.Width(width).MaxWidth(width).MaxHeight(1).Render(left)
	}
	return hudStyle.Render(left+strings.Repeat(" ", gap)) + helpText + hudStyle.Render(" ")
}
