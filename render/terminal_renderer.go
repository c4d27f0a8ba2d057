// Package render draws game snapshots onto a tcell screen
package render

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/duck-goose/component"
	"github.com/lixenwraith/duck-goose/engine"
	"github.com/lixenwraith/duck-goose/parameter"
)

// hudRows is the number of terminal rows above the playfield
const hudRows = 1

const healthBarCells = 3

// accessory runes are drawn above the duck body
var accessoryRunes = map[component.Variant]rune{
	component.VariantCowboy:  '^',
	component.VariantScholar: '%',
	component.VariantCrown:   '*',
	component.VariantRescue:  '+',
	component.VariantWizard:  '~',
}

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int
	status string
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{screen: screen, width: w, height: h}
}

// Resize updates the cell dimensions after a terminal resize
func (r *TerminalRenderer) Resize(cols, rows int) {
	r.width, r.height = cols, rows
}

// SetStatus sets the right-aligned debug line in the HUD, empty hides it
func (r *TerminalRenderer) SetStatus(s string) {
	r.status = s
}

// ViewportFor converts terminal cells to the engine's logical playfield size
func ViewportFor(cols, rows int) (w, h float64) {
	fieldRows := max(rows-hudRows, 1)
	return float64(max(cols, 1)) * parameter.CellWidth, float64(fieldRows) * parameter.CellHeight
}

// cellOf maps a logical position to a screen cell
func cellOf(x, y float64) (col, row int) {
	return int(math.Floor(x / parameter.CellWidth)), hudRows + int(math.Floor(y/parameter.CellHeight))
}

// RenderFrame renders the entire frame
func (r *TerminalRenderer) RenderFrame(snap engine.Snapshot) {
	r.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.fill(defaultStyle)

	r.drawEntities(snap, defaultStyle)
	r.drawConfetti(snap.Confetti, defaultStyle)
	r.drawPopups(snap.Popups, defaultStyle)
	r.drawHud(snap, defaultStyle)

	switch snap.Phase {
	case engine.PhaseWelcome:
		r.drawWelcome(snap, defaultStyle)
	case engine.PhaseGameOver:
		r.drawGameOver(snap, defaultStyle)
	}

	r.screen.Show()
}

func (r *TerminalRenderer) fill(style tcell.Style) {
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// set draws one rune, clipping to the playfield
func (r *TerminalRenderer) set(x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= r.width || y < hudRows || y >= r.height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

// drawText draws s starting at x on row y, clipped horizontally
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) {
	if y < 0 || y >= r.height {
		return
	}
	for _, ch := range s {
		if x >= r.width {
			return
		}
		if x >= 0 {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
}

func (r *TerminalRenderer) drawCentered(y int, s string, style tcell.Style) {
	r.drawText((r.width-len([]rune(s)))/2, y, s, style)
}

func (r *TerminalRenderer) drawEntities(snap engine.Snapshot, base tcell.Style) {
	for i := range snap.Entities {
		e := &snap.Entities[i]
		if e.Opacity <= 0 {
			continue
		}
		col, row := cellOf(e.Pos.X, e.Pos.Y)
		if e.IsGoose() {
			r.drawGoose(col, row, e, snap.Goose, base)
			continue
		}
		r.drawDuck(col, row, e, snap.Now, base)
	}
}

func (r *TerminalRenderer) drawDuck(col, row int, e *component.Entity, now time.Duration, base tcell.Style) {
	fg := RgbDuck
	if e.Safe(now) {
		fg = RgbDuckSafe
	}
	if e.Opacity < 0.5 {
		fg = RgbDim
	}
	style := base.Foreground(fg)

	body := '>'
	if e.Dir.X < 0 {
		body = '<'
	}
	r.set(col, row, body, style.Bold(true))

	if acc, ok := accessoryRunes[e.Duck.Variant]; ok {
		r.set(col, row-1, acc, style)
	}

	// Health bar under the body, one cell per third of health
	filled := int(math.Ceil(e.Duck.Health / 100 * healthBarCells))
	barStyle := base.Foreground(HealthColor(e.Duck.Health))
	for i := 0; i < healthBarCells; i++ {
		ch := '-'
		if i < filled {
			ch = '='
		}
		r.set(col-1+i, row+1, ch, barStyle)
	}
}

func (r *TerminalRenderer) drawGoose(col, row int, e *component.Entity, powers component.GoosePowers, base tcell.Style) {
	fg := RgbGoose
	if powers.IsBursting {
		fg = RgbGooseBurst
	}
	if e.Opacity < 0.5 {
		fg = RgbDim
	}
	style := base.Foreground(fg).Bold(true)

	n := max(int(math.Round(powers.Size)), 1)
	for i := 0; i < n; i++ {
		r.set(col+i, row, 'G', style)
	}
}

func (r *TerminalRenderer) drawConfetti(particles []component.Confetti, base tcell.Style) {
	for _, c := range particles {
		col, row := cellOf(c.Pos.X, c.Pos.Y)
		r.set(col, row, '*', base.Foreground(ConfettiColor(c.Color)))
	}
}

// drawPopups rises each label from the playfield center
func (r *TerminalRenderer) drawPopups(popups []component.Popup, base tcell.Style) {
	centerRow := hudRows + (r.height-hudRows)/2
	for _, p := range popups {
		if p.Opacity <= 0 {
			continue
		}
		fg := RgbPopupDefault
		if p.Text == "GOOSE" {
			fg = RgbPopupGoose
		}
		if p.Opacity < 0.5 {
			fg = RgbDim
		}
		row := centerRow + int(math.Round(p.Offset/parameter.CellHeight))
		if row < hudRows {
			continue
		}
		r.drawCentered(row, p.Text, base.Foreground(fg).Bold(true))
	}
}

// HudText is the left HUD line for snap
func HudText(snap engine.Snapshot) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Ducks: %d  Score: %d", snap.DuckCount, int(math.Floor(snap.Score)))
	if snap.Chase {
		fmt.Fprintf(&sb, "  Goose Power: %d%%", int(math.Floor(snap.Goose.Size*100)))
		if snap.Countdowns {
			fmt.Fprintf(&sb, "  Countdown: %d", snap.Countdown)
		}
	}
	return sb.String()
}

func (r *TerminalRenderer) drawHud(snap engine.Snapshot, base tcell.Style) {
	style := base.Foreground(RgbHud)
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, 0, ' ', nil, style)
	}
	if snap.Phase != engine.PhaseWelcome {
		r.drawText(0, 0, HudText(snap), style)
	}
	if r.status != "" {
		r.drawText(r.width-len([]rune(r.status)), 0, r.status, base.Foreground(RgbDim))
	}
}

func (r *TerminalRenderer) drawWelcome(snap engine.Snapshot, base tcell.Style) {
	lines := []string{parameter.TitleText, "", parameter.PressHintText}
	lines = append(lines, historyLines(snap.History, false)...)

	y := (r.height - len(lines)) / 2
	r.drawCentered(y, lines[0], base.Foreground(RgbTitle).Bold(true))
	for i, line := range lines[1:] {
		r.drawCentered(y+1+i, line, base.Foreground(RgbText))
	}
}

func (r *TerminalRenderer) drawGameOver(snap engine.Snapshot, base tcell.Style) {
	lines := []string{
		"Game Over",
		fmt.Sprintf("Final score: %d", int(math.Floor(snap.Score))),
		snap.CatchSummary(),
	}
	lines = append(lines, historyLines(snap.History, true)...)
	lines = append(lines, "", "press to play again")

	y := (r.height - len(lines)) / 2
	r.drawCentered(y, lines[0], base.Foreground(RgbPopupGoose).Bold(true))
	for i, line := range lines[1:] {
		r.drawCentered(y+1+i, line, base.Foreground(RgbText))
	}
}

// historyLines formats the high-score table, dates shown on the game-over panel
func historyLines(history []component.GameScore, withDates bool) []string {
	if len(history) == 0 {
		return nil
	}
	lines := []string{"", "High Scores"}
	for i, s := range history {
		line := fmt.Sprintf("%d. %d", i+1, int(math.Floor(s.Score)))
		if withDates {
			if t, err := time.Parse(time.RFC3339Nano, s.Date); err == nil {
				line += "  " + t.Local().Format("2006-01-02 15:04")
			}
		}
		lines = append(lines, line)
	}
	return lines
}
