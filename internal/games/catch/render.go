package catch

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-catch/internal/core"
)

// Rendering characters
const (
	CatcherChar = '█'
	RimChar     = '▀'
)

// Minimum terminal size the playfield is drawn at.
const (
	MinWidth  = 32
	MinHeight = 12
)

// levelTints is the playfield background per level; the last entry repeats.
var levelTints = []core.Color{core.ColorDefault, core.ColorJungle, core.ColorSwamp, core.ColorDusk}

// Render draws the current frame. Row 0 is the HUD; the world is scaled onto
// the rows below it.
func (s *Session) Render(dst *core.Screen) {
	RenderSnapshot(dst, s.Snapshot(), s.Title())
}

// RenderSnapshot draws snap onto dst.
func RenderSnapshot(dst *core.Screen, snap Snapshot, title string) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < MinWidth || h < MinHeight {
		dst.DrawTextCentered(h/2, "Terminal too small", core.ColorBrightRed)
		return
	}

	switch snap.Phase {
	case PhaseMenu:
		drawMessage(dst, strings.ToUpper(title), core.ColorBrightGreen,
			"Catch the fruit, dodge the rocks",
			"",
			"Enter  Start",
			"S      Settings",
			"Q      Quit",
			"",
			fmt.Sprintf("High Score: %d", snap.Best),
		)
		return
	case PhaseSettings:
		drawMessage(dst, "SETTINGS", core.ColorBrightCyan,
			"M  Music:   "+onOff(snap.Settings.Music),
			"E  Effects: "+onOff(snap.Settings.Effects),
			"",
			"B  Back",
		)
		return
	case PhaseClosed:
		return
	}

	field := core.NewRect(0, 1, w, h-1)
	dst.ShadeRect(field, levelTint(snap.Level))

	for _, obj := range snap.Objects {
		drawObject(dst, snap, field, obj)
	}
	drawCatcher(dst, snap, field)
	drawHUD(dst, snap)

	switch snap.Phase {
	case PhasePaused:
		drawMessage(dst, "PAUSED", core.ColorBrightYellow, "Press P to resume")
	case PhaseGameOver:
		drawMessage(dst, "GAME OVER", core.ColorBrightRed,
			fmt.Sprintf("Final Score: %d", snap.FinalScore),
			fmt.Sprintf("High Score: %d", snap.Best),
			"",
			"R restart  B menu  Q quit",
		)
	}
}

// toField maps a world rectangle onto the terminal playfield.
func toField(r core.Rect, snap Snapshot, field core.Rect) core.Rect {
	return core.NewRect(
		field.X+core.Scale(r.X, snap.WorldW, field.W),
		field.Y+core.Scale(r.Y, snap.WorldH, field.H),
		core.ScaleSize(r.W, snap.WorldW, field.W),
		core.ScaleSize(r.H, snap.WorldH, field.H),
	)
}

func drawObject(dst *core.Screen, snap Snapshot, field core.Rect, obj FallingObject) {
	cell := toField(obj.Rect(snap.ObjectSize), snap, field)
	glyph := obj.Kind.Glyph(obj.Rotation)
	fg := obj.Kind.Color()

	for y := cell.Y; y < cell.Bottom(); y++ {
		// Objects waiting above the world must not overwrite the HUD.
		if y < field.Y || y >= field.Bottom() {
			continue
		}
		for x := cell.X; x < cell.Right(); x++ {
			dst.SetColor(x, y, glyph, fg)
		}
	}
}

func drawCatcher(dst *core.Screen, snap Snapshot, field core.Rect) {
	r := toField(snap.Player, snap, field)

	dst.DrawHLine(r.X, r.Y, r.W, RimChar, core.ColorGreen)
	dst.DrawRect(core.NewRect(r.X, r.Y+1, r.W, r.H-1), CatcherChar, core.ColorBrightGreen)

	if snap.ShieldActive {
		halo := core.NewRect(r.X-1, r.Y-1, r.W+2, r.H+2)
		dst.DrawBox(halo, core.ColorBrightCyan)
	}
}

func drawHUD(dst *core.Screen, snap Snapshot) {
	left := fmt.Sprintf(" Score: %d  Lives: %d  Level: %d ", snap.Score, snap.Lives, snap.Level)
	dst.DrawTextColor(1, 0, left, core.ColorBrightWhite)

	var effects []string
	if snap.Multiplier > 1 {
		effects = append(effects, fmt.Sprintf("x%d %.1fs", snap.Multiplier, snap.MultiplierRemaining.Seconds()))
	}
	if snap.ShieldActive {
		effects = append(effects, fmt.Sprintf("Shield %.1fs", snap.ShieldRemaining.Seconds()))
	}
	effects = append(effects, fmt.Sprintf("Best: %d", snap.Best))

	right := " " + strings.Join(effects, "  ") + " "
	dst.DrawTextColor(dst.Width()-len([]rune(right))-1, 0, right, core.ColorYellow)
}

// drawMessage draws a bordered message box in the center of the screen.
func drawMessage(dst *core.Screen, title string, titleColor core.Color, lines ...string) {
	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 6
	boxH := len(lines) + 4

	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.ShadeRect(box, core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextColor(box.X+(boxW-len([]rune(title)))/2, box.Y+1, title, titleColor)
	for i, l := range lines {
		dst.DrawTextColor(box.X+3, box.Y+3+i, l, core.ColorWhite)
	}
}

func levelTint(level int) core.Color {
	idx := core.Clamp(level-1, 0, len(levelTints)-1)
	return levelTints[idx]
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}
