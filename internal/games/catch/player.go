package catch

import (
	"github.com/vovakirdan/tui-catch/internal/config"
	"github.com/vovakirdan/tui-catch/internal/core"
)

// Player is the catcher. It only moves horizontally, inside [0, worldW-W].
type Player struct {
	X, Y  int
	W, H  int
	Speed int
	maxX  int
}

// newPlayer places the catcher centered above the bottom margin.
func newPlayer(cfg config.CatchConfig) Player {
	p := cfg.Player
	return Player{
		X:     cfg.World.Width/2 - p.Width/2,
		Y:     cfg.World.Height - p.Height - p.BottomMargin,
		W:     p.Width,
		H:     p.Height,
		Speed: p.Speed,
		maxX:  cfg.World.Width - p.Width,
	}
}

// Move applies one tick of held input. Holding both directions cancels out.
func (p *Player) Move(left, right bool) {
	dx := 0
	if left {
		dx -= p.Speed
	}
	if right {
		dx += p.Speed
	}
	p.X = core.Clamp(p.X+dx, 0, p.maxX)
}

// Rect returns the player's collision rectangle.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}
