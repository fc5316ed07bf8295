package catch

import "github.com/vovakirdan/tui-catch/internal/core"

// Kind identifies what a falling object does when caught.
type Kind int

const (
	KindFruit  Kind = iota // +multiplier score
	KindHazard             // -1 life unless shielded
	KindBonus              // Temporary score multiplier
	KindLife               // +1 life
	KindShield             // Temporary hazard immunity
	kindCount
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindFruit:
		return "Fruit"
	case KindHazard:
		return "Hazard"
	case KindBonus:
		return "Bonus"
	case KindLife:
		return "Life"
	case KindShield:
		return "Shield"
	default:
		return "?"
	}
}

// Glyph returns the display character for a kind.
// Hazards spin, so their glyph depends on the rotation angle.
func (k Kind) Glyph(rotation int) rune {
	switch k {
	case KindFruit:
		return ')'
	case KindHazard:
		return hazardFrames[(rotation%360+360)%360/90]
	case KindBonus:
		return '$'
	case KindLife:
		return '♥'
	case KindShield:
		return '◊'
	default:
		return '?'
	}
}

var hazardFrames = [4]rune{'◐', '◓', '◑', '◒'}

// Color returns the display color for a kind.
func (k Kind) Color() core.Color {
	switch k {
	case KindFruit:
		return core.ColorBrightYellow
	case KindHazard:
		return core.ColorBrown
	case KindBonus:
		return core.ColorOrange
	case KindLife:
		return core.ColorBrightRed
	case KindShield:
		return core.ColorBrightCyan
	default:
		return core.ColorDefault
	}
}

// IsPowerup reports whether catching the kind triggers powerup feedback.
func (k Kind) IsPowerup() bool {
	return k == KindBonus || k == KindLife || k == KindShield
}
