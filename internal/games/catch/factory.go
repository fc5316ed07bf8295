package catch

import (
	"fmt"

	"github.com/vovakirdan/tui-catch/internal/config"
)

// weightedKind is one row of the spawn table.
type weightedKind struct {
	Kind   Kind
	Weight int
}

// ObjectFactory produces freshly spawned falling objects.
// Every value it produces is a pure function of its random source.
type ObjectFactory struct {
	src      Source
	table    []weightedKind
	total    int
	maxX     int // Inclusive upper bound for X
	minY     int
	maxY     int
	minSpeed int
	maxSpeed int
}

// NewObjectFactory creates a factory for the given world and object settings.
// The config is assumed to be valid (see validateConfig).
func NewObjectFactory(cfg config.CatchConfig, src Source) *ObjectFactory {
	w := cfg.Objects.Weights
	table := []weightedKind{
		{KindFruit, w.Fruit},
		{KindHazard, w.Hazard},
		{KindBonus, w.Bonus},
		{KindLife, w.Life},
		{KindShield, w.Shield},
	}

	return &ObjectFactory{
		src:      src,
		table:    table,
		total:    w.Total(),
		maxX:     cfg.World.Width - cfg.Objects.Size,
		minY:     cfg.Objects.SpawnMinY,
		maxY:     cfg.Objects.SpawnMaxY,
		minSpeed: cfg.Objects.MinSpeed,
		maxSpeed: cfg.Objects.MaxSpeed,
	}
}

// Spawn creates a new object above the visible area.
// Values are drawn in a fixed order: kind, x, y, speed.
func (f *ObjectFactory) Spawn() (FallingObject, error) {
	kind, err := f.rollKind()
	if err != nil {
		return FallingObject{}, fmt.Errorf("spawn kind: %w", err)
	}

	x, err := f.between(0, f.maxX)
	if err != nil {
		return FallingObject{}, fmt.Errorf("spawn x: %w", err)
	}

	y, err := f.between(f.minY, f.maxY)
	if err != nil {
		return FallingObject{}, fmt.Errorf("spawn y: %w", err)
	}

	speed, err := f.between(f.minSpeed, f.maxSpeed)
	if err != nil {
		return FallingObject{}, fmt.Errorf("spawn speed: %w", err)
	}

	return FallingObject{
		X:     x,
		Y:     y,
		Kind:  kind,
		Speed: speed,
	}, nil
}

// rollKind selects a kind by cumulative weight.
func (f *ObjectFactory) rollKind() (Kind, error) {
	roll, err := f.src.Intn(f.total)
	if err != nil {
		return KindFruit, err
	}

	cumulative := 0
	for _, w := range f.table {
		cumulative += w.Weight
		if roll < cumulative {
			return w.Kind, nil
		}
	}

	return KindFruit, nil
}

// between returns a uniform integer in [lo, hi].
func (f *ObjectFactory) between(lo, hi int) (int, error) {
	n, err := f.src.Intn(hi - lo + 1)
	if err != nil {
		return 0, err
	}
	return lo + n, nil
}
