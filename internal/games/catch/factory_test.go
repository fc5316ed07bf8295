package catch

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-catch/internal/config"
)

func TestSpawnWeightedDistribution(t *testing.T) {
	cfg := config.DefaultCatchConfig()

	// One full sweep of the weight table: kind roll i, then x, y, speed.
	var values []int
	for i := 0; i < cfg.Objects.Weights.Total(); i++ {
		values = append(values, i, 0, 0, 0)
	}

	f := NewObjectFactory(cfg, NewScriptedSource(values...))
	counts := make(map[Kind]int)
	for i := 0; i < cfg.Objects.Weights.Total(); i++ {
		obj, err := f.Spawn()
		if err != nil {
			t.Fatalf("Spawn %d: %v", i, err)
		}
		counts[obj.Kind]++
	}

	want := map[Kind]int{
		KindFruit:  50,
		KindHazard: 40,
		KindBonus:  5,
		KindLife:   3,
		KindShield: 2,
	}
	for kind, n := range want {
		if counts[kind] != n {
			t.Errorf("%v: got %d spawns, want %d", kind, counts[kind], n)
		}
	}
}

func TestSpawnRanges(t *testing.T) {
	cfg := config.DefaultCatchConfig()
	f := NewObjectFactory(cfg, NewRandSource(7))

	maxX := cfg.World.Width - cfg.Objects.Size
	for i := 0; i < 2000; i++ {
		obj, err := f.Spawn()
		if err != nil {
			t.Fatalf("Spawn: %v", err)
		}
		if obj.X < 0 || obj.X > maxX {
			t.Fatalf("X %d outside [0, %d]", obj.X, maxX)
		}
		if obj.Y < cfg.Objects.SpawnMinY || obj.Y > cfg.Objects.SpawnMaxY {
			t.Fatalf("Y %d outside [%d, %d]", obj.Y, cfg.Objects.SpawnMinY, cfg.Objects.SpawnMaxY)
		}
		if obj.Speed < cfg.Objects.MinSpeed || obj.Speed > cfg.Objects.MaxSpeed {
			t.Fatalf("Speed %d outside [%d, %d]", obj.Speed, cfg.Objects.MinSpeed, cfg.Objects.MaxSpeed)
		}
		if obj.Rotation != 0 {
			t.Fatalf("Rotation = %d, want 0", obj.Rotation)
		}
	}
}

func TestSpawnDrawOrder(t *testing.T) {
	cfg := config.DefaultCatchConfig()
	// kind roll 95 -> Life (cumulative 90..94 bonus, 95..97 life)
	f := NewObjectFactory(cfg, NewScriptedSource(95, 100, 10, 2))

	obj, err := f.Spawn()
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}

	want := FallingObject{
		Kind:  KindLife,
		X:     100,
		Y:     cfg.Objects.SpawnMinY + 10,
		Speed: cfg.Objects.MinSpeed + 2,
	}
	if obj != want {
		t.Errorf("Spawn = %+v, want %+v", obj, want)
	}
}

func TestSpawnExhaustedSource(t *testing.T) {
	cfg := config.DefaultCatchConfig()

	tests := []struct {
		name   string
		values []int
	}{
		{"empty", nil},
		{"kind only", []int{0}},
		{"missing speed", []int{0, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewObjectFactory(cfg, NewScriptedSource(tt.values...))
			_, err := f.Spawn()
			if !errors.Is(err, ErrRandomExhausted) {
				t.Errorf("Spawn error = %v, want ErrRandomExhausted", err)
			}
		})
	}
}

func TestScriptedSourceModulo(t *testing.T) {
	src := NewScriptedSource(7, -1, 3)

	tests := []struct {
		n    int
		want int
	}{
		{5, 2},
		{4, 3},
		{10, 3},
	}
	for _, tt := range tests {
		got, err := src.Intn(tt.n)
		if err != nil {
			t.Fatalf("Intn(%d): %v", tt.n, err)
		}
		if got != tt.want {
			t.Errorf("Intn(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}

	if src.Remaining() != 0 {
		t.Errorf("Remaining = %d, want 0", src.Remaining())
	}
}

func TestRandSourceDeterminism(t *testing.T) {
	a := NewRandSource(12345)
	b := NewRandSource(12345)

	for i := 0; i < 100; i++ {
		x, _ := a.Intn(1000)
		y, _ := b.Intn(1000)
		if x != y {
			t.Fatalf("draw %d: %d != %d", i, x, y)
		}
	}
}
