package catch

import (
	"testing"

	"github.com/vovakirdan/tui-catch/internal/config"
	"github.com/vovakirdan/tui-catch/internal/core"
)

func TestResolveAppliesEffects(t *testing.T) {
	cfg := config.DefaultCatchConfig()
	player := core.NewRect(500, 600, 90, 90)

	tests := []struct {
		name       string
		kind       Kind
		shield     bool
		wantScore  int
		wantLives  int
		wantEvents []EventType
	}{
		{"fruit", KindFruit, false, 1, 3, []EventType{EventCaughtFruit}},
		{"hazard", KindHazard, false, 0, 2, []EventType{EventHitHazard}},
		{"shielded hazard", KindHazard, true, 0, 3, nil},
		{"bonus", KindBonus, false, 0, 3, []EventType{EventPickedPowerup}},
		{"life", KindLife, false, 0, 4, []EventType{EventPickedPowerup}},
		{"shield", KindShield, false, 0, 3, []EventType{EventPickedPowerup}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := newTestSet(t, cfg, 9)
			for i := range set.objects {
				set.objects[i].Y = -1000
			}
			set.objects[2] = FallingObject{X: 520, Y: 620, Kind: tt.kind, Speed: 3}

			st := newState(cfg.Rules)
			if tt.shield {
				st.catchShield()
			}

			events, err := NewResolver(cfg.Objects.Size).Resolve(player, set, &st, 0)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}

			if st.Score() != tt.wantScore || st.Lives() != tt.wantLives {
				t.Errorf("score=%d lives=%d, want score=%d lives=%d",
					st.Score(), st.Lives(), tt.wantScore, tt.wantLives)
			}
			if len(events) != len(tt.wantEvents) {
				t.Fatalf("events = %v, want %v", events, tt.wantEvents)
			}
			for i, ev := range events {
				if ev.Type != tt.wantEvents[i] || ev.Kind != tt.kind {
					t.Errorf("event %d = %+v, want %v/%v", i, ev, tt.wantEvents[i], tt.kind)
				}
			}

			if set.At(2).Y >= cfg.Objects.SpawnMaxY+1 {
				t.Errorf("caught object not recycled, Y = %d", set.At(2).Y)
			}
			if set.Len() != cfg.Objects.Count {
				t.Errorf("Len = %d, want %d", set.Len(), cfg.Objects.Count)
			}
		})
	}
}

func TestResolveSlotOrder(t *testing.T) {
	cfg := config.DefaultCatchConfig()
	player := core.NewRect(500, 600, 90, 90)

	set := newTestSet(t, cfg, 11)
	for i := range set.objects {
		set.objects[i].Y = -1000
	}
	// Bonus in an earlier slot boosts the fruit caught in the same tick.
	set.objects[0] = FallingObject{X: 510, Y: 610, Kind: KindBonus}
	set.objects[1] = FallingObject{X: 530, Y: 620, Kind: KindFruit}

	st := newState(cfg.Rules)
	events, err := NewResolver(cfg.Objects.Size).Resolve(player, set, &st, 0)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if st.Score() != 2 {
		t.Errorf("Score = %d, want 2", st.Score())
	}
	if len(events) != 2 || events[0].Type != EventPickedPowerup || events[1].Type != EventCaughtFruit {
		t.Errorf("events = %+v, want powerup then fruit", events)
	}
}

func TestResolveEdgeContactIsNotCollision(t *testing.T) {
	cfg := config.DefaultCatchConfig()
	player := core.NewRect(500, 600, 90, 90)

	set := newTestSet(t, cfg, 13)
	for i := range set.objects {
		set.objects[i].Y = -1000
	}
	// Right edge of the object touches the player's left edge.
	set.objects[0] = FallingObject{X: 500 - cfg.Objects.Size, Y: 620, Kind: KindHazard}
	// Bottom edge touches the player's top edge.
	set.objects[1] = FallingObject{X: 520, Y: 600 - cfg.Objects.Size, Kind: KindHazard}

	st := newState(cfg.Rules)
	events, err := NewResolver(cfg.Objects.Size).Resolve(player, set, &st, 0)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(events) != 0 || st.Lives() != cfg.Rules.Lives {
		t.Errorf("touching edges collided: events=%v lives=%d", events, st.Lives())
	}
}
