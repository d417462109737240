package behavior

import (
	"testing"

	"github.com/milk9111/cattoy/prefabs"
)

func loadPicker(t *testing.T) *Picker {
	t.Helper()
	src, err := prefabs.LoadScript("cat_behavior.tengo")
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	p, err := NewPicker(src)
	if err != nil {
		t.Fatalf("NewPicker: %v", err)
	}
	return p
}

func TestPickerProducesValidActions(t *testing.T) {
	p := loadPicker(t)

	rolls := []float64{0, 0.05, 0.15, 0.22, 0.28, 0.35, 0.45, 0.52, 0.6, 0.68, 0.75, 0.9, 0.99}
	for _, roll := range rolls {
		action, err := p.Next("idle", 0, roll)
		if err != nil {
			t.Fatalf("Next(roll=%v): %v", roll, err)
		}
		if action.Animation == "" {
			t.Fatalf("Next(roll=%v) returned empty animation", roll)
		}
		if action.Duration <= 0 {
			t.Fatalf("Next(roll=%v) returned duration %v", roll, action.Duration)
		}
	}
}

func TestPickerDeterministic(t *testing.T) {
	p := loadPicker(t)

	a, err := p.Next("idle", 3, 0.42)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	b, err := p.Next("idle", 3, 0.42)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if a != b {
		t.Fatalf("same inputs produced different actions: %+v vs %+v", a, b)
	}
}

func TestPickerBranches(t *testing.T) {
	p := loadPicker(t)

	cases := []struct {
		name     string
		prev     string
		clicks   int
		roll     float64
		wantAnim string
	}{
		{"walk_left", "idle", 0, 0.05, "walk"},
		{"run", "idle", 0, 0.28, "run"},
		{"sleep", "idle", 0, 0.35, "sleep"},
		{"stays_asleep", "sleep", 0, 0.05, "sleep"},
		{"jump_one_shot", "idle", 0, 0.52, "jump"},
		{"no_dance_before_ten_clicks", "idle", 0, 0.67, "box_play"},
		{"dance_after_ten_clicks", "idle", 12, 0.67, "dance"},
		{"fallback_idle", "idle", 0, 0.95, "idle"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			action, err := p.Next(c.prev, c.clicks, c.roll)
			if err != nil {
				t.Fatalf("Next: %v", err)
			}
			if action.Animation != c.wantAnim {
				t.Fatalf("Next(prev=%q clicks=%d roll=%v) = %q, want %q",
					c.prev, c.clicks, c.roll, action.Animation, c.wantAnim)
			}
			if c.wantAnim == "jump" && !action.OneShot {
				t.Fatal("jump should be a one-shot action")
			}
		})
	}
}

func TestPickerMovement(t *testing.T) {
	p := loadPicker(t)

	left, err := p.Next("idle", 0, 0.05)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if left.MoveX >= 0 {
		t.Fatalf("roll 0.05 should walk left, got move_x %v", left.MoveX)
	}

	right, err := p.Next("idle", 0, 0.15)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if right.MoveX <= 0 {
		t.Fatalf("roll 0.15 should walk right, got move_x %v", right.MoveX)
	}

	still, err := p.Next("idle", 0, 0.45)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if still.MoveX != 0 {
		t.Fatalf("play action should not move, got move_x %v", still.MoveX)
	}
}

func TestNewPickerRejectsBadScript(t *testing.T) {
	if _, err := NewPicker([]byte(`action := {`)); err == nil {
		t.Fatal("expected a compile error for malformed script")
	}
}
