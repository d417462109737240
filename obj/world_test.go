package obj

import (
	"testing"

	"github.com/milk9111/cattoy/common"
)

func TestCatStartsOnFloor(t *testing.T) {
	w := NewWorld(256, 256)
	if !w.Grounded() {
		t.Fatal("cat should start grounded")
	}
	_, y := w.CatPosition()
	if wantY := float64(common.FloorY - 256); y != wantY {
		t.Fatalf("cat top y = %v, want %v", y, wantY)
	}
}

func TestCatHit(t *testing.T) {
	w := NewWorld(256, 256)
	x, y := w.CatPosition()

	cases := []struct {
		name string
		px   float64
		py   float64
		want bool
	}{
		{"center", x + 128, y + 128, true},
		{"inside_corner", x + 10, y + 10, true},
		{"far_left", x - 300, y + 128, false},
		{"above", x + 128, y - 200, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := w.CatHit(c.px, c.py); got != c.want {
				t.Fatalf("CatHit(%v, %v) = %v, want %v", c.px, c.py, got, c.want)
			}
		})
	}
}

func TestCatWalks(t *testing.T) {
	w := NewWorld(256, 256)
	startX, _ := w.CatPosition()

	for i := 0; i < 60; i++ {
		w.SetCatVelocity(120)
		w.Step(common.TickSeconds)
	}
	x, _ := w.CatPosition()
	if x <= startX {
		t.Fatalf("cat did not move right: %v -> %v", startX, x)
	}
	if !w.Grounded() {
		t.Fatal("walking cat should stay on the floor")
	}
}

func TestCatJumpAndLand(t *testing.T) {
	w := NewWorld(256, 256)
	w.Jump()
	w.Step(common.TickSeconds)
	if w.Grounded() {
		t.Fatal("cat should leave the floor after a jump")
	}

	// A second jump mid-air is ignored; Jump is a no-op while airborne.
	w.Jump()

	for i := 0; i < 300; i++ {
		w.Step(common.TickSeconds)
	}
	if !w.Grounded() {
		t.Fatal("cat should land within five seconds")
	}
}
