package main

import (
	"fmt"
	"image"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/cattoy/animation"
	"github.com/milk9111/cattoy/behavior"
	"github.com/milk9111/cattoy/obj"
	"github.com/milk9111/cattoy/prefabs"
)

// Cat is the animated pet. It owns an animation controller, asks the
// behavior script what to do when its current action runs out, and renders
// the controller's frame index from the sprite atlas.
type Cat struct {
	lib    *animation.Library
	ctrl   *animation.Controller
	picker *behavior.Picker
	world  *obj.World

	sheet   *ebiten.Image
	columns int
	cellW   int
	cellH   int
	scale   float64

	actionTimer float64
	moveX       float64
	facingLeft  bool
	rng         *rand.Rand
}

func NewCat(spec *prefabs.CatSpec, lib *animation.Library, picker *behavior.Picker, sheet *ebiten.Image, world *obj.World) (*Cat, error) {
	ctrl, err := animation.NewController(lib, lib.Default())
	if err != nil {
		return nil, fmt.Errorf("cat: %w", err)
	}
	return &Cat{
		lib:     lib,
		ctrl:    ctrl,
		picker:  picker,
		world:   world,
		sheet:   sheet,
		columns: spec.Atlas.Columns,
		cellW:   spec.Atlas.CellWidth,
		cellH:   spec.Atlas.CellHeight,
		scale:   spec.Scale,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// RenderSize returns the on-screen cat size in pixels.
func (c *Cat) RenderSize() (w, h float64) {
	return float64(c.cellW) * c.scale, float64(c.cellH) * c.scale
}

// Controller exposes the animation controller for the debug overlay.
func (c *Cat) Controller() *animation.Controller { return c.ctrl }

// Update drives the behavior timer, the physics body, and the animation.
func (c *Cat) Update(dt float64, clicks int) {
	c.actionTimer -= dt
	if c.actionTimer <= 0 {
		c.decideNext(clicks)
	}

	if _, oneShot := c.ctrl.ResumeTarget(); oneShot {
		// reactions play out standing still
		c.world.SetCatVelocity(0)
	} else {
		c.world.SetCatVelocity(c.moveX)
	}
	if c.moveX < 0 {
		c.facingLeft = true
	} else if c.moveX > 0 {
		c.facingLeft = false
	}

	c.ctrl.Advance(dt)
}

func (c *Cat) decideNext(clicks int) {
	prev, _ := c.ctrl.Current()
	action, err := c.picker.Next(prev, clicks, c.rng.Float64())
	if err != nil {
		fmt.Printf("[behavior] %v\n", err)
		c.actionTimer = 2
		return
	}

	c.actionTimer = action.Duration
	c.moveX = action.MoveX
	if action.OneShot {
		if err := c.ctrl.PlayOnce(action.Animation, c.lib.Default()); err != nil {
			fmt.Printf("[behavior] one-shot %q: %v\n", action.Animation, err)
			return
		}
		if action.Animation == "jump" {
			c.world.Jump()
		}
		return
	}
	if err := c.ctrl.Play(action.Animation); err != nil {
		fmt.Printf("[behavior] play %q: %v\n", action.Animation, err)
	}
}

// OnClicked plays the cute reaction and holds the cat still until it
// finishes, when the controller resumes the idle loop on its own.
func (c *Cat) OnClicked() {
	if err := c.ctrl.PlayOnce("cute", c.lib.Default()); err != nil {
		fmt.Printf("[cat] cute reaction: %v\n", err)
		return
	}
	c.moveX = 0
	if def, ok := c.lib.Get("cute"); ok {
		c.actionTimer = float64(len(def.Frames))*def.FrameDuration + 0.5
	}
}

// ReloadLibrary swaps in a freshly built library, keeping the current
// animation when it still exists and falling back to the default otherwise.
func (c *Cat) ReloadLibrary(lib *animation.Library) error {
	name, _ := c.ctrl.Current()
	if _, ok := lib.Get(name); !ok {
		name = lib.Default()
	}
	ctrl, err := animation.NewController(lib, name)
	if err != nil {
		return fmt.Errorf("cat: reload: %w", err)
	}
	c.lib = lib
	c.ctrl = ctrl
	return nil
}

// SetPicker swaps in a recompiled behavior script.
func (c *Cat) SetPicker(p *behavior.Picker) {
	if p != nil {
		c.picker = p
	}
}

// Draw renders the current atlas frame at the cat's physics position.
func (c *Cat) Draw(screen *ebiten.Image) {
	_, idx := c.ctrl.Current()
	sx := (idx % c.columns) * c.cellW
	sy := (idx / c.columns) * c.cellH
	sub := c.sheet.SubImage(image.Rect(sx, sy, sx+c.cellW, sy+c.cellH)).(*ebiten.Image)

	x, y := c.world.CatPosition()
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	if c.facingLeft {
		op.GeoM.Scale(-c.scale, c.scale)
		// when flipped horizontally, translate by frame width * scale to align
		op.GeoM.Translate(x+float64(c.cellW)*c.scale, y)
	} else {
		op.GeoM.Scale(c.scale, c.scale)
		op.GeoM.Translate(x, y)
	}
	screen.DrawImage(sub, op)
}
