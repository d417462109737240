package animation

import "fmt"

// Mode is the playback mode of the current animation.
type Mode int

const (
	// Looping wraps back to frame 0 after the last frame.
	Looping Mode = iota
	// OneShot plays through once, then switches to its resume animation.
	OneShot
)

func (m Mode) String() string {
	if m == OneShot {
		return "one-shot"
	}
	return "looping"
}

// Controller owns one entity's animation state and drives it forward with
// wall-clock time. It is not safe for concurrent use; each animated entity
// mutates its own controller from the update loop.
type Controller struct {
	lib      *Library
	name     string
	frame    int // index into the current def's Frames
	elapsed  float64
	mode     Mode
	resumeTo string
}

// NewController creates a controller playing name in Looping mode.
func NewController(lib *Library, name string) (*Controller, error) {
	if lib == nil {
		return nil, fmt.Errorf("animation: nil library")
	}
	if _, ok := lib.Get(name); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAnimation, name)
	}
	return &Controller{lib: lib, name: name}, nil
}

// Play requests that name become the current looping animation. Requesting
// the animation that is already looping is a deliberate no-op so redundant
// requests (held keys, repeated clicks) don't reset the loop.
func (c *Controller) Play(name string) error {
	if name == c.name && c.mode == Looping {
		return nil
	}
	if _, ok := c.lib.Get(name); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAnimation, name)
	}
	c.name = name
	c.frame = 0
	c.elapsed = 0
	c.mode = Looping
	c.resumeTo = ""
	return nil
}

// PlayOnce requests a one-shot playback of name that switches to resumeTo on
// completion. A one-shot interrupts whatever is playing; last request wins.
// If resumeTo doesn't resolve by the time the one-shot finishes, the library
// default is used instead so the entity is never left without an animation.
func (c *Controller) PlayOnce(name, resumeTo string) error {
	if _, ok := c.lib.Get(name); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAnimation, name)
	}
	c.name = name
	c.frame = 0
	c.elapsed = 0
	c.mode = OneShot
	c.resumeTo = resumeTo
	return nil
}

// Advance accumulates dt seconds and steps frames while the accumulated time
// covers whole frame durations, preserving the remainder so long ticks skip
// frames instead of slowing the animation down. It returns the atlas frame
// index to render after all advancement.
func (c *Controller) Advance(dt float64) int {
	def, ok := c.lib.Get(c.name)
	if !ok {
		// Can't happen through the public API; the current name always
		// resolves because every transition is checked.
		return 0
	}
	c.elapsed += dt
	for c.elapsed >= def.FrameDuration {
		c.elapsed -= def.FrameDuration
		c.frame++
		if c.frame < len(def.Frames) {
			continue
		}
		if c.mode == Looping {
			c.frame = 0
			continue
		}
		// One-shot finished: resume in looping mode, carrying the time
		// remainder into the new animation.
		next := c.resumeTo
		if _, ok := c.lib.Get(next); !ok {
			next = c.lib.Default()
		}
		c.name = next
		c.frame = 0
		c.mode = Looping
		c.resumeTo = ""
		def, ok = c.lib.Get(c.name)
		if !ok {
			c.elapsed = 0
			return 0
		}
	}
	return def.Frames[c.frame]
}

// Current returns the current animation name and the atlas frame index to
// render. No side effects.
func (c *Controller) Current() (string, int) {
	def, ok := c.lib.Get(c.name)
	if !ok || c.frame >= len(def.Frames) {
		return c.name, 0
	}
	return c.name, def.Frames[c.frame]
}

// Frame returns the position within the current animation's frame sequence.
func (c *Controller) Frame() int { return c.frame }

// Elapsed returns the accumulated time (seconds) in the current frame.
func (c *Controller) Elapsed() float64 { return c.elapsed }

// Mode returns the current playback mode.
func (c *Controller) Mode() Mode { return c.mode }

// ResumeTarget returns the pending one-shot resume animation and whether one
// is pending.
func (c *Controller) ResumeTarget() (string, bool) {
	if c.mode != OneShot {
		return "", false
	}
	return c.resumeTo, true
}
