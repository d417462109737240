// Package behavior decides what the cat does between interactions. The
// decision logic lives in a tengo script so it can be tweaked (and
// hot-reloaded) without recompiling the game.
package behavior

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Action is one behavior decision: which animation to show, for how long,
// and whether the cat moves while doing it.
type Action struct {
	Animation string
	Duration  float64
	MoveX     float64
	OneShot   bool
}

// Picker runs a compiled behavior script. Compile once, call Next per
// decision; the script is pure in its inputs (prev, clicks, roll) so
// decisions are reproducible in tests.
type Picker struct {
	compiled *tengo.Compiled
}

// NewPicker compiles the script source.
func NewPicker(src []byte) (*Picker, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math", "text"))
	if err := script.Add("prev", ""); err != nil {
		return nil, fmt.Errorf("behavior: add prev: %w", err)
	}
	if err := script.Add("clicks", 0); err != nil {
		return nil, fmt.Errorf("behavior: add clicks: %w", err)
	}
	if err := script.Add("roll", 0.0); err != nil {
		return nil, fmt.Errorf("behavior: add roll: %w", err)
	}
	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("behavior: compile: %w", err)
	}
	return &Picker{compiled: compiled}, nil
}

// Next asks the script for the cat's next action. prev is the animation that
// was playing, clicks the session click count, and roll a caller-supplied
// random number in [0, 1).
func (p *Picker) Next(prev string, clicks int, roll float64) (Action, error) {
	c := p.compiled.Clone()
	if err := c.Set("prev", prev); err != nil {
		return Action{}, fmt.Errorf("behavior: set prev: %w", err)
	}
	if err := c.Set("clicks", clicks); err != nil {
		return Action{}, fmt.Errorf("behavior: set clicks: %w", err)
	}
	if err := c.Set("roll", roll); err != nil {
		return Action{}, fmt.Errorf("behavior: set roll: %w", err)
	}
	if err := c.Run(); err != nil {
		return Action{}, fmt.Errorf("behavior: run: %w", err)
	}

	m := c.Get("action").Map()
	if m == nil {
		return Action{}, fmt.Errorf("behavior: script did not produce an action map")
	}
	action := Action{
		Animation: stringVal(m["anim"]),
		Duration:  floatVal(m["duration"]),
		MoveX:     floatVal(m["move_x"]),
		OneShot:   boolVal(m["one_shot"]),
	}
	if action.Animation == "" || action.Duration <= 0 {
		return Action{}, fmt.Errorf("behavior: invalid action %+v", m)
	}
	return action, nil
}

func stringVal(v any) string {
	s, _ := v.(string)
	return s
}

func floatVal(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	}
	return 0
}

func boolVal(v any) bool {
	b, _ := v.(bool)
	return b
}
