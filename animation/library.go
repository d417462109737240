package animation

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrInvalidDefinition is returned by Register for an empty frame list or a
	// non-positive frame duration. It indicates a configuration bug and should
	// abort startup.
	ErrInvalidDefinition = errors.New("animation: invalid definition")
	// ErrDuplicateName is returned by Register when the name is already taken.
	ErrDuplicateName = errors.New("animation: duplicate name")
	// ErrUnknownAnimation is returned by the controller when a play request
	// names an animation that isn't in the library. Non-fatal; state is
	// unchanged.
	ErrUnknownAnimation = errors.New("animation: unknown animation")
)

// Def is a named, ordered sequence of atlas frame indices plus the duration
// (seconds) each frame is shown. Indices are opaque to this package; the
// renderer maps them to atlas cells.
type Def struct {
	Name          string
	Frames        []int
	FrameDuration float64
}

// Library holds the canonical set of animation definitions, keyed by name,
// plus the designated default/idle animation used as the one-shot fallback.
// Build it once at startup; it is read-only afterwards and safe to share
// across any number of controllers.
type Library struct {
	defs        map[string]Def
	defaultName string
}

// NewLibrary creates an empty library. defaultName is the animation a
// controller falls back to when a one-shot's resume target doesn't resolve;
// register it before handing the library to a controller.
func NewLibrary(defaultName string) *Library {
	return &Library{
		defs:        make(map[string]Def),
		defaultName: defaultName,
	}
}

// Register adds a definition. The frame slice is copied so callers can reuse
// their buffer.
func (l *Library) Register(name string, frames []int, frameDuration float64) error {
	if len(frames) == 0 {
		return fmt.Errorf("%w: %q has no frames", ErrInvalidDefinition, name)
	}
	if frameDuration <= 0 {
		return fmt.Errorf("%w: %q frame duration %v", ErrInvalidDefinition, name, frameDuration)
	}
	if _, ok := l.defs[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	l.defs[name] = Def{
		Name:          name,
		Frames:        append([]int(nil), frames...),
		FrameDuration: frameDuration,
	}
	return nil
}

// Get returns a definition by name. Absence is a normal outcome, not an
// error; the caller decides how to react.
func (l *Library) Get(name string) (Def, bool) {
	if l == nil || name == "" {
		return Def{}, false
	}
	def, ok := l.defs[name]
	return def, ok
}

// Default returns the designated default/idle animation name.
func (l *Library) Default() string {
	if l == nil {
		return ""
	}
	return l.defaultName
}

// Names returns all registered names in sorted order.
func (l *Library) Names() []string {
	if l == nil {
		return nil
	}
	names := make([]string, 0, len(l.defs))
	for name := range l.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered definitions.
func (l *Library) Len() int {
	if l == nil {
		return 0
	}
	return len(l.defs)
}
