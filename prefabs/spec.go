package prefabs

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/cattoy/animation"
)

// LoadSpec loads and unmarshals a prefab YAML file into T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// AtlasSpec describes the sprite sheet grid. Frame indices map to cells
// row-major: row = index / columns, column = index % columns.
type AtlasSpec struct {
	Sheet      string `yaml:"sheet"`
	Columns    int    `yaml:"columns"`
	CellWidth  int    `yaml:"cell_width"`
	CellHeight int    `yaml:"cell_height"`
}

// AnimationDefSpec describes one animation. Frames may be listed explicitly
// or as a linear range (from/count); an explicit list wins when both appear.
type AnimationDefSpec struct {
	Frames        []int   `yaml:"frames"`
	From          int     `yaml:"from"`
	Count         int     `yaml:"count"`
	FrameDuration float64 `yaml:"frame_duration"`
}

// ResolveFrames returns the explicit frame index list for the spec.
func (s AnimationDefSpec) ResolveFrames() []int {
	if len(s.Frames) > 0 {
		return append([]int(nil), s.Frames...)
	}
	if s.Count <= 0 {
		return nil
	}
	frames := make([]int, s.Count)
	for i := range frames {
		frames[i] = s.From + i
	}
	return frames
}

// CatSpec is the cat prefab: atlas layout, animation set, and behavior.
type CatSpec struct {
	Name             string                      `yaml:"name"`
	Atlas            AtlasSpec                   `yaml:"atlas"`
	DefaultAnimation string                      `yaml:"default_animation"`
	Animations       map[string]AnimationDefSpec `yaml:"animations"`
	Scale            float64                     `yaml:"scale"`
	BehaviorScript   string                      `yaml:"behavior_script"`
}

// LoadCatSpec loads the cat prefab.
func LoadCatSpec() (*CatSpec, error) {
	spec, err := LoadSpec[CatSpec]("cat.yaml")
	if err != nil {
		return nil, err
	}
	if spec.Atlas.Columns <= 0 || spec.Atlas.CellWidth <= 0 || spec.Atlas.CellHeight <= 0 {
		return nil, fmt.Errorf("prefabs: cat.yaml atlas is incomplete: %+v", spec.Atlas)
	}
	if spec.Scale <= 0 {
		spec.Scale = 1
	}
	return &spec, nil
}

// BuildLibrary constructs the animation library from a cat spec. Registration
// runs in sorted name order so construction is a fixed, deterministic
// sequence; any registration error aborts startup.
func BuildLibrary(spec *CatSpec) (*animation.Library, error) {
	if spec == nil {
		return nil, fmt.Errorf("prefabs: nil cat spec")
	}
	lib := animation.NewLibrary(spec.DefaultAnimation)
	for _, name := range sortedKeys(spec.Animations) {
		def := spec.Animations[name]
		if err := lib.Register(name, def.ResolveFrames(), def.FrameDuration); err != nil {
			return nil, fmt.Errorf("prefabs: cat.yaml animation %q: %w", name, err)
		}
	}
	if _, ok := lib.Get(spec.DefaultAnimation); !ok {
		return nil, fmt.Errorf("prefabs: cat.yaml default animation %q is not defined", spec.DefaultAnimation)
	}
	return lib, nil
}

// ToySpec is the toy room prefab: window title and background rotation.
type ToySpec struct {
	Title               string   `yaml:"title"`
	Backgrounds         []string `yaml:"backgrounds"`
	ClicksPerBackground int      `yaml:"clicks_per_background"`
}

// LoadToySpec loads the toy prefab.
func LoadToySpec() (*ToySpec, error) {
	spec, err := LoadSpec[ToySpec]("toy.yaml")
	if err != nil {
		return nil, err
	}
	if spec.ClicksPerBackground <= 0 {
		spec.ClicksPerBackground = 10
	}
	return &spec, nil
}

func sortedKeys(m map[string]AnimationDefSpec) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
