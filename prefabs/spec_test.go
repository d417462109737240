package prefabs

import (
	"errors"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/cattoy/animation"
)

func TestLoadCatSpec(t *testing.T) {
	spec, err := LoadCatSpec()
	if err != nil {
		t.Fatalf("LoadCatSpec: %v", err)
	}
	if spec.Atlas.Columns != 12 || spec.Atlas.CellWidth != 64 || spec.Atlas.CellHeight != 64 {
		t.Fatalf("unexpected atlas %+v", spec.Atlas)
	}
	if spec.DefaultAnimation != "idle" {
		t.Fatalf("default animation = %q, want idle", spec.DefaultAnimation)
	}
	if _, ok := spec.Animations["cute"]; !ok {
		t.Fatal("cat.yaml should define the cute click reaction")
	}
	if spec.Scale <= 0 {
		t.Fatalf("scale = %v", spec.Scale)
	}
}

func TestResolveFrames(t *testing.T) {
	cases := []struct {
		name string
		spec AnimationDefSpec
		want []int
	}{
		{"range", AnimationDefSpec{From: 12, Count: 3}, []int{12, 13, 14}},
		{"explicit", AnimationDefSpec{Frames: []int{24}}, []int{24}},
		{"explicit_wins", AnimationDefSpec{Frames: []int{1, 2}, From: 9, Count: 4}, []int{1, 2}},
		{"empty", AnimationDefSpec{}, nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.spec.ResolveFrames()
			if len(got) != len(c.want) {
				t.Fatalf("ResolveFrames() = %v, want %v", got, c.want)
			}
			for i := range c.want {
				if got[i] != c.want[i] {
					t.Fatalf("ResolveFrames() = %v, want %v", got, c.want)
				}
			}
		})
	}
}

func TestBuildLibraryFromEmbeddedSpec(t *testing.T) {
	spec, err := LoadCatSpec()
	if err != nil {
		t.Fatalf("LoadCatSpec: %v", err)
	}
	lib, err := BuildLibrary(spec)
	if err != nil {
		t.Fatalf("BuildLibrary: %v", err)
	}
	if lib.Default() != "idle" {
		t.Fatalf("library default = %q, want idle", lib.Default())
	}
	if lib.Len() != len(spec.Animations) {
		t.Fatalf("library has %d defs, spec has %d", lib.Len(), len(spec.Animations))
	}

	idle, ok := lib.Get("idle")
	if !ok {
		t.Fatal("idle missing from built library")
	}
	if len(idle.Frames) != 6 || idle.Frames[0] != 0 || idle.Frames[5] != 5 {
		t.Fatalf("idle frames = %v", idle.Frames)
	}

	// Every def must be renderable within the atlas grid described by the
	// spec (the animation package itself doesn't validate this).
	cells := spec.Atlas.Columns * 18
	for _, name := range lib.Names() {
		def, _ := lib.Get(name)
		for _, f := range def.Frames {
			if f < 0 || f >= cells {
				t.Fatalf("animation %q frame %d outside atlas (%d cells)", name, f, cells)
			}
		}
	}
}

func TestBuildLibraryRejectsBadSpecs(t *testing.T) {
	cases := []struct {
		name    string
		yamlSrc string
		wantErr error
	}{
		{
			"missing_default",
			`
default_animation: idle
animations:
  walk: {from: 12, count: 3, frame_duration: 0.2}
`,
			nil, // wrapped plain error, checked by non-nil below
		},
		{
			"empty_frames",
			`
default_animation: idle
animations:
  idle: {frame_duration: 0.5}
`,
			animation.ErrInvalidDefinition,
		},
		{
			"bad_duration",
			`
default_animation: idle
animations:
  idle: {from: 0, count: 6, frame_duration: 0}
`,
			animation.ErrInvalidDefinition,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var spec CatSpec
			if err := yaml.Unmarshal([]byte(c.yamlSrc), &spec); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			_, err := BuildLibrary(&spec)
			if err == nil {
				t.Fatal("BuildLibrary should fail")
			}
			if c.wantErr != nil && !errors.Is(err, c.wantErr) {
				t.Fatalf("BuildLibrary error = %v, want %v", err, c.wantErr)
			}
		})
	}
}

func TestLoadToySpec(t *testing.T) {
	spec, err := LoadToySpec()
	if err != nil {
		t.Fatalf("LoadToySpec: %v", err)
	}
	if len(spec.Backgrounds) == 0 {
		t.Fatal("toy.yaml should list at least one background")
	}
	if spec.ClicksPerBackground <= 0 {
		t.Fatalf("clicks_per_background = %d", spec.ClicksPerBackground)
	}
}
