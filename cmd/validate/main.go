// Command validate checks the prefab configuration without opening a
// window: it builds the animation library from cat.yaml, compiles the
// behavior script, and loads toy.yaml. Run it after editing prefabs.
package main

import (
	"fmt"
	"log"

	"github.com/milk9111/cattoy/behavior"
	"github.com/milk9111/cattoy/prefabs"
)

func main() {
	catSpec, err := prefabs.LoadCatSpec()
	if err != nil {
		log.Fatalf("cat.yaml: %v", err)
	}
	lib, err := prefabs.BuildLibrary(catSpec)
	if err != nil {
		log.Fatalf("cat.yaml: %v", err)
	}

	src, err := prefabs.LoadScript(catSpec.BehaviorScript)
	if err != nil {
		log.Fatalf("behavior script: %v", err)
	}
	picker, err := behavior.NewPicker(src)
	if err != nil {
		log.Fatalf("behavior script: %v", err)
	}
	// Smoke the script across the roll range with the library's animations.
	for _, roll := range []float64{0, 0.25, 0.5, 0.75, 0.99} {
		action, err := picker.Next(lib.Default(), 0, roll)
		if err != nil {
			log.Fatalf("behavior script (roll=%v): %v", roll, err)
		}
		if _, ok := lib.Get(action.Animation); !ok {
			log.Fatalf("behavior script (roll=%v): picks unknown animation %q", roll, action.Animation)
		}
	}

	toySpec, err := prefabs.LoadToySpec()
	if err != nil {
		log.Fatalf("toy.yaml: %v", err)
	}

	fmt.Printf("cat %q: %d animations, default %q\n", catSpec.Name, lib.Len(), lib.Default())
	for _, name := range lib.Names() {
		def, _ := lib.Get(name)
		fmt.Printf("  %-10s %2d frames @ %.2fs\n", name, len(def.Frames), def.FrameDuration)
	}
	fmt.Printf("toy %q: %d backgrounds, new background every %d clicks\n",
		toySpec.Title, len(toySpec.Backgrounds), toySpec.ClicksPerBackground)
}
