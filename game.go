package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/cattoy/behavior"
	"github.com/milk9111/cattoy/common"
	"github.com/milk9111/cattoy/obj"
	"github.com/milk9111/cattoy/prefabs"
)

type Game struct {
	input       *Input
	cat         *Cat
	world       *obj.World
	backgrounds *Backgrounds
	toy         *prefabs.ToySpec
	counter     int

	ui          *ebitenui.UI
	counterText *widget.Text
	debug       *DebugOverlay
	watcher     *prefabs.Watcher
}

func NewGame(debugEnabled, clipboardOK bool) (*Game, error) {
	catSpec, err := prefabs.LoadCatSpec()
	if err != nil {
		return nil, err
	}
	lib, err := prefabs.BuildLibrary(catSpec)
	if err != nil {
		return nil, err
	}

	src, err := prefabs.LoadScript(catSpec.BehaviorScript)
	if err != nil {
		return nil, fmt.Errorf("load behavior script: %w", err)
	}
	picker, err := behavior.NewPicker(src)
	if err != nil {
		return nil, err
	}

	toySpec, err := prefabs.LoadToySpec()
	if err != nil {
		return nil, err
	}

	sheet := loadImageFromAssets("assets/" + catSpec.Atlas.Sheet)
	catW := float64(catSpec.Atlas.CellWidth) * catSpec.Scale
	catH := float64(catSpec.Atlas.CellHeight) * catSpec.Scale
	world := obj.NewWorld(catW, catH)

	cat, err := NewCat(catSpec, lib, picker, sheet, world)
	if err != nil {
		return nil, err
	}

	g := &Game{
		input:       NewInput(),
		cat:         cat,
		world:       world,
		backgrounds: NewBackgrounds(toySpec),
		toy:         toySpec,
		debug:       NewDebugOverlay(debugEnabled, clipboardOK),
	}
	g.ui, g.counterText = NewCounterUI(g)

	// Hot reload is a dev convenience; in an installed build the prefab
	// dirs don't exist on disk and the watcher simply stays off.
	watcher, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
	if err != nil {
		fmt.Printf("[prefabs] watcher disabled: %v\n", err)
	} else {
		g.watcher = watcher
	}

	return g, nil
}

func (g *Game) Title() string { return g.toy.Title }

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.input.Update()
	g.drainWatcher()

	if g.input.MouseLeftPressed &&
		g.world.CatHit(float64(g.input.MouseX), float64(g.input.MouseY)) {
		g.counter++
		g.cat.OnClicked()
		if g.counter%g.toy.ClicksPerBackground == 0 {
			g.backgrounds.Next()
		}
	}
	if g.input.NextBackgroundPressed {
		g.backgrounds.Next()
	}

	g.debug.Update(g)

	g.cat.Update(common.TickSeconds, g.counter)
	g.world.Step(common.TickSeconds)

	g.counterText.Label = fmt.Sprintf("Clicks: %d", g.counter)
	g.ui.Update()

	return nil
}

// drainWatcher applies any pending prefab or script edits without blocking
// the frame. Reload failures keep the previous configuration.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if prefabs.IsScriptPath(path) {
				g.reloadBehavior()
			} else {
				g.reloadPrefabs()
			}
		case err, ok := <-g.watcher.Errors:
			if ok {
				fmt.Printf("[prefabs] watch error: %v\n", err)
			}
		default:
			return
		}
	}
}

func (g *Game) reloadBehavior() {
	src, err := prefabs.LoadScript("cat_behavior.tengo")
	if err != nil {
		fmt.Printf("[prefabs] reload script: %v\n", err)
		return
	}
	picker, err := behavior.NewPicker(src)
	if err != nil {
		fmt.Printf("[prefabs] reload script: %v\n", err)
		return
	}
	g.cat.SetPicker(picker)
	fmt.Println("[prefabs] behavior script reloaded")
}

func (g *Game) reloadPrefabs() {
	spec, err := prefabs.LoadCatSpec()
	if err != nil {
		fmt.Printf("[prefabs] reload cat.yaml: %v\n", err)
		return
	}
	lib, err := prefabs.BuildLibrary(spec)
	if err != nil {
		fmt.Printf("[prefabs] reload cat.yaml: %v\n", err)
		return
	}
	if err := g.cat.ReloadLibrary(lib); err != nil {
		fmt.Printf("[prefabs] reload cat.yaml: %v\n", err)
		return
	}
	fmt.Println("[prefabs] animation library reloaded")
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.backgrounds.Draw(screen)
	g.cat.Draw(screen)
	g.ui.Draw(screen)
	g.debug.Draw(screen, g)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
