package main

import (
	"fmt"
	"image/color"

	"golang.design/x/clipboard"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/cattoy/common"
)

// digitAnimations maps the digit keys 1..9,0 to animation shortcuts while
// the debug overlay is open.
var digitAnimations = []string{
	"idle", "walk", "pancake", "sleep", "play",
	"run", "jump", "box_play", "dance", "damage",
}

// DebugOverlay shows the controller state and an atlas preview, and adds
// keyboard shortcuts to force animations. Toggled with D.
type DebugOverlay struct {
	enabled      bool
	clipboardOK  bool
	atlasScale   float64
	atlasOriginX float64
	atlasOriginY float64
}

func NewDebugOverlay(enabled, clipboardOK bool) *DebugOverlay {
	return &DebugOverlay{
		enabled:     enabled,
		clipboardOK: clipboardOK,
		atlasScale:  0.3,
	}
}

func (d *DebugOverlay) Update(g *Game) {
	if g.input.DebugToggled {
		d.enabled = !d.enabled
		fmt.Printf("[debug] overlay enabled: %v\n", d.enabled)
	}
	if !d.enabled {
		return
	}

	if n := g.input.Digit; n >= 0 && n < len(digitAnimations) {
		name := digitAnimations[n]
		if err := g.cat.Controller().Play(name); err != nil {
			fmt.Printf("[debug] play %q: %v\n", name, err)
		} else {
			fmt.Printf("[debug] playing %q\n", name)
		}
	}

	if g.input.CopyPressed {
		if d.clipboardOK {
			clipboard.Write(clipboard.FmtText, []byte(d.stateText(g)))
			fmt.Println("[debug] state copied to clipboard")
		} else {
			fmt.Println("[debug] clipboard unavailable")
		}
	}
}

func (d *DebugOverlay) stateText(g *Game) string {
	ctrl := g.cat.Controller()
	name, idx := ctrl.Current()
	def, _ := g.cat.lib.Get(name)

	next := "none"
	if resume, ok := ctrl.ResumeTarget(); ok {
		target := resume
		if _, found := g.cat.lib.Get(target); !found {
			target = g.cat.lib.Default() + " (fallback)"
		}
		next = target
	}

	return fmt.Sprintf(
		"Debug (D toggle, C copy, B background)\n"+
			"Animation: %s (%s)\n"+
			"Atlas index: %d\n"+
			"Frame: %d/%d\n"+
			"Elapsed: %.2fs\n"+
			"Resume: %s\n"+
			"Background: %s\n"+
			"Clicks: %d\n"+
			"Shortcuts: 1 idle 2 walk 3 pancake 4 sleep 5 play\n"+
			"           6 run 7 jump 8 box_play 9 dance 0 damage",
		name, ctrl.Mode(),
		idx,
		ctrl.Frame()+1, len(def.Frames),
		ctrl.Elapsed(),
		next,
		g.backgrounds.Current(),
		g.counter,
	)
}

func (d *DebugOverlay) Draw(screen *ebiten.Image, g *Game) {
	if !d.enabled {
		return
	}

	ebitenutil.DebugPrintAt(screen, d.stateText(g), 10, 10)
	d.drawAtlasPreview(screen, g)
}

// drawAtlasPreview renders the whole sprite sheet in the top-right corner
// with grid lines and a highlight on the cell currently displayed.
func (d *DebugOverlay) drawAtlasPreview(screen *ebiten.Image, g *Game) {
	sheet := g.cat.sheet
	bounds := sheet.Bounds()
	w := float64(bounds.Dx()) * d.atlasScale
	d.atlasOriginX = common.BaseWidth - w - 10
	d.atlasOriginY = 10

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	op.ColorScale.ScaleAlpha(0.85)
	op.GeoM.Scale(d.atlasScale, d.atlasScale)
	op.GeoM.Translate(d.atlasOriginX, d.atlasOriginY)
	screen.DrawImage(sheet, op)

	cellW := float32(float64(g.cat.cellW) * d.atlasScale)
	cellH := float32(float64(g.cat.cellH) * d.atlasScale)
	cols := g.cat.columns
	rows := bounds.Dy() / g.cat.cellH

	gridColor := color.NRGBA{R: 0xff, G: 0x00, B: 0x00, A: 0x60}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x := float32(d.atlasOriginX) + float32(col)*cellW
			y := float32(d.atlasOriginY) + float32(row)*cellH
			vector.StrokeRect(screen, x, y, cellW, cellH, 1, gridColor, false)
		}
	}

	_, idx := g.cat.Controller().Current()
	hx := float32(d.atlasOriginX) + float32(idx%cols)*cellW
	hy := float32(d.atlasOriginY) + float32(idx/cols)*cellH
	vector.StrokeRect(screen, hx, hy, cellW, cellH, 2, color.NRGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff}, false)
}
