package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/cattoy/prefabs"
)

// Backgrounds cycles through the room backdrops listed in toy.yaml.
type Backgrounds struct {
	images []*ebiten.Image
	names  []string
	index  int
}

func NewBackgrounds(spec *prefabs.ToySpec) *Backgrounds {
	b := &Backgrounds{}
	for _, name := range spec.Backgrounds {
		b.images = append(b.images, loadImageFromAssets("assets/"+name))
		b.names = append(b.names, name)
	}
	return b
}

// Next rotates to the following backdrop, wrapping at the end of the list.
func (b *Backgrounds) Next() {
	if len(b.images) == 0 {
		return
	}
	b.index = (b.index + 1) % len(b.images)
	fmt.Printf("[background] %s\n", b.names[b.index])
}

// Current returns the name of the active backdrop.
func (b *Backgrounds) Current() string {
	if len(b.names) == 0 {
		return ""
	}
	return b.names[b.index]
}

func (b *Backgrounds) Draw(screen *ebiten.Image) {
	if len(b.images) == 0 {
		return
	}
	screen.DrawImage(b.images[b.index], &ebiten.DrawImageOptions{})
}
