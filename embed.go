package main

import (
	"bytes"
	"embed"
	"image"
	_ "image/png"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed assets/*
var assetsFS embed.FS

// loadImageFromAssets decodes an embedded image into an *ebiten.Image. Asset
// names come from the prefab specs; a missing or broken asset is a packaging
// bug, so fail fast.
func loadImageFromAssets(path string) *ebiten.Image {
	b, err := assetsFS.ReadFile(path)
	if err != nil {
		log.Fatalf("embed: read %s: %v", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		log.Fatalf("embed: decode %s: %v", path, err)
	}
	return ebiten.NewImageFromImage(img)
}
