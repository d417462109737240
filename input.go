package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds one frame's input snapshot.
type Input struct {
	// MouseLeftPressed is true on the frame the left mouse button was pressed.
	MouseLeftPressed bool
	// MouseX/Y are the cursor position in window coordinates.
	MouseX int
	MouseY int
	// DebugToggled is true on the frame the debug key (D) was pressed.
	DebugToggled bool
	// CopyPressed is true on the frame the copy key (C) was pressed.
	CopyPressed bool
	// NextBackgroundPressed is true on the frame the background key (B) was pressed.
	NextBackgroundPressed bool
	// Digit is the index of the digit key pressed this frame (0 for key 1,
	// through 9 for key 0), or -1 when none.
	Digit int
}

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8,
	ebiten.KeyDigit9, ebiten.KeyDigit0,
}

func NewInput() *Input {
	return &Input{Digit: -1}
}

// Update polls the keyboard and mouse.
func (i *Input) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		os.Exit(0)
	}

	i.MouseX, i.MouseY = ebiten.CursorPosition()
	i.MouseLeftPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	i.DebugToggled = inpututil.IsKeyJustPressed(ebiten.KeyD)
	i.CopyPressed = inpututil.IsKeyJustPressed(ebiten.KeyC)
	i.NextBackgroundPressed = inpututil.IsKeyJustPressed(ebiten.KeyB)

	i.Digit = -1
	for n, key := range digitKeys {
		if inpututil.IsKeyJustPressed(key) {
			i.Digit = n
			break
		}
	}
}
