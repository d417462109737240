package main

import (
	"flag"
	"fmt"
	"log"

	"golang.design/x/clipboard"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/cattoy/common"
)

func main() {
	debug := flag.Bool("debug", false, "start with the debug overlay enabled")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	clipboardOK := true
	if err := clipboard.Init(); err != nil {
		fmt.Printf("[clipboard] unavailable: %v\n", err)
		clipboardOK = false
	}

	game, err := NewGame(*debug, clipboardOK)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle(game.Title())

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
