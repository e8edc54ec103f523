package main

import (
	"bytes"
	"flag"
	"log"
	"os"
	"time"

	"turtle-snake/game"
	"turtle-snake/game/config"
	"turtle-snake/game/draw"
	"turtle-snake/prompt"
	"turtle-snake/ui"

	"golang.org/x/exp/rand"
)

const headlessTicks = 1000 // A headless snake never turns, so this is plenty

func main() {
	surfaceName := flag.String("ui", "window", "Where to play: window, terminal or headless")
	seed := flag.Uint64("seed", 0, "Seed for food placement (0 = random)")
	skipPrompts := flag.Bool("defaults", false, "Skip the questions and play the default game")
	flag.Parse()

	log.SetFlags(log.Ltime)
	log.SetPrefix("[snake] ")

	cfg := config.DefaultConfig()
	if !*skipPrompts && *surfaceName != "headless" {
		cfg = prompt.Load(prompt.New(os.Stdin, os.Stdout), cfg)
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(*seed))

	// tcell owns the terminal until ExitOnClick returns
	var held bytes.Buffer
	if *surfaceName == "terminal" {
		log.SetOutput(&held)
	}

	surface, err := newSurface(*surfaceName, cfg.Screen)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("open %s: %v", *surfaceName, err)
	}

	g := game.NewGame(cfg, surface, rng)

	loop := game.Loop{Surface: surface, Interval: g.Snake.Speed}
	if *surfaceName == "headless" {
		loop.Interval = 0
		loop.MaxTicks = headlessTicks
	}
	loop.Run(g)

	surface.ExitOnClick()
	log.SetOutput(os.Stderr)
	os.Stderr.Write(held.Bytes())
	log.Printf("final score %d (seed %d)", g.Score(), *seed)
}

func newSurface(name string, cfg config.ScreenConfig) (draw.Surface, error) {
	switch name {
	case "terminal":
		return ui.NewTerminal(cfg)
	case "headless":
		return draw.NewRecorder(), nil
	default:
		return ui.NewWindow(cfg), nil
	}
}
