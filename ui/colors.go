package ui

import (
	"image/color"
	"log"
	"strings"

	"github.com/gdamore/tcell/v2"
)

var (
	black = color.RGBA{0, 0, 0, 255}
	white = color.RGBA{255, 255, 255, 255}
)

// parseColor resolves a W3C colour name ("forest green" works too) or
// #rrggbb. Anything else is reported and replaced by fallback.
func parseColor(name string, fallback color.RGBA) color.RGBA {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", ""))

	c := tcell.GetColor(key)
	if c.Valid() {
		if r, g, b := c.RGB(); r >= 0 {
			return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
		}
	}
	log.Printf("unknown color %q, using %v", name, fallback)
	return fallback
}
