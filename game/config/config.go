package config

import "time"

// Config holds everything the player can customise before a game starts.
type Config struct {
	Screen     ScreenConfig
	Snake      SnakeConfig
	Food       FoodConfig
	Scoreboard ScoreboardConfig
}

// ScreenConfig describes the window
type ScreenConfig struct {
	// Width is the screen width in pixels
	Width int

	// Height is the screen height in pixels
	Height int

	// Color is the background colour
	Color string

	// Title is the window title
	Title string
}

// SnakeConfig describes the snake and how fast it goes
type SnakeConfig struct {
	// Speed is the delay between two movements
	Speed time.Duration

	// Distance is how far the head travels on each movement
	Distance float64

	Color        string
	SegmentShape string

	// Segments is the initial length of the snake
	Segments int
}

// FoodConfig describes the food
type FoodConfig struct {
	Shape string
	Color string
}

// ScoreboardConfig describes the score text
type ScoreboardConfig struct {
	Align     string
	Font      string
	FontSize  int
	FontStyle string
	Color     string
}

// DefaultConfig returns the configuration of a game nobody customised
func DefaultConfig() Config {
	return Config{
		Screen: ScreenConfig{
			Width:  600,
			Height: 600,
			Color:  "black",
			Title:  "Snake Game",
		},
		Snake: SnakeConfig{
			Speed:        100 * time.Millisecond,
			Distance:     20,
			Color:        "white",
			SegmentShape: "square",
			Segments:     3,
		},
		Food: FoodConfig{
			Shape: "circle",
			Color: "red",
		},
		Scoreboard: ScoreboardConfig{
			Align:     "center",
			Font:      "Arial",
			FontSize:  16,
			FontStyle: "normal",
			Color:     "white",
		},
	}
}
