// Package prompt asks the player for configuration values on a terminal.
//
// Every question has a default. An empty answer picks the default, and an
// answer that can't be parsed prints a warning and picks the default too, so
// prompting never fails.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"turtle-snake/game/config"
)

type Prompter struct {
	in  *bufio.Reader
	out io.Writer

	labelStyle   lipgloss.Style
	defaultStyle lipgloss.Style
	warnStyle    lipgloss.Style
}

func New(in io.Reader, out io.Writer) *Prompter {
	r := lipgloss.NewRenderer(out)
	return &Prompter{
		in:           bufio.NewReader(in),
		out:          out,
		labelStyle:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#d0d7de")),
		defaultStyle: r.NewStyle().Foreground(lipgloss.Color("#8b949e")),
		warnStyle:    r.NewStyle().Foreground(lipgloss.Color("#ffd33d")),
	}
}

// ask prints the question and returns the trimmed answer. ok is false when
// the player just hit enter or the input is exhausted. A line of spaces is
// still an answer.
func (p *Prompter) ask(label string, def any) (answer string, ok bool) {
	fmt.Fprintf(p.out, "%s %s: ",
		p.labelStyle.Render(label),
		p.defaultStyle.Render(fmt.Sprintf("(default '%v')", def)))

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(p.out)
		return "", false
	}
	line = strings.TrimRight(line, "\r\n")
	return strings.TrimSpace(line), line != ""
}

func (p *Prompter) warn(def any) {
	fmt.Fprintln(p.out, p.warnStyle.Render(fmt.Sprintf("Invalid input. Using default value: %v", def)))
}

// String asks for free text.
func String(p *Prompter, label, def string) string {
	answer, ok := p.ask(label, def)
	if !ok || answer == "" {
		return def
	}
	return answer
}

func Int(p *Prompter, label string, def int) int {
	return parsed(p, label, def, strconv.Atoi)
}

func Float(p *Prompter, label string, def float64) float64 {
	return parsed(p, label, def, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
}

var errBadDelay = errors.New("delay must be a finite number of seconds, zero or more")

// Seconds asks for a number of seconds, fractions allowed.
func Seconds(p *Prompter, label string, def time.Duration) time.Duration {
	secs := parsed(p, label, def.Seconds(), func(s string) (float64, error) {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, err
		}
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) || v*float64(time.Second) > math.MaxInt64 {
			return 0, errBadDelay
		}
		return v, nil
	})
	return time.Duration(math.Round(secs * float64(time.Second)))
}

func parsed[T any](p *Prompter, label string, def T, parse func(string) (T, error)) T {
	answer, ok := p.ask(label, def)
	if !ok {
		return def
	}
	v, err := parse(answer)
	if err != nil {
		p.warn(def)
		return def
	}
	return v
}

// Load asks every configuration question, screen first, using the values in
// defaults as the defaults.
func Load(p *Prompter, defaults config.Config) config.Config {
	cfg := defaults

	cfg.Screen.Height = Int(p, "Screen height (in pixels)", defaults.Screen.Height)
	cfg.Screen.Width = Int(p, "Screen width (in pixels)", defaults.Screen.Width)
	cfg.Screen.Color = String(p, "Screen color", defaults.Screen.Color)
	cfg.Screen.Title = String(p, "Name of game", defaults.Screen.Title)

	cfg.Snake.Speed = Seconds(p, "How many seconds between each movement?", defaults.Snake.Speed)
	cfg.Snake.Distance = float64(Int(p, "How many paces should the snake move during each movement?", int(defaults.Snake.Distance)))
	cfg.Snake.Color = String(p, "What color would you like the snake to be?", defaults.Snake.Color)
	cfg.Snake.SegmentShape = String(p, "What shape would you like the segments to be?", defaults.Snake.SegmentShape)
	cfg.Snake.Segments = Int(p, "How many segments would you like the snake to have?", defaults.Snake.Segments)

	cfg.Scoreboard.Align = String(p, "How should the scoreboard be aligned?", defaults.Scoreboard.Align)
	cfg.Scoreboard.Font = String(p, "What font should the scoreboard text be?", defaults.Scoreboard.Font)
	cfg.Scoreboard.FontSize = Int(p, "What font size should the scoreboard text be?", defaults.Scoreboard.FontSize)
	cfg.Scoreboard.FontStyle = String(p, "Should the font be normal or bold?", defaults.Scoreboard.FontStyle)
	cfg.Scoreboard.Color = String(p, "What color should the scoreboard text be?", defaults.Scoreboard.Color)

	cfg.Food.Shape = String(p, "What shape should the food be?", defaults.Food.Shape)
	cfg.Food.Color = String(p, "What color should the food be?", defaults.Food.Color)

	return cfg
}
