package game

import (
	"time"

	"turtle-snake/game/draw"
)

// Loop drives a game at a fixed pace: redraw, play one tick, wait.
type Loop struct {
	Surface  draw.Surface
	Interval time.Duration

	// MaxTicks stops the loop early when positive.
	MaxTicks int

	// Sleep defaults to time.Sleep.
	Sleep func(time.Duration)
}

// Run plays g until it is over or the surface is closed, then draws one last
// frame so the final banner is visible. It returns the number of ticks played.
func (l Loop) Run(g *Game) int {
	sleep := l.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	ticks := 0
	for g.Running() && !l.Surface.Closed() {
		if l.MaxTicks > 0 && ticks >= l.MaxTicks {
			break
		}
		l.Surface.Update()
		if l.Surface.Closed() {
			break
		}
		g.Play()
		ticks++
		sleep(l.Interval)
	}

	if !l.Surface.Closed() {
		l.Surface.Update()
	}
	return ticks
}
