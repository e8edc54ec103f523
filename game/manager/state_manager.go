package manager

import (
	"time"

	"turtle-snake/game/types"

	"github.com/google/uuid"
)

// State is the game's position in its RUNNING -> OVER lifecycle.
type State int

const (
	StateRunning State = iota
	StateOver
)

func (s State) String() string {
	if s == StateOver {
		return "OVER"
	}
	return "RUNNING"
}

// Session describes one game from start to finish.
type Session struct {
	UUID      string
	StartTime time.Time
	EndTime   time.Time
	Ticks     int
	Score     int
	Causes    []types.CollisionType // every collision that fired on the final tick
}

// Duration is how long the game lasted, or has lasted so far.
func (s Session) Duration() time.Duration {
	if s.EndTime.IsZero() {
		return time.Since(s.StartTime)
	}
	return s.EndTime.Sub(s.StartTime)
}

type StateManager struct {
	state   State
	session Session
	now     func() time.Time
}

func NewStateManager() *StateManager {
	sm := &StateManager{
		state: StateRunning,
		now:   time.Now,
	}
	sm.session = Session{
		UUID:      uuid.New().String(),
		StartTime: sm.now(),
	}
	return sm
}

func (sm *StateManager) Running() bool {
	return sm.state == StateRunning
}

func (sm *StateManager) State() State {
	return sm.state
}

func (sm *StateManager) Tick() {
	sm.session.Ticks++
}

func (sm *StateManager) UpdateScore(score int) {
	sm.session.Score = score
}

// GameOver records a terminal collision. The first call ends the game; later
// calls in the same tick only add their cause.
func (sm *StateManager) GameOver(cause types.CollisionType) {
	if sm.state == StateRunning {
		sm.state = StateOver
		sm.session.EndTime = sm.now()
	}
	sm.session.Causes = append(sm.session.Causes, cause)
}

func (sm *StateManager) Session() Session {
	s := sm.session
	s.Causes = append([]types.CollisionType(nil), sm.session.Causes...)
	return s
}
