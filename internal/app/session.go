package app

import (
	"sync"

	"dino-game-service/internal/domain"
	"dino-game-service/internal/engine"
)

// GameSession binds one engine instance (quiz or clue case) to its
// countdown handle and its event subscribers. Exactly one game view owns a
// session; it is discarded on teardown, never reused.
type GameSession struct {
	ID   string
	Quiz *engine.Session     // nil for clue cases
	Case *engine.ClueSession // nil for quizzes

	mu          sync.Mutex
	timer       *engine.Countdown
	subscribers map[chan domain.Event]struct{}
}

// NewQuizGameSession is exported for infrastructure layers and tests that
// need to seed sessions directly.
func NewQuizGameSession(id string, s *engine.Session) *GameSession {
	return newQuizSession(id, s)
}

// NewCaseGameSession is the clue-case counterpart of NewQuizGameSession.
func NewCaseGameSession(id string, c *engine.ClueSession) *GameSession {
	return newCaseSession(id, c)
}

func newQuizSession(id string, s *engine.Session) *GameSession {
	return &GameSession{
		ID:          id,
		Quiz:        s,
		subscribers: make(map[chan domain.Event]struct{}),
	}
}

func newCaseSession(id string, c *engine.ClueSession) *GameSession {
	return &GameSession{
		ID:          id,
		Case:        c,
		subscribers: make(map[chan domain.Event]struct{}),
	}
}

// setTimer installs a new countdown, cancelling any previous one first so a
// stale tick can never fire against the replaced question.
func (g *GameSession) setTimer(t *engine.Countdown) {
	g.mu.Lock()
	old := g.timer
	g.timer = t
	g.mu.Unlock()
	if old != nil {
		old.Stop()
	}
}

// stopTimer cancels the countdown if one is armed. Idempotent.
func (g *GameSession) stopTimer() {
	g.setTimer(nil)
}

// subscribe registers an event channel; the returned cancel must be called
// to avoid leaks.
func (g *GameSession) subscribe() (<-chan domain.Event, func()) {
	ch := make(chan domain.Event, 16)

	g.mu.Lock()
	g.subscribers[ch] = struct{}{}
	g.mu.Unlock()

	cancel := func() {
		g.mu.Lock()
		if _, ok := g.subscribers[ch]; ok {
			delete(g.subscribers, ch)
			close(ch)
		}
		g.mu.Unlock()
	}
	return ch, cancel
}

// broadcast fans an event out to all subscribers, dropping the oldest
// queued event for a slow consumer rather than blocking the timer.
func (g *GameSession) broadcast(ev domain.Event) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for ch := range g.subscribers {
		select {
		case ch <- ev:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- ev
		}
	}
}

// teardown stops the timer and closes every subscriber channel.
func (g *GameSession) teardown() {
	g.stopTimer()
	g.mu.Lock()
	defer g.mu.Unlock()
	for ch := range g.subscribers {
		delete(g.subscribers, ch)
		close(ch)
	}
}
