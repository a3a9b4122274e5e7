package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"dino-game-service/internal/domain"
	"dino-game-service/internal/engine"
)

// SessionStore abstracts how live game sessions are tracked (in-memory,
// Redis-marked, etc).
type SessionStore interface {
	Put(session *GameSession)
	Get(id string) (*GameSession, bool)
	Delete(id string)
}

// ContentRepository loads question catalogs and clue cases, typically
// through a cache in front of a backing store.
type ContentRepository interface {
	GetCatalog(ctx context.Context, catalogID string) (domain.Catalog, error)
	GetCase(ctx context.Context, caseID string) (domain.ClueCase, error)
}

// Options tunes the game rules for every session this service creates.
type Options struct {
	TimeBudget   int           // seconds per question
	SampleSize   int           // questions per play-through, 0 = whole catalog
	IntroSteps   int           // framing steps before the first question
	TickInterval time.Duration // countdown period, 1s in production
}

func (o Options) withDefaults() Options {
	if o.TimeBudget <= 0 {
		o.TimeBudget = 15
	}
	if o.TickInterval <= 0 {
		o.TickInterval = time.Second
	}
	return o
}

// GameService contains the game use cases: it owns session lifecycles and
// the countdown timers, and delegates all game rules to the engine.
type GameService struct {
	sessions SessionStore
	content  ContentRepository
	opts     Options
}

func NewGameService(store SessionStore, content ContentRepository, opts Options) *GameService {
	return &GameService{
		sessions: store,
		content:  content,
		opts:     opts.withDefaults(),
	}
}

// StartQuiz creates a session over the catalog, beginning in the intro
// phase. flat selects the flat/hint scoring variant instead of the timed
// one.
func (s *GameService) StartQuiz(ctx context.Context, catalogID string, flat bool) (string, domain.Snapshot, error) {
	catalog, err := s.content.GetCatalog(ctx, catalogID)
	if err != nil {
		return "", domain.Snapshot{}, err
	}

	profile := engine.TimedProfile(s.opts.TimeBudget)
	if flat {
		profile = engine.FlatProfile(s.opts.TimeBudget)
	}
	quiz := engine.NewSession(catalog, engine.SessionConfig{
		Profile:    profile,
		SampleSize: s.opts.SampleSize,
		IntroSteps: s.opts.IntroSteps,
	})

	session := newQuizSession(uuid.NewString(), quiz)
	s.sessions.Put(session)
	return session.ID, quiz.Snapshot(), nil
}

// AdvanceIntro steps through the framing sequence before play begins.
func (s *GameService) AdvanceIntro(sessionID string) (int, error) {
	session, err := s.quiz(sessionID)
	if err != nil {
		return 0, err
	}
	return session.Quiz.AdvanceIntro()
}

// Begin samples the questions and starts the first countdown.
func (s *GameService) Begin(sessionID string) (domain.Snapshot, error) {
	session, err := s.quiz(sessionID)
	if err != nil {
		return domain.Snapshot{}, err
	}
	if err := session.Quiz.Start(); err != nil {
		return domain.Snapshot{}, err
	}
	s.armTimer(session)
	return session.Quiz.Snapshot(), nil
}

// SubmitAnswer scores the player's choice (nil = timeout is only produced
// internally; hosts submit true/false) and stops the countdown.
func (s *GameService) SubmitAnswer(sessionID string, choice *bool) (domain.Feedback, error) {
	session, err := s.quiz(sessionID)
	if err != nil {
		return domain.Feedback{}, err
	}
	fb, err := session.Quiz.SubmitAnswer(choice)
	if err != nil {
		return domain.Feedback{}, err
	}
	session.stopTimer()
	return fb, nil
}

// Advance moves past the feedback screen, re-arming the countdown when
// another question follows.
func (s *GameService) Advance(sessionID string) (domain.Snapshot, error) {
	session, err := s.quiz(sessionID)
	if err != nil {
		return domain.Snapshot{}, err
	}
	phase, err := session.Quiz.Advance()
	if err != nil {
		return domain.Snapshot{}, err
	}
	if phase == domain.PhaseActive {
		s.armTimer(session)
	}
	return session.Quiz.Snapshot(), nil
}

// Hint reveals the active question's hint, halving its flat award.
func (s *GameService) Hint(sessionID string) (string, error) {
	session, err := s.quiz(sessionID)
	if err != nil {
		return "", err
	}
	return session.Quiz.UseHint()
}

// Restart discards the session's progress and begins a fresh run over a
// newly sampled question order.
func (s *GameService) Restart(sessionID string) (domain.Snapshot, error) {
	session, err := s.quiz(sessionID)
	if err != nil {
		return domain.Snapshot{}, err
	}
	session.stopTimer()
	if err := session.Quiz.Restart(); err != nil {
		return domain.Snapshot{}, err
	}
	s.armTimer(session)
	return session.Quiz.Snapshot(), nil
}

// Snapshot returns the read-only rendering view of a quiz session.
func (s *GameService) Snapshot(sessionID string) (domain.Snapshot, error) {
	session, err := s.quiz(sessionID)
	if err != nil {
		return domain.Snapshot{}, err
	}
	return session.Quiz.Snapshot(), nil
}

// Summary aggregates a finished session.
func (s *GameService) Summary(sessionID string) (domain.Summary, error) {
	session, err := s.quiz(sessionID)
	if err != nil {
		return domain.Summary{}, err
	}
	return session.Quiz.Summary()
}

// Subscribe returns the timer-driven event stream for a session. The
// caller must invoke cancel to avoid leaks.
func (s *GameService) Subscribe(sessionID string) (<-chan domain.Event, func(), error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, nil, domain.ErrSessionNotFound
	}
	ch, cancel := session.subscribe()
	return ch, cancel, nil
}

// End tears a session down: the countdown is cancelled, subscribers are
// closed and the session is dropped from the store.
func (s *GameService) End(sessionID string) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return
	}
	session.teardown()
	s.sessions.Delete(sessionID)
}

// StartCase creates a clue-discovery session over a fixed document.
func (s *GameService) StartCase(ctx context.Context, caseID string) (string, domain.CaseSnapshot, error) {
	doc, err := s.content.GetCase(ctx, caseID)
	if err != nil {
		return "", domain.CaseSnapshot{}, err
	}
	clue := engine.NewClueSession(doc)
	session := newCaseSession(uuid.NewString(), clue)
	s.sessions.Put(session)
	return session.ID, clue.Snapshot(), nil
}

// SelectZone opens the reason wheel for a zone of the case document.
func (s *GameService) SelectZone(sessionID, zoneID string) (bool, error) {
	session, err := s.clue(sessionID)
	if err != nil {
		return false, err
	}
	return session.Case.SelectZone(zoneID)
}

// CancelSelection closes the reason wheel without a proposal.
func (s *GameService) CancelSelection(sessionID string) error {
	session, err := s.clue(sessionID)
	if err != nil {
		return err
	}
	session.Case.CancelSelection()
	return nil
}

// ProposeReason attributes a reason code to the selected zone.
func (s *GameService) ProposeReason(sessionID, code string) (domain.ProposeResult, error) {
	session, err := s.clue(sessionID)
	if err != nil {
		return domain.ProposeResult{}, err
	}
	return session.Case.ProposeReason(code)
}

// SetVerdict records the player's classification of the case document.
func (s *GameService) SetVerdict(sessionID string, verdict domain.Verdict) error {
	session, err := s.clue(sessionID)
	if err != nil {
		return err
	}
	return session.Case.SetVerdict(verdict)
}

// FinalizeCase computes the case outcome; it requires a verdict.
func (s *GameService) FinalizeCase(sessionID string) (domain.CaseOutcome, error) {
	session, err := s.clue(sessionID)
	if err != nil {
		return domain.CaseOutcome{}, err
	}
	return session.Case.Finalize()
}

// CaseSnapshot returns the read-only view of a clue case session.
func (s *GameService) CaseSnapshot(sessionID string) (domain.CaseSnapshot, error) {
	session, err := s.clue(sessionID)
	if err != nil {
		return domain.CaseSnapshot{}, err
	}
	return session.Case.Snapshot(), nil
}

// armTimer replaces the session's countdown with a fresh one driving Tick
// once per interval. The countdown cancels itself as soon as the session
// leaves the active phase; manual submits additionally stop it eagerly.
func (s *GameService) armTimer(session *GameSession) {
	quiz := session.Quiz
	timer := engine.StartCountdown(s.opts.TickInterval, func() bool {
		fb, expired := quiz.Tick()
		snap := quiz.Snapshot()
		if expired {
			session.broadcast(domain.Event{Type: domain.EventTimeout, Snapshot: &snap, Feedback: &fb})
			return false
		}
		session.broadcast(domain.Event{Type: domain.EventTick, Snapshot: &snap})
		return snap.Phase == domain.PhaseActive
	})
	session.setTimer(timer)
}

func (s *GameService) quiz(sessionID string) (*GameSession, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok || session.Quiz == nil {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (s *GameService) clue(sessionID string) (*GameSession, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok || session.Case == nil {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}
