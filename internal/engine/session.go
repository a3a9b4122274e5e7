package engine

import (
	"math/rand"
	"sync"
	"time"

	"dino-game-service/internal/domain"
)

// SessionConfig parametrizes one play-through: which scoring profile to
// apply, how many questions to sample (0 or negative means the whole
// catalog) and how many framing steps precede the first question.
type SessionConfig struct {
	Profile    Profile
	SampleSize int
	IntroSteps int
}

// Session is the state machine for one timed play-through. All methods are
// synchronous and run to completion under the session mutex; the only
// time-driven entry point is Tick, fed by a Countdown owned by the caller.
// A Session is created per game and discarded on teardown; nothing survives
// across sessions.
type Session struct {
	mu      sync.Mutex
	rnd     *rand.Rand
	catalog domain.Catalog
	cfg     SessionConfig

	phase     domain.Phase
	introStep int

	questions []domain.Question
	index     int
	score     int
	streak    int
	maxStreak int
	remaining int
	hintUsed  bool
	answers   []domain.AnswerRecord
}

// NewSession creates a session in the intro phase. Start must be called to
// sample questions and begin play.
func NewSession(catalog domain.Catalog, cfg SessionConfig) *Session {
	return NewSessionWithRand(catalog, cfg, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewSessionWithRand allows deterministic sampling in tests.
func NewSessionWithRand(catalog domain.Catalog, cfg SessionConfig, rnd *rand.Rand) *Session {
	return &Session{
		rnd:     rnd,
		catalog: catalog,
		cfg:     cfg,
		phase:   domain.PhaseIntro,
	}
}

// AdvanceIntro moves to the next framing step. It has no gameplay effect
// and cannot loop; once the last step is shown the host calls Start.
func (s *Session) AdvanceIntro() (step int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != domain.PhaseIntro {
		return 0, domain.ErrInvalidTransition
	}
	if s.introStep+1 < s.cfg.IntroSteps {
		s.introStep++
	}
	return s.introStep, nil
}

// Start samples a fresh ordered question sequence and enters the active
// phase on question 0. It fails fast with ErrEmptyCatalog before mutating
// anything when there is nothing to play.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.startLocked()
}

// Restart discards the entire prior session state and re-runs Start
// semantics. Valid from any phase; used both from the results screen and
// as the abort path.
func (s *Session) Restart() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.startLocked()
}

func (s *Session) startLocked() error {
	k := s.cfg.SampleSize
	if k <= 0 || k > len(s.catalog.Questions) {
		k = len(s.catalog.Questions)
	}
	if k == 0 {
		return domain.ErrEmptyCatalog
	}
	s.questions = Sample(s.rnd, s.catalog.Questions, k)
	s.index = 0
	s.score = 0
	s.streak = 0
	s.maxStreak = 0
	s.answers = s.answers[:0]
	s.hintUsed = false
	s.introStep = 0
	s.remaining = s.cfg.Profile.TimeBudget
	s.phase = domain.PhaseActive
	return nil
}

// Tick decrements the active question's countdown by one second. At zero it
// auto-submits a nil answer (scored as incorrect) and returns the resulting
// feedback with expired=true. Ticks outside the active phase are ignored,
// so a countdown that outlives a manual submit by one scheduling beat
// cannot corrupt the session.
func (s *Session) Tick() (fb domain.Feedback, expired bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != domain.PhaseActive {
		return domain.Feedback{}, false
	}
	s.remaining--
	if s.remaining > 0 {
		return domain.Feedback{}, false
	}
	s.remaining = 0
	return s.submitLocked(nil), true
}

// SubmitAnswer scores the player's choice for the active question and moves
// to the feedback phase. A nil choice is a timeout and is always incorrect.
// Submitting outside the active phase (including a second submit for the
// same question) is rejected with ErrInvalidTransition and changes nothing.
func (s *Session) SubmitAnswer(choice *bool) (domain.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != domain.PhaseActive {
		return domain.Feedback{}, domain.ErrInvalidTransition
	}
	return s.submitLocked(choice), nil
}

func (s *Session) submitLocked(choice *bool) domain.Feedback {
	q := s.questions[s.index]
	correct := choice != nil && *choice == q.Deceptive
	points, newStreak := s.cfg.Profile.Score(correct, q.Difficulty, s.remaining, s.streak, s.hintUsed)
	bonus := correct && s.cfg.Profile.TimeBonusApplied(s.remaining)

	s.score += points
	s.streak = newStreak
	if s.streak > s.maxStreak {
		s.maxStreak = s.streak
	}
	s.answers = append(s.answers, domain.AnswerRecord{Correct: correct, TimeBonus: bonus})
	s.phase = domain.PhaseFeedback

	return domain.Feedback{
		QuestionID:  q.ID,
		Correct:     correct,
		TimedOut:    choice == nil,
		Points:      points,
		TimeBonus:   bonus,
		Streak:      s.streak,
		Score:       s.score,
		Explanation: q.Explanation,
		Flags:       q.Flags,
	}
}

// UseHint reveals the active question's hint and marks it used, which
// halves the flat award for that question. Only available before the
// question is answered.
func (s *Session) UseHint() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != domain.PhaseActive {
		return "", domain.ErrInvalidTransition
	}
	s.hintUsed = true
	return s.questions[s.index].Hint, nil
}

// Advance leaves the feedback phase: to the next question with a fresh
// countdown, or to results after the last one. Advancing from results
// never re-enters play.
func (s *Session) Advance() (domain.Phase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != domain.PhaseFeedback {
		return s.phase, domain.ErrInvalidTransition
	}
	if s.index+1 < len(s.questions) {
		s.index++
		s.remaining = s.cfg.Profile.TimeBudget
		s.hintUsed = false
		s.phase = domain.PhaseActive
	} else {
		s.phase = domain.PhaseResults
	}
	return s.phase, nil
}

// Phase reports the current phase.
func (s *Session) Phase() domain.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Snapshot is a read-only projection for rendering. Calling it repeatedly
// without intervening mutation yields identical results.
func (s *Session) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	correct := 0
	for _, a := range s.answers {
		if a.Correct {
			correct++
		}
	}
	snap := domain.Snapshot{
		Phase:            s.phase,
		IntroStep:        s.introStep,
		IntroSteps:       s.cfg.IntroSteps,
		Score:            s.score,
		Streak:           s.streak,
		MaxStreak:        s.maxStreak,
		RemainingSeconds: s.remaining,
		QuestionIndex:    s.index,
		QuestionCount:    len(s.questions),
		CorrectCount:     correct,
	}
	if s.phase == domain.PhaseActive || s.phase == domain.PhaseFeedback {
		q := s.questions[s.index]
		snap.Question = &domain.QuestionView{
			ID:         q.ID,
			Category:   q.Category,
			Payload:    q.Payload,
			Difficulty: q.Difficulty,
		}
	}
	return snap
}

// Summary aggregates the finished session. Only valid once the session has
// reached the results phase.
func (s *Session) Summary() (domain.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != domain.PhaseResults {
		return domain.Summary{}, domain.ErrInvalidTransition
	}
	return Summarize(s.answers, s.score, s.maxStreak), nil
}
