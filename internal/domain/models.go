package domain

// Category classifies what kind of artifact a question shows.
type Category string

const (
	CategoryEmail   Category = "email"
	CategoryLogin   Category = "login"
	CategoryContest Category = "contest"
	CategoryMessage Category = "message"
	CategoryImage   Category = "image"
)

// Payload is the category-specific display content of a question.
// The engine never inspects it; it is passed through to the host for rendering.
type Payload struct {
	Sender  string `json:"sender,omitempty"`
	Subject string `json:"subject,omitempty"`
	Body    string `json:"body,omitempty"`
	URL     string `json:"url,omitempty"`
	Company string `json:"company,omitempty"`
	Image   string `json:"image,omitempty"`
}

// Question is an immutable catalog entry. Deceptive is the ground truth
// ("is this a fake/phishing artifact") fixed at authoring time.
type Question struct {
	ID          string   `json:"id"`
	Category    Category `json:"category"`
	Payload     Payload  `json:"payload"`
	Deceptive   bool     `json:"deceptive"`
	Difficulty  int      `json:"difficulty"` // 1..3, scoring multiplier seed
	Explanation string   `json:"explanation"`
	Flags       []string `json:"flags,omitempty"` // empty for genuine items
	Hint        string   `json:"hint,omitempty"`
}

// Catalog is a pre-validated, read-only set of questions.
type Catalog struct {
	ID        string     `json:"id"`
	Questions []Question `json:"questions"`
}

// Zone is a discoverable suspicious region in a clue case document,
// mapped 1:1 to the reason code that explains it.
type Zone struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
	Label  string `json:"label"`
	Note   string `json:"note"` // shown once the zone is discovered
}

// ClueCase is a single fixed document exercise for the detective game.
// Reasons lists the full palette offered on the selection wheel; it is a
// superset of the reasons the zones actually carry.
type ClueCase struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Brief     string   `json:"brief"`
	Malicious bool     `json:"malicious"` // the document's actual nature
	Zones     []Zone   `json:"zones"`
	Reasons   []string `json:"reasons"`
}

// Phase identifies where a session currently is in its lifecycle.
type Phase string

const (
	PhaseIntro    Phase = "intro"
	PhaseActive   Phase = "active"
	PhaseFeedback Phase = "feedback"
	PhaseResults  Phase = "results"
)

// Verdict is the player's final binary classification of a clue case document.
type Verdict string

const (
	VerdictUnset     Verdict = ""
	VerdictBenign    Verdict = "benign"
	VerdictMalicious Verdict = "malicious"
)

// AnswerRecord is one entry of the append-only answer log.
type AnswerRecord struct {
	Correct   bool `json:"correct"`
	TimeBonus bool `json:"timeBonus"`
}

// Feedback is returned after every answered (or timed-out) question.
type Feedback struct {
	QuestionID  string   `json:"questionId"`
	Correct     bool     `json:"correct"`
	TimedOut    bool     `json:"timedOut"`
	Points      int      `json:"points"`
	TimeBonus   bool     `json:"timeBonus"`
	Streak      int      `json:"streak"`
	Score       int      `json:"score"`
	Explanation string   `json:"explanation"`
	Flags       []string `json:"flags,omitempty"`
}

// QuestionView is the render-safe projection of the active question;
// ground truth, explanation and flags stay server-side until feedback.
type QuestionView struct {
	ID         string   `json:"id"`
	Category   Category `json:"category"`
	Payload    Payload  `json:"payload"`
	Difficulty int      `json:"difficulty"`
}

// Snapshot is a read-only view of a quiz session for rendering.
type Snapshot struct {
	Phase            Phase         `json:"phase"`
	IntroStep        int           `json:"introStep"`
	IntroSteps       int           `json:"introSteps"`
	Score            int           `json:"score"`
	Streak           int           `json:"streak"`
	MaxStreak        int           `json:"maxStreak"`
	RemainingSeconds int           `json:"remainingSeconds"`
	QuestionIndex    int           `json:"questionIndex"`
	QuestionCount    int           `json:"questionCount"`
	CorrectCount     int           `json:"correctCount"`
	Question         *QuestionView `json:"question,omitempty"`
}

// Summary is the aggregate of a finished session.
type Summary struct {
	TotalScore   int    `json:"totalScore"`
	CorrectCount int    `json:"correctCount"`
	TotalCount   int    `json:"totalCount"`
	AccuracyPct  int    `json:"accuracyPct"`
	Tier         int    `json:"tier"` // 0..3 stars
	MaxStreak    int    `json:"maxStreak"`
	Message      string `json:"message"`
}

// ProposeResult reports the outcome of attributing a reason to the
// selected zone. NoteFadeMS and WrongFlashMS are display directives only;
// the host schedules the effects, the engine never calls back.
type ProposeResult struct {
	ZoneID       string `json:"zoneId"`
	Match        bool   `json:"match"`
	Note         string `json:"note,omitempty"`
	NoteFadeMS   int    `json:"noteFadeMs,omitempty"`
	WrongFlashMS int    `json:"wrongFlashMs,omitempty"`
	Discovered   int    `json:"discovered"`
	TotalClues   int    `json:"totalClues"`
}

// CaseSnapshot is a read-only view of a clue case in progress.
type CaseSnapshot struct {
	CaseID         string   `json:"caseId"`
	Title          string   `json:"title"`
	TotalClues     int      `json:"totalClues"`
	Discovered     []string `json:"discovered"`
	Pending        string   `json:"pending,omitempty"`
	Verdict        Verdict  `json:"verdict"`
	SuspicionScore int      `json:"suspicionScore"`
	SuspicionBand  string   `json:"suspicionBand"`
}

// CaseOutcome is the reward breakdown produced by finalizing a clue case.
type CaseOutcome struct {
	Solved      bool   `json:"solved"`
	BaseReward  int    `json:"baseReward"`
	ClueBonus   int    `json:"clueBonus"`
	TotalReward int    `json:"totalReward"`
	Discovered  int    `json:"discovered"`
	Missed      int    `json:"missed"`
	Message     string `json:"message"`
}
