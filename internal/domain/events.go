package domain

// Event types pushed to session subscribers. Ticks carry the countdown;
// timeout events carry the auto-submitted feedback alongside the snapshot.
const (
	EventTick    = "tick"
	EventTimeout = "timeout"
)

// Event is a timer-driven notification for one game session. User-driven
// operations return their results synchronously instead.
type Event struct {
	Type     string    `json:"type"`
	Snapshot *Snapshot `json:"snapshot,omitempty"`
	Feedback *Feedback `json:"feedback,omitempty"`
}
