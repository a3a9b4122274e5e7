package engine

import (
	"sync"

	"dino-game-service/internal/domain"
)

// Display timing directives returned with propose results, in milliseconds.
// The host interprets them; the engine schedules nothing itself.
const (
	noteFadeMS   = 5000
	wrongFlashMS = 400
)

// ClueSession tracks one detective exercise: a fixed document with
// discoverable zones, each tied to exactly one reason code. Zones enter the
// discovered set only through a correct reason match on the current
// selection, so a zone can never be discovered twice.
type ClueSession struct {
	mu         sync.Mutex
	doc        domain.ClueCase
	zones      map[string]domain.Zone
	palette    map[string]struct{}
	discovered map[string]struct{}
	order      []string
	pending    string
	verdict    domain.Verdict
}

// NewClueSession starts a fresh investigation of the given case.
func NewClueSession(doc domain.ClueCase) *ClueSession {
	zones := make(map[string]domain.Zone, len(doc.Zones))
	for _, z := range doc.Zones {
		zones[z.ID] = z
	}
	palette := make(map[string]struct{}, len(doc.Reasons))
	for _, r := range doc.Reasons {
		palette[r] = struct{}{}
	}
	return &ClueSession{
		doc:        doc,
		zones:      zones,
		palette:    palette,
		discovered: make(map[string]struct{}),
	}
}

// SelectZone opens the reason-selection surface for a zone. Selecting an
// already-discovered zone is a documented no-op (selected=false); an
// unknown zone is a contract violation.
func (c *ClueSession) SelectZone(zoneID string) (selected bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.zones[zoneID]; !ok {
		return false, domain.ErrUnknownZone
	}
	if _, done := c.discovered[zoneID]; done {
		return false, nil
	}
	c.pending = zoneID
	return true, nil
}

// CancelSelection closes the selection surface without a proposal, e.g.
// when the player clicks away from the wheel.
func (c *ClueSession) CancelSelection() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = ""
}

// ProposeReason compares a reason code against the selected zone's correct
// reason. On a match the zone is discovered and the selection closes; on a
// mismatch the selection stays open for another try, with no penalty and no
// retry limit.
func (c *ClueSession) ProposeReason(code string) (domain.ProposeResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending == "" {
		return domain.ProposeResult{}, domain.ErrInvalidTransition
	}
	if _, ok := c.palette[code]; !ok {
		return domain.ProposeResult{}, domain.ErrUnknownReason
	}

	zone := c.zones[c.pending]
	res := domain.ProposeResult{
		ZoneID:     zone.ID,
		TotalClues: len(c.zones),
	}
	if code != zone.Reason {
		res.WrongFlashMS = wrongFlashMS
		res.Discovered = len(c.discovered)
		return res, nil
	}

	c.discovered[zone.ID] = struct{}{}
	c.order = append(c.order, zone.ID)
	c.pending = ""
	res.Match = true
	res.Note = zone.Note
	res.NoteFadeMS = noteFadeMS
	res.Discovered = len(c.discovered)
	return res, nil
}

// SetVerdict records the player's final classification of the document.
// Independent of clue discovery and freely revisable until teardown.
func (c *ClueSession) SetVerdict(v domain.Verdict) error {
	if v != domain.VerdictBenign && v != domain.VerdictMalicious {
		return domain.ErrInvalidVerdict
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.verdict = v
	return nil
}

// SuspicionScore reports the capped confidence percentage for display.
func (c *ClueSession) SuspicionScore() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return SuspicionScore(len(c.discovered), len(c.zones))
}

// Snapshot is a read-only view of the investigation.
func (c *ClueSession) Snapshot() domain.CaseSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	discovered := make([]string, len(c.order))
	copy(discovered, c.order)
	score := SuspicionScore(len(c.discovered), len(c.zones))
	return domain.CaseSnapshot{
		CaseID:         c.doc.ID,
		Title:          c.doc.Title,
		TotalClues:     len(c.zones),
		Discovered:     discovered,
		Pending:        c.pending,
		Verdict:        c.verdict,
		SuspicionScore: score,
		SuspicionBand:  SuspicionBand(score),
	}
}

// Finalize computes the case outcome. It requires a verdict and is a pure
// recomputable read: finalizing twice without intervening mutation yields
// the same outcome.
func (c *ClueSession) Finalize() (domain.CaseOutcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.verdict == domain.VerdictUnset {
		return domain.CaseOutcome{}, domain.ErrMissingVerdict
	}
	matched := (c.verdict == domain.VerdictMalicious) == c.doc.Malicious
	return caseOutcome(matched, len(c.discovered), len(c.zones)), nil
}
