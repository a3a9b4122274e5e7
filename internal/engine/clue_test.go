package engine

import (
	"reflect"
	"testing"

	"dino-game-service/internal/domain"
)

func testCase() domain.ClueCase {
	return domain.ClueCase{
		ID:        "case-1",
		Title:     "The CEO invoice",
		Brief:     "An urgent payment request landed in the inbox.",
		Malicious: true,
		Zones: []domain.Zone{
			{ID: "z-domain", Reason: "spoofed-domain", Label: "Sender", Note: "The sender domain is forged."},
			{ID: "z-link", Reason: "malicious-link", Label: "Link", Note: "The link leads off-site."},
			{ID: "z-urgency", Reason: "urgency", Label: "Tone", Note: "Artificial time pressure."},
		},
		Reasons: []string{
			"spoofed-domain", "formatting-error", "malicious-link", "urgency",
			"generic-greeting", "ai-syntax", "logic-error", "data-request",
		},
	}
}

func discover(t *testing.T, c *ClueSession, zoneID, reason string) {
	t.Helper()
	if _, err := c.SelectZone(zoneID); err != nil {
		t.Fatalf("select %s: %v", zoneID, err)
	}
	res, err := c.ProposeReason(reason)
	if err != nil {
		t.Fatalf("propose %s: %v", reason, err)
	}
	if !res.Match {
		t.Fatalf("expected %s to match zone %s", reason, zoneID)
	}
}

func TestDiscoveryFlow(t *testing.T) {
	c := NewClueSession(testCase())

	selected, err := c.SelectZone("z-domain")
	if err != nil || !selected {
		t.Fatalf("select: selected=%v err=%v", selected, err)
	}

	res, err := c.ProposeReason("spoofed-domain")
	if err != nil {
		t.Fatalf("propose: %v", err)
	}
	if !res.Match || res.Note == "" || res.NoteFadeMS == 0 {
		t.Fatalf("expected matching result with fading note, got %+v", res)
	}
	if res.Discovered != 1 || res.TotalClues != 3 {
		t.Fatalf("expected 1/3 discovered, got %+v", res)
	}

	snap := c.Snapshot()
	if snap.Pending != "" {
		t.Fatalf("selection must close after a match, got pending %q", snap.Pending)
	}
	if len(snap.Discovered) != 1 || snap.Discovered[0] != "z-domain" {
		t.Fatalf("unexpected discovered set %v", snap.Discovered)
	}
}

func TestMismatchKeepsSelectionOpen(t *testing.T) {
	c := NewClueSession(testCase())

	if _, err := c.SelectZone("z-link"); err != nil {
		t.Fatalf("select: %v", err)
	}
	res, err := c.ProposeReason("urgency")
	if err != nil {
		t.Fatalf("propose: %v", err)
	}
	if res.Match || res.WrongFlashMS == 0 {
		t.Fatalf("expected transient wrong indication, got %+v", res)
	}
	if snap := c.Snapshot(); snap.Pending != "z-link" {
		t.Fatalf("selection must stay open after a miss, got %q", snap.Pending)
	}

	// unlimited retries, no penalty
	res, err = c.ProposeReason("malicious-link")
	if err != nil || !res.Match {
		t.Fatalf("retry should succeed, got %+v err %v", res, err)
	}
}

func TestDiscoveredZoneCannotBeRediscovered(t *testing.T) {
	c := NewClueSession(testCase())
	discover(t, c, "z-domain", "spoofed-domain")

	selected, err := c.SelectZone("z-domain")
	if err != nil {
		t.Fatalf("reselect: %v", err)
	}
	if selected {
		t.Fatalf("selecting a discovered zone must be a no-op")
	}
	if _, err := c.ProposeReason("spoofed-domain"); err != domain.ErrInvalidTransition {
		t.Fatalf("propose without selection must fail, got %v", err)
	}
	if got := len(c.Snapshot().Discovered); got != 1 {
		t.Fatalf("discovered set must not grow, got %d", got)
	}
}

func TestUnknownZoneAndReason(t *testing.T) {
	c := NewClueSession(testCase())

	if _, err := c.SelectZone("z-nope"); err != domain.ErrUnknownZone {
		t.Fatalf("expected ErrUnknownZone, got %v", err)
	}
	if _, err := c.SelectZone("z-link"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if _, err := c.ProposeReason("made-up"); err != domain.ErrUnknownReason {
		t.Fatalf("expected ErrUnknownReason, got %v", err)
	}
	// the failed proposal must not advance anything
	if snap := c.Snapshot(); snap.Pending != "z-link" || len(snap.Discovered) != 0 {
		t.Fatalf("state changed on contract violation: %+v", snap)
	}
}

func TestCancelSelection(t *testing.T) {
	c := NewClueSession(testCase())

	if _, err := c.SelectZone("z-urgency"); err != nil {
		t.Fatalf("select: %v", err)
	}
	c.CancelSelection()
	if _, err := c.ProposeReason("urgency"); err != domain.ErrInvalidTransition {
		t.Fatalf("expected proposal rejected after cancel, got %v", err)
	}
}

func TestSuspicionScoreCappedBelowHundred(t *testing.T) {
	c := NewClueSession(testCase())
	discover(t, c, "z-domain", "spoofed-domain")
	discover(t, c, "z-link", "malicious-link")
	discover(t, c, "z-urgency", "urgency")

	if got := c.SuspicionScore(); got != 98 {
		t.Fatalf("full discovery must cap at 98, got %d", got)
	}
	if again := c.SuspicionScore(); again != 98 {
		t.Fatalf("suspicion score not idempotent: %d", again)
	}
}

func TestFinalizeRequiresVerdict(t *testing.T) {
	c := NewClueSession(testCase())
	discover(t, c, "z-domain", "spoofed-domain")

	if _, err := c.Finalize(); err != domain.ErrMissingVerdict {
		t.Fatalf("expected ErrMissingVerdict, got %v", err)
	}
	if err := c.SetVerdict("shrug"); err != domain.ErrInvalidVerdict {
		t.Fatalf("expected ErrInvalidVerdict, got %v", err)
	}
}

func TestFinalizeRewards(t *testing.T) {
	c := NewClueSession(testCase())
	discover(t, c, "z-domain", "spoofed-domain")
	discover(t, c, "z-link", "malicious-link")

	if err := c.SetVerdict(domain.VerdictMalicious); err != nil {
		t.Fatalf("verdict: %v", err)
	}
	out, err := c.Finalize()
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if !out.Solved || out.BaseReward != 150 || out.ClueBonus != 80 || out.TotalReward != 230 {
		t.Fatalf("unexpected reward breakdown %+v", out)
	}
	if out.Missed != 1 {
		t.Fatalf("expected one missed clue, got %d", out.Missed)
	}

	again, err := c.Finalize()
	if err != nil || !reflect.DeepEqual(out, again) {
		t.Fatalf("finalize must be recomputable, got %+v err %v", again, err)
	}
}

func TestWrongVerdictPaysNothing(t *testing.T) {
	c := NewClueSession(testCase())
	discover(t, c, "z-domain", "spoofed-domain")
	discover(t, c, "z-link", "malicious-link")
	discover(t, c, "z-urgency", "urgency")

	if err := c.SetVerdict(domain.VerdictBenign); err != nil {
		t.Fatalf("verdict: %v", err)
	}
	out, err := c.Finalize()
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if out.Solved || out.TotalReward != 0 || out.BaseReward != 0 || out.ClueBonus != 0 {
		t.Fatalf("mismatched verdict must pay zero regardless of clues, got %+v", out)
	}
}
