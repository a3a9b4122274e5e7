package engine

import "dino-game-service/internal/domain"

// resultMessages is indexed by tier (0..3 stars).
var resultMessages = [4]string{
	"A bit more practice needed! The cyber jungle is treacherous.",
	"Good start! You already spot some of the traps.",
	"Very good! You are becoming a real phishing expert!",
	"Perfect! You are a true cyber hero!",
}

// Clue case reward constants.
const (
	caseBaseReward   = 150
	caseCluePoints   = 40
	suspicionCeiling = 98
)

// Summarize reduces a completed answer log to the final score card. It is a
// pure read of immutable data and can be recomputed any number of times.
func Summarize(answers []domain.AnswerRecord, score, maxStreak int) domain.Summary {
	correct := 0
	for _, a := range answers {
		if a.Correct {
			correct++
		}
	}
	total := len(answers)
	pct := 0
	if total > 0 {
		pct = (100*correct + total/2) / total
	}
	tier := 0
	switch {
	case pct >= 90:
		tier = 3
	case pct >= 70:
		tier = 2
	case pct >= 50:
		tier = 1
	}
	return domain.Summary{
		TotalScore:   score,
		CorrectCount: correct,
		TotalCount:   total,
		AccuracyPct:  pct,
		Tier:         tier,
		MaxStreak:    maxStreak,
		Message:      resultMessages[tier],
	}
}

// SuspicionScore maps clue progress onto a confidence percentage. The cap
// keeps the display below 100 even with every clue found: the verdict is
// the player's call, never the engine's certainty.
func SuspicionScore(discovered, total int) int {
	if total <= 0 {
		return 0
	}
	score := (suspicionCeiling*discovered + total/2) / total
	if score > suspicionCeiling {
		score = suspicionCeiling
	}
	return score
}

// SuspicionBand buckets a suspicion score for display.
func SuspicionBand(score int) string {
	switch {
	case score > 70:
		return "danger"
	case score > 40:
		return "warning"
	default:
		return "low"
	}
}

// caseOutcome computes the reward for a finalized clue case. A verdict
// matching the document's actual nature pays the base reward plus a bonus
// per discovered clue; a mismatch pays nothing regardless of clues found.
func caseOutcome(matched bool, discovered, total int) domain.CaseOutcome {
	out := domain.CaseOutcome{
		Solved:     matched,
		Discovered: discovered,
		Missed:     total - discovered,
	}
	if !matched {
		out.Message = "Wrong verdict! The case went against you. No reward earned."
		return out
	}
	out.BaseReward = caseBaseReward
	out.ClueBonus = caseCluePoints * discovered
	out.TotalReward = out.BaseReward + out.ClueBonus
	if out.Missed == 0 {
		out.Message = "Perfect score! You found every clue."
	} else {
		out.Message = "Good work! You caught the threat but overlooked some clues."
	}
	return out
}
