package engine

// Profile describes how answers turn into points. Score is a pure function
// of its inputs; the session feeds it the streak as counted before the
// answer being scored.
type Profile struct {
	// TimeBudget is the per-question countdown in seconds.
	TimeBudget int
	// BasePerDifficulty is multiplied by the question difficulty.
	BasePerDifficulty int
	// FullBonus is awarded when more than FullBonusAbove seconds remain,
	// HalfBonus when more than HalfBonusAbove remain.
	FullBonus      int
	HalfBonus      int
	FullBonusAbove int
	HalfBonusAbove int
	// Flat switches to the flat-award variant: FlatAward per correct
	// answer, FlatHintedAward when the hint was used. Difficulty, time
	// and combo are ignored in that mode.
	Flat            bool
	FlatAward       int
	FlatHintedAward int
}

// TimedProfile is the phishing-drill scoring: difficulty-scaled base, a
// time bonus with thresholds at 2/3 and 1/3 of the budget, and a combo
// multiplier of 1 + 0.1 per prior consecutive correct answer.
func TimedProfile(timeBudget int) Profile {
	if timeBudget <= 0 {
		timeBudget = 15
	}
	return Profile{
		TimeBudget:        timeBudget,
		BasePerDifficulty: 100,
		FullBonus:         50,
		HalfBonus:         25,
		FullBonusAbove:    timeBudget * 2 / 3,
		HalfBonusAbove:    timeBudget / 3,
	}
}

// FlatProfile is the image-quiz scoring: 100 points per correct answer,
// halved when the hint was consulted.
func FlatProfile(timeBudget int) Profile {
	p := TimedProfile(timeBudget)
	p.Flat = true
	p.FlatAward = 100
	p.FlatHintedAward = 50
	return p
}

// Score computes the points and the new streak for one answer.
// Incorrect answers (including timeouts) award nothing and reset the
// streak unconditionally.
func (p Profile) Score(correct bool, difficulty, remainingSeconds, streakBefore int, hintUsed bool) (points, newStreak int) {
	if !correct {
		return 0, 0
	}
	if p.Flat {
		if hintUsed {
			return p.FlatHintedAward, streakBefore + 1
		}
		return p.FlatAward, streakBefore + 1
	}
	base := difficulty * p.BasePerDifficulty
	bonus := p.timeBonus(remainingSeconds)
	// multiplier is 1 + streakBefore/10; integer math, ties round up
	points = ((base + bonus) * (10 + streakBefore) + 5) / 10
	return points, streakBefore + 1
}

// TimeBonusApplied reports whether a correct answer at the given remaining
// time earned any time bonus.
func (p Profile) TimeBonusApplied(remainingSeconds int) bool {
	return !p.Flat && p.timeBonus(remainingSeconds) > 0
}

func (p Profile) timeBonus(remainingSeconds int) int {
	switch {
	case remainingSeconds > p.FullBonusAbove:
		return p.FullBonus
	case remainingSeconds > p.HalfBonusAbove:
		return p.HalfBonus
	default:
		return 0
	}
}
