package engine

import "testing"

func TestTimedScoreWithTimeBonus(t *testing.T) {
	p := TimedProfile(15)

	points, streak := p.Score(true, 2, 12, 0, false)
	if points != 250 || streak != 1 {
		t.Fatalf("expected 250 points streak 1, got %d/%d", points, streak)
	}
}

func TestTimedScoreWithCombo(t *testing.T) {
	p := TimedProfile(15)

	points, streak := p.Score(true, 1, 12, 3, false)
	if points != 195 || streak != 4 {
		t.Fatalf("expected 195 points streak 4, got %d/%d", points, streak)
	}
}

func TestTimedScoreBonusThresholds(t *testing.T) {
	p := TimedProfile(15)

	cases := []struct {
		remaining int
		want      int
	}{
		{remaining: 11, want: 150}, // full bonus above 10
		{remaining: 10, want: 125}, // half bonus above 5
		{remaining: 6, want: 125},
		{remaining: 5, want: 100}, // no bonus
		{remaining: 0, want: 100},
	}
	for _, tc := range cases {
		points, _ := p.Score(true, 1, tc.remaining, 0, false)
		if points != tc.want {
			t.Fatalf("remaining=%d: expected %d points, got %d", tc.remaining, tc.want, points)
		}
	}
}

func TestTimedScoreThresholdsScaleWithBudget(t *testing.T) {
	p := TimedProfile(30)
	if p.FullBonusAbove != 20 || p.HalfBonusAbove != 10 {
		t.Fatalf("expected thresholds 20/10 for a 30s budget, got %d/%d", p.FullBonusAbove, p.HalfBonusAbove)
	}
}

func TestIncorrectResetsStreak(t *testing.T) {
	p := TimedProfile(15)

	points, streak := p.Score(false, 3, 14, 7, false)
	if points != 0 || streak != 0 {
		t.Fatalf("expected 0 points and streak reset, got %d/%d", points, streak)
	}
}

func TestScoreRoundsTiesUp(t *testing.T) {
	p := TimedProfile(15)

	// base 100 + bonus 25 = 125, streak 1 -> 137.5 rounds up to 138
	points, _ := p.Score(true, 1, 6, 1, false)
	if points != 138 {
		t.Fatalf("expected half-up rounding to 138, got %d", points)
	}
}

func TestScoreIsPure(t *testing.T) {
	p := TimedProfile(15)

	first, _ := p.Score(true, 2, 8, 2, false)
	second, _ := p.Score(true, 2, 8, 2, false)
	if first != second {
		t.Fatalf("same inputs produced %d then %d", first, second)
	}
}

func TestFlatProfileHintHalvesAward(t *testing.T) {
	p := FlatProfile(15)

	points, streak := p.Score(true, 3, 2, 5, false)
	if points != 100 || streak != 6 {
		t.Fatalf("expected flat 100, got %d/%d", points, streak)
	}
	points, _ = p.Score(true, 3, 14, 0, true)
	if points != 50 {
		t.Fatalf("expected hinted award 50, got %d", points)
	}
	points, streak = p.Score(false, 1, 14, 4, true)
	if points != 0 || streak != 0 {
		t.Fatalf("expected miss to reset, got %d/%d", points, streak)
	}
}
