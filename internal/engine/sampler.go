package engine

import (
	"math/rand"

	"dino-game-service/internal/domain"
)

// Sample returns k distinct questions from the catalog in uniformly random
// order. It runs a partial Fisher-Yates over a copy, so re-invoking yields a
// fresh independent ordering and the catalog itself is never reordered.
// k is clamped to len(questions); k <= 0 returns an empty slice.
func Sample(rnd *rand.Rand, questions []domain.Question, k int) []domain.Question {
	if k > len(questions) {
		k = len(questions)
	}
	if k <= 0 {
		return nil
	}
	pool := make([]domain.Question, len(questions))
	copy(pool, questions)
	for i := 0; i < k; i++ {
		j := i + rnd.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
