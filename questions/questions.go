// Package questions supplies the quiz: a bounded random sample of the active
// bank. Samples are NOT reproducible between calls unless the caller passes a
// seeded source (see SeedFor); two calls for the same invite may differ.
package questions

import (
	"hash/fnv"
	"math/rand"
	"time"

	"sevgi/models"
)

const DefaultSize = 12

// Sample picks up to n active questions uniformly at random without
// replacement. The bank is not modified. A nil rng means a fresh time seeded
// source.
func Sample(bank []models.Question, n int, rng *rand.Rand) []models.Question {
	active := make([]models.Question, 0, len(bank))
	for _, q := range bank {
		if q.IsActive {
			active = append(active, q)
		}
	}
	if n <= 0 {
		return []models.Question{}
	}
	if n >= len(active) {
		n = len(active)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	// partial Fisher-Yates, only the first n slots are needed
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(active)-i)
		active[i], active[j] = active[j], active[i]
	}
	return active[:n]
}

// SeedFor derives a stable seed from an invite token, so the same invite
// always gets the same sample from the same bank.
func SeedFor(token string) int64 {
	h := fnv.New64a()
	h.Write([]byte(token))
	return int64(h.Sum64())
}

// SampleFor is Sample with the token derived seed
func SampleFor(bank []models.Question, n int, token string) []models.Question {
	return Sample(bank, n, rand.New(rand.NewSource(SeedFor(token))))
}
