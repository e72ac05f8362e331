package scoring

import (
	"math/rand"
	"sync"
	"time"

	"hazardwatch/internal/models"
)

// Base credibility per severity tier.
const (
	baseSevere   = 85
	baseHigh     = 75
	baseModerate = 60
	baseLow      = 45

	maxJitter = 15 // exclusive upper bound, jitter in [0,14]
	maxScore  = 100
)

// Estimator derives a credibility score from the reported severity.
// The randomness source is injectable so tests can seed it.
type Estimator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewEstimator(src rand.Source) *Estimator {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Estimator{rng: rand.New(src)}
}

// Estimate maps severity to a score in [base, base+14], capped at 100.
// An unrecognized severity falls back to the low tier base. That fallback
// matches enum validation upstream: it never fires in practice, but the
// default is kept rather than turned into an error.
func (e *Estimator) Estimate(severity models.Severity) int {
	base := baseLow
	switch severity {
	case models.SeveritySevere:
		base = baseSevere
	case models.SeverityHigh:
		base = baseHigh
	case models.SeverityModerate:
		base = baseModerate
	}

	e.mu.Lock()
	jitter := e.rng.Intn(maxJitter)
	e.mu.Unlock()

	score := base + jitter
	if score > maxScore {
		score = maxScore
	}
	return score
}
