package engine

import (
	"math"
	"math/rand"
	"sort"
	"sync"
)

// PercentileSource estimates where an overall score sits relative to other
// respondents. The product has no real norm sample yet, so the default
// implementation simulates one; a normative table can be swapped in without
// touching the engine.
type PercentileSource interface {
	Percentile(overallScore float64) int
}

// SimulatedPercentiles jitters the overall score to fake a norm-referenced
// percentile. Not deterministic unless given a seeded rand. One instance is
// shared across concurrent run finalizations, and rand.Rand is not safe for
// concurrent use, so calls serialize on the mutex.
type SimulatedPercentiles struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewSimulatedPercentiles(rng *rand.Rand) *SimulatedPercentiles {
	return &SimulatedPercentiles{rng: rng}
}

func (s *SimulatedPercentiles) Percentile(overallScore float64) int {
	s.mu.Lock()
	jitter := s.rng.Intn(21) - 10 // -10..+10
	s.mu.Unlock()
	return clampPercentile(int(math.Round(overallScore)) + jitter)
}

// TablePercentiles ranks a score against a reference sample of overall
// scores. Percentile is the share of the sample strictly below the score.
type TablePercentiles struct {
	reference []float64
}

func NewTablePercentiles(reference []float64) *TablePercentiles {
	sorted := make([]float64, len(reference))
	copy(sorted, reference)
	sort.Float64s(sorted)
	return &TablePercentiles{reference: sorted}
}

func (t *TablePercentiles) Percentile(overallScore float64) int {
	if len(t.reference) == 0 {
		return clampPercentile(int(math.Round(overallScore)))
	}
	below := sort.SearchFloat64s(t.reference, overallScore)
	pct := 100 * float64(below) / float64(len(t.reference))
	return clampPercentile(int(math.Round(pct)))
}

func clampPercentile(p int) int {
	if p < 1 {
		return 1
	}
	if p > 99 {
		return 99
	}
	return p
}
