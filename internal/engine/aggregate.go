package engine

import (
	"sort"

	"github.com/pulse-assessments/backend/internal/models"
)

// Aggregate holds the folded scores for one response set.
type Aggregate struct {
	CategoryScores  []models.GroupScore
	DimensionScores []models.GroupScore
	OverallScore    float64
}

// AggregateResponses folds responses into per-category and per-dimension
// scores and computes the weighted overall. Empty groups never divide by
// zero: a group with no possible points scores 0 by convention.
func AggregateResponses(responses []models.Response, cfg Config) Aggregate {
	perMax := cfg.perQuestionMax()

	categories := groupScores(responses, perMax, func(r models.Response) string { return r.Category })
	dimensions := groupScores(responses, perMax, func(r models.Response) string { return r.Dimension })

	// Weighted overall over categories that carry a declared weight.
	// Unweighted categories are reported but contribute nothing here.
	weightedSum := 0.0
	weightTotal := 0.0
	for _, cs := range categories {
		w, ok := cfg.Weights[cs.Key]
		if !ok {
			continue
		}
		weightedSum += w * cs.Percentage
		weightTotal += w
	}

	overall := 0.0
	if weightTotal > 0 {
		overall = weightedSum / weightTotal
	}

	return Aggregate{
		CategoryScores:  categories,
		DimensionScores: dimensions,
		OverallScore:    clamp(overall, 0, 100),
	}
}

func groupScores(responses []models.Response, perMax float64, keyOf func(models.Response) string) []models.GroupScore {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range responses {
		key := keyOf(r)
		if key == "" {
			continue
		}
		sums[key] += r.Score
		counts[key]++
	}

	keys := make([]string, 0, len(sums))
	for key := range sums {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	scores := make([]models.GroupScore, 0, len(keys))
	for _, key := range keys {
		maxScore := float64(counts[key]) * perMax
		pct := 0.0
		if maxScore > 0 {
			pct = clamp(100*sums[key]/maxScore, 0, 100)
		}
		scores = append(scores, models.GroupScore{
			Key:        key,
			RawScore:   sums[key],
			MaxScore:   maxScore,
			Percentage: pct,
			Level:      ClassifyLevel(pct),
			RiskLevel:  ClassifyRisk(pct),
		})
	}
	return scores
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
