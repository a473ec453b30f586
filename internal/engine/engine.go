// Package engine turns an ordered stream of question responses into
// multi-dimensional scores, validity signals, and a named profile. It is a
// pure function of its inputs plus static per-assessment configuration: no
// I/O, no shared mutable state, and one result per completed run.
package engine

import (
	"fmt"
	"math"

	"github.com/pulse-assessments/backend/internal/models"
)

// Score runs the full pipeline over a completed response set. The response
// list must be the final, ordered collection for the run; how the caller
// assembled it (including revisiting questions) is not the engine's concern.
func Score(responses []models.Response, cfg Config) (*models.AssessmentResult, error) {
	return ScoreWithSupplement(responses, nil, cfg)
}

// ScoreWithSupplement scores the run with extra derived responses folded into
// the dimension and category totals. Supplemental responses are synthetic
// (no real answer timing behind them), so validity signals are computed from
// the answered responses alone.
func ScoreWithSupplement(responses, supplement []models.Response, cfg Config) (*models.AssessmentResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("score: %w", err)
	}

	scored := responses
	if len(supplement) > 0 {
		scored = make([]models.Response, 0, len(responses)+len(supplement))
		scored = append(scored, responses...)
		scored = append(scored, supplement...)
	}

	agg := AggregateResponses(scored, cfg)
	validity := DetectValidity(responses)

	var strengths, challenges, priorities []string
	for _, cs := range agg.CategoryScores {
		switch cs.Level {
		case models.LevelExcellent, models.LevelGood:
			strengths = append(strengths, cs.Key)
		case models.LevelPoor, models.LevelCritical:
			challenges = append(challenges, cs.Key)
		}
		if cs.RiskLevel == models.RiskHigh {
			priorities = append(priorities, cs.Key)
		}
	}

	percentile := 0
	if cfg.Percentiles != nil {
		percentile = cfg.Percentiles.Percentile(agg.OverallScore)
	} else {
		percentile = clampPercentile(int(math.Round(agg.OverallScore)))
	}

	return &models.AssessmentResult{
		AssessmentType:  cfg.Name,
		OverallScore:    agg.OverallScore,
		PercentileScore: percentile,
		Profile:         ClassifyProfile(agg.OverallScore, cfg.ProfileBands),
		CategoryScores:  agg.CategoryScores,
		DimensionScores: agg.DimensionScores,
		Strengths:       strengths,
		Challenges:      challenges,
		PriorityAreas:   priorities,
		Recommendations: Recommend(agg.CategoryScores, agg.OverallScore, cfg),
		Validity:        validity,
	}, nil
}
