package engine

import "github.com/pulse-assessments/backend/internal/models"

// Recommend builds the advisory list for a run: one fixed string per
// high-risk category with a mapped entry, plus the universal support line
// when the overall score is low. The list is truncated at MaxRecommendations
// in iteration order; no further prioritization happens.
func Recommend(categoryScores []models.GroupScore, overallScore float64, cfg Config) []string {
	recs := make([]string, 0, MaxRecommendations)
	for _, cs := range categoryScores {
		if cs.RiskLevel != models.RiskHigh {
			continue
		}
		text, ok := cfg.Recommendations[cs.Key]
		if !ok {
			// Unmapped categories contribute nothing.
			continue
		}
		recs = append(recs, text)
	}

	if overallScore < 50 && cfg.SupportRecommendation != "" {
		recs = append(recs, cfg.SupportRecommendation)
	}

	if len(recs) > MaxRecommendations {
		recs = recs[:MaxRecommendations]
	}
	return recs
}
