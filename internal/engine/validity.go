package engine

import (
	"math"

	"github.com/pulse-assessments/backend/internal/models"
)

// speedWarningMeanMs is the mean answer time below which the whole run is
// flagged as rushed.
const speedWarningMeanMs = 2000.0

// DetectValidity computes the authenticity signals for a full response set.
// All sub-scores are computed in floating point and rounded only at the
// output boundary.
func DetectValidity(responses []models.Response) models.ValidityMetrics {
	n := len(responses)
	if n == 0 {
		return models.ValidityMetrics{
			ResponseConsistency: 100,
			OverallValidity:     models.ValidityHigh,
		}
	}

	variance := scoreVariance(responses)

	// Differentiated answers produce variance; uniform answering does not.
	authenticity := math.Min(100, variance/2*100)
	consistency := math.Max(0, 100-variance*10)

	distinct := make(map[float64]bool, n)
	highCount := 0
	totalTime := 0.0
	for _, r := range responses {
		distinct[r.Score] = true
		if r.Score >= 4 {
			highCount++
		}
		totalTime += float64(r.TimeTakenMs)
	}

	straightLining := len(distinct) <= 2 && n > 10
	speedWarning := totalTime/float64(n) < speedWarningMeanMs

	socialDesirability := 100 * float64(highCount) / float64(n)
	impressionManagement := socialDesirability
	if socialDesirability > 80 {
		impressionManagement = math.Min(100, socialDesirability+20)
	}

	// Low conditions short-circuit the medium checks.
	overall := models.ValidityHigh
	switch {
	case straightLining || speedWarning || impressionManagement > 85:
		overall = models.ValidityLow
	case socialDesirability > 70 || consistency < 40:
		overall = models.ValidityMedium
	}

	return models.ValidityMetrics{
		ResponseAuthenticity:   int(math.Round(authenticity)),
		SocialDesirabilityBias: int(math.Round(socialDesirability)),
		ImpressionManagement:   int(math.Round(impressionManagement)),
		ResponseConsistency:    int(math.Round(consistency)),
		StraightLining:         straightLining,
		SpeedWarning:           speedWarning,
		OverallValidity:        overall,
	}
}

// scoreVariance returns the population variance of response scores.
func scoreVariance(responses []models.Response) float64 {
	n := float64(len(responses))
	if n == 0 {
		return 0
	}
	mean := 0.0
	for _, r := range responses {
		mean += r.Score
	}
	mean /= n

	variance := 0.0
	for _, r := range responses {
		d := r.Score - mean
		variance += d * d
	}
	return variance / n
}
