package engine

import (
	"testing"

	"github.com/pulse-assessments/backend/internal/models"
)

func timedResponses(n int, timeMs int, scoreAt func(i int) float64) []models.Response {
	responses := make([]models.Response, 0, n)
	for i := 0; i < n; i++ {
		responses = append(responses, models.Response{
			QuestionID:  "q",
			Category:    "c",
			Dimension:   "d",
			Score:       scoreAt(i),
			TimeTakenMs: timeMs,
		})
	}
	return responses
}

func TestStraightLining(t *testing.T) {
	// 15 identical answers: flagged.
	flat := timedResponses(15, 5000, func(i int) float64 { return 3 })
	m := DetectValidity(flat)
	if !m.StraightLining {
		t.Error("15 identical scores: straightLining = false, want true")
	}
	if m.OverallValidity != models.ValidityLow {
		t.Errorf("straight-lined run: overall = %s, want low", m.OverallValidity)
	}

	// Same count with cycling scores 1..5: not flagged.
	varied := timedResponses(15, 5000, func(i int) float64 { return float64(i%5 + 1) })
	m = DetectValidity(varied)
	if m.StraightLining {
		t.Error("cycling scores: straightLining = true, want false")
	}

	// Two distinct values but only 10 responses: below the count threshold.
	short := timedResponses(10, 5000, func(i int) float64 { return float64(i % 2) })
	m = DetectValidity(short)
	if m.StraightLining {
		t.Error("10 responses: straightLining = true, want false (needs > 10)")
	}
}

func TestSpeedWarning(t *testing.T) {
	fast := timedResponses(12, 500, func(i int) float64 { return float64(i%5 + 1) })
	m := DetectValidity(fast)
	if !m.SpeedWarning {
		t.Error("mean 500ms: speedWarning = false, want true")
	}
	if m.OverallValidity != models.ValidityLow {
		t.Errorf("rushed run: overall = %s, want low", m.OverallValidity)
	}

	slow := timedResponses(12, 5000, func(i int) float64 { return float64(i%5 + 1) })
	m = DetectValidity(slow)
	if m.SpeedWarning {
		t.Error("mean 5000ms: speedWarning = true, want false")
	}
}

func TestSocialDesirabilityBias(t *testing.T) {
	// 10 responses all scoring the maximum.
	maxed := timedResponses(10, 5000, func(i int) float64 { return 5 })
	m := DetectValidity(maxed)
	if m.SocialDesirabilityBias != 100 {
		t.Errorf("socialDesirabilityBias = %d, want 100", m.SocialDesirabilityBias)
	}
	// Boosted past 80, then capped.
	if m.ImpressionManagement != 100 {
		t.Errorf("impressionManagement = %d, want 100 (boosted, capped)", m.ImpressionManagement)
	}
	if m.OverallValidity != models.ValidityLow {
		t.Errorf("overall = %s, want low (IM > 85)", m.OverallValidity)
	}

	// Half high answers: no boost.
	half := timedResponses(10, 5000, func(i int) float64 {
		if i%2 == 0 {
			return 5
		}
		return 2
	})
	m = DetectValidity(half)
	if m.SocialDesirabilityBias != 50 {
		t.Errorf("socialDesirabilityBias = %d, want 50", m.SocialDesirabilityBias)
	}
	if m.ImpressionManagement != 50 {
		t.Errorf("impressionManagement = %d, want 50 (no boost at 50)", m.ImpressionManagement)
	}
}

func TestAuthenticityAndConsistency(t *testing.T) {
	// Uniform answers: zero variance, zero authenticity, full consistency.
	flat := timedResponses(8, 5000, func(i int) float64 { return 3 })
	m := DetectValidity(flat)
	if m.ResponseAuthenticity != 0 {
		t.Errorf("uniform run: authenticity = %d, want 0", m.ResponseAuthenticity)
	}
	if m.ResponseConsistency != 100 {
		t.Errorf("uniform run: consistency = %d, want 100", m.ResponseConsistency)
	}

	// Alternating 1/5: variance = 4 → authenticity capped at 100,
	// consistency floored at 0.
	swing := timedResponses(8, 5000, func(i int) float64 {
		if i%2 == 0 {
			return 1
		}
		return 5
	})
	m = DetectValidity(swing)
	if m.ResponseAuthenticity != 100 {
		t.Errorf("swinging run: authenticity = %d, want 100", m.ResponseAuthenticity)
	}
	if m.ResponseConsistency != 0 {
		t.Errorf("swinging run: consistency = %d, want 0", m.ResponseConsistency)
	}
	if m.OverallValidity != models.ValidityMedium {
		t.Errorf("swinging run: overall = %s, want medium (consistency < 40)", m.OverallValidity)
	}
}

func TestValidityEmptyAndClean(t *testing.T) {
	m := DetectValidity(nil)
	if m.OverallValidity != models.ValidityHigh {
		t.Errorf("empty run: overall = %s, want high", m.OverallValidity)
	}

	// A differentiated, unhurried, non-skewed run is high validity.
	clean := timedResponses(12, 6000, func(i int) float64 { return float64(i%4 + 1) })
	m = DetectValidity(clean)
	if m.OverallValidity != models.ValidityHigh {
		t.Errorf("clean run: overall = %s, want high", m.OverallValidity)
	}
	if m.StraightLining || m.SpeedWarning {
		t.Errorf("clean run flagged: straightLining=%v speedWarning=%v", m.StraightLining, m.SpeedWarning)
	}
}
