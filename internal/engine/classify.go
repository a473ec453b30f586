package engine

import "github.com/pulse-assessments/backend/internal/models"

// ClassifyLevel maps a percentage onto a level band. Boundaries are
// inclusive on the lower edge: 80 is already excellent.
func ClassifyLevel(percentage float64) models.Level {
	switch {
	case percentage >= 80:
		return models.LevelExcellent
	case percentage >= 65:
		return models.LevelGood
	case percentage >= 50:
		return models.LevelFair
	case percentage >= 35:
		return models.LevelPoor
	default:
		return models.LevelCritical
	}
}

// ClassifyRisk maps a percentage onto a risk level using the same bands
// as ClassifyLevel.
func ClassifyRisk(percentage float64) models.RiskLevel {
	switch {
	case percentage >= 65:
		return models.RiskLow
	case percentage >= 50:
		return models.RiskMedium
	default:
		return models.RiskHigh
	}
}

// ClassifyProfile maps an overall score onto a named profile via the
// config's ordered bands. Bands are half-open [min,max); the final band
// also includes its max so that 100 classifies. Assumes a validated config,
// so every score in [0,100] lands in exactly one band.
func ClassifyProfile(score float64, bands []ProfileBand) string {
	if len(bands) == 0 {
		return ""
	}
	if score < bands[0].Min {
		return bands[0].Name
	}
	for _, b := range bands {
		if score >= b.Min && score < b.Max {
			return b.Name
		}
	}
	return bands[len(bands)-1].Name
}
