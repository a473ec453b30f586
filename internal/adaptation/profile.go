package adaptation

import (
	"sort"

	"github.com/pulse-assessments/backend/internal/models"
)

// strengthThreshold splits scenario outcomes: at or above it a scenario is
// recorded as a strength, below as a challenge.
const strengthThreshold = 0.7

// ProfileTracker accumulates per-target-context cultural profiles over the
// scenario responses of one run. It is scoped to a single run and must not
// be shared across runs or sessions.
type ProfileTracker struct {
	profiles map[string]*models.CulturalProfile
}

func NewProfileTracker() *ProfileTracker {
	return &ProfileTracker{profiles: make(map[string]*models.CulturalProfile)}
}

// Record folds one scenario outcome into the target context's rolling
// profile. Appropriateness is expected in [0,1].
func (t *ProfileTracker) Record(scenarioID, targetContext string, appropriateness float64) {
	key := normalizeContext(targetContext)
	profile, ok := t.profiles[key]
	if !ok {
		profile = &models.CulturalProfile{Context: key}
		t.profiles[key] = profile
	}

	profile.Interactions++
	profile.TotalScore += appropriateness
	profile.AverageAppropriateness = profile.TotalScore / float64(profile.Interactions)

	record := models.ScenarioRecord{
		ScenarioID: scenarioID,
		Context:    key,
		Score:      appropriateness,
	}
	if appropriateness >= strengthThreshold {
		profile.Strengths = append(profile.Strengths, record)
	} else {
		profile.Challenges = append(profile.Challenges, record)
	}
}

// Profiles returns the accumulated profiles sorted by context key.
func (t *ProfileTracker) Profiles() []models.CulturalProfile {
	keys := make([]string, 0, len(t.profiles))
	for key := range t.profiles {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	profiles := make([]models.CulturalProfile, 0, len(keys))
	for _, key := range keys {
		profiles = append(profiles, *t.profiles[key])
	}
	return profiles
}
