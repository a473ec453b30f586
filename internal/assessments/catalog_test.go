package assessments

import (
	"testing"

	"github.com/pulse-assessments/backend/internal/engine"
	"github.com/pulse-assessments/backend/internal/models"
)

// Every registered definition must pass config validation: weights summing
// to 1.0 and profile bands tiling [0,100].
func TestCatalogConfigsValid(t *testing.T) {
	defs := All()
	if len(defs) != 6 {
		t.Fatalf("catalog has %d definitions, want 6", len(defs))
	}

	for _, def := range defs {
		if err := def.Config.Validate(); err != nil {
			t.Errorf("config %s failed validation: %v", def.Type, err)
		}
	}
}

// Every integer overall score must land in exactly one profile band.
func TestCatalogBandsExhaustive(t *testing.T) {
	for _, def := range All() {
		for score := 0; score <= 100; score++ {
			matched := 0
			for i, b := range def.Config.ProfileBands {
				s := float64(score)
				last := i == len(def.Config.ProfileBands)-1
				if s >= b.Min && (s < b.Max || (last && s <= b.Max)) {
					matched++
				}
			}
			if matched != 1 {
				t.Errorf("%s: score %d matches %d bands, want exactly 1", def.Type, score, matched)
			}
		}
	}
}

func TestCatalogCoversAllAssessmentTypes(t *testing.T) {
	for at := range models.ValidAssessmentTypes {
		def, ok := Get(at)
		if !ok {
			t.Errorf("no catalog definition for assessment type %s", at)
			continue
		}
		if def.Type != at {
			t.Errorf("definition for %s carries type %s", at, def.Type)
		}
		if len(def.Phases) < 2 {
			t.Errorf("%s: phase sequence too short: %v", at, def.Phases)
		}
		if def.Phases[0] != models.PhaseIntro {
			t.Errorf("%s: first phase = %s, want intro", at, def.Phases[0])
		}
		if def.Phases[len(def.Phases)-1] != models.PhaseResults {
			t.Errorf("%s: last phase = %s, want results", at, def.Phases[len(def.Phases)-1])
		}
	}
}

// Every weighted category has a recommendation entry; a high-risk category
// without one would silently contribute nothing.
func TestCatalogRecommendationCoverage(t *testing.T) {
	for _, def := range All() {
		for category := range def.Config.Weights {
			if _, ok := def.Config.Recommendations[category]; !ok {
				t.Errorf("%s: category %q has no recommendation entry", def.Type, category)
			}
		}
		if def.Config.SupportRecommendation == "" {
			t.Errorf("%s: missing support recommendation", def.Type)
		}
	}
}

// A catalog config driven end to end through the engine produces a named
// profile from its own band table.
func TestCatalogScoresThroughEngine(t *testing.T) {
	def, ok := Get(models.TypeResilience)
	if !ok {
		t.Fatal("resilience definition missing")
	}

	responses := []models.Response{
		{QuestionID: "q1", Category: "adversity", Dimension: "reframing", Score: 5, TimeTakenMs: 4000},
		{QuestionID: "q2", Category: "adversity", Dimension: "reframing", Score: 4, TimeTakenMs: 4000},
		{QuestionID: "q3", Category: "adaptability", Dimension: "flexibility", Score: 3, TimeTakenMs: 4000},
		{QuestionID: "q4", Category: "optimism", Dimension: "outlook", Score: 2, TimeTakenMs: 4000},
	}

	result, err := engine.Score(responses, def.Config)
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}

	found := false
	for _, b := range def.Config.ProfileBands {
		if result.Profile == b.Name {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("profile %q is not one of the resilience bands", result.Profile)
	}
}
