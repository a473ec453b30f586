package session

import (
	"errors"
	"testing"

	"github.com/pulse-assessments/backend/internal/assessments"
	"github.com/pulse-assessments/backend/internal/models"
)

func TestValidateTransition(t *testing.T) {
	def, ok := assessments.Get(models.TypeResilience)
	if !ok {
		t.Fatal("resilience definition missing")
	}
	// Phases: intro, self_report, scenarios, results.

	tests := []struct {
		from, to models.Phase
		wantErr  bool
	}{
		{models.PhaseIntro, models.PhaseSelfReport, false},
		{models.PhaseSelfReport, models.PhaseScenarios, false},
		{models.PhaseScenarios, models.PhaseResults, false},
		{models.PhaseIntro, models.PhaseResults, false},       // skipping forward is allowed
		{models.PhaseScenarios, models.PhaseSelfReport, true}, // backward
		{models.PhaseIntro, models.PhaseIntro, true},          // no self-loop
		{models.PhaseIntro, models.PhaseBehavioral, true},     // not in this type's sequence
	}

	for _, tt := range tests {
		err := validateTransition(def, tt.from, tt.to)
		if tt.wantErr && err == nil {
			t.Errorf("validateTransition(%s, %s) = nil, want error", tt.from, tt.to)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("validateTransition(%s, %s) = %v, want nil", tt.from, tt.to, err)
		}
		if tt.wantErr && err != nil && !errors.Is(err, ErrBadTransition) {
			t.Errorf("validateTransition(%s, %s) error %v does not wrap ErrBadTransition", tt.from, tt.to, err)
		}
	}
}

func TestSimulationResponse(t *testing.T) {
	resp, err := SimulationResponse(models.TypeDecision, models.SimPrioritization, "sim-1", 4, 30000)
	if err != nil {
		t.Fatalf("SimulationResponse returned error: %v", err)
	}
	if resp.Category != "analysis" || resp.Dimension != "prioritization" {
		t.Errorf("prioritization mapped to %s/%s", resp.Category, resp.Dimension)
	}
	if resp.Score != 4 || resp.TimeTakenMs != 30000 {
		t.Errorf("response carries %v/%d, want 4/30000", resp.Score, resp.TimeTakenMs)
	}

	// The same simulation scores into a different category per assessment.
	resp, err = SimulationResponse(models.TypeStressCoping, models.SimDelegation, "sim-2", 3, 20000)
	if err != nil {
		t.Fatalf("SimulationResponse returned error: %v", err)
	}
	if resp.Category != "problem_focused" {
		t.Errorf("stress-coping delegation mapped to %s, want problem_focused", resp.Category)
	}

	// Unknown simulation types are a hard error, never a default score.
	_, err = SimulationResponse(models.TypeDecision, models.SimulationType("juggling"), "sim-3", 3, 1000)
	if !errors.Is(err, ErrUnknownSimulation) {
		t.Errorf("unknown simulation type: err = %v, want ErrUnknownSimulation", err)
	}

	// Assessments without a behavioral phase reject simulation outcomes.
	_, err = SimulationResponse(models.TypeBurnout, models.SimPrioritization, "sim-4", 3, 1000)
	if !errors.Is(err, ErrUnknownSimulation) {
		t.Errorf("burnout simulation: err = %v, want ErrUnknownSimulation", err)
	}
}

func TestSimulationMappingExhaustiveAndWeighted(t *testing.T) {
	for assessmentType, targets := range simulationScoring {
		def, ok := assessments.Get(assessmentType)
		if !ok {
			t.Fatalf("simulation mapping references unknown assessment %s", assessmentType)
		}
		for simType := range models.ValidSimulationTypes {
			resp, err := SimulationResponse(assessmentType, simType, "q", 3, 1000)
			if err != nil {
				t.Errorf("%s: valid simulation type %s has no scoring mapping: %v", assessmentType, simType, err)
				continue
			}
			// Every target category must carry weight, or the outcome
			// silently contributes nothing to the overall score.
			if _, weighted := def.Config.Weights[resp.Category]; !weighted {
				t.Errorf("%s: simulation %s scores into unweighted category %q", assessmentType, simType, resp.Category)
			}
		}
		if len(targets) != len(models.ValidSimulationTypes) {
			t.Errorf("%s: mapping covers %d simulation types, want %d", assessmentType, len(targets), len(models.ValidSimulationTypes))
		}
	}
}

func TestAdaptationResponses(t *testing.T) {
	avg := models.AdaptationAnalysis{
		EffortScore:       1.6, // unbounded; capped at 1 before scaling
		CulturalAccuracy:  0.8,
		StrategicThinking: 0.5,
		ExecutionQuality:  0.4,
	}

	responses := adaptationResponses(avg, 5)
	if len(responses) != 4 {
		t.Fatalf("got %d responses, want 4", len(responses))
	}
	for _, r := range responses {
		if r.Category != "adaptation" {
			t.Errorf("response %s category = %q, want adaptation", r.QuestionID, r.Category)
		}
	}
	if responses[0].Score != 5 {
		t.Errorf("effort score = %v, want capped at 5", responses[0].Score)
	}
	if responses[1].Score != 4 {
		t.Errorf("accuracy score = %v, want 4", responses[1].Score)
	}
	if responses[2].Score != 2.5 {
		t.Errorf("strategy score = %v, want 2.5", responses[2].Score)
	}

	// Zero per-question max falls back to the engine default.
	responses = adaptationResponses(avg, 0)
	if responses[1].Score != 4 {
		t.Errorf("accuracy score with default max = %v, want 4", responses[1].Score)
	}
}
