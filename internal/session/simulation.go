package session

import (
	"fmt"

	"github.com/pulse-assessments/backend/internal/models"
)

type simulationTarget struct {
	Category  string
	Dimension string
}

// simulationScoring maps each behavioral simulation type onto the category and
// dimension its outcome scores into, per assessment type. Every target
// category must be weighted in that assessment's config so the outcome
// contributes to the overall score; tests enforce this per assessment.
var simulationScoring = map[models.AssessmentType]map[models.SimulationType]simulationTarget{
	models.TypeDecision: {
		models.SimPrioritization: {Category: "analysis", Dimension: "prioritization"},
		models.SimDelegation:     {Category: "decisiveness", Dimension: "delegation"},
		models.SimInterruption:   {Category: "decisiveness", Dimension: "interruption_handling"},
		models.SimNegotiation:    {Category: "risk_tolerance", Dimension: "negotiation"},
	},
	models.TypeStressCoping: {
		models.SimPrioritization: {Category: "problem_focused", Dimension: "prioritization"},
		models.SimDelegation:     {Category: "problem_focused", Dimension: "delegation"},
		models.SimInterruption:   {Category: "emotion_focused", Dimension: "interruption_handling"},
		models.SimNegotiation:    {Category: "social_coping", Dimension: "negotiation"},
	},
}

// SimulationResponse converts a behavioral simulation outcome into a scorable
// response for the given assessment type. The mapping is exhaustive over the
// simulation enum for every assessment with a behavioral phase; an
// unrecognized type is an error, never a silent default score.
func SimulationResponse(assessmentType models.AssessmentType, simType models.SimulationType, questionID string, score float64, timeTakenMs int) (models.Response, error) {
	targets, ok := simulationScoring[assessmentType]
	if !ok {
		return models.Response{}, fmt.Errorf("%w: %s has no behavioral simulations", ErrUnknownSimulation, assessmentType)
	}
	target, ok := targets[simType]
	if !ok {
		return models.Response{}, fmt.Errorf("%w: %q", ErrUnknownSimulation, simType)
	}
	return models.Response{
		QuestionID:  questionID,
		Category:    target.Category,
		Dimension:   target.Dimension,
		Score:       score,
		TimeTakenMs: timeTakenMs,
	}, nil
}
