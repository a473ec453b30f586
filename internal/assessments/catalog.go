// Package assessments holds the per-type configuration data for every
// assessment the product offers. The scoring pipeline is shared; adding an
// assessment type means adding a Definition here, not new scoring code.
package assessments

import (
	"math/rand"
	"time"

	"github.com/pulse-assessments/backend/internal/engine"
	"github.com/pulse-assessments/backend/internal/models"
)

// Definition bundles everything the server needs to run one assessment
// type: its display name, phase sequence, and engine configuration.
type Definition struct {
	Type   models.AssessmentType
	Name   string
	Phases []models.Phase
	Config engine.Config
}

// defaultPercentiles simulates a norm sample until a real one exists.
var defaultPercentiles = engine.NewSimulatedPercentiles(rand.New(rand.NewSource(time.Now().UnixNano())))

var catalog = map[models.AssessmentType]Definition{
	models.TypeBurnout: {
		Type:   models.TypeBurnout,
		Name:   "Burnout Risk",
		Phases: []models.Phase{models.PhaseIntro, models.PhaseSelfReport, models.PhaseResults},
		Config: engine.Config{
			Name: string(models.TypeBurnout),
			Weights: map[string]float64{
				"workload":  0.25,
				"emotional": 0.25,
				"efficacy":  0.20,
				"support":   0.15,
				"worklife":  0.10,
				"coping":    0.05,
			},
			ProfileBands: []engine.ProfileBand{
				{Min: 0, Max: 35, Name: "Critical"},
				{Min: 35, Max: 50, Name: "Vulnerable"},
				{Min: 50, Max: 65, Name: "Stable"},
				{Min: 65, Max: 80, Name: "Resilient"},
				{Min: 80, Max: 100, Name: "Thriving"},
			},
			Recommendations: map[string]string{
				"workload":  "Renegotiate your workload: list your commitments and bring the three heaviest to your manager.",
				"emotional": "Build a daily decompression routine and protect it like a meeting.",
				"efficacy":  "Track small wins weekly; burnout erodes the memory of progress.",
				"support":   "Identify two colleagues you can debrief with regularly.",
				"worklife":  "Set a hard stop for your workday and make it visible to your team.",
				"coping":    "Swap one avoidance habit for one active coping habit this week.",
			},
			SupportRecommendation: "Consider seeking structured support from a coach or mental health professional.",
			Percentiles:           defaultPercentiles,
		},
	},

	models.TypeResilience: {
		Type:   models.TypeResilience,
		Name:   "Resilience Profile",
		Phases: []models.Phase{models.PhaseIntro, models.PhaseSelfReport, models.PhaseScenarios, models.PhaseResults},
		Config: engine.Config{
			Name: string(models.TypeResilience),
			Weights: map[string]float64{
				"adversity":    0.30,
				"adaptability": 0.25,
				"optimism":     0.20,
				"support":      0.15,
				"recovery":     0.10,
			},
			ProfileBands: []engine.ProfileBand{
				{Min: 0, Max: 20, Name: "Clay"},
				{Min: 20, Max: 40, Name: "Bronze"},
				{Min: 40, Max: 55, Name: "Copper"},
				{Min: 55, Max: 70, Name: "Iron"},
				{Min: 70, Max: 85, Name: "Steel"},
				{Min: 85, Max: 100, Name: "Titanium"},
			},
			Recommendations: map[string]string{
				"adversity":    "Reframe one current setback in writing: what it blocks, what it opens.",
				"adaptability": "Change one fixed routine per week to practice low-stakes flexibility.",
				"optimism":     "Close each day by noting one thing that went better than expected.",
				"support":      "Map your support network and schedule time with its weakest link.",
				"recovery":     "Treat recovery as training: plan rest with the same rigor as work.",
			},
			SupportRecommendation: "Consider seeking structured support from a coach or mental health professional.",
			Percentiles:           defaultPercentiles,
		},
	},

	models.TypeDrive: {
		Type:   models.TypeDrive,
		Name:   "Drive & Motivation",
		Phases: []models.Phase{models.PhaseIntro, models.PhaseSelfReport, models.PhaseTimeEstimation, models.PhaseResults},
		Config: engine.Config{
			Name: string(models.TypeDrive),
			Weights: map[string]float64{
				"intrinsic":   0.35,
				"persistence": 0.25,
				"extrinsic":   0.20,
				"ambition":    0.20,
			},
			ProfileBands: []engine.ProfileBand{
				{Min: 0, Max: 30, Name: "Dormant"},
				{Min: 30, Max: 50, Name: "Coasting"},
				{Min: 50, Max: 70, Name: "Motivated"},
				{Min: 70, Max: 85, Name: "Driven"},
				{Min: 85, Max: 100, Name: "Trailblazer"},
			},
			Recommendations: map[string]string{
				"intrinsic":   "Reconnect your work to something you would do unpaid; schedule one hour of it weekly.",
				"persistence": "Shrink your goals until quitting feels harder than finishing.",
				"extrinsic":   "Make rewards explicit: define what done earns you before you start.",
				"ambition":    "Write a twelve-month ambition and break it into quarterly checkpoints.",
			},
			SupportRecommendation: "Consider seeking structured support from a coach or mental health professional.",
			Percentiles:           defaultPercentiles,
		},
	},

	models.TypeCultural: {
		Type:   models.TypeCultural,
		Name:   "Cultural Intelligence",
		Phases: []models.Phase{models.PhaseIntro, models.PhaseSelfReport, models.PhaseScenarios, models.PhaseResults},
		Config: engine.Config{
			Name: string(models.TypeCultural),
			Weights: map[string]float64{
				"awareness":     0.30,
				"adaptation":    0.40,
				"communication": 0.30,
			},
			ProfileBands: []engine.ProfileBand{
				{Min: 0, Max: 30, Name: "Novice"},
				{Min: 30, Max: 50, Name: "Tourist"},
				{Min: 50, Max: 70, Name: "Explorer"},
				{Min: 70, Max: 85, Name: "Navigator"},
				{Min: 85, Max: 100, Name: "Ambassador"},
			},
			Recommendations: map[string]string{
				"awareness":     "Before your next cross-cultural exchange, research one norm you might be violating.",
				"adaptation":    "Rewrite one recent message for a different cultural audience and compare the two.",
				"communication": "Ask a counterpart from another culture how your communication style lands.",
			},
			SupportRecommendation: "Consider seeking structured support from a coach or mental health professional.",
			Percentiles:           defaultPercentiles,
		},
	},

	models.TypeDecision: {
		Type:   models.TypeDecision,
		Name:   "Decision Style",
		Phases: []models.Phase{models.PhaseIntro, models.PhaseSelfReport, models.PhaseScenarios, models.PhaseBehavioral, models.PhaseResults},
		Config: engine.Config{
			Name: string(models.TypeDecision),
			Weights: map[string]float64{
				"analysis":       0.30,
				"decisiveness":   0.30,
				"intuition":      0.20,
				"risk_tolerance": 0.20,
			},
			ProfileBands: []engine.ProfileBand{
				{Min: 0, Max: 30, Name: "Paralyzed"},
				{Min: 30, Max: 50, Name: "Hesitant"},
				{Min: 50, Max: 70, Name: "Deliberate"},
				{Min: 70, Max: 85, Name: "Balanced"},
				{Min: 85, Max: 100, Name: "Strategist"},
			},
			Recommendations: map[string]string{
				"analysis":       "For recurring decisions, write the criteria once and reuse them.",
				"decisiveness":   "Set a decision deadline before gathering information, not after.",
				"intuition":      "Log your gut calls and check them a month later; calibrate, don't suppress.",
				"risk_tolerance": "Size one small bet per month where the downside is survivable.",
			},
			SupportRecommendation: "Consider seeking structured support from a coach or mental health professional.",
			Percentiles:           defaultPercentiles,
		},
	},

	models.TypeStressCoping: {
		Type:   models.TypeStressCoping,
		Name:   "Stress & Coping",
		Phases: []models.Phase{models.PhaseIntro, models.PhaseSelfReport, models.PhaseBehavioral, models.PhaseResults},
		Config: engine.Config{
			Name: string(models.TypeStressCoping),
			Weights: map[string]float64{
				"problem_focused": 0.35,
				"emotion_focused": 0.25,
				"social_coping":   0.20,
				"avoidance":       0.20,
			},
			ProfileBands: []engine.ProfileBand{
				{Min: 0, Max: 30, Name: "Overwhelmed"},
				{Min: 30, Max: 50, Name: "Strained"},
				{Min: 50, Max: 70, Name: "Managing"},
				{Min: 70, Max: 85, Name: "Steady"},
				{Min: 85, Max: 100, Name: "Grounded"},
			},
			Recommendations: map[string]string{
				"problem_focused": "Pick your top stressor and write the one concrete action that shrinks it.",
				"emotion_focused": "Name the feeling before acting on it; labeling lowers its intensity.",
				"social_coping":   "Tell one person what you are carrying this week.",
				"avoidance":       "List what you are avoiding and do the smallest item today.",
			},
			SupportRecommendation: "Consider seeking structured support from a coach or mental health professional.",
			Percentiles:           defaultPercentiles,
		},
	},
}

// Get returns the definition for an assessment type.
func Get(t models.AssessmentType) (Definition, bool) {
	def, ok := catalog[t]
	return def, ok
}

// All returns every definition, for the listing endpoint. Order is not
// guaranteed; callers sort if they need stability.
func All() []Definition {
	defs := make([]Definition, 0, len(catalog))
	for _, def := range catalog {
		defs = append(defs, def)
	}
	return defs
}

// Categories returns the weighted category keys of a definition.
func (d Definition) Categories() []string {
	keys := make([]string, 0, len(d.Config.Weights))
	for key := range d.Config.Weights {
		keys = append(keys, key)
	}
	return keys
}
