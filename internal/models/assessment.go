package models

import "time"

type AssessmentType string

const (
	TypeBurnout      AssessmentType = "burnout"
	TypeResilience   AssessmentType = "resilience"
	TypeDrive        AssessmentType = "drive"
	TypeCultural     AssessmentType = "cultural_intelligence"
	TypeDecision     AssessmentType = "decision_style"
	TypeStressCoping AssessmentType = "stress_coping"
)

var ValidAssessmentTypes = map[AssessmentType]bool{
	TypeBurnout:      true,
	TypeResilience:   true,
	TypeDrive:        true,
	TypeCultural:     true,
	TypeDecision:     true,
	TypeStressCoping: true,
}

type Phase string

const (
	PhaseIntro          Phase = "intro"
	PhaseSelfReport     Phase = "self_report"
	PhaseScenarios      Phase = "scenarios"
	PhaseTimeEstimation Phase = "time_estimation"
	PhaseBehavioral     Phase = "behavioral"
	PhaseResults        Phase = "results"
)

type RunStatus string

const (
	RunInProgress RunStatus = "in_progress"
	RunCompleted  RunStatus = "completed"
	RunAbandoned  RunStatus = "abandoned"
)

// SimulationType tags a behavioral-phase exercise. Scoring is exhaustive over
// this enum; an unknown type is an error, never a silent default.
type SimulationType string

const (
	SimPrioritization SimulationType = "prioritization"
	SimDelegation     SimulationType = "delegation"
	SimInterruption   SimulationType = "interruption"
	SimNegotiation    SimulationType = "negotiation"
)

var ValidSimulationTypes = map[SimulationType]bool{
	SimPrioritization: true,
	SimDelegation:     true,
	SimInterruption:   true,
	SimNegotiation:    true,
}

// ── Core Structs ───────────────────────────────────────

// AssessmentRun is one user's pass through one assessment type.
type AssessmentRun struct {
	ID             string         `json:"id"`
	UserID         int64          `json:"user_id"`
	AssessmentType AssessmentType `json:"assessment_type"`
	Phase          Phase          `json:"phase"`
	Status         RunStatus      `json:"status"`
	ResponseCount  int            `json:"response_count"`
	StartedAt      time.Time      `json:"started_at"`
	CompletedAt    *time.Time     `json:"completed_at,omitempty"`
}

// AdaptationSubmission is one text-rewrite exercise inside a cultural
// intelligence run.
type AdaptationSubmission struct {
	ID            int64     `json:"id"`
	RunID         string    `json:"run_id"`
	ScenarioID    string    `json:"scenario_id"`
	TargetContext string    `json:"target_context"`
	Original      string    `json:"original"`
	Rewritten     string    `json:"rewritten"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

// ── API Request/Response Types ────────────────────────────

type StartRunRequest struct {
	AssessmentType AssessmentType `json:"assessment_type"`
}

type SubmitResponseRequest struct {
	QuestionID  string   `json:"question_id"`
	Category    string   `json:"category"`
	Dimension   string   `json:"dimension"`
	Score       float64  `json:"score"`
	TimeTakenMs int      `json:"time_taken_ms"`
	Confidence  *float64 `json:"confidence,omitempty"`
	Position    int      `json:"position"`
}

type SubmitAdaptationRequest struct {
	ScenarioID    string `json:"scenario_id"`
	TargetContext string `json:"target_context"`
	Original      string `json:"original"`
	Rewritten     string `json:"rewritten"`
}

type SubmitSimulationRequest struct {
	SimulationType SimulationType `json:"simulation_type"`
	QuestionID     string         `json:"question_id"`
	Score          float64        `json:"score"`
	TimeTakenMs    int            `json:"time_taken_ms"`
	Position       int            `json:"position"`
}

type AdvancePhaseRequest struct {
	Phase Phase `json:"phase"`
}

type RunResultResponse struct {
	Run    AssessmentRun     `json:"run"`
	Result *AssessmentResult `json:"result,omitempty"`
}

type AssessmentTypeInfo struct {
	Type       AssessmentType `json:"type"`
	Name       string         `json:"name"`
	Categories []string       `json:"categories"`
	Phases     []Phase        `json:"phases"`
}
