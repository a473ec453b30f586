package models

type Level string

const (
	LevelExcellent Level = "excellent"
	LevelGood      Level = "good"
	LevelFair      Level = "fair"
	LevelPoor      Level = "poor"
	LevelCritical  Level = "critical"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

type Validity string

const (
	ValidityHigh   Validity = "high"
	ValidityMedium Validity = "medium"
	ValidityLow    Validity = "low"
)

// ── Core Structs ───────────────────────────────────────

// Response is one answered question. Immutable once recorded.
type Response struct {
	QuestionID  string   `json:"question_id"`
	Category    string   `json:"category"`
	Dimension   string   `json:"dimension"`
	Score       float64  `json:"score"`
	TimeTakenMs int      `json:"time_taken_ms"`
	Confidence  *float64 `json:"confidence,omitempty"`
}

// GroupScore is a scored grouping of responses. The same shape serves both
// category scores (coarse, weighted into the overall) and dimension scores
// (fine-grained sub-scales).
type GroupScore struct {
	Key        string    `json:"key"`
	RawScore   float64   `json:"raw_score"`
	MaxScore   float64   `json:"max_score"`
	Percentage float64   `json:"percentage"`
	Level      Level     `json:"level"`
	RiskLevel  RiskLevel `json:"risk_level"`
}

// ValidityMetrics holds the authenticity signals computed once from the full
// response set. Sub-scores are 0-100 integers, rounded at the output boundary.
type ValidityMetrics struct {
	ResponseAuthenticity   int      `json:"response_authenticity"`
	SocialDesirabilityBias int      `json:"social_desirability_bias"`
	ImpressionManagement   int      `json:"impression_management"`
	ResponseConsistency    int      `json:"response_consistency"`
	StraightLining         bool     `json:"straight_lining"`
	SpeedWarning           bool     `json:"speed_warning"`
	OverallValidity        Validity `json:"overall_validity"`
}

// AssessmentResult is the single result object produced per completed run.
type AssessmentResult struct {
	AssessmentType  string          `json:"assessment_type"`
	OverallScore    float64         `json:"overall_score"`
	PercentileScore int             `json:"percentile_score"`
	Profile         string          `json:"profile"`
	CategoryScores  []GroupScore    `json:"category_scores"`
	DimensionScores []GroupScore    `json:"dimension_scores"`
	Strengths       []string        `json:"strengths"`
	Challenges      []string        `json:"challenges"`
	PriorityAreas   []string        `json:"priority_areas"`
	Recommendations []string        `json:"recommendations"`
	Validity        ValidityMetrics `json:"validity"`
	// CulturalProfiles is populated only for cultural intelligence runs.
	CulturalProfiles []CulturalProfile `json:"cultural_profiles,omitempty"`
}

// ── Adaptation Exercise (cultural intelligence only) ────

// AdaptationAnalysis scores one text-rewrite exercise. Sub-scores are 0-1
// except effort, which is unbounded above 0.
type AdaptationAnalysis struct {
	EffortScore       float64 `json:"effort_score"`
	CulturalAccuracy  float64 `json:"cultural_accuracy"`
	StrategicThinking float64 `json:"strategic_thinking"`
	ExecutionQuality  float64 `json:"execution_quality"`
}

// ScenarioRecord notes one scenario outcome inside a CulturalProfile.
type ScenarioRecord struct {
	ScenarioID string  `json:"scenario_id"`
	Context    string  `json:"context"`
	Score      float64 `json:"score"`
}

// CulturalProfile is the rolling per-target-context aggregate built up as
// scenario responses are processed within one run. Scoped to the run.
type CulturalProfile struct {
	Context                string           `json:"context"`
	Interactions           int              `json:"interactions"`
	TotalScore             float64          `json:"total_score"`
	AverageAppropriateness float64          `json:"average_appropriateness"`
	Strengths              []ScenarioRecord `json:"strengths"`
	Challenges             []ScenarioRecord `json:"challenges"`
}
