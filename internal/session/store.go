package session

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pulse-assessments/backend/internal/models"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// ── Runs ────────────────────────────────────────────────

func (s *Store) CreateRun(userID int64, assessmentType models.AssessmentType) (*models.AssessmentRun, error) {
	run := models.AssessmentRun{
		ID:             uuid.NewString(),
		UserID:         userID,
		AssessmentType: assessmentType,
		Phase:          models.PhaseIntro,
		Status:         models.RunInProgress,
	}
	err := s.db.QueryRow(
		`INSERT INTO assessment_runs (id, user_id, assessment_type, phase, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING started_at`,
		run.ID, run.UserID, run.AssessmentType, run.Phase, run.Status,
	).Scan(&run.StartedAt)
	if err != nil {
		return nil, fmt.Errorf("create run: %w", err)
	}
	return &run, nil
}

func (s *Store) GetRun(runID string) (*models.AssessmentRun, error) {
	var run models.AssessmentRun
	err := s.db.QueryRow(
		`SELECT r.id, r.user_id, r.assessment_type, r.phase, r.status, r.started_at, r.completed_at,
		        (SELECT COUNT(*) FROM run_responses WHERE run_id = r.id)
		 FROM assessment_runs r WHERE r.id = $1`,
		runID,
	).Scan(&run.ID, &run.UserID, &run.AssessmentType, &run.Phase, &run.Status,
		&run.StartedAt, &run.CompletedAt, &run.ResponseCount)
	if err == sql.ErrNoRows {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	return &run, nil
}

func (s *Store) UpdateRunPhase(runID string, phase models.Phase) error {
	_, err := s.db.Exec(
		`UPDATE assessment_runs SET phase = $1 WHERE id = $2`,
		phase, runID,
	)
	return err
}

func (s *Store) CompleteRun(runID string) error {
	_, err := s.db.Exec(
		`UPDATE assessment_runs SET phase = $1, status = $2, completed_at = $3 WHERE id = $4`,
		models.PhaseResults, models.RunCompleted, time.Now(), runID,
	)
	return err
}

func (s *Store) AbandonRun(runID string) error {
	_, err := s.db.Exec(
		`UPDATE assessment_runs SET status = $1 WHERE id = $2`,
		models.RunAbandoned, runID,
	)
	return err
}

// ── Responses ───────────────────────────────────────────

// UpsertResponse records one answered question at a position. Re-recording
// the same position overwrites the old answer: the host UI may allow
// revisiting the previous question, and the last write wins.
func (s *Store) UpsertResponse(runID string, req models.SubmitResponseRequest) error {
	_, err := s.db.Exec(
		`INSERT INTO run_responses (run_id, position, question_id, category, dimension, score, time_taken_ms, confidence)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (run_id, position) DO UPDATE
		 SET question_id = EXCLUDED.question_id, category = EXCLUDED.category,
		     dimension = EXCLUDED.dimension, score = EXCLUDED.score,
		     time_taken_ms = EXCLUDED.time_taken_ms, confidence = EXCLUDED.confidence,
		     recorded_at = NOW()`,
		runID, req.Position, req.QuestionID, req.Category, req.Dimension,
		req.Score, req.TimeTakenMs, req.Confidence,
	)
	if err != nil {
		return fmt.Errorf("upsert response: %w", err)
	}
	return nil
}

// ListResponses returns the run's responses ordered by position.
func (s *Store) ListResponses(runID string) ([]models.Response, error) {
	rows, err := s.db.Query(
		`SELECT question_id, category, dimension, score, time_taken_ms, confidence
		 FROM run_responses WHERE run_id = $1 ORDER BY position`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("list responses: %w", err)
	}
	defer rows.Close()

	var responses []models.Response
	for rows.Next() {
		var r models.Response
		if err := rows.Scan(&r.QuestionID, &r.Category, &r.Dimension, &r.Score, &r.TimeTakenMs, &r.Confidence); err != nil {
			return nil, fmt.Errorf("scan response: %w", err)
		}
		responses = append(responses, r)
	}
	return responses, rows.Err()
}

// ── Adaptation submissions ──────────────────────────────

func (s *Store) AddAdaptation(runID string, req models.SubmitAdaptationRequest) (*models.AdaptationSubmission, error) {
	sub := models.AdaptationSubmission{
		RunID:         runID,
		ScenarioID:    req.ScenarioID,
		TargetContext: req.TargetContext,
		Original:      req.Original,
		Rewritten:     req.Rewritten,
	}
	err := s.db.QueryRow(
		`INSERT INTO adaptation_submissions (run_id, scenario_id, target_context, original, rewritten)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, submitted_at`,
		runID, req.ScenarioID, req.TargetContext, req.Original, req.Rewritten,
	).Scan(&sub.ID, &sub.SubmittedAt)
	if err != nil {
		return nil, fmt.Errorf("add adaptation: %w", err)
	}
	return &sub, nil
}

func (s *Store) ListAdaptations(runID string) ([]models.AdaptationSubmission, error) {
	rows, err := s.db.Query(
		`SELECT id, run_id, scenario_id, target_context, original, rewritten, submitted_at
		 FROM adaptation_submissions WHERE run_id = $1 ORDER BY id`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("list adaptations: %w", err)
	}
	defer rows.Close()

	var subs []models.AdaptationSubmission
	for rows.Next() {
		var sub models.AdaptationSubmission
		if err := rows.Scan(&sub.ID, &sub.RunID, &sub.ScenarioID, &sub.TargetContext,
			&sub.Original, &sub.Rewritten, &sub.SubmittedAt); err != nil {
			return nil, fmt.Errorf("scan adaptation: %w", err)
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

// ── Results ─────────────────────────────────────────────

func (s *Store) SaveResult(runID string, result *models.AssessmentResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO assessment_results (run_id, result) VALUES ($1, $2)
		 ON CONFLICT (run_id) DO NOTHING`,
		runID, payload,
	)
	if err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	return nil
}

func (s *Store) GetResult(runID string) (*models.AssessmentResult, error) {
	var payload []byte
	err := s.db.QueryRow(
		`SELECT result FROM assessment_results WHERE run_id = $1`,
		runID,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get result: %w", err)
	}
	var result models.AssessmentResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("unmarshal result: %w", err)
	}
	return &result, nil
}
