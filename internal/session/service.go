package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/pulse-assessments/backend/internal/adaptation"
	"github.com/pulse-assessments/backend/internal/assessments"
	"github.com/pulse-assessments/backend/internal/cache"
	"github.com/pulse-assessments/backend/internal/engine"
	"github.com/pulse-assessments/backend/internal/models"
)

var (
	ErrRunNotFound       = errors.New("run not found")
	ErrNotOwner          = errors.New("run belongs to another user")
	ErrRunFinished       = errors.New("run is no longer in progress")
	ErrUnknownType       = errors.New("unknown assessment type")
	ErrBadTransition     = errors.New("invalid phase transition")
	ErrNotCultural       = errors.New("adaptation exercises only apply to cultural intelligence runs")
	ErrResultNotReady    = errors.New("run has not reached results")
	ErrUnknownSimulation = errors.New("unknown simulation type")
)

type Service struct {
	store    *Store
	runCache cache.RunCache
	analyzer *adaptation.Analyzer
}

// NewService wires the session service. runCache may be nil; every cache
// path falls back to the store.
func NewService(store *Store, runCache cache.RunCache) *Service {
	return &Service{
		store:    store,
		runCache: runCache,
		analyzer: adaptation.NewAnalyzer(),
	}
}

// ── Run lifecycle ───────────────────────────────────────

func (s *Service) StartRun(ctx context.Context, userID int64, assessmentType models.AssessmentType) (*models.AssessmentRun, error) {
	if _, ok := assessments.Get(assessmentType); !ok {
		return nil, ErrUnknownType
	}
	run, err := s.store.CreateRun(userID, assessmentType)
	if err != nil {
		return nil, err
	}
	log.Printf("[session] started %s run %s for user %d", assessmentType, run.ID, userID)
	return run, nil
}

func (s *Service) GetRun(ctx context.Context, userID int64, runID string) (*models.AssessmentRun, error) {
	return s.ownedRun(userID, runID)
}

func (s *Service) SubmitResponse(ctx context.Context, userID int64, runID string, req models.SubmitResponseRequest) error {
	run, err := s.ownedRun(userID, runID)
	if err != nil {
		return err
	}
	if run.Status != models.RunInProgress {
		return ErrRunFinished
	}

	if err := s.store.UpsertResponse(runID, req); err != nil {
		return err
	}

	// The cached snapshot is stale now; drop it rather than patch it.
	if s.runCache != nil {
		if err := s.runCache.Invalidate(ctx, runID); err != nil {
			log.Printf("[session] WARN: invalidate cache for run %s: %v", runID, err)
		}
	}
	return nil
}

// SubmitSimulation records a behavioral simulation outcome as a regular
// scorable response, using the run's per-assessment category mapping.
func (s *Service) SubmitSimulation(ctx context.Context, userID int64, runID string, req models.SubmitSimulationRequest) error {
	run, err := s.ownedRun(userID, runID)
	if err != nil {
		return err
	}
	resp, err := SimulationResponse(run.AssessmentType, req.SimulationType, req.QuestionID, req.Score, req.TimeTakenMs)
	if err != nil {
		return err
	}
	return s.SubmitResponse(ctx, userID, runID, models.SubmitResponseRequest{
		QuestionID:  resp.QuestionID,
		Category:    resp.Category,
		Dimension:   resp.Dimension,
		Score:       resp.Score,
		TimeTakenMs: resp.TimeTakenMs,
		Position:    req.Position,
	})
}

func (s *Service) SubmitAdaptation(ctx context.Context, userID int64, runID string, req models.SubmitAdaptationRequest) (*models.AdaptationAnalysis, error) {
	run, err := s.ownedRun(userID, runID)
	if err != nil {
		return nil, err
	}
	if run.Status != models.RunInProgress {
		return nil, ErrRunFinished
	}
	if run.AssessmentType != models.TypeCultural {
		return nil, ErrNotCultural
	}

	if _, err := s.store.AddAdaptation(runID, req); err != nil {
		return nil, err
	}

	// Score immediately so the UI can show per-scenario feedback; the
	// averaged fold into dimension totals happens at finalize.
	analysis := s.analyzer.Analyze(req.Original, req.Rewritten, req.TargetContext)
	return &analysis, nil
}

// AdvancePhase moves a run strictly forward along its type's phase
// sequence. Advancing into results finalizes the run and scores it.
func (s *Service) AdvancePhase(ctx context.Context, userID int64, runID string, target models.Phase) (*models.RunResultResponse, error) {
	run, err := s.ownedRun(userID, runID)
	if err != nil {
		return nil, err
	}
	if run.Status != models.RunInProgress {
		return nil, ErrRunFinished
	}

	def, ok := assessments.Get(run.AssessmentType)
	if !ok {
		return nil, ErrUnknownType
	}
	if err := validateTransition(def, run.Phase, target); err != nil {
		return nil, err
	}

	if target == models.PhaseResults {
		result, err := s.finalize(ctx, run, def)
		if err != nil {
			return nil, err
		}
		run.Phase = models.PhaseResults
		run.Status = models.RunCompleted
		return &models.RunResultResponse{Run: *run, Result: result}, nil
	}

	if err := s.store.UpdateRunPhase(runID, target); err != nil {
		return nil, err
	}
	run.Phase = target
	return &models.RunResultResponse{Run: *run}, nil
}

func (s *Service) GetResult(ctx context.Context, userID int64, runID string) (*models.RunResultResponse, error) {
	run, err := s.ownedRun(userID, runID)
	if err != nil {
		return nil, err
	}
	result, err := s.store.GetResult(runID)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, ErrResultNotReady
	}
	return &models.RunResultResponse{Run: *run, Result: result}, nil
}

func (s *Service) AbandonRun(ctx context.Context, userID int64, runID string) error {
	run, err := s.ownedRun(userID, runID)
	if err != nil {
		return err
	}
	if run.Status != models.RunInProgress {
		return ErrRunFinished
	}
	if s.runCache != nil {
		if err := s.runCache.Invalidate(ctx, runID); err != nil {
			log.Printf("[session] WARN: invalidate cache for run %s: %v", runID, err)
		}
	}
	return s.store.AbandonRun(runID)
}

// ── Finalization ────────────────────────────────────────

// finalize runs exactly one scoring pass over the complete, ordered
// response list and persists the result.
func (s *Service) finalize(ctx context.Context, run *models.AssessmentRun, def assessments.Definition) (*models.AssessmentResult, error) {
	responses, err := s.loadResponses(ctx, run.ID)
	if err != nil {
		return nil, err
	}

	// Synthetic adaptation responses fold into the dimension totals only;
	// validity is computed from the answered responses alone.
	var supplement []models.Response
	var profiles []models.CulturalProfile
	if run.AssessmentType == models.TypeCultural {
		subs, err := s.store.ListAdaptations(run.ID)
		if err != nil {
			return nil, err
		}
		if len(subs) > 0 {
			avg := s.analyzer.AnalyzeAll(subs)
			supplement = adaptationResponses(avg, def.Config.PerQuestionMax)

			tracker := adaptation.NewProfileTracker()
			for _, sub := range subs {
				one := s.analyzer.Analyze(sub.Original, sub.Rewritten, sub.TargetContext)
				tracker.Record(sub.ScenarioID, sub.TargetContext, one.CulturalAccuracy)
			}
			profiles = tracker.Profiles()
		}
	}

	result, err := engine.ScoreWithSupplement(responses, supplement, def.Config)
	if err != nil {
		return nil, fmt.Errorf("finalize run %s: %w", run.ID, err)
	}
	result.CulturalProfiles = profiles

	if err := s.store.SaveResult(run.ID, result); err != nil {
		return nil, err
	}
	if err := s.store.CompleteRun(run.ID); err != nil {
		return nil, err
	}
	if s.runCache != nil {
		if err := s.runCache.Invalidate(ctx, run.ID); err != nil {
			log.Printf("[session] WARN: invalidate cache for run %s: %v", run.ID, err)
		}
	}

	log.Printf("[session] run %s scored: overall=%.1f profile=%s validity=%s",
		run.ID, result.OverallScore, result.Profile, result.Validity.OverallValidity)
	return result, nil
}

// loadResponses reads the run's responses through the cache when one is
// configured.
func (s *Service) loadResponses(ctx context.Context, runID string) ([]models.Response, error) {
	if s.runCache != nil {
		cached, err := s.runCache.GetResponses(ctx, runID)
		if err != nil {
			log.Printf("[session] WARN: cache read for run %s: %v", runID, err)
		} else if cached != nil {
			return cached, nil
		}
	}

	responses, err := s.store.ListResponses(runID)
	if err != nil {
		return nil, err
	}

	if s.runCache != nil {
		if err := s.runCache.SetResponses(ctx, runID, responses); err != nil {
			log.Printf("[session] WARN: cache write for run %s: %v", runID, err)
		}
	}
	return responses, nil
}

func (s *Service) ownedRun(userID int64, runID string) (*models.AssessmentRun, error) {
	run, err := s.store.GetRun(runID)
	if err != nil {
		return nil, err
	}
	if run.UserID != userID {
		return nil, ErrNotOwner
	}
	return run, nil
}

// ── Pure helpers ────────────────────────────────────────

// validateTransition enforces strictly-forward movement along the
// definition's phase sequence. Skipping ahead is allowed (some hosts drop
// optional phases), moving backward is not.
func validateTransition(def assessments.Definition, from, to models.Phase) error {
	fromIdx, toIdx := -1, -1
	for i, p := range def.Phases {
		if p == from {
			fromIdx = i
		}
		if p == to {
			toIdx = i
		}
	}
	if toIdx == -1 {
		return fmt.Errorf("%w: %s has no phase %s", ErrBadTransition, def.Type, to)
	}
	if fromIdx == -1 || toIdx <= fromIdx {
		return fmt.Errorf("%w: %s -> %s", ErrBadTransition, from, to)
	}
	return nil
}

// adaptationResponses converts the averaged adaptation sub-scores into
// synthetic responses so they fold into the dimension totals through the
// same weighted aggregation as everything else. Sub-scores are 0-1; effort
// is unbounded and capped at 1 before scaling.
func adaptationResponses(avg models.AdaptationAnalysis, perQuestionMax float64) []models.Response {
	if perQuestionMax <= 0 {
		perQuestionMax = engine.DefaultPerQuestionMax
	}
	scale := func(v float64) float64 {
		return math.Min(v, 1) * perQuestionMax
	}
	return []models.Response{
		{QuestionID: "adaptation-effort", Category: "adaptation", Dimension: "effort", Score: scale(avg.EffortScore)},
		{QuestionID: "adaptation-accuracy", Category: "adaptation", Dimension: "cultural_accuracy", Score: scale(avg.CulturalAccuracy)},
		{QuestionID: "adaptation-strategy", Category: "adaptation", Dimension: "strategic_thinking", Score: scale(avg.StrategicThinking)},
		{QuestionID: "adaptation-execution", Category: "adaptation", Dimension: "execution_quality", Score: scale(avg.ExecutionQuality)},
	}
}
