// Package adaptation scores free-text rewrite exercises for the cultural
// intelligence assessment: how much a message changed, whether it moved
// toward the target culture's phrasing, and how the structure shifted. It
// runs as an independent pipeline beside the response-scoring engine,
// consuming raw text pairs rather than scored responses.
package adaptation

import (
	"strings"

	"github.com/pulse-assessments/backend/internal/models"
)

// QualityHeuristic estimates execution quality for a rewrite. The default
// is a coarse length proxy; it is isolated here so a better metric can be
// swapped in without touching the rest of the analyzer.
type QualityHeuristic interface {
	Quality(rewritten string) float64
}

// LengthQuality is the placeholder heuristic: anything beyond a sentence or
// so of effort scores 0.8, shorter rewrites 0.4.
type LengthQuality struct{}

func (LengthQuality) Quality(rewritten string) float64 {
	if len(rewritten) > 50 {
		return 0.8
	}
	return 0.4
}

type Analyzer struct {
	quality QualityHeuristic
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{quality: LengthQuality{}}
}

// NewAnalyzerWithQuality lets callers substitute the execution-quality
// heuristic.
func NewAnalyzerWithQuality(q QualityHeuristic) *Analyzer {
	return &Analyzer{quality: q}
}

// Analyze scores one (original, rewritten, targetContext) triple.
func (a *Analyzer) Analyze(original, rewritten, targetContext string) models.AdaptationAnalysis {
	return models.AdaptationAnalysis{
		EffortScore:       effortScore(original, rewritten),
		CulturalAccuracy:  culturalAccuracy(original, rewritten, targetContext),
		StrategicThinking: strategicThinking(original, rewritten),
		ExecutionQuality:  a.quality.Quality(rewritten),
	}
}

// AnalyzeAll scores a batch of triples and returns the arithmetic mean of
// each sub-score, ready to fold into the run's dimension totals.
func (a *Analyzer) AnalyzeAll(submissions []models.AdaptationSubmission) models.AdaptationAnalysis {
	if len(submissions) == 0 {
		return models.AdaptationAnalysis{}
	}

	var sum models.AdaptationAnalysis
	for _, sub := range submissions {
		one := a.Analyze(sub.Original, sub.Rewritten, sub.TargetContext)
		sum.EffortScore += one.EffortScore
		sum.CulturalAccuracy += one.CulturalAccuracy
		sum.StrategicThinking += one.StrategicThinking
		sum.ExecutionQuality += one.ExecutionQuality
	}

	n := float64(len(submissions))
	return models.AdaptationAnalysis{
		EffortScore:       sum.EffortScore / n,
		CulturalAccuracy:  sum.CulturalAccuracy / n,
		StrategicThinking: sum.StrategicThinking / n,
		ExecutionQuality:  sum.ExecutionQuality / n,
	}
}

// effortScore is edit distance normalized by original length. Unbounded
// above 0: a total rewrite of a short message can exceed 1.
func effortScore(original, rewritten string) float64 {
	origLen := len([]rune(original))
	if origLen == 0 {
		return 0
	}
	return float64(Levenshtein(original, rewritten)) / float64(origLen)
}

// culturalAccuracy starts at 0.5 and earns 0.1 per positive keyword present
// in the rewrite and 0.1 per negative keyword removed from the original,
// clamped to [0,1]. A context without a lexicon scores 0.
func culturalAccuracy(original, rewritten, targetContext string) float64 {
	lex, ok := LexiconFor(targetContext)
	if !ok {
		return 0
	}

	origLower := strings.ToLower(original)
	rewrLower := strings.ToLower(rewritten)

	score := 0.5
	for _, kw := range lex.Positive {
		if strings.Contains(rewrLower, kw) {
			score += 0.1
		}
	}
	for _, kw := range lex.Negative {
		if strings.Contains(origLower, kw) && !strings.Contains(rewrLower, kw) {
			score += 0.1
		}
	}

	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// strategicThinking measures structural change: relative line-count delta
// plus relative sentence-count delta, clamped to [0,1].
func strategicThinking(original, rewritten string) float64 {
	origLines := countLines(original)
	rewrLines := countLines(rewritten)
	origSentences := countSentences(original)
	rewrSentences := countSentences(rewritten)

	score := 0.0
	if origLines > 0 {
		score += abs(rewrLines-origLines) / float64(origLines)
	}
	if origSentences > 0 {
		score += abs(rewrSentences-origSentences) / float64(origSentences)
	}

	if score > 1 {
		return 1
	}
	return score
}

func countLines(s string) int {
	if strings.TrimSpace(s) == "" {
		return 0
	}
	return len(strings.Split(strings.TrimRight(s, "\n"), "\n"))
}

func countSentences(s string) int {
	count := 0
	for _, r := range s {
		if r == '.' || r == '!' || r == '?' {
			count++
		}
	}
	return count
}

func normalizeContext(targetContext string) string {
	return strings.ToLower(strings.TrimSpace(targetContext))
}

func abs(n int) float64 {
	if n < 0 {
		return float64(-n)
	}
	return float64(n)
}
