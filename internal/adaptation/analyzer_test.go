package adaptation

import (
	"math"
	"testing"

	"github.com/pulse-assessments/backend/internal/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"kitten", "sitting", 3},
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"flaw", "lawn", 2},
		{"こんにちは", "こんばんは", 2}, // rune-based, not byte-based
	}

	for _, tt := range tests {
		got := Levenshtein(tt.a, tt.b)
		if got != tt.want {
			t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestLevenshteinIdenticalIsZero(t *testing.T) {
	inputs := []string{"a", "hello world", "a longer sentence with punctuation."}
	for _, s := range inputs {
		if d := Levenshtein(s, s); d != 0 {
			t.Errorf("Levenshtein(%q, %q) = %d, want 0", s, s, d)
		}
	}
}

func TestEffortScore(t *testing.T) {
	a := NewAnalyzer()

	// Unchanged text: no effort.
	analysis := a.Analyze("please send the report", "please send the report", "japan")
	if analysis.EffortScore != 0 {
		t.Errorf("unchanged rewrite: effort = %v, want 0", analysis.EffortScore)
	}

	// A full rewrite of a short message can exceed 1.
	analysis = a.Analyze("hi", "I would humbly appreciate your guidance.", "japan")
	if analysis.EffortScore <= 1 {
		t.Errorf("total rewrite of short text: effort = %v, want > 1", analysis.EffortScore)
	}
}

func TestCulturalAccuracy(t *testing.T) {
	a := NewAnalyzer()
	original := "I need this immediately. The deadline is firm."

	// An unmodified copy keeps the negative keywords and adds nothing.
	unchanged := a.Analyze(original, original, "Japan")

	// Adding a positive keyword and dropping "immediate" must score
	// strictly higher.
	adapted := a.Analyze(original,
		"I would greatly respect your effort on this. The timing matters to us.", "Japan")

	if adapted.CulturalAccuracy <= unchanged.CulturalAccuracy {
		t.Errorf("adapted accuracy %v should exceed unchanged accuracy %v",
			adapted.CulturalAccuracy, unchanged.CulturalAccuracy)
	}

	// Context matching is case-insensitive.
	upper := a.Analyze(original, original, "JAPAN")
	if upper.CulturalAccuracy != unchanged.CulturalAccuracy {
		t.Errorf("context matching should be case-insensitive: %v vs %v",
			upper.CulturalAccuracy, unchanged.CulturalAccuracy)
	}

	// Undefined context: no credit, no error.
	unknown := a.Analyze(original, original, "atlantis")
	if unknown.CulturalAccuracy != 0 {
		t.Errorf("unknown context accuracy = %v, want 0", unknown.CulturalAccuracy)
	}
}

func TestCulturalAccuracyClamped(t *testing.T) {
	a := NewAnalyzer()
	original := "This is immediate. We demand it now. The deadline and bottom line must hold, asap."
	rewritten := "We humbly apologize and would appreciate your consideration. " +
		"Perhaps, if honored, you could consider this with respect; would it be possible?"

	analysis := a.Analyze(original, rewritten, "japan")
	if analysis.CulturalAccuracy != 1 {
		t.Errorf("accuracy = %v, want clamped to 1", analysis.CulturalAccuracy)
	}
}

func TestStrategicThinking(t *testing.T) {
	a := NewAnalyzer()

	// Same structure: no structural delta.
	analysis := a.Analyze("One sentence.", "One sentence.", "japan")
	if analysis.StrategicThinking != 0 {
		t.Errorf("identical structure: strategic = %v, want 0", analysis.StrategicThinking)
	}

	// One line, one sentence becomes three lines, three sentences:
	// |3-1|/1 + |3-1|/1 = 4, clamped to 1.
	analysis = a.Analyze("One sentence.", "First line.\nSecond line.\nThird line.", "japan")
	if analysis.StrategicThinking != 1 {
		t.Errorf("restructured text: strategic = %v, want clamped to 1", analysis.StrategicThinking)
	}
}

func TestExecutionQualityHeuristic(t *testing.T) {
	a := NewAnalyzer()

	short := a.Analyze("x", "short", "japan")
	if !almostEqual(short.ExecutionQuality, 0.4) {
		t.Errorf("short rewrite quality = %v, want 0.4", short.ExecutionQuality)
	}

	long := a.Analyze("x", "this rewrite is comfortably longer than fifty characters in total", "japan")
	if !almostEqual(long.ExecutionQuality, 0.8) {
		t.Errorf("long rewrite quality = %v, want 0.8", long.ExecutionQuality)
	}
}

type fixedQuality struct{ v float64 }

func (f fixedQuality) Quality(string) float64 { return f.v }

func TestAnalyzerCustomQuality(t *testing.T) {
	a := NewAnalyzerWithQuality(fixedQuality{v: 0.55})
	analysis := a.Analyze("x", "y", "japan")
	if !almostEqual(analysis.ExecutionQuality, 0.55) {
		t.Errorf("quality = %v, want injected 0.55", analysis.ExecutionQuality)
	}
}

func TestAnalyzeAllAverages(t *testing.T) {
	a := NewAnalyzerWithQuality(fixedQuality{v: 1.0})

	subs := []models.AdaptationSubmission{
		{Original: "abcd", Rewritten: "abcd", TargetContext: "atlantis"}, // effort 0, accuracy 0
		{Original: "abcd", Rewritten: "wxyz", TargetContext: "atlantis"}, // effort 1, accuracy 0
	}

	avg := a.AnalyzeAll(subs)
	if !almostEqual(avg.EffortScore, 0.5) {
		t.Errorf("averaged effort = %v, want 0.5", avg.EffortScore)
	}
	if !almostEqual(avg.ExecutionQuality, 1.0) {
		t.Errorf("averaged quality = %v, want 1.0", avg.ExecutionQuality)
	}

	empty := a.AnalyzeAll(nil)
	if empty != (models.AdaptationAnalysis{}) {
		t.Errorf("empty batch should average to zero values, got %+v", empty)
	}
}
