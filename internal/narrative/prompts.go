package narrative

import (
	"fmt"
	"strings"

	"github.com/pulse-assessments/backend/internal/models"
)

func systemPrompt() string {
	return `You write short, warm, plain-language summaries of workplace assessment results.
You never diagnose, never use clinical language, and never promise outcomes.
Return ONLY valid JSON matching this schema:
{
  "headline": "one encouraging sentence",
  "paragraphs": ["2-4 sentences on what stands out", "2-3 sentences on where to focus next"]
}`
}

func buildUserPrompt(result *models.AssessmentResult) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Assessment: %s\n", result.AssessmentType)
	fmt.Fprintf(&sb, "Overall score: %.1f (profile: %s)\n", result.OverallScore, result.Profile)
	fmt.Fprintf(&sb, "Validity: %s\n", result.Validity.OverallValidity)

	sb.WriteString("Category scores:\n")
	for _, cs := range result.CategoryScores {
		fmt.Fprintf(&sb, "- %s: %.0f%% (%s, %s risk)\n", cs.Key, cs.Percentage, cs.Level, cs.RiskLevel)
	}

	if len(result.Strengths) > 0 {
		fmt.Fprintf(&sb, "Strengths: %s\n", strings.Join(result.Strengths, ", "))
	}
	if len(result.PriorityAreas) > 0 {
		fmt.Fprintf(&sb, "Priority areas: %s\n", strings.Join(result.PriorityAreas, ", "))
	}

	sb.WriteString("\nWrite the summary JSON now.")
	return sb.String()
}
