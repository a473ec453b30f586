package narrative

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/pulse-assessments/backend/internal/models"
)

type Service struct {
	llm LLMClient
}

func NewService(llm LLMClient) *Service {
	return &Service{llm: llm}
}

// Summarize produces the report summary for a scored result. Model errors
// are logged and degrade to a template summary; the caller always gets
// something renderable.
func (s *Service) Summarize(ctx context.Context, result *models.AssessmentResult) *Summary {
	response, err := s.llm.Generate(ctx, systemPrompt(), buildUserPrompt(result))
	if err != nil {
		log.Printf("[narrative] generation failed, using template: %v", err)
		return templateSummary(result)
	}

	summary, err := ParseSummary(response)
	if err != nil {
		log.Printf("[narrative] unparseable response, using template: %v", err)
		return templateSummary(result)
	}
	return summary
}

// templateSummary builds a serviceable summary from the result alone.
func templateSummary(result *models.AssessmentResult) *Summary {
	headline := fmt.Sprintf("Your %s profile: %s", result.AssessmentType, result.Profile)

	first := fmt.Sprintf("You scored %.0f out of 100 overall.", result.OverallScore)
	if len(result.Strengths) > 0 {
		first += fmt.Sprintf(" Your strongest areas were %s.", strings.Join(result.Strengths, ", "))
	}

	second := "Keep doing what works."
	if len(result.PriorityAreas) > 0 {
		second = fmt.Sprintf("The areas that need attention first: %s.", strings.Join(result.PriorityAreas, ", "))
	}
	if len(result.Recommendations) > 0 {
		second += " " + result.Recommendations[0]
	}

	return &Summary{
		Headline:   headline,
		Paragraphs: []string{first, second},
	}
}
