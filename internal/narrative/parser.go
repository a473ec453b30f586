package narrative

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Summary is the parsed narrative payload.
type Summary struct {
	Headline   string   `json:"headline"`
	Paragraphs []string `json:"paragraphs"`
}

// ParseSummary parses a model response into a Summary, tolerating markdown
// code fences around the JSON.
func ParseSummary(responseBody string) (*Summary, error) {
	cleaned := stripCodeFences(responseBody)

	var summary Summary
	if err := json.Unmarshal([]byte(cleaned), &summary); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if summary.Headline == "" {
		return nil, fmt.Errorf("summary missing headline")
	}
	if len(summary.Paragraphs) == 0 {
		return nil, fmt.Errorf("summary missing paragraphs")
	}
	return &summary, nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSpace(s)
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSpace(s)
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}
	return s
}
