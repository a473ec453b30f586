package engine

import (
	"fmt"
	"math"
)

// DefaultPerQuestionMax is the raw score ceiling for a single question unless
// the assessment config overrides it.
const DefaultPerQuestionMax = 5.0

// MaxRecommendations caps the advisory list per result. Truncation is by
// iteration order only.
const MaxRecommendations = 5

// weightTolerance is the allowed drift when checking that category weights
// sum to 1.0.
const weightTolerance = 1e-9

// ProfileBand maps a half-open overall-score range onto a named profile.
// A band covers [Min, Max); the final band additionally includes Max.
type ProfileBand struct {
	Min  float64
	Max  float64
	Name string
}

// Config parameterizes one assessment type. The scoring pipeline itself is
// shared; each assessment contributes only a Config.
type Config struct {
	Name           string
	PerQuestionMax float64
	// Weights maps category key to its share of the overall score.
	// Must sum to 1.0. Categories without a weight are still reported
	// individually but excluded from the weighted overall.
	Weights map[string]float64
	// ProfileBands must be contiguous and cover [0,100] exactly,
	// ordered ascending by Min.
	ProfileBands []ProfileBand
	// Recommendations maps category key to the advisory text appended when
	// that category scores at high risk.
	Recommendations map[string]string
	// SupportRecommendation is appended when the overall score drops
	// below 50.
	SupportRecommendation string
	// Percentiles supplies the percentile estimate for a given overall
	// score. Optional; when nil the engine falls back to the rounded
	// overall score.
	Percentiles PercentileSource
}

func (c Config) perQuestionMax() float64 {
	if c.PerQuestionMax > 0 {
		return c.PerQuestionMax
	}
	return DefaultPerQuestionMax
}

// Validate checks the configuration invariants that are hard errors:
// weights summing to 1.0 and profile bands tiling [0,100] with no gaps or
// overlaps. Everything else degrades gracefully at scoring time.
func (c Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("config: name is required")
	}

	if len(c.Weights) > 0 {
		sum := 0.0
		for key, w := range c.Weights {
			if w < 0 {
				return fmt.Errorf("config %s: negative weight for category %q", c.Name, key)
			}
			sum += w
		}
		if math.Abs(sum-1.0) > weightTolerance {
			return fmt.Errorf("config %s: weights sum to %v, want 1.0", c.Name, sum)
		}
	}

	if len(c.ProfileBands) == 0 {
		return fmt.Errorf("config %s: no profile bands", c.Name)
	}
	if c.ProfileBands[0].Min != 0 {
		return fmt.Errorf("config %s: first profile band starts at %v, want 0", c.Name, c.ProfileBands[0].Min)
	}
	for i, b := range c.ProfileBands {
		if b.Name == "" {
			return fmt.Errorf("config %s: profile band %d has no name", c.Name, i)
		}
		if b.Max <= b.Min {
			return fmt.Errorf("config %s: profile band %q has min %v >= max %v", c.Name, b.Name, b.Min, b.Max)
		}
		if i > 0 && b.Min != c.ProfileBands[i-1].Max {
			return fmt.Errorf("config %s: gap or overlap between bands %q and %q",
				c.Name, c.ProfileBands[i-1].Name, b.Name)
		}
	}
	last := c.ProfileBands[len(c.ProfileBands)-1]
	if last.Max != 100 {
		return fmt.Errorf("config %s: last profile band ends at %v, want 100", c.Name, last.Max)
	}

	return nil
}
