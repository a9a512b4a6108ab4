package scoring

import "strings"

// Tier is a readiness band derived from CERS.
type Tier string

const (
	TierHigh     Tier = "high"
	TierModerate Tier = "moderate"
	TierLow      Tier = "low"
)

// Thresholds that map a score to a tier. Each is the inclusive lower bound of its band.
const (
	ThresholdHigh     = 75.0
	ThresholdModerate = 55.0
)

// Readiness is the classification attached to a scored region.
type Readiness struct {
	Tier           Tier   `json:"tier"`
	Level          string `json:"level"`
	Color          string `json:"color"`
	Recommendation string `json:"recommendation"`
}

var (
	highReadiness = Readiness{
		Tier:           TierHigh,
		Level:          "High Readiness",
		Color:          "green",
		Recommendation: "Priority for immediate public funding",
	}
	moderateReadiness = Readiness{
		Tier:           TierModerate,
		Level:          "Moderate Readiness",
		Color:          "yellow",
		Recommendation: "Conditional funding or preparatory support",
	}
	lowReadiness = Readiness{
		Tier:           TierLow,
		Level:          "Low Readiness",
		Color:          "red",
		Recommendation: "Not ready for funding; enabling actions required",
	}
)

// Classify maps a score to its readiness tier. First match wins, evaluated from the top band down.
func Classify(score float64) Readiness {
	switch {
	case score >= ThresholdHigh:
		return highReadiness
	case score >= ThresholdModerate:
		return moderateReadiness
	default:
		return lowReadiness
	}
}

// Tiers returns the three readiness classifications from highest to lowest.
func Tiers() []Readiness {
	return []Readiness{highReadiness, moderateReadiness, lowReadiness}
}

// ShortLevel returns the first word of the level, e.g. "High".
func (r Readiness) ShortLevel() string {
	if i := strings.IndexByte(r.Level, ' '); i > 0 {
		return r.Level[:i]
	}
	return r.Level
}
