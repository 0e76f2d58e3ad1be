package stress

import (
	"math"
	"time"
)

// Assessment is an immutable record of one five-question self-report.
// StressScore and StressLevel are derived from the answers at creation time
// and never recomputed.
type Assessment struct {
	ID          string    `json:"id"`
	SessionKey  string    `json:"sessionId,omitempty"`
	Question1   int       `json:"question1"`
	Question2   int       `json:"question2"`
	Question3   int       `json:"question3"`
	Question4   int       `json:"question4"`
	Question5   int       `json:"question5"`
	StressScore int       `json:"stressScore"`
	StressLevel string    `json:"stressLevel"`
	CompletedAt time.Time `json:"completedAt"`
}

// Stress level labels, one per contiguous score band.
const (
	LevelLow      = "Low"
	LevelMedium   = "Medium"
	LevelHigh     = "High"
	LevelVeryHigh = "Very High"
)

// ValidAnswer reports whether a single ordinal answer is in the accepted
// 1..5 range. Callers reject out-of-range answers before scoring.
func ValidAnswer(v int) bool {
	return v >= 1 && v <= 5
}

// Score maps five ordinal answers onto the 0..100 scale:
// round((mean - 1) * 25). All-ones scores 0, all-fives scores 100.
func Score(q1, q2, q3, q4, q5 int) int {
	average := float64(q1+q2+q3+q4+q5) / 5
	return int(math.Round((average - 1) * 25))
}

// Level buckets a score into four bands. Boundary scores fall into the
// lower band.
func Level(score int) string {
	switch {
	case score <= 25:
		return LevelLow
	case score <= 50:
		return LevelMedium
	case score <= 75:
		return LevelHigh
	default:
		return LevelVeryHigh
	}
}
