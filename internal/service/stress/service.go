package stress

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ruangtenang/backend/internal/model/stress"
	"github.com/ruangtenang/backend/internal/store"
)

// DefaultHistoryLimit backfills the 7-day trend display.
const DefaultHistoryLimit = 7

// Input carries the raw answers of one assessment submission.
type Input struct {
	SessionKey string
	Question1  int
	Question2  int
	Question3  int
	Question4  int
	Question5  int
}

// ValidationError names every answer field outside the accepted range.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid assessment data: %s", strings.Join(e.Fields, ", "))
}

// Service validates, scores and persists stress self-assessments.
type Service struct {
	assessments *store.StressStore
}

func NewService(assessments *store.StressStore) *Service {
	return &Service{assessments: assessments}
}

// Assess scores the answers and stores the derived record. Out-of-range
// answers are rejected with a ValidationError before anything is written.
func (s *Service) Assess(_ context.Context, in Input) (stress.Assessment, error) {
	if err := validate(in); err != nil {
		return stress.Assessment{}, err
	}

	score := stress.Score(in.Question1, in.Question2, in.Question3, in.Question4, in.Question5)
	return s.assessments.Create(stress.Assessment{
		SessionKey:  in.SessionKey,
		Question1:   in.Question1,
		Question2:   in.Question2,
		Question3:   in.Question3,
		Question4:   in.Question4,
		Question5:   in.Question5,
		StressScore: score,
		StressLevel: stress.Level(score),
	})
}

// History returns up to limit assessments across all sessions, newest first.
// A non-positive limit falls back to DefaultHistoryLimit.
func (s *Service) History(_ context.Context, limit int) ([]stress.Assessment, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return s.assessments.Recent(limit)
}

func validate(in Input) error {
	answers := map[string]int{
		"question1": in.Question1,
		"question2": in.Question2,
		"question3": in.Question3,
		"question4": in.Question4,
		"question5": in.Question5,
	}

	var invalid []string
	for field, v := range answers {
		if !stress.ValidAnswer(v) {
			invalid = append(invalid, field)
		}
	}
	if len(invalid) > 0 {
		sort.Strings(invalid)
		return &ValidationError{Fields: invalid}
	}
	return nil
}
