package stress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreAnchors(t *testing.T) {
	assert.Equal(t, 0, Score(1, 1, 1, 1, 1))
	assert.Equal(t, 100, Score(5, 5, 5, 5, 5))
	assert.Equal(t, 50, Score(3, 3, 3, 3, 3))
}

func TestScoreRangeAndMonotonicity(t *testing.T) {
	for q1 := 1; q1 <= 5; q1++ {
		for q2 := 1; q2 <= 5; q2++ {
			for q3 := 1; q3 <= 5; q3++ {
				for q4 := 1; q4 <= 5; q4++ {
					for q5 := 1; q5 <= 5; q5++ {
						score := Score(q1, q2, q3, q4, q5)
						assert.GreaterOrEqual(t, score, 0)
						assert.LessOrEqual(t, score, 100)
						if q1 < 5 {
							bumped := Score(q1+1, q2, q3, q4, q5)
							assert.GreaterOrEqual(t, bumped, score)
						}
					}
				}
			}
		}
	}
}

func TestLevelBoundaries(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{0, LevelLow},
		{25, LevelLow},
		{26, LevelMedium},
		{50, LevelMedium},
		{51, LevelHigh},
		{75, LevelHigh},
		{76, LevelVeryHigh},
		{100, LevelVeryHigh},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Level(tc.score), "score=%d", tc.score)
	}
}

func TestValidAnswer(t *testing.T) {
	assert.False(t, ValidAnswer(0))
	assert.True(t, ValidAnswer(1))
	assert.True(t, ValidAnswer(5))
	assert.False(t, ValidAnswer(6))
	assert.False(t, ValidAnswer(-3))
}
