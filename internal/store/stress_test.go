package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruangtenang/backend/internal/model/stress"
)

func sampleAssessment(sessionKey string, score int) stress.Assessment {
	return stress.Assessment{
		SessionKey:  sessionKey,
		Question1:   3,
		Question2:   3,
		Question3:   3,
		Question4:   3,
		Question5:   3,
		StressScore: score,
		StressLevel: stress.Level(score),
	}
}

func TestStressCreateSetsIDAndTime(t *testing.T) {
	s := NewStressStore()

	created, err := s.Create(sampleAssessment("web-abc", 50))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CompletedAt.IsZero())

	got, err := s.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestStressRecentEmpty(t *testing.T) {
	s := NewStressStore()

	recent, err := s.Recent(7)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestStressRecentOrderAndLimit(t *testing.T) {
	s := NewStressStore()

	var ids []string
	for i := 0; i < 10; i++ {
		created, err := s.Create(sampleAssessment("", i*10))
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	recent, err := s.Recent(7)
	require.NoError(t, err)
	require.Len(t, recent, 7)

	// Newest first; creations in the same clock tick keep reverse insertion
	// order.
	assert.Equal(t, ids[9], recent[0].ID)
	for i := 1; i < len(recent); i++ {
		assert.False(t, recent[i].CompletedAt.After(recent[i-1].CompletedAt))
	}
}

func TestStressBySessionKey(t *testing.T) {
	s := NewStressStore()

	_, err := s.Create(sampleAssessment("a", 25))
	require.NoError(t, err)
	_, err = s.Create(sampleAssessment("b", 50))
	require.NoError(t, err)
	_, err = s.Create(sampleAssessment("a", 75))
	require.NoError(t, err)

	matched, err := s.BySessionKey("a")
	require.NoError(t, err)
	require.Len(t, matched, 2)
	assert.Equal(t, 25, matched[0].StressScore)
	assert.Equal(t, 75, matched[1].StressScore)
}
