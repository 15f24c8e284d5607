package services

import (
	"testing"

	"github.com/anjiri1684/gradebook/database"
	"github.com/anjiri1684/gradebook/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, scores ...int) *database.Store {
	t.Helper()
	s := database.New()
	_, err := s.CreateTest(models.Test{ID: 1, Name: "Algebra", MaxScore: 100})
	require.NoError(t, err)
	_, err = s.CreateTest(models.Test{ID: 2, Name: "Geometry", MaxScore: 50})
	require.NoError(t, err)
	_, err = s.CreateStudent(models.Student{ID: 10, Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)
	for _, score := range scores {
		_, err := s.SubmitResult(models.Result{StudentID: 10, TestID: 1, Score: score})
		require.NoError(t, err)
	}
	return s
}

func TestAverageAndHighest(t *testing.T) {
	stats := NewStatsService(newStore(t, 2, 4, 6))

	avg, err := stats.Average(1)
	require.NoError(t, err)
	assert.Equal(t, TestAverage{TestID: 1, Average: 4.0}, avg)

	hi, err := stats.Highest(1)
	require.NoError(t, err)
	assert.Equal(t, TestHighest{TestID: 1, Highest: 6}, hi)
}

func TestAverageIsNotRounded(t *testing.T) {
	stats := NewStatsService(newStore(t, 1, 2))

	avg, err := stats.Average(1)
	require.NoError(t, err)
	assert.Equal(t, 1.5, avg.Average)
}

func TestAggregatesOverNoResults(t *testing.T) {
	stats := NewStatsService(newStore(t))

	_, err := stats.Average(1)
	require.ErrorIs(t, err, database.ErrNotFound)
	assert.Equal(t, "results", err.(*database.Error).Entity)

	_, err = stats.Highest(1)
	require.ErrorIs(t, err, database.ErrNotFound)
}

func TestAggregatesOverUnknownTest(t *testing.T) {
	stats := NewStatsService(newStore(t, 5))

	_, err := stats.Average(9)
	require.ErrorIs(t, err, database.ErrNotFound)
	assert.Equal(t, "test", err.(*database.Error).Entity)

	_, err = stats.Highest(9)
	require.ErrorIs(t, err, database.ErrNotFound)
	assert.Equal(t, "test", err.(*database.Error).Entity)
}

func TestStudentSummary(t *testing.T) {
	stats := NewStatsService(newStore(t, 30, 90))

	sum, err := stats.StudentSummary(10)
	require.NoError(t, err)
	assert.Equal(t, StudentSummary{StudentID: 10, Count: 2, Average: 60, Best: 90}, sum)

	_, err = stats.StudentSummary(11)
	require.ErrorIs(t, err, database.ErrNotFound)
}

func TestDigestCoversEveryTest(t *testing.T) {
	stats := NewStatsService(newStore(t, 10, 20))

	digest := stats.Digest()
	require.Len(t, digest, 2)
	assert.Equal(t, TestDigest{TestID: 1, Name: "Algebra", MaxScore: 100, Count: 2, Average: 15, Highest: 20}, digest[0])
	assert.Equal(t, TestDigest{TestID: 2, Name: "Geometry", MaxScore: 50}, digest[1])
}

func TestScenarioAverageAfterRejectedSubmission(t *testing.T) {
	s := newStore(t, 85)
	_, err := s.SubmitResult(models.Result{StudentID: 10, TestID: 1, Score: 150})
	require.ErrorIs(t, err, database.ErrValidation)

	avg, err := NewStatsService(s).Average(1)
	require.NoError(t, err)
	assert.Equal(t, 85.0, avg.Average)

	_, err = s.DeleteStudent(10)
	require.NoError(t, err)
	results, err := s.ResultsByTest(1)
	require.NoError(t, err)
	assert.Empty(t, results)

	_, err = NewStatsService(s).Average(1)
	require.ErrorIs(t, err, database.ErrNotFound)
}
