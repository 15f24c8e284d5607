package jobs

import (
	"testing"

	"github.com/anjiri1684/gradebook/database"
	"github.com/anjiri1684/gradebook/metrics"
	"github.com/anjiri1684/gradebook/models"
	"github.com/anjiri1684/gradebook/services"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder map[int]float64

func (r recorder) SetTestAverage(testID int, avg float64) {
	r[testID] = avg
}

func (r recorder) ClearTestAverage(testID int) {
	delete(r, testID)
}

func TestStatsDigestRecordsAveragesForGradedTests(t *testing.T) {
	store := database.New()
	_, err := store.CreateTest(models.Test{ID: 1, Name: "Algebra", MaxScore: 10})
	require.NoError(t, err)
	_, err = store.CreateTest(models.Test{ID: 2, Name: "Geometry", MaxScore: 10})
	require.NoError(t, err)
	_, err = store.CreateStudent(models.Student{ID: 1, Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)
	for _, score := range []int{4, 8} {
		_, err = store.SubmitResult(models.Result{StudentID: 1, TestID: 1, Score: score})
		require.NoError(t, err)
	}

	rec := recorder{}
	StatsDigest(services.NewStatsService(store), rec)()

	assert.Equal(t, recorder{1: 6}, rec)
}

func TestStatsDigestOnEmptyStore(t *testing.T) {
	rec := recorder{}
	StatsDigest(services.NewStatsService(database.New()), rec)()
	assert.Empty(t, rec)
}

func TestStatsDigestSchedulesWithCron(t *testing.T) {
	c := cron.New()
	_, err := c.AddFunc("*/5 * * * *", StatsDigest(services.NewStatsService(database.New()), recorder{}))
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 1)

	_, err = c.AddFunc("not a schedule", func() {})
	assert.Error(t, err)
}

func TestStatsDigestClearsAverageOnceResultsAreGone(t *testing.T) {
	store := database.New()
	_, err := store.CreateTest(models.Test{ID: 1, Name: "Algebra", MaxScore: 100})
	require.NoError(t, err)
	_, err = store.CreateStudent(models.Student{ID: 10, Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)
	_, err = store.SubmitResult(models.Result{StudentID: 10, TestID: 1, Score: 85})
	require.NoError(t, err)

	m := metrics.New(prometheus.NewRegistry(), store)
	job := StatsDigest(services.NewStatsService(store), m)

	job()
	require.Equal(t, 1, testutil.CollectAndCount(m.TestAverage))
	assert.Equal(t, 85.0, testutil.ToFloat64(m.TestAverage.WithLabelValues("1")))

	_, err = store.DeleteStudent(10)
	require.NoError(t, err)
	job()

	assert.Equal(t, 0, testutil.CollectAndCount(m.TestAverage))
}

func TestStatsDigestClearsRecorderForUngradedTests(t *testing.T) {
	store := database.New()
	_, err := store.CreateTest(models.Test{ID: 3, Name: "Algebra", MaxScore: 10})
	require.NoError(t, err)

	rec := recorder{3: 7.5}
	StatsDigest(services.NewStatsService(store), rec)()
	assert.Empty(t, rec)
}
