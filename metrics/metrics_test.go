package metrics

import (
	"strings"
	"testing"

	"github.com/anjiri1684/gradebook/database"
	"github.com/anjiri1684/gradebook/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreGaugesFollowTheStore(t *testing.T) {
	reg := prometheus.NewRegistry()
	store := database.New()
	New(reg, store)

	_, err := store.CreateTest(models.Test{ID: 1, Name: "Quiz", MaxScore: 10})
	require.NoError(t, err)
	_, err = store.CreateStudent(models.Student{ID: 1, Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)
	_, err = store.SubmitResult(models.Result{StudentID: 1, TestID: 1, Score: 7})
	require.NoError(t, err)

	expected := `
# HELP gradebook_store_results Entries in the result log.
# TYPE gradebook_store_results gauge
gradebook_store_results 1
# HELP gradebook_store_students Students currently stored.
# TYPE gradebook_store_students gauge
gradebook_store_students 1
`
	err = testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"gradebook_store_results", "gradebook_store_students")
	assert.NoError(t, err)
}

func TestCountersAndTestAverage(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg, database.New())

	m.ResultsSubmitted.Inc()
	m.ResultsRejected.WithLabelValues(ReasonInvalidScore).Inc()
	m.ResultsRejected.WithLabelValues(ReasonInvalidScore).Inc()
	m.SetTestAverage(3, 42.5)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ResultsSubmitted))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ResultsRejected.WithLabelValues(ReasonInvalidScore)))
	assert.Equal(t, 42.5, testutil.ToFloat64(m.TestAverage.WithLabelValues("3")))
}

func TestNewPanicsOnDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg, database.New())
	assert.Panics(t, func() { New(reg, database.New()) })
}

func TestClearTestAverageRemovesSeries(t *testing.T) {
	m := New(prometheus.NewRegistry(), database.New())

	m.SetTestAverage(1, 10)
	m.SetTestAverage(2, 20)
	m.ClearTestAverage(1)
	m.ClearTestAverage(9)

	assert.Equal(t, 1, testutil.CollectAndCount(m.TestAverage))
	assert.Equal(t, 20.0, testutil.ToFloat64(m.TestAverage.WithLabelValues("2")))
}
