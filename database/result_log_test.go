package database

import (
	"testing"

	"github.com/anjiri1684/gradebook/models"
	"github.com/stretchr/testify/assert"
)

func TestResultLogFiltersPreserveOrder(t *testing.T) {
	var l resultLog
	l.append(models.Result{StudentID: 1, TestID: 1, Score: 1})
	l.append(models.Result{StudentID: 2, TestID: 1, Score: 2})
	l.append(models.Result{StudentID: 1, TestID: 2, Score: 3})
	l.append(models.Result{StudentID: 1, TestID: 1, Score: 4})

	byStudent := l.filterByStudent(1)
	assert.Equal(t, []int{1, 3, 4}, scores(byStudent))

	byTest := l.filterByTest(1)
	assert.Equal(t, []int{1, 2, 4}, scores(byTest))

	assert.Empty(t, l.filterByTest(3))
	assert.Equal(t, 4, l.size())
}

func TestResultLogPurgeStudent(t *testing.T) {
	var l resultLog
	l.append(models.Result{StudentID: 1, TestID: 1, Score: 1})
	l.append(models.Result{StudentID: 2, TestID: 1, Score: 2})
	l.append(models.Result{StudentID: 1, TestID: 1, Score: 3})

	assert.Equal(t, 2, l.purgeStudent(1))
	assert.Equal(t, []int{2}, scores(l.all()))
	assert.Equal(t, 0, l.purgeStudent(1))
}

func scores(rs []models.Result) []int {
	out := make([]int, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.Score)
	}
	return out
}
