package services

import (
	"github.com/anjiri1684/gradebook/database"
	"github.com/anjiri1684/gradebook/models"
)

// ResultReader is the read side of the store the aggregations need.
type ResultReader interface {
	ResultsByTest(testID int) ([]models.Result, error)
	ResultsByStudent(studentID int) ([]models.Result, error)
	Snapshot() database.Snapshot
}

type TestAverage struct {
	TestID  int     `json:"test_id"`
	Average float64 `json:"average_score"`
}

type TestHighest struct {
	TestID  int `json:"test_id"`
	Highest int `json:"highest_score"`
}

type StudentSummary struct {
	StudentID int     `json:"student_id"`
	Count     int     `json:"results"`
	Average   float64 `json:"average_score"`
	Best      int     `json:"best_score"`
}

// TestDigest summarises one test. Tests without results report zero values
// and Count 0.
type TestDigest struct {
	TestID   int     `json:"test_id"`
	Name     string  `json:"name"`
	MaxScore int     `json:"max_score"`
	Count    int     `json:"results"`
	Average  float64 `json:"average_score"`
	Highest  int     `json:"highest_score"`
}

type StatsService struct {
	store ResultReader
}

func NewStatsService(store ResultReader) *StatsService {
	return &StatsService{store: store}
}

// Average returns the arithmetic mean of every score recorded for the test.
func (s *StatsService) Average(testID int) (TestAverage, error) {
	results, err := s.store.ResultsByTest(testID)
	if err != nil {
		return TestAverage{}, err
	}
	if len(results) == 0 {
		return TestAverage{}, database.NotFound("results", testID)
	}
	return TestAverage{TestID: testID, Average: mean(results)}, nil
}

// Highest returns the best score recorded for the test.
func (s *StatsService) Highest(testID int) (TestHighest, error) {
	results, err := s.store.ResultsByTest(testID)
	if err != nil {
		return TestHighest{}, err
	}
	if len(results) == 0 {
		return TestHighest{}, database.NotFound("results", testID)
	}
	return TestHighest{TestID: testID, Highest: highest(results)}, nil
}

func (s *StatsService) StudentSummary(studentID int) (StudentSummary, error) {
	results, err := s.store.ResultsByStudent(studentID)
	if err != nil {
		return StudentSummary{}, err
	}
	if len(results) == 0 {
		return StudentSummary{}, database.NotFound("results", studentID)
	}
	return StudentSummary{
		StudentID: studentID,
		Count:     len(results),
		Average:   mean(results),
		Best:      highest(results),
	}, nil
}

// Digest summarises every test from a single snapshot of the store, in test
// creation order.
func (s *StatsService) Digest() []TestDigest {
	snap := s.store.Snapshot()

	byTest := make(map[int][]models.Result, len(snap.Tests))
	for _, r := range snap.Results {
		byTest[r.TestID] = append(byTest[r.TestID], r)
	}

	out := make([]TestDigest, 0, len(snap.Tests))
	for _, t := range snap.Tests {
		d := TestDigest{TestID: t.ID, Name: t.Name, MaxScore: t.MaxScore}
		if results := byTest[t.ID]; len(results) > 0 {
			d.Count = len(results)
			d.Average = mean(results)
			d.Highest = highest(results)
		}
		out = append(out, d)
	}
	return out
}

func mean(results []models.Result) float64 {
	sum := 0
	for _, r := range results {
		sum += r.Score
	}
	return float64(sum) / float64(len(results))
}

func highest(results []models.Result) int {
	best := results[0].Score
	for _, r := range results[1:] {
		if r.Score > best {
			best = r.Score
		}
	}
	return best
}
