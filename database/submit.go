package database

import (
	"fmt"

	"github.com/anjiri1684/gradebook/models"
	"github.com/google/uuid"
)

// SubmitResult admits a result after checking that its student and test
// exist and that the score lies within [0, max_score]. On success the result
// is appended to the log and the test id to the student's history, both
// under the same lock. A rejected submission changes nothing.
func (s *Store) SubmitResult(r models.Result) (models.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	student, ok := s.students[r.StudentID]
	if !ok {
		return models.Result{}, NotFound("student", r.StudentID)
	}
	test, ok := s.tests[r.TestID]
	if !ok {
		return models.Result{}, NotFound("test", r.TestID)
	}
	if err := models.Validate(r); err != nil {
		return models.Result{}, Invalid("test", r.TestID,
			fmt.Sprintf("student %d: %s", r.StudentID, err.Error()))
	}
	if r.Score > test.MaxScore {
		return models.Result{}, Invalid("test", r.TestID,
			fmt.Sprintf("student %d: score %d exceeds max_score %d", r.StudentID, r.Score, test.MaxScore))
	}

	r.ID = uuid.New()
	r.SubmittedAt = s.now()

	s.results.append(r)
	student.TestsTaken = append(student.TestsTaken, r.TestID)
	s.students[r.StudentID] = student
	return r, nil
}
