// Package database holds the in-memory gradebook: students, tests and the
// result log, guarded together by one lock.
package database

import (
	"sync"
	"time"

	"github.com/anjiri1684/gradebook/models"
)

// Store owns every collection. Mutations that touch more than one
// collection (submission, cascade delete) run under a single write lock, and
// reads return copies so callers never see a half-applied change.
type Store struct {
	mu sync.RWMutex

	students     map[int]models.Student
	studentOrder []int
	tests        map[int]models.Test
	testOrder    []int
	results      resultLog

	now func() time.Time
}

// Snapshot is a consistent copy of the tests and the full result log.
type Snapshot struct {
	Tests   []models.Test
	Results []models.Result
}

// Counts reports collection sizes.
type Counts struct {
	Students int
	Tests    int
	Results  int
}

func New() *Store {
	return &Store{
		students: make(map[int]models.Student),
		tests:    make(map[int]models.Test),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) CreateStudent(student models.Student) (models.Student, error) {
	if err := models.Validate(student); err != nil {
		return models.Student{}, Invalid("student", student.ID, err.Error())
	}
	if student.TestsTaken == nil {
		student.TestsTaken = []int{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.students[student.ID]; exists {
		return models.Student{}, DuplicateID("student", student.ID)
	}
	for _, testID := range student.TestsTaken {
		if _, ok := s.tests[testID]; !ok {
			return models.Student{}, NotFound("test", testID)
		}
	}
	s.students[student.ID] = student.Clone()
	s.studentOrder = append(s.studentOrder, student.ID)
	return student.Clone(), nil
}

func (s *Store) GetStudent(id int) (models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	student, ok := s.students[id]
	if !ok {
		return models.Student{}, NotFound("student", id)
	}
	return student.Clone(), nil
}

func (s *Store) ListStudents() []models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Student, 0, len(s.studentOrder))
	for _, id := range s.studentOrder {
		out = append(out, s.students[id].Clone())
	}
	return out
}

func (s *Store) CreateTest(test models.Test) (models.Test, error) {
	if err := models.Validate(test); err != nil {
		return models.Test{}, Invalid("test", test.ID, err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tests[test.ID]; exists {
		return models.Test{}, DuplicateID("test", test.ID)
	}
	s.tests[test.ID] = test
	s.testOrder = append(s.testOrder, test.ID)
	return test, nil
}

func (s *Store) GetTest(id int) (models.Test, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	test, ok := s.tests[id]
	if !ok {
		return models.Test{}, NotFound("test", id)
	}
	return test, nil
}

func (s *Store) ListTests() []models.Test {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.listTestsLocked()
}

func (s *Store) listTestsLocked() []models.Test {
	out := make([]models.Test, 0, len(s.testOrder))
	for _, id := range s.testOrder {
		out = append(out, s.tests[id])
	}
	return out
}

// ResultsByStudent returns the student's results in submission order.
func (s *Store) ResultsByStudent(studentID int) ([]models.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.students[studentID]; !ok {
		return nil, NotFound("student", studentID)
	}
	return s.results.filterByStudent(studentID), nil
}

// ResultsByTest returns the test's results in submission order.
func (s *Store) ResultsByTest(testID int) ([]models.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.tests[testID]; !ok {
		return nil, NotFound("test", testID)
	}
	return s.results.filterByTest(testID), nil
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Tests:   s.listTestsLocked(),
		Results: s.results.all(),
	}
}

func (s *Store) Counts() Counts {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Counts{
		Students: len(s.students),
		Tests:    len(s.tests),
		Results:  s.results.size(),
	}
}

// removeStudentLocked drops the student record only. Callers hold the write
// lock and are responsible for the result log.
func (s *Store) removeStudentLocked(id int) bool {
	if _, ok := s.students[id]; !ok {
		return false
	}
	delete(s.students, id)
	for i, sid := range s.studentOrder {
		if sid == id {
			s.studentOrder = append(s.studentOrder[:i], s.studentOrder[i+1:]...)
			break
		}
	}
	return true
}
