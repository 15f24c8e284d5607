package database

// DeleteStudent removes the student and every result that references it as
// one step. It returns the number of results purged from the log.
func (s *Store) DeleteStudent(id int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.removeStudentLocked(id) {
		return 0, NotFound("student", id)
	}
	return s.results.purgeStudent(id), nil
}
