package database

import "github.com/anjiri1684/gradebook/models"

// resultLog is the append-only history of admitted results. It is not safe
// for concurrent use on its own; Store guards it.
type resultLog struct {
	entries []models.Result
}

func (l *resultLog) append(r models.Result) {
	l.entries = append(l.entries, r)
}

func (l *resultLog) filterByStudent(studentID int) []models.Result {
	return l.filter(func(r models.Result) bool { return r.StudentID == studentID })
}

func (l *resultLog) filterByTest(testID int) []models.Result {
	return l.filter(func(r models.Result) bool { return r.TestID == testID })
}

func (l *resultLog) filter(keep func(models.Result) bool) []models.Result {
	out := make([]models.Result, 0)
	for _, r := range l.entries {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// purgeStudent rewrites the log without the student's entries and reports
// how many were dropped.
func (l *resultLog) purgeStudent(studentID int) int {
	kept := make([]models.Result, 0, len(l.entries))
	for _, r := range l.entries {
		if r.StudentID != studentID {
			kept = append(kept, r)
		}
	}
	removed := len(l.entries) - len(kept)
	l.entries = kept
	return removed
}

func (l *resultLog) all() []models.Result {
	out := make([]models.Result, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *resultLog) size() int {
	return len(l.entries)
}
