package models

type Student struct {
	ID         int    `json:"id" validate:"gte=0"`
	Name       string `json:"name" validate:"required,min=2,max=50"`
	Email      string `json:"email" validate:"required,email"`
	TestsTaken []int  `json:"tests_taken"`
}

// Clone returns a copy that shares no memory with s.
func (s Student) Clone() Student {
	taken := make([]int, len(s.TestsTaken))
	copy(taken, s.TestsTaken)
	s.TestsTaken = taken
	return s
}
