package models

import (
	"time"

	"github.com/google/uuid"
)

// Result is one entry of the result log. ID and SubmittedAt are assigned
// when the store admits the submission.
type Result struct {
	ID          uuid.UUID `json:"id"`
	StudentID   int       `json:"student_id" validate:"gte=0"`
	TestID      int       `json:"test_id" validate:"gte=0"`
	Score       int       `json:"score" validate:"gte=0"`
	SubmittedAt time.Time `json:"submitted_at"`
}
