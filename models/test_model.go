package models

type Test struct {
	ID       int    `json:"id" validate:"gte=0"`
	Name     string `json:"name" validate:"required,min=2,max=100"`
	MaxScore int    `json:"max_score" validate:"gte=0"`
}
