package domain

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// Candidate is a former student selected elsewhere.
type Candidate struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	FatherName   string `json:"fatherName"`
	Village      string `json:"village"`
	EnrollNumber string `json:"enrollNumber"`
	SelectedIn   string `json:"selectedIn"`
	Photo        string `json:"photo"`
}

func (c Candidate) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.EnrollNumber, validation.Required),
	)
}
