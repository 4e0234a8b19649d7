package domain

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

// FacilityCharge is the single monthly charge for facility use.
type FacilityCharge struct {
	Charge    float64   `json:"charge"`
	UpdatedAt time.Time `json:"-"`
}

func (f FacilityCharge) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Charge, validation.Min(0.0)),
	)
}
