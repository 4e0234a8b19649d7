package domain

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// Student is an enrolled member paying a subscription charge.
type Student struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	FatherName         string  `json:"fatherName"`
	EnrollNumber       string  `json:"enrollNumber"`
	AadharNumber       string  `json:"aadharNumber"`
	MobileNumber       string  `json:"mobileNumber"`
	SubscriptionCharge float64 `json:"subscriptionCharge"`
	StartDate          string  `json:"startDate"`
	// Photo is an opaque reference, never dereferenced by the backend.
	Photo string `json:"photo"`
}

func (s Student) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.EnrollNumber, validation.Required),
		validation.Field(&s.SubscriptionCharge, validation.Min(0.0)),
	)
}
