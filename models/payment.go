package models

import "fmt"

// Payment is an append-only payment claim. Email must be well formed but is never
// matched against registered users, payers may be anonymous.
type Payment struct {
	ID      int64  `json:"id"`
	Email   string `json:"email" validate:"required,email,max=100"`
	Name    string `json:"name" validate:"notblank,max=100"`
	Mobile  string `json:"mobile" validate:"notblank,max=15"`
	Country string `json:"country" validate:"notblank,max=255"`
	State   string `json:"state" validate:"notblank,max=255"`
	City    string `json:"city" validate:"notblank,max=255"`
	Amount  int64  `json:"amount" validate:"gt=0"`
}

func (p *Payment) Validate() error {
	return validateStruct(p)
}

// ValidateAmount checks an amount outside of a payment record.
func ValidateAmount(amount int64) error {
	if err := validate.Var(amount, "gt=0"); err != nil {
		return fmt.Errorf("%w: amount must be a positive integer", ErrValidation)
	}
	return nil
}
