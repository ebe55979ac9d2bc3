package models

import (
	"fmt"

	"github.com/isaacwassouf/cricket-betting-service/consts"
)

// bcrypt ignores everything past 72 bytes
const MaxPasswordLength = 72

// Principal is a stored identity of either kind. Admin principals only carry
// the email and the hash, the remaining identity fields stay empty.
type Principal struct {
	ID           int64                `json:"id"`
	Kind         consts.PrincipalKind `json:"kind"`
	FullName     string               `json:"full_name,omitempty"`
	DateOfBirth  string               `json:"date_of_birth,omitempty"`
	Email        string               `json:"email"`
	PasswordHash string               `json:"-"`
	Phone        string               `json:"phone,omitempty"`
}

// Registration holds the fields submitted when a principal signs up. The
// identity fields are only required for users.
type Registration struct {
	FullName    string `json:"full_name" validate:"notblank,max=100"`
	DateOfBirth string `json:"date_of_birth" validate:"notblank,max=20"`
	Email       string `json:"email" validate:"required,email,max=100"`
	Password    string `json:"password" validate:"required,max=72"`
	Phone       string `json:"phone" validate:"notblank,max=15"`
}

var userOnlyFields = []string{"FullName", "DateOfBirth", "Phone"}

func (r Registration) Validate(kind consts.PrincipalKind) error {
	var err error
	switch kind {
	case consts.USER:
		err = validateStruct(r)
	case consts.ADMIN:
		err = validateStruct(r, userOnlyFields...)
	default:
		return fmt.Errorf("%w: unknown principal kind %q", ErrValidation, kind)
	}
	if err != nil {
		return err
	}

	// max counts characters, bcrypt counts bytes
	if len(r.Password) > MaxPasswordLength {
		return fmt.Errorf("%w: password must be at most %d bytes", ErrValidation, MaxPasswordLength)
	}
	return nil
}
