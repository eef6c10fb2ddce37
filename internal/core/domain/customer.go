package domain

import (
	"regexp"
	"strings"
)

var phoneNumberPattern = regexp.MustCompile(`^(\+\d+)?([ -]?\d+){4,14}$`)

type Customer struct {
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
	Details     string `json:"details,omitempty"`
}

func (c Customer) Validate() error {
	if strings.TrimSpace(c.FullName) == "" || len(c.FullName) > 255 {
		return NewValidationError("customer.full_name", ErrRequiredFields)
	}
	if len(c.PhoneNumber) > 20 || !phoneNumberPattern.MatchString(c.PhoneNumber) {
		return NewValidationError("customer.phone_number", ErrRequiredFields)
	}
	if len(c.Details) > 255 {
		return NewValidationError("customer.details", ErrRequiredFields)
	}
	return nil
}
