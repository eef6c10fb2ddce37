package domain

import "strings"

type PickupLocation struct {
	Base
	Name string `json:"name"`
}

func (l *PickupLocation) Validate() error {
	if strings.TrimSpace(l.Name) == "" || len(l.Name) > 255 {
		return NewValidationError("name", ErrRequiredFields)
	}
	return nil
}
