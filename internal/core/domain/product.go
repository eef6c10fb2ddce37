package domain

import (
	"strings"
	"unicode/utf8"
)

type Product struct {
	Base
	Name string `json:"name"`
	// Price in cents.
	Price int64 `json:"price"`
}

func (p *Product) Validate() error {
	n := utf8.RuneCountInString(strings.TrimSpace(p.Name))
	if n < 2 || n > 255 {
		return NewValidationError("name", ErrRequiredFields)
	}
	if p.Price < 0 || p.Price > 100000 {
		return NewValidationError("price", ErrRequiredFields)
	}
	return nil
}
