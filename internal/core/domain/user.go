package domain

import (
	"fmt"
	"strings"
)

type Role string

const (
	RoleBarista Role = "barista"
	RoleBaker   Role = "baker"
	RoleAdmin   Role = "admin"
)

func Roles() []Role {
	return []Role{RoleBarista, RoleBaker, RoleAdmin}
}

func ParseRole(s string) (Role, error) {
	for _, r := range Roles() {
		if strings.EqualFold(string(r), s) {
			return r, nil
		}
	}
	return "", NewValidationError("role", fmt.Errorf("unknown role %q", s))
}

type User struct {
	Base
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"-"`
	Role      Role   `json:"role"`
	Locked    bool   `json:"locked"`
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

func (u *User) Validate() error {
	if strings.TrimSpace(u.Email) == "" || len(u.Email) > 255 || !strings.Contains(u.Email, "@") {
		return NewValidationError("email", ErrRequiredFields)
	}
	if strings.TrimSpace(u.FirstName) == "" || len(u.FirstName) > 255 {
		return NewValidationError("first_name", ErrRequiredFields)
	}
	if strings.TrimSpace(u.LastName) == "" || len(u.LastName) > 255 {
		return NewValidationError("last_name", ErrRequiredFields)
	}
	if u.Password == "" {
		return NewValidationError("password", ErrRequiredFields)
	}
	if _, err := ParseRole(string(u.Role)); err != nil {
		return err
	}
	return nil
}
