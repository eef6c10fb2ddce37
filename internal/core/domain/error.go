package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound     = errors.New("data not found")
	ErrNoUpdatedData    = errors.New("no data to update")
	ErrConflictingData  = errors.New("data conflicts with existing data in unique column")
	ErrReferenced       = errors.New("data is referenced by other records")
	ErrConcurrentUpdate = errors.New("data was updated by another transaction")
	ErrRequiredFields   = errors.New("required fields are missing")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Authority errors.
	ErrTokenDuration              = errors.New("invalid token duration format")
	ErrTokenCreation              = errors.New("error creating token")
	ErrExpiredToken               = errors.New("access token has expired")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrInvalidCredentials         = errors.New("invalid email or password")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")
	ErrUnauthorized               = errors.New("user is unauthorized to access the resource")
	ErrForbidden                  = errors.New("user is forbidden to access the resource")

	// * Business errors.
	ErrIllegalStateTransition = errors.New("illegal order state transition")
)

// UserFriendlyError is a business rule violation whose message can be shown to the user as is.
type UserFriendlyError struct {
	Message string
}

func NewUserFriendlyError(message string) *UserFriendlyError {
	return &UserFriendlyError{Message: message}
}

func (e *UserFriendlyError) Error() string {
	return e.Message
}

// ValidationError reports an invalid field value or an invalid operation on an entity.
type ValidationError struct {
	Field string
	Err   error
}

func NewValidationError(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Err: err}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
