package presenter

import (
	"errors"

	"github.com/MikeRez0/bakery/internal/core/domain"
)

type Category int

const (
	// CategoryApplication is a business rule violation carrying its own message.
	CategoryApplication Category = iota + 1
	CategoryReferences
	CategoryConcurrentUpdate
	CategoryNotFound
	CategoryRequiredFields
)

func (c Category) String() string {
	switch c {
	case CategoryApplication:
		return "application"
	case CategoryReferences:
		return "references"
	case CategoryConcurrentUpdate:
		return "concurrent_update"
	case CategoryNotFound:
		return "not_found"
	case CategoryRequiredFields:
		return "required_fields"
	}
	return "unknown"
}

const (
	MsgEntityNotFound         = "The selected entity was not found."
	MsgConcurrentUpdate       = "Somebody else might have updated the data. Please refresh and try again."
	MsgPreventedByReferences  = "The operation can not be executed as there are references to entity in the database."
	MsgRequiredFieldsMissing  = "Please fill out all required fields before proceeding."
	MsgConflictingData        = "The data conflicts with an existing entry. Please check unique values and try again."
	MsgUnexpectedInternalFail = "Something went wrong while processing the request. Please try again later."
)

// ErrorMessage is what the user is told about a failed operation.
type ErrorMessage struct {
	Category   Category
	Message    string
	Persistent bool
	// Field is the first invalid field, set for CategoryRequiredFields when known.
	Field string
}

var internalError = ErrorMessage{
	Category:   CategoryApplication,
	Message:    MsgUnexpectedInternalFail,
	Persistent: true,
}

// Classify maps err to exactly one category. It returns false for errors it does not know.
func Classify(err error) (ErrorMessage, bool) {
	var friendly *domain.UserFriendlyError
	var validation *domain.ValidationError

	switch {
	case errors.As(err, &friendly):
		return ErrorMessage{Category: CategoryApplication, Message: friendly.Message, Persistent: true}, true
	case errors.Is(err, domain.ErrReferenced):
		return ErrorMessage{Category: CategoryReferences, Message: MsgPreventedByReferences, Persistent: true}, true
	case errors.Is(err, domain.ErrConcurrentUpdate):
		return ErrorMessage{Category: CategoryConcurrentUpdate, Message: MsgConcurrentUpdate, Persistent: true}, true
	case errors.Is(err, domain.ErrConflictingData):
		return ErrorMessage{Category: CategoryApplication, Message: MsgConflictingData, Persistent: true}, true
	case errors.Is(err, domain.ErrDataNotFound):
		return ErrorMessage{Category: CategoryNotFound, Message: MsgEntityNotFound}, true
	case errors.As(err, &validation):
		return ErrorMessage{Category: CategoryRequiredFields, Message: MsgRequiredFieldsMissing, Field: validation.Field}, true
	case errors.Is(err, domain.ErrRequiredFields):
		return ErrorMessage{Category: CategoryRequiredFields, Message: MsgRequiredFieldsMissing}, true
	}
	return ErrorMessage{}, false
}
