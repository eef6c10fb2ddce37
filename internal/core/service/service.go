package service

import (
	"errors"

	"github.com/MikeRez0/bakery/internal/core/domain"
	"go.uber.org/zap"
)

// repoError passes through the errors callers know how to report and hides the rest behind ErrInternal.
func repoError(logger *zap.Logger, msg string, err error) error {
	var friendly *domain.UserFriendlyError
	var validation *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrDataNotFound),
		errors.Is(err, domain.ErrConflictingData),
		errors.Is(err, domain.ErrReferenced),
		errors.Is(err, domain.ErrConcurrentUpdate),
		errors.Is(err, domain.ErrRequiredFields),
		errors.As(err, &friendly),
		errors.As(err, &validation):
		return err
	}
	logger.Error(msg, zap.Error(err))
	return domain.ErrInternal
}
