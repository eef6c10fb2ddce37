package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MikeRez0/bakery/internal/core/domain"
	"github.com/MikeRez0/bakery/internal/core/presenter"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:        http.StatusInternalServerError,
	domain.ErrDataNotFound:    http.StatusNotFound,
	domain.ErrConflictingData: http.StatusConflict,

	domain.ErrInvalidCredentials:         http.StatusUnauthorized,
	domain.ErrUnauthorized:               http.StatusUnauthorized,
	domain.ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationType:   http.StatusUnauthorized,
	domain.ErrInvalidToken:               http.StatusUnauthorized,
	domain.ErrExpiredToken:               http.StatusUnauthorized,
	domain.ErrForbidden:                  http.StatusForbidden,

	domain.ErrNoUpdatedData: http.StatusBadRequest,
	domain.ErrBadRequest:    http.StatusBadRequest,
}

var categoryStatusMap = map[presenter.Category]int{
	presenter.CategoryApplication:      http.StatusUnprocessableEntity,
	presenter.CategoryReferences:       http.StatusConflict,
	presenter.CategoryConcurrentUpdate: http.StatusConflict,
	presenter.CategoryNotFound:         http.StatusNotFound,
	presenter.CategoryRequiredFields:   http.StatusBadRequest,
}

type errorResponse struct {
	Category   string `json:"category"`
	Message    string `json:"message"`
	Persistent bool   `json:"persistent"`
	Field      string `json:"field,omitempty"`
}

type confirmationResponse struct {
	Confirmation presenter.Message `json:"confirmation"`
}

type pageResponse[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

func statusOf(err error) (int, bool) {
	if status, ok := errorStatusMap[err]; ok {
		return status, true
	}
	for e, status := range errorStatusMap {
		if errors.Is(err, e) {
			return status, true
		}
	}
	return http.StatusInternalServerError, false
}

// handleValidationError sends an error response for a request that could not be parsed
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	h.logger.Debug("bad request", zap.Error(err))
	ctx.JSON(http.StatusBadRequest, errorResponse{Message: domain.ErrBadRequest.Error()})
}

// handleAbort sends an error response and aborts the request with the specified status code and error message
func (h *Handler) handleAbort(ctx *gin.Context, err error) {
	statusCode, ok := statusOf(err)
	if !ok {
		h.logger.Error("aborting request", zap.Error(err))
	}
	_ = ctx.AbortWithError(statusCode, err)
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	statusCode, ok := statusOf(err)
	if !ok {
		h.logger.Error("error processing request", zap.Error(err))
	}
	ctx.Status(statusCode)
}

// handleErrorMessage sends an error already classified by a presenter
func (h *Handler) handleErrorMessage(ctx *gin.Context, msg presenter.ErrorMessage) {
	statusCode, ok := categoryStatusMap[msg.Category]
	if !ok || msg.Message == presenter.MsgUnexpectedInternalFail {
		statusCode = http.StatusInternalServerError
	}
	ctx.JSON(statusCode, errorResponse{
		Category:   msg.Category.String(),
		Message:    msg.Message,
		Persistent: msg.Persistent,
		Field:      msg.Field,
	})
}

func (h *Handler) handleConfirmationRequired(ctx *gin.Context, c *presenter.Confirmation) {
	ctx.JSON(http.StatusPreconditionRequired, confirmationResponse{Confirmation: c.Message})
}

// handleSuccessWithStatus sends a success response with the specified status code and optional data
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}

func pathID(ctx *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrBadRequest
	}
	return id, nil
}

func pageRequest(ctx *gin.Context) domain.PageRequest {
	page, _ := strconv.Atoi(ctx.Query("page"))
	size, _ := strconv.Atoi(ctx.Query("size"))
	return domain.NewPageRequest(page, size)
}

func confirmed(ctx *gin.Context) bool {
	ok, _ := strconv.ParseBool(ctx.Query("confirm"))
	return ok
}
