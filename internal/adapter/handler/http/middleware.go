package http

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/MikeRez0/bakery/internal/core/domain"
	"github.com/MikeRez0/bakery/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const authHeaderKey = "Authorization"
const authType = "Bearer"
const userPayloadKey = "user_payload"
const currentUserKey = "current_user"

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		logger.Info(
			"got incoming HTTP request",
			zap.String("uri", ctx.Request.RequestURI),
			zap.String("method", ctx.Request.Method),
			zap.Duration("duration", time.Since(start)),
			zap.Int("status", ctx.Writer.Status()),
			zap.Int("size", ctx.Writer.Size()),
		)
	}
}

func authCheck(h *Handler, tokenService port.TokenService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.Request.Header.Get(authHeaderKey)
		if len(header) == 0 {
			h.handleAbort(ctx, domain.ErrEmptyAuthorizationHeader)
			return
		}

		words := strings.Split(header, " ")
		if len(words) != 2 {
			h.handleAbort(ctx, domain.ErrInvalidAuthorizationHeader)
			return
		}
		if words[0] != authType {
			h.handleAbort(ctx, domain.ErrInvalidAuthorizationType)
			return
		}
		token := words[1]
		payload, err := tokenService.VerifyToken(token)
		if err != nil {
			h.handleAbort(ctx, domain.ErrInvalidToken)
			return
		}

		ctx.Set(userPayloadKey, payload)

		ctx.Next()
	}
}

// loadUser resolves the token payload to the stored user. Deleted users lose access immediately.
func loadUser(h *Handler, users port.UserService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, err := users.GetUser(ctx, getAuthPayload(ctx).UserID)
		if err != nil {
			if errors.Is(err, domain.ErrDataNotFound) {
				h.handleAbort(ctx, domain.ErrUnauthorized)
				return
			}
			h.handleAbort(ctx, err)
			return
		}

		ctx.Set(currentUserKey, user)

		ctx.Next()
	}
}

func requireRole(h *Handler, roles ...domain.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !slices.Contains(roles, getCurrentUser(ctx).Role) {
			h.handleAbort(ctx, domain.ErrForbidden)
			return
		}
		ctx.Next()
	}
}

func getAuthPayload(ctx *gin.Context) *port.TokenPayload {
	return ctx.MustGet(userPayloadKey).(*port.TokenPayload)
}

func getCurrentUser(ctx *gin.Context) *domain.User {
	return ctx.MustGet(currentUserKey).(*domain.User)
}

// requestUser adapts the user of a request to the presenters.
type requestUser struct {
	user *domain.User
}

func (u requestUser) CurrentUser() *domain.User {
	return u.user
}

func currentUser(ctx *gin.Context) port.CurrentUser {
	return requestUser{user: getCurrentUser(ctx)}
}
