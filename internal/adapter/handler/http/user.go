package http

import (
	"net/http"

	"github.com/MikeRez0/bakery/internal/core/domain"
	"github.com/MikeRez0/bakery/internal/core/port"
	"github.com/MikeRez0/bakery/internal/core/storefront"
	"github.com/MikeRez0/bakery/internal/core/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	Handler
	service  port.UserService
	sessions *storefront.Sessions
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func NewUserHandler(service port.UserService, sessions *storefront.Sessions, logger *zap.Logger) (*UserHandler, error) {
	return &UserHandler{
		Handler:  *NewHandler(logger.Named("user")),
		service:  service,
		sessions: sessions,
	}, nil
}

func (uh *UserHandler) LoginUser(ctx *gin.Context) {
	userReq := LoginRequest{}
	err := ctx.ShouldBindBodyWithJSON(&userReq)
	if err != nil {
		uh.handleValidationError(ctx, err)
		return
	}

	token, err := uh.service.Login(ctx, userReq.Email, userReq.Password)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccess(ctx, struct {
		Token string `json:"token"`
	}{Token: token})
}

// LogoutUser drops the storefront session of the user.
func (uh *UserHandler) LogoutUser(ctx *gin.Context) {
	uh.sessions.Drop(getCurrentUser(ctx).ID)
	uh.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}

func (uh *UserHandler) Me(ctx *gin.Context) {
	uh.handleSuccess(ctx, getCurrentUser(ctx))
}

type UserRequest struct {
	Version   int    `json:"version"`
	Email     string `json:"email" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	// Password is required for new users. Leaving it empty keeps the current one.
	Password string `json:"password"`
	Role     string `json:"role" binding:"required"`
}

func applyUser(req *UserRequest, user *domain.User) error {
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return err
	}
	if req.Password != "" {
		hashed, err := utils.HashPassword(req.Password)
		if err != nil {
			return err
		}
		user.Password = hashed
	}
	user.Version = req.Version
	user.Email = req.Email
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Role = role
	return nil
}

func NewUserAdminHandler(service port.UserService,
	logger *zap.Logger) (*EntityHandler[*domain.User, UserRequest], error) {
	return NewEntityHandler[*domain.User](service, "User", applyUser, nil, logger), nil
}
