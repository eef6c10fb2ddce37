package http

import (
	"github.com/MikeRez0/bakery/internal/adapter/config"
	"github.com/MikeRez0/bakery/internal/adapter/metrics"
	"github.com/MikeRez0/bakery/internal/core/domain"
	"github.com/MikeRez0/bakery/internal/core/port"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Router struct {
	*gin.Engine
}

// Handlers groups the handlers served by the router.
type Handlers struct {
	User      *UserHandler
	Order     *OrderHandler
	Dashboard *DashboardHandler
	Products  *EntityHandler[*domain.Product, ProductRequest]
	Locations *EntityHandler[*domain.PickupLocation, PickupLocationRequest]
	Users     *EntityHandler[*domain.User, UserRequest]
}

func NewRouter(
	conf *config.App,
	tokenService port.TokenService,
	users port.UserService,
	handlers Handlers,
	logger *zap.Logger) (*Router, error) {

	if conf.Mode == config.AppModeProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(requestLogger(logger), metrics.Middleware(), gin.Recovery())

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	guard := NewHandler(logger)

	api := router.Group("/api")
	{
		api.POST("/user/login", handlers.User.LoginUser)

		authorized := api.Group("")
		authorized.Use(authCheck(guard, tokenService), loadUser(guard, users))
		{
			user := authorized.Group("/user")
			{
				user.POST("/logout", handlers.User.LogoutUser)
				user.GET("/me", handlers.User.Me)
			}

			authorized.GET("/storefront/orders", handlers.Order.ListOrders)

			orders := authorized.Group("/orders")
			{
				orders.GET("/new", handlers.Order.NewOrder)
				orders.POST("", handlers.Order.CreateOrder)
				orders.GET("/:id", handlers.Order.GetOrder)
				orders.PUT("/:id", handlers.Order.UpdateOrder)
				orders.DELETE("/:id", handlers.Order.DeleteOrder)
				orders.POST("/:id/comments", handlers.Order.AddComment)
				orders.PUT("/:id/state", handlers.Order.ChangeState)
			}

			authorized.GET("/dashboard", handlers.Dashboard.GetDashboard)

			readRoutes(authorized.Group("/products"), handlers.Products)
			readRoutes(authorized.Group("/locations"), handlers.Locations)

			admin := authorized.Group("")
			admin.Use(requireRole(guard, domain.RoleAdmin))
			{
				writeRoutes(admin.Group("/products"), handlers.Products)
				writeRoutes(admin.Group("/locations"), handlers.Locations)

				users := admin.Group("/users")
				readRoutes(users, handlers.Users)
				writeRoutes(users, handlers.Users)
			}
		}
	}

	return &Router{router}, nil
}

type crudHandler interface {
	List(ctx *gin.Context)
	Get(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

func readRoutes(group *gin.RouterGroup, h crudHandler) {
	group.GET("", h.List)
	group.GET("/:id", h.Get)
}

func writeRoutes(group *gin.RouterGroup, h crudHandler) {
	group.POST("", h.Create)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
