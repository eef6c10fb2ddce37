package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MikeRez0/bakery/internal/adapter/auth"
	"github.com/MikeRez0/bakery/internal/adapter/config"
	"github.com/MikeRez0/bakery/internal/adapter/events"
	"github.com/MikeRez0/bakery/internal/adapter/handler/http"
	"github.com/MikeRez0/bakery/internal/adapter/logger"
	"github.com/MikeRez0/bakery/internal/adapter/storage"
	"github.com/MikeRez0/bakery/internal/adapter/storage/repository"
	"github.com/MikeRez0/bakery/internal/core/port"
	"github.com/MikeRez0/bakery/internal/core/service"
	"github.com/MikeRez0/bakery/internal/core/storefront"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := storage.NewDBStorage(ctx, conf.Database, log.Named("Storage"))
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	defer db.Pool.Close()
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("repository creating error", zap.Error(err))
		return
	}
	tokenService, err := auth.New(conf.Auth.TokenTTL)
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}

	var publisher port.OrderEventPublisher = events.NoopPublisher{}
	if conf.Kafka.Brokers != "" {
		dispatcher, err := events.NewDispatcher(conf.Kafka, log.Named("Events"))
		if err != nil {
			log.Error("event dispatcher creating error", zap.Error(err))
			return
		}
		dispatcher.Run(ctx, conf.Kafka.Workers)
		defer func() {
			if err := dispatcher.Close(); err != nil {
				log.Error("event dispatcher close error", zap.Error(err))
			}
		}()
		publisher = dispatcher
	}

	userService, err := service.NewUserService(repo, tokenService, log.Named("User service"))
	if err != nil {
		log.Error("user service creating error", zap.Error(err))
		return
	}
	productService, err := service.NewProductService(repo, log.Named("Product service"))
	if err != nil {
		log.Error("product service creating error", zap.Error(err))
		return
	}
	locationService, err := service.NewPickupLocationService(repo, log.Named("Location service"))
	if err != nil {
		log.Error("location service creating error", zap.Error(err))
		return
	}
	orderService, err := service.NewOrderService(repo, locationService, publisher, log.Named("Order service"))
	if err != nil {
		log.Error("order service creating error", zap.Error(err))
		return
	}

	if conf.Admin.Email != "" && conf.Admin.Password != "" {
		err = userService.EnsureAdmin(ctx, conf.Admin.Email, conf.Admin.Password)
		if err != nil {
			log.Error("admin bootstrap error", zap.Error(err))
			return
		}
	}

	sessions := storefront.NewSessions(orderService, time.Now)

	userHandler, err := http.NewUserHandler(userService, sessions, log.Named("User handler"))
	if err != nil {
		log.Error("user handler creating error", zap.Error(err))
		return
	}
	orderHandler, err := http.NewOrderHandler(orderService, productService, locationService, sessions,
		log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	dashboardHandler, err := http.NewDashboardHandler(orderService, log.Named("Dashboard handler"))
	if err != nil {
		log.Error("dashboard handler creating error", zap.Error(err))
		return
	}
	productHandler, err := http.NewProductHandler(productService, log.Named("Product handler"))
	if err != nil {
		log.Error("product handler creating error", zap.Error(err))
		return
	}
	locationHandler, err := http.NewPickupLocationHandler(locationService, log.Named("Location handler"))
	if err != nil {
		log.Error("location handler creating error", zap.Error(err))
		return
	}
	userAdminHandler, err := http.NewUserAdminHandler(userService, log.Named("User admin handler"))
	if err != nil {
		log.Error("user admin handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.App, tokenService, userService, http.Handlers{
		User:      userHandler,
		Order:     orderHandler,
		Dashboard: dashboardHandler,
		Products:  productHandler,
		Locations: locationHandler,
		Users:     userAdminHandler,
	}, log.Named("Router"))
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
