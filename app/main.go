package main

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"inventory-system/internal/listeners"
	"inventory-system/internal/routes"
	"inventory-system/migrations"
	"inventory-system/pkg/config"
	"inventory-system/pkg/database/postgresql"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/eventbus"
	applogger "inventory-system/pkg/logger"
	appmw "inventory-system/pkg/middleware"
	"inventory-system/pkg/utils"
	"inventory-system/pkg/websocket"
)

func main() {
	cfg := config.New()
	logger := applogger.NewLogger()
	defer logger.Sync()

	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic recovered",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "internal server error", err, nil)
				_ = utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		ExposeHeaders: []string{"Content-Disposition"},
	}))
	e.Use(appmw.InjectLogger(logger))
	e.Use(appmw.CountRequests())

	e.Validator = utils.NewValidator(validator.New())

	if err := migrations.Up(cfg.Postgres.DSN); err != nil {
		logger.Fatal("migrations failed", zap.Error(err))
	}

	dbConn := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbConn.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logger.Fatal("redis connection failed", zap.Error(err), zap.String("address", cfg.Redis.Address))
	}

	hub := websocket.NewHub()
	go hub.Run()

	bus := eventbus.New(logger)
	lowStockListener := listeners.NewLowStockListener(redisClient, hub, cfg.Alerts.DedupTTL, logger)
	lowStockListener.Register(bus)

	if err := routes.InitRouter(e, dbConn, hub, bus, cfg, logger); err != nil {
		logger.Fatal("router initialisation failed", zap.Error(err))
	}
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	logger.Info("server starting", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
