package main

import (
	"context"

	"github.com/ansoncht/Cat-Food-Helper/config"
	"github.com/ansoncht/Cat-Food-Helper/db"
	"github.com/ansoncht/Cat-Food-Helper/internal/auth/handler"
	"github.com/ansoncht/Cat-Food-Helper/internal/auth/middleware"
	repo "github.com/ansoncht/Cat-Food-Helper/internal/auth/repository/postgres"
	"github.com/ansoncht/Cat-Food-Helper/internal/auth/service"
	"github.com/ansoncht/Cat-Food-Helper/internal/logger"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log := logger.Must(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	pool, err := db.NewPostgresPool(context.Background(), cfg.DBURL)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	userRepo := repo.NewPostgresRepository(pool)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.JWTExpiryMs, log)
	userService := service.NewUserService(userRepo)
	userHandler := handler.NewUserHandler(userService, tokenService, log)

	app := fiber.New()
	handler.RegisterRoutes(app, userHandler, middleware.JWTAuth(tokenService, userService, log))

	log.Info("starting server", zap.String("port", cfg.Port), zap.String("env", cfg.Env))

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
