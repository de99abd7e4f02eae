package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/charlietlyons/VitaTrack-API/config"
	"github.com/charlietlyons/VitaTrack-API/controllers"
	"github.com/charlietlyons/VitaTrack-API/routes"
	"github.com/charlietlyons/VitaTrack-API/services"
	"github.com/charlietlyons/VitaTrack-API/store"
	"github.com/charlietlyons/VitaTrack-API/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := store.Connect(ctx, cfg.MongoURI)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	mongoStore := store.NewMongoStore(client, cfg.DBName)
	if err := mongoStore.EnsureIndexes(ctx); err != nil {
		slog.Error("failed to ensure indexes", "error", err)
		os.Exit(1)
	}

	tokens := utils.NewTokenIssuer(cfg.JWTSecret)

	// S3 and SES are optional: without a bucket or sender configured the
	// services run without images and welcome mail.
	var uploader services.FoodImageUploader
	if cfg.S3Bucket != "" {
		up, err := utils.NewImageUploader(ctx, cfg.S3Region, cfg.S3Bucket)
		if err != nil {
			slog.Error("failed to init S3 uploader", "error", err)
			os.Exit(1)
		}
		uploader = up
	}

	var mailer services.WelcomeMailer
	if cfg.SESSender != "" {
		m, err := utils.NewMailer(ctx, cfg.S3Region, cfg.SESSender)
		if err != nil {
			slog.Error("failed to init mailer", "error", err)
			os.Exit(1)
		}
		mailer = m
	}

	userService := services.NewUserService(mongoStore, tokens, mailer, cfg.BcryptCost)
	foodService := services.NewFoodService(mongoStore, uploader)
	intakeService := services.NewIntakeService(mongoStore)
	dailyLogService := services.NewDailyLogService(mongoStore)

	userController := controllers.NewUserController(userService, dailyLogService)
	foodController := controllers.NewFoodController(foodService)
	intakeController := controllers.NewIntakeController(intakeService)

	r := routes.SetupRouter(userController, foodController, intakeController, tokens)

	slog.Info("running", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
