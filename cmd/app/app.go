package app

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"hotelbooking/internal/config"
	"hotelbooking/internal/database"
	handlers "hotelbooking/internal/handler"
	"hotelbooking/internal/metrics"
	"hotelbooking/internal/middleware"
	"hotelbooking/internal/repository"
	"hotelbooking/internal/service"
	"hotelbooking/internal/storage"
)

func App(cfg *config.Config, log *logrus.Logger) (*database.DB, *repository.Repository, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Не удалось подключиться к БД")
	}

	// connection MinIO; uploads are refused while it is unavailable
	var images storage.Storage
	minioClient, err := storage.NewMinIOClient(cfg.MinIO)
	if err != nil {
		log.WithError(err).Warn("MinIO не инициализирован, загрузка изображений отключена")
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err = minioClient.EnsureBucket(ctx)
		cancel()
		if err != nil {
			log.WithError(err).Warn("бакет MinIO недоступен, загрузка изображений отключена")
		} else {
			images = minioClient
		}
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, images, metrics.BookingRecorder{}, log)

	return db, repo, services
}

// Handler builds the HTTP handler with every middleware applied.
func Handler(cfg *config.Config, log *logrus.Logger, db database.MethodsDB, services *service.Service) http.Handler {
	h := handlers.NewHandlers(services, db, cfg, log)
	router := handlers.NewRouter(h)

	chain := []middleware.Middleware{
		middleware.RecoverMiddleware(log),
		middleware.LoggingMiddleware(log),
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
	}
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, log)
		chain = append(chain, limiter.Handler)
	}

	return middleware.Chain(router, chain...)
}
