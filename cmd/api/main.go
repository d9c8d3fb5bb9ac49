package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotelbooking/cmd/app"
	"hotelbooking/internal/config"
	"hotelbooking/internal/logger"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()
	log := logger.New(cfg.LogLevel)

	if cfg.Auth.JWTSecretKey == "" {
		log.Warn("JWT_SECRET_KEY не установлен, токены будут недействительны после перезапуска")
	}

	db, _, services := app.App(cfg, log)
	defer db.CloseDB()

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           app.Handler(cfg, log, db, services),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.WithField("addr", addr).WithField("database", cfg.DB.DbNAME).Info("Сервер запущен")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Ошибка запуска сервера")
		}
	}()

	<-ctx.Done()
	log.Info("Получен сигнал остановки")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Ошибка остановки сервера")
	}
}
