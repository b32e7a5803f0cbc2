package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/NowarkCodes/EduAble-sub000/internal/config"
	"github.com/NowarkCodes/EduAble-sub000/internal/container"
)

// @title       EduAble assessment engine API
// @version     1.0
// @description Accessibility-aware quizzes, progress analytics and certificates.
// @BasePath    /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c := container.New(ctx)
	log := config.WithContext(ctx)

	srv := &http.Server{
		Addr:         ":" + c.Settings.Port,
		Handler:      c.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  90 * time.Second,
	}

	go func() {
		log.Infof("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server error")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
	if sqlDB, err := config.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info("server stopped")
}
