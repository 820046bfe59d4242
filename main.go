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

	"go.uber.org/zap"

	"github.com/linesmerrill/devcamper-api/api/handlers"
	"github.com/linesmerrill/devcamper-api/config"
)

func main() {
	a := handlers.App{}
	a.Config = config.New()
	defer func() { _ = zap.L().Sync() }()

	if err := a.Config.Validate(); err != nil {
		zap.S().Fatalw("invalid configuration", "error", err)
	}

	if err := a.Initialize(); err != nil { //initialize database and router
		zap.S().Fatalw("failed to initialize", "error", err)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%v", a.Config.Port),
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zap.S().Infow("devcamper-api is up and running",
			"port", a.Config.Port,
			"url", a.Config.BaseURL,
			"env", a.Config.Env,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.S().Fatalw("server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	zap.S().Info("shutting down")
	if err := srv.Shutdown(ctx); err != nil {
		zap.S().Errorw("failed to shut down server", "error", err)
	}
	if err := a.Close(ctx); err != nil {
		zap.S().Errorw("failed to close app", "error", err)
	}
}
