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

	"golang.org/x/sync/errgroup"

	"github.com/kaupunki/events-backend/internal/app"
	"github.com/kaupunki/events-backend/internal/observability"
	"github.com/kaupunki/events-backend/internal/utils"
)

func main() {
	application, err := app.New()
	if err != nil {
		fmt.Printf("init app: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownOtel := observability.InitOTel(ctx, application.Log, observability.OtelConfig{
		ServiceName: "events-backend",
		Environment: utils.GetEnv("ENVIRONMENT", "development", nil),
	})
	if shutdownOtel != nil {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdownOtel(shutdownCtx)
		}()
	}

	srv := &http.Server{
		Addr:    application.Cfg.HTTPAddr,
		Handler: application.Router,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		application.Log.Info("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		application.Log.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}
