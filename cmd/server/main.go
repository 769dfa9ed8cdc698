// Command server serves the chat API and the static UI.
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

	"github.com/chainguard-dev/clog"
	"github.com/sethvargo/go-envconfig"

	"github.com/quayhold/repochat/internal/server"
)

type config struct {
	Port      int    `env:"PORT,default=8080"`
	StaticDir string `env:"STATIC_DIR,default=./static"`
	Model     string `env:"MODEL"`
	MaxTokens int64  `env:"MAX_TOKENS,default=1024"`
	MaxSteps  int    `env:"MAX_STEPS,default=10"`
	Retries   int    `env:"RETRIES,default=2"`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	log := clog.FromContext(ctx)

	var cfg config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		log.With("error", err.Error()).Error("Processing config")
		os.Exit(1)
	}

	srv := server.New(server.Config{
		Model:     cfg.Model,
		MaxTokens: cfg.MaxTokens,
		MaxSteps:  cfg.MaxSteps,
		Retries:   cfg.Retries,
		StaticDir: cfg.StaticDir,
	}, nil)

	hs := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.With("port", cfg.Port).Info("Starting chat server")
		errCh <- hs.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := hs.Shutdown(shutdownCtx); err != nil {
			log.With("error", err.Error()).Warn("Shutdown did not complete cleanly")
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.With("error", err.Error()).Error("Server failed")
			os.Exit(1)
		}
	}
}
