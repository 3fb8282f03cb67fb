package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shouni/go-http-kit/pkg/httpkit"

	"github.com/shouni/gemini-poem-kit/internal/config"
	"github.com/shouni/gemini-poem-kit/internal/server"
	"github.com/shouni/gemini-poem-kit/pkg/adapters"
	"github.com/shouni/gemini-poem-kit/pkg/generator"
	"github.com/shouni/gemini-poem-kit/pkg/imgutil"
)

func main() {
	cfg, err := config.Load("poem.yaml")
	if err != nil {
		// 設定の読み込み前なので環境変数だけで起動用のロガーを作る
		bootLogger := server.NewLogger(os.Getenv("APP_ENV"))
		bootLogger.Fatal().Err(err).Msg("failed to load config")
	}
	logger := server.NewLogger(cfg.AppEnv)

	if !cfg.IsDevelopment() {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	}

	service := adapters.NewGeminiService(
		adapters.WithHTTPClient(&http.Client{Timeout: cfg.GeminiTimeout}),
		adapters.WithBaseURL(cfg.GeminiBaseURL),
	)
	poems, err := generator.NewGeminiPoemGenerator(service, generator.Config{
		APIKey: cfg.GeminiAPIKey,
		Model:  cfg.GeminiModel,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure poem generator")
	}
	if cfg.GeminiAPIKey == "" {
		logger.Warn().Str("model", poems.Model()).Msg("gemini api key missing, generation requests will fail")
	}

	fetcher := imgutil.NewFetcher(httpkit.New(cfg.FetchTimeout))

	handler, err := server.NewHandler(poems, fetcher, logger, server.Options{
		MaxUploadBytes: cfg.MaxUploadMB << 20,
		SampleImages:   cfg.SampleImages,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure handler")
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           server.NewRouter(handler, logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      cfg.GeminiTimeout + cfg.FetchTimeout + 15*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", srv.Addr).Str("model", poems.Model()).Msg("poem server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
