package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/heartmarshall/gospelpath-backend/internal/adapter/provider/bolls"
	"github.com/heartmarshall/gospelpath-backend/internal/adapter/provider/claude"
	"github.com/heartmarshall/gospelpath-backend/internal/adapter/provider/groq"
	"github.com/heartmarshall/gospelpath-backend/internal/config"
	"github.com/heartmarshall/gospelpath-backend/internal/crossref"
	"github.com/heartmarshall/gospelpath-backend/internal/lexicon"
	"github.com/heartmarshall/gospelpath-backend/internal/metrics"
	"github.com/heartmarshall/gospelpath-backend/internal/scripture"
	"github.com/heartmarshall/gospelpath-backend/internal/service/assistant"
	crossrefsvc "github.com/heartmarshall/gospelpath-backend/internal/service/crossref"
	interlinearsvc "github.com/heartmarshall/gospelpath-backend/internal/service/interlinear"
	strongssvc "github.com/heartmarshall/gospelpath-backend/internal/service/strongs"
	versesvc "github.com/heartmarshall/gospelpath-backend/internal/service/verse"
	"github.com/heartmarshall/gospelpath-backend/internal/transport/middleware"
	"github.com/heartmarshall/gospelpath-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires the
// services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	reg := metrics.New()
	handler := NewHandler(cfg, logger, reg)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// NewHandler builds the full HTTP handler: adapters, services, router and
// middleware. Chat providers without an API key are left out.
func NewHandler(cfg *config.Config, logger *slog.Logger, reg *metrics.Registry) http.Handler {
	parser := scripture.DefaultParser()

	bollsProvider := bolls.NewProvider(logger, bolls.Options{
		BaseURL:   cfg.Bolls.BaseURL,
		Timeout:   cfg.Bolls.Timeout,
		Transport: reg.InstrumentTransport("bolls", http.DefaultTransport),
	})

	var chatProviders []assistant.ChatProvider
	if cfg.LLM.HasGroq() {
		chatProviders = append(chatProviders, groq.NewProvider(logger, groq.Options{
			APIKey:    cfg.LLM.GroqAPIKey,
			BaseURL:   cfg.LLM.GroqBaseURL,
			Model:     cfg.LLM.GroqModel,
			Timeout:   cfg.LLM.Timeout,
			Transport: reg.InstrumentTransport(groq.Name, http.DefaultTransport),
		}))
	}
	if cfg.LLM.HasClaude() {
		chatProviders = append(chatProviders, claude.NewProvider(logger, claude.Options{
			APIKey:    cfg.LLM.ClaudeAPIKey,
			BaseURL:   cfg.LLM.ClaudeBaseURL,
			Model:     cfg.LLM.ClaudeModel,
			Timeout:   cfg.LLM.Timeout,
			Transport: reg.InstrumentTransport(claude.Name, http.DefaultTransport),
		}))
	}

	crossRefStore := crossref.NewStore(logger, cfg.Data.CrossRefPopularPath, cfg.Data.CrossRefFullPath)

	enricher := lexicon.NewEnricher(logger, bollsProvider, lexicon.EnricherOptions{
		Workers:       cfg.Enrich.Workers,
		LookupTimeout: cfg.Enrich.LookupTimeout,
	})

	interlinearService := interlinearsvc.NewService(logger, parser, bollsProvider, enricher)
	crossRefService := crossrefsvc.NewService(logger, parser, crossRefStore)
	verseService := versesvc.NewService(logger, parser, bollsProvider)
	strongsService := strongssvc.NewService(logger, bollsProvider)
	assistantService := assistant.NewService(logger, chatProviders...)
	logger.Info("chat providers configured", slog.Any("providers", assistantService.Providers()))

	router := rest.NewRouter(rest.Handlers{
		Scripture: rest.NewScriptureHandler(interlinearService, crossRefService, verseService, strongsService, logger),
		Assistant: rest.NewAssistantHandler(assistantService, cfg.Server.MaxBodyBytes, logger),
		Health:    rest.NewHealthHandler(map[string]rest.Checker{"crossrefs": crossRefStore}, BuildVersion()),
		Metrics:   reg.Handler(),
	})

	return middleware.Stack(logger, cfg.CORS, reg)(router)
}
