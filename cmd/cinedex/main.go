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

	"github.com/kailas-cloud/cinedex/internal/config"
	dbRedis "github.com/kailas-cloud/cinedex/internal/db/redis"
	"github.com/kailas-cloud/cinedex/internal/domain/catalog"
	logpkg "github.com/kailas-cloud/cinedex/internal/logger"
	"github.com/kailas-cloud/cinedex/internal/metrics"
	catalogrepo "github.com/kailas-cloud/cinedex/internal/repository/catalog"
	"github.com/kailas-cloud/cinedex/internal/repository/syncache"
	"github.com/kailas-cloud/cinedex/internal/repository/thesaurus"
	chiTransport "github.com/kailas-cloud/cinedex/internal/transport/chi"
	openaiSyn "github.com/kailas-cloud/cinedex/internal/transport/openai"
	healthuc "github.com/kailas-cloud/cinedex/internal/usecase/health"
	movieuc "github.com/kailas-cloud/cinedex/internal/usecase/movie"
	searchuc "github.com/kailas-cloud/cinedex/internal/usecase/search"
	synonymuc "github.com/kailas-cloud/cinedex/internal/usecase/synonym"
	"github.com/kailas-cloud/cinedex/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting cinedex API server",
		zap.String("title", version.Title),
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("catalog_path", cfg.Catalog.Path),
	)

	ctx := context.Background()

	// Register metrics explicitly (no init())
	metrics.RegisterCatalogMetrics()
	metrics.RegisterSynonymMetrics()

	// Catalog is loaded once; a failure aborts startup.
	cat := loadCatalog(ctx, cfg.Catalog, logger)

	// Synonym sources, queried in order
	th, err := loadThesaurus(cfg.Synonyms.ThesaurusPath)
	if err != nil {
		logger.Fatal("Failed to load thesaurus", zap.Error(err))
	}
	sources := []synonymuc.Source{th}

	// Pass nil interfaces (not typed nil pointers) to health when a component is disabled.
	var modelChecker healthuc.ModelChecker
	if cfg.Synonyms.Model.Enabled {
		model := openaiSyn.NewSynonymSource(&openaiSyn.Config{
			APIKey:  cfg.Synonyms.Model.APIKey,
			BaseURL: cfg.Synonyms.Model.BaseURL,
			Model:   cfg.Synonyms.Model.Model,
			Timeout: time.Duration(cfg.Synonyms.Model.TimeoutSec) * time.Second,
			Logger:  logger,
		})
		sources = append(sources, model)
		modelChecker = model
	}

	expander := synonymuc.New(logger, sources...)
	logger.Info("Synonym expander created",
		zap.Strings("sources", expander.Sources()),
		zap.Int("thesaurus_synsets", th.Len()),
	)

	var searchExpander searchuc.Expander = expander
	var cachePinger healthuc.CachePinger
	if cfg.Synonyms.Cache.Enabled {
		store, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Synonyms.Cache.Addrs,
			Password: cfg.Synonyms.Cache.Password,
		})
		if err != nil {
			logger.Fatal("Failed to create synonym cache store", zap.Error(err))
		}
		defer store.Close()

		readiness := time.Duration(cfg.Synonyms.Cache.ReadinessTimeout) * time.Second
		if err := store.WaitForReady(ctx, readiness); err != nil {
			logger.Fatal("Synonym cache not ready", zap.Error(err))
		}
		logger.Info("Connected to synonym cache", zap.Strings("addrs", cfg.Synonyms.Cache.Addrs))

		ttl := time.Duration(cfg.Synonyms.Cache.TTLSec) * time.Second
		searchExpander = syncache.New(expander, store, ttl, metrics.SynonymCacheTotal, logger)
		cachePinger = store
	}

	// Use case services
	searchSvc := searchuc.New(searchExpander)
	movieSvc := movieuc.New(cat, searchSvc)
	healthSvc := healthuc.New(cat, cachePinger, modelChecker)

	server := chiTransport.NewServer(movieSvc, healthSvc, logger)
	router := chiTransport.NewRouter(server, cfg.HTTP, logger)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

func loadCatalog(ctx context.Context, cfg config.CatalogConfig, logger *zap.Logger) *catalog.Catalog {
	start := time.Now()

	movies, err := catalogrepo.New(cfg.Path).Load(ctx)
	if err != nil {
		logger.Fatal("Failed to load catalog", zap.String("path", cfg.Path), zap.Error(err))
	}
	cat := catalog.New(movies)

	elapsed := time.Since(start)
	metrics.CatalogMovies.Set(float64(cat.Len()))
	metrics.CatalogLoadSeconds.Set(elapsed.Seconds())
	logger.Info("Catalog loaded",
		zap.Int("movies", cat.Len()),
		zap.Duration("duration", elapsed),
	)
	return cat
}

func loadThesaurus(path string) (*thesaurus.Thesaurus, error) {
	if path == "" {
		return thesaurus.Default()
	}
	return thesaurus.Load(path)
}
