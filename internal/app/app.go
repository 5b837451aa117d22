package app

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/riskibarqy/music-league/external/spotify"
	"github.com/riskibarqy/music-league/internal/config"
	"github.com/riskibarqy/music-league/internal/domain/snapshot"
	"github.com/riskibarqy/music-league/internal/domain/track"
	"github.com/riskibarqy/music-league/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/music-league/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/music-league/internal/platform/cache"
	"github.com/riskibarqy/music-league/internal/platform/id"
	"github.com/riskibarqy/music-league/internal/platform/logging"
	"github.com/riskibarqy/music-league/internal/platform/metrics"
	"github.com/riskibarqy/music-league/internal/platform/resilience"
	"github.com/riskibarqy/music-league/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}
	logger = logging.OrDefault(logger)

	var recorder *metrics.Recorder
	if cfg.MetricsEnabled {
		recorder = metrics.NewRecorder(prometheus.NewRegistry())
	}

	source, err := newSheetSource(cfg, recorder, logger)
	if err != nil {
		return nil, fmt.Errorf("build sheet source: %w", err)
	}

	var refresher httpapi.SheetRefresher
	if cfg.SnapshotCacheEnabled {
		cached := cache.NewSnapshotRepository(source, basecache.NewStore[snapshot.Snapshot](cfg.SnapshotCacheTTL))
		source = cached
		refresher = cached
	}

	var tracks track.Provider
	if cfg.EnrichmentEnabled {
		tracks = spotify.NewClient(spotify.ClientConfig{
			BaseURL:        cfg.EnrichmentBaseURL,
			Timeout:        cfg.EnrichmentTimeout,
			RateLimit:      cfg.EnrichmentRateLimit,
			Burst:          cfg.EnrichmentBurst,
			Logger:         logger,
			Metrics:        recorder,
			CircuitBreaker: withStateMetrics(cfg.EnrichmentCircuit, recorder),
		})
	}

	competitorSvc := usecase.NewCompetitorService(source)
	roundSvc := usecase.NewRoundService(source, usecase.RoundServiceConfig{
		Tracks:            tracks,
		EnrichmentWorkers: cfg.EnrichmentWorkers,
		Metrics:           recorder,
		Logger:            logger,
	})
	leaderboardSvc := usecase.NewLeaderboardService(source, recorder, logger)

	handler := httpapi.NewHandler(competitorSvc, roundSvc, leaderboardSvc, refresher, cfg.SheetDefaultID, logger)
	routerCfg := httpapi.RouterConfig{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RequestIDs:         id.NewRandomGenerator(16),
	}
	if recorder != nil {
		routerCfg.Metrics = recorder.Handler()
	}

	logger.Info("http server configured",
		"sheet_source", cfg.SheetSource,
		"snapshot_cache", cfg.SnapshotCacheEnabled,
		"enrichment", cfg.EnrichmentEnabled,
		"metrics", cfg.MetricsEnabled,
	)

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(handler, logger, routerCfg),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}

func withStateMetrics(cb resilience.CircuitBreakerConfig, recorder *metrics.Recorder) resilience.CircuitBreakerConfig {
	if recorder != nil {
		cb.OnStateChange = recorder.CircuitStateChanged
	}
	return cb
}
