package app

import (
	"fmt"

	"github.com/riskibarqy/music-league/external/googlesheets"
	"github.com/riskibarqy/music-league/internal/config"
	"github.com/riskibarqy/music-league/internal/domain/snapshot"
	"github.com/riskibarqy/music-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/music-league/internal/platform/logging"
	"github.com/riskibarqy/music-league/internal/platform/metrics"
)

func newSheetSource(cfg config.Config, recorder *metrics.Recorder, logger *logging.Logger) (snapshot.Repository, error) {
	switch cfg.SheetSource {
	case config.SheetSourceGoogle:
		return googlesheets.NewClient(googlesheets.ClientConfig{
			BaseURL:        cfg.SheetBaseURL,
			Timeout:        cfg.SheetTimeout,
			MaxRetries:     cfg.SheetMaxRetries,
			Logger:         logger,
			Metrics:        recorder,
			CircuitBreaker: withStateMetrics(cfg.SheetCircuit, recorder),
		}), nil
	case config.SheetSourceLocal:
		return googlesheets.NewLocalSource(cfg.SheetLocalDir, recorder), nil
	case config.SheetSourceXLSX:
		return googlesheets.NewWorkbookSource(cfg.SheetXLSXPath, recorder), nil
	case config.SheetSourceMemory:
		seed := memory.SeedSnapshot()
		repo := memory.NewSheetRepository(seed)
		if cfg.SheetDefaultID != "" && cfg.SheetDefaultID != seed.SheetID {
			seed.SheetID = cfg.SheetDefaultID
			repo.Put(seed)
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("unsupported sheet source %q", cfg.SheetSource)
	}
}
