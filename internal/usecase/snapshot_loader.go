package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/music-league/internal/domain/snapshot"
	"github.com/riskibarqy/music-league/internal/platform/logging"
)

// SnapshotLoader reads all four tabs of a sheet concurrently, or asks the
// repository for a whole snapshot when it can serve one.
type SnapshotLoader struct {
	repo   snapshot.Repository
	logger *logging.Logger
}

func NewSnapshotLoader(repo snapshot.Repository, logger *logging.Logger) *SnapshotLoader {
	return &SnapshotLoader{
		repo:   repo,
		logger: logging.OrDefault(logger).Named("snapshot_loader"),
	}
}

// Load returns a consistent snapshot or the first error any tab produced.
// A failing tab cancels the remaining fetches.
func (l *SnapshotLoader) Load(ctx context.Context, sheetID string) (snapshot.Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SnapshotLoader.Load")
	defer span.End()

	sheetID, err := normalizeSheetID(sheetID)
	if err != nil {
		return snapshot.Snapshot{}, err
	}

	var out snapshot.Snapshot
	if cached, ok := l.repo.(snapshot.Loader); ok {
		out, err = cached.Load(ctx, sheetID)
	} else {
		out, err = snapshot.Fetch(ctx, l.repo, sheetID)
	}
	if err != nil {
		l.logger.WarnContext(ctx, "load sheet snapshot failed", "sheet_id", sheetID, "error", err)
		return snapshot.Snapshot{}, err
	}

	l.logger.DebugContext(ctx, "sheet snapshot loaded",
		"sheet_id", sheetID,
		"rounds", len(out.Rounds),
		"competitors", len(out.Competitors),
		"submissions", len(out.Submissions),
		"votes", len(out.Votes),
	)
	return out, nil
}

func normalizeSheetID(sheetID string) (string, error) {
	sheetID = strings.TrimSpace(sheetID)
	if sheetID == "" {
		return "", fmt.Errorf("%w: sheet id is required", ErrInvalidInput)
	}
	return sheetID, nil
}
