package usecase

import (
	"context"
	"strings"

	"github.com/riskibarqy/music-league/internal/domain/round"
	"github.com/riskibarqy/music-league/internal/domain/snapshot"
	"github.com/riskibarqy/music-league/internal/domain/standing"
	"github.com/riskibarqy/music-league/internal/platform/logging"
	"github.com/riskibarqy/music-league/internal/platform/metrics"
)

// Leaderboard is the ranked cumulative standings of a sheet.
type Leaderboard struct {
	SheetID string
	// ThroughRound is the round the standings were cut at. Nil when the
	// whole competition was counted.
	ThroughRound *round.Round
	Rows         []standing.RankedCompetitor
	TotalPoints  int
	Diagnostics  standing.Diagnostics
}

type LeaderboardService struct {
	loader  *SnapshotLoader
	metrics *metrics.Recorder
	logger  *logging.Logger
}

func NewLeaderboardService(repo snapshot.Repository, recorder *metrics.Recorder, logger *logging.Logger) *LeaderboardService {
	logger = logging.OrDefault(logger)
	return &LeaderboardService{
		loader:  NewSnapshotLoader(repo, logger),
		metrics: recorder,
		logger:  logger.Named("leaderboard_service"),
	}
}

// Standings ranks competitors by points earned up to and including
// targetRoundID. An empty or unknown targetRoundID counts every round.
func (s *LeaderboardService) Standings(ctx context.Context, sheetID, targetRoundID string) (Leaderboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.Standings")
	defer span.End()

	snap, err := s.loader.Load(ctx, sheetID)
	if err != nil {
		return Leaderboard{}, err
	}

	targetRoundID = strings.TrimSpace(targetRoundID)
	result := computeStandings(ctx, snap, targetRoundID, scopeLeaderboard, s.metrics, s.logger)

	out := Leaderboard{
		SheetID:     snap.SheetID,
		Rows:        result.Rows,
		TotalPoints: result.TotalPoints,
		Diagnostics: result.Diagnostics,
	}
	if result.Diagnostics.UnknownTargetRound {
		s.logger.InfoContext(ctx, "unknown target round, counting all rounds",
			"sheet_id", snap.SheetID,
			"target_round_id", targetRoundID,
		)
	} else if item, ok := snap.RoundByID(targetRoundID); ok {
		out.ThroughRound = &item
	}
	return out, nil
}
