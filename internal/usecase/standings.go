package usecase

import (
	"context"

	"github.com/riskibarqy/music-league/internal/domain/snapshot"
	"github.com/riskibarqy/music-league/internal/domain/standing"
	"github.com/riskibarqy/music-league/internal/platform/logging"
	"github.com/riskibarqy/music-league/internal/platform/metrics"
)

// Calculation scopes reported to metrics.
const (
	scopeLeaderboard = "leaderboard"
	scopeRound       = "round"
)

type rankedStandings struct {
	Rows        []standing.RankedCompetitor
	TotalPoints int
	Diagnostics standing.Diagnostics
}

func computeStandings(
	ctx context.Context,
	snap snapshot.Snapshot,
	targetRoundID string,
	scope string,
	recorder *metrics.Recorder,
	logger *logging.Logger,
) rankedStandings {
	totals, diag := standing.Inspect(snap.Competitors, snap.Submissions, snap.Votes, snap.Rounds, targetRoundID)
	recorder.ObserveCalculation(scope, metrics.VoteTally{
		Counted:            diag.CountedVotes,
		DanglingSubmission: diag.DanglingSubmissionVotes,
		DanglingCompetitor: diag.DanglingCompetitorVotes,
		ExcludedRound:      diag.ExcludedRoundVotes,
	})

	if dropped := diag.DanglingSubmissionVotes + diag.DanglingCompetitorVotes; dropped > 0 || diag.DuplicateSubmissionKeys > 0 {
		logger.WarnContext(ctx, "sheet data has unattributed votes",
			"sheet_id", snap.SheetID,
			"target_round_id", targetRoundID,
			"dangling_submission_votes", diag.DanglingSubmissionVotes,
			"dangling_competitor_votes", diag.DanglingCompetitorVotes,
			"duplicate_submission_keys", diag.DuplicateSubmissionKeys,
		)
	}

	return rankedStandings{
		Rows:        standing.Rank(totals),
		TotalPoints: standing.TotalPoints(totals),
		Diagnostics: diag,
	}
}
