package snapshot

import (
	"context"

	"github.com/riskibarqy/music-league/internal/domain/competitor"
	"github.com/riskibarqy/music-league/internal/domain/round"
	"github.com/riskibarqy/music-league/internal/domain/submission"
	"github.com/riskibarqy/music-league/internal/domain/vote"
)

// Repository reads the four league tabs of a sheet.
type Repository interface {
	ListRounds(ctx context.Context, sheetID string) ([]round.Round, error)
	ListCompetitors(ctx context.Context, sheetID string) ([]competitor.Competitor, error)
	ListSubmissions(ctx context.Context, sheetID string) ([]submission.Submission, error)
	ListVotes(ctx context.Context, sheetID string) ([]vote.Vote, error)
}
