package googlesheets

import (
	"context"
	"time"

	"github.com/riskibarqy/music-league/internal/domain/competitor"
	"github.com/riskibarqy/music-league/internal/domain/round"
	"github.com/riskibarqy/music-league/internal/domain/snapshot"
	"github.com/riskibarqy/music-league/internal/domain/submission"
	"github.com/riskibarqy/music-league/internal/domain/vote"
	"github.com/riskibarqy/music-league/internal/platform/metrics"
)

type tabFetcher interface {
	fetchTab(ctx context.Context, sheetID, tab string) (table, error)
}

// tabRepository adapts a tab fetcher to snapshot.Repository. Every source in
// this package embeds one.
type tabRepository struct {
	source  string
	fetcher tabFetcher
	metrics *metrics.Recorder
}

var (
	_ snapshot.Repository = (*Client)(nil)
	_ snapshot.Repository = (*LocalSource)(nil)
	_ snapshot.Repository = (*WorkbookSource)(nil)
)

func (r tabRepository) load(ctx context.Context, sheetID, tab string) (table, error) {
	startedAt := time.Now()
	t, err := r.fetcher.fetchTab(ctx, sheetID, tab)
	r.metrics.ObserveSheetFetch(r.source, tab, time.Since(startedAt), err)
	return t, err
}

func (r tabRepository) ListRounds(ctx context.Context, sheetID string) ([]round.Round, error) {
	t, err := r.load(ctx, sheetID, TabRounds)
	if err != nil {
		return nil, err
	}
	return decodeRounds(t)
}

func (r tabRepository) ListCompetitors(ctx context.Context, sheetID string) ([]competitor.Competitor, error) {
	t, err := r.load(ctx, sheetID, TabCompetitors)
	if err != nil {
		return nil, err
	}
	return decodeCompetitors(t)
}

func (r tabRepository) ListSubmissions(ctx context.Context, sheetID string) ([]submission.Submission, error) {
	t, err := r.load(ctx, sheetID, TabSubmissions)
	if err != nil {
		return nil, err
	}
	return decodeSubmissions(t)
}

func (r tabRepository) ListVotes(ctx context.Context, sheetID string) ([]vote.Vote, error) {
	t, err := r.load(ctx, sheetID, TabVotes)
	if err != nil {
		return nil, err
	}
	return decodeVotes(t)
}
