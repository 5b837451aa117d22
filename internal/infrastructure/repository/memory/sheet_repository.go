package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/music-league/internal/domain/competitor"
	"github.com/riskibarqy/music-league/internal/domain/round"
	"github.com/riskibarqy/music-league/internal/domain/snapshot"
	"github.com/riskibarqy/music-league/internal/domain/submission"
	"github.com/riskibarqy/music-league/internal/domain/vote"
	"github.com/riskibarqy/music-league/internal/usecase"
)

// SheetRepository serves snapshots held in memory, keyed by sheet id.
type SheetRepository struct {
	mu     sync.RWMutex
	sheets map[string]snapshot.Snapshot
}

var _ snapshot.Repository = (*SheetRepository)(nil)

func NewSheetRepository(sheets ...snapshot.Snapshot) *SheetRepository {
	items := make(map[string]snapshot.Snapshot, len(sheets))
	for _, s := range sheets {
		items[s.SheetID] = s
	}
	return &SheetRepository{sheets: items}
}

// Put replaces the snapshot stored under s.SheetID.
func (r *SheetRepository) Put(s snapshot.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sheets[s.SheetID] = s
}

func (r *SheetRepository) get(sheetID string) (snapshot.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sheets[sheetID]
	if !ok {
		return snapshot.Snapshot{}, fmt.Errorf("%w: sheet=%s", usecase.ErrNotFound, sheetID)
	}
	return s, nil
}

func (r *SheetRepository) ListRounds(_ context.Context, sheetID string) ([]round.Round, error) {
	s, err := r.get(sheetID)
	if err != nil {
		return nil, err
	}
	return append([]round.Round(nil), s.Rounds...), nil
}

func (r *SheetRepository) ListCompetitors(_ context.Context, sheetID string) ([]competitor.Competitor, error) {
	s, err := r.get(sheetID)
	if err != nil {
		return nil, err
	}
	return append([]competitor.Competitor(nil), s.Competitors...), nil
}

func (r *SheetRepository) ListSubmissions(_ context.Context, sheetID string) ([]submission.Submission, error) {
	s, err := r.get(sheetID)
	if err != nil {
		return nil, err
	}
	return append([]submission.Submission(nil), s.Submissions...), nil
}

func (r *SheetRepository) ListVotes(_ context.Context, sheetID string) ([]vote.Vote, error) {
	s, err := r.get(sheetID)
	if err != nil {
		return nil, err
	}
	return append([]vote.Vote(nil), s.Votes...), nil
}
