package cache

import (
	"context"

	"github.com/riskibarqy/music-league/internal/domain/competitor"
	"github.com/riskibarqy/music-league/internal/domain/round"
	"github.com/riskibarqy/music-league/internal/domain/snapshot"
	"github.com/riskibarqy/music-league/internal/domain/submission"
	"github.com/riskibarqy/music-league/internal/domain/vote"
	basecache "github.com/riskibarqy/music-league/internal/platform/cache"
)

// SnapshotRepository caches whole sheet snapshots for the store's TTL. All
// four tabs of a sheet share one entry, so they always expire together and
// every read is served from a single upstream version.
type SnapshotRepository struct {
	next  snapshot.Repository
	cache *basecache.Store[snapshot.Snapshot]
}

var (
	_ snapshot.Repository = (*SnapshotRepository)(nil)
	_ snapshot.Loader     = (*SnapshotRepository)(nil)
)

func NewSnapshotRepository(next snapshot.Repository, cache *basecache.Store[snapshot.Snapshot]) *SnapshotRepository {
	return &SnapshotRepository{next: next, cache: cache}
}

// Load returns a copy of the cached snapshot, fetching all tabs on a miss.
func (r *SnapshotRepository) Load(ctx context.Context, sheetID string) (snapshot.Snapshot, error) {
	snap, err := r.cache.GetOrLoad(ctx, snapshotKey(sheetID), func(ctx context.Context) (snapshot.Snapshot, error) {
		return snapshot.Fetch(ctx, r.next, sheetID)
	})
	if err != nil {
		return snapshot.Snapshot{}, err
	}
	return snap.Clone(), nil
}

func (r *SnapshotRepository) ListRounds(ctx context.Context, sheetID string) ([]round.Round, error) {
	snap, err := r.Load(ctx, sheetID)
	return snap.Rounds, err
}

func (r *SnapshotRepository) ListCompetitors(ctx context.Context, sheetID string) ([]competitor.Competitor, error) {
	snap, err := r.Load(ctx, sheetID)
	return snap.Competitors, err
}

func (r *SnapshotRepository) ListSubmissions(ctx context.Context, sheetID string) ([]submission.Submission, error) {
	snap, err := r.Load(ctx, sheetID)
	return snap.Submissions, err
}

func (r *SnapshotRepository) ListVotes(ctx context.Context, sheetID string) ([]vote.Vote, error) {
	snap, err := r.Load(ctx, sheetID)
	return snap.Votes, err
}

// Invalidate drops the cached snapshot of sheetID and any load in flight.
func (r *SnapshotRepository) Invalidate(ctx context.Context, sheetID string) {
	r.cache.DeletePrefix(ctx, sheetPrefix(sheetID))
}

func sheetPrefix(sheetID string) string {
	return "sheet:" + sheetID + ":"
}

func snapshotKey(sheetID string) string {
	return sheetPrefix(sheetID) + "snapshot"
}
