package snapshot

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Loader returns all four tabs of a sheet as one consistent read.
// Repositories that cache whole snapshots implement it next to Repository.
type Loader interface {
	Load(ctx context.Context, sheetID string) (Snapshot, error)
}

// Fetch reads the four tabs of sheetID from repo concurrently. The first
// failing tab cancels the rest and its error is returned.
func Fetch(ctx context.Context, repo Repository, sheetID string) (Snapshot, error) {
	out := Snapshot{SheetID: sheetID}
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		items, err := repo.ListRounds(groupCtx, sheetID)
		if err != nil {
			return fmt.Errorf("load rounds: %w", err)
		}
		out.Rounds = items
		return nil
	})
	group.Go(func() error {
		items, err := repo.ListCompetitors(groupCtx, sheetID)
		if err != nil {
			return fmt.Errorf("load competitors: %w", err)
		}
		out.Competitors = items
		return nil
	})
	group.Go(func() error {
		items, err := repo.ListSubmissions(groupCtx, sheetID)
		if err != nil {
			return fmt.Errorf("load submissions: %w", err)
		}
		out.Submissions = items
		return nil
	})
	group.Go(func() error {
		items, err := repo.ListVotes(groupCtx, sheetID)
		if err != nil {
			return fmt.Errorf("load votes: %w", err)
		}
		out.Votes = items
		return nil
	})

	if err := group.Wait(); err != nil {
		return Snapshot{}, err
	}
	return out, nil
}
