package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/music-league/internal/domain/standing"
	"github.com/riskibarqy/music-league/internal/usecase"
)

func TestSheetRepository_SeedTotals(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewSheetRepository(SeedSnapshot())

	competitors, err := repo.ListCompetitors(ctx, SampleSheetID)
	if err != nil {
		t.Fatalf("list competitors: %v", err)
	}
	submissions, _ := repo.ListSubmissions(ctx, SampleSheetID)
	votes, _ := repo.ListVotes(ctx, SampleSheetID)
	rounds, _ := repo.ListRounds(ctx, SampleSheetID)

	got := standing.CalculateCumulativePoints(competitors, submissions, votes, rounds, "")
	want := map[string]int{"competitor_id_1": 4, "competitor_id_2": 5, "competitor_id_3": 3, "competitor_id_4": 0}
	for _, item := range got {
		if item.TotalPoints != want[item.ID] {
			t.Fatalf("unexpected total for %s: got=%d want=%d", item.ID, item.TotalPoints, want[item.ID])
		}
	}
	if standing.TotalPoints(got) != 12 {
		t.Fatalf("unexpected grand total: %d", standing.TotalPoints(got))
	}
}

func TestSheetRepository_UnknownSheet(t *testing.T) {
	t.Parallel()

	repo := NewSheetRepository(SeedSnapshot())
	if _, err := repo.ListVotes(context.Background(), "missing"); !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSheetRepository_PutReplacesAndCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewSheetRepository(SeedSnapshot())

	rounds, _ := repo.ListRounds(ctx, SampleSheetID)
	rounds[0].Name = "mutated"
	again, _ := repo.ListRounds(ctx, SampleSheetID)
	if again[0].Name != "Can Openers" {
		t.Fatalf("stored rounds were mutated through a returned slice")
	}

	next := SeedSnapshot()
	next.Rounds = next.Rounds[:1]
	repo.Put(next)
	replaced, _ := repo.ListRounds(ctx, SampleSheetID)
	if len(replaced) != 1 {
		t.Fatalf("expected replaced snapshot, got %d rounds", len(replaced))
	}
}
