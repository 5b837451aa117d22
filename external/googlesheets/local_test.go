package googlesheets

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/riskibarqy/music-league/internal/usecase"
)

func TestLocalSource_ReadsFixtures(t *testing.T) {
	t.Parallel()

	source := NewLocalSource("testdata", nil)
	rounds, err := source.ListRounds(context.Background(), "ignored")
	if err != nil {
		t.Fatalf("list rounds: %v", err)
	}
	if len(rounds) != 4 || rounds[2].Name != "Empty Round" {
		t.Fatalf("unexpected rounds: %+v", rounds)
	}

	votes, err := source.ListVotes(context.Background(), "ignored")
	if err != nil {
		t.Fatalf("list votes: %v", err)
	}
	total := 0
	for _, item := range votes {
		total += item.PointsAssigned
	}
	if total != 12 {
		t.Fatalf("expected 12 points in fixture, got %d", total)
	}
}

func TestLocalSource_EmptyAndMissingFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "votes.csv"), nil, 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	source := NewLocalSource(dir, nil)

	votes, err := source.ListVotes(context.Background(), "")
	if err != nil || len(votes) != 0 {
		t.Fatalf("expected empty votes, got %v err=%v", votes, err)
	}

	_, err = source.ListRounds(context.Background(), "")
	if !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected not found for missing file, got %v", err)
	}
}
