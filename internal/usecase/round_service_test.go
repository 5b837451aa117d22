package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/music-league/internal/domain/round"
	"github.com/riskibarqy/music-league/internal/domain/track"
	snapshotmock "github.com/riskibarqy/music-league/internal/mocks/domain/snapshot"
	trackmock "github.com/riskibarqy/music-league/internal/mocks/domain/track"
	"github.com/riskibarqy/music-league/internal/platform/logging"
)

func TestRoundService_List_SortsChronologically(t *testing.T) {
	t.Parallel()

	repo := snapshotmock.NewRepository(t)
	repo.On("ListRounds", mock.Anything, testSheetID).Return(sampleSnapshot().Rounds, nil).Once()

	got, err := NewRoundService(repo, RoundServiceConfig{Logger: logging.NewNop()}).List(context.Background(), testSheetID)
	if err != nil {
		t.Fatalf("list rounds: %v", err)
	}
	want := []string{"round_id_1", "round_id_2", "round_id_3"}
	if len(got) != len(want) {
		t.Fatalf("unexpected round count: got=%d want=%d", len(got), len(want))
	}
	for idx := range want {
		if got[idx].ID != want[idx] {
			t.Fatalf("unexpected order at %d: got=%s want=%s", idx, got[idx].ID, want[idx])
		}
	}
}

func TestRoundService_Detail(t *testing.T) {
	t.Parallel()

	repo := snapshotmock.NewRepository(t)
	expectSnapshot(repo, sampleSnapshot())

	tempo := 121.5
	provider := trackmock.NewProvider(t)
	provider.
		On("FetchTrack", mock.Anything, "Chon", "Story", "Grow").
		Return(track.Features{ImageURL: "https://img/story.jpg", Tempo: &tempo, Genres: []string{"math rock"}}, true).
		Once()
	provider.
		On("FetchTrack", mock.Anything, "Symphony X", "Iconoclast", "Iconoclast").
		Return(track.Features{}, false).
		Once()

	service := NewRoundService(repo, RoundServiceConfig{
		Tracks:            provider,
		EnrichmentWorkers: 2,
		Logger:            logging.NewNop(),
	})

	got, err := service.Detail(context.Background(), testSheetID, "round_id_1")
	if err != nil {
		t.Fatalf("round detail: %v", err)
	}

	if got.Round.Name != "Can Openers" || got.Position != 1 {
		t.Fatalf("unexpected round: %+v position=%d", got.Round, got.Position)
	}
	if !got.EnrichmentWarning {
		t.Fatalf("expected enrichment warning when a lookup misses")
	}

	if len(got.Submissions) != 2 {
		t.Fatalf("unexpected submission count: %d", len(got.Submissions))
	}
	story := got.Submissions[0]
	if !story.Enriched || story.Features.PrimaryGenre() != "math rock" || story.Features.ImageURL != "https://img/story.jpg" {
		t.Fatalf("unexpected enrichment for story: %+v", story)
	}
	if story.Points != 5 || story.SubmitterName != "Hababa" || story.TrackURL != "https://open.spotify.com/track/t1r1" {
		t.Fatalf("unexpected story submission: %+v", story)
	}
	if got.Submissions[1].Enriched {
		t.Fatalf("expected second submission to stay unenriched")
	}

	if len(got.Votes) != 3 {
		t.Fatalf("unexpected vote count: %d", len(got.Votes))
	}
	if got.Votes[0].SentimentColor != "hsl(96, 100%, 85%)" || got.Votes[0].VoterName != "NerdyFoxTV" {
		t.Fatalf("unexpected first vote: %+v", got.Votes[0])
	}
	if got.Votes[1].SentimentColor != "hsl(0, 0%, 95%)" {
		t.Fatalf("expected neutral tint for empty comment, got %s", got.Votes[1].SentimentColor)
	}

	if len(got.Distribution) != 2 || got.Distribution[0].Label != "Story - Chon" || got.Distribution[0].Points != 5 {
		t.Fatalf("unexpected distribution: %+v", got.Distribution)
	}

	wantRanks := map[string]int{"competitor_id_2": 1, "competitor_id_1": 2, "competitor_id_3": 3, "competitor_id_4": 3}
	wantPoints := map[string]int{"competitor_id_2": 5, "competitor_id_1": 1, "competitor_id_3": 0, "competitor_id_4": 0}
	for _, row := range got.Standings {
		if row.Rank != wantRanks[row.ID] || row.TotalPoints != wantPoints[row.ID] {
			t.Fatalf("unexpected standing row: %+v", row)
		}
	}
	if got.Diagnostics.ExcludedRoundVotes != 3 {
		t.Fatalf("expected round 2 votes excluded, got %+v", got.Diagnostics)
	}
}

func TestRoundService_Detail_DeduplicatesLookups(t *testing.T) {
	t.Parallel()

	snap := sampleSnapshot()
	dup := snap.Submissions[0]
	dup.SubmitterID = "competitor_id_4"
	snap.Submissions = append(snap.Submissions, dup)

	repo := snapshotmock.NewRepository(t)
	expectSnapshot(repo, snap)

	var calls atomic.Int32
	provider := trackmock.NewProvider(t)
	provider.
		On("FetchTrack", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { calls.Add(1) }).
		Return(track.Features{}, true)

	_, err := NewRoundService(repo, RoundServiceConfig{Tracks: provider, Logger: logging.NewNop()}).
		Detail(context.Background(), testSheetID, "round_id_1")
	if err != nil {
		t.Fatalf("round detail: %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected one lookup per distinct track, got %d", calls.Load())
	}
}

func TestRoundService_Detail_WithoutProvider(t *testing.T) {
	t.Parallel()

	repo := snapshotmock.NewRepository(t)
	expectSnapshot(repo, sampleSnapshot())

	got, err := NewRoundService(repo, RoundServiceConfig{Logger: logging.NewNop()}).
		Detail(context.Background(), testSheetID, "round_id_2")
	if err != nil {
		t.Fatalf("round detail: %v", err)
	}
	if got.EnrichmentWarning {
		t.Fatalf("disabled enrichment must not raise a warning")
	}
	for _, item := range got.Submissions {
		if item.Enriched {
			t.Fatalf("unexpected enrichment: %+v", item)
		}
	}
	if got.Position != 2 {
		t.Fatalf("unexpected position: %d", got.Position)
	}
}

func TestRoundService_Detail_EmptyRound(t *testing.T) {
	t.Parallel()

	repo := snapshotmock.NewRepository(t)
	expectSnapshot(repo, sampleSnapshot())
	provider := trackmock.NewProvider(t)

	got, err := NewRoundService(repo, RoundServiceConfig{Tracks: provider, Logger: logging.NewNop()}).
		Detail(context.Background(), testSheetID, "round_id_3")
	if err != nil {
		t.Fatalf("round detail: %v", err)
	}
	if len(got.Submissions) != 0 || len(got.Votes) != 0 || len(got.Distribution) != 0 {
		t.Fatalf("expected empty round, got %+v", got)
	}
	if len(got.Standings) != 4 || got.Standings[0].TotalPoints != 5 {
		t.Fatalf("expected cumulative standings through round 3, got %+v", got.Standings)
	}
}

func TestRoundService_Detail_UnknownRound(t *testing.T) {
	t.Parallel()

	repo := snapshotmock.NewRepository(t)
	expectSnapshot(repo, sampleSnapshot())

	_, err := NewRoundService(repo, RoundServiceConfig{Logger: logging.NewNop()}).
		Detail(context.Background(), testSheetID, "round_id_99")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRoundService_Detail_RequiresRoundID(t *testing.T) {
	t.Parallel()

	repo := snapshotmock.NewRepository(t)
	_, err := NewRoundService(repo, RoundServiceConfig{Logger: logging.NewNop()}).
		Detail(context.Background(), testSheetID, " ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRoundService_Distribution(t *testing.T) {
	t.Parallel()

	repo := snapshotmock.NewRepository(t)
	expectSnapshot(repo, sampleSnapshot())

	selected, got, err := NewRoundService(repo, RoundServiceConfig{Logger: logging.NewNop()}).
		Distribution(context.Background(), testSheetID, "round_id_2")
	if err != nil {
		t.Fatalf("distribution: %v", err)
	}
	if selected.ID != "round_id_2" {
		t.Fatalf("unexpected round: %+v", selected)
	}
	// t1r2 and t2r2 tie at 3 points and keep first-vote order
	if len(got) != 2 || got[0].SpotifyURI != "spotify:track:t1r2" || got[1].Points != 3 {
		t.Fatalf("unexpected distribution: %+v", got)
	}
}

func TestRoundService_List_WrapsRepositoryError(t *testing.T) {
	t.Parallel()

	repo := snapshotmock.NewRepository(t)
	repo.On("ListRounds", mock.Anything, testSheetID).Return([]round.Round(nil), ErrDependencyUnavailable).Once()

	_, err := NewRoundService(repo, RoundServiceConfig{Logger: logging.NewNop()}).List(context.Background(), testSheetID)
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}
