package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/music-league/internal/domain/competitor"
	"github.com/riskibarqy/music-league/internal/domain/round"
	"github.com/riskibarqy/music-league/internal/domain/sentiment"
	"github.com/riskibarqy/music-league/internal/domain/snapshot"
	"github.com/riskibarqy/music-league/internal/domain/standing"
	"github.com/riskibarqy/music-league/internal/domain/submission"
	"github.com/riskibarqy/music-league/internal/domain/track"
	"github.com/riskibarqy/music-league/internal/domain/vote"
	"github.com/riskibarqy/music-league/internal/platform/logging"
	"github.com/riskibarqy/music-league/internal/platform/metrics"
)

const defaultEnrichmentWorkers = 4

// RoundSubmission is a submission as shown on a round page.
type RoundSubmission struct {
	submission.Submission
	SubmitterName string
	Points        int
	TrackURL      string
	Features      track.Features
	Enriched      bool
}

// RoundVote is a vote with its comment tone.
type RoundVote struct {
	vote.Vote
	VoterName      string
	Sentiment      float64
	SentimentColor string
}

type RoundDetail struct {
	Round round.Round
	// Position is the 1-based chronological position of the round.
	Position     int
	Submissions  []RoundSubmission
	Votes        []RoundVote
	Distribution []standing.TrackPoints
	// Standings are cumulative up to and including this round.
	Standings   []standing.RankedCompetitor
	Diagnostics standing.Diagnostics
	// EnrichmentWarning is set when at least one track lookup returned
	// nothing. Scoring is never affected.
	EnrichmentWarning bool
}

type RoundServiceConfig struct {
	Tracks            track.Provider
	EnrichmentWorkers int
	Metrics           *metrics.Recorder
	Logger            *logging.Logger
}

type RoundService struct {
	repo    snapshot.Repository
	loader  *SnapshotLoader
	tracks  track.Provider
	workers int
	metrics *metrics.Recorder
	logger  *logging.Logger
}

// NewRoundService builds the service. A nil Tracks provider disables
// enrichment.
func NewRoundService(repo snapshot.Repository, cfg RoundServiceConfig) *RoundService {
	logger := logging.OrDefault(cfg.Logger)
	workers := cfg.EnrichmentWorkers
	if workers <= 0 {
		workers = defaultEnrichmentWorkers
	}
	return &RoundService{
		repo:    repo,
		loader:  NewSnapshotLoader(repo, logger),
		tracks:  cfg.Tracks,
		workers: workers,
		metrics: cfg.Metrics,
		logger:  logger.Named("round_service"),
	}
}

// List returns the rounds of a sheet in chronological order.
func (s *RoundService) List(ctx context.Context, sheetID string) ([]round.Round, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RoundService.List")
	defer span.End()

	sheetID, err := normalizeSheetID(sheetID)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.ListRounds(ctx, sheetID)
	if err != nil {
		return nil, fmt.Errorf("list rounds: %w", err)
	}
	return standing.SortRoundsChronologically(items), nil
}

func (s *RoundService) Detail(ctx context.Context, sheetID, roundID string) (RoundDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RoundService.Detail")
	defer span.End()

	snap, selected, err := s.loadRound(ctx, sheetID, roundID)
	if err != nil {
		return RoundDetail{}, err
	}

	submissions := snap.SubmissionsForRound(selected.ID)
	votes := snap.VotesForRound(selected.ID)
	names := competitorNames(snap.Competitors)

	features, warning := s.enrich(ctx, submissions)

	pointsByKey := make(map[submission.Key]int, len(submissions))
	for _, item := range votes {
		pointsByKey[item.Key()] += item.PointsAssigned
	}

	detail := RoundDetail{
		Round:             selected,
		Position:          roundPosition(snap.Rounds, selected.ID),
		Submissions:       make([]RoundSubmission, 0, len(submissions)),
		Votes:             make([]RoundVote, 0, len(votes)),
		Distribution:      standing.Distribution(votes, submissions),
		EnrichmentWarning: warning,
	}
	for _, item := range submissions {
		found, ok := features[item.SpotifyURI]
		detail.Submissions = append(detail.Submissions, RoundSubmission{
			Submission:    item,
			SubmitterName: names[competitor.NormalizeID(item.SubmitterID)],
			Points:        pointsByKey[item.Key()],
			TrackURL:      item.TrackURL(),
			Features:      found,
			Enriched:      ok,
		})
	}
	for _, item := range votes {
		score := sentiment.Score(item.Comment)
		detail.Votes = append(detail.Votes, RoundVote{
			Vote:           item,
			VoterName:      names[competitor.NormalizeID(item.VoterID)],
			Sentiment:      score,
			SentimentColor: sentiment.Color(score),
		})
	}

	result := computeStandings(ctx, snap, selected.ID, scopeRound, s.metrics, s.logger)
	detail.Standings = result.Rows
	detail.Diagnostics = result.Diagnostics

	return detail, nil
}

// Distribution returns the per-track vote totals of a round together with
// the round itself.
func (s *RoundService) Distribution(ctx context.Context, sheetID, roundID string) (round.Round, []standing.TrackPoints, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RoundService.Distribution")
	defer span.End()

	snap, selected, err := s.loadRound(ctx, sheetID, roundID)
	if err != nil {
		return round.Round{}, nil, err
	}
	return selected, standing.Distribution(snap.VotesForRound(selected.ID), snap.SubmissionsForRound(selected.ID)), nil
}

func (s *RoundService) loadRound(ctx context.Context, sheetID, roundID string) (snapshot.Snapshot, round.Round, error) {
	roundID = strings.TrimSpace(roundID)
	if roundID == "" {
		return snapshot.Snapshot{}, round.Round{}, fmt.Errorf("%w: round id is required", ErrInvalidInput)
	}

	snap, err := s.loader.Load(ctx, sheetID)
	if err != nil {
		return snapshot.Snapshot{}, round.Round{}, err
	}

	selected, ok := snap.RoundByID(roundID)
	if !ok {
		return snapshot.Snapshot{}, round.Round{}, fmt.Errorf("%w: round=%s", ErrNotFound, roundID)
	}
	return snap, selected, nil
}

// enrich looks up each distinct track of the round on a bounded worker pool.
// The returned flag is true when any lookup came back empty.
func (s *RoundService) enrich(ctx context.Context, submissions []submission.Submission) (map[string]track.Features, bool) {
	if len(submissions) == 0 {
		return nil, false
	}
	if s.tracks == nil {
		for range submissions {
			s.metrics.IncEnrichment(metrics.EnrichmentSkipped)
		}
		return nil, false
	}

	unique := make([]submission.Submission, 0, len(submissions))
	seen := make(map[string]struct{}, len(submissions))
	for _, item := range submissions {
		if _, ok := seen[item.SpotifyURI]; ok {
			continue
		}
		seen[item.SpotifyURI] = struct{}{}
		unique = append(unique, item)
	}

	workers := s.workers
	if workers > len(unique) {
		workers = len(unique)
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		s.logger.WarnContext(ctx, "create enrichment pool failed", "error", err)
		return nil, true
	}
	defer pool.Release()

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		found   = make(map[string]track.Features, len(unique))
		missing bool
	)
	for _, item := range unique {
		item := item
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			features, ok := s.tracks.FetchTrack(ctx, item.PrimaryArtist(), item.Title, item.Album)

			mu.Lock()
			defer mu.Unlock()
			if !ok {
				missing = true
				return
			}
			found[item.SpotifyURI] = features
		}); err != nil {
			wg.Done()
			s.logger.WarnContext(ctx, "submit enrichment task failed", "spotify_uri", item.SpotifyURI, "error", err)
			mu.Lock()
			missing = true
			mu.Unlock()
		}
	}
	wg.Wait()

	if missing {
		s.logger.InfoContext(ctx, "some track details could not be fetched", "requested", len(unique), "found", len(found))
	}
	return found, missing
}

func competitorNames(items []competitor.Competitor) map[string]string {
	out := make(map[string]string, len(items))
	for _, item := range items {
		out[competitor.NormalizeID(item.ID)] = item.DisplayName()
	}
	return out
}

func roundPosition(rounds []round.Round, roundID string) int {
	for idx, item := range standing.SortRoundsChronologically(rounds) {
		if item.ID == roundID {
			return idx + 1
		}
	}
	return 0
}
