package standing

import (
	"strings"

	"github.com/riskibarqy/music-league/internal/domain/competitor"
	"github.com/riskibarqy/music-league/internal/domain/round"
	"github.com/riskibarqy/music-league/internal/domain/submission"
	"github.com/riskibarqy/music-league/internal/domain/vote"
)

// CompetitorPoints is a competitor augmented with the points earned by the
// tracks they submitted.
type CompetitorPoints struct {
	competitor.Competitor
	TotalPoints int
}

// Diagnostics counts what the calculator skipped. The calculator never fails
// on inconsistent sheet data; callers that want to flag integrity problems
// can inspect these counters instead.
type Diagnostics struct {
	IncludedRounds          int
	CountedVotes            int
	ExcludedRoundVotes      int
	DanglingSubmissionVotes int
	DanglingCompetitorVotes int
	DuplicateSubmissionKeys int
	UnknownTargetRound      bool
}

// CalculateCumulativePoints totals, per competitor, the points of every vote
// cast in rounds up to and including targetRoundID. An empty targetRoundID
// counts the whole competition, and so does an id that matches no round.
//
// Votes are attributed to the submitter of the (SpotifyURI, RoundID) pair
// they reference. Votes without a matching submission or whose submitter is
// not a listed competitor contribute nothing. The result has one entry per
// input competitor, in input order. Inputs are not modified.
func CalculateCumulativePoints(
	competitors []competitor.Competitor,
	submissions []submission.Submission,
	votes []vote.Vote,
	rounds []round.Round,
	targetRoundID string,
) []CompetitorPoints {
	out, _ := Inspect(competitors, submissions, votes, rounds, targetRoundID)
	return out
}

// Inspect behaves like CalculateCumulativePoints and also reports Diagnostics.
func Inspect(
	competitors []competitor.Competitor,
	submissions []submission.Submission,
	votes []vote.Vote,
	rounds []round.Round,
	targetRoundID string,
) ([]CompetitorPoints, Diagnostics) {
	var diag Diagnostics

	out := make([]CompetitorPoints, len(competitors))
	indexByID := make(map[string]int, len(competitors))
	for idx, item := range competitors {
		out[idx] = CompetitorPoints{Competitor: item}
		// a repeated id resolves to its last occurrence
		indexByID[competitor.NormalizeID(item.ID)] = idx
	}

	owners := make(map[submission.Key]string, len(submissions))
	for _, item := range submissions {
		key := item.Key()
		if _, exists := owners[key]; exists {
			diag.DuplicateSubmissionKeys++
		}
		// last write wins for duplicate keys
		owners[key] = item.SubmitterID
	}

	included, matched := IncludedRounds(rounds, targetRoundID)
	diag.IncludedRounds = len(included)
	diag.UnknownTargetRound = targetRoundID != "" && !matched

	for _, item := range votes {
		if _, ok := included[item.RoundID]; !ok {
			diag.ExcludedRoundVotes++
			continue
		}

		submitterID, ok := owners[item.Key()]
		if !ok {
			diag.DanglingSubmissionVotes++
			continue
		}
		if strings.TrimSpace(submitterID) == "" {
			diag.DanglingCompetitorVotes++
			continue
		}

		idx, ok := indexByID[competitor.NormalizeID(submitterID)]
		if !ok {
			diag.DanglingCompetitorVotes++
			continue
		}

		out[idx].TotalPoints += item.PointsAssigned
		diag.CountedVotes++
	}

	return out, diag
}

// TotalPoints sums TotalPoints over items.
func TotalPoints(items []CompetitorPoints) int {
	total := 0
	for _, item := range items {
		total += item.TotalPoints
	}
	return total
}
