package snapshot

import (
	"github.com/riskibarqy/music-league/internal/domain/competitor"
	"github.com/riskibarqy/music-league/internal/domain/round"
	"github.com/riskibarqy/music-league/internal/domain/submission"
	"github.com/riskibarqy/music-league/internal/domain/vote"
)

// Snapshot is one consistent read of all four tabs of a league sheet.
// It is treated as immutable once loaded.
type Snapshot struct {
	SheetID     string
	Rounds      []round.Round
	Competitors []competitor.Competitor
	Submissions []submission.Submission
	Votes       []vote.Vote
}

func (s Snapshot) RoundByID(roundID string) (round.Round, bool) {
	for _, item := range s.Rounds {
		if item.ID == roundID {
			return item, true
		}
	}
	return round.Round{}, false
}

func (s Snapshot) SubmissionsForRound(roundID string) []submission.Submission {
	out := make([]submission.Submission, 0)
	for _, item := range s.Submissions {
		if item.RoundID == roundID {
			out = append(out, item)
		}
	}
	return out
}

func (s Snapshot) VotesForRound(roundID string) []vote.Vote {
	out := make([]vote.Vote, 0)
	for _, item := range s.Votes {
		if item.RoundID == roundID {
			out = append(out, item)
		}
	}
	return out
}

// Clone copies every collection so the result can be handed out while the
// original stays cached.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		SheetID:     s.SheetID,
		Rounds:      append([]round.Round(nil), s.Rounds...),
		Competitors: append([]competitor.Competitor(nil), s.Competitors...),
		Submissions: append([]submission.Submission(nil), s.Submissions...),
		Votes:       append([]vote.Vote(nil), s.Votes...),
	}
}
