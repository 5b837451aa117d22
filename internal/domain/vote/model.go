package vote

import "github.com/riskibarqy/music-league/internal/domain/submission"

// Vote is a batch of points one competitor assigned to one track in a round.
type Vote struct {
	SpotifyURI     string
	VoterID        string
	Created        string
	PointsAssigned int
	Comment        string
	RoundID        string
}

// Key is the submission key this vote is attributed through.
func (v Vote) Key() submission.Key {
	return submission.KeyOf(v.SpotifyURI, v.RoundID)
}
