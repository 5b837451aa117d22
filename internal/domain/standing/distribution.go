package standing

import (
	"sort"

	"github.com/riskibarqy/music-league/internal/domain/submission"
	"github.com/riskibarqy/music-league/internal/domain/vote"
)

// TrackPoints is the points total received by one track.
type TrackPoints struct {
	SpotifyURI string
	Label      string
	Points     int
}

// Distribution sums vote points per SpotifyURI and labels each track from the
// first submission sharing its URI. Tracks are ordered by points descending;
// ties keep the order in which the track first appeared in votes.
func Distribution(votes []vote.Vote, submissions []submission.Submission) []TrackPoints {
	labels := make(map[string]string, len(submissions))
	for _, item := range submissions {
		if _, exists := labels[item.SpotifyURI]; !exists {
			labels[item.SpotifyURI] = item.Label()
		}
	}

	indexByURI := make(map[string]int)
	out := make([]TrackPoints, 0)
	for _, item := range votes {
		idx, exists := indexByURI[item.SpotifyURI]
		if !exists {
			label, ok := labels[item.SpotifyURI]
			if !ok {
				label = item.SpotifyURI
			}
			idx = len(out)
			indexByURI[item.SpotifyURI] = idx
			out = append(out, TrackPoints{SpotifyURI: item.SpotifyURI, Label: label})
		}
		out[idx].Points += item.PointsAssigned
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Points > out[j].Points
	})
	return out
}
