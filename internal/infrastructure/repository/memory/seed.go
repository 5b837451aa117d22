package memory

import (
	"github.com/riskibarqy/music-league/internal/domain/competitor"
	"github.com/riskibarqy/music-league/internal/domain/round"
	"github.com/riskibarqy/music-league/internal/domain/snapshot"
	"github.com/riskibarqy/music-league/internal/domain/submission"
	"github.com/riskibarqy/music-league/internal/domain/vote"
)

const SampleSheetID = "sample"

// SeedSnapshot is a small four round league. Round 3 has no activity and
// round 4 is still open, so the totals are 12 points across two rounds.
func SeedSnapshot() snapshot.Snapshot {
	return snapshot.Snapshot{
		SheetID:     SampleSheetID,
		Rounds:      SeedRounds(),
		Competitors: SeedCompetitors(),
		Submissions: SeedSubmissions(),
		Votes:       SeedVotes(),
	}
}

func SeedRounds() []round.Round {
	return []round.Round{
		{ID: "round_id_1", Created: "2025-03-03T00:46:13Z", Name: "Can Openers", Description: "Songs that were the first track on an album", PlaylistURL: "https://open.spotify.com/playlist/2ievyieWski9zKu0XThEub"},
		{ID: "round_id_2", Created: "2025-03-03T00:46:14Z", Name: "1990s", Description: "Songs released in the 1990s", PlaylistURL: "https://open.spotify.com/playlist/1gnfQ3WfIY6jVem6WhYWgO"},
		{ID: "round_id_3", Created: "2025-03-03T00:46:15Z", Name: "Empty Round", Description: "A round with no submissions or votes"},
		{ID: "round_id_4", Created: "2025-03-03T00:46:16Z", Name: "Colors Round", Description: "Songs with colors"},
	}
}

func SeedCompetitors() []competitor.Competitor {
	return []competitor.Competitor{
		{ID: "competitor_id_1", Name: "NerdyFoxTV"},
		{ID: "competitor_id_2", Name: "Hababa"},
		{ID: "competitor_id_3", Name: "Bode"},
		{ID: "competitor_id_4", Name: "Spleen"},
	}
}

func SeedSubmissions() []submission.Submission {
	return []submission.Submission{
		{SpotifyURI: "spotify:track:track1_round1", Title: "Story", Album: "Grow", Artist: "Chon", SubmitterID: "competitor_id_2", Created: "2025-03-03T01:35:47Z", Comment: "Great opener", RoundID: "round_id_1", VisibleToVoters: submission.VisibleYes},
		{SpotifyURI: "spotify:track:track2_round1", Title: "Iconoclast", Album: "Iconoclast", Artist: "Symphony X", SubmitterID: "competitor_id_1", Created: "2025-03-03T01:20:58Z", Comment: "Absolute banger", RoundID: "round_id_1", VisibleToVoters: submission.VisibleYes},
		{SpotifyURI: "spotify:track:track3_round1", Title: "8 Gates Of Pleasure", Album: "Every Sound Has A Color", Artist: "Night Verses", SubmitterID: "competitor_id_3", Created: "2025-03-03T08:03:03Z", RoundID: "round_id_1", VisibleToVoters: submission.VisibleNo},
		{SpotifyURI: "spotify:track:track1_round2", Title: "Circle", Album: "In a Reverie", Artist: "Lacuna Coil", SubmitterID: "competitor_id_1", Created: "2025-03-11T18:27:40Z", Comment: "90s classic", RoundID: "round_id_2", VisibleToVoters: submission.VisibleYes},
		{SpotifyURI: "spotify:track:track2_round2", Title: "Fatal Tragedy", Album: "Metropolis Pt. 2", Artist: "Dream Theater", SubmitterID: "competitor_id_3", Created: "2025-03-11T17:44:26Z", RoundID: "round_id_2", VisibleToVoters: submission.VisibleYes},
	}
}

func SeedVotes() []vote.Vote {
	return []vote.Vote{
		{SpotifyURI: "spotify:track:track1_round1", VoterID: "competitor_id_1", Created: "2025-03-07T00:32:10Z", PointsAssigned: 3, Comment: "Love Chon!", RoundID: "round_id_1"},
		{SpotifyURI: "spotify:track:track1_round1", VoterID: "competitor_id_3", Created: "2025-03-07T00:32:16Z", PointsAssigned: 2, Comment: "Chon good", RoundID: "round_id_1"},
		{SpotifyURI: "spotify:track:track2_round1", VoterID: "competitor_id_2", Created: "2025-03-07T00:53:12Z", PointsAssigned: 1, Comment: "Symphony X rocks", RoundID: "round_id_1"},
		{SpotifyURI: "spotify:track:track1_round2", VoterID: "competitor_id_4", Created: "2025-03-13T22:36:33Z", PointsAssigned: 3, Comment: "Cool 90s song", RoundID: "round_id_2"},
		{SpotifyURI: "spotify:track:track2_round2", VoterID: "competitor_id_1", Created: "2025-03-13T22:40:40Z", PointsAssigned: 2, Comment: "DT FTW", RoundID: "round_id_2"},
		{SpotifyURI: "spotify:track:track2_round2", VoterID: "competitor_id_2", Created: "2025-03-14T01:22:15Z", PointsAssigned: 1, RoundID: "round_id_2"},
	}
}
