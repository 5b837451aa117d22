package usecase

import (
	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/music-league/internal/domain/competitor"
	"github.com/riskibarqy/music-league/internal/domain/round"
	"github.com/riskibarqy/music-league/internal/domain/snapshot"
	"github.com/riskibarqy/music-league/internal/domain/submission"
	"github.com/riskibarqy/music-league/internal/domain/vote"
	snapshotmock "github.com/riskibarqy/music-league/internal/mocks/domain/snapshot"
)

const testSheetID = "sheet-abc"

func sampleSnapshot() snapshot.Snapshot {
	return snapshot.Snapshot{
		SheetID: testSheetID,
		// listed out of order on purpose
		Rounds: []round.Round{
			{ID: "round_id_2", Created: "2025-03-03T00:46:14Z", Name: "1990s"},
			{ID: "round_id_1", Created: "2025-03-03T00:46:13Z", Name: "Can Openers"},
			{ID: "round_id_3", Created: "2025-03-03T00:46:15Z", Name: "Empty Round"},
		},
		Competitors: []competitor.Competitor{
			{ID: "competitor_id_1", Name: "NerdyFoxTV"},
			{ID: "competitor_id_2", Name: "Hababa"},
			{ID: "competitor_id_3", Name: "Bode"},
			{ID: "competitor_id_4", Name: "Spleen"},
		},
		Submissions: []submission.Submission{
			{SpotifyURI: "spotify:track:t1r1", Title: "Story", Album: "Grow", Artist: "Chon", SubmitterID: "competitor_id_2", RoundID: "round_id_1", VisibleToVoters: submission.VisibleYes},
			{SpotifyURI: "spotify:track:t2r1", Title: "Iconoclast", Album: "Iconoclast", Artist: "Symphony X, Guest", SubmitterID: "competitor_id_1", RoundID: "round_id_1", VisibleToVoters: submission.VisibleYes},
			{SpotifyURI: "spotify:track:t1r2", Title: "Circle", Album: "In a Reverie", Artist: "Lacuna Coil", SubmitterID: "competitor_id_1", RoundID: "round_id_2", VisibleToVoters: submission.VisibleYes},
			{SpotifyURI: "spotify:track:t2r2", Title: "Fatal Tragedy", Album: "Metropolis Pt. 2", Artist: "Dream Theater", SubmitterID: "competitor_id_3", RoundID: "round_id_2", VisibleToVoters: submission.VisibleYes},
		},
		Votes: []vote.Vote{
			{SpotifyURI: "spotify:track:t1r1", VoterID: "competitor_id_1", PointsAssigned: 3, Comment: "Love Chon!", RoundID: "round_id_1"},
			{SpotifyURI: "spotify:track:t1r1", VoterID: "competitor_id_3", PointsAssigned: 2, RoundID: "round_id_1"},
			{SpotifyURI: "spotify:track:t2r1", VoterID: "competitor_id_2", PointsAssigned: 1, RoundID: "round_id_1"},
			{SpotifyURI: "spotify:track:t1r2", VoterID: "competitor_id_4", PointsAssigned: 3, RoundID: "round_id_2"},
			{SpotifyURI: "spotify:track:t2r2", VoterID: "competitor_id_1", PointsAssigned: 2, RoundID: "round_id_2"},
			{SpotifyURI: "spotify:track:t2r2", VoterID: "competitor_id_2", PointsAssigned: 1, RoundID: "round_id_2"},
		},
	}
}

func expectSnapshot(repo *snapshotmock.Repository, snap snapshot.Snapshot) {
	repo.On("ListRounds", mock.Anything, snap.SheetID).Return(snap.Rounds, nil).Once()
	repo.On("ListCompetitors", mock.Anything, snap.SheetID).Return(snap.Competitors, nil).Once()
	repo.On("ListSubmissions", mock.Anything, snap.SheetID).Return(snap.Submissions, nil).Once()
	repo.On("ListVotes", mock.Anything, snap.SheetID).Return(snap.Votes, nil).Once()
}
