package httpapi

import (
	"github.com/riskibarqy/music-league/internal/domain/competitor"
	"github.com/riskibarqy/music-league/internal/domain/round"
	"github.com/riskibarqy/music-league/internal/domain/standing"
	"github.com/riskibarqy/music-league/internal/domain/track"
	"github.com/riskibarqy/music-league/internal/usecase"
)

type resolveSheetDTO struct {
	SheetID string `json:"sheetId"`
}

type refreshDTO struct {
	SheetID     string `json:"sheetId"`
	Invalidated bool   `json:"invalidated"`
}

type competitorDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type roundDTO struct {
	ID          string `json:"id"`
	Created     string `json:"created"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PlaylistURL string `json:"playlistUrl,omitempty"`
}

type trackFeaturesDTO struct {
	ImageURL                string   `json:"imageUrl,omitempty"`
	Tempo                   *float64 `json:"tempo,omitempty"`
	TempoConfidence         *float64 `json:"tempoConfidence,omitempty"`
	TimeSignature           *float64 `json:"timeSignature,omitempty"`
	TimeSignatureConfidence *float64 `json:"timeSignatureConfidence,omitempty"`
	Danceability            *float64 `json:"danceability,omitempty"`
	Energy                  *float64 `json:"energy,omitempty"`
	Valence                 *float64 `json:"valence,omitempty"`
	Loudness                *float64 `json:"loudness,omitempty"`
	Genres                  []string `json:"genres,omitempty"`
}

type roundSubmissionDTO struct {
	SpotifyURI      string            `json:"spotifyUri"`
	TrackURL        string            `json:"trackUrl,omitempty"`
	Title           string            `json:"title"`
	Album           string            `json:"album"`
	Artist          string            `json:"artist"`
	SubmitterID     string            `json:"submitterId"`
	SubmitterName   string            `json:"submitterName,omitempty"`
	Created         string            `json:"created"`
	Comment         string            `json:"comment,omitempty"`
	VisibleToVoters string            `json:"visibleToVoters"`
	Points          int               `json:"points"`
	Features        *trackFeaturesDTO `json:"features,omitempty"`
}

type roundVoteDTO struct {
	SpotifyURI     string  `json:"spotifyUri"`
	VoterID        string  `json:"voterId"`
	VoterName      string  `json:"voterName,omitempty"`
	Created        string  `json:"created"`
	PointsAssigned int     `json:"pointsAssigned"`
	Comment        string  `json:"comment,omitempty"`
	Sentiment      float64 `json:"sentiment"`
	SentimentColor string  `json:"sentimentColor"`
}

type trackPointsDTO struct {
	SpotifyURI string `json:"spotifyUri"`
	Label      string `json:"label"`
	Points     int    `json:"points"`
}

type standingRowDTO struct {
	Rank         int    `json:"rank"`
	CompetitorID string `json:"competitorId"`
	Name         string `json:"name"`
	TotalPoints  int    `json:"totalPoints"`
}

type diagnosticsDTO struct {
	IncludedRounds          int  `json:"includedRounds"`
	CountedVotes            int  `json:"countedVotes"`
	ExcludedRoundVotes      int  `json:"excludedRoundVotes"`
	DanglingSubmissionVotes int  `json:"danglingSubmissionVotes"`
	DanglingCompetitorVotes int  `json:"danglingCompetitorVotes"`
	DuplicateSubmissionKeys int  `json:"duplicateSubmissionKeys"`
	UnknownTargetRound      bool `json:"unknownTargetRound"`
}

type roundDetailDTO struct {
	Round             roundDTO             `json:"round"`
	Position          int                  `json:"position"`
	Submissions       []roundSubmissionDTO `json:"submissions"`
	Votes             []roundVoteDTO       `json:"votes"`
	Distribution      []trackPointsDTO     `json:"distribution"`
	Standings         []standingRowDTO     `json:"standings"`
	Diagnostics       diagnosticsDTO       `json:"diagnostics"`
	EnrichmentWarning bool                 `json:"enrichmentWarning"`
}

type leaderboardDTO struct {
	SheetID      string           `json:"sheetId"`
	ThroughRound *roundDTO        `json:"throughRound,omitempty"`
	TotalPoints  int              `json:"totalPoints"`
	Standings    []standingRowDTO `json:"standings"`
	Diagnostics  diagnosticsDTO   `json:"diagnostics"`
}

func competitorToDTO(item competitor.Competitor) competitorDTO {
	return competitorDTO{ID: item.ID, Name: item.DisplayName()}
}

func roundToDTO(item round.Round) roundDTO {
	return roundDTO{
		ID:          item.ID,
		Created:     item.Created,
		Name:        item.Name,
		Description: item.Description,
		PlaylistURL: item.PlaylistURL,
	}
}

func featuresToDTO(item track.Features) *trackFeaturesDTO {
	return &trackFeaturesDTO{
		ImageURL:                item.ImageURL,
		Tempo:                   item.Tempo,
		TempoConfidence:         item.TempoConfidence,
		TimeSignature:           item.TimeSignature,
		TimeSignatureConfidence: item.TimeSignatureConfidence,
		Danceability:            item.Danceability,
		Energy:                  item.Energy,
		Valence:                 item.Valence,
		Loudness:                item.Loudness,
		Genres:                  item.Genres,
	}
}

func standingsToDTO(rows []standing.RankedCompetitor) []standingRowDTO {
	out := make([]standingRowDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, standingRowDTO{
			Rank:         row.Rank,
			CompetitorID: row.ID,
			Name:         row.DisplayName(),
			TotalPoints:  row.TotalPoints,
		})
	}
	return out
}

func diagnosticsToDTO(d standing.Diagnostics) diagnosticsDTO {
	return diagnosticsDTO{
		IncludedRounds:          d.IncludedRounds,
		CountedVotes:            d.CountedVotes,
		ExcludedRoundVotes:      d.ExcludedRoundVotes,
		DanglingSubmissionVotes: d.DanglingSubmissionVotes,
		DanglingCompetitorVotes: d.DanglingCompetitorVotes,
		DuplicateSubmissionKeys: d.DuplicateSubmissionKeys,
		UnknownTargetRound:      d.UnknownTargetRound,
	}
}

func roundDetailToDTO(detail usecase.RoundDetail) roundDetailDTO {
	out := roundDetailDTO{
		Round:             roundToDTO(detail.Round),
		Position:          detail.Position,
		Submissions:       make([]roundSubmissionDTO, 0, len(detail.Submissions)),
		Votes:             make([]roundVoteDTO, 0, len(detail.Votes)),
		Distribution:      make([]trackPointsDTO, 0, len(detail.Distribution)),
		Standings:         standingsToDTO(detail.Standings),
		Diagnostics:       diagnosticsToDTO(detail.Diagnostics),
		EnrichmentWarning: detail.EnrichmentWarning,
	}

	for _, item := range detail.Submissions {
		row := roundSubmissionDTO{
			SpotifyURI:      item.SpotifyURI,
			TrackURL:        item.TrackURL,
			Title:           item.Title,
			Album:           item.Album,
			Artist:          item.Artist,
			SubmitterID:     item.SubmitterID,
			SubmitterName:   item.SubmitterName,
			Created:         item.Created,
			Comment:         item.Comment,
			VisibleToVoters: string(item.VisibleToVoters),
			Points:          item.Points,
		}
		if item.Enriched {
			row.Features = featuresToDTO(item.Features)
		}
		out.Submissions = append(out.Submissions, row)
	}
	for _, item := range detail.Votes {
		out.Votes = append(out.Votes, roundVoteDTO{
			SpotifyURI:     item.SpotifyURI,
			VoterID:        item.VoterID,
			VoterName:      item.VoterName,
			Created:        item.Created,
			PointsAssigned: item.PointsAssigned,
			Comment:        item.Comment,
			Sentiment:      item.Sentiment,
			SentimentColor: item.SentimentColor,
		})
	}
	for _, item := range detail.Distribution {
		out.Distribution = append(out.Distribution, trackPointsDTO{
			SpotifyURI: item.SpotifyURI,
			Label:      item.Label,
			Points:     item.Points,
		})
	}
	return out
}

func leaderboardToDTO(board usecase.Leaderboard) leaderboardDTO {
	out := leaderboardDTO{
		SheetID:     board.SheetID,
		TotalPoints: board.TotalPoints,
		Standings:   standingsToDTO(board.Rows),
		Diagnostics: diagnosticsToDTO(board.Diagnostics),
	}
	if board.ThroughRound != nil {
		item := roundToDTO(*board.ThroughRound)
		out.ThroughRound = &item
	}
	return out
}
