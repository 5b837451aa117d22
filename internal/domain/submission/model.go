package submission

import "strings"

type Visibility string

const (
	VisibleYes Visibility = "Yes"
	VisibleNo  Visibility = "No"
)

const spotifyTrackPrefix = "spotify:track:"

// Key identifies a submitted track inside one round. The same track may be
// submitted by different competitors in different rounds.
type Key struct {
	SpotifyURI string
	RoundID    string
}

func KeyOf(spotifyURI, roundID string) Key {
	return Key{SpotifyURI: spotifyURI, RoundID: roundID}
}

// Submission is a track entered by a competitor into a round.
type Submission struct {
	SpotifyURI      string
	Title           string
	Album           string
	Artist          string
	SubmitterID     string
	Created         string
	Comment         string
	RoundID         string
	VisibleToVoters Visibility
}

func (s Submission) Key() Key {
	return KeyOf(s.SpotifyURI, s.RoundID)
}

// PrimaryArtist returns the first artist of a comma separated artist list.
func (s Submission) PrimaryArtist() string {
	first, _, _ := strings.Cut(s.Artist, ",")
	return strings.TrimSpace(first)
}

// TrackURL returns the open.spotify.com link for track URIs, or "" for
// anything else.
func (s Submission) TrackURL() string {
	if !strings.HasPrefix(s.SpotifyURI, spotifyTrackPrefix) {
		return ""
	}
	trackID := strings.TrimPrefix(s.SpotifyURI, spotifyTrackPrefix)
	if trackID == "" {
		return ""
	}
	return "https://open.spotify.com/track/" + trackID
}

// Label is the display name used in vote charts.
func (s Submission) Label() string {
	name := s.Title
	if name == "" {
		name = s.SpotifyURI
	}
	if s.Artist != "" {
		name += " - " + s.Artist
	}
	return name
}

// ParseVisibility accepts Yes/No and boolean spellings, case-insensitively.
func ParseVisibility(raw string) (Visibility, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "true", "y", "1":
		return VisibleYes, true
	case "no", "false", "n", "0":
		return VisibleNo, true
	default:
		return "", false
	}
}
