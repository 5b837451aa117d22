package googlesheets

import (
	"encoding/csv"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/music-league/internal/domain/competitor"
	"github.com/riskibarqy/music-league/internal/domain/round"
	"github.com/riskibarqy/music-league/internal/domain/submission"
	"github.com/riskibarqy/music-league/internal/domain/vote"
)

// Tab names of a league sheet.
const (
	TabRounds      = "rounds"
	TabCompetitors = "competitors"
	TabSubmissions = "submissions"
	TabVotes       = "votes"
)

// Tabs lists every tab a league sheet must provide.
var Tabs = []string{TabRounds, TabCompetitors, TabSubmissions, TabVotes}

var (
	parenGroupRegex = regexp.MustCompile(`\([^)]*\)`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// NormalizeHeader drops parenthesised groups and whitespace so that
// "Artist(s)" reads as "Artist" and "Spotify URI" as "SpotifyURI".
func NormalizeHeader(header string) string {
	header = strings.TrimPrefix(header, "\ufeff")
	header = parenGroupRegex.ReplaceAllString(header, "")
	return whitespaceRegex.ReplaceAllString(header, "")
}

// table is a header-indexed view over raw rows.
type table struct {
	tab     string
	columns map[string]int
	rows    [][]string
}

func newTable(tab string, records [][]string) table {
	t := table{tab: tab, columns: make(map[string]int)}
	if len(records) == 0 {
		return t
	}

	for idx, header := range records[0] {
		key := NormalizeHeader(header)
		if key == "" {
			continue
		}
		if _, exists := t.columns[key]; !exists {
			t.columns[key] = idx
		}
	}

	for _, record := range records[1:] {
		if isBlankRecord(record) {
			continue
		}
		t.rows = append(t.rows, record)
	}
	return t
}

func readCSV(tab string, r io.Reader) (table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return table{}, crerr.Wrapf(err, "parse %s csv", tab)
	}
	return newTable(tab, records), nil
}

func isBlankRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func (t table) cell(row []string, column string) string {
	idx, ok := t.columns[column]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// rowNumber reports the 1-based spreadsheet row, counting the header.
func rowNumber(idx int) int {
	return idx + 2
}

func decodeRounds(t table) ([]round.Round, error) {
	out := make([]round.Round, 0, len(t.rows))
	for _, row := range t.rows {
		out = append(out, round.Round{
			ID:          t.cell(row, "ID"),
			Created:     t.cell(row, "Created"),
			Name:        t.cell(row, "Name"),
			Description: t.cell(row, "Description"),
			PlaylistURL: t.cell(row, "PlaylistURL"),
		})
	}
	return out, nil
}

func decodeCompetitors(t table) ([]competitor.Competitor, error) {
	out := make([]competitor.Competitor, 0, len(t.rows))
	for _, row := range t.rows {
		out = append(out, competitor.Competitor{
			ID:   t.cell(row, "ID"),
			Name: t.cell(row, "Name"),
		})
	}
	return out, nil
}

func decodeSubmissions(t table) ([]submission.Submission, error) {
	out := make([]submission.Submission, 0, len(t.rows))
	for idx, row := range t.rows {
		item := submission.Submission{
			SpotifyURI:      t.cell(row, "SpotifyURI"),
			Title:           t.cell(row, "Title"),
			Album:           t.cell(row, "Album"),
			Artist:          t.cell(row, "Artist"),
			SubmitterID:     t.cell(row, "SubmitterID"),
			Created:         t.cell(row, "Created"),
			Comment:         t.cell(row, "Comment"),
			RoundID:         t.cell(row, "RoundID"),
			VisibleToVoters: submission.VisibleYes,
		}
		if raw := t.cell(row, "VisibleToVoters"); raw != "" {
			visibility, ok := submission.ParseVisibility(raw)
			if !ok {
				return nil, crerr.Newf("%s row %d column VisibleToVoters: unrecognised value %q", t.tab, rowNumber(idx), raw)
			}
			item.VisibleToVoters = visibility
		}
		out = append(out, item)
	}
	return out, nil
}

func decodeVotes(t table) ([]vote.Vote, error) {
	out := make([]vote.Vote, 0, len(t.rows))
	for idx, row := range t.rows {
		points, err := parsePoints(t.cell(row, "PointsAssigned"))
		if err != nil {
			return nil, crerr.Wrapf(err, "%s row %d column PointsAssigned", t.tab, rowNumber(idx))
		}
		out = append(out, vote.Vote{
			SpotifyURI:     t.cell(row, "SpotifyURI"),
			VoterID:        t.cell(row, "VoterID"),
			Created:        t.cell(row, "Created"),
			PointsAssigned: points,
			Comment:        t.cell(row, "Comment"),
			RoundID:        t.cell(row, "RoundID"),
		})
	}
	return out, nil
}

// maxPoints is the largest value accepted for a single vote.
const maxPoints = math.MaxInt32

// parsePoints accepts integers and integral decimals such as "3.0". An
// empty cell counts as zero points.
func parsePoints(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	if value, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if value < 0 {
			return 0, crerr.Newf("negative points %d", value)
		}
		if value > maxPoints {
			return 0, crerr.Newf("points %d exceed %d", value, maxPoints)
		}
		return int(value), nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, crerr.Newf("not a number: %q", raw)
	}
	if value != math.Trunc(value) {
		return 0, crerr.Newf("not a whole number: %q", raw)
	}
	if value < 0 {
		return 0, crerr.Newf("negative points %q", raw)
	}
	if value > maxPoints {
		return 0, crerr.Newf("points %q exceed %d", raw, maxPoints)
	}
	return int(value), nil
}
