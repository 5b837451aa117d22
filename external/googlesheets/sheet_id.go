package googlesheets

import (
	"regexp"
	"strings"
)

var (
	sheetURLRegex = regexp.MustCompile(`spreadsheets/d/([a-zA-Z0-9_-]+)`)
	bareIDRegex   = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// ExtractSheetID returns the document id from a Google Sheets URL. A value
// that already looks like a bare id is returned as is.
func ExtractSheetID(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if match := sheetURLRegex.FindStringSubmatch(raw); match != nil {
		return match[1], true
	}
	if bareIDRegex.MatchString(raw) {
		return raw, true
	}
	return "", false
}
