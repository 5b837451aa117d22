package round

import (
	"strings"
	"time"
)

// Round is one themed phase of the competition.
type Round struct {
	ID          string
	Created     string
	Name        string
	Description string
	PlaylistURL string
}

var createdLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// CreatedAt parses Created. The second return value is false when the
// value matches none of the accepted layouts.
func (r Round) CreatedAt() (time.Time, bool) {
	return ParseTimestamp(r.Created)
}

func ParseTimestamp(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range createdLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.UTC(), true
		}
	}
	return time.Time{}, false
}
