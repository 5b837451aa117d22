package competitor

import "strings"

// Competitor is a league participant as listed in the competitors tab.
type Competitor struct {
	ID   string
	Name string
}

// NormalizeID returns the form used when comparing competitor ids.
func NormalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

func (c Competitor) DisplayName() string {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return "Unnamed Competitor"
	}
	return name
}
