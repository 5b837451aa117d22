package standing

import (
	"sort"

	"github.com/riskibarqy/music-league/internal/domain/round"
)

// SortRoundsChronologically returns a copy of rounds ordered by Created.
// Equal timestamps keep their input order. Rounds whose Created cannot be
// parsed are placed after all others, also in input order.
func SortRoundsChronologically(rounds []round.Round) []round.Round {
	sorted := append([]round.Round(nil), rounds...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return createdBefore(sorted[i], sorted[j])
	})
	return sorted
}

func createdBefore(a, b round.Round) bool {
	at, aOK := a.CreatedAt()
	bt, bOK := b.CreatedAt()
	switch {
	case aOK && bOK:
		return at.Before(bt)
	case aOK:
		return true
	default:
		return false
	}
}

// IncludedRounds returns the set of round ids whose votes count for a cutoff.
// matched reports whether targetRoundID resolved to a round; when it did not,
// every round is included.
func IncludedRounds(rounds []round.Round, targetRoundID string) (set map[string]struct{}, matched bool) {
	set = make(map[string]struct{}, len(rounds))
	if targetRoundID != "" {
		sorted := SortRoundsChronologically(rounds)
		targetIdx := -1
		for idx, item := range sorted {
			if item.ID == targetRoundID {
				targetIdx = idx
				break
			}
		}
		if targetIdx >= 0 {
			for _, item := range sorted[:targetIdx+1] {
				set[item.ID] = struct{}{}
			}
			return set, true
		}
	}

	for _, item := range rounds {
		set[item.ID] = struct{}{}
	}
	return set, false
}
