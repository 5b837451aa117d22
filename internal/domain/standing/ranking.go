package standing

import "sort"

// RankedCompetitor is one row of a standings table.
type RankedCompetitor struct {
	Rank int
	CompetitorPoints
}

// Rank orders items by TotalPoints descending and assigns competition ranks:
// tied competitors share a rank equal to one plus the number of competitors
// with strictly more points (1, 1, 3, ...). Ties keep their input order.
func Rank(items []CompetitorPoints) []RankedCompetitor {
	sorted := append([]CompetitorPoints(nil), items...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalPoints > sorted[j].TotalPoints
	})

	out := make([]RankedCompetitor, 0, len(sorted))
	rank := 0
	for idx, item := range sorted {
		if idx == 0 || item.TotalPoints != sorted[idx-1].TotalPoints {
			rank = idx + 1
		}
		out = append(out, RankedCompetitor{Rank: rank, CompetitorPoints: item})
	}

	return out
}
