package matching

// Diversity caps for the final selection.
const (
	maxPerOwner    = 2
	maxPerCategory = 3
)

// diversify greedily selects up to limit recommendations from the
// score-descending list while capping repeats per owner and per category.
// A skipped item is never reconsidered, so the result can come up short of
// limit when the pool lacks diversity; that trade-off keeps the pass O(n) with
// no backtracking. All counters are local to one invocation.
func diversify(recommendations []*Recommendation, limit int) []*Recommendation {
	if limit <= 0 {
		return []*Recommendation{}
	}

	ownerCounts := make(map[int32]int)
	categoryCounts := make(map[string]int)
	selected := make([]*Recommendation, 0, limit)

	for _, recommendation := range recommendations {
		if len(selected) >= limit {
			break
		}
		if ownerCounts[recommendation.Item.OwnerID] >= maxPerOwner {
			continue
		}
		if categoryCounts[recommendation.Item.Category] >= maxPerCategory {
			continue
		}
		selected = append(selected, recommendation)
		ownerCounts[recommendation.Item.OwnerID]++
		categoryCounts[recommendation.Item.Category]++
	}

	return selected
}
