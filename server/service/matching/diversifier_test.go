package matching

import (
	"testing"
)

func makeRecommendation(id, ownerID int32, category string, score int) *Recommendation {
	return &Recommendation{
		Item: RecommendedItem{
			ID:       id,
			OwnerID:  ownerID,
			Category: category,
		},
		Score: score,
	}
}

func TestDiversifyOwnerCap(t *testing.T) {
	recommendations := []*Recommendation{
		makeRecommendation(1, 7, "books", 90),
		makeRecommendation(2, 7, "music", 80),
		makeRecommendation(3, 7, "tools", 70),
		makeRecommendation(4, 8, "garden", 60),
	}

	got := diversify(recommendations, 10)
	if len(got) != 3 {
		t.Fatalf("diversify() selected %d, want 3", len(got))
	}
	ownerCounts := map[int32]int{}
	for _, recommendation := range got {
		ownerCounts[recommendation.Item.OwnerID]++
	}
	if ownerCounts[7] != maxPerOwner {
		t.Errorf("owner 7 appears %d times, want %d", ownerCounts[7], maxPerOwner)
	}
	if got[2].Item.ID != 4 {
		t.Errorf("expected item 4 to fill the slot skipped by the owner cap, got item %d", got[2].Item.ID)
	}
}

func TestDiversifyCategoryCap(t *testing.T) {
	recommendations := []*Recommendation{
		makeRecommendation(1, 1, "books", 90),
		makeRecommendation(2, 2, "books", 80),
		makeRecommendation(3, 3, "books", 70),
		makeRecommendation(4, 4, "books", 60),
		makeRecommendation(5, 5, "music", 50),
	}

	got := diversify(recommendations, 10)
	if len(got) != 4 {
		t.Fatalf("diversify() selected %d, want 4", len(got))
	}
	categoryCounts := map[string]int{}
	for _, recommendation := range got {
		categoryCounts[recommendation.Item.Category]++
	}
	if categoryCounts["books"] != maxPerCategory {
		t.Errorf("category books appears %d times, want %d", categoryCounts["books"], maxPerCategory)
	}
	if got[3].Item.ID != 5 {
		t.Errorf("expected item 5 after the category cap, got item %d", got[3].Item.ID)
	}
}

func TestDiversifyRespectsLimit(t *testing.T) {
	recommendations := []*Recommendation{}
	for i := int32(0); i < 30; i++ {
		recommendations = append(recommendations, makeRecommendation(i, i, "cat"+string(rune('a'+i%10)), int(100-i)))
	}

	got := diversify(recommendations, 5)
	if len(got) != 5 {
		t.Errorf("diversify() selected %d, want 5", len(got))
	}
}

func TestDiversifyShortPool(t *testing.T) {
	recommendations := []*Recommendation{
		makeRecommendation(1, 1, "books", 90),
		makeRecommendation(2, 2, "music", 80),
	}

	got := diversify(recommendations, 10)
	if len(got) != 2 {
		t.Errorf("diversify() selected %d, want the whole pool of 2", len(got))
	}
}

func TestDiversifyNoBacktracking(t *testing.T) {
	// Once skipped, a recommendation stays skipped even if a later selection
	// would have freed room for it. The result may come up short of limit.
	recommendations := []*Recommendation{
		makeRecommendation(1, 7, "books", 90),
		makeRecommendation(2, 7, "books", 80),
		makeRecommendation(3, 7, "books", 70),
	}

	got := diversify(recommendations, 3)
	if len(got) != 2 {
		t.Fatalf("diversify() selected %d, want 2", len(got))
	}
	if got[0].Item.ID != 1 || got[1].Item.ID != 2 {
		t.Errorf("diversify() = items %d,%d, want 1,2", got[0].Item.ID, got[1].Item.ID)
	}
}

func TestDiversifyZeroLimit(t *testing.T) {
	got := diversify([]*Recommendation{makeRecommendation(1, 1, "books", 90)}, 0)
	if len(got) != 0 {
		t.Errorf("diversify() selected %d, want 0", len(got))
	}
}
