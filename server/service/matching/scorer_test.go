package matching

import (
	"testing"

	"github.com/barterhub/barterhub/store"
)

func TestScoreCandidatesPreferredCategoryAndCondition(t *testing.T) {
	preferences := &store.UserPreferences{
		PreferredCategories: []string{"books"},
		PreferredConditions: []string{"good"},
	}
	candidates := []*store.Item{
		{ID: 1, Title: "Paperback novel", Category: "books", Condition: "good"},
	}

	got := scoreCandidates(candidates, preferences, nil)
	if len(got) != 1 {
		t.Fatalf("scoreCandidates() returned %d recommendations, want 1", len(got))
	}
	if got[0].Score != 30 {
		t.Errorf("Score = %d, want 30", got[0].Score)
	}
	if len(got[0].Reasons) != 2 {
		t.Fatalf("Reasons count = %d, want 2", len(got[0].Reasons))
	}
	if got[0].Reasons[0].Type != reasonCategory || got[0].Reasons[0].Score != preferredCategoryBonus {
		t.Errorf("first reason = %+v, want category bonus %v", got[0].Reasons[0], preferredCategoryBonus)
	}
	if got[0].Reasons[1].Type != reasonCondition || got[0].Reasons[1].Score != preferredConditionBonus {
		t.Errorf("second reason = %+v, want condition bonus %v", got[0].Reasons[1], preferredConditionBonus)
	}
}

func TestScoreCandidatesDropsExchangeHistoryMatches(t *testing.T) {
	exchanges := []*store.Exchange{
		{RequestedItemTitle: "Vintage Camera", OfferedItemTitle: "Chess Set"},
	}
	candidates := []*store.Item{
		{ID: 1, Title: "Vintage Camera", Category: "electronics", PopularityScore: 90},
		{ID: 2, Title: "camera", Category: "electronics", PopularityScore: 90},
		{ID: 3, Title: "Wooden Desk", Category: "furniture", PopularityScore: 90},
	}

	got := scoreCandidates(candidates, nil, exchanges)
	for _, recommendation := range got {
		if recommendation.Item.ID == 1 || recommendation.Item.ID == 2 {
			t.Errorf("item %d resembles a past exchange and should have been dropped", recommendation.Item.ID)
		}
	}
	if len(got) != 1 || got[0].Item.ID != 3 {
		t.Errorf("scoreCandidates() kept %d items, want only item 3", len(got))
	}
}

func TestScoreCandidatesPopularityAndRarity(t *testing.T) {
	candidates := []*store.Item{
		{ID: 1, Title: "Guitar", Category: "music", PopularityScore: 50},
		{ID: 2, Title: "Armchair", Category: "furniture"},
	}

	got := scoreCandidates(candidates, nil, nil)
	if len(got) != 2 {
		t.Fatalf("scoreCandidates() returned %d recommendations, want 2", len(got))
	}

	// Each category holds half the pool, so rarity contributes 7.5 to both.
	// Item 1 adds a popularity bonus of 50/100*15 = 7.5 on top.
	if got[0].Item.ID != 1 || got[0].Score != 15 {
		t.Errorf("top recommendation = item %d score %d, want item 1 score 15", got[0].Item.ID, got[0].Score)
	}
	if got[1].Item.ID != 2 || got[1].Score != 8 {
		t.Errorf("second recommendation = item %d score %d, want item 2 score 8", got[1].Item.ID, got[1].Score)
	}
}

func TestScoreCandidatesDropsNonPositiveScores(t *testing.T) {
	candidates := []*store.Item{
		{ID: 1, Title: "Lone item", Category: "misc"},
	}

	// Single-category pool yields zero rarity; no other signal applies.
	got := scoreCandidates(candidates, nil, nil)
	if len(got) != 0 {
		t.Errorf("scoreCandidates() returned %d recommendations, want 0", len(got))
	}
}

func TestScoreCandidatesScoreEqualsReasonSum(t *testing.T) {
	preferences := &store.UserPreferences{
		PreferredCategories: []string{"books", "music"},
		PreferredConditions: []string{"new"},
		Country:             "DE",
	}
	exchanges := []*store.Exchange{
		{RequestedItemTitle: "Jazz Records", OfferedItemTitle: "Piano Bench"},
	}
	candidates := []*store.Item{
		{ID: 1, Title: "Jazz Guitar", Category: "music", Condition: "new", Tags: []string{"music", "jazz"}, PopularityScore: 80, OwnerCountry: "DE"},
		{ID: 2, Title: "Cookbook", Category: "books", Condition: "used", PopularityScore: 10},
		{ID: 3, Title: "Toolbox", Category: "tools"},
	}

	got := scoreCandidates(candidates, preferences, exchanges)
	for _, recommendation := range got {
		sum := 0.0
		for _, reason := range recommendation.Reasons {
			if reason.Score < 0 {
				t.Errorf("item %d has negative reason score %v", recommendation.Item.ID, reason.Score)
			}
			sum += reason.Score
		}
		rounded := int(sum + 0.5)
		if recommendation.Score != rounded {
			t.Errorf("item %d score %d does not equal rounded reason sum %d", recommendation.Item.ID, recommendation.Score, rounded)
		}
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Score < got[i].Score {
			t.Errorf("recommendations not sorted by score descending at index %d", i)
		}
	}
}

func TestCountTagMatches(t *testing.T) {
	tests := []struct {
		name       string
		tags       []string
		categories []string
		want       int
	}{
		{
			name:       "Exact overlap",
			tags:       []string{"books"},
			categories: []string{"books"},
			want:       1,
		},
		{
			name:       "Substring either direction",
			tags:       []string{"bookshelf", "art"},
			categories: []string{"books", "artwork"},
			want:       2,
		},
		{
			name:       "Case insensitive",
			tags:       []string{"Books"},
			categories: []string{"BOOKS"},
			want:       1,
		},
		{
			name:       "Tag counted once across categories",
			tags:       []string{"music"},
			categories: []string{"music", "musical instruments"},
			want:       1,
		},
		{
			name:       "No overlap",
			tags:       []string{"garden"},
			categories: []string{"books"},
			want:       0,
		},
		{
			name:       "Empty tag skipped",
			tags:       []string{""},
			categories: []string{"books"},
			want:       0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := countTagMatches(tt.tags, tt.categories); got != tt.want {
				t.Errorf("countTagMatches() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScoreCandidatesTagBonusCapped(t *testing.T) {
	preferences := &store.UserPreferences{
		PreferredCategories: []string{"music", "books", "art"},
	}
	candidates := []*store.Item{
		{ID: 1, Title: "Bundle", Category: "misc", Tags: []string{"music", "books", "art"}},
		{ID: 2, Title: "Filler", Category: "other"},
	}

	got := scoreCandidates(candidates, preferences, nil)
	if len(got) == 0 {
		t.Fatal("scoreCandidates() returned no recommendations")
	}
	for _, reason := range got[0].Reasons {
		if reason.Type == reasonTags && reason.Score != tagBonusCap {
			t.Errorf("tag bonus = %v, want capped at %v", reason.Score, tagBonusCap)
		}
	}
}

func TestMatchesExchangeHistory(t *testing.T) {
	exchanges := []*store.Exchange{
		{RequestedItemTitle: "Vintage Camera", OfferedItemTitle: "Chess Set"},
	}

	tests := []struct {
		name  string
		title string
		want  bool
	}{
		{
			name:  "Exact match different case",
			title: "vintage camera",
			want:  true,
		},
		{
			name:  "Candidate is substring of past title",
			title: "Camera",
			want:  true,
		},
		{
			name:  "Past title is substring of candidate",
			title: "Antique Chess Set with Board",
			want:  true,
		},
		{
			name:  "Unrelated title",
			title: "Wooden Desk",
			want:  false,
		},
		{
			name:  "Blank title never matches",
			title: "   ",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchesExchangeHistory(tt.title, exchanges); got != tt.want {
				t.Errorf("matchesExchangeHistory(%q) = %v, want %v", tt.title, got, tt.want)
			}
		})
	}
}

func TestRarityBonus(t *testing.T) {
	tests := []struct {
		name          string
		categoryCount int
		totalCount    int
		want          float64
	}{
		{
			name:          "Empty pool",
			categoryCount: 0,
			totalCount:    0,
			want:          0,
		},
		{
			name:          "Only category",
			categoryCount: 4,
			totalCount:    4,
			want:          0,
		},
		{
			name:          "Half the pool",
			categoryCount: 2,
			totalCount:    4,
			want:          7.5,
		},
		{
			name:          "Rare category rounded to one decimal",
			categoryCount: 1,
			totalCount:    3,
			want:          10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rarityBonus(tt.categoryCount, tt.totalCount); got != tt.want {
				t.Errorf("rarityBonus(%d, %d) = %v, want %v", tt.categoryCount, tt.totalCount, got, tt.want)
			}
		})
	}
}

func TestHistoryAffinityBonus(t *testing.T) {
	tests := []struct {
		name      string
		item      *store.Item
		exchanges []*store.Exchange
		want      float64
	}{
		{
			name: "One shared keyword",
			item: &store.Item{Title: "Acoustic Guitar", Category: "music"},
			exchanges: []*store.Exchange{
				{RequestedItemTitle: "Electric Guitar", OfferedItemTitle: "Amplifier"},
			},
			want: 5,
		},
		{
			name: "Capped per exchange record",
			item: &store.Item{Title: "Alpha Bravo Charlie Delta Echo", Category: "misc"},
			exchanges: []*store.Exchange{
				{RequestedItemTitle: "Alpha Bravo Charlie", OfferedItemTitle: "Delta Echo"},
			},
			want: 20,
		},
		{
			name: "Capped across records",
			item: &store.Item{Title: "Alpha Bravo Charlie", Category: "misc"},
			exchanges: []*store.Exchange{
				{RequestedItemTitle: "Alpha Bravo Charlie"},
				{RequestedItemTitle: "Alpha Bravo Charlie"},
				{RequestedItemTitle: "Alpha Bravo Charlie"},
			},
			want: 20,
		},
		{
			name:      "No history",
			item:      &store.Item{Title: "Acoustic Guitar", Category: "music"},
			exchanges: nil,
			want:      0,
		},
		{
			name: "Short tokens ignored",
			item: &store.Item{Title: "A to Z", Category: "it"},
			exchanges: []*store.Exchange{
				{RequestedItemTitle: "A to Z"},
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := historyAffinityBonus(tt.item, tt.exchanges); got != tt.want {
				t.Errorf("historyAffinityBonus() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTokenizeKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "Lowercases and splits on punctuation",
			text: "Vintage-Camera, 35mm!",
			want: []string{"vintage", "camera", "35mm"},
		},
		{
			name: "Drops short tokens",
			text: "a to the sea",
			want: []string{"the", "sea"},
		},
		{
			name: "Empty text",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenizeKeywords(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("tokenizeKeywords(%q) = %v, want %v", tt.text, got, tt.want)
			}
			for _, keyword := range tt.want {
				if _, ok := got[keyword]; !ok {
					t.Errorf("tokenizeKeywords(%q) missing keyword %q", tt.text, keyword)
				}
			}
		})
	}
}
