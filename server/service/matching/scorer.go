package matching

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/barterhub/barterhub/store"
)

// Scoring signal weights. The fixed rule set is intentionally simple and
// auditable; each constant bounds one independent, non-negative signal.
const (
	preferredCategoryBonus  = 20.0
	preferredConditionBonus = 10.0
	tagMatchBonus           = 5.0
	tagBonusCap             = 10.0
	popularityBonusCap      = 15.0
	rarityBonusCap          = 15.0
	locationBonus           = 10.0
	historyKeywordBonus     = 5.0
	historyBonusCap         = 20.0

	// popularityScale normalizes raw popularity scores before weighting.
	popularityScale = 100.0

	// minKeywordLen drops articles and short noise tokens from keyword matching.
	minKeywordLen = 3
)

// Reason type tags, in fixed evaluation order.
const (
	reasonCategory   = "category"
	reasonCondition  = "condition"
	reasonTags       = "tags"
	reasonPopularity = "popularity"
	reasonRarity     = "rarity"
	reasonLocation   = "location"
	reasonHistory    = "history"
)

// scoreCandidates evaluates every candidate against the user's preferences and
// exchange history. Candidates resembling a past trade are dropped outright, as
// are candidates whose rounded score is not positive. The result is sorted by
// score descending; the sort is stable so ties keep the pool's
// popularity-descending order.
func scoreCandidates(candidates []*store.Item, preferences *store.UserPreferences, exchanges []*store.Exchange) []*Recommendation {
	categoryCounts := make(map[string]int, len(candidates))
	for _, item := range candidates {
		categoryCounts[item.Category]++
	}
	totalCount := len(candidates)

	recommendations := make([]*Recommendation, 0, len(candidates))
	for _, item := range candidates {
		if matchesExchangeHistory(item.Title, exchanges) {
			continue
		}

		reasons := []Reason{}
		sum := 0.0

		if preferences != nil && containsString(preferences.PreferredCategories, item.Category) {
			reasons = append(reasons, Reason{
				Type:        reasonCategory,
				Score:       preferredCategoryBonus,
				Description: fmt.Sprintf("Matches your preferred category %s", item.Category),
			})
			sum += preferredCategoryBonus
		}

		if preferences != nil && containsString(preferences.PreferredConditions, item.Condition) {
			reasons = append(reasons, Reason{
				Type:        reasonCondition,
				Score:       preferredConditionBonus,
				Description: fmt.Sprintf("Condition %s matches your preference", item.Condition),
			})
			sum += preferredConditionBonus
		}

		if preferences != nil && len(preferences.PreferredCategories) > 0 {
			if matchCount := countTagMatches(item.Tags, preferences.PreferredCategories); matchCount > 0 {
				bonus := math.Min(tagMatchBonus*float64(matchCount), tagBonusCap)
				reasons = append(reasons, Reason{
					Type:        reasonTags,
					Score:       bonus,
					Description: fmt.Sprintf("%d tag(s) overlap with your interests", matchCount),
				})
				sum += bonus
			}
		}

		if item.PopularityScore > 0 {
			bonus := math.Min(item.PopularityScore/popularityScale*popularityBonusCap, popularityBonusCap)
			reasons = append(reasons, Reason{
				Type:        reasonPopularity,
				Score:       bonus,
				Description: "Popular with other members",
			})
			sum += bonus
		}

		if bonus := rarityBonus(categoryCounts[item.Category], totalCount); bonus > 0 {
			reasons = append(reasons, Reason{
				Type:        reasonRarity,
				Score:       bonus,
				Description: fmt.Sprintf("Rare find in %s", item.Category),
			})
			sum += bonus
		}

		if preferences != nil && preferences.Country != "" && preferences.Country == item.OwnerCountry {
			reasons = append(reasons, Reason{
				Type:        reasonLocation,
				Score:       locationBonus,
				Description: "Owner is in your country",
			})
			sum += locationBonus
		}

		if bonus := historyAffinityBonus(item, exchanges); bonus > 0 {
			reasons = append(reasons, Reason{
				Type:        reasonHistory,
				Score:       bonus,
				Description: "Similar to items from your past exchanges",
			})
			sum += bonus
		}

		// Rounded once at the end; per-signal contributions stay unrounded
		// except rarity, which carries one decimal by definition.
		score := int(math.Round(sum))
		if score <= 0 {
			continue
		}

		recommendations = append(recommendations, &Recommendation{
			Item: RecommendedItem{
				ID:               item.ID,
				UID:              item.UID,
				Title:            item.Title,
				Description:      item.Description,
				Category:         item.Category,
				Condition:        item.Condition,
				Tags:             item.Tags,
				Photos:           item.Photos,
				PopularityScore:  item.PopularityScore,
				OwnerID:          item.OwnerID,
				OwnerUID:         item.OwnerUID,
				OwnerDisplayName: item.OwnerDisplayName,
				OwnerCountry:     item.OwnerCountry,
				CreatedTs:        item.CreatedTs,
			},
			Score:   score,
			Reasons: reasons,
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})

	return recommendations
}

// matchesExchangeHistory reports whether the candidate title resembles either
// side of any past exchange: a case-insensitive substring match in either
// direction drops the candidate regardless of score.
func matchesExchangeHistory(title string, exchanges []*store.Exchange) bool {
	candidate := strings.ToLower(strings.TrimSpace(title))
	if candidate == "" {
		return false
	}
	for _, exchange := range exchanges {
		for _, past := range []string{exchange.RequestedItemTitle, exchange.OfferedItemTitle} {
			past = strings.ToLower(strings.TrimSpace(past))
			if past == "" {
				continue
			}
			if strings.Contains(past, candidate) || strings.Contains(candidate, past) {
				return true
			}
		}
	}
	return false
}

// countTagMatches counts tags that substring-overlap a preferred category,
// case-insensitive in either direction.
func countTagMatches(tags []string, preferredCategories []string) int {
	count := 0
	for _, tag := range tags {
		tag = strings.ToLower(tag)
		if tag == "" {
			continue
		}
		for _, category := range preferredCategories {
			category = strings.ToLower(category)
			if category == "" {
				continue
			}
			if strings.Contains(tag, category) || strings.Contains(category, tag) {
				count++
				break
			}
		}
	}
	return count
}

// rarityBonus rewards categories that are underrepresented in the candidate
// pool. The contribution is rounded to one decimal before entering the sum.
func rarityBonus(categoryCount, totalCount int) float64 {
	if totalCount == 0 {
		return 0
	}
	frequency := float64(categoryCount) / float64(totalCount)
	bonus := (1 - frequency) * rarityBonusCap
	if bonus < 0 {
		return 0
	}
	return math.Round(bonus*10) / 10
}

// historyAffinityBonus rewards keyword overlap between the candidate and past
// exchange titles: historyKeywordBonus per shared keyword, capped per record
// and capped again at historyBonusCap overall.
func historyAffinityBonus(item *store.Item, exchanges []*store.Exchange) float64 {
	keywords := tokenizeKeywords(item.Category + " " + item.Title)
	if len(keywords) == 0 {
		return 0
	}

	total := 0.0
	for _, exchange := range exchanges {
		pastKeywords := tokenizeKeywords(exchange.RequestedItemTitle + " " + exchange.OfferedItemTitle)
		if len(pastKeywords) == 0 {
			continue
		}
		shared := 0
		for keyword := range keywords {
			if _, ok := pastKeywords[keyword]; ok {
				shared++
			}
		}
		if shared > 0 {
			total += math.Min(historyKeywordBonus*float64(shared), historyBonusCap)
		}
	}
	return math.Min(total, historyBonusCap)
}

// tokenizeKeywords lowercases the text, splits on non-alphanumeric runs, and
// keeps tokens of at least minKeywordLen characters.
func tokenizeKeywords(text string) map[string]struct{} {
	tokens := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	})
	keywords := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		if len(token) >= minKeywordLen {
			keywords[token] = struct{}{}
		}
	}
	return keywords
}

func containsString(list []string, target string) bool {
	for _, v := range list {
		if v == target {
			return true
		}
	}
	return false
}
