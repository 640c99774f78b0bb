package facts

import "strings"

// ClassifiedFacts holds the three mutually exclusive fact buckets. Each fact
// appears in at most one bucket, in its original relative order.
type ClassifiedFacts struct {
	GoodFoods    []string `json:"good_foods"`
	AvoidFoods   []string `json:"avoid_foods"`
	CalorieFacts []string `json:"calorie_facts"`
}

// Dedup trims each fact, drops empties, and keeps the first occurrence of
// each distinct fact in its original order.
func Dedup(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, f := range raw {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}

// Classifier assigns facts to buckets by keyword matching. Matching is a
// case-insensitive substring scan, so a short term can land inside an
// unrelated word ("tea" inside "steak"); that over-matching is accepted
// best-effort behavior, not a bug to guard against.
type Classifier struct {
	CalorieTerms []string
	AvoidTerms   []string
	GoodTerms    []string
}

// DefaultClassifier returns the stock keyword lists. Broad on purpose.
func DefaultClassifier() Classifier {
	return Classifier{
		CalorieTerms: []string{"calorie", "calories", "kcal", "energy", "metabolic"},
		AvoidTerms: []string{
			"chocolate", "cocoa", "grape", "grapes", "raisin", "raisins",
			"onion", "onions", "garlic", "xylitol", "alcohol", "beer", "wine",
			"coffee", "caffeine", "tea", "macadamia", "nutmeg", "yeast dough",
			"raw dough", "raw bread", "avocado",
		},
		GoodTerms: []string{
			"chicken", "turkey", "beef", "lamb", "fish", "salmon", "tuna",
			"rice", "brown rice", "oats", "oatmeal", "pumpkin", "carrot",
			"carrots", "apple", "apples", "blueberries", "peanut butter",
			"sweet potato", "yogurt",
		},
	}
}

// Classify puts each fact into at most one bucket, testing calorie terms
// first, then avoid, then good. First match wins; facts matching nothing
// are dropped entirely.
func (c Classifier) Classify(facts []string) ClassifiedFacts {
	var out ClassifiedFacts
	for _, fact := range facts {
		low := strings.ToLower(fact)
		switch {
		case matchesAny(low, c.CalorieTerms):
			out.CalorieFacts = append(out.CalorieFacts, fact)
		case matchesAny(low, c.AvoidTerms):
			out.AvoidFoods = append(out.AvoidFoods, fact)
		case matchesAny(low, c.GoodTerms):
			out.GoodFoods = append(out.GoodFoods, fact)
		}
	}
	return out
}

func matchesAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
