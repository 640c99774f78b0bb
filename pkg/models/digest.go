package models

// Digest is the aggregated dog-trivia bundle assembled from the upstream
// APIs. A field is present in the JSON encoding only when its slice is
// non-empty; callers must treat every key as optional. There is no
// calorie_needs_by_category field because no upstream provides that data.
type Digest struct {
	DogCategories []string `json:"dog_categories,omitempty"` // sorted breed / breed-subbreed strings
	GoodFoods     []string `json:"good_foods,omitempty"`     // facts about likely-okay foods
	AvoidFoods    []string `json:"avoid_foods,omitempty"`    // facts about toxic/unsafe foods
	CalorieFacts  []string `json:"calorie_facts,omitempty"`  // facts mentioning calories/energy
}

// Keys lists the present keys in presentation order.
func (d Digest) Keys() []string {
	keys := make([]string, 0, 4)
	if len(d.DogCategories) > 0 {
		keys = append(keys, "dog_categories")
	}
	if len(d.GoodFoods) > 0 {
		keys = append(keys, "good_foods")
	}
	if len(d.AvoidFoods) > 0 {
		keys = append(keys, "avoid_foods")
	}
	if len(d.CalorieFacts) > 0 {
		keys = append(keys, "calorie_facts")
	}
	return keys
}

// IsEmpty reports whether no data source produced anything.
func (d Digest) IsEmpty() bool {
	return len(d.DogCategories) == 0 &&
		len(d.GoodFoods) == 0 &&
		len(d.AvoidFoods) == 0 &&
		len(d.CalorieFacts) == 0
}
