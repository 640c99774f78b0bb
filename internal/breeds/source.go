package breeds

import (
	"context"
	"fmt"
	"sort"

	"doghub/internal/fetch"
)

// Source fetches the breed taxonomy from the dog.ceo API and flattens it
// into category strings.
type Source struct {
	BaseURL string
	Client  *fetch.Client
}

func NewSource(baseURL string, client *fetch.Client) *Source {
	return &Source{BaseURL: baseURL, Client: client}
}

func (s *Source) Name() string { return "dog.ceo" }

type listResponse struct {
	Message map[string][]string `json:"message"` // {breed: [subbreeds]}
	Status  string              `json:"status"`
}

// Categories fetches the full breeds list and flattens it. A response
// without the expected message field yields an empty list, not an error.
func (s *Source) Categories(ctx context.Context) ([]string, error) {
	var body listResponse
	if err := s.Client.GetJSON(ctx, s.BaseURL+"/api/breeds/list/all", &body); err != nil {
		return nil, fmt.Errorf("breeds: %w", err)
	}
	return Flatten(body.Message), nil
}

// Flatten turns the breed→sub-breed document into sorted category strings:
// one "breed-subbreed" per sub-breed, or the bare breed name when it has
// none. Example: "retriever-golden", "bulldog-english", or just "akita".
// Breed and sub-breed strings are taken as-is, no trimming or case-folding.
func Flatten(doc map[string][]string) []string {
	if len(doc) == 0 {
		return nil
	}

	categories := make([]string, 0, len(doc))
	for breed, subs := range doc {
		if len(subs) == 0 {
			categories = append(categories, breed)
			continue
		}
		for _, sub := range subs {
			categories = append(categories, breed+"-"+sub)
		}
	}
	sort.Strings(categories)
	return categories
}
