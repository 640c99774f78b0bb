package facts

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"doghub/internal/fetch"
)

// Source pulls a batch of random dog facts from the kinduff API.
type Source struct {
	BaseURL string
	Batch   int // facts per request (?number=...)
	Client  *fetch.Client
}

func NewSource(baseURL string, batch int, client *fetch.Client) *Source {
	return &Source{BaseURL: baseURL, Batch: batch, Client: client}
}

func (s *Source) Name() string { return "kinduff" }

type factsResponse struct {
	Facts   []any `json:"facts"` // unstructured trivia, elements of unknown type
	Success bool  `json:"success"`
}

// Fetch requests one batch of facts and returns the string elements in
// response order. Non-string elements are discarded.
func (s *Source) Fetch(ctx context.Context) ([]string, error) {
	u, _ := url.Parse(s.BaseURL + "/api/facts")
	q := u.Query()
	q.Set("number", strconv.Itoa(s.Batch))
	u.RawQuery = q.Encode()

	var body factsResponse
	if err := s.Client.GetJSON(ctx, u.String(), &body); err != nil {
		return nil, fmt.Errorf("facts: %w", err)
	}

	out := make([]string, 0, len(body.Facts))
	for _, f := range body.Facts {
		if v, ok := f.(string); ok {
			out = append(out, v)
		}
	}
	return out, nil
}
