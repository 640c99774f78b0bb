package digest

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"doghub/internal/breeds"
	"doghub/internal/facts"
	"doghub/pkg/models"
)

// Aggregator coordinates the two independent fetch paths and assembles the
// final digest. A failed source never aborts the pass; its keys are simply
// absent from the result.
type Aggregator struct {
	Breeds     *breeds.Source
	Facts      *facts.Source
	Classifier facts.Classifier
}

func NewAggregator(breedsSrc *breeds.Source, factsSrc *facts.Source) *Aggregator {
	return &Aggregator{
		Breeds:     breedsSrc,
		Facts:      factsSrc,
		Classifier: facts.DefaultClassifier(),
	}
}

// Snapshot is one completed aggregation pass.
type Snapshot struct {
	RunID     string        `json:"run_id"`
	FetchedAt time.Time     `json:"fetched_at"`
	Digest    models.Digest `json:"digest"`
}

// Gather runs both fetches concurrently and builds the digest containing
// only non-empty keys. It never fails: the worst case is an empty digest.
func (a *Aggregator) Gather(ctx context.Context) Snapshot {
	var (
		wg         sync.WaitGroup
		categories []string
		rawFacts   []string
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		cats, err := a.Breeds.Categories(ctx)
		if err != nil {
			// keep going: one broken source should not kill the whole pass
			log.Printf("[digest] source %s error: %v", a.Breeds.Name(), err)
			return
		}
		categories = cats
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		raw, err := a.Facts.Fetch(ctx)
		if err != nil {
			log.Printf("[digest] source %s error: %v", a.Facts.Name(), err)
			return
		}
		rawFacts = raw
	}()

	wg.Wait()

	var d models.Digest
	if len(categories) > 0 {
		d.DogCategories = categories
	}

	classified := a.Classifier.Classify(facts.Dedup(rawFacts))
	if len(classified.GoodFoods) > 0 {
		d.GoodFoods = classified.GoodFoods
	}
	if len(classified.AvoidFoods) > 0 {
		d.AvoidFoods = classified.AvoidFoods
	}
	if len(classified.CalorieFacts) > 0 {
		d.CalorieFacts = classified.CalorieFacts
	}

	return Snapshot{
		RunID:     uuid.NewString(),
		FetchedAt: time.Now().UTC(),
		Digest:    d,
	}
}
