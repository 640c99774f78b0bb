package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"doghub/internal/breeds"
	"doghub/internal/digest"
	"doghub/internal/facts"
	"doghub/internal/fetch"
	"doghub/pkg/utils"
)

func main() {
	cfg := utils.LoadFetchConfig()
	client := fetch.NewClient(cfg.Timeout, cfg.UserAgent)

	agg := digest.NewAggregator(
		breeds.NewSource(cfg.BreedsBaseURL, client),
		facts.NewSource(cfg.FactsBaseURL, cfg.FactBatch, client),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	snap := agg.Gather(ctx)

	keys := snap.Digest.Keys()
	if len(keys) == 0 {
		fmt.Println("Fetched keys: (none)")
		return
	}
	fmt.Printf("Fetched keys: %v\n", keys)

	printSample("dog_categories", snap.Digest.DogCategories, 10)
	printSample("good_foods", snap.Digest.GoodFoods, 5)
	printSample("avoid_foods", snap.Digest.AvoidFoods, 5)
	printSample("calorie_facts", snap.Digest.CalorieFacts, 5)
}

func printSample(key string, items []string, n int) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("\n=== %s (sample) ===\n", strings.ToUpper(key))
	if n > len(items) {
		n = len(items)
	}
	for _, v := range items[:n] {
		fmt.Println("-", v)
	}
}
