package utils

import (
	"os"
	"strconv"
	"time"
)

// FetchConfig holds the process-wide settings for outbound API calls.
// Defaults point at the public dog.ceo and kinduff APIs; every field can be
// overridden via environment so tests and demos can substitute endpoints.
type FetchConfig struct {
	BreedsBaseURL string
	FactsBaseURL  string
	UserAgent     string
	Timeout       time.Duration
	FactBatch     int
}

func LoadFetchConfig() FetchConfig {
	cfg := FetchConfig{
		BreedsBaseURL: "https://dog.ceo",
		FactsBaseURL:  "https://dog-api.kinduff.com",
		UserAgent:     "PetCal-Web/1.3 (GET-only)",
		Timeout:       12 * time.Second,
		FactBatch:     200,
	}

	if v := os.Getenv("DOGHUB_BREEDS_URL"); v != "" {
		cfg.BreedsBaseURL = v
	}
	if v := os.Getenv("DOGHUB_FACTS_URL"); v != "" {
		cfg.FactsBaseURL = v
	}
	if v := os.Getenv("DOGHUB_USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}

	// simple parse: seconds
	// if parse fails, keep the default
	if v := os.Getenv("DOGHUB_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Timeout = time.Duration(n) * time.Second
		}
	}
	if v := os.Getenv("DOGHUB_FACT_BATCH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.FactBatch = n
		}
	}

	return cfg
}

type ServerConfig struct {
	Addr string
}

func LoadServerConfig() ServerConfig {
	addr := os.Getenv("DOGHUB_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return ServerConfig{Addr: addr}
}
