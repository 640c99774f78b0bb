package digest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(agg *Aggregator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(agg, nil).RegisterRoutes(router.Group("/digest"))
	return router
}

func TestHandlerGet_FullDigest(t *testing.T) {
	agg := newTestAggregator(t, serveJSON(breedsBody), serveJSON(factsBody))
	router := newTestRouter(agg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/digest", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		RunID  string          `json:"run_id"`
		Keys   []string        `json:"keys"`
		Digest json.RawMessage `json:"digest"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.RunID == "" {
		t.Fatalf("expected run_id in response")
	}
	if len(resp.Keys) != 4 {
		t.Fatalf("expected 4 keys, got %v", resp.Keys)
	}
	if !strings.Contains(string(resp.Digest), "dog_categories") {
		t.Fatalf("digest body missing categories: %s", resp.Digest)
	}
}

func TestHandlerGet_OmitsEmptyKeys(t *testing.T) {
	agg := newTestAggregator(t, serveJSON(breedsBody), serveError)
	router := newTestRouter(agg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/digest", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 even with a failed source, got %d", w.Code)
	}

	body := w.Body.String()
	for _, absent := range []string{"good_foods", "avoid_foods", "calorie_facts"} {
		if strings.Contains(body, absent) {
			t.Fatalf("empty key %q must be omitted, body: %s", absent, body)
		}
	}
}

func TestHandlerGet_TotalFailure(t *testing.T) {
	agg := newTestAggregator(t, serveError, serveError)
	router := newTestRouter(agg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/digest", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("total upstream failure is not an API error, got %d", w.Code)
	}

	var resp struct {
		Keys []string `json:"keys"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp.Keys) != 0 {
		t.Fatalf("expected empty key list, got %v", resp.Keys)
	}
}

func TestHandlerKeys(t *testing.T) {
	agg := newTestAggregator(t, serveJSON(breedsBody), serveError)
	router := newTestRouter(agg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/digest/keys", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		RunID string   `json:"run_id"`
		Keys  []string `json:"keys"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp.Keys) != 1 || resp.Keys[0] != "dog_categories" {
		t.Fatalf("expected [dog_categories], got %v", resp.Keys)
	}
}
