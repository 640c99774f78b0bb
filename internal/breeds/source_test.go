package breeds

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"doghub/internal/fetch"
)

func testClient() *fetch.Client {
	return fetch.NewClient(5*time.Second, "doghub-test/1.0")
}

func TestFlatten_MixedSubBreeds(t *testing.T) {
	doc := map[string][]string{
		"akita":     {},
		"retriever": {"golden", "flat-coated"},
	}

	got := Flatten(doc)
	want := []string{"akita", "retriever-flat-coated", "retriever-golden"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFlatten_Sorted(t *testing.T) {
	doc := map[string][]string{
		"zebra-ish": {},
		"bulldog":   {"english", "french"},
		"akita":     nil,
	}

	got := Flatten(doc)
	want := []string{"akita", "bulldog-english", "bulldog-french", "zebra-ish"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFlatten_Empty(t *testing.T) {
	if got := Flatten(nil); len(got) != 0 {
		t.Fatalf("expected empty for nil doc, got %v", got)
	}
	if got := Flatten(map[string][]string{}); len(got) != 0 {
		t.Fatalf("expected empty for empty doc, got %v", got)
	}
}

func TestCategories_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/breeds/list/all" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"message":{"akita":[],"retriever":["golden","flat-coated"]},"status":"success"}`))
	}))
	defer server.Close()

	src := NewSource(server.URL, testClient())
	got, err := src.Categories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"akita", "retriever-flat-coated", "retriever-golden"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestCategories_MissingField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"success"}`))
	}))
	defer server.Close()

	src := NewSource(server.URL, testClient())
	got, err := src.Categories(context.Background())
	if err != nil {
		t.Fatalf("missing field should not be an error, got: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty categories, got %v", got)
	}
}

func TestCategories_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	src := NewSource(server.URL, testClient())
	_, err := src.Categories(context.Background())
	if err == nil {
		t.Fatalf("expected error on 503")
	}

	var fe *fetch.Error
	if !errors.As(err, &fe) || fe.Kind != fetch.KindStatus {
		t.Fatalf("expected wrapped fetch status error, got %v", err)
	}
}
