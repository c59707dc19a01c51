package fiber

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"item-stats-service/internal/dashboard/core/domain"
)

func TestSummaryClient_Fetch_Success(t *testing.T) {
	seen := make(chan *http.Request, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen <- r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`42`))
	}))
	defer srv.Close()

	client := NewSummaryClient(srv.URL, "tok", time.Second)

	body, err := client.Fetch(context.Background(), "/api/v1/items/completed-count")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(body) != "42" {
		t.Fatalf("expected body 42, got %q", string(body))
	}
	r := <-seen
	if r.URL.Path != "/api/v1/items/completed-count" {
		t.Errorf("unexpected path %s", r.URL.Path)
	}
	if got := r.Header.Get("Authorization"); got != "Bearer tok" {
		t.Errorf("expected bearer token, got %q", got)
	}
}

func TestSummaryClient_Fetch_NoTokenNoHeader(t *testing.T) {
	seen := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen <- r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"average_per_user": 2}`))
	}))
	defer srv.Close()

	client := NewSummaryClient(srv.URL, "", 0)

	if _, err := client.Fetch(context.Background(), "/api/v1/items/average_per_user"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := <-seen; got != "" {
		t.Errorf("expected no Authorization header, got %q", got)
	}
}

func TestSummaryClient_Fetch_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal_server_error"}`))
	}))
	defer srv.Close()

	client := NewSummaryClient(srv.URL, "", 0)

	body, err := client.Fetch(context.Background(), "/api/v1/items/completed-count")
	if !errors.Is(err, domain.ErrFetchFailure) {
		t.Fatalf("expected ErrFetchFailure, got %v", err)
	}
	if body != nil {
		t.Fatalf("expected nil body on failure")
	}
}

func TestSummaryClient_Fetch_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewSummaryClient(url, "", time.Second)

	_, err := client.Fetch(context.Background(), "/api/v1/items/completed-count")
	if !errors.Is(err, domain.ErrFetchFailure) {
		t.Fatalf("expected ErrFetchFailure, got %v", err)
	}
}
