package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/palefo/client-go/internal/apierr"
	"github.com/palefo/client-go/internal/types"
)

func TestGetStatistics_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/statistics" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(types.Statistics{
			TotalContributions: 1234,
			UniqueContributors: 56,
			TotalAudioHours:    7.5,
		})
	}))
	defer srv.Close()

	got, err := GetStatistics(context.Background(), srv.Client(), srv.URL)
	if err != nil {
		t.Fatalf("GetStatistics error: %v", err)
	}
	if got.TotalContributions != 1234 || got.TotalAudioHours != 7.5 {
		t.Fatalf("unexpected statistics %+v", got)
	}
}

func TestTopContributors_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/contributors/top" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if got := r.URL.Query().Get("limit"); got != "3" {
			t.Errorf("limit = %q", got)
		}
		_ = json.NewEncoder(w).Encode([]types.Contributor{
			{Email: "a@example.com", ContributionCount: 1500, Rank: 1},
			{Email: "b@example.com", ContributionCount: 900, Rank: 2},
		})
	}))
	defer srv.Close()

	got, err := TopContributors(context.Background(), srv.Client(), srv.URL, 3)
	if err != nil {
		t.Fatalf("TopContributors error: %v", err)
	}
	if len(got) != 2 || got[0].Rank != 1 {
		t.Fatalf("unexpected leaderboard %+v", got)
	}
}

func TestGetStatistics_ServerError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream timeout", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := GetStatistics(context.Background(), srv.Client(), srv.URL)
	he, ok := apierr.IsHTTP(err)
	if !ok || he.StatusCode != http.StatusBadGateway || he.Category != apierr.Recoverable {
		t.Fatalf("expected recoverable HTTPError, got %v", err)
	}
}
