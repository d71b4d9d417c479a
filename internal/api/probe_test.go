package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestProbe_SuccessCapturesJSONBody(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"totalContributions":12}`))
	}))
	defer srv.Close()

	got := Probe(context.Background(), srv.Client(), "statistics", srv.URL+"/statistics")
	if !got.OK || got.Status != http.StatusOK || got.Error != "" {
		t.Fatalf("unexpected result %+v", got)
	}
	if string(got.Body) != `{"totalContributions":12}` {
		t.Fatalf("body not captured: %q", got.Body)
	}
}

func TestProbe_NonJSONBodyDropped(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("plain text, not json"))
	}))
	defer srv.Close()

	got := Probe(context.Background(), srv.Client(), "statistics", srv.URL)
	if !got.OK {
		t.Fatalf("probe should succeed: %+v", got)
	}
	if got.Body != nil {
		t.Fatalf("non-JSON body should be dropped, got %q", got.Body)
	}
}

func TestProbe_HTTPFailureCaptured(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "database unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	got := Probe(context.Background(), srv.Client(), "contributions", srv.URL)
	if got.OK {
		t.Fatal("probe should not report OK on 503")
	}
	if got.Status != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", got.Status)
	}
	if !strings.Contains(got.Error, "database unavailable") {
		t.Fatalf("error should carry server text: %q", got.Error)
	}
}

func TestProbe_TransportFailureCaptured(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	got := Probe(context.Background(), http.DefaultClient, "sentences", srv.URL)
	if got.OK || got.Error == "" {
		t.Fatalf("transport failure should surface in result, got %+v", got)
	}
}

func TestConnectionProbes_CoversAllEndpoints(t *testing.T) {
	t.Parallel()
	probes := ConnectionProbes("http://api.example.com/api")
	if len(probes) != 4 {
		t.Fatalf("expected 4 probes, got %d", len(probes))
	}
	wantPaths := map[string]string{
		"statistics":    "/api/statistics",
		"contributions": "/api/contributions",
		"sentences":     "/api/sentences/random",
		"ai":            "/api/ai/random-phrase",
	}
	for _, p := range probes {
		want, ok := wantPaths[p.Name]
		if !ok {
			t.Errorf("unexpected probe %q", p.Name)
			continue
		}
		if !strings.Contains(p.URL, want) {
			t.Errorf("probe %q URL %q does not hit %q", p.Name, p.URL, want)
		}
	}
}
