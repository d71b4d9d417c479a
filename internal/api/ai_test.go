package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/palefo/client-go/internal/types"
)

func TestPhraseQuery(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		opts types.PhraseOptions
		want string
	}{
		{"empty", types.PhraseOptions{}, ""},
		{"category only", types.PhraseOptions{Category: "food"}, "?category=food"},
		{"difficulty only", types.PhraseOptions{DifficultyLevel: 3}, "?difficultyLevel=3"},
		{"word bounds", types.PhraseOptions{MinWords: 3, MaxWords: 8}, "?maxWords=8&minWords=3"},
		{
			"all fields",
			types.PhraseOptions{Category: "greetings", DifficultyLevel: 2, MinWords: 2, MaxWords: 6},
			"?category=greetings&difficultyLevel=2&maxWords=6&minWords=2",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := phraseQuery(tc.opts); got != tc.want {
				t.Fatalf("phraseQuery(%+v) = %q, want %q", tc.opts, got, tc.want)
			}
		})
	}
}

func TestRandomPhrase_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ai/random-phrase" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if got := r.URL.Query().Get("category"); got != "market" {
			t.Errorf("category = %q", got)
		}
		_ = json.NewEncoder(w).Encode(types.AIPhrase{
			Phrase:             "Konbyen sa koute?",
			EnglishTranslation: "How much does this cost?",
			Category:           "market",
			DifficultyLevel:    2,
			WordCount:          3,
		})
	}))
	defer srv.Close()

	got, err := RandomPhrase(context.Background(), srv.Client(), srv.URL, types.PhraseOptions{Category: "market"})
	if err != nil {
		t.Fatalf("RandomPhrase error: %v", err)
	}
	if got.Phrase != "Konbyen sa koute?" || got.WordCount != 3 {
		t.Fatalf("unexpected phrase %+v", got)
	}
}

func TestGeminiPhrase_Path(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ai/gemini-phrase" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(types.AIPhrase{Phrase: "Mwen renmen diri"})
	}))
	defer srv.Close()

	got, err := GeminiPhrase(context.Background(), srv.Client(), srv.URL, types.PhraseOptions{})
	if err != nil || got.Phrase != "Mwen renmen diri" {
		t.Fatalf("GeminiPhrase got=%+v err=%v", got, err)
	}
}
