package types

import (
	"net/http"
	"strings"
)

// ------------------------------
// Shared Interfaces
// ------------------------------

// HTTPClient interface for dependency injection. Both *http.Client and the
// CORS relay collaborator satisfy it, so API operations stay relay-agnostic.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ------------------------------
// Pure derivations
// ------------------------------

// Prize thresholds, in contributions.
const (
	TShirtThreshold = 1000
	LaptopThreshold = 10000
)

// EligibilityFor derives prize eligibility from a contribution count.
func EligibilityFor(count int) Eligibility {
	return Eligibility{
		Eligible:          count >= TShirtThreshold,
		ContributionCount: count,
		TShirtEligible:    count >= TShirtThreshold,
		LaptopEligible:    count >= LaptopThreshold,
	}
}

// AudioExtension infers the upload file extension from a declared media
// type: mpeg/mp3 map to "mp3", webm to "webm", anything else (including an
// absent type) defaults to "wav".
func AudioExtension(mimeType string) string {
	mt := strings.ToLower(mimeType)
	switch {
	case strings.Contains(mt, "mpeg"), strings.Contains(mt, "mp3"):
		return "mp3"
	case strings.Contains(mt, "webm"):
		return "webm"
	default:
		return "wav"
	}
}

// ValidDifficulty reports whether level is within the 1..5 range the backend
// accepts.
func ValidDifficulty(level int) bool {
	return level >= 1 && level <= 5
}
