package client

import "github.com/palefo/client-go/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Domain entities
	Sentence     = types.Sentence
	Contribution = types.Contribution
	Contributor  = types.Contributor
	Statistics   = types.Statistics
	AIPhrase     = types.AIPhrase

	// Requests
	SubmitContributionRequest = types.SubmitContributionRequest
	ModerationRequest         = types.ModerationRequest
	ListContributionsOptions  = types.ListContributionsOptions
	PhraseOptions             = types.PhraseOptions

	// Responses
	ContributionPage = types.ContributionPage
	Eligibility      = types.Eligibility
	ProbeResult      = types.ProbeResult
	ConnectionReport = types.ConnectionReport

	// Moderation
	ModerationFilter = types.ModerationFilter
)

// Moderation filter values.
const (
	FilterPending  = types.FilterPending
	FilterApproved = types.FilterApproved
	FilterRejected = types.FilterRejected
)

// Prize thresholds, in contributions.
const (
	TShirtThreshold = types.TShirtThreshold
	LaptopThreshold = types.LaptopThreshold
)

// AudioExtension infers the upload file extension from a declared media
// type: mpeg/mp3 map to "mp3", webm to "webm", anything else defaults to
// "wav".
func AudioExtension(mimeType string) string { return types.AudioExtension(mimeType) }

func validDifficulty(level int) bool { return types.ValidDifficulty(level) }
