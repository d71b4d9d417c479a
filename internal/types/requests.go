package types

import "io"

// ------------------------------
// Request Types
// ------------------------------

// SubmitContributionRequest holds parameters for a new audio contribution.
// Audio is read in full when the multipart body is built; AudioMIME is the
// declared media type of the recording (e.g. "audio/webm").
type SubmitContributionRequest struct {
	KreyolText string
	Audio      io.Reader
	AudioMIME  string
	Email      string
	Gender     string
	Region     string
}

// ModerationRequest is the PATCH body for contribution approval.
type ModerationRequest struct {
	Approved        bool   `json:"approved"`
	RejectionReason string `json:"rejectionReason,omitempty"`
}

// ListContributionsOptions selects a page of contributions.
// Zero values fall back to page 1, page size 20, approved only.
type ListContributionsOptions struct {
	Page              int
	PageSize          int
	IncludeUnapproved bool
}

// Normalize applies the documented defaults.
func (o ListContributionsOptions) Normalize() ListContributionsOptions {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.PageSize < 1 {
		o.PageSize = 20
	}
	return o
}

// PhraseOptions are the optional filters shared by the AI phrase endpoints.
// Zero-valued fields are omitted from the query string.
type PhraseOptions struct {
	Category        string
	DifficultyLevel int
	MinWords        int
	MaxWords        int
}
