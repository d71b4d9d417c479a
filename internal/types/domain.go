package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// Sentence represents a Kreyòl practice sentence.
type Sentence struct {
	ID                 int    `json:"id"`
	KreyolText         string `json:"kreyolText"`
	EnglishTranslation string `json:"englishTranslation"`
	Category           string `json:"category,omitempty"`
	DifficultyLevel    int    `json:"difficultyLevel"`
	AudioURL           string `json:"audioUrl,omitempty"`
}

// Contribution represents an audio recording submitted for a sentence.
// RejectionReason is set iff the contribution was rejected.
type Contribution struct {
	ID              int    `json:"id"`
	KreyolText      string `json:"kreyolText"`
	AudioURL        string `json:"audioUrl"`
	Email           string `json:"email,omitempty"`
	Gender          string `json:"gender,omitempty"`
	Region          string `json:"region,omitempty"`
	IsApproved      bool   `json:"isApproved"`
	RejectionReason string `json:"rejectionReason,omitempty"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

// Contributor is one row of the leaderboard.
type Contributor struct {
	Email             string `json:"email"`
	ContributionCount int    `json:"contributionCount"`
	Rank              int    `json:"rank"`
	Gender            string `json:"gender,omitempty"`
	Region            string `json:"region,omitempty"`
}

// Statistics holds platform-wide usage totals.
type Statistics struct {
	TotalContributions int     `json:"totalContributions"`
	UniqueContributors int     `json:"uniqueContributors"`
	TotalAudioHours    float64 `json:"totalAudioHours"`
}

// AIPhrase is a generated practice phrase.
type AIPhrase struct {
	Phrase             string `json:"phrase"`
	EnglishTranslation string `json:"englishTranslation"`
	Category           string `json:"category,omitempty"`
	DifficultyLevel    int    `json:"difficultyLevel,omitempty"`
	WordCount          int    `json:"wordCount"`
}

// ------------------------------
// Moderation
// ------------------------------

// ModerationFilter selects one bucket of the client-side moderation
// partition.
type ModerationFilter string

const (
	FilterPending  ModerationFilter = "pending"
	FilterApproved ModerationFilter = "approved"
	FilterRejected ModerationFilter = "rejected"
)

// ClassifyContribution maps a contribution to its moderation bucket.
// The mapping is exhaustive and disjoint: approved iff IsApproved, rejected
// iff not approved with a rejection reason, pending otherwise.
func ClassifyContribution(c Contribution) ModerationFilter {
	switch {
	case c.IsApproved:
		return FilterApproved
	case c.RejectionReason != "":
		return FilterRejected
	default:
		return FilterPending
	}
}

// PartitionContributions returns the contributions whose bucket matches
// filter, preserving input order.
func PartitionContributions(items []Contribution, filter ModerationFilter) []Contribution {
	out := make([]Contribution, 0, len(items))
	for _, c := range items {
		if ClassifyContribution(c) == filter {
			out = append(out, c)
		}
	}
	return out
}
