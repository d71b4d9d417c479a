package types

import "encoding/json"

// ------------------------------
// Response Types
// ------------------------------

// ContributionPage mirrors the paginated list endpoint response.
type ContributionPage struct {
	Items      []Contribution `json:"items"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	TotalItems int            `json:"totalItems"`
	TotalPages int            `json:"totalPages"`
}

// Eligibility is derived client-side from a contributor's count against the
// two fixed prize thresholds. It is never persisted.
type Eligibility struct {
	Eligible          bool `json:"eligible"`
	ContributionCount int  `json:"contributionCount"`
	TShirtEligible    bool `json:"tshirtEligible"`
	LaptopEligible    bool `json:"laptopEligible"`
}

// ProbeResult is one entry of a connection diagnostic report.
type ProbeResult struct {
	Name   string          `json:"name"`
	URL    string          `json:"url"`
	Status int             `json:"status,omitempty"`
	OK     bool            `json:"ok"`
	Error  string          `json:"error,omitempty"`
	Body   json.RawMessage `json:"body,omitempty"`
}

// ConnectionReport aggregates the diagnostic probes. A failing probe never
// prevents the others from running.
type ConnectionReport struct {
	Probes []ProbeResult `json:"probes"`
}

// Healthy reports whether every probe succeeded.
func (r *ConnectionReport) Healthy() bool {
	for _, p := range r.Probes {
		if !p.OK {
			return false
		}
	}
	return len(r.Probes) > 0
}
