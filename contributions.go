package client

import (
	"context"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/palefo/client-go/internal/api"
	"github.com/palefo/client-go/internal/apierr"
	"github.com/palefo/client-go/internal/types"
)

// fallbackMarker is the substring a failed contribution-list error must
// contain to trigger the one-shot fallback switch-over. HTTPError messages
// carry it; transport errors do not, so network outages never flip the URL.
const fallbackMarker = "API error"

// blobStorageSuffix identifies audio URLs on the platform's remote blob
// storage; those are rewritten to go through the local relay path so the
// browser player is not blocked by cross-origin rules.
const blobStorageSuffix = ".blob.core.windows.net"

// Contributions fetches one page of contributions. Zero-valued options
// default to page 1, page size 20, approved only.
//
// Fallback policy: when the call fails with an API error and the client is
// still on its primary base URL, the client permanently switches to the
// fallback URL and retries the same call exactly once. A second failure
// propagates. The switch never reverts for the lifetime of the client.
func (c *Client) Contributions(ctx context.Context, opts ListContributionsOptions) (*ContributionPage, error) {
	done := c.begin()
	defer done()

	page, err := api.ListContributions(ctx, c.http, c.BaseURL(), opts)
	if err != nil && strings.Contains(err.Error(), fallbackMarker) {
		if c.switchToFallback() {
			fallbackSwitchesTotal.Inc()
			log.Warn().
				Str("fallback_url", c.BaseURL()).
				Msg("API error on primary endpoint, switching to fallback URL")
			page, err = api.ListContributions(ctx, c.http, c.BaseURL(), opts)
		}
	}
	c.observe("list_contributions", err)
	if err != nil {
		return nil, err
	}

	base := c.BaseURL()
	for i := range page.Items {
		page.Items[i].AudioURL = rewriteAudioURL(base, page.Items[i].AudioURL)
	}
	return page, nil
}

// ContributionByID retrieves a single contribution.
func (c *Client) ContributionByID(ctx context.Context, id int) (*Contribution, error) {
	done := c.begin()
	defer done()
	contribution, err := api.GetContribution(ctx, c.http, c.BaseURL(), id)
	c.observe("get_contribution", err)
	return contribution, err
}

// SubmitContribution uploads a new audio contribution. The audio payload
// must be non-empty; that is checked before any network I/O.
func (c *Client) SubmitContribution(ctx context.Context, req SubmitContributionRequest) (*Contribution, error) {
	done := c.begin()
	defer done()
	created, err := api.SubmitContribution(ctx, c.http, c.BaseURL(), req)
	c.observe("submit_contribution", err)
	return created, err
}

// ModerateContribution approves or rejects a contribution. Rejecting
// requires a reason.
func (c *Client) ModerateContribution(ctx context.Context, id int, approved bool, rejectionReason string) (*Contribution, error) {
	if !approved && strings.TrimSpace(rejectionReason) == "" {
		return nil, apierr.NewValidation("rejectionReason", "a rejection reason is required when rejecting")
	}
	done := c.begin()
	defer done()
	updated, err := api.ModerateContribution(ctx, c.http, c.BaseURL(), id, ModerationRequest{
		Approved:        approved,
		RejectionReason: rejectionReason,
	})
	c.observe("moderate_contribution", err)
	return updated, err
}

// ContributionsForModeration fetches a page including unapproved items and
// partitions it client-side into the requested moderation bucket. An empty
// filter defaults to pending.
func (c *Client) ContributionsForModeration(ctx context.Context, page, pageSize int, filter ModerationFilter) ([]Contribution, error) {
	if filter == "" {
		filter = FilterPending
	}
	switch filter {
	case FilterPending, FilterApproved, FilterRejected:
	default:
		return nil, apierr.NewValidation("filter", "must be pending, approved or rejected")
	}

	result, err := c.Contributions(ctx, ListContributionsOptions{
		Page:              page,
		PageSize:          pageSize,
		IncludeUnapproved: true,
	})
	if err != nil {
		return nil, err
	}
	return types.PartitionContributions(result.Items, filter), nil
}

// CheckPrizeEligibility derives prize eligibility for a contributor. An
// empty email short-circuits to "not eligible" with zero network calls;
// otherwise the top 50 contributors are fetched and searched linearly.
func (c *Client) CheckPrizeEligibility(ctx context.Context, email string) (*Eligibility, error) {
	if email == "" {
		return &Eligibility{}, nil
	}

	contributors, err := c.TopContributors(ctx, 50)
	if err != nil {
		return nil, err
	}
	count := 0
	for _, contributor := range contributors {
		if contributor.Email == email {
			count = contributor.ContributionCount
			break
		}
	}
	eligibility := types.EligibilityFor(count)
	return &eligibility, nil
}

// rewriteAudioURL routes recognized remote blob-storage audio through the
// local relay path. Anything else is returned unchanged.
func rewriteAudioURL(baseURL, audioURL string) string {
	if audioURL == "" {
		return audioURL
	}
	u, err := url.Parse(audioURL)
	if err != nil || !strings.HasSuffix(u.Hostname(), blobStorageSuffix) {
		return audioURL
	}
	return baseURL + "/proxy-audio?url=" + url.QueryEscape(audioURL)
}
