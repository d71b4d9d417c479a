package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/google/uuid"

	"github.com/palefo/client-go/internal/apierr"
	"github.com/palefo/client-go/internal/types"
)

// ListContributions fetches one page of contributions.
func ListContributions(ctx context.Context, httpClient HTTPClient, baseURL string, opts types.ListContributionsOptions) (*types.ContributionPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts = opts.Normalize()
	u := fmt.Sprintf("%s/contributions?page=%d&pageSize=%d&includeUnapproved=%t",
		baseURL, opts.Page, opts.PageSize, opts.IncludeUnapproved)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, apierr.NewNetwork("list contributions", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if !ok(resp) {
		return nil, apierr.FromResponse("list contributions", resp)
	}

	var page types.ContributionPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetContribution retrieves a single contribution by ID.
func GetContribution(ctx context.Context, httpClient HTTPClient, baseURL string, id int) (*types.Contribution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/contributions/%d", baseURL, id)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, apierr.NewNetwork("get contribution", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if !ok(resp) {
		return nil, apierr.FromResponse("get contribution", resp)
	}

	var c types.Contribution
	if err := json.NewDecoder(resp.Body).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// SubmitContribution posts a new audio contribution as a multipart form.
// The audio payload must be non-empty; the upload filename extension is
// inferred from the declared media type.
func SubmitContribution(ctx context.Context, httpClient HTTPClient, baseURL string, req types.SubmitContributionRequest) (*types.Contribution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.Audio == nil {
		return nil, apierr.NewValidation("AudioFile", "audio payload is required")
	}
	audio, err := io.ReadAll(req.Audio)
	if err != nil {
		return nil, err
	}
	if len(audio) == 0 {
		return nil, apierr.NewValidation("AudioFile", "audio payload is empty")
	}

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	if err := mw.WriteField("KreyòlText", req.KreyolText); err != nil {
		return nil, err
	}

	ext := types.AudioExtension(req.AudioMIME)
	mime := req.AudioMIME
	if mime == "" {
		mime = "audio/wav"
	}
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="AudioFile"; filename="recording-%s.%s"`, uuid.NewString(), ext))
	hdr.Set("Content-Type", mime)
	part, err := mw.CreatePart(hdr)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(audio); err != nil {
		return nil, err
	}

	optional := map[string]string{"Email": req.Email, "Gender": req.Gender, "Region": req.Region}
	for field, value := range optional {
		if value == "" {
			continue
		}
		if err := mw.WriteField(field, value); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s/contributions", baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, apierr.NewNetwork("submit contribution", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if !ok(resp) {
		return nil, apierr.FromResponse("submit contribution", resp)
	}

	var created types.Contribution
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ModerateContribution issues a partial update of the approval state.
// A rejection requires a reason; that is validated by the caller.
func ModerateContribution(ctx context.Context, httpClient HTTPClient, baseURL string, id int, req types.ModerationRequest) (*types.Contribution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/contributions/%d/approval", baseURL, id)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPatch, u, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, apierr.NewNetwork("moderate contribution", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if !ok(resp) {
		return nil, apierr.FromResponse("moderate contribution", resp)
	}

	var updated types.Contribution
	if err := json.NewDecoder(resp.Body).Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
