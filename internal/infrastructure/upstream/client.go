// Package upstream is the HTTP client for the authoritative marketplace
// backend. Shapes are consumed as used, not owned: the proposal list in
// particular is exposed under several endpoint and field-name conventions,
// and this package is the only place that knows about them.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"jobtalk/internal/domain/market"
	"jobtalk/internal/domain/proposal"
)

type CandidateQuery struct {
	Search         string
	Location       string
	License        string
	MinSuitability int
}

type Client interface {
	ActiveJobs(ctx context.Context) ([]market.Job, error)
	Candidates(ctx context.Context, q CandidateQuery) ([]market.Candidate, error)
	ProposalsByEmployer(ctx context.Context, employerID int64) ([]proposal.Record, error)
	CreateProposal(ctx context.Context, jobID, jobseekerID, employerID int64) error
	DeleteProposal(ctx context.Context, jobID, jobseekerID, employerID int64) error
}

type httpClient struct {
	baseURL string
	client  *http.Client
	logger  *log.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *log.Logger) Client {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *httpClient) ActiveJobs(ctx context.Context) ([]market.Job, error) {
	var jobs []market.Job
	if err := c.getJSON(ctx, "/api/jobs/active", nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (c *httpClient) Candidates(ctx context.Context, q CandidateQuery) ([]market.Candidate, error) {
	params := url.Values{}
	if s := strings.TrimSpace(q.Search); s != "" {
		params.Set("search", s)
	}
	if s := strings.TrimSpace(q.Location); s != "" {
		params.Set("location", s)
	}
	if s := strings.TrimSpace(q.License); s != "" {
		params.Set("license", s)
	}
	if q.MinSuitability > 0 {
		params.Set("minSuitability", strconv.Itoa(q.MinSuitability))
	}

	var cands []market.Candidate
	if err := c.getJSON(ctx, "/api/candidates", params, &cands); err != nil {
		return nil, err
	}
	return cands, nil
}

// proposalEndpoints lists the candidate list-endpoint shapes in trial order;
// the first one returning a usable array wins.
func proposalEndpoints(employerID int64) []string {
	id := strconv.FormatInt(employerID, 10)
	return []string{
		"/api/proposals?employerId=" + id,
		"/api/proposals/employer/" + id,
		"/api/proposals/employer/" + id + "/jobseekers",
	}
}

func (c *httpClient) ProposalsByEmployer(ctx context.Context, employerID int64) ([]proposal.Record, error) {
	var lastErr error
	for _, path := range proposalEndpoints(employerID) {
		body, err := c.get(ctx, path)
		if err != nil {
			lastErr = err
			continue
		}
		elems, ok := decodeArray(body)
		if !ok {
			lastErr = fmt.Errorf("unusable proposal payload from %s", path)
			continue
		}
		out := make([]proposal.Record, 0, len(elems))
		for _, raw := range elems {
			rec, ok := proposal.Normalize(raw)
			if !ok {
				continue
			}
			out = append(out, rec)
		}
		return out, nil
	}
	if lastErr == nil {
		lastErr = errors.New("no proposal endpoint available")
	}
	return nil, lastErr
}

func (c *httpClient) CreateProposal(ctx context.Context, jobID, jobseekerID, employerID int64) error {
	form := url.Values{}
	form.Set("jobId", strconv.FormatInt(jobID, 10))
	form.Set("jobseekerId", strconv.FormatInt(jobseekerID, 10))
	form.Set("employerId", strconv.FormatInt(employerID, 10))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/proposals", strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.do(req)
}

func (c *httpClient) DeleteProposal(ctx context.Context, jobID, jobseekerID, employerID int64) error {
	params := url.Values{}
	params.Set("jobId", strconv.FormatInt(jobID, 10))
	params.Set("jobseekerId", strconv.FormatInt(jobseekerID, 10))
	params.Set("employerId", strconv.FormatInt(employerID, 10))

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/proposals?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	return c.do(req)
}

func (c *httpClient) do(req *http.Request) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		bodyStr := strings.TrimSpace(string(rb))
		err := fmt.Errorf("upstream request failed: %s %s status=%d body=%s", req.Method, req.URL.Path, resp.StatusCode, bodyStr)
		if c.logger != nil {
			c.logger.Printf("[Upstream] request error method=%s path=%s status=%d body=%q", req.Method, req.URL.Path, resp.StatusCode, bodyStr)
		}
		return err
	}
	return nil
}

func (c *httpClient) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		bodyStr := strings.TrimSpace(string(rb))
		if c.logger != nil {
			c.logger.Printf("[Upstream] request error method=GET path=%s status=%d body=%q", path, resp.StatusCode, bodyStr)
		}
		return nil, fmt.Errorf("upstream request failed: GET %s status=%d body=%s", path, resp.StatusCode, bodyStr)
	}

	return io.ReadAll(io.LimitReader(resp.Body, 4<<20))
}

func (c *httpClient) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	if len(params) > 0 {
		path = path + "?" + params.Encode()
	}
	body, err := c.get(ctx, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		// Unexpected shape counts as "no usable data", not a failure.
		if c.logger != nil {
			c.logger.Printf("[Upstream] unusable payload path=%s err=%v", path, err)
		}
		return nil
	}
	return nil
}

// decodeArray accepts either a bare JSON array or a paginated envelope with
// a "content" array.
func decodeArray(body []byte) ([]map[string]any, bool) {
	var bare []map[string]any
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare, true
	}
	var envelope struct {
		Content []map[string]any `json:"content"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Content != nil {
		return envelope.Content, true
	}
	return nil, false
}

var _ Client = (*httpClient)(nil)
