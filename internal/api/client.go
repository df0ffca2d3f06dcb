// Package api implements the HTTP client for the validation backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"github.com/ekta-240/provider-pulse/internal/model"
)

const defaultBaseURL = "http://localhost:8000"

// ErrRateLimited is returned when an AI-backed endpoint answers HTTP 429.
// Callers distinguish it with errors.Is to surface rate-limit-specific
// messages.
var ErrRateLimited = eris.New("api: rate limited")

// IsRateLimited reports whether err stems from an HTTP 429 response.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// Client is the backend contract consumed by the dashboard.
type Client interface {
	Stats(ctx context.Context) (*model.StatsSnapshot, error)
	Providers(ctx context.Context) ([]model.Provider, error)
	ManualReview(ctx context.Context) ([]model.ManualReviewItem, error)
	ProviderDetail(ctx context.Context, id string) (*model.ProviderDetail, error)
	ProviderOCR(ctx context.Context, id string) (*model.OCRRecord, error)
	ProviderQA(ctx context.Context, id string) ([]model.QAEntry, error)
	RunBatch(ctx context.Context, batchType string) error
	LatestReport(ctx context.Context) (*Report, error)
	ReviewAction(ctx context.Context, id int, action model.ReviewAction, value string) error
	Explain(ctx context.Context, req ExplainRequest) (string, error)
	Chat(ctx context.Context, message string, history []model.ChatMessage) (string, error)
}

// ExplainRequest is the body for POST /explain.
type ExplainRequest struct {
	Field        string                  `json:"field"`
	CurrentValue string                  `json:"current_value"`
	Candidates   []model.CandidateSource `json:"candidates"`
	ChosenValue  string                  `json:"chosen_value"`
	Confidence   float64                 `json:"confidence"`
	Decision     string                  `json:"decision"`
}

type explainResponse struct {
	Explanation string `json:"explanation"`
}

type chatRequest struct {
	Message string              `json:"message"`
	History []model.ChatMessage `json:"history"`
}

type chatResponse struct {
	Response string `json:"response"`
}

// Report is the latest validation report as a binary stream. Callers own
// Body and must close it.
type Report struct {
	ContentType   string
	ContentLength int64
	Body          io.ReadCloser
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default backend base URL.
func WithBaseURL(u string) Option {
	return func(c *httpClient) {
		c.baseURL = u
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

type httpClient struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a backend API client. The zero-option client talks to
// a local development backend. Long-running calls (run-batch) rely on the
// caller's context rather than the transport timeout.
func NewClient(opts ...Option) Client {
	c := &httpClient{
		baseURL: defaultBaseURL,
		http: &http.Client{
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) Stats(ctx context.Context) (*model.StatsSnapshot, error) {
	var snapshot model.StatsSnapshot
	if err := c.getJSON(ctx, "/stats", &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (c *httpClient) Providers(ctx context.Context) ([]model.Provider, error) {
	var providers []model.Provider
	if err := c.getJSON(ctx, "/providers", &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

func (c *httpClient) ManualReview(ctx context.Context) ([]model.ManualReviewItem, error) {
	var items []model.ManualReviewItem
	if err := c.getJSON(ctx, "/manual-review", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *httpClient) ProviderDetail(ctx context.Context, id string) (*model.ProviderDetail, error) {
	var detail model.ProviderDetail
	if err := c.getJSON(ctx, "/providers/"+url.PathEscape(id)+"/details", &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (c *httpClient) ProviderOCR(ctx context.Context, id string) (*model.OCRRecord, error) {
	var record model.OCRRecord
	if err := c.getJSON(ctx, "/providers/"+url.PathEscape(id)+"/ocr", &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *httpClient) ProviderQA(ctx context.Context, id string) ([]model.QAEntry, error) {
	var entries []model.QAEntry
	if err := c.getJSON(ctx, "/providers/"+url.PathEscape(id)+"/qa", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *httpClient) RunBatch(ctx context.Context, batchType string) error {
	// The backend runs the batch synchronously; this request blocks until
	// the run completes.
	return c.postJSON(ctx, "/run-batch?type="+url.QueryEscape(batchType), nil, nil)
}

func (c *httpClient) LatestReport(ctx context.Context) (*Report, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/reports/latest", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "api: fetch report")
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		return nil, eris.Errorf("api: fetch report: unexpected status %d: %s", resp.StatusCode, string(body))
	}

	return &Report{
		ContentType:   resp.Header.Get("Content-Type"),
		ContentLength: resp.ContentLength,
		Body:          resp.Body,
	}, nil
}

func (c *httpClient) ReviewAction(ctx context.Context, id int, action model.ReviewAction, value string) error {
	path := "/manual-review/" + strconv.Itoa(id) + "/" + string(action)
	if action == model.ActionOverride {
		path += "?value=" + url.QueryEscape(value)
	}
	return c.postJSON(ctx, path, nil, nil)
}

func (c *httpClient) Explain(ctx context.Context, req ExplainRequest) (string, error) {
	if req.Candidates == nil {
		req.Candidates = []model.CandidateSource{}
	}
	var resp explainResponse
	if err := c.postJSON(ctx, "/explain", req, &resp); err != nil {
		return "", err
	}
	return resp.Explanation, nil
}

func (c *httpClient) Chat(ctx context.Context, message string, history []model.ChatMessage) (string, error) {
	body := chatRequest{
		Message: message,
		History: model.ContextWindow(history),
	}
	if body.History == nil {
		body.History = []model.ChatMessage{}
	}
	var resp chatResponse
	if err := c.postJSON(ctx, "/chat", body, &resp); err != nil {
		return "", err
	}
	return resp.Response, nil
}

func (c *httpClient) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, eris.Wrapf(err, "api: create %s %s", method, path)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	return req, nil
}

func (c *httpClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return c.do(req, path, out)
}

func (c *httpClient) postJSON(ctx context.Context, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return eris.Wrapf(err, "api: marshal %s request", path)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, path, out)
}

func (c *httpClient) do(req *http.Request, path string, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return eris.Wrapf(err, "api: send %s", path)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return eris.Wrapf(err, "api: read %s response", path)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return eris.Wrapf(ErrRateLimited, "api: %s", path)
	}
	if resp.StatusCode != http.StatusOK {
		return eris.Errorf("api: %s: unexpected status %d: %s", path, resp.StatusCode, string(respBody))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return eris.Wrapf(err, "api: unmarshal %s response", path)
	}
	return nil
}
