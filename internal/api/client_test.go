package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekta-240/provider-pulse/internal/model"
)

func TestStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/stats", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"latest_run": {"start_time": "2025-08-25T02:00:00Z", "type": "daily", "count_processed": 20, "auto_updates": 7},
			"average_score": 81.5,
			"drift_distribution": {"High": 2, "Medium": 3, "Low": 5},
			"pcs_distribution": {"Excellent": 4, "Good": 6},
			"trend": [{"date": "2025-08-24", "auto_updates": 6, "manual_reviews": 4}]
		}`))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	snapshot, err := client.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 20, snapshot.LatestRun.CountProcessed)
	assert.Equal(t, 7, snapshot.LatestRun.AutoUpdates)
	assert.Equal(t, 2, snapshot.DriftDistribution["High"])
	require.Len(t, snapshot.Trend, 1)
	assert.Equal(t, 6, snapshot.Trend[0].AutoUpdates)
}

func TestProviderResources(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/providers":
			_, _ = w.Write([]byte(`[{"id": "p1", "name": "Dr. Chen", "specialty": "Cardiology",
				"pcs": {"score": 82, "band": "Good"}, "drift": {"bucket": "Low", "explanation": "stable"}}]`))
		case "/providers/p1/details":
			_, _ = w.Write([]byte(`{
				"provider": {"id": "p1", "name": "Dr. Chen"},
				"validation": {"phone": {"confidence": 0.85, "chosen_value": "555-0101",
					"candidates": [{"source": "NPI", "value": "555-0101"}]}},
				"pcs": {"SRM": 80, "FR": 75},
				"drift": {"bucket": "Low", "explanation": "stable"}
			}`))
		case "/providers/p1/ocr":
			_, _ = w.Write([]byte(`{"exists": true, "document_type": "license", "confidence": 0.91, "text": "LICENSE 12345"}`))
		case "/providers/p1/qa":
			_, _ = w.Write([]byte(`[{"field": "phone", "confidence": 0.85, "sources": ["NPI"], "timestamp": "2025-08-24T10:00:00Z"}]`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	ctx := context.Background()

	providers, err := client.Providers(ctx)
	require.NoError(t, err)
	require.Len(t, providers, 1)
	assert.Equal(t, "Good", providers[0].PCS.Band)

	detail, err := client.ProviderDetail(ctx, "p1")
	require.NoError(t, err)
	assert.InDelta(t, 0.85, detail.Validation["phone"].Confidence, 0.0001)
	assert.InDelta(t, 80.0, detail.PCS["SRM"], 0.0001)

	ocr, err := client.ProviderOCR(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, ocr.Exists)
	assert.Equal(t, "license", ocr.DocumentType)

	qa, err := client.ProviderQA(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, qa, 1)
	assert.Equal(t, "phone", qa[0].Field)
}

func TestReviewAction(t *testing.T) {
	tests := []struct {
		name      string
		action    model.ReviewAction
		value     string
		wantPath  string
		wantQuery string
	}{
		{name: "approve", action: model.ActionApprove, wantPath: "/manual-review/5/approve"},
		{name: "reject", action: model.ActionReject, wantPath: "/manual-review/5/reject"},
		{name: "override", action: model.ActionOverride, value: "555 012 345", wantPath: "/manual-review/5/override", wantQuery: "555 012 345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, tt.wantPath, r.URL.Path)
				assert.Equal(t, tt.wantQuery, r.URL.Query().Get("value"))
				w.WriteHeader(http.StatusOK)
			}))
			defer srv.Close()

			client := NewClient(WithBaseURL(srv.URL))
			require.NoError(t, client.ReviewAction(context.Background(), 5, tt.action, tt.value))
		})
	}
}

func TestExplain(t *testing.T) {
	var captured ExplainRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/explain", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"explanation": "chose the NPI value"}`))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	explanation, err := client.Explain(context.Background(), ExplainRequest{
		Field:        "phone",
		CurrentValue: "555-0101",
		ChosenValue:  "555-0101",
		Confidence:   0.85,
		Decision:     model.DecisionFor(0.85),
	})
	require.NoError(t, err)

	assert.Equal(t, "chose the NPI value", explanation)
	assert.Equal(t, "auto_update", captured.Decision)
	// candidates must serialize as an empty list, not null
	assert.NotNil(t, captured.Candidates)
}

func TestExplainRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"detail": "Rate limit exceeded."}`))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	_, err := client.Explain(context.Background(), ExplainRequest{Field: "phone"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestChat(t *testing.T) {
	var captured struct {
		Message string              `json:"message"`
		History []model.ChatMessage `json:"history"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat", r.URL.Path)
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response": "Happy to help."}`))
	}))
	defer srv.Close()

	history := make([]model.ChatMessage, 0, 9)
	for i := 0; i < 9; i++ {
		history = append(history, model.ChatMessage{Role: model.RoleUser, Content: "older"})
	}

	client := NewClient(WithBaseURL(srv.URL))
	reply, err := client.Chat(context.Background(), "what is PCS?", history)
	require.NoError(t, err)

	assert.Equal(t, "Happy to help.", reply)
	assert.Equal(t, "what is PCS?", captured.Message)
	assert.Len(t, captured.History, model.ChatContextWindow)
}

func TestChatRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	_, err := client.Chat(context.Background(), "hello", nil)
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestRunBatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/run-batch", r.URL.Path)
		assert.Equal(t, "daily", r.URL.Query().Get("type"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	require.NoError(t, client.RunBatch(context.Background(), "daily"))
}

func TestLatestReport(t *testing.T) {
	payload := []byte("%PDF-1.7 report bytes")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reports/latest", r.URL.Path)
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	report, err := client.LatestReport(context.Background())
	require.NoError(t, err)
	defer func() { _ = report.Body.Close() }()

	assert.Equal(t, "application/pdf", report.ContentType)
	body, err := io.ReadAll(report.Body)
	require.NoError(t, err)
	assert.Equal(t, payload, body)
}

func TestServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	_, err := client.Stats(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 500")
	assert.NotErrorIs(t, err, ErrRateLimited)
}
