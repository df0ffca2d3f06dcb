package tui

import (
	"context"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/ekta-240/provider-pulse/internal/api"
	"github.com/ekta-240/provider-pulse/internal/format"
	"github.com/ekta-240/provider-pulse/internal/model"
	"github.com/ekta-240/provider-pulse/internal/tui/components"
)

// loadAll fetches the three global collections concurrently. The join is
// all-or-nothing: if any fetch fails, no state is applied and the prior
// snapshot stays in place.
func (m Model) loadAll() tea.Cmd {
	client := m.api
	timeout := m.loadTimeout

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		var (
			stats     *model.StatsSnapshot
			providers []model.Provider
			reviews   []model.ManualReviewItem
		)

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			stats, err = client.Stats(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			providers, err = client.Providers(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			reviews, err = client.ManualReview(ctx)
			return err
		})

		if err := g.Wait(); err != nil {
			return globalDataErrMsg{err: err}
		}

		return globalDataMsg{
			stats:     stats,
			providers: providers,
			reviews:   model.FilterPending(reviews),
		}
	}
}

// loadProviderResources fires the three per-provider fetches
// independently so the panel can render progressively.
func (m Model) loadProviderResources(id string) tea.Cmd {
	client := m.api
	timeout := m.loadTimeout

	detail := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		d, err := client.ProviderDetail(ctx, id)
		return components.DetailLoadedMsg{ProviderID: id, Detail: d, Err: err}
	}
	ocr := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		record, err := client.ProviderOCR(ctx, id)
		return components.OCRLoadedMsg{ProviderID: id, Record: record, Err: err}
	}
	qa := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		entries, err := client.ProviderQA(ctx, id)
		return components.QALoadedMsg{ProviderID: id, Entries: entries, Err: err}
	}

	return tea.Batch(detail, ocr, qa)
}

// runBatch invokes the synchronous backend batch job. No timeout: the
// request blocks until the run completes.
func (m Model) runBatch() tea.Cmd {
	client := m.api
	batchType := m.batchType

	return func() tea.Msg {
		err := client.RunBatch(context.Background(), batchType)
		return batchFinishedMsg{err: err}
	}
}

// downloadReport saves the latest report next to the working directory.
func (m Model) downloadReport() tea.Cmd {
	client := m.api

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		report, err := client.LatestReport(ctx)
		if err != nil {
			return reportSavedMsg{err: err}
		}
		defer func() { _ = report.Body.Close() }()

		filename := format.ReportFilename(time.Now(), report.ContentType)
		out, err := os.Create(filename)
		if err != nil {
			return reportSavedMsg{err: err}
		}
		defer func() { _ = out.Close() }()

		if _, err := io.Copy(out, report.Body); err != nil {
			return reportSavedMsg{err: err}
		}
		return reportSavedMsg{filename: filename}
	}
}

// reviewAction dispatches one approve/reject/override decision.
func (m Model) reviewAction(id int, action model.ReviewAction, value string) tea.Cmd {
	client := m.api
	timeout := m.loadTimeout

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		err := client.ReviewAction(ctx, id, action, value)
		return reviewActionDoneMsg{id: id, action: action, err: err}
	}
}

// explainField requests an explanation for a detail-view field.
func (m Model) explainField(req api.ExplainRequest) tea.Cmd {
	client := m.api
	timeout := m.loadTimeout

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		explanation, err := client.Explain(ctx, req)
		return components.ExplainResultMsg{Field: req.Field, Explanation: explanation, Err: err}
	}
}

// explainReview requests an explanation for a manual-review item.
func (m Model) explainReview(itemID int, req api.ExplainRequest) tea.Cmd {
	client := m.api
	timeout := m.loadTimeout

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		explanation, err := client.Explain(ctx, req)
		return components.ReviewExplainResultMsg{ItemID: itemID, Explanation: explanation, Err: err}
	}
}

// chatSend posts one chat message with its context window.
func (m Model) chatSend(message string, history []model.ChatMessage) tea.Cmd {
	client := m.api
	timeout := m.loadTimeout

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		reply, err := client.Chat(ctx, message, history)
		return components.ChatReplyMsg{Reply: reply, Err: err}
	}
}
