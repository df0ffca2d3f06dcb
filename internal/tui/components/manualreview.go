package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ekta-240/provider-pulse/internal/api"
	"github.com/ekta-240/provider-pulse/internal/format"
	"github.com/ekta-240/provider-pulse/internal/model"
	"github.com/ekta-240/provider-pulse/internal/tui/themes"
)

// ManualReviewModel renders the pending review queue. Approve, reject,
// and override dispatch to the backend; explanations may be requested for
// several items concurrently, each tracked by its own in-flight flag.
type ManualReviewModel struct {
	theme        themes.Theme
	items        []model.ManualReviewItem
	table        table.Model
	overrideFor  *model.ManualReviewItem
	overrideIn   textinput.Model
	explaining   map[int]bool
	explanations map[int]string
	width        int
	height       int
}

// NewManualReviewModel creates the review queue panel.
func NewManualReviewModel(items []model.ManualReviewItem, theme themes.Theme) ManualReviewModel {
	columns := []table.Column{
		{Title: "ID", Width: 4},
		{Title: "Provider", Width: 10},
		{Title: "Field", Width: 12},
		{Title: "Current", Width: 18},
		{Title: "Suggested", Width: 18},
		{Title: "Reason", Width: 24},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(true)
	styles.Selected = theme.Selected
	t.SetStyles(styles)

	input := textinput.New()
	input.Placeholder = "replacement value"
	input.CharLimit = 120

	m := ManualReviewModel{
		theme:        theme,
		items:        items,
		table:        t,
		overrideIn:   input,
		explaining:   make(map[int]bool),
		explanations: make(map[int]string),
	}
	m.refreshRows()
	return m
}

// SetItems replaces the queue contents after a global reload.
func (m *ManualReviewModel) SetItems(items []model.ManualReviewItem) {
	m.items = items
	m.refreshRows()
}

// SetTheme switches the active theme.
func (m *ManualReviewModel) SetTheme(theme themes.Theme) {
	m.theme = theme
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(true)
	styles.Selected = theme.Selected
	m.table.SetStyles(styles)
}

// Resize updates the component size.
func (m *ManualReviewModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetHeight(max(height-6, 3))
}

// Explaining reports whether an explanation is in flight for an item.
func (m ManualReviewModel) Explaining(itemID int) bool {
	return m.explaining[itemID]
}

// OverridePending reports whether the override prompt is open.
func (m ManualReviewModel) OverridePending() bool {
	return m.overrideFor != nil
}

func (m *ManualReviewModel) refreshRows() {
	rows := make([]table.Row, 0, len(m.items))
	for _, item := range m.items {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", item.ID),
			item.ProviderID,
			item.Field,
			format.Truncate(item.CurrentValue, 18),
			format.Truncate(item.SuggestedValue, 18),
			format.Truncate(item.Reason, 24),
		})
	}
	m.table.SetRows(rows)
}

func (m ManualReviewModel) selected() (model.ManualReviewItem, bool) {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.items) {
		return model.ManualReviewItem{}, false
	}
	return m.items[cursor], true
}

// Update handles messages. Explanation results land even while the
// override prompt is capturing input; otherwise the in-flight flag for
// the item would never clear.
func (m ManualReviewModel) Update(msg tea.Msg) (ManualReviewModel, tea.Cmd) {
	if result, ok := msg.(ReviewExplainResultMsg); ok {
		delete(m.explaining, result.ItemID)
		switch {
		case result.Err == nil:
			m.explanations[result.ItemID] = result.Explanation
		case api.IsRateLimited(result.Err):
			m.explanations[result.ItemID] = ExplainRateLimitBanner
		default:
			m.explanations[result.ItemID] = ExplainGenericBanner
		}
		return m, nil
	}

	if m.overrideFor != nil {
		return m.updateOverride(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "a":
			return m.dispatch(model.ActionApprove)
		case "r":
			return m.dispatch(model.ActionReject)
		case "o":
			if item, ok := m.selected(); ok {
				m.overrideFor = &item
				m.overrideIn.SetValue("")
				m.overrideIn.Focus()
			}
			return m, nil
		case "e":
			return m.requestExplanation()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// updateOverride drives the override prompt. An empty or cancelled entry
// issues no request.
func (m ManualReviewModel) updateOverride(msg tea.Msg) (ManualReviewModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.overrideIn, cmd = m.overrideIn.Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "esc":
		m.overrideFor = nil
		return m, nil
	case "enter":
		item := *m.overrideFor
		value := strings.TrimSpace(m.overrideIn.Value())
		m.overrideFor = nil
		if value == "" {
			return m, nil
		}
		return m, func() tea.Msg {
			return ReviewActionRequestMsg{ID: item.ID, Action: model.ActionOverride, Value: value}
		}
	}

	var cmd tea.Cmd
	m.overrideIn, cmd = m.overrideIn.Update(msg)
	return m, cmd
}

func (m ManualReviewModel) dispatch(action model.ReviewAction) (ManualReviewModel, tea.Cmd) {
	item, ok := m.selected()
	if !ok {
		return m, nil
	}
	return m, func() tea.Msg {
		return ReviewActionRequestMsg{ID: item.ID, Action: action}
	}
}

// requestExplanation asks for an AI explanation of the selected item.
// Review items carry no live candidate data, so the payload sends an
// empty candidate list with a fixed 0.5 confidence and a manual_review
// decision.
func (m ManualReviewModel) requestExplanation() (ManualReviewModel, tea.Cmd) {
	item, ok := m.selected()
	if !ok || m.explaining[item.ID] {
		return m, nil
	}

	req := api.ExplainRequest{
		Field:        item.Field,
		CurrentValue: item.CurrentValue,
		Candidates:   []model.CandidateSource{},
		ChosenValue:  item.SuggestedValue,
		Confidence:   0.5,
		Decision:     model.DecisionManualReview,
	}

	m.explaining[item.ID] = true
	return m, func() tea.Msg {
		return ReviewExplainRequestMsg{ItemID: item.ID, Request: req}
	}
}

// View renders the queue.
func (m ManualReviewModel) View() string {
	title := m.theme.Title.Render(fmt.Sprintf("Manual Review (%d pending)", len(m.items)))

	if m.overrideFor != nil {
		prompt := lipgloss.JoinVertical(
			lipgloss.Left,
			m.theme.Subtitle.Render(fmt.Sprintf("Override %s for item #%d", m.overrideFor.Field, m.overrideFor.ID)),
			m.overrideIn.View(),
			m.theme.StatusPending.Render("enter: submit  esc: cancel (empty value cancels)"),
		)
		return lipgloss.JoinVertical(lipgloss.Left, title, m.theme.RoundedBox.Render(prompt))
	}

	if len(m.items) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, m.theme.StatusPending.Render("Queue is empty."))
	}

	sections := []string{title, m.table.View()}

	if item, ok := m.selected(); ok {
		if m.explaining[item.ID] {
			sections = append(sections, m.theme.StatusPending.Render("Generating explanation…"))
		} else if text, ok := m.explanations[item.ID]; ok {
			sections = append(sections, m.theme.Italic.Render(text))
		}
	}

	sections = append(sections, m.theme.StatusPending.Render("a: approve  r: reject  o: override  e: explain"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
