package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ekta-240/provider-pulse/internal/format"
	"github.com/ekta-240/provider-pulse/internal/model"
	"github.com/ekta-240/provider-pulse/internal/tui/themes"
)

// ProviderListModel renders the provider directory as a table. Choosing a
// row navigates to the detail view.
type ProviderListModel struct {
	theme     themes.Theme
	providers []model.Provider
	table     table.Model
	width     int
	height    int
}

// NewProviderList creates the provider directory table.
func NewProviderList(providers []model.Provider, theme themes.Theme) ProviderListModel {
	columns := []table.Column{
		{Title: "Name", Width: 24},
		{Title: "Specialty", Width: 18},
		{Title: "Phone", Width: 14},
		{Title: "PCS", Width: 16},
		{Title: "Drift", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(true)
	styles.Selected = theme.Selected
	t.SetStyles(styles)

	m := ProviderListModel{
		theme:     theme,
		providers: providers,
		table:     t,
	}
	m.refreshRows()
	return m
}

// SetProviders replaces the listed providers.
func (m *ProviderListModel) SetProviders(providers []model.Provider) {
	m.providers = providers
	m.refreshRows()
}

// SetTheme switches the active theme.
func (m *ProviderListModel) SetTheme(theme themes.Theme) {
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
func (m *ProviderListModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetHeight(max(height-4, 3))
}

func (m *ProviderListModel) refreshRows() {
	rows := make([]table.Row, 0, len(m.providers))
	for _, p := range m.providers {
		rows = append(rows, table.Row{
			format.Truncate(p.Name, 24),
			format.Truncate(p.Specialty, 18),
			p.Phone,
			ScoreBadge(p.PCS),
			p.Drift.Bucket,
		})
	}
	m.table.SetRows(rows)
}

// Update handles messages.
func (m ProviderListModel) Update(msg tea.Msg) (ProviderListModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		if cursor := m.table.Cursor(); cursor >= 0 && cursor < len(m.providers) {
			provider := m.providers[cursor]
			return m, func() tea.Msg {
				return ProviderSelectedMsg{Provider: provider}
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the directory.
func (m ProviderListModel) View() string {
	title := m.theme.Title.Render(fmt.Sprintf("Providers (%d)", len(m.providers)))
	if len(m.providers) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, m.theme.StatusPending.Render("No providers loaded."))
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, m.table.View())
}

// ScoreBadge renders a PCS summary as "score Band".
func ScoreBadge(pcs model.PCSSummary) string {
	return fmt.Sprintf("%s %s", format.Score(pcs.Score), pcs.Band)
}

// DriftChip renders a colored drift chip for a summary.
func DriftChip(drift model.DriftSummary, theme themes.Theme) string {
	return theme.DriftStyle(drift.Bucket).Render(drift.Bucket)
}
