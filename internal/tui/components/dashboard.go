package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/ekta-240/provider-pulse/internal/format"
	"github.com/ekta-240/provider-pulse/internal/model"
	"github.com/ekta-240/provider-pulse/internal/tui/themes"
)

// DashboardModel renders the stats snapshot: latest run metadata, counts,
// the auto-update percentage, and the three distribution charts.
type DashboardModel struct {
	theme       themes.Theme
	stats       *model.StatsSnapshot
	manualCount int
	width       int
	height      int
}

// NewDashboardModel creates an empty dashboard panel.
func NewDashboardModel(theme themes.Theme) DashboardModel {
	return DashboardModel{theme: theme}
}

// SetData replaces the rendered snapshot and pending-review count.
func (m *DashboardModel) SetData(stats *model.StatsSnapshot, manualCount int) {
	m.stats = stats
	m.manualCount = manualCount
}

// SetTheme switches the active theme.
func (m *DashboardModel) SetTheme(theme themes.Theme) {
	m.theme = theme
}

// Resize updates the component size.
func (m *DashboardModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// View renders the dashboard, or a placeholder while the first snapshot
// is still loading.
func (m DashboardModel) View() string {
	if m.stats == nil {
		return m.theme.StatusPending.Render("Loading statistics…")
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderRun(),
		m.renderCounts(),
		"",
		m.renderCharts(),
	)
}

func (m DashboardModel) renderRun() string {
	run := m.stats.LatestRun

	title := m.theme.Title.Render("Validation Dashboard")
	meta := fmt.Sprintf("Last run: %s (%s)", format.Timestamp(run.StartTime), run.Type)
	avg := fmt.Sprintf("Average PCS: %s", format.Score(m.stats.AverageScore))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		m.theme.Subtitle.Render(meta),
		m.theme.Normal.Render(avg),
	)
}

func (m DashboardModel) renderCounts() string {
	run := m.stats.LatestRun
	pct := m.stats.AutoPercent(m.manualCount)

	cards := []string{
		m.renderCard("Processed", fmt.Sprintf("%d", run.CountProcessed), ""),
		m.renderCard("Auto-Updated", fmt.Sprintf("%d Fields", run.AutoUpdates), "↑ "+format.Percent(pct)),
		m.renderCard("Manual Review", fmt.Sprintf("%d Pending", m.manualCount), ""),
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m DashboardModel) renderCard(label, value, trend string) string {
	lines := []string{
		m.theme.Subtitle.Render(label),
		m.theme.Bold.Render(value),
	}
	if trend != "" {
		lines = append(lines, m.theme.StatusSuccess.Render(trend))
	}
	return m.theme.RoundedBox.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m DashboardModel) renderCharts() string {
	chartWidth := m.width - 10
	if chartWidth < 30 {
		chartWidth = 30
	}

	drift := lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Subtitle.Render("Drift Distribution"),
		RenderPie(m.stats.DriftDistribution, min(chartWidth, 50), m.theme),
	)

	pcs := lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Subtitle.Render("PCS Bands"),
		RenderBar(m.stats.PCSDistribution, m.theme),
	)

	trend := lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Subtitle.Render("Recent Runs"),
		RenderTrend(m.stats.Trend, min(chartWidth, 60), 11, m.theme),
	)

	return m.theme.Box.Render(lipgloss.JoinVertical(lipgloss.Left, drift, "", pcs, "", trend))
}
