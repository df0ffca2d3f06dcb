package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the application.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || !m.ready {
		return m.renderLoading()
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var content string
	switch m.view {
	case ViewDashboard:
		content = m.dashboard.View()
	case ViewProviders:
		content = m.providerList.View()
	case ViewDetail:
		content = m.detail.View()
	case ViewManual:
		content = m.manual.View()
	}

	if m.chatOpen {
		content = m.overlayChat(content)
	}

	return m.wrapWithStatusBar(content)
}

// renderLoading renders the startup screen shown until the first global
// load resolves.
func (m Model) renderLoading() string {
	title := m.theme.Title.Render("Provider Pulse")
	hint := lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Loading validation data...")

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		"",
		m.spinner.View(),
		"",
		hint,
	)

	width := m.width
	height := m.height
	if width == 0 {
		return content
	}

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)
}

// overlayChat places the floating assistant panel over the right side of
// the active view.
func (m Model) overlayChat(content string) string {
	chat := m.chat.View()

	chatWidth := lipgloss.Width(chat)
	if chatWidth >= m.width-2 {
		return chat
	}

	base := lipgloss.NewStyle().
		Width(m.width - chatWidth - 3).
		MaxWidth(m.width - chatWidth - 3).
		Render(content)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		base,
		m.theme.Normal.Render(" "),
		chat,
	)
}

// wrapWithStatusBar appends the bottom status bar and the outer border.
func (m Model) wrapWithStatusBar(content string) string {
	statusBar := m.renderStatusBar()

	fullContent := lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		statusBar,
	)

	return m.theme.BorderedBox.
		Width(m.width).
		MaxWidth(m.width).
		Render(fullContent)
}

// renderStatusBar renders the bottom status bar.
func (m Model) renderStatusBar() string {
	var left string
	switch m.view {
	case ViewDashboard:
		left = "Dashboard"
	case ViewProviders:
		left = "Providers"
	case ViewDetail:
		left = "Provider Detail"
	case ViewManual:
		left = "Manual Review"
	}
	if m.batchRunning {
		left += " · " + m.spinner.View() + " batch running"
	}

	center := m.status
	right := "? Help"

	totalWidth := m.width - 6
	spacing := totalWidth - lipgloss.Width(left) - lipgloss.Width(center) - lipgloss.Width(right)
	if spacing < 2 {
		center = ""
		spacing = totalWidth - lipgloss.Width(left) - lipgloss.Width(right)
	}
	if spacing < 2 {
		spacing = 2
	}
	leftPad := spacing / 2
	rightPad := spacing - leftPad

	status := fmt.Sprintf("%s%s%s%s%s",
		m.theme.StatusInfo.Render(left),
		strings.Repeat(" ", leftPad),
		m.theme.Normal.Render(center),
		strings.Repeat(" ", rightPad),
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render(right),
	)

	return m.theme.Normal.
		Width(m.width - 4).
		MaxWidth(m.width - 4).
		Render(status)
}

// renderHelp renders the help screen.
func (m Model) renderHelp() string {
	title := m.theme.Title.Render("Provider Pulse - Help")

	sections := []struct {
		title string
		items []string
	}{
		{
			"Views",
			[]string{
				"1           Dashboard",
				"2           Provider directory",
				"3           Manual review queue",
				"Esc         Back to provider list",
			},
		},
		{
			"Actions",
			[]string{
				"b           Run validation batch",
				"x           Download latest report",
				"e/Enter     Explain selected field",
				"a/r/o       Approve / reject / override",
				"Ctrl+R      Reload all data",
			},
		},
		{
			"Assistant",
			[]string{
				"c           Open assistant",
				"Enter       Send message",
				"Esc         Close assistant",
			},
		},
		{
			"Application",
			[]string{
				"t           Toggle dark mode",
				"?           Toggle help",
				"q           Quit",
				"Ctrl+C      Force quit",
			},
		},
	}

	var content []string
	for _, section := range sections {
		content = append(content, m.theme.Subtitle.Render(section.title))

		for _, item := range section.items {
			parts := strings.SplitN(item, "  ", 2)
			if len(parts) == 2 {
				line := fmt.Sprintf("  %-12s %s",
					m.theme.Highlighted.Render(parts[0]),
					m.theme.Normal.Render(strings.TrimSpace(parts[1])),
				)
				content = append(content, line)
			}
		}
		content = append(content, "")
	}

	helpText := lipgloss.JoinVertical(lipgloss.Left, content...)
	footer := lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Press ? to close help")

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		m.theme.BorderedBox.
			Width(56).
			MaxHeight(m.height-2).
			Render(
				lipgloss.JoinVertical(
					lipgloss.Left,
					title,
					"",
					helpText,
					footer,
				),
			),
	)
}
