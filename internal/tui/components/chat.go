package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ekta-240/provider-pulse/internal/api"
	"github.com/ekta-240/provider-pulse/internal/model"
	"github.com/ekta-240/provider-pulse/internal/tui/themes"
)

// Chat failure messages, appended to the transcript as assistant entries
// so the history itself records the failure.
const (
	ChatRateLimitMessage = "Rate limit reached. Please wait a moment before sending more messages."
	ChatGenericMessage   = "Sorry, I could not process that. Please try again."
)

// ChatModel is the floating assistant panel. The transcript is an
// append-only log: outgoing messages are added optimistically and the
// reply (or failure text) follows. One request may be outstanding at a
// time.
type ChatModel struct {
	theme      themes.Theme
	transcript []model.ChatMessage
	input      textinput.Model
	sending    bool
	width      int
	height     int
}

// NewChatModel creates an empty chat panel.
func NewChatModel(theme themes.Theme) ChatModel {
	input := textinput.New()
	input.Placeholder = "Ask about providers, PCS, drift…"
	input.CharLimit = 500
	input.Focus()

	return ChatModel{
		theme: theme,
		input: input,
	}
}

// Transcript returns the full message log.
func (m ChatModel) Transcript() []model.ChatMessage {
	return m.transcript
}

// Sending reports whether a request is outstanding.
func (m ChatModel) Sending() bool {
	return m.sending
}

// SetTheme switches the active theme.
func (m *ChatModel) SetTheme(theme themes.Theme) {
	m.theme = theme
}

// Resize updates the component size.
func (m *ChatModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = max(width-8, 20)
}

// Update handles messages.
func (m ChatModel) Update(msg tea.Msg) (ChatModel, tea.Cmd) {
	switch msg := msg.(type) {
	case ChatReplyMsg:
		m.sending = false
		reply := msg.Reply
		switch {
		case msg.Err == nil:
		case api.IsRateLimited(msg.Err):
			reply = ChatRateLimitMessage
		default:
			reply = ChatGenericMessage
		}
		m.transcript = append(m.transcript, model.ChatMessage{Role: model.RoleAssistant, Content: reply})
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "enter" {
			return m.send()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// send appends the outgoing message optimistically and posts it with the
// preceding transcript as context. Blocked while a request is in flight.
func (m ChatModel) send() (ChatModel, tea.Cmd) {
	if m.sending {
		return m, nil
	}

	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}

	history := model.ContextWindow(m.transcript)
	m.transcript = append(m.transcript, model.ChatMessage{Role: model.RoleUser, Content: text})
	m.input.SetValue("")
	m.sending = true

	return m, func() tea.Msg {
		return ChatSendMsg{Message: text, History: history}
	}
}

// View renders the chat panel.
func (m ChatModel) View() string {
	width := max(m.width, 40)

	lines := []string{m.theme.Title.Render("Assistant")}

	if len(m.transcript) == 0 {
		lines = append(lines, m.theme.StatusPending.Render("Ask anything about the validation pipeline."))
	}

	userStyle := lipgloss.NewStyle().Foreground(m.theme.Primary).Bold(true)
	for _, msg := range m.transcript {
		prefix := userStyle.Render("you ")
		if msg.Role == model.RoleAssistant {
			prefix = m.theme.StatusInfo.Render("ai  ")
		}
		lines = append(lines, prefix+m.theme.Normal.Render(wrap(msg.Content, width-10)))
	}

	if m.sending {
		lines = append(lines, m.theme.StatusPending.Render("thinking…"))
	}

	lines = append(lines, "", m.input.View())
	return m.theme.RoundedBox.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// wrap folds text at word boundaries to the given width.
func wrap(text string, width int) string {
	if width < 10 {
		width = 10
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	var b strings.Builder
	lineLen := 0
	for i, word := range words {
		if i > 0 {
			if lineLen+1+len(word) > width {
				b.WriteString("\n")
				lineLen = 0
			} else {
				b.WriteString(" ")
				lineLen++
			}
		}
		b.WriteString(word)
		lineLen += len(word)
	}
	return b.String()
}
