package components

import (
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekta-240/provider-pulse/internal/api"
	"github.com/ekta-240/provider-pulse/internal/model"
	"github.com/ekta-240/provider-pulse/internal/tui/themes"
)

func TestNewChatModel(t *testing.T) {
	m := NewChatModel(themes.Dark)

	assert.Empty(t, m.Transcript())
	assert.False(t, m.Sending())
}

func TestChatModel_SendAppendsOptimistically(t *testing.T) {
	m := NewChatModel(themes.Dark)
	m.input.SetValue("Why was this provider flagged?")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	// The outgoing message appears in the transcript before any reply.
	require.Len(t, updated.Transcript(), 1)
	assert.Equal(t, model.RoleUser, updated.Transcript()[0].Role)
	assert.Equal(t, "Why was this provider flagged?", updated.Transcript()[0].Content)
	assert.True(t, updated.Sending())
	assert.Empty(t, updated.input.Value())

	msg, ok := cmd().(ChatSendMsg)
	require.True(t, ok)
	assert.Equal(t, "Why was this provider flagged?", msg.Message)
	assert.Empty(t, msg.History, "the optimistic message is not part of its own context")
}

func TestChatModel_HistoryExcludesOutgoingAndCapsAtWindow(t *testing.T) {
	m := NewChatModel(themes.Dark)
	for i := 0; i < 8; i++ {
		role := model.RoleUser
		if i%2 == 1 {
			role = model.RoleAssistant
		}
		m.transcript = append(m.transcript, model.ChatMessage{Role: role, Content: fmt.Sprintf("msg-%d", i)})
	}

	m.input.SetValue("latest question")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(ChatSendMsg)
	require.True(t, ok)
	require.Len(t, msg.History, model.ChatContextWindow)
	assert.Equal(t, "msg-2", msg.History[0].Content)
	assert.Equal(t, "msg-7", msg.History[5].Content)
}

func TestChatModel_SendBlockedWhileSending(t *testing.T) {
	m := NewChatModel(themes.Dark)
	m.input.SetValue("first")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	m.input.SetValue("second")
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Len(t, updated.Transcript(), 1)
}

func TestChatModel_SendIgnoresEmptyInput(t *testing.T) {
	m := NewChatModel(themes.Dark)
	m.input.SetValue("   ")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Empty(t, updated.Transcript())
	assert.False(t, updated.Sending())
}

func TestChatModel_Reply(t *testing.T) {
	tests := []struct {
		err      error
		name     string
		reply    string
		wantText string
	}{
		{
			name:     "success appends the assistant reply",
			reply:    "The phone number disagreed across sources.",
			wantText: "The phone number disagreed across sources.",
		},
		{
			name:     "rate limited appends the rate-limit message",
			err:      api.ErrRateLimited,
			wantText: ChatRateLimitMessage,
		},
		{
			name:     "other errors append the generic message",
			err:      errors.New("boom"),
			wantText: ChatGenericMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewChatModel(themes.Dark)
			m.input.SetValue("question")
			m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
			require.True(t, m.Sending())

			updated, _ := m.Update(ChatReplyMsg{Reply: tt.reply, Err: tt.err})

			assert.False(t, updated.Sending())
			require.Len(t, updated.Transcript(), 2)
			last := updated.Transcript()[1]
			assert.Equal(t, model.RoleAssistant, last.Role)
			assert.Equal(t, tt.wantText, last.Content)
		})
	}
}

func TestChatModel_View(t *testing.T) {
	m := NewChatModel(themes.Dark)
	assert.Contains(t, m.View(), "Assistant")

	m.transcript = []model.ChatMessage{
		{Role: model.RoleUser, Content: "hello"},
		{Role: model.RoleAssistant, Content: "hi there"},
	}
	view := m.View()
	assert.Contains(t, view, "hello")
	assert.Contains(t, view, "hi there")
}
