package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekta-240/provider-pulse/internal/model"
	"github.com/ekta-240/provider-pulse/internal/tui/themes"
)

func createTestProviders() []model.Provider {
	return []model.Provider{
		{
			ID:        "prov-1",
			Name:      "Dr. Ada Okafor",
			Specialty: "Cardiology",
			Phone:     "555-0100",
			PCS:       model.PCSSummary{Score: 82.5, Band: "Good"},
			Drift:     model.DriftSummary{Bucket: model.DriftLow},
		},
		{
			ID:        "prov-2",
			Name:      "Dr. Sam Whitfield",
			Specialty: "Dermatology",
			Phone:     "555-0101",
			PCS:       model.PCSSummary{Score: 54.0, Band: "Poor"},
			Drift:     model.DriftSummary{Bucket: model.DriftHigh},
		},
	}
}

func TestProviderListModel_EnterSelectsProvider(t *testing.T) {
	m := NewProviderList(createTestProviders(), themes.Dark)
	m.table.SetCursor(1)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(ProviderSelectedMsg)
	require.True(t, ok)
	assert.Equal(t, "prov-2", msg.Provider.ID)
}

func TestProviderListModel_EnterOnEmptyList(t *testing.T) {
	m := NewProviderList(nil, themes.Dark)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestProviderListModel_View(t *testing.T) {
	m := NewProviderList(nil, themes.Dark)
	assert.Contains(t, m.View(), "No providers loaded")

	m.SetProviders(createTestProviders())
	view := m.View()
	assert.Contains(t, view, "Providers (2)")
	assert.Contains(t, view, "Dr. Ada Okafor")
	assert.Contains(t, view, "82.5 Good")
}

func TestScoreBadge(t *testing.T) {
	badge := ScoreBadge(model.PCSSummary{Score: 82.5, Band: "Good"})
	assert.Equal(t, "82.5 Good", badge)
}
