package components

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ekta-240/provider-pulse/internal/api"
	"github.com/ekta-240/provider-pulse/internal/format"
	"github.com/ekta-240/provider-pulse/internal/model"
	"github.com/ekta-240/provider-pulse/internal/tui/themes"
)

// Rate-limit and fallback banners for the explain action.
const (
	ExplainRateLimitBanner = "Rate limit exceeded. Please wait."
	ExplainGenericBanner   = "Could not generate an explanation. Please try again."
)

// ProviderDetailModel shows one provider's full record: validated fields
// with confidence bars, PCS breakdown, drift, OCR document, and QA
// history. The detail record gates rendering; OCR and QA fill in as they
// arrive. Explanations are cached per field for the life of the panel and
// only one explanation request may be in flight at a time.
type ProviderDetailModel struct {
	theme        themes.Theme
	providerID   string
	detail       *model.ProviderDetail
	ocr          *model.OCRRecord
	qa           []model.QAEntry
	explanations map[string]string
	fields       []string
	loadingField string
	banner       string
	loadErr      error
	cursor       int
	width        int
	height       int
}

// NewProviderDetailModel creates a detail panel for the given provider id.
func NewProviderDetailModel(providerID string, theme themes.Theme) ProviderDetailModel {
	return ProviderDetailModel{
		theme:        theme,
		providerID:   providerID,
		explanations: make(map[string]string),
	}
}

// ProviderID reports which provider this panel is showing.
func (m ProviderDetailModel) ProviderID() string {
	return m.providerID
}

// LoadingField reports the field with an explanation request in flight.
func (m ProviderDetailModel) LoadingField() string {
	return m.loadingField
}

// Banner reports the current explain error banner, if any.
func (m ProviderDetailModel) Banner() string {
	return m.banner
}

// Explanation returns the cached explanation for a field.
func (m ProviderDetailModel) Explanation(field string) (string, bool) {
	text, ok := m.explanations[field]
	return text, ok
}

// SetTheme switches the active theme.
func (m *ProviderDetailModel) SetTheme(theme themes.Theme) {
	m.theme = theme
}

// Resize updates the component size.
func (m *ProviderDetailModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages. Fetch results for a different provider than
// the one currently shown are discarded; without the guard a slow
// response could repaint a panel the user already navigated away from.
func (m ProviderDetailModel) Update(msg tea.Msg) (ProviderDetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case DetailLoadedMsg:
		if msg.ProviderID != m.providerID {
			return m, nil
		}
		if msg.Err != nil {
			m.loadErr = msg.Err
			return m, nil
		}
		m.detail = msg.Detail
		m.loadErr = nil
		m.fields = sortedFields(msg.Detail.Validation)
		if m.cursor >= len(m.fields) {
			m.cursor = 0
		}
		return m, nil

	case OCRLoadedMsg:
		if msg.ProviderID != m.providerID || msg.Err != nil {
			return m, nil
		}
		m.ocr = msg.Record
		return m, nil

	case QALoadedMsg:
		if msg.ProviderID != m.providerID || msg.Err != nil {
			return m, nil
		}
		m.qa = msg.Entries
		return m, nil

	case ExplainResultMsg:
		m.loadingField = ""
		if msg.Err != nil {
			if api.IsRateLimited(msg.Err) {
				m.banner = ExplainRateLimitBanner
			} else {
				m.banner = ExplainGenericBanner
			}
			return m, nil
		}
		m.explanations[msg.Field] = msg.Explanation
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m ProviderDetailModel) handleKey(msg tea.KeyMsg) (ProviderDetailModel, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.fields)-1 {
			m.cursor++
		}
	case "e", "enter":
		return m.requestExplanation()
	case "esc":
		return m, func() tea.Msg { return BackToListMsg{} }
	}
	return m, nil
}

// requestExplanation builds the explain payload for the selected field.
// Cached fields render immediately; a request already in flight blocks
// further ones.
func (m ProviderDetailModel) requestExplanation() (ProviderDetailModel, tea.Cmd) {
	if m.detail == nil || len(m.fields) == 0 || m.loadingField != "" {
		return m, nil
	}

	field := m.fields[m.cursor]
	if _, ok := m.explanations[field]; ok {
		return m, nil
	}

	validation := m.detail.Validation[field]
	req := api.ExplainRequest{
		Field:        field,
		CurrentValue: validation.ChosenValue,
		Candidates:   validation.Candidates,
		ChosenValue:  validation.ChosenValue,
		Confidence:   validation.Confidence,
		Decision:     model.DecisionFor(validation.Confidence),
	}

	m.loadingField = field
	m.banner = ""
	return m, func() tea.Msg { return ExplainRequestMsg{Request: req} }
}

// View renders the detail panel.
func (m ProviderDetailModel) View() string {
	if m.loadErr != nil {
		return m.theme.StatusError.Render("Could not load provider details.")
	}
	if m.detail == nil {
		return m.theme.StatusPending.Render("Loading provider details…")
	}

	sections := []string{
		m.renderHeader(),
		m.renderFields(),
		m.renderPCS(),
	}
	if len(m.detail.Enrichment) > 0 {
		sections = append(sections, m.renderEnrichment())
	}
	if m.ocr != nil {
		sections = append(sections, m.renderOCR())
	}
	if len(m.qa) > 0 {
		sections = append(sections, m.renderQA())
	}
	if m.banner != "" {
		sections = append(sections, m.theme.StatusError.Render(m.banner))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m ProviderDetailModel) renderHeader() string {
	p := m.detail.Provider

	title := m.theme.Title.Render(p.Name)
	sub := fmt.Sprintf("%s · %s · %s", p.Specialty, p.Phone, p.Address)
	badge := ScoreBadge(p.PCS) + "  " + DriftChip(m.detail.Drift, m.theme)

	lines := []string{title, m.theme.Subtitle.Render(sub), badge}
	if m.detail.Drift.Explanation != "" {
		lines = append(lines, m.theme.Italic.Render(m.detail.Drift.Explanation))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m ProviderDetailModel) renderFields() string {
	rows := []string{m.theme.Subtitle.Render("Validated Fields")}

	for i, field := range m.fields {
		validation := m.detail.Validation[field]
		auto := validation.Confidence >= model.AutoUpdateThreshold

		marker := "  "
		if i == m.cursor {
			marker = m.theme.Bold.Render("> ")
		}

		bar := confidenceBar(validation.Confidence, 20, m.theme)
		status := m.theme.ConfidenceStyle(auto).Render(model.StatusLabel(validation.Confidence))

		row := fmt.Sprintf("%s%-12s %s %s %s  %s",
			marker,
			field,
			format.Truncate(validation.ChosenValue, 24),
			bar,
			format.Confidence(validation.Confidence),
			status,
		)
		rows = append(rows, row)

		if field == m.loadingField {
			rows = append(rows, m.theme.StatusPending.Render("    Generating explanation…"))
		} else if text, ok := m.explanations[field]; ok {
			rows = append(rows, m.theme.Italic.Render("    "+text))
		}
	}

	rows = append(rows, m.theme.StatusPending.Render("e: explain field  esc: back"))
	return strings.Join(rows, "\n")
}

func (m ProviderDetailModel) renderPCS() string {
	if len(m.detail.PCS) == 0 {
		return ""
	}

	codes := make([]string, 0, len(m.detail.PCS))
	for code := range m.detail.PCS {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	parts := make([]string, 0, len(codes))
	for _, code := range codes {
		parts = append(parts, fmt.Sprintf("%s %s", code, format.Score(m.detail.PCS[code])))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Subtitle.Render("PCS Breakdown"),
		m.theme.Normal.Render(strings.Join(parts, "  ")),
	)
}

func (m ProviderDetailModel) renderEnrichment() string {
	keys := make([]string, 0, len(m.detail.Enrichment))
	for key := range m.detail.Enrichment {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	rows := []string{m.theme.Subtitle.Render("Enrichment")}
	for _, key := range keys {
		rows = append(rows, fmt.Sprintf("%-16s %s", key, format.Truncate(m.detail.Enrichment[key], 48)))
	}
	return strings.Join(rows, "\n")
}

func (m ProviderDetailModel) renderOCR() string {
	if !m.ocr.Exists {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			m.theme.Subtitle.Render("Source Document"),
			m.theme.StatusPending.Render("No scanned document on file."),
		)
	}

	header := fmt.Sprintf("%s (OCR %s)", m.ocr.DocumentType, format.Confidence(m.ocr.Confidence))
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Subtitle.Render("Source Document"),
		m.theme.Normal.Render(header),
		m.theme.Italic.Render(format.Truncate(m.ocr.Text, 200)),
	)
}

func (m ProviderDetailModel) renderQA() string {
	rows := []string{m.theme.Subtitle.Render("QA History")}
	for _, entry := range m.qa {
		rows = append(rows, fmt.Sprintf("%-12s %s  %s  %s",
			entry.Field,
			format.Confidence(entry.Confidence),
			strings.Join(entry.Sources, ", "),
			format.Timestamp(entry.Timestamp),
		))
	}
	return strings.Join(rows, "\n")
}

// confidenceBar renders a fixed-width confidence bar, green at or above
// the auto-update threshold and amber below it.
func confidenceBar(confidence float64, width int, theme themes.Theme) string {
	filled := int(confidence * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	style := theme.ConfidenceStyle(confidence >= model.AutoUpdateThreshold)
	return style.Render(strings.Repeat("█", filled)) +
		theme.StatusPending.Render(strings.Repeat("░", width-filled))
}

func sortedFields(validation map[string]model.FieldValidation) []string {
	fields := make([]string, 0, len(validation))
	for field := range validation {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}
