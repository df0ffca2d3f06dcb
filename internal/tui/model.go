package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ekta-240/provider-pulse/internal/api"
	"github.com/ekta-240/provider-pulse/internal/common"
	"github.com/ekta-240/provider-pulse/internal/model"
	"github.com/ekta-240/provider-pulse/internal/prefs"
	"github.com/ekta-240/provider-pulse/internal/tui/components"
	"github.com/ekta-240/provider-pulse/internal/tui/themes"
)

// View represents the active view panel.
type View int

// Views.
const (
	ViewDashboard View = iota
	ViewProviders
	ViewDetail
	ViewManual
)

// Config holds the dependencies of the TUI.
type Config struct {
	API         api.Client
	Prefs       *prefs.Store
	BatchType   string
	LoadTimeout time.Duration
}

// Model is the app shell: it owns the active view, the selected provider,
// the theme flag, and the three global collections. All backend calls and
// the global reload happen here, so every panel observes a consistent
// snapshot after any mutation.
type Model struct {
	api         api.Client
	prefsStore  *prefs.Store
	keymap      KeyMap
	theme       themes.Theme
	batchType   string
	loadTimeout time.Duration

	view       View
	selectedID string
	dark       bool

	stats     *model.StatsSnapshot
	providers []model.Provider
	reviews   []model.ManualReviewItem

	dashboard    components.DashboardModel
	providerList components.ProviderListModel
	detail       components.ProviderDetailModel
	manual       components.ManualReviewModel
	chat         components.ChatModel
	spinner      spinner.Model

	chatOpen     bool
	confirmBatch bool
	batchRunning bool
	showHelp     bool
	status       string

	width    int
	height   int
	ready    bool
	quitting bool
}

// newModel creates the shell with the given configuration.
func newModel(cfg Config) Model {
	dark := true
	if cfg.Prefs != nil {
		dark = cfg.Prefs.DarkMode()
	}
	theme := themes.GetTheme(dark)

	timeout := cfg.LoadTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	batchType := cfg.BatchType
	if batchType == "" {
		batchType = "daily"
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	return Model{
		api:          cfg.API,
		prefsStore:   cfg.Prefs,
		keymap:       DefaultKeyMap(),
		theme:        theme,
		batchType:    batchType,
		loadTimeout:  timeout,
		view:         ViewDashboard,
		dark:         dark,
		dashboard:    components.NewDashboardModel(theme),
		providerList: components.NewProviderList(nil, theme),
		manual:       components.NewManualReviewModel(nil, theme),
		chat:         components.NewChatModel(theme),
		spinner:      sp,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, m.spinner.Tick, m.loadAll())
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if newM, cmd, handled := m.handleGlobalKeys(msg); handled {
			return newM, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		// Only spin while something is visibly pending.
		if !m.ready || m.batchRunning {
			return m, cmd
		}
		return m, nil

	case globalDataMsg:
		m.stats = msg.stats
		m.providers = msg.providers
		m.reviews = msg.reviews
		m.ready = true
		m.dashboard.SetData(m.stats, len(m.reviews))
		m.providerList.SetProviders(m.providers)
		m.manual.SetItems(m.reviews)
		return m, nil

	case globalDataErrMsg:
		// Logged only: the UI keeps showing the prior (or empty) state.
		common.LogError(msg.err, "global reload failed", nil)
		m.ready = true
		return m, nil

	case batchFinishedMsg:
		m.batchRunning = false
		if msg.err != nil {
			m.status = "Batch run failed."
			common.LogError(msg.err, "batch run failed", nil)
			return m, nil
		}
		m.status = "Batch run completed."
		common.LogInfo("batch run completed", common.Fields{"type": m.batchType})
		return m, m.loadAll()

	case reportSavedMsg:
		if msg.err != nil {
			m.status = "Report download failed."
			common.LogError(msg.err, "report download failed", nil)
			return m, nil
		}
		m.status = fmt.Sprintf("Report saved to %s.", msg.filename)
		return m, nil

	case reviewActionDoneMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Could not %s item #%d.", msg.action, msg.id)
			common.LogError(msg.err, "review action failed", common.Fields{
				"item":   msg.id,
				"action": msg.action,
			})
			return m, nil
		}
		m.status = fmt.Sprintf("Item #%d %s.", msg.id, pastTense(msg.action))
		return m, m.loadAll()

	case components.ProviderSelectedMsg:
		return m.navigateToDetail(msg.Provider.ID)

	case components.BackToListMsg:
		m.view = ViewProviders
		return m, nil

	case components.ReviewActionRequestMsg:
		return m, m.reviewAction(msg.ID, msg.Action, msg.Value)

	case components.ExplainRequestMsg:
		return m, m.explainField(msg.Request)

	case components.ReviewExplainRequestMsg:
		return m, m.explainReview(msg.ItemID, msg.Request)

	case components.ChatSendMsg:
		return m, m.chatSend(msg.Message, msg.History)

	// Async results are delivered to the panel that owns them no matter
	// what is on screen: a closed chat or a backgrounded review queue
	// must still record the outcome and clear its in-flight flag.
	case components.ChatReplyMsg:
		newChat, cmd := m.chat.Update(msg)
		m.chat = newChat
		return m, cmd

	case components.ReviewExplainResultMsg:
		newManual, cmd := m.manual.Update(msg)
		m.manual = newManual
		return m, cmd
	}

	// The chat panel floats above the active view and gets first claim on
	// input while open.
	if m.chatOpen {
		newChat, cmd := m.chat.Update(msg)
		m.chat = newChat
		cmds = append(cmds, cmd)
		if _, isKey := msg.(tea.KeyMsg); isKey {
			return m, tea.Batch(cmds...)
		}
	}

	switch m.view {
	case ViewDashboard:
		// Pure rendering; nothing to route.

	case ViewProviders:
		newList, cmd := m.providerList.Update(msg)
		m.providerList = newList
		cmds = append(cmds, cmd)

	case ViewDetail:
		newDetail, cmd := m.detail.Update(msg)
		m.detail = newDetail
		cmds = append(cmds, cmd)

	case ViewManual:
		newManual, cmd := m.manual.Update(msg)
		m.manual = newManual
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleGlobalKeys handles shell-level shortcuts. Returns handled=false
// for keys that belong to the active panel.
func (m Model) handleGlobalKeys(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	// A pending batch confirmation captures the next key.
	if m.confirmBatch {
		m.confirmBatch = false
		if msg.String() == "y" {
			m.batchRunning = true
			m.status = "Running validation batch…"
			return m, tea.Batch(m.runBatch(), m.spinner.Tick), true
		}
		m.status = "Batch run cancelled."
		return m, nil, true
	}

	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return m, tea.Quit, true
	}

	// While the chat or an override prompt is capturing text input, only
	// control keys stay global.
	if m.chatOpen {
		if msg.String() == "esc" {
			m.chatOpen = false
			return m, nil, true
		}
		return m, nil, false
	}
	if m.view == ViewManual && m.manual.OverridePending() {
		return m, nil, false
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit, true
	case key.Matches(msg, m.keymap.Dashboard):
		m.view = ViewDashboard
		return m, nil, true
	case key.Matches(msg, m.keymap.Providers):
		m.view = ViewProviders
		return m, nil, true
	case key.Matches(msg, m.keymap.Manual):
		m.view = ViewManual
		return m, nil, true
	case key.Matches(msg, m.keymap.RunBatch):
		m.confirmBatch = true
		m.status = "Run validation batch now? (y/n)"
		return m, nil, true
	case key.Matches(msg, m.keymap.Report):
		m.status = "Downloading report…"
		return m, m.downloadReport(), true
	case key.Matches(msg, m.keymap.ToggleChat):
		m.chatOpen = true
		return m, nil, true
	case key.Matches(msg, m.keymap.ToggleDark):
		return m.toggleDarkMode()
	case key.Matches(msg, m.keymap.Refresh):
		m.status = "Reloading…"
		return m, m.loadAll(), true
	case key.Matches(msg, m.keymap.Help):
		m.showHelp = !m.showHelp
		return m, nil, true
	}

	return m, nil, false
}

// toggleDarkMode flips the theme, persists the flag, and restyles every
// panel.
func (m Model) toggleDarkMode() (Model, tea.Cmd, bool) {
	m.dark = !m.dark
	if m.prefsStore != nil {
		if err := m.prefsStore.SetDarkMode(m.dark); err != nil {
			common.LogError(err, "persist dark mode", nil)
		}
	}

	m.theme = themes.GetTheme(m.dark)
	m.dashboard.SetTheme(m.theme)
	m.providerList.SetTheme(m.theme)
	m.detail.SetTheme(m.theme)
	m.manual.SetTheme(m.theme)
	m.chat.SetTheme(m.theme)
	return m, nil, true
}

// navigateToDetail selects a provider and switches to the detail view.
// The panel is rebuilt so nothing from the previous provider lingers,
// and the three per-provider fetches are fired.
func (m Model) navigateToDetail(id string) (Model, tea.Cmd) {
	m.selectedID = id
	m.view = ViewDetail
	m.detail = components.NewProviderDetailModel(id, m.theme)
	m.detail.Resize(m.width, m.height)
	return m, m.loadProviderResources(id)
}

// handleResize adjusts component sizes when the terminal resizes.
func (m *Model) handleResize() {
	usableHeight := m.height - 3
	m.dashboard.Resize(m.width-2, usableHeight)
	m.providerList.Resize(m.width-2, usableHeight)
	m.detail.Resize(m.width-2, usableHeight)
	m.manual.Resize(m.width-2, usableHeight)

	chatWidth := m.width / 2
	if chatWidth < 44 {
		chatWidth = min(44, m.width-2)
	}
	m.chat.Resize(chatWidth, usableHeight)
}

func pastTense(action model.ReviewAction) string {
	switch action {
	case model.ActionApprove:
		return "approved"
	case model.ActionReject:
		return "rejected"
	case model.ActionOverride:
		return "overridden"
	default:
		return string(action)
	}
}
