// Package tui provides the BubbleTea-based terminal user interface.
package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pitui/internal/config"
	"pitui/internal/model"
	"pitui/internal/pi"
	"pitui/internal/theme"
)

// Mode represents the current UI mode.
type Mode int

const (
	ModeInput Mode = iota
	ModeHistory
)

// Model is the main TUI model.
type Model struct {
	// Configuration
	cfg *config.Config

	// Current mode
	mode Mode

	// Components
	input   textinput.Model
	history list.Model
	help    help.Model

	// Theme
	themeMode theme.Mode
	styles    theme.Styles
	// Set once the user toggles manually; config hot-reloads stop
	// re-resolving the theme for the rest of the session.
	themeLocked bool

	// Submission state. At most one of errMsg/result is populated.
	errMsg string
	result *model.Result

	// Session history, newest first. Never persisted.
	results []model.Result

	width  int
	height int
	ready  bool

	// Key bindings
	keys KeyMap

	// Config hot-reload subscription
	configCh <-chan *config.Config
}

// resultItem wraps a result for the history list component.
type resultItem struct {
	result model.Result
}

func (i resultItem) Title() string {
	return i.result.Value
}

func (i resultItem) Description() string {
	return i.result.Caption() + " · " + i.result.RelativeTime()
}

func (i resultItem) FilterValue() string {
	return i.result.Value + " " + i.result.Caption()
}

// New creates a new TUI model.
func New(cfg *config.Config, mode theme.Mode, configCh <-chan *config.Config) Model {
	input := textinput.New()
	input.Placeholder = "0-100"
	input.Prompt = "> "
	input.Focus()

	delegate := list.NewDefaultDelegate()
	l := list.New(nil, delegate, 0, 0)
	l.Title = "Session History"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	h := help.New()

	return Model{
		cfg:       cfg,
		mode:      ModeInput,
		input:     input,
		history:   l,
		help:      h,
		themeMode: mode,
		styles:    theme.NewStyles(mode),
		keys:      DefaultKeyMap(),
		configCh:  configCh,
	}
}

// ThemeMode returns the currently active theme mode.
func (m Model) ThemeMode() theme.Mode {
	return m.themeMode
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.waitForConfig,
	)
}

// waitForConfig blocks on the config watcher channel.
func (m Model) waitForConfig() tea.Msg {
	if m.configCh == nil {
		return nil
	}
	cfg, ok := <-m.configCh
	if !ok {
		return nil
	}
	return configReloadedMsg{cfg: cfg}
}

type configReloadedMsg struct {
	cfg *config.Config
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		m.input.Width = min(msg.Width-4, 40)
		m.history.SetSize(msg.Width, msg.Height-4)
		m.help.Width = msg.Width

		return m, nil

	case configReloadedMsg:
		m.cfg = msg.cfg
		if !m.themeLocked {
			m.applyTheme(theme.Resolve(msg.cfg.ThemeMode(), ""))
		}
		m.trimHistory()
		return m, m.waitForConfig
	}

	return m, m.updateChild(msg)
}

// handleKey handles key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.ToggleTheme):
		m.themeLocked = true
		m.applyTheme(m.themeMode.Toggle())
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.History):
		if m.mode == ModeHistory {
			m.mode = ModeInput
			return m, nil
		}
		m.mode = ModeHistory
		m.history.SetItems(m.buildHistoryItems())
		return m, nil
	}

	// Mode-specific keys
	switch m.mode {
	case ModeInput:
		return m.handleInputKey(msg)
	case ModeHistory:
		return m.handleHistoryKey(msg)
	}

	return m, nil
}

// handleInputKey handles keys in input mode.
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.submit(m.input.Value())
		return m, nil

	case key.Matches(msg, m.keys.Back):
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleHistoryKey handles keys in history mode.
func (m Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.mode = ModeInput
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		// Re-run the selected precision
		if item, ok := m.history.SelectedItem().(resultItem); ok {
			m.input.SetValue(strconv.Itoa(item.result.Digits))
			m.input.CursorEnd()
			m.submit(m.input.Value())
			m.mode = ModeInput
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	return m, cmd
}

// updateChild forwards non-key messages to the focused component.
func (m *Model) updateChild(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.mode {
	case ModeInput:
		m.input, cmd = m.input.Update(msg)
	case ModeHistory:
		m.history, cmd = m.history.Update(msg)
	}
	return cmd
}

// submit runs one validation pass over raw input. Both outcome fields are
// cleared first so an error and a result are never shown together.
func (m *Model) submit(raw string) {
	m.errMsg = ""
	m.result = nil

	r, err := pi.Evaluate(raw)
	if err != nil {
		m.errMsg = pi.Message(err)
		return
	}

	m.result = &r
	m.results = append([]model.Result{r}, m.results...)
	m.trimHistory()
}

// trimHistory caps the session history at the configured limit.
func (m *Model) trimHistory() {
	limit := m.cfg.TUI.HistoryLimit
	if limit > 0 && len(m.results) > limit {
		m.results = m.results[:limit]
	}
}

// applyTheme switches the active mode and re-derives every style from the
// new palette so all rendered elements update together.
func (m *Model) applyTheme(mode theme.Mode) {
	m.themeMode = mode
	m.styles = theme.NewStyles(mode)
}

// buildHistoryItems creates list items from the session history.
func (m Model) buildHistoryItems() []list.Item {
	items := make([]list.Item, len(m.results))
	for i, r := range m.results {
		items[i] = resultItem{result: r}
	}
	return items
}

// View renders the TUI.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	switch m.mode {
	case ModeHistory:
		return m.viewHistory()
	default:
		return m.viewInput()
	}
}

func (m Model) viewInput() string {
	s := m.viewHeader() + "\n\n"

	s += m.styles.Label.Render("How many decimal places of π?") + "\n"
	s += m.input.View() + "\n\n"

	if m.errMsg != "" {
		s += m.styles.Banner.Render(m.errMsg) + "\n"
	} else if m.result != nil {
		panel := m.styles.Value.Render(m.result.Value) + "\n" +
			m.styles.Caption.Render(m.result.Caption())
		s += m.styles.Result.Render(panel) + "\n"
	}

	return s + "\n" + m.viewFooter()
}

func (m Model) viewHistory() string {
	if len(m.results) == 0 {
		s := m.viewHeader() + "\n\n"
		s += m.styles.Caption.Render("Nothing here yet. Submit a number first.") + "\n"
		return s + "\n" + m.viewFooter()
	}
	return m.viewHeader() + "\n" + m.history.View() + "\n" + m.viewFooter()
}

func (m Model) viewHeader() string {
	title := m.styles.Title.Render("pitui")
	glyph := m.styles.Glyph.Render(m.themeMode.Glyph())
	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", glyph)
}

func (m Model) viewFooter() string {
	footer := m.styles.Footer.Render(fmt.Sprintf("© %d pitui", time.Now().Year()))
	if m.cfg.TUI.ShowKeybinds {
		return m.help.View(m.keys) + "\n" + footer
	}
	return footer
}

// RunOptions configures the TUI.
type RunOptions struct {
	Config        *config.Config
	ConfigPath    string // Path to watch for hot reload (empty = no watching)
	ThemeOverride string // From the --theme flag
}

// Run starts the TUI with the given options.
func Run(opts RunOptions) error {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	mode := theme.Resolve(cfg.ThemeMode(), opts.ThemeOverride)

	// Start config watcher if a config path was provided
	var watcher *config.Watcher
	var configCh <-chan *config.Config
	if opts.ConfigPath != "" {
		var err error
		watcher, err = config.NewWatcher(opts.ConfigPath)
		if err == nil {
			if err := watcher.Start(); err == nil {
				configCh = watcher.Changes()
			}
		}
	}

	m := New(cfg, mode, configCh)
	p := tea.NewProgram(m, tea.WithAltScreen())

	_, err := p.Run()

	if watcher != nil {
		watcher.Stop()
	}

	return err
}
