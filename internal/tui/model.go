// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"keydrill/internal/model"
	"keydrill/internal/session"
)

// tickInterval paces clock re-evaluation and redraws while a session runs.
const tickInterval = 250 * time.Millisecond

// tickMsg carries the wall time of one clock tick.
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

var (
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	caretStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#4FC3F7")).Underline(true)
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	warnStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB020")).Bold(true)
	keyStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	keyActiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#111111")).Background(lipgloss.Color("#C89A3A")).Bold(true)
	sparkStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#4FC3F7"))
	cardStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#6E6E6E")).Padding(1, 3)
)

// keyMap holds the practice-screen bindings.
type keyMap struct {
	Restart key.Binding
	Quit    key.Binding
	Again   key.Binding
	Done    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Restart: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "restart")),
		Quit:    key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
		Again:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "go again")),
		Done:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Restart, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Restart, k.Quit}}
}

// resultsKeyMap swaps the help line to the post-session bindings.
type resultsKeyMap struct {
	keyMap
}

func (k resultsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Again, k.Done}
}

func (k resultsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Again, k.Done}}
}

// Model implements the Bubble Tea typing UI. All session semantics live in
// the engine; the model owns terminal geometry, scrolling, and key routing.
type Model struct {
	cfg    model.Config
	eng    *session.Engine
	logger *log.Logger

	keys keyMap
	help help.Model

	width  int
	height int
	now    time.Time

	scroll     int
	highlight  keyTokens
	wpmSamples []float64
}

// NewModel constructs the typing UI around an engine.
func NewModel(cfg model.Config, eng *session.Engine, logger *log.Logger) *Model {
	return &Model{
		cfg:    cfg,
		eng:    eng,
		logger: logger,
		keys:   defaultKeyMap(),
		help:   help.New(),
		now:    time.Now(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width - 2
		m.syncScroll()
		m.logger.Debug("resize", "width", msg.Width, "height", msg.Height)
		return m, nil
	case tickMsg:
		m.now = time.Time(msg)
		prev := m.eng.State()
		m.eng.Tick(m.now)
		m.sampleWPM()
		if next := m.eng.State(); next != prev {
			m.logger.Debug("session state", "from", prev, "to", next)
		}
		return m, tickCmd()
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.now = time.Now()
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.eng.Finish(m.now)
		return m, tea.Quit
	case key.Matches(msg, m.keys.Restart):
		m.restart()
		return m, nil
	}

	if m.eng.State() == session.StateFinished {
		switch {
		case key.Matches(msg, m.keys.Again):
			m.restart()
		case key.Matches(msg, m.keys.Done):
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.Type {
	case tea.KeyBackspace, tea.KeyDelete:
		m.eng.Backspace()
		m.highlight = backspaceTokens()
	case tea.KeySpace:
		m.eng.Type(' ', m.now)
		m.highlight = runeTokens(' ')
	case tea.KeyEnter:
		m.eng.Type('\n', m.now)
		m.highlight = runeTokens('\n')
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.eng.Type(r, m.now)
		}
		if len(msg.Runes) > 0 {
			m.highlight = runeTokens(msg.Runes[len(msg.Runes)-1])
		}
	}
	m.syncScroll()
	return m, nil
}

func (m *Model) restart() {
	m.eng = m.eng.Restart()
	m.scroll = 0
	m.highlight = nil
	m.wpmSamples = nil
	m.logger.Debug("session restarted", "seed", m.eng.Seed())
}

// sampleWPM records one live WPM reading per tick for the results sparkline.
func (m *Model) sampleWPM() {
	if m.eng.State() != session.StateRunning {
		return
	}
	m.wpmSamples = append(m.wpmSamples, m.eng.Metrics(m.now).WPM)
}

// syncScroll recomputes the text band offset after input or resize.
func (m *Model) syncScroll() {
	if m.width == 0 || m.height == 0 {
		return
	}
	plan := planFrame(m.width, m.height, m.cfg.Keyboard)
	if plan.tooSmall {
		return
	}
	snap := m.eng.Snapshot(m.now)
	lay := layoutTarget(snap.Target, plan.textWidth)
	caretLine := lay.caretCell(len(snap.Typed)).line
	m.scroll = scrollTop(m.scroll, caretLine, plan.textRows, lay.lineCount)
}

func (m *Model) activeKeys() help.KeyMap {
	if m.eng.State() == session.StateFinished {
		return resultsKeyMap{m.keys}
	}
	return m.keys
}
