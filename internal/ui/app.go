// Package ui is the SmartStep terminal client: login and registration, then a
// tabbed menu with the step counter, the force-distribution analysis and the
// profile editor.
package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ramanasai/smartstep/internal/config"
	"github.com/ramanasai/smartstep/internal/countdown"
	"github.com/ramanasai/smartstep/internal/logger"
	"github.com/ramanasai/smartstep/internal/store"
	"github.com/ramanasai/smartstep/internal/version"
)

// Backend is the server API the screens call. *api.Client implements it.
type Backend interface {
	Register(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	SaveProfile(ctx context.Context, p store.Profile) error
	GetProfile(ctx context.Context, userID string) (*store.Profile, error)
}

type Options struct {
	Config  config.Config
	Backend Backend
	Logger  *slog.Logger
	// Now defaults to time.Now.
	Now func() time.Time
	// OnAnalysisDone runs when an analysis reaches the end on its own.
	OnAnalysisDone func(countdown.Snapshot)
}

type screen int

const (
	screenLogin screen = iota
	screenRegister
	screenMenu
)

type tab int

const (
	tabSteps tab = iota
	tabForce
	tabProfile
	tabCount
)

var tabLabels = [tabCount]struct{ icon, name string }{
	{"steps", "Steps"},
	{"force", "Force"},
	{"profile", "Profile"},
}

type Model struct {
	ctx     context.Context
	cfg     config.Config
	backend Backend
	log     *slog.Logger
	theme   Theme
	help    help.Model
	now     func() time.Time
	onDone  func(countdown.Snapshot)

	screen   screen
	userID   string
	tab      tab
	menuOpen bool
	width    int

	login    loginScreen
	register registerScreen
	steps    stepsTab
	analysis analysisTab
	profile  profileTab
}

func New(opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}
	m := Model{
		ctx:     context.Background(),
		cfg:     opts.Config,
		backend: opts.Backend,
		log:     opts.Logger,
		theme:   ThemeByName(opts.Config.Theme),
		help:    help.New(),
		now:     opts.Now,
		onDone:  opts.OnAnalysisDone,
		login:   newLoginScreen(),
	}
	m.resetMenu()
	return m
}

// Run starts the program on the alternate screen and blocks until it exits.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.teardown()
	}
	return err
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m *Model) resetMenu() {
	m.tab = tabSteps
	m.menuOpen = false
	m.steps = newStepsTab(m.cfg.Steps.Current, m.cfg.Steps.Objective)
	m.analysis = newAnalysisTab(m.now, m.analysisDone)
	m.profile = newProfileTab(m.userID)
}

func (m Model) analysisDone(s countdown.Snapshot) {
	m.log.Info("analysis finished", "duration", s.Total, "run", s.Run)
	if m.onDone != nil {
		m.onDone(s)
	}
}

func (m Model) teardown() {
	m.analysis.leave()
}

// enterMenu replaces the auth screens with the tabbed menu.
func (m Model) enterMenu(userID string) (Model, tea.Cmd) {
	m.log.Info("signed in", "user", userID)
	m.userID = userID
	m.screen = screenMenu
	m.login = newLoginScreen()
	m.register = newRegisterScreen()
	m.resetMenu()
	var cmd tea.Cmd
	m.steps, cmd = m.steps.focus()
	return m, cmd
}

func (m Model) logout() Model {
	m.log.Info("signed out", "user", m.userID)
	m.analysis = m.analysis.leave()
	m.userID = ""
	m.screen = screenLogin
	m.login = newLoginScreen()
	m.resetMenu()
	return m
}

func (m Model) switchTab(next tab) (Model, tea.Cmd) {
	if next == m.tab {
		return m, nil
	}
	switch m.tab {
	case tabForce:
		m.analysis = m.analysis.leave()
	case tabSteps:
		m.steps = m.steps.blur()
	}
	m.tab = next

	var cmd tea.Cmd
	switch next {
	case tabSteps:
		m.steps, cmd = m.steps.focus()
	case tabProfile:
		m.profile, cmd = m.profile.load(m.ctx, m.backend)
	}
	return m, cmd
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.steps = m.steps.resize(msg.Width)
		m.help.Width = msg.Width
		return m, nil

	case loginResultMsg:
		if msg.err == nil {
			return m.enterMenu(msg.id)
		}
		m.log.Warn("login failed", "err", msg.err)
		var cmd tea.Cmd
		m.login, cmd = m.login.update(m.ctx, m.backend, msg)
		return m, cmd

	case registerResultMsg:
		if msg.err == nil {
			return m.enterMenu(msg.id)
		}
		m.log.Warn("register failed", "err", msg.err)
		var cmd tea.Cmd
		m.register, cmd = m.register.update(m.ctx, m.backend, msg)
		return m, cmd

	case analysisTickMsg, analysisTintMsg, analysisFrameMsg:
		var cmd tea.Cmd
		m.analysis, cmd = m.analysis.update(msg)
		return m, cmd

	case objectiveMsg:
		var cmd tea.Cmd
		m.steps, cmd = m.steps.update(msg)
		return m, cmd

	case profileLoadedMsg, profileSavedMsg:
		if err := msgErr(msg); err != nil {
			m.log.Error("profile request failed", "user", m.userID, "err", err)
		}
		var cmd tea.Cmd
		m.profile, cmd = m.profile.update(m.ctx, m.backend, msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			m.teardown()
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func msgErr(msg tea.Msg) error {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		return msg.err
	case profileSavedMsg:
		return msg.err
	}
	return nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.screen {
	case screenLogin:
		if key.Matches(msg, keys.SwitchAuth) {
			m.screen = screenRegister
			m.register = newRegisterScreen()
			return m, nil
		}
		m.login, cmd = m.login.update(m.ctx, m.backend, msg)
		return m, cmd

	case screenRegister:
		if key.Matches(msg, keys.Back) {
			m.screen = screenLogin
			return m, nil
		}
		m.register, cmd = m.register.update(m.ctx, m.backend, msg)
		return m, cmd
	}

	if key.Matches(msg, keys.Menu) {
		m.menuOpen = !m.menuOpen
		return m, nil
	}
	if m.menuOpen {
		switch {
		case key.Matches(msg, keys.Submit):
			return m.logout(), nil
		case key.Matches(msg, keys.Back):
			m.menuOpen = false
		}
		return m, nil
	}

	editingProfile := m.tab == tabProfile && m.profile.editing
	if !editingProfile {
		switch {
		case key.Matches(msg, keys.NextTab):
			return m.switchTab((m.tab + 1) % tabCount)
		case key.Matches(msg, keys.PrevTab):
			return m.switchTab((m.tab + tabCount - 1) % tabCount)
		}
	}

	switch m.tab {
	case tabSteps:
		m.steps, cmd = m.steps.update(msg)
	case tabForce:
		m.analysis, cmd = m.analysis.update(msg)
	case tabProfile:
		m.profile, cmd = m.profile.update(m.ctx, m.backend, msg)
	}
	return m, cmd
}

func (m Model) View() string {
	switch m.screen {
	case screenLogin:
		return m.login.view(m.theme) + "\n" + m.helpView()
	case screenRegister:
		return m.register.view(m.theme) + "\n" + m.helpView()
	}

	var b strings.Builder
	b.WriteString(m.theme.Header.Render(fmt.Sprintf("%s  %s", Icon("menu"), version.GetShortVersion())))
	b.WriteString("\n")
	if m.menuOpen {
		b.WriteString(m.theme.Border.Render(Icon("logout") + " Log out   " + m.theme.Hint.Render("enter confirm, esc close")))
		b.WriteString("\n")
	}
	b.WriteString(m.tabsView())
	b.WriteString("\n\n")

	switch m.tab {
	case tabSteps:
		b.WriteString(m.steps.view(m.theme))
	case tabForce:
		b.WriteString(m.analysis.view(m.theme))
	case tabProfile:
		b.WriteString(m.profile.view(m.theme))
	}
	b.WriteString("\n\n")
	b.WriteString(m.helpView())
	return b.String()
}

func (m Model) tabsView() string {
	parts := make([]string, 0, tabCount)
	for i, l := range tabLabels {
		label := Icon(l.icon) + " " + l.name
		if tab(i) == m.tab {
			parts = append(parts, m.theme.ActiveTab.Render(label))
		} else {
			parts = append(parts, m.theme.Tab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) helpView() string {
	var bindings []key.Binding
	switch m.screen {
	case screenLogin:
		bindings = []key.Binding{keys.Submit, keys.NextField, keys.SwitchAuth, keys.Quit}
	case screenRegister:
		bindings = []key.Binding{keys.Submit, keys.NextField, keys.Back, keys.Quit}
	default:
		bindings = []key.Binding{keys.NextTab, keys.Menu}
		switch m.tab {
		case tabForce:
			bindings = append(bindings, keys.Toggle, keys.MinutesUp, keys.MinutesDown, keys.Erase)
		case tabProfile:
			if m.profile.editing {
				bindings = []key.Binding{keys.Save, keys.NextField, keys.Back}
			} else {
				bindings = append(bindings, keys.Edit)
			}
		}
		bindings = append(bindings, keys.Quit)
	}
	return m.help.ShortHelpView(bindings)
}
