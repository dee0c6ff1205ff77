package ui

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramanasai/smartstep/internal/api"
	"github.com/ramanasai/smartstep/internal/config"
	"github.com/ramanasai/smartstep/internal/countdown"
	"github.com/ramanasai/smartstep/internal/store"
)

type fakeBackend struct {
	mu       sync.Mutex
	loginErr error
	saveErr  error
	profile  *store.Profile
	saved    []store.Profile
	logins   int
}

func (f *fakeBackend) Register(_ context.Context, name, email, password string) (string, error) {
	return "new-user", nil
}

func (f *fakeBackend) Login(_ context.Context, email, password string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logins++
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return "user-1", nil
}

func (f *fakeBackend) SaveProfile(_ context.Context, p store.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, p)
	return nil
}

func (f *fakeBackend) GetProfile(_ context.Context, userID string) (*store.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.profile, nil
}

type testClock struct{ t time.Time }

func (c *testClock) now() time.Time { return c.t }

func newTestModel(b Backend) (Model, *testClock) {
	clk := &testClock{t: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	return New(Options{Config: config.Default(), Backend: b, Now: clk.now}), clk
}

func press(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func runes(s string) tea.Msg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func keyOf(k tea.KeyType) tea.Msg { return tea.KeyMsg{Type: k} }

// signIn walks the login form and delivers the backend result.
func signIn(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = press(t, m, runes("ana@example.com"), keyOf(tea.KeyEnter), runes("123456789"))
	m, cmd := press(t, m, keyOf(tea.KeyEnter))
	require.NotNil(t, cmd)
	m, _ = press(t, m, cmd())
	return m
}

func TestLoginRequiresFields(t *testing.T) {
	b := &fakeBackend{}
	m, _ := newTestModel(b)
	m, _ = press(t, m, keyOf(tea.KeyEnter))
	m, cmd := press(t, m, keyOf(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Equal(t, alertFieldsRequired, m.login.alert)
	assert.Zero(t, b.logins)
}

func TestLoginSuccessOpensMenu(t *testing.T) {
	m, _ := newTestModel(&fakeBackend{})
	m = signIn(t, m)
	assert.Equal(t, screenMenu, m.screen)
	assert.Equal(t, "user-1", m.userID)
	assert.Equal(t, tabSteps, m.tab)
	assert.Contains(t, m.View(), "Step counter")
}

func TestLoginRejected(t *testing.T) {
	m, _ := newTestModel(&fakeBackend{loginErr: &api.Error{Status: 400, Message: "Incorrect email or password."}})
	m = signIn(t, m)
	assert.Equal(t, screenLogin, m.screen)
	assert.Equal(t, alertBadCredentials, m.login.alert)

	m, _ = newTestModel(&fakeBackend{loginErr: context.DeadlineExceeded})
	m = signIn(t, m)
	assert.Equal(t, alertServerError, m.login.alert)
}

func TestRegisterValidation(t *testing.T) {
	m, _ := newTestModel(&fakeBackend{})
	m, _ = press(t, m, keyOf(tea.KeyCtrlR))
	require.Equal(t, screenRegister, m.screen)

	m, _ = press(t, m, runes("Ana 3"), keyOf(tea.KeyEnter))
	assert.Equal(t, "Ana ", m.register.form.raw(0), "digits are filtered from the name")

	m, _ = press(t, m, runes("not-an-email"), keyOf(tea.KeyEnter), runes("short"))
	notes := m.register.notes()
	assert.NotEmpty(t, notes[1])
	assert.NotEmpty(t, notes[2])

	m, cmd := press(t, m, keyOf(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Equal(t, alertFixInformation, m.register.alert)

	m, _ = press(t, m, keyOf(tea.KeyEsc))
	assert.Equal(t, screenLogin, m.screen)
}

func TestRegisterSuccessOpensMenu(t *testing.T) {
	m, _ := newTestModel(&fakeBackend{})
	m, _ = press(t, m, keyOf(tea.KeyCtrlR),
		runes("Ana"), keyOf(tea.KeyEnter),
		runes("ana@example.com"), keyOf(tea.KeyEnter),
		runes("123456789"))
	m, cmd := press(t, m, keyOf(tea.KeyEnter))
	require.NotNil(t, cmd)
	m, _ = press(t, m, cmd())
	assert.Equal(t, screenMenu, m.screen)
	assert.Equal(t, "new-user", m.userID)
}

func TestLogoutReturnsToLogin(t *testing.T) {
	m, _ := newTestModel(&fakeBackend{})
	m = signIn(t, m)
	m, _ = press(t, m, keyOf(tea.KeyTab), runes("5"), keyOf(tea.KeyEnter))
	require.True(t, m.analysis.timer.Analyzing())

	m, _ = press(t, m, keyOf(tea.KeyCtrlO))
	assert.True(t, m.menuOpen)
	assert.Contains(t, m.View(), "Log out")

	m, _ = press(t, m, keyOf(tea.KeyEnter))
	assert.Equal(t, screenLogin, m.screen)
	assert.Empty(t, m.userID)
	assert.False(t, m.menuOpen)
}

func TestTabsCycle(t *testing.T) {
	m, _ := newTestModel(&fakeBackend{})
	m = signIn(t, m)
	m, _ = press(t, m, keyOf(tea.KeyTab))
	assert.Equal(t, tabForce, m.tab)
	m, cmd := press(t, m, keyOf(tea.KeyTab))
	assert.Equal(t, tabProfile, m.tab)
	assert.NotNil(t, cmd, "entering the profile tab loads it")
	m, _ = press(t, m, keyOf(tea.KeyTab))
	assert.Equal(t, tabSteps, m.tab)
	m, _ = press(t, m, keyOf(tea.KeyShiftTab))
	assert.Equal(t, tabProfile, m.tab)
}

func TestAnalysisRunsToCompletion(t *testing.T) {
	var done []countdown.Snapshot
	clk := &testClock{t: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	m := New(Options{Config: config.Default(), Backend: &fakeBackend{}, Now: clk.now,
		OnAnalysisDone: func(s countdown.Snapshot) { done = append(done, s) }})
	m = signIn(t, m)

	m, _ = press(t, m, keyOf(tea.KeyTab), runes("3"))
	assert.Equal(t, countdown.Digits("0003"), m.analysis.timer.Digits())
	m, cmd := press(t, m, keyOf(tea.KeyEnter))
	require.NotNil(t, cmd)
	require.True(t, m.analysis.timer.Analyzing())
	run := m.analysis.timer.Run()

	for i := 0; i < 2; i++ {
		clk.t = clk.t.Add(time.Second)
		m, cmd = press(t, m, analysisTickMsg{run: run})
		require.NotNil(t, cmd, "ticker re-arms while running")
	}
	assert.Contains(t, m.View(), "00:01")

	clk.t = clk.t.Add(time.Second)
	m, cmd = press(t, m, analysisTickMsg{run: run})
	assert.False(t, m.analysis.timer.Analyzing())
	require.NotNil(t, cmd)
	assert.Nil(t, cmd())
	require.Len(t, done, 1)
	assert.Equal(t, 3*time.Second, done[0].Total)

	m, cmd = press(t, m, analysisTintMsg{run: run})
	assert.Nil(t, cmd)
	assert.Len(t, done, 1, "tint after the ticker finished is ignored")
	assert.Contains(t, m.View(), "Analysis complete.")
}

func TestLeavingForceTabCancelsRun(t *testing.T) {
	var done int
	m := New(Options{Config: config.Default(), Backend: &fakeBackend{},
		OnAnalysisDone: func(countdown.Snapshot) { done++ }})
	m = signIn(t, m)
	m, _ = press(t, m, keyOf(tea.KeyTab), runes("9"), keyOf(tea.KeyEnter))
	run := m.analysis.timer.Run()
	require.True(t, m.analysis.timer.Analyzing())

	m, _ = press(t, m, keyOf(tea.KeyTab))
	assert.False(t, m.analysis.timer.Analyzing())

	m, cmd := press(t, m, analysisTickMsg{run: run}, analysisTintMsg{run: run})
	assert.Nil(t, cmd)
	assert.Zero(t, done)
}

func TestOldSessionTimerEventsIgnoredAfterRelogin(t *testing.T) {
	var done int
	m := New(Options{Config: config.Default(), Backend: &fakeBackend{},
		OnAnalysisDone: func(countdown.Snapshot) { done++ }})
	m = signIn(t, m)
	m, _ = press(t, m, keyOf(tea.KeyTab), runes("0"), runes("5"), runes("0"), runes("0"), keyOf(tea.KeyEnter))
	require.True(t, m.analysis.timer.Analyzing())
	oldRun := m.analysis.timer.Run()

	m, _ = press(t, m, keyOf(tea.KeyCtrlO), keyOf(tea.KeyEnter))
	require.Equal(t, screenLogin, m.screen)

	m = signIn(t, m)
	m, _ = press(t, m, keyOf(tea.KeyTab), runes("1"), runes("0"), runes("0"), runes("0"), keyOf(tea.KeyEnter))
	require.True(t, m.analysis.timer.Analyzing())
	require.NotEqual(t, oldRun, m.analysis.timer.Run())

	m, cmd := press(t, m, analysisTintMsg{run: oldRun})
	assert.Nil(t, cmd)
	m, cmd = press(t, m, analysisTickMsg{run: oldRun})
	assert.Nil(t, cmd, "a stale tick must not start a second ticker chain")
	assert.True(t, m.analysis.timer.Analyzing())
	assert.Equal(t, 600, m.analysis.timer.Remaining())
	assert.Zero(t, done)
}

func TestProfileEditAndSave(t *testing.T) {
	b := &fakeBackend{profile: &store.Profile{UserID: "user-1", Name: "Ana", Age: "31", Weight: "61.5", Height: "168"}}
	m, _ := newTestModel(b)
	m = signIn(t, m)

	m, cmd := press(t, m, keyOf(tea.KeyShiftTab))
	require.Equal(t, tabProfile, m.tab)
	m, _ = press(t, m, cmd())
	assert.Contains(t, m.View(), "61.5")

	m, _ = press(t, m, keyOf(tea.KeyCtrlE))
	require.True(t, m.profile.editing)
	m, _ = press(t, m, keyOf(tea.KeyDown), keyOf(tea.KeyBackspace), runes("2x"))
	assert.Equal(t, "32", m.profile.form.value(fieldAge))

	m, cmd = press(t, m, keyOf(tea.KeyCtrlS))
	require.NotNil(t, cmd)
	m, _ = press(t, m, cmd())
	assert.False(t, m.profile.editing)
	assert.Equal(t, "Profile updated successfully.", m.profile.alert)
	require.Len(t, b.saved, 1)
	assert.Equal(t, store.Numeric("32"), b.saved[0].Age)
	assert.Equal(t, "user-1", b.saved[0].UserID)
}

func TestProfileSaveFailure(t *testing.T) {
	b := &fakeBackend{saveErr: &api.Error{Status: 500, Message: "database unavailable"}}
	m, _ := newTestModel(b)
	m = signIn(t, m)
	m, cmd := press(t, m, keyOf(tea.KeyShiftTab))
	m, _ = press(t, m, cmd(), keyOf(tea.KeyCtrlE))
	m, cmd = press(t, m, keyOf(tea.KeyCtrlS))
	m, _ = press(t, m, cmd())
	assert.True(t, m.profile.editing)
	assert.True(t, m.profile.alertErr)
	assert.Equal(t, "database unavailable", m.profile.alert)
}

func TestIconTable(t *testing.T) {
	for _, name := range []string{"steps", "force", "profile", "menu", "logout", "calories", "distance", "time"} {
		assert.NotEmpty(t, Icon(name), name)
	}
	assert.Empty(t, Icon("unknown"))
}
