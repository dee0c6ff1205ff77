package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ramanasai/smartstep/internal/countdown"
)

const (
	frameInterval = 80 * time.Millisecond
	scanHeight    = 8
	scanWidth     = 24
)

// Every timer message carries the run it was scheduled for; the Timer drops
// the ones from earlier runs.
type (
	analysisTickMsg  struct{ run uint64 }
	analysisTintMsg  struct{ run uint64 }
	analysisFrameMsg struct{ run uint64 }
)

type analysisTab struct {
	timer  *countdown.Timer
	onDone func(countdown.Snapshot)
	status string
}

func newAnalysisTab(now func() time.Time, onDone func(countdown.Snapshot)) analysisTab {
	return analysisTab{timer: countdown.New(now), onDone: onDone}
}

func analysisTick(run uint64) tea.Cmd {
	return tea.Tick(countdown.TickInterval, func(time.Time) tea.Msg { return analysisTickMsg{run: run} })
}

func analysisTint(run uint64, total time.Duration) tea.Cmd {
	return tea.Tick(total, func(time.Time) tea.Msg { return analysisTintMsg{run: run} })
}

func analysisFrame(run uint64) tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return analysisFrameMsg{run: run} })
}

func (a analysisTab) toggle() (analysisTab, tea.Cmd) {
	if a.timer.Toggle() != countdown.Running {
		a.status = "Analysis stopped."
		return a, nil
	}
	a.status = ""
	run := a.timer.Run()
	return a, tea.Batch(analysisTick(run), analysisTint(run, a.timer.Total()), analysisFrame(run))
}

// leave tears the run down when the tab goes away.
func (a analysisTab) leave() analysisTab {
	if a.timer.Cancel() {
		a.status = "Analysis stopped."
	}
	return a
}

func (a analysisTab) finished() (analysisTab, tea.Cmd) {
	a.status = "Analysis complete."
	if a.onDone == nil {
		return a, nil
	}
	snap, done := a.timer.Snapshot(), a.onDone
	return a, func() tea.Msg {
		done(snap)
		return nil
	}
}

func (a analysisTab) update(msg tea.Msg) (analysisTab, tea.Cmd) {
	switch msg := msg.(type) {
	case analysisTickMsg:
		if !a.timer.Tick(msg.run) {
			return a, nil
		}
		if a.timer.Analyzing() {
			return a, analysisTick(msg.run)
		}
		return a.finished()
	case analysisTintMsg:
		if a.timer.TintDone(msg.run) {
			return a.finished()
		}
	case analysisFrameMsg:
		if a.timer.Analyzing() && msg.run == a.timer.Run() {
			return a, analysisFrame(msg.run)
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Toggle):
			return a.toggle()
		case key.Matches(msg, keys.MinutesUp):
			a.timer.IncrementMinutes()
		case key.Matches(msg, keys.MinutesDown):
			a.timer.DecrementMinutes()
		case key.Matches(msg, keys.Erase):
			a.timer.Backspace()
		case msg.Type == tea.KeyRunes && len(msg.Runes) == 1:
			a.timer.PushDigit(msg.Runes[0])
		}
	}
	return a, nil
}

func (a analysisTab) view(t Theme) string {
	var b strings.Builder
	b.WriteString(t.Title.Render(Icon("force") + " Force distribution"))
	b.WriteString("\n\n")
	b.WriteString(a.scanView(t))
	b.WriteString("\n\n")
	b.WriteString(t.Digits.Render(a.timer.Digits().Display()))
	b.WriteString("\n")
	switch {
	case a.timer.Analyzing():
		b.WriteString(t.Success.Render("Analyzing…"))
	case a.status != "":
		b.WriteString(t.Hint.Render(a.status))
	default:
		b.WriteString(t.Hint.Render("Type MMSS, enter to start"))
	}
	return b.String()
}

// scanView draws the insole tinted by the tint phase with the scan line
// sweeping over it while a run is active.
func (a analysisTab) scanView(t Theme) string {
	tint := lipgloss.NewStyle().Foreground(lipgloss.Color(countdown.TintColor(a.timer.TintPhase())))
	offset := -1
	if a.timer.ScanRunning() {
		offset = countdown.ScanOffset(a.timer.ScanPhase(), scanHeight)
	}
	rows := make([]string, scanHeight)
	for i := range rows {
		if i == offset || i == offset+1 && offset >= 0 {
			rows[i] = t.ScanLine.Render(strings.Repeat("━", scanWidth))
			continue
		}
		rows[i] = tint.Render(insoleRow(i))
	}
	return lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Render(strings.Join(rows, "\n"))
}

func insoleRow(i int) string {
	widths := [scanHeight]int{8, 12, 12, 10, 8, 8, 10, 8}
	w := widths[i%scanHeight]
	pad := (scanWidth - w) / 2
	return strings.Repeat(" ", pad) + strings.Repeat("█", w) + strings.Repeat(" ", scanWidth-w-pad)
}
