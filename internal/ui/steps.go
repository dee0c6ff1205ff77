package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ramanasai/smartstep/internal/steps"
	"github.com/ramanasai/smartstep/internal/validate"
)

const objectiveDebounce = 500 * time.Millisecond

// objectiveMsg applies the typed objective once typing pauses. Only the
// message carrying the latest seq wins.
type objectiveMsg struct{ seq int }

type stepsTab struct {
	input     textinput.Model
	bar       progress.Model
	current   int
	objective int
	seq       int
}

func newStepsTab(current, objective int) stepsTab {
	if objective <= 0 {
		objective = steps.DefaultObjective
	}
	in := textinput.New()
	in.Placeholder = strconv.Itoa(steps.DefaultObjective)
	in.CharLimit = 7
	in.Width = 10
	in.SetValue(strconv.Itoa(objective))

	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 40

	return stepsTab{input: in, bar: bar, current: current, objective: objective}
}

func (s stepsTab) focus() (stepsTab, tea.Cmd) {
	cmd := s.input.Focus()
	return s, cmd
}

func (s stepsTab) blur() stepsTab {
	s.input.Blur()
	return s
}

func (s stepsTab) resize(width int) stepsTab {
	w := width - 20
	if w > 60 {
		w = 60
	}
	if w < 10 {
		w = 10
	}
	s.bar.Width = w
	return s
}

func (s stepsTab) ring() steps.Ring { return steps.NewRing(s.current, s.objective) }

func (s stepsTab) update(msg tea.Msg) (stepsTab, tea.Cmd) {
	switch msg := msg.(type) {
	case objectiveMsg:
		if msg.seq == s.seq {
			s.objective = steps.ParseObjective(s.input.Value())
		}
		return s, nil
	case tea.KeyMsg:
		before := s.input.Value()
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		if v := validate.Numeric(s.input.Value(), false); v != s.input.Value() {
			s.input.SetValue(v)
		}
		if s.input.Value() == before {
			return s, cmd
		}
		s.seq++
		seq := s.seq
		return s, tea.Batch(cmd, tea.Tick(objectiveDebounce, func(time.Time) tea.Msg {
			return objectiveMsg{seq: seq}
		}))
	}
	return s, nil
}

func (s stepsTab) view(t Theme) string {
	r := s.ring()
	var b strings.Builder
	b.WriteString(t.Title.Render(Icon("steps") + " Step counter"))
	b.WriteString("\n\n")
	b.WriteString(t.Label.Render("Daily objective "))
	b.WriteString(s.input.View())
	b.WriteString("\n\n")
	b.WriteString(s.bar.ViewAs(r.Percent()))
	b.WriteString(fmt.Sprintf(" %3.0f%%\n", r.Percent()*100))
	b.WriteString(t.Value.Render(fmt.Sprintf("%d / %d steps", r.Progress, r.Limit)))
	if left := r.Remaining(); left > 0 {
		b.WriteString(t.Hint.Render(fmt.Sprintf("  %d to go", left)))
	} else {
		b.WriteString(t.Success.Render("  objective reached"))
	}
	b.WriteString("\n\n")

	cells := make([]string, 0, 3)
	for _, m := range steps.Metrics() {
		cell := lipgloss.JoinVertical(lipgloss.Center,
			Icon(m.Icon),
			t.Value.Render(m.Value),
			t.Label.Render(m.Label),
		)
		cells = append(cells, lipgloss.NewStyle().Width(14).Align(lipgloss.Center).Render(cell))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	return b.String()
}
