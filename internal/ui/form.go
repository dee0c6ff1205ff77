package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type field struct {
	label    string
	hint     string
	password bool
	limit    int
	// filter rewrites the value after every keystroke, nil keeps it as typed.
	filter func(string) string
}

// form is a vertical list of text inputs with a single focused field.
type form struct {
	fields []field
	inputs []textinput.Model
	focus  int
}

func newForm(fields ...field) form {
	f := form{fields: fields, inputs: make([]textinput.Model, len(fields))}
	for i, fd := range fields {
		in := textinput.New()
		in.Placeholder = fd.hint
		in.Width = 32
		in.CharLimit = 64
		if fd.limit > 0 {
			in.CharLimit = fd.limit
		}
		if fd.password {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
		}
		f.inputs[i] = in
	}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

func (f form) value(i int) string { return strings.TrimSpace(f.inputs[i].Value()) }

// raw is the value as typed; passwords are not trimmed.
func (f form) raw(i int) string { return f.inputs[i].Value() }

func (f *form) setValue(i int, v string) { f.inputs[i].SetValue(v) }

func (f form) move(delta int) form {
	if len(f.inputs) == 0 {
		return f
	}
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
	return f
}

func (f form) blur() form {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	return f
}

func (f form) focused() form {
	f = f.blur()
	if len(f.inputs) > 0 {
		f.inputs[f.focus].Focus()
	}
	return f
}

func (f form) onLast() bool { return f.focus == len(f.inputs)-1 }

func (f form) update(msg tea.Msg) (form, tea.Cmd) {
	if len(f.inputs) == 0 {
		return f, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	if filter := f.fields[f.focus].filter; filter != nil {
		if v := f.inputs[f.focus].Value(); filter(v) != v {
			f.inputs[f.focus].SetValue(filter(v))
		}
	}
	return f, cmd
}

// view renders each field; notes holds an optional message per field index.
func (f form) view(t Theme, notes map[int]string) string {
	var b strings.Builder
	for i, in := range f.inputs {
		b.WriteString(t.Label.Render(f.fields[i].label))
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n")
		if n := notes[i]; n != "" {
			b.WriteString(t.Error.Render(n))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}
