package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ramanasai/smartstep/internal/api"
	"github.com/ramanasai/smartstep/internal/validate"
)

type loginResultMsg struct {
	id  string
	err error
}

type registerResultMsg struct {
	id  string
	err error
}

const (
	alertFieldsRequired = "All fields are required."
	alertFixInformation = "Please correct the information."
	alertBadCredentials = "Incorrect email or password."
	alertServerError    = "Server error."
	alertRegisterFailed = "Could not register."
	alertRegisterBroken = "There was a problem with the registration."
)

func validationAlert(err error) string {
	switch {
	case errors.Is(err, validate.ErrFieldsRequired):
		return alertFieldsRequired
	case errors.Is(err, validate.ErrFixInformation):
		return alertFixInformation
	}
	return err.Error()
}

type loginScreen struct {
	form  form
	alert string
	busy  bool
}

func newLoginScreen() loginScreen {
	return loginScreen{form: newForm(
		field{label: "Email", hint: "you@example.com", limit: 128},
		field{label: "Password", hint: "password", password: true, limit: 128},
	)}
}

func (s loginScreen) update(ctx context.Context, b Backend, msg tea.Msg) (loginScreen, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		s.busy = false
		switch {
		case msg.err == nil:
			s.alert = ""
		case isServerReply(msg.err):
			s.alert = alertBadCredentials
		default:
			s.alert = alertServerError
		}
		return s, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.NextField):
			s.form = s.form.move(1)
			return s, nil
		case key.Matches(msg, keys.PrevField):
			s.form = s.form.move(-1)
			return s, nil
		case key.Matches(msg, keys.Submit):
			if !s.form.onLast() {
				s.form = s.form.move(1)
				return s, nil
			}
			return s.submit(ctx, b)
		}
	}
	var cmd tea.Cmd
	s.form, cmd = s.form.update(msg)
	return s, cmd
}

func (s loginScreen) submit(ctx context.Context, b Backend) (loginScreen, tea.Cmd) {
	if s.busy {
		return s, nil
	}
	email, password := s.form.value(0), s.form.raw(1)
	if err := validate.Login(email, password); err != nil {
		s.alert = validationAlert(err)
		return s, nil
	}
	s.busy = true
	s.alert = ""
	return s, func() tea.Msg {
		id, err := b.Login(ctx, email, password)
		return loginResultMsg{id: id, err: err}
	}
}

func (s loginScreen) view(t Theme) string {
	var b strings.Builder
	b.WriteString(t.Title.Render(Icon("steps") + " SmartStep"))
	b.WriteString("\n\n")
	b.WriteString(s.form.view(t, nil))
	if s.busy {
		b.WriteString(t.Hint.Render("Signing in…"))
		b.WriteString("\n")
	}
	if s.alert != "" {
		b.WriteString(t.Error.Render(s.alert))
		b.WriteString("\n")
	}
	b.WriteString(t.Hint.Render("No account yet? ctrl+r to register"))
	return t.Border.Render(b.String())
}

type registerScreen struct {
	form  form
	alert string
	busy  bool
}

func newRegisterScreen() registerScreen {
	return registerScreen{form: newForm(
		field{label: "Name", hint: "Full name", filter: validate.Name},
		field{label: "Email", hint: "you@example.com", limit: 128},
		field{label: "Password", hint: "more than 8 characters", password: true, limit: 128},
	)}
}

func (s registerScreen) update(ctx context.Context, b Backend, msg tea.Msg) (registerScreen, tea.Cmd) {
	switch msg := msg.(type) {
	case registerResultMsg:
		s.busy = false
		var apiErr *api.Error
		switch {
		case msg.err == nil:
			s.alert = ""
		case errors.As(msg.err, &apiErr) && apiErr.Message != "":
			s.alert = apiErr.Message
		case errors.As(msg.err, &apiErr):
			s.alert = alertRegisterFailed
		default:
			s.alert = alertRegisterBroken
		}
		return s, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.NextField):
			s.form = s.form.move(1)
			return s, nil
		case key.Matches(msg, keys.PrevField):
			s.form = s.form.move(-1)
			return s, nil
		case key.Matches(msg, keys.Submit):
			if !s.form.onLast() {
				s.form = s.form.move(1)
				return s, nil
			}
			return s.submit(ctx, b)
		}
	}
	var cmd tea.Cmd
	s.form, cmd = s.form.update(msg)
	return s, cmd
}

func (s registerScreen) submit(ctx context.Context, b Backend) (registerScreen, tea.Cmd) {
	if s.busy {
		return s, nil
	}
	name, email, password := s.form.value(0), s.form.value(1), s.form.raw(2)
	if err := validate.Registration(name, email, password); err != nil {
		s.alert = validationAlert(err)
		return s, nil
	}
	s.busy = true
	s.alert = ""
	return s, func() tea.Msg {
		id, err := b.Register(ctx, name, email, password)
		return registerResultMsg{id: id, err: err}
	}
}

// notes shows field errors as soon as the field holds something.
func (s registerScreen) notes() map[int]string {
	notes := map[int]string{}
	if err := validate.Email(s.form.value(1)); err != nil {
		notes[1] = "Invalid email address."
	}
	if pw := s.form.raw(2); pw != "" && validate.Password(pw) != nil {
		notes[2] = "Password must be longer than 8 characters."
	}
	return notes
}

func (s registerScreen) view(t Theme) string {
	var b strings.Builder
	b.WriteString(t.Title.Render("Create account"))
	b.WriteString("\n\n")
	b.WriteString(s.form.view(t, s.notes()))
	if s.busy {
		b.WriteString(t.Hint.Render("Registering…"))
		b.WriteString("\n")
	}
	if s.alert != "" {
		b.WriteString(t.Error.Render(s.alert))
		b.WriteString("\n")
	}
	b.WriteString(t.Hint.Render("esc back to login"))
	return t.Border.Render(b.String())
}

func isServerReply(err error) bool {
	var apiErr *api.Error
	return errors.As(err, &apiErr)
}
