package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ramanasai/smartstep/internal/api"
	"github.com/ramanasai/smartstep/internal/store"
	"github.com/ramanasai/smartstep/internal/validate"
)

type profileLoadedMsg struct {
	profile *store.Profile
	err     error
}

type profileSavedMsg struct{ err error }

const (
	fieldName = iota
	fieldAge
	fieldWeight
	fieldHeight
)

type profileTab struct {
	userID   string
	form     form
	editing  bool
	loading  bool
	alert    string
	alertErr bool
}

func integers(s string) string { return validate.Numeric(s, false) }

func decimals(s string) string { return validate.Numeric(s, true) }

func newProfileTab(userID string) profileTab {
	f := newForm(
		field{label: "Name", hint: "Full name", filter: validate.Name},
		field{label: "Age", hint: "years", limit: 3, filter: integers},
		field{label: "Weight (kg)", hint: "kg", limit: 6, filter: decimals},
		field{label: "Height (cm)", hint: "cm", limit: 6, filter: decimals},
	)
	return profileTab{userID: userID, form: f.blur()}
}

func (p profileTab) load(ctx context.Context, b Backend) (profileTab, tea.Cmd) {
	p.loading = true
	userID := p.userID
	return p, func() tea.Msg {
		prof, err := b.GetProfile(ctx, userID)
		return profileLoadedMsg{profile: prof, err: err}
	}
}

func (p profileTab) save(ctx context.Context, b Backend) (profileTab, tea.Cmd) {
	prof := store.Profile{
		UserID: p.userID,
		Name:   p.form.value(fieldName),
		Age:    store.Numeric(p.form.value(fieldAge)),
		Weight: store.Numeric(p.form.value(fieldWeight)),
		Height: store.Numeric(p.form.value(fieldHeight)),
	}
	return p, func() tea.Msg {
		return profileSavedMsg{err: b.SaveProfile(ctx, prof)}
	}
}

func (p profileTab) update(ctx context.Context, b Backend, msg tea.Msg) (profileTab, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		p.loading = false
		if msg.err != nil {
			p.alert, p.alertErr = "Could not load the profile.", true
			return p, nil
		}
		if msg.profile != nil {
			p.form.setValue(fieldName, msg.profile.Name)
			p.form.setValue(fieldAge, string(msg.profile.Age))
			p.form.setValue(fieldWeight, string(msg.profile.Weight))
			p.form.setValue(fieldHeight, string(msg.profile.Height))
		}
		return p, nil
	case profileSavedMsg:
		var apiErr *api.Error
		switch {
		case msg.err == nil:
			p.alert, p.alertErr = "Profile updated successfully.", false
			p.editing = false
			p.form = p.form.blur()
		case errors.As(msg.err, &apiErr) && apiErr.Message != "":
			p.alert, p.alertErr = apiErr.Message, true
		case errors.As(msg.err, &apiErr):
			p.alert, p.alertErr = "Could not update the profile.", true
		default:
			p.alert, p.alertErr = "Error updating the profile.", true
		}
		return p, nil
	case tea.KeyMsg:
		if !p.editing {
			if key.Matches(msg, keys.Edit) {
				p.editing = true
				p.alert = ""
				p.form = p.form.focused()
			}
			return p, nil
		}
		switch {
		case key.Matches(msg, keys.Save):
			return p.save(ctx, b)
		case key.Matches(msg, keys.Back):
			p.editing = false
			p.form = p.form.blur()
			return p, nil
		case key.Matches(msg, keys.NextField):
			p.form = p.form.move(1)
			return p, nil
		case key.Matches(msg, keys.PrevField):
			p.form = p.form.move(-1)
			return p, nil
		case key.Matches(msg, keys.Submit):
			if p.form.onLast() {
				return p.save(ctx, b)
			}
			p.form = p.form.move(1)
			return p, nil
		}
		var cmd tea.Cmd
		p.form, cmd = p.form.update(msg)
		return p, cmd
	}
	return p, nil
}

func (p profileTab) view(t Theme) string {
	var b strings.Builder
	b.WriteString(t.Title.Render(Icon("profile") + " Profile"))
	b.WriteString("\n\n")
	switch {
	case p.loading:
		b.WriteString(t.Hint.Render("Loading…"))
		b.WriteString("\n")
	case p.editing:
		b.WriteString(p.form.view(t, nil))
	default:
		for i, fd := range p.form.fields {
			v := p.form.value(i)
			if v == "" {
				v = "-"
			}
			b.WriteString(t.Label.Render(fd.label + ": "))
			b.WriteString(t.Value.Render(v))
			b.WriteString("\n")
		}
	}
	if p.alert != "" {
		b.WriteString("\n")
		if p.alertErr {
			b.WriteString(t.Error.Render(p.alert))
		} else {
			b.WriteString(t.Success.Render(p.alert))
		}
	}
	return b.String()
}
