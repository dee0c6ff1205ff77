package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectiveIsDebounced(t *testing.T) {
	s, _ := newStepsTab(6000, 10000).focus()

	s, cmd := s.update(tea.KeyMsg{Type: tea.KeyBackspace})
	require.NotNil(t, cmd)
	s, _ = s.update(tea.KeyMsg{Type: tea.KeyBackspace})
	s, _ = s.update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "10", s.input.Value())
	assert.Equal(t, 10000, s.objective, "not applied before the pause")

	s, _ = s.update(objectiveMsg{seq: 1})
	assert.Equal(t, 10000, s.objective, "superseded edits are dropped")

	s, _ = s.update(objectiveMsg{seq: s.seq})
	assert.Equal(t, 10, s.objective)
	assert.Equal(t, 0, s.ring().Remaining())
}

func TestObjectiveRejectsLetters(t *testing.T) {
	s, _ := newStepsTab(6000, 10000).focus()
	s, _ = s.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	assert.Equal(t, "10000", s.input.Value())
	assert.Zero(t, s.seq)
}

func TestEmptyObjectiveFallsBack(t *testing.T) {
	s, _ := newStepsTab(6000, 5000).focus()
	for range "5000" {
		s, _ = s.update(tea.KeyMsg{Type: tea.KeyBackspace})
	}
	s, _ = s.update(objectiveMsg{seq: s.seq})
	assert.Equal(t, 10000, s.objective)
	assert.InDelta(t, 0.6, s.ring().Percent(), 1e-9)
	assert.Contains(t, s.view(DefaultTheme), "6000 / 10000 steps")
}
