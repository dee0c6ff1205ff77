package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatStepReminder(t *testing.T) {
	title, msg := FormatStepReminder(6000, 10000)
	assert.Equal(t, "Daily step objective", title)
	assert.Equal(t, "6000 of 10000 steps so far, 4000 to go today.", msg)

	_, msg = FormatStepReminder(12000, 10000)
	assert.Equal(t, "Objective of 10000 steps reached. Nice work!", msg)
}

func TestFormatAnalysisDone(t *testing.T) {
	title, msg := FormatAnalysisDone("01:30")
	assert.Equal(t, "SmartStep", title)
	assert.Equal(t, "Force distribution analysis finished (01:30).", msg)
}
