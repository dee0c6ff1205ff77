// Package notify sends desktop notifications through beeep.
package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

const appName = "SmartStep"

func Info(title, message string) error {
	return beeep.Notify(title, message, "")
}

// AnalysisDone alerts that a force-distribution analysis ran to the end.
func AnalysisDone(display string) error {
	title, msg := FormatAnalysisDone(display)
	return beeep.Alert(title, msg, "")
}

func FormatAnalysisDone(display string) (string, string) {
	return appName, fmt.Sprintf("Force distribution analysis finished (%s).", display)
}

// FormatStepReminder builds the daily objective reminder.
func FormatStepReminder(current, objective int) (string, string) {
	title := "Daily step objective"
	left := objective - current
	if left <= 0 {
		return title, fmt.Sprintf("Objective of %d steps reached. Nice work!", objective)
	}
	return title, fmt.Sprintf("%d of %d steps so far, %d to go today.", current, objective, left)
}
