// Package schedule fires the daily step reminder on configured workdays.
package schedule

import (
	"context"
	"strings"
	"time"

	"github.com/ramanasai/smartstep/internal/config"
)

const fallbackHour = 19

// NextAt returns the next reminder time after now that falls on a workday
// and is not listed as a holiday.
func NextAt(now time.Time, cfg config.Config) time.Time {
	loc := cfg.Location()
	now = now.In(loc)

	hour, min := fallbackHour, 0
	if t, err := time.ParseInLocation("15:04", strings.TrimSpace(cfg.Reminder.Time), loc); err == nil {
		hour, min = t.Hour(), t.Minute()
	}

	workdays := make(map[string]bool, len(cfg.Reminder.Workdays))
	for _, d := range cfg.Reminder.Workdays {
		workdays[d] = true
	}
	holidays := make(map[string]bool, len(cfg.Reminder.Holidays))
	for _, h := range cfg.Reminder.Holidays {
		holidays[strings.TrimSpace(h)] = true
	}
	if len(workdays) == 0 {
		// every day
		for d := time.Sunday; d <= time.Saturday; d++ {
			workdays[d.String()[:3]] = true
		}
	}

	cand := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, loc)
	if !now.Before(cand) {
		cand = cand.AddDate(0, 0, 1)
	}
	for i := 0; i < 366*2; i++ {
		if workdays[cand.Weekday().String()[:3]] && !holidays[cand.Format("2006-01-02")] {
			return cand
		}
		cand = cand.AddDate(0, 0, 1)
	}
	return cand
}

// RunConfigured calls f at every scheduled reminder until ctx is cancelled.
func RunConfigured(ctx context.Context, cfg config.Config, f func()) {
	t := time.NewTimer(time.Until(NextAt(time.Now(), cfg)))
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			f()
			t.Reset(time.Until(NextAt(time.Now(), cfg)))
		}
	}
}
