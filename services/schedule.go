package services

import (
	"strings"
	"time"

	"github.com/Fecu3799/project-arq-web/models"
	"github.com/Fecu3799/project-arq-web/utils"
)

// Sunday-first, matching time.Weekday ordinals.
var weekdayCodes = [...]string{"DOM", "LUN", "MAR", "MIE", "JUE", "VIE", "SAB"}

const defaultSlotStepMin = 30

func normalizeWeekday(v string) string {
	v = strings.ToUpper(strings.TrimSpace(v))
	if len(v) > 3 {
		v = v[:3]
	}
	return v
}

// IsOpenDay reports whether the business takes appointments on the given day:
// its weekday must be configured as a workday and the date must not be listed
// as an exception. A missing or malformed workday list closes the day rather
// than failing the request.
func IsOpenDay(day time.Time, cfg models.ScheduleConfig) bool {
	if len(cfg.Workdays) == 0 {
		return false
	}
	code := weekdayCodes[int(day.Weekday())]
	open := false
	for _, w := range cfg.Workdays {
		if normalizeWeekday(w) == code {
			open = true
			break
		}
	}
	if !open {
		return false
	}

	label := day.Format(models.DateLayout)
	for _, ex := range cfg.Exceptions {
		if strings.TrimSpace(ex) == label {
			return false
		}
	}
	return true
}

// BusinessWindow anchors the configured opening hours onto the given day.
// Malformed or non-ordered hours are an operator misconfiguration, not a user
// input error.
func BusinessWindow(day time.Time, cfg models.ScheduleConfig) (time.Time, time.Time, error) {
	start, err := time.Parse(models.TimeLayout, cfg.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, utils.NewInternal("The business hours are misconfigured")
	}
	end, err := time.Parse(models.TimeLayout, cfg.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, utils.NewInternal("The business hours are misconfigured")
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), start.Hour(), start.Minute(), 0, 0, day.Location())
	dayEnd := time.Date(day.Year(), day.Month(), day.Day(), end.Hour(), end.Minute(), 0, 0, day.Location())
	if !dayEnd.After(dayStart) {
		return time.Time{}, time.Time{}, utils.NewInternal("The business hours are misconfigured")
	}
	return dayStart, dayEnd, nil
}

func slotStep(cfg models.ScheduleConfig) time.Duration {
	if cfg.SlotStepMin > 0 {
		return time.Duration(cfg.SlotStepMin) * time.Minute
	}
	return defaultSlotStepMin * time.Minute
}
