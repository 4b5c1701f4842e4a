package services

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/Fecu3799/project-arq-web/models"
	"github.com/Fecu3799/project-arq-web/utils"
)

func weekSchedule() models.ScheduleConfig {
	return models.ScheduleConfig{
		Workdays:   []string{"LUN", "MAR", "MIE", "JUE", "VIE"},
		StartTime:  "09:00",
		EndTime:    "10:00",
		Exceptions: []string{},
	}
}

// 12-11-26 is a Thursday.
func thursday() time.Time {
	return time.Date(2026, 11, 12, 0, 0, 0, 0, time.Local)
}

func TestIsOpenDay_Workday(t *testing.T) {
	if !IsOpenDay(thursday(), weekSchedule()) {
		t.Fatal("expected Thursday to be open")
	}
}

func TestIsOpenDay_Weekend(t *testing.T) {
	saturday := time.Date(2026, 11, 14, 0, 0, 0, 0, time.Local)
	if IsOpenDay(saturday, weekSchedule()) {
		t.Fatal("expected Saturday to be closed")
	}
}

func TestIsOpenDay_Exception(t *testing.T) {
	cfg := weekSchedule()
	cfg.Exceptions = []string{"12-11-26"}
	if IsOpenDay(thursday(), cfg) {
		t.Fatal("expected exception date to be closed")
	}
}

func TestIsOpenDay_NormalizesWeekdayCodes(t *testing.T) {
	cfg := weekSchedule()
	cfg.Workdays = []string{"jueves", " lun "}
	if !IsOpenDay(thursday(), cfg) {
		t.Fatal("expected lowercase long-form weekday to match")
	}
}

func TestIsOpenDay_FailsClosedOnMissingWorkdays(t *testing.T) {
	cfg := weekSchedule()
	cfg.Workdays = nil
	if IsOpenDay(thursday(), cfg) {
		t.Fatal("expected missing workdays to close the day")
	}
}

func TestBusinessWindow_AnchorsHoursOnDay(t *testing.T) {
	start, end, err := BusinessWindow(thursday(), weekSchedule())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantStart := time.Date(2026, 11, 12, 9, 0, 0, 0, time.Local)
	wantEnd := time.Date(2026, 11, 12, 10, 0, 0, 0, time.Local)
	if !start.Equal(wantStart) || !end.Equal(wantEnd) {
		t.Fatalf("window = [%s, %s), want [%s, %s)", start, end, wantStart, wantEnd)
	}
}

func TestBusinessWindow_MalformedHoursAreInternal(t *testing.T) {
	cfg := weekSchedule()
	cfg.StartTime = "nine"

	_, _, err := BusinessWindow(thursday(), cfg)
	assertStatus(t, err, http.StatusInternalServerError)
}

func TestBusinessWindow_EndNotAfterStartIsInternal(t *testing.T) {
	cfg := weekSchedule()
	cfg.StartTime = "10:00"
	cfg.EndTime = "09:00"

	_, _, err := BusinessWindow(thursday(), cfg)
	assertStatus(t, err, http.StatusInternalServerError)
}

func assertStatus(t *testing.T, err error, status int) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected an error with status %d, got nil", status)
	}
	var apiErr *utils.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected an APIError, got %T: %v", err, err)
	}
	if apiErr.Status != status {
		t.Fatalf("expected status %d, got %d (%s)", status, apiErr.Status, apiErr.Detail)
	}
}
