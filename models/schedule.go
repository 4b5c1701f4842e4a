package models

// ScheduleConfig describes the business's single daily schedule: which
// weekdays it opens, the opening window, the slot step, and individual dates
// it stays closed. Loaded fresh from the store on every request.
type ScheduleConfig struct {
	Workdays    []string `json:"workdays"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
	SlotStepMin int      `json:"slot_step_min,omitempty"`
	Exceptions  []string `json:"exceptions"`
}
