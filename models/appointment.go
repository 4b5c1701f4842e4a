package models

// Appointment statuses. Cancelled and no_show are terminal: once reached, the
// record accepts no further status or time mutation.
const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusNoShow    = "no_show"
)

// Appointment is a booked slot against the business schedule. Start, End and
// the audit timestamps use the DD-MM-YY HH:mm wire format.
type Appointment struct {
	ID        int    `json:"id"`
	ServiceID int    `json:"service_id"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// IsTerminalStatus reports whether a status admits no further transitions.
func IsTerminalStatus(status string) bool {
	return status == StatusCancelled || status == StatusNoShow
}
