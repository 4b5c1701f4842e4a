package models

// Slot statuses as reported by the availability query.
const (
	SlotAvailable = "available"
	SlotOccupied  = "occupied"
)

// Slot is a derived view of one candidate booking window. Slots are
// recomputed on every availability query and never persisted.
type Slot struct {
	Time   string `json:"time"`
	Status string `json:"status"`
}
