package models

// Service is a bookable catalog entry. Services are deactivated rather than
// deleted so existing appointments keep a valid reference.
type Service struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	DurationMin int     `json:"duration_min"`
	Price       float64 `json:"price"`
	Active      bool    `json:"active"`
}
