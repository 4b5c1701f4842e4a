package models

// Wire layouts shared by the schedule, appointments and availability
// responses. Dates travel as DD-MM-YY, times as HH:mm.
const (
	DateLayout     = "02-01-06"
	TimeLayout     = "15:04"
	DateTimeLayout = "02-01-06 15:04"
)
