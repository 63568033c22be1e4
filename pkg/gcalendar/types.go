package gcalendar

import "time"

// BookingRequest is the input for placing an appointment on the calendar.
type BookingRequest struct {
	CalendarID   string
	CustomerName string
	Phone        string
	StartTime    time.Time
	EndTime      time.Time
	Timezone     string // e.g. "America/Chicago"
	Notes        string
}

// Booking is the placed calendar appointment.
type Booking struct {
	EventID   string
	HtmlLink  string
	StartTime time.Time
	EndTime   time.Time
}
