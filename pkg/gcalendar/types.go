package gcalendar

import "time"

// AllDayEventRequest is the input for creating an all-day event.
type AllDayEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	// Date is interpreted in its own location; only the calendar day is used.
	Date time.Time
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID       string
	Summary  string
	HtmlLink string
	Date     string
}
