package gcalendar

import "time"

// Event is a simplified representation of a Google Calendar event.
// For all-day events End is the last second of the final day.
type Event struct {
	ID          string
	Summary     string
	Description string
	Location    string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
	// Location interprets all-day dates. Defaults to UTC.
	Location *time.Location
}
