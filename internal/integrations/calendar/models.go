package calendar

// Logger is the logging surface the client needs.
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type eventsResponse struct {
	Items []eventItem `json:"items"`
}

type eventItem struct {
	ID          string         `json:"id"`
	Summary     *string        `json:"summary"`
	HTMLLink    *string        `json:"htmlLink"`
	Description *string        `json:"description"`
	Start       *eventDateTime `json:"start"`
	End         *eventDateTime `json:"end"`
}

// eventDateTime carries either Date (whole-day entries) or DateTime.
type eventDateTime struct {
	Date     *string `json:"date"`
	DateTime *string `json:"dateTime"`
}
