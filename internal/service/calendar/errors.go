package calendar

import "errors"

var ErrUnknownCalendar = errors.New("calendar.service: unknown calendar")
