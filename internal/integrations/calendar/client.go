// Package calendar lists upcoming appointments from a Google calendar.
package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sv-web/sve-backend/internal/domain"
	"github.com/sv-web/sve-backend/internal/integrations/google"
)

// DefaultBaseURL is the Google Calendar API endpoint.
const DefaultBaseURL = "https://www.googleapis.com/calendar/v3"

// Scope is the OAuth scope the client needs.
const Scope = "https://www.googleapis.com/auth/calendar.events.readonly"

// Client is a minimal Google Calendar API client.
type Client struct {
	baseURL     string
	tokenSource *google.TokenSource
	httpClient  *http.Client
	log         Logger
}

// NewClient creates a new calendar client.
func NewClient(baseURL string, tokenSource *google.TokenSource, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:     baseURL,
		tokenSource: tokenSource,
		httpClient:  &http.Client{Timeout: timeout},
		log:         log,
	}
}

// Appointments lists the upcoming entries of the calendar ordered by start
// time, expanded to single events.
func (c *Client) Appointments(ctx context.Context, calendarID string, maxResults int) ([]*domain.Appointment, error) {
	query := url.Values{}
	query.Set("maxResults", strconv.Itoa(maxResults))
	query.Set("timeMin", time.Now().Format(time.RFC3339))
	query.Set("orderBy", "startTime")
	query.Set("singleEvents", "true")

	requestURL := fmt.Sprintf("%s/calendars/%s/events?%s", c.baseURL, url.PathEscape(calendarID), query.Encode())

	token, err := c.tokenSource.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: acquire token: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrInternal, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var events eventsResponse
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrInvalidResponse, err)
	}

	appointments := make([]*domain.Appointment, 0, len(events.Items))
	for index, item := range events.Items {
		appointment, err := intoAppointment(item, index)
		if err != nil {
			return nil, fmt.Errorf("%w: event %q: %v", ErrInvalidResponse, item.ID, err)
		}
		appointments = append(appointments, appointment)
	}
	return appointments, nil
}

func intoAppointment(item eventItem, sortIndex int) (*domain.Appointment, error) {
	startDate, err := intoDate(item.Start, 0)
	if err != nil {
		return nil, err
	}
	// whole-day entries carry an exclusive end date
	endDate, err := intoDate(item.End, -1)
	if err != nil {
		return nil, err
	}
	startDateTime, err := intoDateTime(item.Start)
	if err != nil {
		return nil, err
	}
	endDateTime, err := intoDateTime(item.End)
	if err != nil {
		return nil, err
	}

	return &domain.Appointment{
		ID:            item.ID,
		SortIndex:     sortIndex,
		Title:         item.Summary,
		Link:          item.HTMLLink,
		Description:   item.Description,
		StartDate:     startDate,
		EndDate:       endDate,
		StartDateTime: startDateTime,
		EndDateTime:   endDateTime,
	}, nil
}

func intoDate(value *eventDateTime, daysToAdd int) (*time.Time, error) {
	if value == nil || value.Date == nil {
		return nil, nil
	}
	date, err := time.Parse("2006-01-02", *value.Date)
	if err != nil {
		return nil, err
	}
	date = date.AddDate(0, 0, daysToAdd)
	return &date, nil
}

func intoDateTime(value *eventDateTime) (*time.Time, error) {
	if value == nil || value.DateTime == nil {
		return nil, nil
	}
	dateTime, err := time.Parse(time.RFC3339, *value.DateTime)
	if err != nil {
		return nil, err
	}
	return &dateTime, nil
}
