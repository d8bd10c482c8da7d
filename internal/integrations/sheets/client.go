// Package sheets writes booking rows into the Google spreadsheet that
// serves as the payment ledger of an event.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sv-web/sve-backend/internal/domain"
	"github.com/sv-web/sve-backend/internal/integrations/google"
	"github.com/sv-web/sve-backend/pkg/l10n"
)

// DefaultBaseURL is the Google Sheets API endpoint.
const DefaultBaseURL = "https://sheets.googleapis.com/v4/spreadsheets"

// Scope is the OAuth scope the client needs.
const Scope = "https://www.googleapis.com/auth/spreadsheets"

// Client is a minimal Google Sheets API client scoped to the booking
// ledger operations.
type Client struct {
	baseURL     string
	tokenSource *google.TokenSource
	httpClient  *http.Client
	location    *time.Location
	log         Logger
}

// NewClient creates a new sheets client.
func NewClient(baseURL string, tokenSource *google.TokenSource, timeout time.Duration, log Logger) (*Client, error) {
	location, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		return nil, fmt.Errorf("%w: load timezone: %v", ErrInternal, err)
	}
	return &Client{
		baseURL:     baseURL,
		tokenSource: tokenSource,
		httpClient:  &http.Client{Timeout: timeout},
		location:    location,
		log:         log,
	}, nil
}

// AppendBooking writes one booking row into the ledger sheet of the event.
// The row lands in the first free row of columns B to L, with the cells
// ordered the way the sheet orders its header columns.
func (c *Client) AppendBooking(ctx context.Context, event *domain.Event, booking *domain.EventBooking, amount float64) error {
	sheetTitle, err := c.sheetTitle(ctx, event.SheetID, event.GID)
	if err != nil {
		return err
	}

	values, err := c.getValues(ctx, event.SheetID, fmt.Sprintf("'%s'!B1:L1000", sheetTitle))
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return fmt.Errorf("%w: sheet %q of spreadsheet %q has no header row", ErrMissingHeaders, sheetTitle, event.SheetID)
	}

	positions, err := headerPositions(values[0])
	if err != nil {
		return fmt.Errorf("%w: sheet %q of spreadsheet %q: %v", ErrMissingHeaders, sheetTitle, event.SheetID, err)
	}

	row := c.bookingRow(booking, amount, positions)
	insertIndex := len(values) + 1

	writeRange := fmt.Sprintf("'%s'!B%d:L%d", sheetTitle, insertIndex, insertIndex)
	if err := c.updateValues(ctx, event.SheetID, writeRange, row); err != nil {
		return err
	}

	c.log.Info("Booking of %s %s appended to sheet %q row %d", booking.FirstName, booking.LastName, sheetTitle, insertIndex)
	return nil
}

// DetectBooking reports whether the ledger already contains a row whose
// member-supplied cells (name, address, email, phone, membership flag)
// exactly match the booking, trimmed and case-sensitive. The phone
// apostrophe is a format marker the API does not read back, so it is
// ignored on both sides. Used to invalidate used prebooking links.
func (c *Client) DetectBooking(ctx context.Context, event *domain.Event, booking *domain.EventBooking) (bool, error) {
	sheetTitle, err := c.sheetTitle(ctx, event.SheetID, event.GID)
	if err != nil {
		return false, err
	}

	values, err := c.getValues(ctx, event.SheetID, fmt.Sprintf("'%s'!B1:L1000", sheetTitle))
	if err != nil {
		return false, err
	}
	if len(values) == 0 {
		return false, nil
	}

	positions, err := headerPositions(values[0])
	if err != nil {
		return false, fmt.Errorf("%w: sheet %q of spreadsheet %q: %v", ErrMissingHeaders, sheetTitle, event.SheetID, err)
	}

	expected := personCells(booking)
	for _, row := range values[1:] {
		if matchesPerson(row, positions, expected) {
			return true, nil
		}
	}
	return false, nil
}

// personCells renders the member-supplied ledger cells of a booking,
// formatted exactly as AppendBooking writes them.
func personCells(booking *domain.EventBooking) []string {
	phone := ""
	if booking.Phone != nil && *booking.Phone != "" {
		phone = "'" + *booking.Phone
	}
	member := "N"
	if booking.IsMember() {
		member = "J"
	}
	return []string{
		booking.FirstName,
		booking.LastName,
		booking.Street,
		booking.City,
		booking.Email,
		phone,
		member,
	}
}

// matchesPerson compares the member-supplied cells of a ledger row against
// the expected values. positions[1..7] are the columns of vorname through
// sve-mitglied.
func matchesPerson(row []string, positions []int, expected []string) bool {
	for i, value := range expected {
		if normalizeCell(cell(row, positions[i+1])) != normalizeCell(value) {
			return false
		}
	}
	return true
}

// normalizeCell trims a cell and drops the leading text-format apostrophe.
// Sheets swallows the apostrophe on write, so read-back rows carry the
// bare value while freshly rendered cells still have it.
func normalizeCell(value string) string {
	return strings.TrimPrefix(strings.TrimSpace(value), "'")
}

// bookingRow renders the ledger cells and arranges them in sheet column
// order. The phone number gets a leading apostrophe so the sheet keeps it
// as text, the paid column starts out as "N".
func (c *Client) bookingRow(booking *domain.EventBooking, amount float64, positions []int) []string {
	comments := ""
	if booking.Comments != nil {
		comments = *booking.Comments
	}

	cells := []string{time.Now().In(c.location).Format("02.01.2006 15:04:05")}
	cells = append(cells, personCells(booking)...)
	cells = append(cells, l10n.FormatEuro(amount), "N", comments)

	row := make([]string, len(cells))
	for i, value := range cells {
		row[positions[i]] = value
	}
	return row
}

func (c *Client) sheetTitle(ctx context.Context, spreadsheetID string, gid int64) (string, error) {
	requestURL := fmt.Sprintf("%s/%s?fields=%s", c.baseURL, spreadsheetID,
		url.QueryEscape("sheets(properties(sheetId,title))"))

	var spreadsheet spreadsheetResponse
	if err := c.doJSON(ctx, http.MethodGet, requestURL, nil, &spreadsheet); err != nil {
		return "", err
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties.SheetID == gid {
			return sheet.Properties.Title, nil
		}
	}
	return "", fmt.Errorf("%w: gid %d in spreadsheet %q", ErrSheetNotFound, gid, spreadsheetID)
}

func (c *Client) getValues(ctx context.Context, spreadsheetID, readRange string) ([][]string, error) {
	requestURL := fmt.Sprintf("%s/%s/values/%s", c.baseURL, spreadsheetID, url.PathEscape(readRange))

	var result valueRange
	if err := c.doJSON(ctx, http.MethodGet, requestURL, nil, &result); err != nil {
		return nil, err
	}
	return result.Values, nil
}

func (c *Client) updateValues(ctx context.Context, spreadsheetID, writeRange string, row []string) error {
	requestURL := fmt.Sprintf("%s/%s/values/%s?valueInputOption=USER_ENTERED",
		c.baseURL, spreadsheetID, url.PathEscape(writeRange))

	body := valueRange{Values: [][]string{row}}
	return c.doJSON(ctx, http.MethodPut, requestURL, &body, nil)
}

func (c *Client) doJSON(ctx context.Context, method, requestURL string, body, out interface{}) error {
	token, err := c.tokenSource.Token(ctx)
	if err != nil {
		return fmt.Errorf("%w: acquire token: %v", ErrInternal, err)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return fmt.Errorf("%w: create request: %v", ErrInternal, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: decode response: %v", ErrInvalidResponse, err)
		}
	}
	return nil
}

// headerPositions maps every required header to its column offset inside
// the sheet. positions[i] is the offset of requiredHeaders[i].
func headerPositions(headerRow []string) ([]int, error) {
	positions := make([]int, len(requiredHeaders))
	for i, required := range requiredHeaders {
		found := -1
		for col, header := range headerRow {
			if strings.ToLower(strings.TrimSpace(header)) == required {
				found = col
				break
			}
		}
		if found == -1 {
			return nil, fmt.Errorf("header row %v does not contain %q", headerRow, required)
		}
		positions[i] = found
	}
	return positions, nil
}

func cell(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return row[col]
}
