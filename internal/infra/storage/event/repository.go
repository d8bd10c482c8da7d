package event

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/sv-web/sve-backend/internal/domain"
	"github.com/sv-web/sve-backend/pkg/dbmetrics"
	"github.com/sv-web/sve-backend/pkg/psqlbuilder"
)

var eventColumns = []string{
	"id",
	"sheet_id",
	"gid",
	"type",
	"name",
	"sort_index",
	"visible",
	"beta",
	"short_description",
	"description",
	"image",
	"light",
	"dates",
	"custom_date",
	"duration_in_minutes",
	"max_subscribers",
	"subscribers",
	"cost_member",
	"cost_non_member",
	"waiting_list",
	"max_waiting_list",
	"location",
	"booking_template",
	"waiting_template",
	"alt_booking_button_text",
	"alt_email_address",
	"external_operator",
}

// Repository persists events and the yearly booking number counter.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a new event repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID loads one event.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(eventColumns...).
		From("events").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	event, err := scanEvent(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan event: %v", ErrScanRow, err)
	}
	return event, nil
}

// GetForUpdate loads one event and, when called inside a transaction, locks
// its row until the transaction finishes. The booking workflow uses this to
// read a consistent counter state.
func (r *Repository) GetForUpdate(ctx context.Context, id string) (*domain.Event, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(eventColumns...).
		From("events").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetForUpdate - build select query: %v", ErrBuildQuery, err)
	}

	event, err := scanEvent(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetForUpdate - scan event: %v", ErrScanRow, err)
	}
	return event, nil
}

// List loads all events ordered by sort index.
func (r *Repository) List(ctx context.Context) ([]*domain.Event, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(eventColumns...).
		From("events").
		OrderBy("sort_index ASC, id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan event: %v", ErrScanRow, err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}
	return events, nil
}

// Save inserts the event or replaces all its attributes when it already
// exists.
func (r *Repository) Save(ctx context.Context, event *domain.Event) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("events").
		Columns(eventColumns...).
		Values(
			event.ID,
			event.SheetID,
			event.GID,
			event.Type,
			event.Name,
			event.SortIndex,
			event.Visible,
			event.Beta,
			event.ShortDescription,
			event.Description,
			event.Image,
			event.Light,
			pq.Array(datesToStrings(event.Dates)),
			event.CustomDate,
			event.DurationInMinutes,
			event.MaxSubscribers,
			event.Subscribers,
			event.CostMember,
			event.CostNonMember,
			event.WaitingList,
			event.MaxWaitingList,
			event.Location,
			event.BookingTemplate,
			event.WaitingTemplate,
			event.AltBookingButtonText,
			event.AltEmailAddress,
			event.ExternalOperator,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			sheet_id = EXCLUDED.sheet_id,
			gid = EXCLUDED.gid,
			type = EXCLUDED.type,
			name = EXCLUDED.name,
			sort_index = EXCLUDED.sort_index,
			visible = EXCLUDED.visible,
			beta = EXCLUDED.beta,
			short_description = EXCLUDED.short_description,
			description = EXCLUDED.description,
			image = EXCLUDED.image,
			light = EXCLUDED.light,
			dates = EXCLUDED.dates,
			custom_date = EXCLUDED.custom_date,
			duration_in_minutes = EXCLUDED.duration_in_minutes,
			max_subscribers = EXCLUDED.max_subscribers,
			subscribers = EXCLUDED.subscribers,
			cost_member = EXCLUDED.cost_member,
			cost_non_member = EXCLUDED.cost_non_member,
			waiting_list = EXCLUDED.waiting_list,
			max_waiting_list = EXCLUDED.max_waiting_list,
			location = EXCLUDED.location,
			booking_template = EXCLUDED.booking_template,
			waiting_template = EXCLUDED.waiting_template,
			alt_booking_button_text = EXCLUDED.alt_booking_button_text,
			alt_email_address = EXCLUDED.alt_email_address,
			external_operator = EXCLUDED.external_operator`)

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}

// Delete removes an event.
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("events").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}

// IncrementSubscribers takes one subscriber spot and returns the updated
// counters. The increment only happens when a spot is left (or the event is
// unlimited), in a single statement, so concurrent bookings can never push
// the counter past the limit. Returns ErrNoCapacity when the list is full.
func (r *Repository) IncrementSubscribers(ctx context.Context, id string) (*domain.EventCounter, error) {
	return r.increment(ctx, "IncrementSubscribers", id,
		`UPDATE events
		 SET subscribers = subscribers + 1
		 WHERE id = $1 AND (max_subscribers = -1 OR subscribers < max_subscribers)
		 RETURNING id, max_subscribers, subscribers, waiting_list, max_waiting_list`)
}

// IncrementWaitingList takes one waiting list spot, with the same atomic
// guard as IncrementSubscribers.
func (r *Repository) IncrementWaitingList(ctx context.Context, id string) (*domain.EventCounter, error) {
	return r.increment(ctx, "IncrementWaitingList", id,
		`UPDATE events
		 SET waiting_list = waiting_list + 1
		 WHERE id = $1 AND waiting_list < max_waiting_list
		 RETURNING id, max_subscribers, subscribers, waiting_list, max_waiting_list`)
}

func (r *Repository) increment(ctx context.Context, op, id, query string) (*domain.EventCounter, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var counter domain.EventCounter
	err := executor.QueryRowContext(ctx, query, id).Scan(
		&counter.ID,
		&counter.MaxSubscribers,
		&counter.Subscribers,
		&counter.WaitingList,
		&counter.MaxWaitingList,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNoCapacity
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}
	return &counter, nil
}

// NextBookingNumber advances and returns the booking counter of the given
// year. The counter runs from 1000 to 9999 and wraps back to 1000.
func (r *Repository) NextBookingNumber(ctx context.Context, year int) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query := `INSERT INTO booking_numbers (year, counter)
		 VALUES ($1, 1000)
		 ON CONFLICT (year) DO UPDATE SET
			counter = CASE
				WHEN booking_numbers.counter >= 9999 THEN 1000
				ELSE booking_numbers.counter + 1
			END
		 RETURNING counter`

	var counter int64
	if err := executor.QueryRowContext(ctx, query, year).Scan(&counter); err != nil {
		return 0, fmt.Errorf("%w: NextBookingNumber - execute upsert: %v", ErrExecQuery, err)
	}
	return counter, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var event domain.Event
	var dates pq.StringArray

	err := row.Scan(
		&event.ID,
		&event.SheetID,
		&event.GID,
		&event.Type,
		&event.Name,
		&event.SortIndex,
		&event.Visible,
		&event.Beta,
		&event.ShortDescription,
		&event.Description,
		&event.Image,
		&event.Light,
		&dates,
		&event.CustomDate,
		&event.DurationInMinutes,
		&event.MaxSubscribers,
		&event.Subscribers,
		&event.CostMember,
		&event.CostNonMember,
		&event.WaitingList,
		&event.MaxWaitingList,
		&event.Location,
		&event.BookingTemplate,
		&event.WaitingTemplate,
		&event.AltBookingButtonText,
		&event.AltEmailAddress,
		&event.ExternalOperator,
	)
	if err != nil {
		return nil, err
	}

	event.Dates, err = stringsToDates(dates)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// Dates are stored as a text[] of RFC 3339 timestamps. lib/pq cannot scan
// timestamptz[] directly, so the conversion happens here.
func datesToStrings(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.Format(time.RFC3339)
	}
	return out
}

func stringsToDates(values []string) ([]time.Time, error) {
	out := make([]time.Time, len(values))
	for i, v := range values {
		d, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %v", v, err)
		}
		out[i] = d
	}
	return out, nil
}
