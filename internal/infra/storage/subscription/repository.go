package subscription

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/sv-web/sve-backend/internal/domain"
	"github.com/sv-web/sve-backend/pkg/dbmetrics"
	"github.com/sv-web/sve-backend/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

// Repository persists newsletter subscriptions. Topics are stored as a
// text[] per email address.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a new subscription repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get loads the subscription of one email address.
func (r *Repository) Get(ctx context.Context, email string) (*domain.Subscription, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("email", "topics").
		From("subscriptions").
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var sub domain.Subscription
	var topics pq.StringArray
	err = executor.QueryRowContext(ctx, query, args...).Scan(&sub.Email, &topics)
	if err == sql.ErrNoRows {
		return nil, ErrSubscriptionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan subscription: %v", ErrScanRow, err)
	}

	sub.Topics = toTopics(topics)
	return &sub, nil
}

// List loads all subscriptions.
func (r *Repository) List(ctx context.Context) ([]*domain.Subscription, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("email", "topics").
		From("subscriptions").
		OrderBy("email ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	subs := make([]*domain.Subscription, 0)
	for rows.Next() {
		var sub domain.Subscription
		var topics pq.StringArray
		if err := rows.Scan(&sub.Email, &topics); err != nil {
			return nil, fmt.Errorf("%w: List - scan subscription: %v", ErrScanRow, err)
		}
		sub.Topics = toTopics(topics)
		subs = append(subs, &sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}
	return subs, nil
}

// AddTopics unions the given topics into the subscription of the email
// address, creating the subscription when it does not exist yet. Returns
// the topics that were actually new for the address.
func (r *Repository) AddTopics(ctx context.Context, email string, topics []domain.Topic) ([]domain.Topic, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// RETURNING cannot see the pre-update row, so read the old topic set
	// first and diff in memory. Runs inside a transaction when called from
	// the subscribe workflow.
	old, err := r.Get(ctx, email)
	if err != nil && err != ErrSubscriptionNotFound {
		return nil, err
	}

	var stored pq.StringArray
	query := `INSERT INTO subscriptions (email, topics)
		 VALUES ($1, $2)
		 ON CONFLICT (email) DO UPDATE SET
			topics = (
				SELECT ARRAY(
					SELECT DISTINCT t
					FROM unnest(subscriptions.topics || EXCLUDED.topics) AS t
					ORDER BY t
				)
			)
		 RETURNING topics`
	err = executor.QueryRowContext(ctx, query, email, pq.Array(toStrings(topics))).Scan(&stored)
	if err != nil {
		return nil, fmt.Errorf("%w: AddTopics - execute upsert: %v", ErrExecQuery, err)
	}

	added := make([]domain.Topic, 0, len(topics))
	for _, topic := range topics {
		if old == nil || !old.HasTopic(topic) {
			added = append(added, topic)
		}
	}
	return added, nil
}

// RemoveTopics removes the given topics from the subscription and deletes
// the subscription once its topic set is empty.
func (r *Repository) RemoveTopics(ctx context.Context, email string, topics []domain.Topic) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query := `UPDATE subscriptions
		 SET topics = (
			SELECT COALESCE(ARRAY(
				SELECT t
				FROM unnest(topics) AS t
				WHERE t != ALL($2)
				ORDER BY t
			), '{}')
		 )
		 WHERE email = $1`

	result, err := executor.ExecContext(ctx, query, email, pq.Array(toStrings(topics)))
	if err != nil {
		return fmt.Errorf("%w: RemoveTopics - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: RemoveTopics - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSubscriptionNotFound
	}

	cleanup := `DELETE FROM subscriptions WHERE email = $1 AND cardinality(topics) = 0`
	if _, err := executor.ExecContext(ctx, cleanup, email); err != nil {
		return fmt.Errorf("%w: RemoveTopics - delete empty subscription: %v", ErrExecQuery, err)
	}
	return nil
}

func toStrings(topics []domain.Topic) []string {
	out := make([]string, len(topics))
	for i, t := range topics {
		out[i] = string(t)
	}
	return out
}

func toTopics(values []string) []domain.Topic {
	out := make([]domain.Topic, 0, len(values))
	for _, v := range values {
		topic, err := domain.ParseTopic(v)
		if err != nil {
			continue
		}
		out = append(out, topic)
	}
	return out
}
