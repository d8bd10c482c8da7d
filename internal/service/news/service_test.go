package news

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sv-web/sve-backend/internal/domain"
	subscriptionRepo "github.com/sv-web/sve-backend/internal/infra/storage/subscription"
	"github.com/sv-web/sve-backend/internal/mail"
)

type fakeRepo struct {
	subscriptions map[string][]domain.Topic
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{subscriptions: make(map[string][]domain.Topic)}
}

func (f *fakeRepo) List(context.Context) ([]*domain.Subscription, error) {
	result := make([]*domain.Subscription, 0, len(f.subscriptions))
	for email, topics := range f.subscriptions {
		result = append(result, &domain.Subscription{Email: email, Topics: topics})
	}
	return result, nil
}

func (f *fakeRepo) AddTopics(_ context.Context, email string, topics []domain.Topic) ([]domain.Topic, error) {
	existing := f.subscriptions[email]
	var added []domain.Topic
	for _, topic := range topics {
		known := false
		for _, t := range existing {
			if t == topic {
				known = true
			}
		}
		if !known {
			existing = append(existing, topic)
			added = append(added, topic)
		}
	}
	f.subscriptions[email] = existing
	return added, nil
}

func (f *fakeRepo) RemoveTopics(_ context.Context, email string, topics []domain.Topic) error {
	existing, ok := f.subscriptions[email]
	if !ok {
		return subscriptionRepo.ErrSubscriptionNotFound
	}
	var remaining []domain.Topic
	for _, t := range existing {
		removed := false
		for _, topic := range topics {
			if t == topic {
				removed = true
			}
		}
		if !removed {
			remaining = append(remaining, t)
		}
	}
	if len(remaining) == 0 {
		delete(f.subscriptions, email)
	} else {
		f.subscriptions[email] = remaining
	}
	return nil
}

type fakeAccounts struct {
	topic domain.Topic
}

func (f *fakeAccounts) ByTopic(topic domain.Topic) (*mail.Account, error) {
	f.topic = topic
	return &mail.Account{Address: "news@sv-eutingen.de"}, nil
}

type fakeMailer struct {
	message *mail.Message
}

func (f *fakeMailer) Send(_ *mail.Account, message mail.Message) error {
	f.message = &message
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(repo *fakeRepo) (*Service, *fakeAccounts, *fakeMailer) {
	accounts := &fakeAccounts{}
	mailer := &fakeMailer{}
	return NewService(repo, accounts, mailer, nopLogger{}), accounts, mailer
}

func TestSubscribeSendsWelcomeMail(t *testing.T) {
	repo := newFakeRepo()
	svc, accounts, mailer := newTestService(repo)

	err := svc.Subscribe(context.Background(), domain.Subscription{
		Email:  "max@example.com",
		Topics: []domain.Topic{domain.TopicEvents},
	}, true)
	require.NoError(t, err)

	assert.Equal(t, []domain.Topic{domain.TopicEvents}, repo.subscriptions["max@example.com"])
	assert.Equal(t, domain.TopicEvents, accounts.topic)
	require.NotNil(t, mailer.message)
	assert.Equal(t, "max@example.com", mailer.message.To)
	assert.Equal(t, "[Events@SVE] Bestätigung Event-News Anmeldung", mailer.message.Subject)
	assert.Contains(t, mailer.message.Body, "unseren Events")
	assert.Contains(t, mailer.message.Body, "Team Events@SVE")
	assert.Contains(t, mailer.message.Body, UnsubscribeNote)
}

func TestSubscribeMultipleTopicsMailsFromGeneralAccount(t *testing.T) {
	repo := newFakeRepo()
	svc, accounts, mailer := newTestService(repo)

	err := svc.Subscribe(context.Background(), domain.Subscription{
		Email:  "max@example.com",
		Topics: []domain.Topic{domain.TopicEvents, domain.TopicFitness},
	}, true)
	require.NoError(t, err)

	assert.Equal(t, domain.TopicGeneral, accounts.topic)
	require.NotNil(t, mailer.message)
	assert.Equal(t, "[Fitness@SVE] Bestätigung Fitness-News Anmeldung", mailer.message.Subject)
	assert.Contains(t, mailer.message.Body, "zu folgenden Themen: Events, Fitness")
}

func TestSubscribeWithoutWelcomeMail(t *testing.T) {
	repo := newFakeRepo()
	svc, _, mailer := newTestService(repo)

	err := svc.Subscribe(context.Background(), domain.Subscription{
		Email:  "max@example.com",
		Topics: []domain.Topic{domain.TopicFitness},
	}, false)
	require.NoError(t, err)

	assert.Equal(t, []domain.Topic{domain.TopicFitness}, repo.subscriptions["max@example.com"])
	assert.Nil(t, mailer.message)
}

func TestSubscribeRejectsInvalidRequests(t *testing.T) {
	svc, _, _ := newTestService(newFakeRepo())

	err := svc.Subscribe(context.Background(), domain.Subscription{
		Email:  "not-an-address",
		Topics: []domain.Topic{domain.TopicEvents},
	}, false)
	assert.ErrorIs(t, err, ErrValidation)

	err = svc.Subscribe(context.Background(), domain.Subscription{
		Email: "max@example.com",
	}, false)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUnsubscribeRemovesTopics(t *testing.T) {
	repo := newFakeRepo()
	repo.subscriptions["max@example.com"] = []domain.Topic{domain.TopicEvents, domain.TopicFitness}
	svc, _, _ := newTestService(repo)

	err := svc.Unsubscribe(context.Background(), domain.Subscription{
		Email:  "max@example.com",
		Topics: []domain.Topic{domain.TopicEvents},
	})
	require.NoError(t, err)

	assert.Equal(t, []domain.Topic{domain.TopicFitness}, repo.subscriptions["max@example.com"])
}

func TestUnsubscribeUnknownEmailIsIdempotent(t *testing.T) {
	svc, _, _ := newTestService(newFakeRepo())

	err := svc.Unsubscribe(context.Background(), domain.Subscription{
		Email:  "unknown@example.com",
		Topics: []domain.Topic{domain.TopicEvents},
	})
	assert.NoError(t, err)
}

func TestSubscriptionsGroupsByTopic(t *testing.T) {
	repo := newFakeRepo()
	repo.subscriptions["a@example.com"] = []domain.Topic{domain.TopicEvents}
	repo.subscriptions["b@example.com"] = []domain.Topic{domain.TopicEvents, domain.TopicFitness}
	svc, _, _ := newTestService(repo)

	grouped, err := svc.Subscriptions(context.Background())
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"a@example.com", "b@example.com"}, grouped[domain.TopicEvents])
	assert.Equal(t, []string{"b@example.com"}, grouped[domain.TopicFitness])
}
