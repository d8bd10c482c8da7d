// Package news manages the newsletter subscriptions and their welcome
// mails.
package news

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sv-web/sve-backend/internal/domain"
	subscriptionRepo "github.com/sv-web/sve-backend/internal/infra/storage/subscription"
	"github.com/sv-web/sve-backend/internal/mail"
)

// UnsubscribeNote is appended to mails that create a subscription as a
// side effect.
const UnsubscribeNote = "Solltest Du an unserem E-Mail-Service kein Interesse mehr haben, kannst Du dich hier wieder abmelden:\nhttps://www.sv-eutingen.de/newsletter#abmelden"

// Service manages newsletter subscriptions.
type Service struct {
	repo     SubscriptionRepository
	accounts MailAccounts
	mailer   Mailer
	log      Logger
}

// NewService creates a new news service.
func NewService(repo SubscriptionRepository, accounts MailAccounts, mailer Mailer, log Logger) *Service {
	return &Service{
		repo:     repo,
		accounts: accounts,
		mailer:   mailer,
		log:      log,
	}
}

// Subscribe unions the requested topics into the subscription of the email
// address. sendEmail controls the welcome mail: subscriptions created as a
// side effect of a booking suppress it because the booking confirmation
// already carries the news note.
func (s *Service) Subscribe(ctx context.Context, subscription domain.Subscription, sendEmail bool) error {
	if err := validate(subscription); err != nil {
		return err
	}

	added, err := s.repo.AddTopics(ctx, subscription.Email, subscription.Topics)
	if err != nil {
		return fmt.Errorf("%w: add topics: %v", ErrInternal, err)
	}
	s.log.Info("Subscribed %s to %v (new: %v)", subscription.Email, subscription.Topics, added)

	if !sendEmail {
		return nil
	}
	if err := s.sendWelcomeMail(subscription); err != nil {
		return err
	}
	return nil
}

// Unsubscribe removes the requested topics. Unknown email addresses are
// treated as already unsubscribed.
func (s *Service) Unsubscribe(ctx context.Context, subscription domain.Subscription) error {
	if err := validate(subscription); err != nil {
		return err
	}

	err := s.repo.RemoveTopics(ctx, subscription.Email, subscription.Topics)
	if errors.Is(err, subscriptionRepo.ErrSubscriptionNotFound) {
		s.log.Warn("Unsubscribe of %s skipped, no subscription found", subscription.Email)
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: remove topics: %v", ErrInternal, err)
	}

	s.log.Info("Unsubscribed %s from %v", subscription.Email, subscription.Topics)
	return nil
}

// Subscriptions groups all subscribed email addresses by topic.
func (s *Service) Subscriptions(ctx context.Context) (map[domain.Topic][]string, error) {
	subscriptions, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list subscriptions: %v", ErrInternal, err)
	}

	result := make(map[domain.Topic][]string)
	for _, subscription := range subscriptions {
		for _, topic := range subscription.Topics {
			result[topic] = append(result[topic], subscription.Email)
		}
	}
	return result, nil
}

func validate(subscription domain.Subscription) error {
	if strings.TrimSpace(subscription.Email) == "" || !strings.Contains(subscription.Email, "@") {
		return fmt.Errorf("%w: email is invalid", ErrValidation)
	}
	if len(subscription.Topics) == 0 {
		return fmt.Errorf("%w: at least one topic is required", ErrValidation)
	}
	return nil
}

func (s *Service) sendWelcomeMail(subscription domain.Subscription) error {
	// subscriptions spanning several topics get one mail from the general
	// account
	primaryTopic := domain.TopicGeneral
	multipleTopics := ""
	if len(subscription.Topics) == 1 {
		primaryTopic = subscription.Topics[0]
	} else {
		names := make([]string, len(subscription.Topics))
		for i, topic := range subscription.Topics {
			names[i] = string(topic)
		}
		multipleTopics = strings.Join(names, ", ")
	}

	var subject, topic, kind, regards string
	switch primaryTopic {
	case domain.TopicEvents:
		subject = "[Events@SVE] Bestätigung Event-News Anmeldung"
		topic = "unseren Events"
		kind = ", sobald neue Events online sind"
		regards = "Team Events@SVE"
	case domain.TopicFitness:
		subject = "[Infos@SVE] Bestätigung Newsletter Anmeldung"
		topic = "unseren Fitnesskursen"
		kind = ", sobald neue Kurse online sind"
		regards = "Team Fitness@SVE"
	default:
		subject = "[Fitness@SVE] Bestätigung Fitness-News Anmeldung"
		topic = "News rund um den SVE"
		kind = ", sobald es etwas neues gibt"
		regards = "SV Eutingen"
		if multipleTopics != "" {
			kind = fmt.Sprintf(" zu folgenden Themen: %s", multipleTopics)
		}
	}

	account, err := s.accounts.ByTopic(primaryTopic)
	if err != nil {
		return fmt.Errorf("%w: resolve mail account: %v", ErrInternal, err)
	}

	body := fmt.Sprintf(`Lieber Interessent/In,

vielen Dank für Dein Interesse an %s.

Ab sofort erhältst Du automatisch eine E-Mail%s.

%s

Herzliche Grüße
%s`, topic, kind, UnsubscribeNote, regards)

	message := mail.Message{
		To:      subscription.Email,
		Subject: subject,
		Body:    body,
	}
	if err := s.mailer.Send(account, message); err != nil {
		return fmt.Errorf("%w: send welcome mail: %v", ErrInternal, err)
	}
	return nil
}
