// Package contact relays contact form submissions to the club department
// responsible for the selected topic.
package contact

import (
	"context"
	"fmt"
	"strings"

	"github.com/sv-web/sve-backend/internal/domain"
	"github.com/sv-web/sve-backend/internal/mail"
)

// Service relays contact messages by mail.
type Service struct {
	accounts MailAccounts
	mailer   Mailer
	log      Logger
}

// NewService creates a new contact service.
func NewService(accounts MailAccounts, mailer Mailer, log Logger) *Service {
	return &Service{accounts: accounts, mailer: mailer, log: log}
}

// Message sends the contact form submission to its recipient, with the
// sender's address as reply-to.
func (s *Service) Message(ctx context.Context, message domain.ContactMessage) error {
	if err := validate(message); err != nil {
		return err
	}

	account, err := s.accounts.ByTopic(message.Type)
	if err != nil {
		return fmt.Errorf("%w: resolve mail account: %v", ErrInternal, err)
	}

	email := strings.TrimSpace(message.Email)
	var body strings.Builder
	fmt.Fprintf(&body, "Vor- und Nachname: %s\n", strings.TrimSpace(message.Name))
	fmt.Fprintf(&body, "Email: %s\n", email)
	if message.Phone != nil && strings.TrimSpace(*message.Phone) != "" {
		fmt.Fprintf(&body, "Telefon: %s\n", strings.TrimSpace(*message.Phone))
	}
	fmt.Fprintf(&body, "\nNachricht: %s\n", strings.TrimSpace(message.Message))

	outgoing := mail.Message{
		To:      message.To,
		ReplyTo: email,
		Subject: fmt.Sprintf("[Kontakt@Web] Nachricht von %s", message.Name),
		Body:    body.String(),
	}
	if err := s.mailer.Send(account, outgoing); err != nil {
		return fmt.Errorf("%w: send message: %v", ErrInternal, err)
	}

	s.log.Info("Contact message of %s relayed to %s", email, message.To)
	return nil
}

func validate(message domain.ContactMessage) error {
	if strings.TrimSpace(message.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(message.Email) == "" || !strings.Contains(message.Email, "@") {
		return fmt.Errorf("%w: email is invalid", ErrValidation)
	}
	if strings.TrimSpace(message.To) == "" {
		return fmt.Errorf("%w: recipient is required", ErrValidation)
	}
	if strings.TrimSpace(message.Message) == "" {
		return fmt.Errorf("%w: message is required", ErrValidation)
	}
	return nil
}
