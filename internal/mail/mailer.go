// Package mail sends transactional mails through the configured SMTP
// accounts. Every outgoing mail is blind-copied to its sending account so
// the club keeps a record in the mailbox.
package mail

import (
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"
)

// Logger is the logging surface the mailer needs.
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Message is one outgoing mail.
type Message struct {
	To      string
	ReplyTo string
	Subject string
	Body    string
}

// Mailer sends messages via SMTP.
type Mailer struct {
	log Logger
}

// NewMailer creates a new mailer.
func NewMailer(log Logger) *Mailer {
	return &Mailer{log: log}
}

// Send delivers the message from the given account. The sending account is
// always added as bcc recipient.
func (m *Mailer) Send(account *Account, message Message) error {
	payload := compose(account, message)
	recipients := []string{message.To, account.Address}

	if err := m.deliver(account, recipients, payload); err != nil {
		m.log.Error("Sending mail %q from %s to %s failed: %v", message.Subject, account.Address, message.To, err)
		return err
	}

	m.log.Info("Mail %q sent from %s to %s", message.Subject, account.Address, message.To)
	return nil
}

func (m *Mailer) deliver(account *Account, recipients []string, payload []byte) error {
	addr := net.JoinHostPort(account.Host, strconv.Itoa(account.Port))
	auth := smtp.PlainAuth("", account.User, account.Password, account.Host)

	// port 465 is implicit TLS, everything else upgrades via STARTTLS
	if account.Port == 465 {
		return m.deliverImplicitTLS(account, addr, auth, recipients, payload)
	}

	if err := smtp.SendMail(addr, auth, account.Address, recipients, payload); err != nil {
		return fmt.Errorf("%w: %v", ErrSend, err)
	}
	return nil
}

func (m *Mailer) deliverImplicitTLS(account *Account, addr string, auth smtp.Auth, recipients []string, payload []byte) error {
	conn, err := tls.DialWithDialer(&net.Dialer{Timeout: 30 * time.Second}, "tcp", addr, &tls.Config{
		ServerName: account.Host,
	})
	if err != nil {
		return fmt.Errorf("%w: dial: %v", ErrSend, err)
	}

	client, err := smtp.NewClient(conn, account.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("%w: handshake: %v", ErrSend, err)
	}
	defer client.Close()

	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("%w: auth: %v", ErrSend, err)
	}
	if err := client.Mail(account.Address); err != nil {
		return fmt.Errorf("%w: mail from: %v", ErrSend, err)
	}
	for _, recipient := range recipients {
		if err := client.Rcpt(recipient); err != nil {
			return fmt.Errorf("%w: rcpt %s: %v", ErrSend, recipient, err)
		}
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("%w: data: %v", ErrSend, err)
	}
	if _, err := writer.Write(payload); err != nil {
		return fmt.Errorf("%w: write body: %v", ErrSend, err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("%w: close body: %v", ErrSend, err)
	}
	return client.Quit()
}

func compose(account *Account, message Message) []byte {
	var builder strings.Builder

	writeHeader := func(key, value string) {
		builder.WriteString(key)
		builder.WriteString(": ")
		builder.WriteString(value)
		builder.WriteString("\r\n")
	}

	// the copy to the sending account stays an envelope recipient only,
	// a Bcc header would disclose it to the addressee
	writeHeader("From", account.Address)
	writeHeader("To", message.To)
	if message.ReplyTo != "" {
		writeHeader("Reply-To", message.ReplyTo)
	}
	writeHeader("Subject", mime.QEncoding.Encode("utf-8", message.Subject))
	writeHeader("MIME-Version", "1.0")
	writeHeader("Content-Type", `text/plain; charset="utf-8"`)
	writeHeader("Date", time.Now().Format(time.RFC1123Z))

	builder.WriteString("\r\n")
	builder.WriteString(message.Body)
	return []byte(builder.String())
}
