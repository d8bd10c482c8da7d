package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeOmitsBccHeader(t *testing.T) {
	account := &Account{Address: "events@sv-eutingen.de"}
	message := Message{
		To:      "max@example.com",
		ReplyTo: "max@example.com",
		Subject: "Bestätigung Buchung",
		Body:    "Hallo Max",
	}

	payload := string(compose(account, message))

	assert.Contains(t, payload, "From: events@sv-eutingen.de\r\n")
	assert.Contains(t, payload, "To: max@example.com\r\n")
	assert.Contains(t, payload, "Reply-To: max@example.com\r\n")
	assert.NotContains(t, payload, "Bcc:")
}

func TestComposeEncodesSubject(t *testing.T) {
	account := &Account{Address: "events@sv-eutingen.de"}
	message := Message{To: "max@example.com", Subject: "Bestätigung"}

	payload := string(compose(account, message))

	assert.NotContains(t, payload, "Subject: Bestätigung\r\n")
	assert.Contains(t, payload, "Subject: =?utf-8?")
}
