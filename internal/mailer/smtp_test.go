package mailer

import (
	"strings"
	"testing"

	"github.com/sanparkangkor/sanpark-tours-api/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSMTPSender_Validation(t *testing.T) {
	_, err := NewSMTPSender(config.MailConfig{Host: "", Port: 587})
	assert.Error(t, err)

	_, err = NewSMTPSender(config.MailConfig{Host: "smtp.gmail.com", Port: 0})
	assert.Error(t, err)

	_, err = NewSMTPSender(config.MailConfig{Host: "smtp.gmail.com", Port: 70000})
	assert.Error(t, err)

	sender, err := NewSMTPSender(config.MailConfig{Host: "smtp.gmail.com", Port: 587, Username: "u", Password: "p"})
	require.NoError(t, err)
	assert.NotNil(t, sender.auth)
}

func TestBuildMessage_Headers(t *testing.T) {
	msg := string(buildMessage(Envelope{
		From:     "tours@example.com",
		To:       "alice@example.com",
		Subject:  "Booking Confirmation - SP1",
		HTMLBody: "<p>hello</p>",
	}))

	assert.Contains(t, msg, "From: tours@example.com\r\n")
	assert.Contains(t, msg, "To: alice@example.com\r\n")
	assert.Contains(t, msg, "Subject: Booking Confirmation - SP1\r\n")
	assert.Contains(t, msg, "Content-Type: text/html; charset=UTF-8\r\n")
	assert.True(t, strings.HasSuffix(msg, "\r\n\r\n<p>hello</p>"))
}

func TestBuildMessage_SanitizesHeaderInjection(t *testing.T) {
	msg := string(buildMessage(Envelope{
		From:     "tours@example.com",
		To:       "alice@example.com",
		Subject:  "hi\nBcc: attacker@example.com",
		HTMLBody: "body",
	}))

	assert.NotContains(t, msg, "\r\nBcc: attacker@example.com")
	assert.Contains(t, msg, "Subject: hi Bcc: attacker@example.com\r\n")
}

func TestNormalizeBody_CRLF(t *testing.T) {
	assert.Equal(t, "a\r\nb\r\nc", normalizeBody("a\nb\rc"))
	assert.Equal(t, "a\r\nb", normalizeBody("a\r\nb"))
	assert.Equal(t, "", normalizeBody(""))
}
