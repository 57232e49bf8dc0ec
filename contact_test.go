package main

import (
	"errors"
	"net/http"
	"net/smtp"
	"net/url"
	"testing"

	"github.com/Zachkp/cloud-portfolio/config"
	"github.com/Zachkp/cloud-portfolio/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	addr string
	from string
	to   []string
	msg  string
}

func recordingMailer(sent *[]sentMail, err error) sendMailFunc {
	return func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		*sent = append(*sent, sentMail{addr: addr, from: from, to: to, msg: string(msg)})
		return err
	}
}

func configuredSMTP() config.SMTP {
	return config.SMTP{Host: "smtp.test", Port: "587", User: "site@example.com", Pass: "pw", To: "owner@example.com"}
}

func validForm() contactForm {
	return contactForm{Name: "Ada", Email: "ada@example.com", Message: "Let's talk clusters."}
}

func TestSendContactEmail(t *testing.T) {
	t.Parallel()
	var sent []sentMail
	err := sendContactEmail(configuredSMTP(), recordingMailer(&sent, nil), validForm())
	require.NoError(t, err)

	require.Len(t, sent, 1)
	assert.Equal(t, "smtp.test:587", sent[0].addr)
	assert.Equal(t, "site@example.com", sent[0].from)
	assert.Equal(t, []string{"owner@example.com"}, sent[0].to)
	assert.Contains(t, sent[0].msg, "Subject: Portfolio Contact: Ada\r\n")
	assert.Contains(t, sent[0].msg, "Reply-To: ada@example.com\r\n")
	assert.Contains(t, sent[0].msg, "Let's talk clusters.")
}

func TestSendContactEmail_NotConfigured(t *testing.T) {
	t.Parallel()
	var sent []sentMail
	err := sendContactEmail(config.SMTP{Host: "smtp.test", Port: "587"}, recordingMailer(&sent, nil), validForm())
	assert.ErrorIs(t, err, ErrSMTPNotConfigured)
	assert.Empty(t, sent)
}

func TestSendContactEmail_RejectsHeaderInjection(t *testing.T) {
	t.Parallel()
	var sent []sentMail
	form := validForm()
	form.Name = "Ada\r\nBcc: victim@example.com"
	err := sendContactEmail(configuredSMTP(), recordingMailer(&sent, nil), form)
	assert.ErrorIs(t, err, ErrInvalidContact)
	assert.Empty(t, sent)
}

func TestSendContactEmail_DeliveryError(t *testing.T) {
	t.Parallel()
	boom := errors.New("connection refused")
	var sent []sentMail
	err := sendContactEmail(configuredSMTP(), recordingMailer(&sent, boom), validForm())
	assert.ErrorIs(t, err, boom)
}

func contactValues() url.Values {
	return url.Values{
		"fullName": {"Ada"},
		"email":    {"ada@example.com"},
		"message":  {"Hello"},
	}
}

func TestContactRoutes(t *testing.T) {
	t.Parallel()

	t.Run("form fragment", func(t *testing.T) {
		t.Parallel()
		_, r := newTestServer(t, testConfig(), content.Default())
		w := get(t, r, "/contact-form")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `name="fullName"`)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		cfg := testConfig()
		cfg.SMTP = configuredSMTP()
		s, r := newTestServer(t, cfg, content.Default())
		var sent []sentMail
		s.sendMail = recordingMailer(&sent, nil)

		w := postForm(t, r, "/contact", contactValues())
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Thank you for your message!")
		assert.Len(t, sent, 1)
	})

	t.Run("smtp not configured", func(t *testing.T) {
		t.Parallel()
		s, r := newTestServer(t, testConfig(), content.Default())
		var sent []sentMail
		s.sendMail = recordingMailer(&sent, nil)

		w := postForm(t, r, "/contact", contactValues())
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "error sending your message")
		assert.Empty(t, sent)
	})

	t.Run("invalid email", func(t *testing.T) {
		t.Parallel()
		cfg := testConfig()
		cfg.SMTP = configuredSMTP()
		s, r := newTestServer(t, cfg, content.Default())
		var sent []sentMail
		s.sendMail = recordingMailer(&sent, nil)

		values := contactValues()
		values.Set("email", "not-an-email")
		w := postForm(t, r, "/contact", values)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, sent)
	})

	t.Run("missing message", func(t *testing.T) {
		t.Parallel()
		_, r := newTestServer(t, testConfig(), content.Default())
		values := contactValues()
		values.Del("message")
		w := postForm(t, r, "/contact", values)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
