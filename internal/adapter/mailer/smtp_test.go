package mailer

import (
	"context"
	"errors"
	"net/smtp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMTPMailer_Send(t *testing.T) {
	m := NewSMTPMailer(Config{Host: "mail.local", Port: 1025, From: "no-reply@lifedash.local"})

	var gotAddr string
	var gotTo []string
	var gotMsg []byte
	m.sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotTo, gotMsg = addr, to, msg
		assert.Nil(t, a)
		return nil
	}

	require.NoError(t, m.Send(context.Background(), "rina@example.com", "Verifikasi Email", "hello"))
	assert.Equal(t, "mail.local:1025", gotAddr)
	assert.Equal(t, []string{"rina@example.com"}, gotTo)
	assert.Contains(t, string(gotMsg), "To: rina@example.com\r\n")
	assert.Contains(t, string(gotMsg), "\r\n\r\nhello")
}

func TestSMTPMailer_Send_Error(t *testing.T) {
	m := NewSMTPMailer(Config{Host: "mail.local", Port: 1025, Username: "u", Password: "p"})
	m.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("relay refused")
	}

	err := m.Send(context.Background(), "rina@example.com", "s", "b")
	require.ErrorContains(t, err, "relay refused")
}

func TestSMTPMailer_Send_EmptyRecipient(t *testing.T) {
	err := NewSMTPMailer(Config{}).Send(context.Background(), " ", "s", "b")
	require.Error(t, err)
}

func TestSMTPMailer_Send_CancelledContext(t *testing.T) {
	m := NewSMTPMailer(Config{Host: "mail.local", Port: 1025})
	block := make(chan struct{})
	defer close(block)
	m.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
		<-block
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.Send(ctx, "rina@example.com", "s", "b")
	require.ErrorIs(t, err, context.Canceled)
}

func TestBuildMIME_EncodesSubject(t *testing.T) {
	msg := string(buildMIME("a@x", "b@x", "Pengingat ✓", "body"))
	assert.Contains(t, msg, "Subject: =?utf-8?q?")
}
