// Package email sends broadcast summaries to administrators over SMTP.
package email

import (
	"gopkg.in/mail.v2"
)

const defaultSubject = "Broadcast report"

// Client sends HTML reports through an SMTP server.
type Client struct {
	smtpHost string
	smtpPort int
	username string
	password string
	from     string
	subject  string
}

// NewClient creates a new email Client.
func NewClient(smtpHost string, smtpPort int, username, password, from string) *Client {
	return &Client{
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		username: username,
		password: password,
		from:     from,
		subject:  defaultSubject,
	}
}

// WithSubject returns a copy of the client that uses subject for outgoing mail.
func (c *Client) WithSubject(subject string) *Client {
	cp := *c
	cp.subject = subject
	return &cp
}

// Send mails msg to the given address.
func (c *Client) Send(to string, msg string) error {
	dialer := mail.NewDialer(c.smtpHost, c.smtpPort, c.username, c.password)

	return dialer.DialAndSend(c.message(to, msg))
}

func (c *Client) message(to, msg string) *mail.Message {
	message := mail.NewMessage()

	message.SetHeader("From", c.from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", c.subject)

	message.SetBody("text/html", msg)

	return message
}
