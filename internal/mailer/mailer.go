// Package mailer delivers candidate notifications. Delivery is best effort:
// failures are logged here and never reach the request that caused them.
package mailer

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"databridge-api/internal/config"

	"github.com/wneessen/go-mail"
)

type Message struct {
	To      string
	Subject string
	HTML    string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPSender talks to the configured SMTP relay.
type SMTPSender struct {
	host     string
	port     int
	secure   bool
	user     string
	pass     string
	fromName string
	from     string
}

func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{
		host:     cfg.MailHost,
		port:     cfg.MailPort,
		secure:   cfg.MailSecure,
		user:     cfg.MailUser,
		pass:     cfg.MailPass,
		fromName: cfg.CompanyName,
		from:     cfg.MailFrom,
	}
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m := mail.NewMsg()
	if err := m.FromFormat(s.fromName, s.from); err != nil {
		return fmt.Errorf("from address: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("to address: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTML)

	opts := []mail.Option{mail.WithPort(s.port)}
	if s.secure {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}
	if s.user != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.user),
			mail.WithPassword(s.pass),
		)
	}

	client, err := mail.NewClient(s.host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// LogSender stands in when no SMTP relay is configured.
type LogSender struct{}

func (LogSender) Send(_ context.Context, msg Message) error {
	log.Printf("mail disabled, would send %q to %s", msg.Subject, msg.To)
	return nil
}

// NewSender picks SMTP when MAIL_HOST is set.
func NewSender(cfg *config.Config) Sender {
	if cfg.MailEnabled() {
		return NewSMTPSender(cfg)
	}
	log.Println("MAIL_HOST is not set, notifications will only be logged")
	return LogSender{}
}

// Dispatcher hands each message to its own goroutine. Callers never wait on
// delivery; Wait exists for shutdown and tests.
type Dispatcher struct {
	sender  Sender
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewDispatcher(sender Sender, timeout time.Duration) *Dispatcher {
	return &Dispatcher{sender: sender, timeout: timeout}
}

func (d *Dispatcher) Dispatch(msg Message) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		if err := d.sender.Send(ctx, msg); err != nil {
			log.Printf("[mailer] send %q to %s failed: %v", msg.Subject, msg.To, err)
			return
		}
		log.Printf("[mailer] sent %q to %s", msg.Subject, msg.To)
	}()
}

// Wait blocks until every dispatched message has been attempted.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
