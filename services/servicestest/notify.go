package servicestest

import (
	"context"
	"sync"

	"github.com/anjiri1684/pesuconnect/models"
)

type Email struct {
	ToName, ToEmail, Subject, Body string
}

type Mailer struct {
	mu   sync.Mutex
	sent []Email
}

func (m *Mailer) SendEmail(_ context.Context, toName, toEmail, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, Email{toName, toEmail, subject, body})
	return nil
}

func (m *Mailer) Sent() []Email {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Email(nil), m.sent...)
}

type Published struct {
	StudentID int64
	Event     models.Event
}

type Publisher struct {
	mu     sync.Mutex
	events []Published
}

func (p *Publisher) Publish(studentID int64, ev models.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, Published{studentID, ev})
}

func (p *Publisher) Events() []Published {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Published(nil), p.events...)
}
