package mailer

import (
	"sync"
)

// Email is a message captured by MockMailer.
type Email struct {
	Recipient    string
	TemplateFile string
	Data         any
}

// MockMailer records messages instead of delivering them. Tests can wait on
// Sent, since the application sends mail from a background goroutine.
type MockMailer struct {
	mu     sync.RWMutex
	emails []Email
	Sent   chan Email
}

func NewMockMailer() *MockMailer {
	return &MockMailer{
		emails: make([]Email, 0),
		Sent:   make(chan Email, 16),
	}
}

func (m *MockMailer) Send(recipient, templateFile string, data any) error {
	email := Email{
		Recipient:    recipient,
		TemplateFile: templateFile,
		Data:         data,
	}

	m.mu.Lock()
	m.emails = append(m.emails, email)
	m.mu.Unlock()

	select {
	case m.Sent <- email:
	default:
	}

	return nil
}

func (m *MockMailer) SentTo(recipient string) []Email {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var emails []Email
	for _, e := range m.emails {
		if e.Recipient == recipient {
			emails = append(emails, e)
		}
	}

	return emails
}

func (m *MockMailer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.emails = make([]Email, 0)
}
