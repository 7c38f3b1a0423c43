package mailer

import (
	"context"
	"sync"
)

// SentMail records a single delivery made through [MockSender].
type SentMail struct {
	To   string
	Code string
}

// MockSender is an in-memory [Sender] for tests. It records every delivery
// and can be primed to fail.
type MockSender struct {
	mu sync.Mutex

	// Err, when non-nil, is returned by every Send call.
	Err error

	sent []SentMail
}

// Send implements [Sender].
func (m *MockSender) Send(_ context.Context, to, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}

	m.sent = append(m.sent, SentMail{To: to, Code: code})
	return nil
}

// Sent returns a copy of all recorded deliveries.
func (m *MockSender) Sent() []SentMail {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]SentMail, len(m.sent))
	copy(out, m.sent)
	return out
}

// Last returns the most recent delivery and whether one exists.
func (m *MockSender) Last() (SentMail, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.sent) == 0 {
		return SentMail{}, false
	}
	return m.sent[len(m.sent)-1], true
}
