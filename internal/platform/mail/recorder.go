package mail

import (
	"context"
	"sync"
)

// Recorder is a Sender that keeps every message in memory. Tests use it to
// assert on outgoing mail. Setting Err makes Send fail without recording.
type Recorder struct {
	mu       sync.Mutex
	messages []Message
	Err      error
}

var _ Sender = (*Recorder)(nil)

// Send implements Sender.
func (r *Recorder) Send(_ context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.messages = append(r.messages, msg)
	return nil
}

// Messages returns a copy of the recorded messages.
func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Message(nil), r.messages...)
}
