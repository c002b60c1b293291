package sse

import (
	"errors"
	"io"
)

// Sink is the destination for encoded wire format bytes. It must support
// sequential writes and an explicit flush that pushes written bytes towards
// the client. *bufio.Writer satisfies this interface.
//
// While a Message or Field is live the sink must not be written to by
// anyone else, otherwise the emitted stream will be corrupted.
type Sink interface {
	io.Writer
	Flush() error
}

var (
	// ErrFieldOpen is returned when opening a new field while a field
	// writer from the same message has not been closed yet. The sink is
	// borrowed exclusively by the open field, so the violation is
	// reported before any bytes are written.
	ErrFieldOpen = errors.New("previous field writer is still open")

	// ErrMessageClosed is returned when opening a field on an already
	// closed message.
	ErrMessageClosed = errors.New("message writer is closed")

	// ErrFieldClosed is returned on writes to an already closed field
	// writer.
	ErrFieldClosed = errors.New("field writer is closed")
)

// Message encodes a single SSE message onto a sink. A message consists of
// any number of fields followed by a terminating blank line. Fields are
// appended by calling Data, Event, ID or Retry; only one field writer may be
// open at a time.
//
// A single sink can carry any number of sequential messages, each created
// with NewMessage and finished with Close.
type Message struct {
	sink   Sink
	field  *Field
	closed bool
}

// NewMessage creates a message writer over the given sink. No bytes are
// written until the first field is opened.
func NewMessage(sink Sink) *Message {
	return &Message{sink: sink}
}

// Data appends a data field.
//
// This is the event payload passed to the browser event listener when the
// message is terminated. It can be raw text, JSON or any other newline-free
// format. If a message contains multiple data fields the browser
// concatenates their values.
//
// This field is the only "required" one, in that a message without a data
// field will not trigger any event listener in the browser.
func (m *Message) Data() (*Field, error) { return m.open("data:") }

// Event appends an event name field.
//
// This optional field tags the message with an event name, which causes the
// browser to trigger an event listener specifically for that name.
func (m *Message) Event() (*Field, error) { return m.open("event:") }

// ID appends an event ID field.
//
// This optional field sets the "last event ID" of the event stream.
func (m *Message) ID() (*Field, error) { return m.open("id:") }

// Retry appends a retry field.
//
// This optional field must hold a decimal integer and sets the reconnection
// time of the event stream, the millisecond delay used when the browser
// attempts to reestablish a dropped connection.
func (m *Message) Retry() (*Field, error) { return m.open("retry:") }

// open writes the field name prefix and delegates the sink to the returned
// field writer. If the prefix write fails no field writer is produced and
// the message stays usable for a fresh attempt.
func (m *Message) open(prefix string) (*Field, error) {
	if m.closed {
		return nil, ErrMessageClosed
	}
	if m.field != nil {
		return nil, ErrFieldOpen
	}

	f, err := newField(m.sink, m, prefix)
	if err != nil {
		return nil, err
	}

	m.field = f
	return f, nil
}

// Close terminates the message with a blank line and flushes the sink. If a
// field writer is still open it is closed first, so an abandoned message
// still ends up syntactically well-formed. Close must be called when the
// message is complete; subsequent calls are a no-op.
//
// The first error encountered while terminating is returned.
func (m *Message) Close() error {
	if m.closed {
		return nil
	}
	m.closed = true

	var first error
	if m.field != nil {
		first = m.field.Close()
	}
	if _, err := io.WriteString(m.sink, "\n"); err != nil && first == nil {
		first = err
	}
	if err := m.sink.Flush(); err != nil && first == nil {
		first = err
	}
	return first
}
