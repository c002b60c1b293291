package sse

import (
	"encoding/json"
	"strconv"
	"time"
)

// Event holds data for a single event in an SSE stream. It is a convenience
// for the common case of emitting a whole event at once; use Message
// directly to stream field values incrementally.
type Event struct {
	ID    string        // event ID, empty to omit
	Event string        // event name, empty to omit
	Data  interface{}   // Data value will be marshaled to JSON, nil to omit
	Retry time.Duration // reconnection time, emitted as milliseconds, zero to omit
}

// WriteEvent encodes a whole event as one message on the sink. Fields are
// emitted in event, data, id, retry order, skipping the ones not set.
// Marshaling Data to JSON guarantees the value is free of raw newline bytes.
//
// The message is terminated and the sink flushed even if encoding a field
// fails; the first error encountered is returned.
func WriteEvent(sink Sink, e Event) error {
	m := NewMessage(sink)

	err := writeEventFields(m, e)
	if cerr := m.Close(); err == nil {
		err = cerr
	}
	return err
}

func writeEventFields(m *Message, e Event) error {
	if e.Event != "" {
		if err := writeField(m.Event, []byte(e.Event)); err != nil {
			return err
		}
	}

	if e.Data != nil {
		data, err := json.Marshal(e.Data)
		if err != nil {
			return err
		}
		if err := writeField(m.Data, data); err != nil {
			return err
		}
	}

	if e.ID != "" {
		if err := writeField(m.ID, []byte(e.ID)); err != nil {
			return err
		}
	}

	if e.Retry > 0 {
		ms := strconv.FormatInt(int64(e.Retry/time.Millisecond), 10)
		if err := writeField(m.Retry, []byte(ms)); err != nil {
			return err
		}
	}

	return nil
}

// writeField emits one complete field through the given field constructor.
// On a value write error the field is still closed so the sink is returned
// to the message; the write error takes precedence.
func writeField(open func() (*Field, error), value []byte) error {
	f, err := open()
	if err != nil {
		return err
	}
	if _, err := f.Write(value); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
