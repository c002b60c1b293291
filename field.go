package sse

import "io"

// Field encodes the value of a single field within a message. The field name
// prefix is already on the wire when a Field exists; value bytes are appended
// by writing into it any number of times, and Close terminates the field
// with a newline.
//
// A Field holds the sink exclusively for its lifetime. Written bytes are
// forwarded to the sink verbatim and must not contain newline characters.
type Field struct {
	sink   Sink
	msg    *Message
	closed bool
}

var _ io.WriteCloser = (*Field)(nil)

// newField writes the field name prefix (name and colon) and returns a
// writer for the value bytes. The protocol fixes the set of field names, so
// construction is reachable only through the Message field methods. If the
// prefix write fails there is no field to close and the error is returned
// as is.
func newField(sink Sink, msg *Message, prefix string) (*Field, error) {
	if _, err := io.WriteString(sink, prefix); err != nil {
		return nil, err
	}
	return &Field{sink: sink, msg: msg}, nil
}

// Write appends value bytes to the field, forwarding them to the sink
// unmodified. Successive writes concatenate with no separator. The sink's
// result is propagated directly.
func (f *Field) Write(p []byte) (int, error) {
	if f.closed {
		return 0, ErrFieldClosed
	}
	return f.sink.Write(p)
}

// Flush forwards to the sink's flush.
func (f *Field) Flush() error {
	if f.closed {
		return ErrFieldClosed
	}
	return f.sink.Flush()
}

// Close terminates the field with a newline and returns the sink to the
// owning message. The message regains the sink even if the terminator write
// fails; the error is returned. Closing an already closed field is a no-op.
func (f *Field) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true

	if f.msg != nil {
		f.msg.field = nil
	}

	_, err := io.WriteString(f.sink, "\n")
	return err
}
