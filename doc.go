// Package sse is an incremental encoder for the Server-Sent Events wire
// format.
//
// Events are encoded field by field directly onto a caller supplied sink,
// without buffering the message in memory. This makes the package suitable
// for servers that emit many long-lived event streams cheaply: value bytes
// handed to a field writer reach the sink immediately, and field and message
// terminators are emitted by the writers themselves, so a finished message
// is well-formed by construction.
//
// Typical usage of this package is:
//	* Wrap the outgoing connection in a type satisfying the Sink interface
//	  (a *bufio.Writer over a net.Conn, or an adapter over
//	  http.ResponseWriter plus http.Flusher).
//	* Create a Message with NewMessage for each event to transmit.
//	* Open fields with Data, Event, ID or Retry, write the value bytes and
//	  close each field before opening the next one.
//	* Close the message; this writes the terminating blank line and flushes
//	  the sink.
//
// Connection lifecycle, HTTP framing, reconnect and keep-alive policy are
// left to the caller. The package performs no validation of value bytes;
// callers must not include newline characters in field values.
//
// Synchronous writes report sink errors immediately. Terminator writes
// happen during Close; Close returns those errors instead of swallowing
// them. Callers that do not care may discard the result.
package sse
