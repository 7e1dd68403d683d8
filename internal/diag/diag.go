// Package diag delivers parser diagnostics to a pluggable sink instead of a
// process-wide logger.
package diag

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
)

// Sink receives warning messages in the order they are produced.
type Sink interface {
	Warn(msg string)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(msg string)

func (f SinkFunc) Warn(msg string) { f(msg) }

// Discard drops every message.
var Discard Sink = SinkFunc(func(string) {})

// OrDiscard returns s, or Discard when s is nil.
func OrDiscard(s Sink) Sink {
	if s == nil {
		return Discard
	}
	return s
}

type writerSink struct {
	w io.Writer
}

// NewWriter returns a sink that writes each message on its own line.
func NewWriter(w io.Writer) Sink {
	return writerSink{w: w}
}

func (s writerSink) Warn(msg string) {
	fmt.Fprintln(s.w, msg)
}

type slogSink struct {
	logger *slog.Logger
}

// NewSlog returns a sink that logs each message at warn level. A nil logger
// means slog.Default().
func NewSlog(logger *slog.Logger) Sink {
	if logger == nil {
		logger = slog.Default()
	}
	return slogSink{logger: logger}
}

func (s slogSink) Warn(msg string) {
	s.logger.Warn(msg)
}

// Recorder keeps every message it receives.
type Recorder struct {
	mu   sync.Mutex
	msgs []string
}

func (r *Recorder) Warn(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
}

// Messages returns a copy of the recorded messages.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.msgs)
}

// CommentSkipped is the warning for a comment line in a table. raw is the
// line as written, including its indentation.
func CommentSkipped(raw string) string {
	return "[WARN] Case:[" + raw + "] is being skipped caused of comment."
}
