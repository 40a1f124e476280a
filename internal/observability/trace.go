// Package observability provides verbose render tracing on stderr.
package observability

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// TraceWriter outputs human-readable trace lines with timestamps relative to
// session start. It satisfies the renderer's Tracer interface; command code
// attaches it when -v is set.
type TraceWriter struct {
	mu        sync.Mutex
	writer    io.Writer
	startTime time.Time
}

// NewTraceWriter creates a TraceWriter that writes to stderr.
func NewTraceWriter() *TraceWriter {
	return &TraceWriter{
		writer:    os.Stderr,
		startTime: time.Now(),
	}
}

// NewTraceWriterTo creates a TraceWriter that writes to the given writer.
func NewTraceWriterTo(w io.Writer) *TraceWriter {
	return &TraceWriter{
		writer:    w,
		startTime: time.Now(),
	}
}

// Eventf writes one trace line.
// Format: [0.234s] table truncated: 20 of 57 rows shown
func (t *TraceWriter) Eventf(format string, args ...any) {
	t.mu.Lock()
	defer t.mu.Unlock()

	elapsed := time.Since(t.startTime).Seconds()
	fmt.Fprintf(t.writer, "[%.3fs] %s\n", elapsed, fmt.Sprintf(format, args...))
}
