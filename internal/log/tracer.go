package log

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Tracer records raw input events, one line each.
type Tracer interface {
	Trace(kind, detail string)
}

type tracer struct {
	w   io.Writer
	now func() time.Time

	mu   sync.Mutex
	last map[string]string
}

// NewTracer writes trace lines to w. A nil writer yields a no-op tracer.
// A line identical to the previous one of the same kind is suppressed, so
// auto-repeating keys do not flood the output.
func NewTracer(w io.Writer) Tracer {
	return &tracer{w: w, now: time.Now, last: make(map[string]string)}
}

func (t *tracer) Trace(kind, detail string) {
	if t.w == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if prev, ok := t.last[kind]; ok && prev == detail {
		return
	}
	t.last[kind] = detail
	_, _ = fmt.Fprintf(t.w, "%s %s %s\n", t.now().Format("2006/01/02 15:04:05.000"), kind, detail)
}
