package behavior

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/zeusync/duckpond/internal/core/events/bus"
	"github.com/zeusync/duckpond/internal/core/observability/log"
)

var (
	_ Sink = (*WriterSink)(nil)
	_ Sink = (*Recorder)(nil)
	_ Sink = (*BusSink)(nil)
	_ Sink = SinkFunc(nil)
)

// SinkFunc adapts a plain function to Sink.
type SinkFunc func(msg string)

func (f SinkFunc) Emit(msg string) { f(msg) }

// WriterSink writes one line per effect.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink wraps w; a nil writer means stdout.
func NewWriterSink(w io.Writer) *WriterSink {
	if w == nil {
		w = os.Stdout
	}
	return &WriterSink{w: w}
}

func (s *WriterSink) Emit(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = fmt.Fprintln(s.w, msg)
}

var stdout = NewWriterSink(os.Stdout)

func orStdout(out Sink) Sink {
	if out == nil {
		return stdout
	}
	return out
}

// Recorder keeps every effect in emission order.
type Recorder struct {
	mu    sync.RWMutex
	lines []string
}

func NewRecorder() *Recorder { return &Recorder{lines: make([]string, 0, 16)} }

func (r *Recorder) Emit(msg string) {
	r.mu.Lock()
	r.lines = append(r.lines, msg)
	r.mu.Unlock()
}

// Lines returns a snapshot of the trace.
func (r *Recorder) Lines() []string {
	r.mu.RLock()
	cp := make([]string, len(r.lines))
	copy(cp, r.lines)
	r.mu.RUnlock()
	return cp
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	r.lines = r.lines[:0]
	r.mu.Unlock()
}

// BusSink publishes every effect as a bus.EffectEvent carrying the message as data.
type BusSink struct {
	bus    bus.EventBus
	source string
	logger log.Log
}

// NewBusSink returns a sink publishing on b under the given source. Publish
// errors are logged, never returned, since behaviors cannot fail.
func NewBusSink(b bus.EventBus, source string, logger log.Log) *BusSink {
	if logger == nil {
		logger = log.NewNop()
	}
	return &BusSink{bus: b, source: source, logger: logger}
}

func (s *BusSink) Emit(msg string) {
	if err := s.bus.Publish(bus.NewEvent(bus.EffectEvent, s.source, msg)); err != nil {
		s.logger.Warn("effect delivery failed",
			log.String("source", s.source),
			log.String("effect", msg),
			log.Error(err),
		)
	}
}
