package instrument

import (
	"bufio"
	"fmt"
	"os"
	"sync"
)

// sinkBufferSize is deliberately large; with a flush per record it only
// amortizes oversized labels, but it keeps a single record to one write.
const sinkBufferSize = 4 << 20

// Sink is the process-wide append-only trace-file writer. All workers share
// one Sink; the mutex serializes them, so records never interleave. The
// file is opened lazily on the first record and grows monotonically — no
// truncation, no rotation.
type Sink struct {
	path string

	mu sync.Mutex
	f  *os.File
	w  *bufio.Writer
}

// NewSink creates a sink that will append to path. The file is not touched
// until the first WriteRecord.
func NewSink(path string) *Sink {
	return &Sink{path: path}
}

// WriteRecord appends one "<label>,<pc>" line and flushes before releasing
// the lock, so the record is durable and visible to external readers as
// soon as the call returns.
func (s *Sink) WriteRecord(label string, pc uint16) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.w == nil {
		f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open trace file %q: %w", s.path, err)
		}
		s.f = f
		s.w = bufio.NewWriterSize(f, sinkBufferSize)
	}

	if _, err := fmt.Fprintf(s.w, "%s,%d\n", label, pc); err != nil {
		return fmt.Errorf("failed to write trace record: %w", err)
	}
	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("failed to flush trace record: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying file. Embedders that trace for
// the whole process lifetime may never call it; the flush-per-record policy
// means nothing is lost either way.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.f == nil {
		return nil
	}
	flushErr := s.w.Flush()
	closeErr := s.f.Close()
	s.f = nil
	s.w = nil
	if flushErr != nil {
		return flushErr
	}
	return closeErr
}
