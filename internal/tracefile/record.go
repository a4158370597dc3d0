// Package tracefile parses and converts the append-only trace files the
// instrumentation sink produces: one "<function-label>,<pc>" line per
// executed instruction, no header, no rotation.
package tracefile

import (
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// Record is one parsed trace line: which function executed which pc.
type Record struct {
	Label string
	PC    uint16
}

// String renders the record exactly as the sink writes it, minus the
// trailing newline.
func (r Record) String() string {
	return fmt.Sprintf("%s,%d", r.Label, r.PC)
}

// ParseLine parses one trace line. Function labels may themselves contain
// commas (generic instantiations do), so the split happens at the last one.
func ParseLine(line string) (Record, error) {
	i := strings.LastIndexByte(line, ',')
	if i < 0 {
		return Record{}, fmt.Errorf("malformed trace record %q: no separator", line)
	}
	n, err := strconv.ParseUint(line[i+1:], 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("malformed trace record %q: %w", line, err)
	}
	pc, err := safecast.Conv[uint16](n)
	if err != nil {
		return Record{}, fmt.Errorf("malformed trace record %q: pc out of range: %w", line, err)
	}
	return Record{Label: line[:i], PC: pc}, nil
}
