package tracefile

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// binarySchemaVersion is bumped when the binary payload layout changes.
const binarySchemaVersion uint16 = 1

// binaryPayload is the msgpack envelope for exported traces.
type binaryPayload struct {
	Schema  uint16
	Records []Record
}

// jsonRecord is the NDJSON projection of a Record.
type jsonRecord struct {
	Fn string `json:"fn"`
	PC uint16 `json:"pc"`
}

// WriteNDJSON writes one JSON object per record, in input order.
func WriteNDJSON(w io.Writer, recs []Record) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, r := range recs {
		if err := enc.Encode(jsonRecord{Fn: r.Label, PC: r.PC}); err != nil {
			return fmt.Errorf("failed to encode record: %w", err)
		}
	}
	return nil
}

// WriteBinary writes the records as a single versioned msgpack payload.
func WriteBinary(w io.Writer, recs []Record) error {
	if err := msgpack.NewEncoder(w).Encode(binaryPayload{
		Schema:  binarySchemaVersion,
		Records: recs,
	}); err != nil {
		return fmt.Errorf("failed to encode trace payload: %w", err)
	}
	return nil
}

// ReadBinary decodes a payload produced by WriteBinary, rejecting unknown
// schema versions.
func ReadBinary(r io.Reader) ([]Record, error) {
	var p binaryPayload
	if err := msgpack.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to decode trace payload: %w", err)
	}
	if p.Schema != binarySchemaVersion {
		return nil, fmt.Errorf("unsupported trace payload schema %d", p.Schema)
	}
	return p.Records, nil
}
