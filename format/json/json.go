// Package json provides serializer plugins for JSON and JSON Lines output.
package json

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/lehigh-university-libraries/marcwalk/format"
	"github.com/lehigh-university-libraries/marcwalk/hub"
)

// Format writes all records as one JSON array.
type Format struct{}

// LinesFormat writes one JSON object per line.
type LinesFormat struct{}

var (
	_ format.Serializer = (*Format)(nil)
	_ format.Serializer = (*LinesFormat)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "json"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "JSON array of normalized records"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"json"}
}

// CanParse always returns false; this format is output only.
func (f *Format) CanParse(peek []byte) bool {
	return false
}

// Serialize writes the records as a JSON array. An empty input still
// produces "[]".
func (f *Format) Serialize(w io.Writer, records []hub.Record, opts *format.SerializeOptions) error {
	if opts == nil {
		opts = format.NewSerializeOptions()
	}

	out := make([]any, 0, len(records))
	for _, r := range records {
		v, err := value(r, opts)
		if err != nil {
			return err
		}
		out = append(out, v)
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty(opts) {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// Name returns the format identifier.
func (f *LinesFormat) Name() string {
	return "jsonl"
}

// Description returns a human-readable format description.
func (f *LinesFormat) Description() string {
	return "JSON Lines, one normalized record per line"
}

// Extensions returns file extensions associated with this format.
func (f *LinesFormat) Extensions() []string {
	return []string{"jsonl", "ndjson"}
}

// CanParse always returns false; this format is output only.
func (f *LinesFormat) CanParse(peek []byte) bool {
	return false
}

// Serialize writes one compact JSON object per record.
func (f *LinesFormat) Serialize(w io.Writer, records []hub.Record, opts *format.SerializeOptions) error {
	if opts == nil {
		opts = format.NewSerializeOptions()
	}

	for i, r := range records {
		v, err := value(r, opts)
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding record %d: %w", i, err)
		}
		if _, err := w.Write(buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

// value returns the record itself when no projection applies, so field order
// follows the struct definition.
func value(r hub.Record, opts *format.SerializeOptions) (any, error) {
	if opts.Profile == nil || len(opts.Profile.Fields) == 0 {
		return r, nil
	}
	return opts.Project(r)
}

func pretty(opts *format.SerializeOptions) bool {
	return opts.Pretty || (opts.Profile != nil && opts.Profile.Options.Pretty)
}

func init() {
	format.Register(&Format{})
	format.Register(&LinesFormat{})
}
