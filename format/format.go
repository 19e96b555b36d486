// Package format defines the interface for input and output format plugins.
package format

import (
	"io"

	"github.com/lehigh-university-libraries/marcwalk/hub"
	"github.com/lehigh-university-libraries/marcwalk/mapping"
)

// Format defines the interface that all format plugins must implement.
type Format interface {
	// Name returns the format identifier (e.g., "marcxml", "json", "csv")
	Name() string

	// Description returns a human-readable format description
	Description() string

	// Extensions returns file extensions associated with this format
	Extensions() []string

	// CanParse returns true if this format can parse the given input
	CanParse(peek []byte) bool
}

// Parser is a format that can parse input into hub records.
type Parser interface {
	Format

	// Parse reads input and returns mapped records.
	Parse(r io.Reader, opts *ParseOptions) ([]hub.Record, error)
}

// Serializer is a format that can write hub records to output.
type Serializer interface {
	Format

	// Serialize writes records to the output.
	Serialize(w io.Writer, records []hub.Record, opts *SerializeOptions) error
}

// ParseOptions contains options for parsing.
type ParseOptions struct {
	// Profile is the output profile; its kind filter is applied while parsing
	Profile *mapping.Profile

	// Strict fails on the first record of an unsupported type instead of
	// skipping it
	Strict bool

	// SourceName is an identifier for the source (for error messages)
	SourceName string

	// Skipped receives the number of records dropped by the parser
	Skipped *int
}

// SerializeOptions contains options for serialization.
type SerializeOptions struct {
	// Profile is the output profile to use
	Profile *mapping.Profile

	// Columns specifies which columns to include (for tabular formats)
	Columns []string

	// MultiValueSeparator is the delimiter for multi-value fields
	MultiValueSeparator string

	// IncludeHeader includes a header row (for tabular formats)
	IncludeHeader bool

	// Pretty enables pretty-printing (for JSON formats)
	Pretty bool
}

// NewParseOptions creates ParseOptions with defaults.
func NewParseOptions() *ParseOptions {
	return &ParseOptions{}
}

// NewSerializeOptions creates SerializeOptions with defaults.
func NewSerializeOptions() *SerializeOptions {
	return &SerializeOptions{
		MultiValueSeparator: "|",
		IncludeHeader:       true,
	}
}

// Project returns the record as a JSON-shaped map, trimmed to the profile's
// field list when one is set. Serializers that do not work on hub structs
// directly go through it.
func (o *SerializeOptions) Project(r hub.Record) (map[string]any, error) {
	m, err := hub.ToMap(r)
	if err != nil {
		return nil, err
	}
	if o != nil && o.Profile != nil {
		m = o.Profile.Project(m)
	}
	return m, nil
}

// Separator returns the multi-value separator, consulting the profile when
// the options leave it unset.
func (o *SerializeOptions) Separator() string {
	if o != nil && o.MultiValueSeparator != "" {
		return o.MultiValueSeparator
	}
	if o != nil && o.Profile != nil {
		return o.Profile.GetMultiValueSeparator()
	}
	return "|"
}
