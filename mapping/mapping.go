// Package mapping provides output profiles: which records to emit and which
// of their fields, and how tabular output is laid out.
package mapping

import (
	"strings"

	"github.com/lehigh-university-libraries/marcwalk/hub"
)

// Profile represents a complete output configuration.
type Profile struct {
	// Name is the profile identifier
	Name string `yaml:"name" json:"name"`

	// Version is the profile revision, shown as name@version
	Version string `yaml:"version,omitempty" json:"version,omitempty"`

	// Description provides human-readable documentation
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Kinds limits output to these record kinds; empty means all
	Kinds []hub.Kind `yaml:"kinds,omitempty" json:"kinds,omitempty"`

	// Fields limits JSON-shaped output to these top-level keys; empty means all
	Fields []string `yaml:"fields,omitempty" json:"fields,omitempty"`

	// Columns are CSV column paths per record kind, e.g. "creators.name"
	Columns map[hub.Kind][]string `yaml:"columns,omitempty" json:"columns,omitempty"`

	// Options contains format-specific options
	Options ProfileOptions `yaml:"options,omitempty" json:"options,omitempty"`
}

// ProfileOptions contains format-specific configuration options.
type ProfileOptions struct {
	// MultiValueSeparator is the delimiter for multi-value fields in CSV
	MultiValueSeparator string `yaml:"multi_value_separator,omitempty" json:"multi_value_separator,omitempty"`

	// CSVDelimiter is the CSV field delimiter
	CSVDelimiter string `yaml:"csv_delimiter,omitempty" json:"csv_delimiter,omitempty"`

	// Pretty indents JSON output
	Pretty bool `yaml:"pretty,omitempty" json:"pretty,omitempty"`

	// Strict aborts on records of an unsupported type
	Strict bool `yaml:"strict,omitempty" json:"strict,omitempty"`
}

// VersionedName returns the profile name with version (e.g., "summary@1")
func (p *Profile) VersionedName() string {
	if p.Version != "" {
		return p.Name + "@" + p.Version
	}
	return p.Name
}

// GetMultiValueSeparator returns the multi-value separator with a default.
func (p *Profile) GetMultiValueSeparator() string {
	if p.Options.MultiValueSeparator != "" {
		return p.Options.MultiValueSeparator
	}
	return "|"
}

// GetCSVDelimiter returns the CSV delimiter with a default.
func (p *Profile) GetCSVDelimiter() string {
	if p.Options.CSVDelimiter != "" {
		return p.Options.CSVDelimiter
	}
	return ","
}

// Accepts reports whether records of kind k pass the profile's kind filter.
func (p *Profile) Accepts(k hub.Kind) bool {
	if p == nil || len(p.Kinds) == 0 {
		return true
	}
	for _, kind := range p.Kinds {
		if kind == k {
			return true
		}
	}
	return false
}

// Project keeps only the profile's fields of a JSON-shaped record. The map
// is returned unchanged when the profile lists no fields.
func (p *Profile) Project(m map[string]any) map[string]any {
	if p == nil || len(p.Fields) == 0 {
		return m
	}
	out := make(map[string]any, len(p.Fields))
	for _, f := range p.Fields {
		if v, ok := m[f]; ok {
			out[f] = v
		}
	}
	return out
}

// ColumnsFor returns the profile's CSV columns for a kind, falling back to
// DefaultColumns.
func (p *Profile) ColumnsFor(k hub.Kind) []string {
	if p != nil {
		if cols := p.Columns[k]; len(cols) > 0 {
			return cols
		}
	}
	return DefaultColumns(k)
}

// DefaultColumns returns the default column set for CSV output of a kind.
func DefaultColumns(k hub.Kind) []string {
	switch k {
	case hub.KindAuthority:
		return []string{
			"id",
			"class",
			"label",
			"name",
			"term",
			"birth",
			"death",
			"gender",
			"vocabulary",
			"altLabels",
		}
	case hub.KindHoldings:
		return []string{
			"id",
			"bibliographic_record",
			"location",
			"sublocation",
			"shelvinglocation",
			"callcode",
			"holdings",
			"circulation_status",
			"barcode",
			"fulltext.url",
		}
	default:
		return []string{
			"id",
			"material",
			"electronic",
			"title",
			"alternativeTitles",
			"creators.name",
			"creators.role",
			"publisher",
			"year",
			"isbns",
			"issns",
			"subjects.term",
			"classifications.number",
			"series.title",
			"part_of.title",
		}
	}
}

// FieldPath splits a dotted column path into its first key and the rest.
// "creators.name" yields ("creators", "name").
func FieldPath(path string) (base string, subfield string) {
	if i := strings.IndexByte(path, '.'); i >= 0 {
		return path[:i], path[i+1:]
	}
	return path, ""
}
