package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/lehigh-university-libraries/marcwalk/format"
	"github.com/lehigh-university-libraries/marcwalk/helpers"
	"github.com/lehigh-university-libraries/marcwalk/hub"
	"github.com/lehigh-university-libraries/marcwalk/mapping"
)

// roleLabelSuffix turns a role column into its relator label, as in
// "creators.role_label".
const roleLabelSuffix = "_label"

// Serialize writes hub records as CSV.
//
// Columns are dotted paths into the record's JSON shape ("title",
// "creators.name", "part_of.title"). A path through a list yields every
// element's value joined with the multi-value separator. Without explicit
// columns the profile's columns for the first record's kind are used.
func (f *Format) Serialize(w io.Writer, records []hub.Record, opts *format.SerializeOptions) error {
	if opts == nil {
		opts = format.NewSerializeOptions()
	}

	sep := opts.Separator()

	columns := opts.Columns
	if len(columns) == 0 {
		kind := hub.KindBibliographic
		if len(records) > 0 {
			kind = records[0].Kind()
		}
		columns = opts.Profile.ColumnsFor(kind)
	}

	writer := csv.NewWriter(w)
	if opts.Profile != nil {
		if d, _ := utf8.DecodeRuneInString(opts.Profile.GetCSVDelimiter()); d != utf8.RuneError {
			writer.Comma = d
		}
	}

	if opts.IncludeHeader {
		if err := writer.Write(columns); err != nil {
			return err
		}
	}

	for i, record := range records {
		m, err := hub.ToMap(record)
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		if err := writer.Write(recordToRow(m, columns, sep)); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func recordToRow(m map[string]any, columns []string, sep string) []string {
	row := make([]string, len(columns))
	for i, col := range columns {
		row[i] = strings.Join(columnValues(m, col), sep)
	}
	return row
}

// columnValues resolves a dotted path against a JSON-shaped value.
func columnValues(v any, path string) []string {
	if path == "" {
		return scalarValues(v)
	}

	switch t := v.(type) {
	case []any:
		var out []string
		for _, elem := range t {
			out = append(out, columnValues(elem, path)...)
		}
		return out
	case map[string]any:
		base, rest := mapping.FieldPath(path)
		if rest == "" && strings.HasSuffix(base, roleLabelSuffix) {
			if role, ok := t[strings.TrimSuffix(base, roleLabelSuffix)].(string); ok {
				return []string{helpers.RelatorLabel(role)}
			}
		}
		return columnValues(t[base], rest)
	}
	return nil
}

func scalarValues(v any) []string {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		return []string{t}
	case float64:
		return []string{strconv.FormatFloat(t, 'f', -1, 64)}
	case bool:
		return []string{strconv.FormatBool(t)}
	case []any:
		var out []string
		for _, elem := range t {
			out = append(out, scalarValues(elem)...)
		}
		return out
	}
	return []string{fmt.Sprint(v)}
}
