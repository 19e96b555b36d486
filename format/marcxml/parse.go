package marcxml

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/lehigh-university-libraries/marcwalk/format"
	"github.com/lehigh-university-libraries/marcwalk/hub"
	xmlreader "github.com/lehigh-university-libraries/marcwalk/marc/marcxml"
	"github.com/lehigh-university-libraries/marcwalk/mapper"
)

// Parse reads MARCXML and returns one hub record per supported MARC record.
//
// Records of an unsupported type are skipped with a warning unless the
// options (or the profile) ask for strict parsing, in which case the first
// one ends the parse with a *mapper.UnsupportedRecordTypeError. Records the
// profile does not accept are dropped silently.
func (f *Format) Parse(r io.Reader, opts *format.ParseOptions) ([]hub.Record, error) {
	if opts == nil {
		opts = format.NewParseOptions()
	}
	strict := opts.Strict || (opts.Profile != nil && opts.Profile.Options.Strict)

	records, err := xmlreader.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading MARCXML: %w", err)
	}

	out := make([]hub.Record, 0, len(records))
	skipped := 0
	for i, rec := range records {
		mapped, err := mapper.Map(rec)
		if err != nil {
			var typeErr *mapper.UnsupportedRecordTypeError
			if strict || !errors.As(err, &typeErr) {
				return nil, fmt.Errorf("record %d in %s: %w", i+1, sourceName(opts), err)
			}
			slog.Warn("skipping record",
				"source", sourceName(opts),
				"index", i+1,
				"leader", typeErr.Leader,
				"err", err)
			skipped++
			continue
		}
		if !opts.Profile.Accepts(mapped.Kind()) {
			skipped++
			continue
		}
		out = append(out, mapped)
	}

	if opts.Skipped != nil {
		*opts.Skipped = skipped
	}
	return out, nil
}

func sourceName(opts *format.ParseOptions) string {
	if opts.SourceName != "" {
		return opts.SourceName
	}
	return "input"
}
