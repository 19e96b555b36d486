package csv

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/lehigh-university-libraries/marcwalk/format"
	"github.com/lehigh-university-libraries/marcwalk/hub"
	"github.com/lehigh-university-libraries/marcwalk/mapping"
)

func readCSV(t *testing.T, data []byte, comma rune) [][]string {
	t.Helper()
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = comma
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("reading CSV output: %v\n%s", err, data)
	}
	return rows
}

func sampleBibliographic() *hub.Bibliographic {
	b := hub.NewBibliographic()
	b.ID = "131381679"
	b.Title = "Evolusjon : naturens kulturhistorie"
	b.Year = 2011
	b.Electronic = true
	b.ISBNs = append(b.ISBNs, "978-8243005129", "8243005122")
	b.Creators = append(b.Creators,
		hub.Creator{Name: "Dagfinn Bakke", Role: "main"},
		hub.Creator{Name: "Angelo Cangelosi", Role: "edt"},
		hub.Creator{Name: "Karl Andreas Almås", Role: "red."},
	)
	b.PartOf = &hub.PartOf{Title: "Scattering"}
	return b
}

func TestSerializeColumns(t *testing.T) {
	opts := format.NewSerializeOptions()
	opts.Columns = []string{"id", "title", "year", "electronic", "isbns", "creators.name", "creators.role_label", "part_of.title", "preceding.items.id"}

	var buf bytes.Buffer
	if err := (&Format{}).Serialize(&buf, []hub.Record{sampleBibliographic()}, opts); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	rows := readCSV(t, buf.Bytes(), ',')
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want header and one record", len(rows))
	}

	want := []string{
		"131381679",
		"Evolusjon : naturens kulturhistorie",
		"2011",
		"true",
		"978-8243005129|8243005122",
		"Dagfinn Bakke|Angelo Cangelosi|Karl Andreas Almås",
		"Main entry|Editor|red.",
		"Scattering",
		"",
	}
	for i, w := range want {
		if rows[1][i] != w {
			t.Errorf("column %s = %q, want %q", rows[0][i], rows[1][i], w)
		}
	}
}

func TestSerializeDefaultColumnsPerKind(t *testing.T) {
	h := hub.NewHoldings()
	h.ID = "h1"
	h.BibliographicRecord = "131381679"
	h.Fulltext = append(h.Fulltext, hub.Fulltext{URL: "http://urn.nb.no/a"}, hub.Fulltext{URL: "http://urn.nb.no/b"})

	var buf bytes.Buffer
	if err := (&Format{}).Serialize(&buf, []hub.Record{h}, nil); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	rows := readCSV(t, buf.Bytes(), ',')
	header := mapping.DefaultColumns(hub.KindHoldings)
	if len(rows[0]) != len(header) || rows[0][1] != "bibliographic_record" {
		t.Errorf("header = %q, want %q", rows[0], header)
	}
	if last := rows[1][len(rows[1])-1]; last != "http://urn.nb.no/a|http://urn.nb.no/b" {
		t.Errorf("fulltext.url = %q", last)
	}
}

func TestSerializeProfile(t *testing.T) {
	opts := format.NewSerializeOptions()
	opts.MultiValueSeparator = ""
	opts.Profile = &mapping.Profile{
		Columns: map[hub.Kind][]string{hub.KindBibliographic: {"id", "isbns"}},
		Options: mapping.ProfileOptions{MultiValueSeparator: "; ", CSVDelimiter: "\t"},
	}

	var buf bytes.Buffer
	if err := (&Format{}).Serialize(&buf, []hub.Record{sampleBibliographic()}, opts); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	rows := readCSV(t, buf.Bytes(), '\t')
	if len(rows[0]) != 2 {
		t.Fatalf("header = %q, want 2 columns", rows[0])
	}
	if rows[1][1] != "978-8243005129; 8243005122" {
		t.Errorf("isbns = %q", rows[1][1])
	}
}

func TestSerializeNoHeader(t *testing.T) {
	opts := format.NewSerializeOptions()
	opts.IncludeHeader = false
	opts.Columns = []string{"id"}

	var buf bytes.Buffer
	if err := (&Format{}).Serialize(&buf, []hub.Record{sampleBibliographic()}, opts); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if got := buf.String(); got != "131381679\n" {
		t.Errorf("output = %q", got)
	}
}
