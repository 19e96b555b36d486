package marcxml

import (
	"errors"
	"strings"
	"testing"

	"github.com/lehigh-university-libraries/marcwalk/format"
	"github.com/lehigh-university-libraries/marcwalk/hub"
	"github.com/lehigh-university-libraries/marcwalk/mapper"
	"github.com/lehigh-university-libraries/marcwalk/mapping"
)

const mixedCollection = `<?xml version="1.0" encoding="UTF-8"?>
<collection xmlns="http://www.loc.gov/MARC21/slim">
  <record>
    <leader>99999cam a2299999 c 4500</leader>
    <controlfield tag="001">131381679</controlfield>
    <controlfield tag="007">ta</controlfield>
    <datafield tag="245" ind1="1" ind2="0">
      <subfield code="a">Evolusjon :</subfield>
      <subfield code="b">naturens kulturhistorie</subfield>
    </datafield>
  </record>
  <record>
    <leader>99999nq  a2299999n  4500</leader>
    <controlfield tag="001">unsupported</controlfield>
  </record>
  <record>
    <leader>99999nz  a2299999n  4500</leader>
    <controlfield tag="001">x90061718</controlfield>
    <datafield tag="100" ind1="1" ind2=" ">
      <subfield code="a">Bakke, Dagfinn</subfield>
    </datafield>
  </record>
  <record>
    <leader>99999nx  a2299999un 4500</leader>
    <controlfield tag="001">h1</controlfield>
    <controlfield tag="004">131381679</controlfield>
  </record>
</collection>`

func TestParseCollection(t *testing.T) {
	f := &Format{}
	skipped := 0
	opts := format.NewParseOptions()
	opts.Skipped = &skipped

	records, err := f.Parse(strings.NewReader(mixedCollection), opts)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if skipped != 1 {
		t.Errorf("Skipped = %d, want 1", skipped)
	}

	wantKinds := []hub.Kind{hub.KindBibliographic, hub.KindAuthority, hub.KindHoldings}
	for i, want := range wantKinds {
		if records[i].Kind() != want {
			t.Errorf("records[%d].Kind() = %q, want %q", i, records[i].Kind(), want)
		}
	}

	bib := records[0].(*hub.Bibliographic)
	if bib.Title != "Evolusjon : naturens kulturhistorie" {
		t.Errorf("Title = %q", bib.Title)
	}
	if bib.Material != "Book" {
		t.Errorf("Material = %q, want Book", bib.Material)
	}
	auth := records[1].(*hub.Authority)
	if auth.Label != "Dagfinn Bakke" {
		t.Errorf("Label = %q", auth.Label)
	}
}

func TestParseStrict(t *testing.T) {
	f := &Format{}
	opts := format.NewParseOptions()
	opts.Strict = true
	opts.SourceName = "mixed.xml"

	_, err := f.Parse(strings.NewReader(mixedCollection), opts)
	if !errors.Is(err, mapper.ErrUnsupportedRecordType) {
		t.Fatalf("Parse error = %v, want ErrUnsupportedRecordType", err)
	}
	if !strings.Contains(err.Error(), "record 2 in mixed.xml") {
		t.Errorf("error = %q, want record position", err.Error())
	}

	var typeErr *mapper.UnsupportedRecordTypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("error type = %T", err)
	}
	if !strings.Contains(string(typeErr.Raw), "unsupported") {
		t.Errorf("Raw = %q, want the source record", typeErr.Raw)
	}
}

func TestParseProfileKinds(t *testing.T) {
	f := &Format{}
	opts := format.NewParseOptions()
	opts.Profile = &mapping.Profile{Kinds: []hub.Kind{hub.KindHoldings}}

	records, err := f.Parse(strings.NewReader(mixedCollection), opts)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(records) != 1 || records[0].RecordID() != "h1" {
		t.Fatalf("records = %v, want only h1", records)
	}

	opts.Profile.Options.Strict = true
	if _, err := f.Parse(strings.NewReader(mixedCollection), opts); err == nil {
		t.Error("strict profile: Parse error = nil")
	}
}

func TestParseNoRecords(t *testing.T) {
	f := &Format{}
	_, err := f.Parse(strings.NewReader(`<collection xmlns="http://www.loc.gov/MARC21/slim"/>`), nil)
	if err == nil {
		t.Fatal("Parse error = nil, want no records error")
	}
}

func TestCanParse(t *testing.T) {
	f := &Format{}
	tests := []struct {
		input string
		want  bool
	}{
		{mixedCollection, true},
		{`<marc:record xmlns:marc="info:lc/xmlns/marcxchange-v1"/>`, true},
		{`<mods xmlns="http://www.loc.gov/mods/v3"/>`, false},
		{`[{"id": "1"}]`, false},
		{``, false},
	}

	for _, tt := range tests {
		if got := f.CanParse([]byte(tt.input)); got != tt.want {
			t.Errorf("CanParse(%.30q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
