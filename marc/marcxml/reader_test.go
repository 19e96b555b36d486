package marcxml

import (
	"errors"
	"strings"
	"testing"
)

const collectionXML = `<?xml version="1.0" encoding="UTF-8"?>
<collection xmlns="http://www.loc.gov/MARC21/slim">
  <record>
    <leader>99999 am a2299999 c 4500</leader>
    <controlfield tag="001">999401461934702201</controlfield>
    <controlfield tag="008">130916s2011                  000 u|eng d</controlfield>
    <datafield tag="245" ind1="1" ind2="0">
      <subfield code="a">Tekniske tabeller :</subfield>
      <subfield code="b">med forklaringer</subfield>
    </datafield>
    <datafield tag="650" ind1=" " ind2="7">
      <subfield code="a">Matematikk</subfield>
      <subfield code="2">tekord</subfield>
    </datafield>
    <datafield tag="6X0" ind1=" " ind2=" ">
      <subfield code="a">ignored</subfield>
    </datafield>
  </record>
  <record>
    <leader>99999 z  a2299999n  4500</leader>
    <controlfield tag="001">x90529044</controlfield>
  </record>
</collection>`

func TestReadAllCollection(t *testing.T) {
	records, err := ReadAll(strings.NewReader(collectionXML))
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	r := records[0]
	if r.Leader != "99999 am a2299999 c 4500" {
		t.Errorf("Leader = %q", r.Leader)
	}
	if got := r.ControlValue(1); got != "999401461934702201" {
		t.Errorf("001 = %q", got)
	}
	if len(r.DataFields) != 3 {
		t.Fatalf("expected 3 data fields, got %d", len(r.DataFields))
	}

	title := r.DataFields[0]
	if title.Tag != 245 || title.Ind1 != "1" || title.Ind2 != "0" {
		t.Errorf("245 header = %d %q %q", title.Tag, title.Ind1, title.Ind2)
	}
	if got := title.Text("b"); got != "med forklaringer" {
		t.Errorf("245$b = %q", got)
	}

	if r.DataFields[2].Tag != 0 {
		t.Errorf("malformed tag = %d, want 0", r.DataFields[2].Tag)
	}
	if !strings.HasPrefix(string(r.Raw), "<record>") || !strings.HasSuffix(string(r.Raw), "</record>") {
		t.Errorf("Raw not cut at record boundaries: %q", r.Raw)
	}

	if records[1].RecordType() != 'z' {
		t.Errorf("second record type = %q, want 'z'", records[1].RecordType())
	}
}

func TestReadAllPrefixedAndSRU(t *testing.T) {
	input := `<srw:searchRetrieveResponse xmlns:srw="http://www.loc.gov/zing/srw/">
  <srw:numberOfRecords>1</srw:numberOfRecords>
  <srw:records>
    <srw:record>
      <srw:recordSchema>marcxchange</srw:recordSchema>
      <srw:recordData>
        <marc:record xmlns:marc="info:lc/xmlns/marcxchange-v1" format="MARC21" type="Bibliographic">
          <marc:leader>99999 cm a2299999 c 4500</marc:leader>
          <marc:controlfield tag="001">123</marc:controlfield>
          <marc:datafield tag="100" ind1="1" ind2=" ">
            <marc:subfield code="a">Bach, Johann Sebastian</marc:subfield>
          </marc:datafield>
        </marc:record>
      </srw:recordData>
      <srw:recordPosition>1</srw:recordPosition>
    </srw:record>
  </srw:records>
</srw:searchRetrieveResponse>`

	records, err := ReadAll(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if got := records[0].ControlValue(1); got != "123" {
		t.Errorf("001 = %q", got)
	}
	fields := records[0].Fields(100)
	if len(fields) != 1 || fields[0].Text("a") != "Bach, Johann Sebastian" {
		t.Errorf("100 = %+v", fields)
	}
}

func TestReadAllNormalizesToNFC(t *testing.T) {
	// "e" followed by a combining acute accent
	input := `<record><leader>99999 am a2299999 c 4500</leader>
<datafield tag="245" ind1="0" ind2="0"><subfield code="a">Cafe&#x301;</subfield></datafield></record>`

	records, err := ReadAll(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if got := records[0].DataFields[0].Text("a"); got != "Café" {
		t.Errorf("245$a = %q, want NFC form", got)
	}
}

func TestReadAllFixedFieldLayout(t *testing.T) {
	input := `<marc:collection xmlns:marc="http://www.loc.gov/MARC21/slim">
  <marc:record>
    <marc:leader>
      00000cam a2200000 a 4500
    </marc:leader>
    <marc:controlfield tag="008">
      130916s2011    no            000 u|nob d
    </marc:controlfield>
    <marc:controlfield tag="007">cr |||||||||||</marc:controlfield>
  </marc:record>
  <marc:record>
    <marc:leader>     nam a22     7a 4500</marc:leader>
  </marc:record>
</marc:collection>`

	records, err := ReadAll(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"indented leader", records[0].Leader, "00000cam a2200000 a 4500"},
		{"indented 008", records[0].ControlValue(8), "130916s2011    no            000 u|nob d"},
		{"inline 007", records[0].ControlValue(7), "cr |||||||||||"},
		{"blank positions kept", records[1].Leader, "     nam a22     7a 4500"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("value = %q, want %q", tt.got, tt.want)
			}
		})
	}
	if got := records[0].RecordType(); got != 'a' {
		t.Errorf("RecordType() = %q, want 'a'", got)
	}
}

func TestReadAllNoRecords(t *testing.T) {
	_, err := ReadAll(strings.NewReader(`<collection xmlns="http://www.loc.gov/MARC21/slim"/>`))
	if !errors.Is(err, ErrNoRecords) {
		t.Errorf("err = %v, want ErrNoRecords", err)
	}
}

func TestReadAllMalformed(t *testing.T) {
	_, err := ReadAll(strings.NewReader(`<record><leader>x</record>`))
	if err == nil {
		t.Error("expected error for malformed XML")
	}
}
