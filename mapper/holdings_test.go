package mapper

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/lehigh-university-libraries/marcwalk/hub"
)

const holdingsLeader = "99999nx  a2299999un 4500"

func mapHoldings(t *testing.T, body string) *hub.Holdings {
	t.Helper()
	return MapHoldings(parseRecord(t, holdingsLeader, body))
}

func TestHoldingsControlFields(t *testing.T) {
	out := mapHoldings(t, `
		<marc:controlfield tag="001">12149361x</marc:controlfield>
		<marc:controlfield tag="004">841149003</marc:controlfield>
		<marc:controlfield tag="008">1306202u    8   4001uu   0901128</marc:controlfield>
		<marc:controlfield tag="009">kat</marc:controlfield>
	`)

	if out.ID != "12149361x" {
		t.Errorf("ID = %q", out.ID)
	}
	if out.BibliographicRecord != "841149003" {
		t.Errorf("BibliographicRecord = %q", out.BibliographicRecord)
	}
	if out.Status != "kat" {
		t.Errorf("Status = %q", out.Status)
	}
	want := time.Date(2013, 6, 20, 0, 0, 0, 0, time.UTC)
	if out.Created == nil || !out.Created.Equal(want) {
		t.Errorf("Created = %v, want %v", out.Created, want)
	}

	if empty := mapHoldings(t, ""); empty.BibliographicRecord != "" {
		t.Errorf("BibliographicRecord = %q, want empty", empty.BibliographicRecord)
	}
}

func TestHoldingsLocation(t *testing.T) {
	tests := []struct {
		name      string
		notes     string
		nonpublic []string
		public    []string
	}{
		{
			name:      "full",
			notes:     `<marc:subfield code="x">Tidligere eier: KJEMIBIB</marc:subfield><marc:subfield code="z">(tapt?)</marc:subfield>`,
			nonpublic: []string{"Tidligere eier: KJEMIBIB"},
			public:    []string{"(tapt?)"},
		},
		{
			name:      "minimal",
			nonpublic: []string{},
			public:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := mapHoldings(t, `
				<marc:datafield tag="852" ind1=" " ind2=" ">
					<marc:subfield code="a">HIT</marc:subfield>
					<marc:subfield code="b">HIT/BØ</marc:subfield>
					<marc:subfield code="c">BØ</marc:subfield>
					<marc:subfield code="h">633 A</marc:subfield>
					`+tt.notes+`
				</marc:datafield>`)

			if out.Location != "HIT" || out.Sublocation != "HIT/BØ" || out.Shelvinglocation != "BØ" || out.Callcode != "633 A" {
				t.Errorf("location = %q %q %q %q", out.Location, out.Sublocation, out.Shelvinglocation, out.Callcode)
			}
			if !reflect.DeepEqual(out.NonpublicNotes, tt.nonpublic) {
				t.Errorf("NonpublicNotes = %q, want %q", out.NonpublicNotes, tt.nonpublic)
			}
			if !reflect.DeepEqual(out.PublicNotes, tt.public) {
				t.Errorf("PublicNotes = %q, want %q", out.PublicNotes, tt.public)
			}
		})
	}
}

func TestHoldingsFulltext(t *testing.T) {
	out := mapHoldings(t, `
		<marc:datafield tag="856" ind1="4" ind2="0">
			<marc:subfield code="3">Fulltekst</marc:subfield>
			<marc:subfield code="u">http://urn.nb.no/URN:NBN:no-nb_digibok_2012071308172</marc:subfield>
			<marc:subfield code="y">NB Digital</marc:subfield>
			<marc:subfield code="z">Elektronisk reproduksjon. Tilgjengelig på NBs lesesal</marc:subfield>
		</marc:datafield>
		<marc:datafield tag="856" ind1="4" ind2="2">
			<marc:subfield code="3">Omslagsbilde</marc:subfield>
			<marc:subfield code="u">http://example.org/cover.jpg</marc:subfield>
		</marc:datafield>
	`)

	want := []hub.Fulltext{{
		URL:      "http://urn.nb.no/URN:NBN:no-nb_digibok_2012071308172",
		Provider: "NB Digital",
		Comment:  "Elektronisk reproduksjon. Tilgjengelig på NBs lesesal",
	}}
	if !reflect.DeepEqual(out.Fulltext, want) {
		t.Errorf("Fulltext = %+v, want %+v", out.Fulltext, want)
	}
}

func TestHoldingsLoanStatus(t *testing.T) {
	out := mapHoldings(t, `<marc:datafield tag="859" ind1=" " ind2=" "><marc:subfield code="f">0</marc:subfield></marc:datafield>`)
	if out.UseRestrictions != "" {
		t.Errorf("UseRestrictions = %q, want empty for unknown code", out.UseRestrictions)
	}

	for code, want := range useRestrictions {
		out := mapHoldings(t, `<marc:datafield tag="859" ind1=" " ind2=" "><marc:subfield code="f">`+code+`</marc:subfield></marc:datafield>`)
		if out.UseRestrictions != want {
			t.Errorf("859 $f %s: UseRestrictions = %q, want %q", code, out.UseRestrictions, want)
		}
	}
	for code, want := range circulationStatuses {
		out := mapHoldings(t, `<marc:datafield tag="859" ind1=" " ind2=" "><marc:subfield code="h">`+code+`</marc:subfield></marc:datafield>`)
		if out.CirculationStatus != want {
			t.Errorf("859 $h %s: CirculationStatus = %q, want %q", code, out.CirculationStatus, want)
		}
	}
}

func TestHoldingsItem(t *testing.T) {
	out := mapHoldings(t, `
		<marc:datafield tag="866" ind1="3" ind2="0">
			<marc:subfield code="a">1(1969/70)-34(1997/99)</marc:subfield>
		</marc:datafield>
		<marc:datafield tag="876" ind1=" " ind2=" ">
			<marc:subfield code="d">20130620</marc:subfield>
			<marc:subfield code="j">kat</marc:subfield>
			<marc:subfield code="p">050233na0</marc:subfield>
		</marc:datafield>
	`)

	if out.Holdings != "1(1969/70)-34(1997/99)" {
		t.Errorf("Holdings = %q", out.Holdings)
	}
	want := time.Date(2013, 6, 20, 0, 0, 0, 0, time.UTC)
	if out.Acquired == nil || !out.Acquired.Equal(want) {
		t.Errorf("Acquired = %v, want %v", out.Acquired, want)
	}
	if out.Barcode != "050233na0" {
		t.Errorf("Barcode = %q", out.Barcode)
	}
}

func TestHoldingsJSON(t *testing.T) {
	out := mapHoldings(t, `
		<marc:datafield tag="866" ind1="3" ind2="0">
			<marc:subfield code="a">1(1969/70)-34(1997/99)</marc:subfield>
		</marc:datafield>
	`)

	data, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"holdings":"1(1969/70)-34(1997/99)","fulltext":[],"nonpublic_notes":[],"public_notes":[]}`
	if string(data) != want {
		t.Errorf("JSON = %s, want %s", data, want)
	}
}
