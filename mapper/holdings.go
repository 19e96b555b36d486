package mapper

import (
	"strings"

	"github.com/lehigh-university-libraries/marcwalk/helpers"
	"github.com/lehigh-university-libraries/marcwalk/hub"
	"github.com/lehigh-university-libraries/marcwalk/marc"
)

type holdingsRule func(out *hub.Holdings, f *marc.DataField)

var holdingsRules = map[int]holdingsRule{
	852: location,
	856: fulltextLink,
	859: loanStatus,
	866: textualHoldings,
	876: itemInformation,
}

// MapHoldings assembles a holdings record.
func MapHoldings(rec *marc.Record) *hub.Holdings {
	out := hub.NewHoldings()

	out.ID = strings.TrimSpace(rec.ControlValue(1))
	out.BibliographicRecord = strings.TrimSpace(rec.ControlValue(4))
	out.Modified = helpers.ParseDateTime(strings.TrimSpace(rec.ControlValue(5)))
	if f008 := rec.ControlValue(8); len(f008) >= 6 {
		out.Created = helpers.ParseDateTime(f008[:6])
	}
	out.Status = strings.TrimSpace(rec.ControlValue(9))

	for i := range rec.DataFields {
		f := &rec.DataFields[i]
		if rule, ok := holdingsRules[f.Tag]; ok {
			rule(out, f)
		}
	}
	return out
}

func location(out *hub.Holdings, f *marc.DataField) {
	out.Location = f.Text("a")
	out.Sublocation = f.Text("b")
	out.Shelvinglocation = f.Text("c")
	out.Callcode = f.Text("h")

	if note := f.Text("x"); note != "" {
		out.NonpublicNotes = append(out.NonpublicNotes, note)
	}
	if note := f.Text("z"); note != "" {
		out.PublicNotes = append(out.PublicNotes, note)
	}
}

func fulltextLink(out *hub.Holdings, f *marc.DataField) {
	if !containsString(fulltextLabels, f.Text("3")) {
		return
	}
	out.Fulltext = append(out.Fulltext, hub.Fulltext{
		URL:      f.Text("u"),
		Provider: f.Text("y"),
		Comment:  f.Text("z"),
	})
}

// loanStatus decodes 859 $f and $h. Unknown codes leave the fields unset.
func loanStatus(out *hub.Holdings, f *marc.DataField) {
	if v, ok := useRestrictions[f.Text("f")]; ok {
		out.UseRestrictions = v
	}
	if v, ok := circulationStatuses[f.Text("h")]; ok {
		out.CirculationStatus = v
	}
}

func textualHoldings(out *hub.Holdings, f *marc.DataField) {
	out.Holdings = f.Text("a")
}

func itemInformation(out *hub.Holdings, f *marc.DataField) {
	out.Acquired = helpers.ParseDateTime(f.Text("d"))
	out.Barcode = f.Text("p")
}
