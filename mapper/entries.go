package mapper

import (
	"strings"

	"github.com/lehigh-university-libraries/marcwalk/helpers"
	"github.com/lehigh-university-libraries/marcwalk/hub"
	"github.com/lehigh-university-libraries/marcwalk/marc"
)

// subfieldSeparator joins heading parts: subject subdivisions and
// corporate subunits.
const subfieldSeparator = "--"

// parseRelator returns the relator code ($4), else the relator term ($e),
// else def.
func parseRelator(f *marc.DataField, def string) string {
	if code := f.Text("4"); code != "" {
		return code
	}
	if term := f.Text("e"); term != "" {
		return term
	}
	return def
}

// parseRelationship reads the linking subfields shared by 76X-78X entries.
func parseRelationship(f *marc.DataField) hub.Relationship {
	return hub.Relationship{
		ID:           helpers.StripCatalogPrefix(f.Text("w")),
		Title:        f.Text("t"),
		RelatedParts: f.Text("g"),
		ISSN:         f.Text("x"),
		ISBN:         f.Text("z"),
	}
}

// personalName builds a creator from a 100/700 field.
func personalName(f *marc.DataField, defaultRole string) hub.Creator {
	heading := f.Text("a")
	c := hub.Creator{
		Name:           helpers.NormalizeName(heading),
		NormalizedName: heading,
		Role:           parseRelator(f, defaultRole),
	}
	linkAuthority(&c, f)
	return c
}

// corporateName builds a creator from a 110/710 field. Subunits in $b are
// appended to the display name.
func corporateName(f *marc.DataField, defaultRole string) hub.Creator {
	heading := f.Text("a")
	name := heading
	for _, subunit := range f.All("b") {
		if subunit = helpers.TrimPunctuation(subunit, ","); subunit != "" {
			name += subfieldSeparator + subunit
		}
	}
	c := hub.Creator{
		Name:           name,
		NormalizedName: heading,
		Role:           parseRelator(f, defaultRole),
	}
	linkAuthority(&c, f)
	return c
}

// linkAuthority copies the $0 authority link onto a creator.
func linkAuthority(c *hub.Creator, f *marc.DataField) {
	auth := helpers.ParseAuthority(f.Text("0"))
	c.ID = auth.ID
	c.Vocabulary = auth.Vocabulary
}

// subjectEntry reads what 600-655 fields have in common: vocabulary, $0
// link and the v/x/y/z subdivisions. Term holds only the subdivision suffix;
// callers prepend the heading with withHeading.
func subjectEntry(f *marc.DataField) hub.Subject {
	s := hub.Subject{Parts: make([]hub.SubjectPart, 0)}

	auth := helpers.ParseAuthority(f.Text("0"))
	s.ID = auth.ID

	if vocab, ok := subjectVocabularies[f.Ind2]; ok {
		s.Vocabulary = vocab
	} else if f.Ind2 == "7" {
		s.Vocabulary = f.Text("2")
	}
	if s.Vocabulary == "" {
		s.Vocabulary = auth.Vocabulary
	}

	f.Each(subdivisionCodes, func(code, value string) {
		value = helpers.TrimPunctuation(value, ".")
		if value == "" {
			return
		}
		s.Parts = append(s.Parts, hub.SubjectPart{Value: value, Type: subdivisionTypes[code]})
		s.Term += subfieldSeparator + value
	})

	return s
}

// withHeading prepends the main heading to the subdivision suffix.
func withHeading(s hub.Subject, heading string) hub.Subject {
	s.Term = heading + s.Term
	return s
}

// personalSubjectHeading renders a 600 heading as "Name (titles, dates)".
func personalSubjectHeading(f *marc.DataField) string {
	name := f.Text("a")
	var qualifiers []string
	for _, code := range []string{"c", "d"} {
		if q := helpers.TrimPunctuation(f.Text(code), "(),."); q != "" {
			qualifiers = append(qualifiers, q)
		}
	}
	if len(qualifiers) > 0 {
		name += " (" + strings.Join(qualifiers, ", ") + ")"
	}
	return name
}

// meetingDetail trims the bracketing punctuation used around 611 $c/$d/$g/$n.
func meetingDetail(value string) string {
	return helpers.TrimPunctuation(value, " :,.()")
}
