package mapper

import (
	"strings"

	"github.com/lehigh-university-libraries/marcwalk/helpers"
	"github.com/lehigh-university-libraries/marcwalk/hub"
	"github.com/lehigh-university-libraries/marcwalk/marc"
)

// Authority heading classes.
const (
	classPerson      = "person"
	classCorporation = "corporation"
	classMeeting     = "meeting"
	classTopicalTerm = "topicalTerm"
	classGeographic  = "geographicName"
	classGenreForm   = "genreForm"
)

type authorityBuilder struct {
	rec *marc.Record
	out *hub.Authority

	sawSource bool
}

type authorityRule func(b *authorityBuilder, f *marc.DataField)

var authorityRules = map[int]authorityRule{
	40:  (*authorityBuilder).catalogingSource,
	100: (*authorityBuilder).personalName,
	110: (*authorityBuilder).corporateName,
	111: (*authorityBuilder).meetingName,
	150: (*authorityBuilder).topicalTerm,
	151: (*authorityBuilder).geographicName,
	155: (*authorityBuilder).genreFormTerm,
	375: (*authorityBuilder).gender,
	400: (*authorityBuilder).seeFrom,
	410: (*authorityBuilder).seeFromCorporate,
	411: (*authorityBuilder).seeFrom,
	450: (*authorityBuilder).seeFrom,
	451: (*authorityBuilder).seeFrom,
	455: (*authorityBuilder).seeFrom,
}

// MapAuthority assembles an authority record.
func MapAuthority(rec *marc.Record) *hub.Authority {
	b := &authorityBuilder{rec: rec, out: hub.NewAuthority()}
	b.controlFields()

	for i := range rec.DataFields {
		f := &rec.DataFields[i]
		if rule, ok := authorityRules[f.Tag]; ok {
			rule(b, f)
		}
	}

	// The last gender is taken as current.
	if n := len(b.out.Genders); n > 0 {
		b.out.Gender = b.out.Genders[n-1].Value
	}
	return b.out
}

func (b *authorityBuilder) controlFields() {
	b.out.ID = strings.TrimSpace(b.rec.ControlValue(1))
	b.out.Agency = strings.TrimSpace(b.rec.ControlValue(3))
	b.out.Modified = helpers.ParseDateTime(strings.TrimSpace(b.rec.ControlValue(5)))

	if f008, ok := b.rec.ControlField(8); ok {
		b.out.Cataloging = catalogingRules[f008.Position(10)]
		b.out.Vocabulary = authorityVocabularies[f008.Position(11)]
	}
}

// catalogingSource reads the first 040. $f names the subject heading system
// and overrides 008/11.
func (b *authorityBuilder) catalogingSource(f *marc.DataField) {
	if b.sawSource {
		return
	}
	b.sawSource = true

	b.out.CatalogingAgency = f.Text("a")
	b.out.Language = f.Text("b")
	b.out.TranscribingAgency = f.Text("c")
	b.out.ModifyingAgency = f.Text("d")
	if vocab := f.Text("f"); vocab != "" {
		b.out.Vocabulary = vocab
	}
}

func (b *authorityBuilder) personalName(f *marc.DataField) {
	b.out.Class = classPerson
	b.out.Name = f.Text("a")
	b.out.Label = helpers.NormalizeName(b.out.Name)
	if numeration := f.Text("b"); numeration != "" {
		b.out.Name += " " + numeration
		b.out.Label += " " + numeration
	}
	b.out.Birth, b.out.Death = helpers.SplitLifespan(f.Text("d"))
}

func (b *authorityBuilder) corporateName(f *marc.DataField) {
	b.out.Class = classCorporation
	b.out.Name = f.Text("a")
	b.out.Label = b.out.Name
	if f.Ind1 == "0" {
		b.out.Label = helpers.NormalizeName(b.out.Name)
	}
	if subunit := f.Text("b"); subunit != "" {
		b.out.Name += " : " + subunit
		b.out.Label += " : " + subunit
	}
}

func (b *authorityBuilder) meetingName(f *marc.DataField) {
	b.out.Class = classMeeting
	b.out.Name = f.Text("a")
	b.out.Label = b.out.Name
	if f.Ind1 == "0" {
		b.out.Label = helpers.NormalizeName(b.out.Name)
	}
}

func (b *authorityBuilder) topicalTerm(f *marc.DataField) {
	b.term(f, classTopicalTerm)
}

func (b *authorityBuilder) geographicName(f *marc.DataField) {
	b.term(f, classGeographic)
}

func (b *authorityBuilder) genreFormTerm(f *marc.DataField) {
	b.term(f, classGenreForm)
}

// term sets a heading whose label lists subdivisions after " : ", grouped
// by code in x, v, y, z order.
func (b *authorityBuilder) term(f *marc.DataField, class string) {
	b.out.Class = class
	b.out.Term = f.Text("a")
	b.out.Label = subdividedLabel(f)
}

func subdividedLabel(f *marc.DataField) string {
	label := f.Text("a")
	for _, code := range []string{"x", "v", "y", "z"} {
		for _, s := range f.All(code) {
			label += " : " + s
		}
	}
	return label
}

func (b *authorityBuilder) gender(f *marc.DataField) {
	b.out.Genders = append(b.out.Genders, hub.Gender{
		Value: f.Text("a"),
		From:  f.Text("s"),
		Until: f.Text("e"),
	})
}

func (b *authorityBuilder) seeFrom(f *marc.DataField) {
	if label := f.Text("a"); label != "" {
		b.out.AltLabels = append(b.out.AltLabels, label)
	}
}

func (b *authorityBuilder) seeFromCorporate(f *marc.DataField) {
	label := f.Text("a")
	if f.Has("b") {
		label += " : " + f.Text("b")
	}
	if label != "" {
		b.out.AltLabels = append(b.out.AltLabels, label)
	}
}
