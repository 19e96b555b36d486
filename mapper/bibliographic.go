package mapper

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/lehigh-university-libraries/marcwalk/helpers"
	"github.com/lehigh-university-libraries/marcwalk/hub"
	"github.com/lehigh-university-libraries/marcwalk/marc"
)

var (
	// Leading ISBN/ISSN token; qualifiers such as "(ib.)" follow it.
	standardNumber = regexp.MustCompile(`^[0-9\-xX]+`)

	yearPattern = regexp.MustCompile(`[0-9]{4}`)

	// "353 s.", "48 [i.e. 96] s.", "[104] s."
	pageCount = regexp.MustCompile(`\[?([0-9]+)\]? (?:s\.|p\.|pp\.)`)
	// "s. 958-1831" in a volume of a multipart work.
	pageRange = regexp.MustCompile(`(?:s\.|p\.|pp\.) ([0-9]+)-([0-9]+)`)

	// ISBD separators inside a 245 $a/$b title.
	isbdSeparator = regexp.MustCompile(`[:=]`)
)

// bibliographicBuilder accumulates a bibliographic record during one pass
// over the data fields.
type bibliographicBuilder struct {
	rec *marc.Record
	out *hub.Bibliographic

	partOf     *hub.PartOf
	preceding  *hub.RelatedItems
	succeeding *hub.RelatedItems
}

type bibliographicRule func(b *bibliographicBuilder, f *marc.DataField)

// bibliographicRules maps a data field tag to its rule. Tags not listed are
// ignored.
var bibliographicRules = map[int]bibliographicRule{
	10:  (*bibliographicBuilder).lccn,
	20:  (*bibliographicBuilder).isbn,
	22:  (*bibliographicBuilder).issn,
	40:  (*bibliographicBuilder).catalogingSource,
	60:  classificationRule(nlmClassification),
	80:  classificationRule(udcClassification),
	82:  classificationRule(deweyClassification),
	84:  classificationRule(otherClassification),
	100: (*bibliographicBuilder).mainPersonalName,
	110: (*bibliographicBuilder).mainCorporateName,
	111: (*bibliographicBuilder).meetingName,
	130: (*bibliographicBuilder).uniformTitle,
	245: (*bibliographicBuilder).titleStatement,
	246: (*bibliographicBuilder).varyingTitle,
	250: (*bibliographicBuilder).edition,
	260: (*bibliographicBuilder).publication,
	264: (*bibliographicBuilder).productionStatement,
	300: (*bibliographicBuilder).physicalDescription,
	500: (*bibliographicBuilder).note,
	502: (*bibliographicBuilder).note,
	505: (*bibliographicBuilder).contents,
	520: (*bibliographicBuilder).summary,
	580: (*bibliographicBuilder).linkingNote,
	600: (*bibliographicBuilder).personalSubject,
	610: (*bibliographicBuilder).corporateSubject,
	611: (*bibliographicBuilder).meetingSubject,
	648: (*bibliographicBuilder).chronologicalSubject,
	650: (*bibliographicBuilder).topicalSubject,
	651: (*bibliographicBuilder).geographicSubject,
	653: (*bibliographicBuilder).uncontrolledTerms,
	655: (*bibliographicBuilder).genreForm,
	700: (*bibliographicBuilder).addedPersonalName,
	710: (*bibliographicBuilder).addedCorporateName,
	773: (*bibliographicBuilder).hostItem,
	776: (*bibliographicBuilder).otherForm,
	780: (*bibliographicBuilder).precedingEntry,
	785: (*bibliographicBuilder).succeedingEntry,
	830: (*bibliographicBuilder).seriesEntry,
	856: (*bibliographicBuilder).electronicLocation,
	956: (*bibliographicBuilder).electronicLocation,
	991: (*bibliographicBuilder).localFlags,
}

// MapBibliographic assembles a bibliographic record. It does not look at
// the leader type; use Map to dispatch on it.
func MapBibliographic(rec *marc.Record) *hub.Bibliographic {
	b := &bibliographicBuilder{rec: rec, out: hub.NewBibliographic()}

	b.out.Material, b.out.Electronic = classifyMaterial(rec)
	b.controlFields()

	for i := range rec.DataFields {
		f := &rec.DataFields[i]
		if rule, ok := bibliographicRules[f.Tag]; ok {
			rule(b, f)
		}
	}

	return b.finish()
}

func (b *bibliographicBuilder) controlFields() {
	b.out.ID = strings.TrimSpace(b.rec.ControlValue(1))
	b.out.Agency = strings.TrimSpace(b.rec.ControlValue(3))
	b.out.Modified = helpers.ParseDateTime(strings.TrimSpace(b.rec.ControlValue(5)))
	if f008 := b.rec.ControlValue(8); len(f008) >= 6 {
		b.out.Created = helpers.ParseDateTime(f008[:6])
	}
}

func (b *bibliographicBuilder) finish() *hub.Bibliographic {
	b.out.AlternativeTitles = unique(b.out.AlternativeTitles)
	if b.partOf != nil && *b.partOf != (hub.PartOf{}) {
		b.out.PartOf = b.partOf
	}
	if b.preceding != nil {
		b.out.Preceding = b.preceding
	}
	if b.succeeding != nil {
		b.out.Succeeding = b.succeeding
	}
	return b.out
}

func (b *bibliographicBuilder) lccn(f *marc.DataField) {
	b.out.LCCN = f.Text("a")
}

// isbn keeps the number and drops qualifiers. Canceled numbers ($z) are
// never added.
func (b *bibliographicBuilder) isbn(f *marc.DataField) {
	if n := standardNumber.FindString(f.Text("a")); n != "" {
		b.out.ISBNs = append(b.out.ISBNs, n)
	}
}

func (b *bibliographicBuilder) issn(f *marc.DataField) {
	if n := standardNumber.FindString(f.Text("a")); n != "" {
		b.out.ISSNs = append(b.out.ISSNs, n)
	}
}

func (b *bibliographicBuilder) catalogingSource(f *marc.DataField) {
	if rules := f.Text("e"); rules != "" {
		b.out.CatalogingRules = rules
	}
}

func classificationRule(extract func(*marc.DataField) (hub.Classification, bool)) bibliographicRule {
	return func(b *bibliographicBuilder, f *marc.DataField) {
		if c, ok := extract(f); ok {
			b.out.Classifications = append(b.out.Classifications, c)
		}
	}
}

func (b *bibliographicBuilder) mainPersonalName(f *marc.DataField) {
	b.out.Creators = append(b.out.Creators, personalName(f, "main"))
}

func (b *bibliographicBuilder) mainCorporateName(f *marc.DataField) {
	b.out.Creators = append(b.out.Creators, corporateName(f, "corporate"))
}

func (b *bibliographicBuilder) meetingName(f *marc.DataField) {
	heading := f.Text("a")
	m := hub.Creator{
		Name:           heading,
		NormalizedName: heading,
		Role:           parseRelator(f, "meeting"),
	}
	linkAuthority(&m, f)
	b.out.Meetings = append(b.out.Meetings, m)
}

// uniformTitle handles 130. The uniform title wins over the 245 title
// wherever the fields appear.
func (b *bibliographicBuilder) uniformTitle(f *marc.DataField) {
	title := f.Text("a")
	if title == "" {
		return
	}
	if b.out.Title == "" {
		b.out.Title = title
	}

	c := hub.Creator{
		Name:           title,
		NormalizedName: title,
		Role:           parseRelator(f, "uniform_title"),
	}
	linkAuthority(&c, f)
	b.out.Creators = append(b.out.Creators, c)
}

// hasUniformTitle reports whether a 130 supplies the title. A 130 without $a
// is ignored.
func (b *bibliographicBuilder) hasUniformTitle() bool {
	for _, f := range b.rec.Fields(130) {
		if f.Text("a") != "" {
			return true
		}
	}
	return false
}

func (b *bibliographicBuilder) titleStatement(f *marc.DataField) {
	title, parallel := splitTitle(f.Text("a") + " " + f.Text("b"))
	b.out.AlternativeTitles = append(b.out.AlternativeTitles, parallel...)

	if title != "" {
		if b.hasUniformTitle() || b.out.Title != "" {
			b.out.AlternativeTitles = append(b.out.AlternativeTitles, title)
		} else {
			b.out.Title = title
		}
	}

	if v := f.Text("n"); v != "" {
		b.out.PartNo = v
	}
	if v := f.Text("p"); v != "" {
		b.out.PartName = v
	}
	if v := f.Text("h"); v != "" {
		b.out.Medium = v
	}
}

// splitTitle joins title and remainder on ISBD ":" and moves "=" parallel
// titles aside.
func splitTitle(raw string) (title string, parallel []string) {
	raw = strings.TrimRight(strings.TrimSpace(raw), " /:-")

	separator := ":"
	start := 0
	add := func(part string) {
		part = strings.TrimSpace(part)
		if part == "" {
			return
		}
		switch {
		case separator == "=":
			parallel = append(parallel, part)
		case title == "":
			title = part
		default:
			title += " " + separator + " " + part
		}
	}
	for _, loc := range isbdSeparator.FindAllStringIndex(raw, -1) {
		add(raw[start:loc[0]])
		separator = raw[loc[0]:loc[1]]
		start = loc[1]
	}
	add(raw[start:])

	return title, parallel
}

func (b *bibliographicBuilder) varyingTitle(f *marc.DataField) {
	title := strings.TrimRight(f.Text("a"), " :-")
	if sub := f.Text("b"); sub != "" {
		title += " : " + sub
	}
	if title != "" {
		b.out.AlternativeTitles = append(b.out.AlternativeTitles, title)
	}
}

func (b *bibliographicBuilder) edition(f *marc.DataField) {
	b.out.Edition = f.Text("a")
}

func (b *bibliographicBuilder) publication(f *marc.DataField) {
	b.out.PlaceOfPublication = f.Text("a")
	b.out.Publisher = f.Text("b")
	b.out.Year = 0
	if y := yearPattern.FindString(f.Text("c")); y != "" {
		b.out.Year, _ = strconv.Atoi(y)
	}
}

// productionStatement handles 264. Only the publication statement
// (second indicator 1) is used, and a 260 in the same record wins.
func (b *bibliographicBuilder) productionStatement(f *marc.DataField) {
	if f.Ind2 != "1" || b.rec.HasField(260) {
		return
	}
	b.publication(f)
}

func (b *bibliographicBuilder) physicalDescription(f *marc.DataField) {
	extent := f.Text("a")
	b.out.Extent = extent
	b.out.Pages = pagesOf(extent)
}

// pagesOf counts pages in a 300 $a extent. A page range takes precedence
// over a plain count.
func pagesOf(extent string) int {
	pages := 0
	if m := pageCount.FindStringSubmatch(extent); m != nil {
		pages, _ = strconv.Atoi(m[1])
	}
	if m := pageRange.FindStringSubmatch(extent); m != nil {
		first, _ := strconv.Atoi(m[1])
		last, _ := strconv.Atoi(m[2])
		if last >= first {
			pages = last - first + 1
		}
	}
	return pages
}

func (b *bibliographicBuilder) note(f *marc.DataField) {
	if n := f.Text("a"); n != "" {
		b.out.Notes = append(b.out.Notes, n)
	}
}

func (b *bibliographicBuilder) contents(f *marc.DataField) {
	b.out.Contents = f.Text("a")
}

func (b *bibliographicBuilder) summary(f *marc.DataField) {
	s := hub.Summary{AssigningSource: f.Text("c"), Text: f.Text("a")}
	if s == (hub.Summary{}) {
		return
	}
	b.out.Summary = &s
}

// linkingNote attaches a 580 note to whichever linking entry the record has,
// checking preceding, then succeeding, then host item.
func (b *bibliographicBuilder) linkingNote(f *marc.DataField) {
	note := helpers.NormalizeWhitespace(f.Text("a"))
	if note == "" {
		return
	}
	switch {
	case b.rec.HasField(780):
		b.precedingItems().Note = note
	case b.rec.HasField(785):
		b.succeedingItems().Note = note
	case b.rec.HasField(773):
		b.hostItemEntry().Note = note
	}
}

func (b *bibliographicBuilder) personalSubject(f *marc.DataField) {
	s := withHeading(subjectEntry(f), personalSubjectHeading(f))
	s.Type = "person"
	b.out.Subjects = append(b.out.Subjects, s)
}

func (b *bibliographicBuilder) corporateSubject(f *marc.DataField) {
	name := helpers.TrimPunctuation(f.Text("a"), ",")
	for _, subunit := range f.All("b") {
		if subunit = helpers.TrimPunctuation(subunit, ","); subunit != "" {
			name += subfieldSeparator + subunit
		}
	}
	s := withHeading(subjectEntry(f), name)
	s.Type = "corporation"
	b.out.Subjects = append(b.out.Subjects, s)
}

func (b *bibliographicBuilder) meetingSubject(f *marc.DataField) {
	s := withHeading(subjectEntry(f), helpers.TrimPunctuation(f.Text("a"), ","))
	s.Type = "meeting"
	s.Time = meetingDetail(f.Text("d"))
	s.Place = meetingDetail(f.Text("c"))
	s.Misc = meetingDetail(f.Text("g"))
	s.Number = meetingDetail(f.Text("n"))
	b.out.Subjects = append(b.out.Subjects, s)
}

func (b *bibliographicBuilder) chronologicalSubject(f *marc.DataField) {
	b.termSubject(f, "chronological")
}

func (b *bibliographicBuilder) topicalSubject(f *marc.DataField) {
	b.termSubject(f, "topical")
}

func (b *bibliographicBuilder) geographicSubject(f *marc.DataField) {
	b.termSubject(f, "geographic")
}

func (b *bibliographicBuilder) termSubject(f *marc.DataField, subjectType string) {
	s := withHeading(subjectEntry(f), helpers.TrimPunctuation(f.Text("a"), "."))
	s.Type = subjectType
	b.out.Subjects = append(b.out.Subjects, s)
}

// uncontrolledTerms handles 653. Each $a is its own entry; genre terms go
// to genres without a type.
func (b *bibliographicBuilder) uncontrolledTerms(f *marc.DataField) {
	termType := uncontrolledTermTypes[f.Ind2]
	for _, term := range f.All("a") {
		term = helpers.TrimPunctuation(term, ".")
		if term == "" {
			continue
		}
		s := hub.Subject{Term: term, Parts: make([]hub.SubjectPart, 0)}
		if termType == "genre" {
			b.out.Genres = append(b.out.Genres, s)
			continue
		}
		s.Type = termType
		b.out.Subjects = append(b.out.Subjects, s)
	}
}

func (b *bibliographicBuilder) genreForm(f *marc.DataField) {
	s := withHeading(subjectEntry(f), helpers.TrimPunctuation(f.Text("a"), "."))
	b.out.Genres = append(b.out.Genres, s)
}

func (b *bibliographicBuilder) addedPersonalName(f *marc.DataField) {
	c := personalName(f, "added")
	c.Dates = f.Text("d")
	b.out.Creators = append(b.out.Creators, c)
}

func (b *bibliographicBuilder) addedCorporateName(f *marc.DataField) {
	c := corporateName(f, "added_corporate")
	c.Dates = f.Text("d")
	b.out.Creators = append(b.out.Creators, c)
}

func (b *bibliographicBuilder) hostItemEntry() *hub.PartOf {
	if b.partOf == nil {
		b.partOf = &hub.PartOf{}
	}
	return b.partOf
}

func (b *bibliographicBuilder) precedingItems() *hub.RelatedItems {
	if b.preceding == nil {
		b.preceding = &hub.RelatedItems{Items: make([]hub.Relationship, 0)}
	}
	return b.preceding
}

func (b *bibliographicBuilder) succeedingItems() *hub.RelatedItems {
	if b.succeeding == nil {
		b.succeeding = &hub.RelatedItems{Items: make([]hub.Relationship, 0)}
	}
	return b.succeeding
}

func (b *bibliographicBuilder) hostItem(f *marc.DataField) {
	p := b.hostItemEntry()
	p.Relationship = f.Text("i")
	p.Title = f.Text("t")
	p.ISSN = f.Text("x")
	p.ISBN = f.Text("z")
	p.Volume = f.Text("v")
	auth := helpers.ParseAuthority(f.Text("w"))
	p.ID = auth.ID
	p.Vocabulary = auth.Vocabulary
}

func (b *bibliographicBuilder) otherForm(f *marc.DataField) {
	if rel := parseRelationship(f); !rel.IsZero() {
		b.out.OtherForm = &rel
	}
}

func (b *bibliographicBuilder) precedingEntry(f *marc.DataField) {
	p := b.precedingItems()
	p.Items = append(p.Items, parseRelationship(f))
	if t, ok := precedingRelationships[f.Ind2]; ok {
		p.RelationshipType = t
	}
}

// succeedingEntry handles 785. For "merged with ... to form ..." (second
// indicator 7) only the last entry, the resulting record, is kept.
func (b *bibliographicBuilder) succeedingEntry(f *marc.DataField) {
	s := b.succeedingItems()
	rel := parseRelationship(f)
	if f.Ind2 == "7" {
		s.Items = []hub.Relationship{rel}
	} else {
		s.Items = append(s.Items, rel)
	}
	if t, ok := succeedingRelationships[f.Ind2]; ok {
		s.RelationshipType = t
	}
}

// seriesEntry handles 830. Entries are kept even without $w or $v.
func (b *bibliographicBuilder) seriesEntry(f *marc.DataField) {
	s := hub.Series{Title: helpers.NormalizeWhitespace(f.Text("a"))}
	if id := helpers.StripCatalogPrefix(f.Text("w")); id != "" {
		s.ID = &id
	}
	if volume := f.Text("v"); volume != "" {
		s.Volume = &volume
	}
	b.out.Series = append(b.out.Series, s)
}

func (b *bibliographicBuilder) electronicLocation(f *marc.DataField) {
	label := f.Text("3")
	switch {
	case containsString(coverImageLabels, label):
		b.out.CoverImage = largeCoverImage(f.Text("u"))
	case containsString(descriptionLabels, label):
		b.out.Description = f.Text("u")
	}
}

// largeCoverImage asks the cover service for its large rendition.
func largeCoverImage(url string) string {
	url = strings.ReplaceAll(url, "mini", "stor")
	return strings.ReplaceAll(url, "LITE", "STOR")
}

// localFlags handles 991: "volumes" marks a multivolume work whose parts link
// through 773, "parts" a series whose parts link through 830.
func (b *bibliographicBuilder) localFlags(f *marc.DataField) {
	switch f.Text("a") {
	case "volumes":
		b.out.IsMultivolume = true
	case "parts":
		b.out.IsSeries = true
	}
}

func unique(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
