package marcxml

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
	xmlpath "gopkg.in/xmlpath.v2"

	"github.com/lehigh-university-libraries/marcwalk/marc"
)

// Compiled once; xmlpath.Path values are safe for concurrent use.
var (
	leaderPath       = xmlpath.MustCompile("/record/leader")
	controlFieldPath = xmlpath.MustCompile("/record/controlfield")
	dataFieldPath    = xmlpath.MustCompile("/record/datafield")
	subfieldPath     = xmlpath.MustCompile("subfield")
	tagAttr          = xmlpath.MustCompile("@tag")
	ind1Attr         = xmlpath.MustCompile("@ind1")
	ind2Attr         = xmlpath.MustCompile("@ind2")
	codeAttr         = xmlpath.MustCompile("@code")
)

// Decode builds a record from a single <record> element.
func Decode(raw []byte) (*marc.Record, error) {
	root, err := xmlpath.Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing record XML: %w", err)
	}

	rec := &marc.Record{Raw: raw}

	if leader, ok := leaderPath.String(root); ok {
		rec.Leader = fixedValue(leader)
	}

	controls := controlFieldPath.Iter(root)
	for controls.Next() {
		node := controls.Node()
		tag, _ := tagAttr.String(node)
		rec.ControlFields = append(rec.ControlFields, marc.ControlField{
			Tag:    marc.ParseTag(tag),
			RawTag: tag,
			Value:  fixedValue(node.String()),
		})
	}

	fields := dataFieldPath.Iter(root)
	for fields.Next() {
		rec.DataFields = append(rec.DataFields, decodeDataField(fields.Node()))
	}

	return rec, nil
}

// fixedValue cleans the leader and control fields. Their positions are
// significant, so blanks are only trimmed when the element text was laid out
// over several lines by a pretty-printer.
func fixedValue(s string) string {
	if strings.ContainsAny(s, "\r\n\t") {
		s = strings.TrimSpace(s)
	}
	return norm.NFC.String(s)
}

func decodeDataField(node *xmlpath.Node) marc.DataField {
	tag, _ := tagAttr.String(node)
	ind1, _ := ind1Attr.String(node)
	ind2, _ := ind2Attr.String(node)

	field := marc.DataField{
		Tag:    marc.ParseTag(tag),
		RawTag: tag,
		Ind1:   ind1,
		Ind2:   ind2,
	}

	subfields := subfieldPath.Iter(node)
	for subfields.Next() {
		sf := subfields.Node()
		code, _ := codeAttr.String(sf)
		field.Subfields = append(field.Subfields, marc.Subfield{
			Code:  code,
			Value: norm.NFC.String(sf.String()),
		})
	}

	return field
}
