// Package marcxml reads MARC 21 records from MARCXML documents.
//
// A document may be a bare record, a MARC collection, or a response envelope
// (SRU, OAI-PMH) with records nested inside. Each record element is cut out
// of the source verbatim and then walked with XPath expressions.
package marcxml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/lehigh-university-libraries/marcwalk/marc"
)

// Known record namespaces.
const (
	NamespaceSlim        = "http://www.loc.gov/MARC21/slim"
	NamespaceMarcxchange = "info:lc/xmlns/marcxchange-v1"
)

// ErrNoRecords is returned when a document holds no MARC record element.
var ErrNoRecords = errors.New("no MARC records found")

// Envelopes whose own <record> elements wrap the MARC record instead of being one.
var envelopeNamespaces = map[string]bool{
	"http://www.loc.gov/zing/srw/":                       true,
	"http://docs.oasis-open.org/ns/search-ws/sruResponse": true,
	"http://www.openarchives.org/OAI/2.0/":               true,
}

// ReadAll reads every MARC record in the document.
func ReadAll(r io.Reader) ([]*marc.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	raws, err := Split(data)
	if err != nil {
		return nil, err
	}
	if len(raws) == 0 {
		return nil, ErrNoRecords
	}

	records := make([]*marc.Record, 0, len(raws))
	for i, raw := range raws {
		rec, err := Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("decoding record %d: %w", i, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

// Split returns the raw bytes of each MARC record element in the document,
// in document order.
func Split(data []byte) ([][]byte, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	var raws [][]byte
	for {
		offset := decoder.InputOffset()
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing XML: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || !isRecordElement(start.Name) {
			continue
		}

		if err := decoder.Skip(); err != nil {
			return nil, fmt.Errorf("reading record %d: %w", len(raws), err)
		}
		end := decoder.InputOffset()

		raw := make([]byte, end-offset)
		copy(raw, data[offset:end])
		raws = append(raws, raw)
	}

	return raws, nil
}

func isRecordElement(name xml.Name) bool {
	if name.Local != "record" {
		return false
	}
	return !envelopeNamespaces[name.Space]
}
