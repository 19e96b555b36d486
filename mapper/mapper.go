// Package mapper turns MARC 21 records into normalized hub records.
//
// Each record family has a table from integer tag to rule. A rule reads one
// data field and folds what it finds into the record being assembled. Rules
// never fail: missing or odd subfields simply leave output fields unset. The
// only error this package returns is for a leader whose type of record
// (leader/06) belongs to no supported family.
//
// Mapping holds no state between calls, so Map is safe to call concurrently.
package mapper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lehigh-university-libraries/marcwalk/hub"
	"github.com/lehigh-university-libraries/marcwalk/marc"
)

// ErrUnsupportedRecordType matches any *UnsupportedRecordTypeError via errors.Is.
var ErrUnsupportedRecordType = errors.New("unsupported record type")

// UnsupportedRecordTypeError reports a record whose leader/06 is not a
// bibliographic, authority or holdings type. Raw holds the source record.
type UnsupportedRecordTypeError struct {
	Leader     string
	RecordType byte
	Raw        []byte
}

func (e *UnsupportedRecordTypeError) Error() string {
	if e.RecordType == 0 {
		return fmt.Sprintf("unsupported record type: leader %q has no type of record", e.Leader)
	}
	return fmt.Sprintf("unsupported record type %q in leader %q", e.RecordType, e.Leader)
}

// Is lets errors.Is(err, ErrUnsupportedRecordType) match.
func (e *UnsupportedRecordTypeError) Is(target error) bool {
	return target == ErrUnsupportedRecordType
}

// Leader/06 values per record family.
const (
	bibliographicTypes = "acdefgijkmoprt"
	authorityTypes     = "z"
	holdingsTypes      = "uvxy"
)

// KindOf returns the record family for a leader/06 value.
func KindOf(recordType byte) (hub.Kind, bool) {
	switch {
	case recordType == 0:
		return "", false
	case containsByte(bibliographicTypes, recordType):
		return hub.KindBibliographic, true
	case containsByte(authorityTypes, recordType):
		return hub.KindAuthority, true
	case containsByte(holdingsTypes, recordType):
		return hub.KindHoldings, true
	}
	return "", false
}

// Map converts one MARC record into the hub record for its family.
func Map(rec *marc.Record) (hub.Record, error) {
	kind, ok := KindOf(rec.RecordType())
	if !ok {
		return nil, &UnsupportedRecordTypeError{
			Leader:     rec.Leader,
			RecordType: rec.RecordType(),
			Raw:        rec.Raw,
		}
	}

	switch kind {
	case hub.KindAuthority:
		return MapAuthority(rec), nil
	case hub.KindHoldings:
		return MapHoldings(rec), nil
	default:
		return MapBibliographic(rec), nil
	}
}

// HasRule reports whether data fields with the given tag contribute to
// records of kind k.
func HasRule(k hub.Kind, tag int) bool {
	var ok bool
	switch k {
	case hub.KindBibliographic:
		_, ok = bibliographicRules[tag]
	case hub.KindAuthority:
		_, ok = authorityRules[tag]
	case hub.KindHoldings:
		_, ok = holdingsRules[tag]
	}
	return ok
}

func containsByte(set string, b byte) bool {
	return strings.IndexByte(set, b) >= 0
}
