// Package marc provides the MARC 21 record model used by the readers and mappers.
//
// Records are read-only once built. Mapping code reads tags, indicators and
// subfields through the accessors here and never mutates a record.
package marc

import (
	"strconv"
	"strings"
)

// Record is a single MARC 21 record.
type Record struct {
	// Leader is the 24 character record leader.
	Leader string

	// ControlFields holds 00X fields in document order.
	ControlFields []ControlField

	// DataFields holds variable data fields in document order.
	DataFields []DataField

	// Raw is the serialized source of the record, kept for error reporting.
	Raw []byte
}

// ControlField is a fixed-length field (001-009) with a single value.
type ControlField struct {
	Tag    int
	RawTag string
	Value  string
}

// Position returns the byte at offset i of the control field value.
// Returns 0 when the value is too short.
func (c ControlField) Position(i int) byte {
	return at(c.Value, i)
}

// ParseTag converts a textual tag to its integer form.
// Unparseable tags yield 0, which no mapping rule handles.
func ParseTag(tag string) int {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return 0
	}
	n, err := strconv.Atoi(tag)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// LeaderPosition returns the leader byte at offset i, or 0 when the leader is too short.
func (r *Record) LeaderPosition(i int) byte {
	return at(r.Leader, i)
}

// RecordType returns leader/06.
func (r *Record) RecordType() byte {
	return r.LeaderPosition(6)
}

// ControlField returns the first control field with the given tag.
func (r *Record) ControlField(tag int) (ControlField, bool) {
	for _, cf := range r.ControlFields {
		if cf.Tag == tag {
			return cf, true
		}
	}
	return ControlField{}, false
}

// ControlValue returns the value of the first control field with the given tag,
// or "" when absent.
func (r *Record) ControlValue(tag int) string {
	cf, _ := r.ControlField(tag)
	return cf.Value
}

// Fields returns all data fields with the given tag in document order.
func (r *Record) Fields(tag int) []*DataField {
	var out []*DataField
	for i := range r.DataFields {
		if r.DataFields[i].Tag == tag {
			out = append(out, &r.DataFields[i])
		}
	}
	return out
}

// HasField reports whether any data field carries the given tag.
func (r *Record) HasField(tag int) bool {
	for i := range r.DataFields {
		if r.DataFields[i].Tag == tag {
			return true
		}
	}
	return false
}

func at(s string, i int) byte {
	if i < 0 || i >= len(s) {
		return 0
	}
	return s[i]
}
