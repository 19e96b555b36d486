package marc

import "strings"

// Subfield is a coded value inside a data field.
type Subfield struct {
	Code  string
	Value string
}

// DataField is a variable data field with two indicators and ordered subfields.
type DataField struct {
	Tag       int
	RawTag    string
	Ind1      string
	Ind2      string
	Subfields []Subfield
}

// Text returns the trimmed value of the first subfield with the given code,
// or "" when the field has none.
func (f *DataField) Text(code string) string {
	for _, sf := range f.Subfields {
		if sf.Code == code {
			return strings.TrimSpace(sf.Value)
		}
	}
	return ""
}

// All returns the trimmed values of every subfield with the given code, in
// document order. Returns an empty slice when there are none.
func (f *DataField) All(code string) []string {
	out := []string{}
	for _, sf := range f.Subfields {
		if sf.Code == code {
			out = append(out, strings.TrimSpace(sf.Value))
		}
	}
	return out
}

// Has reports whether the field carries a subfield with the given code.
func (f *DataField) Has(code string) bool {
	for _, sf := range f.Subfields {
		if sf.Code == code {
			return true
		}
	}
	return false
}

// Each calls fn for every subfield whose code is in codes, in document order.
// The value passed to fn is trimmed.
func (f *DataField) Each(codes string, fn func(code, value string)) {
	for _, sf := range f.Subfields {
		if sf.Code != "" && strings.Contains(codes, sf.Code) {
			fn(sf.Code, strings.TrimSpace(sf.Value))
		}
	}
}

// Indicator returns indicator n (1 or 2).
func (f *DataField) Indicator(n int) string {
	switch n {
	case 1:
		return f.Ind1
	case 2:
		return f.Ind2
	}
	return ""
}
