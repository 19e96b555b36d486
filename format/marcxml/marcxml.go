// Package marcxml provides a format plugin that reads MARCXML and maps each
// record to its normalized form.
package marcxml

import (
	"bytes"

	"github.com/lehigh-university-libraries/marcwalk/format"
	xmlreader "github.com/lehigh-university-libraries/marcwalk/marc/marcxml"
)

// Format implements the MARCXML format.
type Format struct{}

var (
	_ format.Format = (*Format)(nil)
	_ format.Parser = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "marcxml"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "MARC 21 XML (slim, marcxchange, SRU and OAI-PMH responses)"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"xml", "marcxml", "mrx"}
}

// CanParse returns true if the input looks like MARCXML.
func (f *Format) CanParse(peek []byte) bool {
	peek = bytes.TrimSpace(peek)
	if len(peek) == 0 || peek[0] != '<' {
		return false
	}
	return bytes.Contains(peek, []byte(xmlreader.NamespaceSlim)) ||
		bytes.Contains(peek, []byte(xmlreader.NamespaceMarcxchange))
}

func init() {
	format.Register(&Format{})
}
