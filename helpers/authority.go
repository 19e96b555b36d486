package helpers

import (
	"regexp"
	"strings"
)

var (
	authorityPattern = regexp.MustCompile(`^\((.*?)\)(.*)$`)
	catalogPrefix    = regexp.MustCompile(`\(.*?\)`)
)

// Authority is a control number split into its source code and identifier,
// e.g. "(NO-TrBIB)x90531735" is {Vocabulary: "NO-TrBIB", ID: "x90531735"}.
type Authority struct {
	Vocabulary string
	ID         string
}

// IsZero reports whether no identifier was found.
func (a Authority) IsZero() bool {
	return a.ID == "" && a.Vocabulary == ""
}

// ParseAuthority splits a $0 or $w value. A value without a parenthesized
// prefix is returned as a bare ID.
func ParseAuthority(value string) Authority {
	value = strings.TrimSpace(value)
	if value == "" {
		return Authority{}
	}
	if m := authorityPattern.FindStringSubmatch(value); m != nil {
		return Authority{Vocabulary: m[1], ID: strings.TrimSpace(m[2])}
	}
	return Authority{ID: value}
}

// StripCatalogPrefix removes every parenthesized catalog code from a
// linking value such as "(NO-TrBIB)922367817".
func StripCatalogPrefix(value string) string {
	return strings.TrimSpace(catalogPrefix.ReplaceAllString(value, ""))
}
