package helpers

import (
	"strings"
	"time"
)

// CenturyPivot splits two-digit years: values below it belong to the 2000s,
// the rest to the 1900s. "690101" is 2069-01-01, "700101" is 1970-01-01.
const CenturyPivot = 70

const (
	layoutDate      = "20060102"
	layoutTimestamp = "20060102150405"
)

// ParseDateTime parses the fixed-width date forms found in MARC control fields
// and item subfields:
//
//	YYMMDD            (008/00-05)
//	YYYYMMDD
//	YYYYMMDDHHMMSS.F  (005, fraction discarded)
//
// Any other length, or a value that is not a valid calendar date, yields nil.
// Returned times are in UTC.
func ParseDateTime(value string) *time.Time {
	value = strings.TrimSpace(value)

	var (
		t   time.Time
		err error
	)

	switch len(value) {
	case 6:
		if !isDigits(value) {
			return nil
		}
		century := "19"
		if int(value[0]-'0')*10+int(value[1]-'0') < CenturyPivot {
			century = "20"
		}
		t, err = time.Parse(layoutDate, century+value)
	case 8:
		if !isDigits(value) {
			return nil
		}
		t, err = time.Parse(layoutDate, value)
	case 16:
		if !isDigits(value[:14]) {
			return nil
		}
		t, err = time.Parse(layoutTimestamp, value[:14])
	default:
		return nil
	}

	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
