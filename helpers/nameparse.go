package helpers

import "strings"

// NormalizeName turns an inverted heading into display order.
// "Bakke, Dagfinn" becomes "Dagfinn Bakke". Only a value that splits into
// exactly two parts on ", " is inverted; anything else is returned unchanged.
func NormalizeName(name string) string {
	parts := strings.Split(name, ", ")
	if len(parts) == 2 {
		return parts[1] + " " + parts[0]
	}
	return name
}

// SplitLifespan splits a "$d" dates value such as "1828-1906" or "1933-"
// into birth and death parts. Missing parts are returned as "".
func SplitLifespan(dates string) (birth, death string) {
	dates = strings.TrimSpace(dates)
	if dates == "" {
		return "", ""
	}
	parts := strings.Split(dates, "-")
	birth = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		death = strings.TrimSpace(parts[1])
	}
	return birth, death
}
