package mapper

import (
	"regexp"
	"strings"

	"github.com/lehigh-university-libraries/marcwalk/hub"
	"github.com/lehigh-university-libraries/marcwalk/marc"
)

var (
	// UDC: first run of digits and UDC auxiliary signs.
	udcNumber = regexp.MustCompile(`[0-9./:()]+`)

	// Dewey: leading digits with an optional fraction, matched after the
	// segmentation marks are removed ("813/.54", "333.914/02[U]").
	deweyNumber = regexp.MustCompile(`^\D*?(\d+(?:\.\d+)?)`)
)

// classification builds an entry and reports whether it is complete.
// Entries without a system or a number are dropped.
func classification(system, number, edition, assigner string) (hub.Classification, bool) {
	c := hub.Classification{
		System:   system,
		Number:   number,
		Edition:  edition,
		Assigner: assigner,
	}
	return c, system != "" && number != ""
}

// nlmClassification handles 060. Second indicator 0 means the number was
// assigned by the National Library of Medicine.
func nlmClassification(f *marc.DataField) (hub.Classification, bool) {
	assigner := ""
	if f.Ind2 == "0" {
		assigner = "DNLM"
	}
	return classification("nlm", f.Text("a"), "", assigner)
}

// udcClassification handles 080.
func udcClassification(f *marc.DataField) (hub.Classification, bool) {
	number := udcNumber.FindString(f.Text("a"))
	return classification("udc", number, f.Text("2"), "")
}

// deweyClassification handles 082.
func deweyClassification(f *marc.DataField) (hub.Classification, bool) {
	return classification("ddc", deweyNumberOf(f.Text("a")), f.Text("2"), f.Text("q"))
}

// otherClassification handles 084, where the scheme must be named in $2.
func otherClassification(f *marc.DataField) (hub.Classification, bool) {
	return classification(f.Text("2"), f.Text("a"), "", f.Text("q"))
}

// deweyNumberOf extracts the class number from an 082 $a, joining the
// segments around prime marks. Returns "" when nothing usable is found or
// the whole number is followed by a hyphen, as in an ISBN ("0-86217-075-3")
// or a suffixed code ("028.5-dc23").
func deweyNumberOf(value string) string {
	value = strings.ReplaceAll(value, "/", "")
	loc := deweyNumber.FindStringSubmatchIndex(value)
	if loc == nil {
		return ""
	}
	if rest := value[loc[1]:]; strings.HasPrefix(rest, "-") {
		return ""
	}
	return value[loc[2]:loc[3]]
}
