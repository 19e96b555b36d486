package helpers

import "strings"

// MARCRelators maps MARC relator codes ($4) to labels.
// This is a subset of the full list covering the roles common in library catalogs.
var MARCRelators = map[string]string{
	// Primary creators
	"aut": "Author",
	"cre": "Creator",
	"edt": "Editor",
	"com": "Compiler",
	"trl": "Translator",
	"ill": "Illustrator",
	"pht": "Photographer",
	"art": "Artist",
	"cmp": "Composer",

	// Contributors
	"ctb": "Contributor",
	"aui": "Author of introduction",
	"aft": "Author of afterword",
	"ann": "Annotator",
	"cmm": "Commentator",
	"wpr": "Writer of preface",
	"wam": "Writer of accompanying material",

	// Thesis-related
	"ths": "Thesis advisor",
	"dgs": "Degree supervisor",
	"dgc": "Degree committee member",
	"opn": "Opponent",

	// Publishing
	"pbl": "Publisher",
	"dst": "Distributor",
	"bkd": "Book designer",
	"bkp": "Book producer",
	"prt": "Printer",
	"tyg": "Typographer",

	// Research
	"res": "Researcher",
	"fnd": "Funder",
	"spn": "Sponsor",
	"his": "Host institution",
	"dgg": "Degree granting institution",

	// Data and software
	"dtc": "Data contributor",
	"dtm": "Data manager",
	"prg": "Programmer",

	// Performance
	"prf": "Performer",
	"act": "Actor",
	"nrt": "Narrator",
	"sng": "Singer",
	"cnd": "Conductor",
	"drt": "Director",
	"pro": "Producer",

	// Organization
	"org": "Originator",
	"isb": "Issuing body",
	"cph": "Copyright holder",
	"oth": "Other",

	// Provenance
	"col": "Collector",
	"cur": "Curator",
	"own": "Owner",
	"dnr": "Donor",
}

// EntryRoles labels the default roles assigned to name and title entries
// that carry no relator of their own.
var EntryRoles = map[string]string{
	"main":            "Main entry",
	"corporate":       "Corporate main entry",
	"meeting":         "Meeting",
	"uniform_title":   "Uniform title",
	"added":           "Added entry",
	"added_corporate": "Corporate added entry",
}

// RelatorCodeFromURI extracts the relator code from "relators:aut" or
// "http://id.loc.gov/vocabulary/relators/aut".
func RelatorCodeFromURI(uri string) string {
	if strings.HasPrefix(uri, "relators:") {
		return strings.TrimPrefix(uri, "relators:")
	}
	if _, after, ok := strings.Cut(uri, "relators/"); ok {
		return strings.TrimSuffix(after, "/")
	}
	return uri
}

// RelatorLabel returns the label for a relator code or entry role.
// Free-text relator terms ($e) are returned as given.
func RelatorLabel(codeOrURI string) string {
	code := strings.ToLower(RelatorCodeFromURI(codeOrURI))

	if label, ok := MARCRelators[code]; ok {
		return label
	}
	if label, ok := EntryRoles[code]; ok {
		return label
	}
	return codeOrURI
}
