package hub

// Relationship is a linking entry (76X-78X) pointing at another record.
type Relationship struct {
	ID           string `json:"id,omitempty"`
	Title        string `json:"title,omitempty"`
	RelatedParts string `json:"related_parts,omitempty"`
	ISSN         string `json:"issn,omitempty"`
	ISBN         string `json:"isbn,omitempty"`
}

// IsZero reports whether no linking data was captured.
func (r Relationship) IsZero() bool {
	return r == Relationship{}
}

// RelatedItems groups preceding or succeeding entries under one relationship type.
type RelatedItems struct {
	RelationshipType string         `json:"relationship_type,omitempty"`
	Note             string         `json:"note,omitempty"`
	Items            []Relationship `json:"items"`
}

// PartOf is the host item (773) of a component part.
type PartOf struct {
	Relationship string `json:"relationship,omitempty"`
	Title        string `json:"title,omitempty"`
	ISSN         string `json:"issn,omitempty"`
	ISBN         string `json:"isbn,omitempty"`
	Volume       string `json:"volume,omitempty"`
	ID           string `json:"id,omitempty"`
	Vocabulary   string `json:"vocabulary,omitempty"`
	Note         string `json:"note,omitempty"`
}

// Series is an 830 series added entry. ID and Volume serialize as null when absent.
type Series struct {
	Title  string  `json:"title"`
	ID     *string `json:"id"`
	Volume *string `json:"volume"`
}

// Subject is a subject or genre/form entry.
type Subject struct {
	Term       string        `json:"term"`
	Type       string        `json:"type,omitempty"`
	Vocabulary string        `json:"vocabulary,omitempty"`
	ID         string        `json:"id,omitempty"`
	Parts      []SubjectPart `json:"parts"`

	// Meeting headings (611) only.
	Time   string `json:"time,omitempty"`
	Place  string `json:"place,omitempty"`
	Misc   string `json:"misc,omitempty"`
	Number string `json:"number,omitempty"`
}

// SubjectPart is a subdivision of a subject heading.
type SubjectPart struct {
	Value string `json:"value"`
	Type  string `json:"type"`
}

// Classification is a classification number with its scheme.
type Classification struct {
	System   string `json:"system"`
	Number   string `json:"number"`
	Edition  string `json:"edition,omitempty"`
	Assigner string `json:"assigner,omitempty"`
}
