// Package hub defines the normalized records produced from MARC input.
//
// There is one record type per MARC family. Optional scalars are omitted from
// JSON when unset; collections are always present, possibly empty.
package hub

import (
	"encoding/json"
	"fmt"
	"time"
)

// Kind names a record family.
type Kind string

const (
	KindBibliographic Kind = "bibliographic"
	KindAuthority     Kind = "authority"
	KindHoldings      Kind = "holdings"
)

// Record is implemented by every output record type.
type Record interface {
	Kind() Kind
	RecordID() string
}

var (
	_ Record = (*Bibliographic)(nil)
	_ Record = (*Authority)(nil)
	_ Record = (*Holdings)(nil)
)

// Bibliographic is a normalized bibliographic record.
type Bibliographic struct {
	ID                 string           `json:"id,omitempty"`
	Agency             string           `json:"agency,omitempty"`
	Modified           *time.Time       `json:"modified,omitempty"`
	Created            *time.Time       `json:"created,omitempty"`
	Material           string           `json:"material,omitempty"`
	Electronic         bool             `json:"electronic"`
	IsSeries           bool             `json:"is_series"`
	IsMultivolume      bool             `json:"is_multivolume"`
	LCCN               string           `json:"lccn,omitempty"`
	CatalogingRules    string           `json:"catalogingRules,omitempty"`
	Title              string           `json:"title,omitempty"`
	AlternativeTitles  []string         `json:"alternativeTitles"`
	PartNo             string           `json:"part_no,omitempty"`
	PartName           string           `json:"part_name,omitempty"`
	Medium             string           `json:"medium,omitempty"`
	Edition            string           `json:"edition,omitempty"`
	PlaceOfPublication string           `json:"placeOfPublication,omitempty"`
	Publisher          string           `json:"publisher,omitempty"`
	Year               int              `json:"year,omitempty"`
	Extent             string           `json:"extent,omitempty"`
	Pages              int              `json:"pages,omitempty"`
	Contents           string           `json:"contents,omitempty"`
	Summary            *Summary         `json:"summary,omitempty"`
	CoverImage         string           `json:"cover_image,omitempty"`
	Description        string           `json:"description,omitempty"`
	Notes              []string         `json:"notes"`
	ISBNs              []string         `json:"isbns"`
	ISSNs              []string         `json:"issns"`
	Series             []Series         `json:"series"`
	Creators           []Creator        `json:"creators"`
	Meetings           []Creator        `json:"meetings"`
	Subjects           []Subject        `json:"subjects"`
	Genres             []Subject        `json:"genres"`
	Classifications    []Classification `json:"classifications"`
	PartOf             *PartOf          `json:"part_of,omitempty"`
	OtherForm          *Relationship    `json:"other_form,omitempty"`
	Preceding          *RelatedItems    `json:"preceding,omitempty"`
	Succeeding         *RelatedItems    `json:"succeeding,omitempty"`
}

// NewBibliographic returns a record with all collections initialized.
func NewBibliographic() *Bibliographic {
	return &Bibliographic{
		AlternativeTitles: make([]string, 0),
		Notes:             make([]string, 0),
		ISBNs:             make([]string, 0),
		ISSNs:             make([]string, 0),
		Series:            make([]Series, 0),
		Creators:          make([]Creator, 0),
		Meetings:          make([]Creator, 0),
		Subjects:          make([]Subject, 0),
		Genres:            make([]Subject, 0),
		Classifications:   make([]Classification, 0),
	}
}

func (b *Bibliographic) Kind() Kind       { return KindBibliographic }
func (b *Bibliographic) RecordID() string { return b.ID }

// Summary is a 520 summary note.
type Summary struct {
	AssigningSource string `json:"assigning_source,omitempty"`
	Text            string `json:"text,omitempty"`
}

// Authority is a normalized authority record.
type Authority struct {
	ID                 string     `json:"id,omitempty"`
	Agency             string     `json:"agency,omitempty"`
	Modified           *time.Time `json:"modified,omitempty"`
	Class              string     `json:"class,omitempty"`
	Cataloging         string     `json:"cataloging,omitempty"`
	Vocabulary         string     `json:"vocabulary,omitempty"`
	CatalogingAgency   string     `json:"catalogingAgency,omitempty"`
	Language           string     `json:"language,omitempty"`
	TranscribingAgency string     `json:"transcribingAgency,omitempty"`
	ModifyingAgency    string     `json:"modifyingAgency,omitempty"`
	Name               string     `json:"name,omitempty"`
	Label              string     `json:"label,omitempty"`
	Birth              string     `json:"birth,omitempty"`
	Death              string     `json:"death,omitempty"`
	Term               string     `json:"term,omitempty"`
	Genders            []Gender   `json:"genders"`
	Gender             string     `json:"gender,omitempty"`
	AltLabels          []string   `json:"altLabels"`
}

// NewAuthority returns a record with all collections initialized.
func NewAuthority() *Authority {
	return &Authority{
		Genders:   make([]Gender, 0),
		AltLabels: make([]string, 0),
	}
}

func (a *Authority) Kind() Kind       { return KindAuthority }
func (a *Authority) RecordID() string { return a.ID }

// Gender is a 375 entry with its optional validity range.
type Gender struct {
	Value string `json:"value"`
	From  string `json:"from,omitempty"`
	Until string `json:"until,omitempty"`
}

// Holdings is a normalized holdings record.
type Holdings struct {
	ID                  string     `json:"id,omitempty"`
	BibliographicRecord string     `json:"bibliographic_record,omitempty"`
	Modified            *time.Time `json:"modified,omitempty"`
	Created             *time.Time `json:"created,omitempty"`
	Status              string     `json:"status,omitempty"`
	Location            string     `json:"location,omitempty"`
	Sublocation         string     `json:"sublocation,omitempty"`
	Shelvinglocation    string     `json:"shelvinglocation,omitempty"`
	Callcode            string     `json:"callcode,omitempty"`
	Holdings            string     `json:"holdings,omitempty"`
	UseRestrictions     string     `json:"use_restrictions,omitempty"`
	CirculationStatus   string     `json:"circulation_status,omitempty"`
	Acquired            *time.Time `json:"acquired,omitempty"`
	Barcode             string     `json:"barcode,omitempty"`
	Fulltext            []Fulltext `json:"fulltext"`
	NonpublicNotes      []string   `json:"nonpublic_notes"`
	PublicNotes         []string   `json:"public_notes"`
}

// NewHoldings returns a record with all collections initialized.
func NewHoldings() *Holdings {
	return &Holdings{
		Fulltext:       make([]Fulltext, 0),
		NonpublicNotes: make([]string, 0),
		PublicNotes:    make([]string, 0),
	}
}

func (h *Holdings) Kind() Kind       { return KindHoldings }
func (h *Holdings) RecordID() string { return h.ID }

// Fulltext is an 856 link to a digital copy.
type Fulltext struct {
	URL      string `json:"url"`
	Provider string `json:"provider,omitempty"`
	Comment  string `json:"comment,omitempty"`
}

// ToMap returns the record in its JSON shape as generic maps and slices.
// Numbers decode as float64.
func ToMap(r Record) (map[string]any, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshaling %s record: %w", r.Kind(), err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshaling %s record: %w", r.Kind(), err)
	}
	return m, nil
}
