package mapper

import (
	"github.com/lehigh-university-libraries/marcwalk/hub"
	"github.com/lehigh-university-libraries/marcwalk/marc"
)

// Material names that drive further refinement.
const (
	materialUnknown = hub.MaterialUnknown
	materialBook    = "Book"
	materialSeries  = "Series"
	materialMusic   = "Music"
	materialMap     = "Map"
	materialVisual  = "Visual"
	materialFile    = "File"
	materialMixed   = "Mixed"
	materialArticle = "Article"
)

// Carrier subtypes keyed by 007/00 then 007/01.
var carrierSubtypes = map[byte]map[byte]string{
	'a': {
		'd': "Atlas",
		'g': "Diagram",
		'j': "Map",
		'k': "Profile",
		'q': "Model",
		'r': "Remote-sensing image",
		'_': "Map",
	},
	'c': {
		'a': "Tape cartridge",
		'b': "Chip cartridge",
		'c': "Computer optical disc cartridge",
		'd': "Computer disc, type unspecified",
		'e': "Computer disc cartridge, type unspecified",
		'f': "Tape cassette",
		'h': "Tape reel",
		'j': "Magnetic disk",
		'k': "Computer card",
		'm': "Magneto-optical disc",
		'o': "CD-ROM",
		'r': "Remote resource",
	},
	'f': {
		'a': "Moon",
		'b': "Braille",
		'c': "Combination",
		'd': "No writing system",
	},
	'h': {
		'a': "Aperture card",
		'b': "Microfilm cartridge",
		'c': "Microfilm cassette",
		'd': "Microfilm reel",
		'e': "Microfiche",
		'f': "Microfiche cassette",
		'g': "Microopaque",
		'h': "Microfilm slip",
		'j': "Microfilm roll",
		'u': "Microform",
		'z': "Microform",
		'|': "Microform",
	},
	'o': {
		'u': "Kit",
		'|': "Kit",
	},
	's': {
		'd': "Music CD",
		'e': "Cylinder",
		'g': "Sound cartridge",
		'i': "Sound-track film",
		'q': "Roll",
		's': "Sound cassette",
		't': "Sound-tape reel",
		'u': "Unspecified",
		'w': "Wire recording",
	},
	'v': {
		'c': "Videocartridge",
		'd': "Videodisc",
		'f': "Videocassette",
		'r': "Videoreel",
	},
}

// 008/24 nature of contents for books.
var natureOfContents = map[byte]string{
	'a': "Abstract",
	'b': "Bibliography",
	'c': "Catalog",
	'd': "Dictionary",
	'e': "Encyclopedia",
	'f': "Handbook",
	'g': "Legal article",
	'i': "Index",
	'j': "Patent document",
	'k': "Discography",
	'l': "Legislation",
	'm': "Thesis",
	'n': "Surveys of literature in a subject area",
	'o': "Review",
	'p': "Programmed text",
	'q': "Filmography",
	'r': "Directory",
	's': "Statistics",
	't': "Technical report",
	'u': "Standards/specification",
	'v': "Legal cases and case notes",
	'w': "Law reports and digests",
	'y': "Yearbook",
	'z': "Treaty",
	'2': "Offprint",
	'5': "Calendar",
	'6': "Comics/graphic novel",
}

// 007/04 videorecording format.
var videoFormats = map[byte]string{
	'a': "Beta (1/2 in., videocassette)",
	'b': "VHS (1/2 in., videocassette)",
	'c': "U-matic (3/4 in., videocassette)",
	'd': "EIAJ (1/2 in., reel)",
	'e': "Type C (1 in., reel)",
	'f': "Quadruplex (1 in. or 2 in., reel)",
	'g': "Laserdisc",
	'h': "CED (Capacitance Electronic Disc) videodisc",
	'i': "Betacam (1/2 in., videocassette)",
	'j': "Betacam SP (1/2 in., videocassette)",
	'k': "Super-VHS (1/2 in., videocassette)",
	'm': "M-II (1/2 in., videocassette)",
	'o': "D-2 (3/4 in., videocassette)",
	'p': "8 mm.",
	'q': "Hi-8 mm.",
	's': "Blu-ray",
	'u': "Unknown",
	'v': "DVD",
}

// carrierSubtype looks up the 007 category/designation pair, or returns def.
func carrierSubtype(category, designation byte, def string) string {
	if sub, ok := carrierSubtypes[category][designation]; ok {
		return sub
	}
	return def
}

// classifyMaterial derives the material name and the online flag from the
// leader, 007 and 008. Without a full leader or a two character 007 the
// material is "Unknown" and electronic is false.
func classifyMaterial(rec *marc.Record) (material string, electronic bool) {
	f007 := rec.ControlValue(7)
	f008 := rec.ControlValue(8)
	if len(rec.Leader) < 8 || len(f007) < 2 {
		return materialUnknown, false
	}

	typeOfRecord := rec.LeaderPosition(6)
	level := rec.LeaderPosition(7)

	material = materialUnknown
	switch typeOfRecord {
	case 'a':
		switch level {
		case 'a', 'c', 'd', 'm':
			material = materialBook
		case 'b', 'i', 's':
			material = materialSeries
		}
	case 't':
		material = materialBook
	case 'c', 'd', 'i', 'j':
		material = materialMusic
	case 'e', 'f':
		material = materialMap
	case 'g', 'k', 'o', 'r':
		material = materialVisual
	case 'm':
		// Software and numeric data, not e-books or e-journals.
		material = materialFile
	case 'p':
		material = materialMixed
	}

	electronic = f007[0] == 'c' && f007[1] == 'r'

	switch material {
	case materialFile:
		material = carrierSubtype(f007[0], f007[1], material)

	case materialVisual:
		material = carrierSubtype(f007[0], f007[1], material)
		if len(f007) > 4 {
			if format, ok := videoFormats[f007[4]]; ok {
				material = format
			}
		}

	case materialMusic:
		if f007[0] == 't' {
			material = "Sheet music"
		} else {
			material = carrierSubtype(f007[0], f007[1], material)
			if level == 'a' {
				material += " track"
			}
		}

	case materialSeries:
		if len(f008) > 21 {
			switch f008[21] {
			case 'm':
				material = materialSeries
			case 'n':
				material = "Newspaper"
				if f007[0] == 'h' {
					material += " on microform"
				}
			case 'p':
				material = "Periodical"
			}
		}

	case materialBook:
		if len(f008) > 24 {
			if nature, ok := natureOfContents[f008[24]]; ok {
				material = nature
			}
		}
		if level == 'a' {
			material = materialArticle
		}
	}

	return material, electronic
}
