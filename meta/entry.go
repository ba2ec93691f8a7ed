// Package meta provides the core transformation from flat CSV row values
// to the metadata entry lists the deposit repository API consumes.
package meta

// LangUndetermined is the ISO 639-2 code the repository stores for
// literals whose language was not declared.
const LangUndetermined = "und"

// LocalizedText is one language's rendition of a field value.
type LocalizedText struct {
	Lang string
	Text string
}

// Entry is a single metadata statement as the deposit API expects it.
// Lang is set only for multilingual fields; TypeURI only for fields the
// catalog marks with a literal datatype.
type Entry struct {
	PropertyURI string `json:"propertyUri"`
	Value       string `json:"value"`
	Lang        string `json:"lang,omitempty"`
	TypeURI     string `json:"typeUri,omitempty"`
}

// Person is a creator or contributor. Either Surname/Given are set
// (the raw text contained a single comma) or FullName is set
// (organizations, single-word names, malformed input).
type Person struct {
	Surname  string
	Given    string
	FullName string
}

// IsOrganization reports whether the record carries only a full name.
func (p Person) IsOrganization() bool {
	return p.FullName != ""
}

// String returns the stable wire form of the record: "Surname,Given"
// or the bare full name.
func (p Person) String() string {
	if p.FullName != "" {
		return p.FullName
	}
	return p.Surname + "," + p.Given
}
