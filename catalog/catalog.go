// Package catalog maps logical CSV field names to the semantic
// properties of the deposit repository. The catalog is read-only
// configuration: built once, then shared freely across callers.
package catalog

import "sort"

// Kind describes how a field's raw value decomposes into entries.
type Kind string

const (
	// KindText is free text, possibly multilingual and multi-valued.
	KindText Kind = "text"
	// KindPersonList is a ";"-separated list of person records.
	KindPersonList Kind = "person"
	// KindURI is a single URI passed through unmodified.
	KindURI Kind = "uri"
	// KindDate is a single date literal passed through unmodified.
	KindDate Kind = "date"
)

// Common literal datatype URIs attached to typed entries.
const (
	XSDString = "http://www.w3.org/2001/XMLSchema#string"
	XSDAnyURI = "http://www.w3.org/2001/XMLSchema#anyURI"
)

// Namespaces of the default property set.
const (
	RepositoryTerms = "http://nakala.fr/terms#"
	DCTerms         = "http://purl.org/dc/terms/"

	// COARTypePrefix is the namespace resource type URIs should start
	// with. Validation checks the prefix only, never an enumerated list.
	COARTypePrefix = "http://purl.org/coar/resource_type/"
)

// Descriptor describes one field: which property it maps to and how
// its raw value is interpreted.
type Descriptor struct {
	Property     string `yaml:"property"`
	Multilingual bool   `yaml:"multilingual,omitempty"`
	MultiValued  bool   `yaml:"multivalued,omitempty"`
	Kind         Kind   `yaml:"kind,omitempty"`
	// TypeURI, when set, is emitted on every entry of the field.
	TypeURI string `yaml:"type_uri,omitempty"`
}

// Catalog is an immutable field-name -> Descriptor table.
type Catalog struct {
	fields map[string]Descriptor
}

// New builds a catalog from a descriptor table. The map is copied;
// descriptors with an unset kind default to KindText.
func New(fields map[string]Descriptor) *Catalog {
	c := &Catalog{fields: make(map[string]Descriptor, len(fields))}
	for name, d := range fields {
		if d.Kind == "" {
			d.Kind = KindText
		}
		c.fields[name] = d
	}
	return c
}

// Lookup resolves a field name. The second return is false for fields
// the catalog does not know; lookups depend on the field name only.
func (c *Catalog) Lookup(field string) (Descriptor, bool) {
	d, ok := c.fields[field]
	return d, ok
}

// Fields returns the known field names, sorted.
func (c *Catalog) Fields() []string {
	names := make([]string, 0, len(c.fields))
	for name := range c.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Override returns a new catalog with entries from other replacing or
// extending the receiver's. Neither input is modified.
func (c *Catalog) Override(other *Catalog) *Catalog {
	merged := make(map[string]Descriptor, len(c.fields)+len(other.fields))
	for name, d := range c.fields {
		merged[name] = d
	}
	for name, d := range other.fields {
		merged[name] = d
	}
	return New(merged)
}

// Default returns the built-in catalog covering the data-item and
// collection column sets.
func Default() *Catalog {
	return New(map[string]Descriptor{
		"title":       {Property: RepositoryTerms + "title", Multilingual: true, Kind: KindText},
		"alternative": {Property: DCTerms + "alternative", Multilingual: true, Kind: KindText},
		"creator":     {Property: RepositoryTerms + "creator", Kind: KindPersonList},
		"contributor": {Property: DCTerms + "contributor", Kind: KindPersonList},
		"type":        {Property: RepositoryTerms + "type", Kind: KindURI, TypeURI: XSDAnyURI},
		"description": {Property: DCTerms + "description", Multilingual: true, Kind: KindText},
		"keywords":    {Property: DCTerms + "subject", Multilingual: true, MultiValued: true, Kind: KindText},
		"license":     {Property: RepositoryTerms + "license", Kind: KindText, TypeURI: XSDString},
		"date":        {Property: RepositoryTerms + "created", Kind: KindDate, TypeURI: XSDString},
		"language":    {Property: DCTerms + "language", Kind: KindText},
		"temporal":    {Property: DCTerms + "temporal", Multilingual: true, Kind: KindText},
		"spatial":     {Property: DCTerms + "spatial", Multilingual: true, Kind: KindText},
		"accessRights": {
			Property: DCTerms + "accessRights", Kind: KindText,
		},
		"rights":     {Property: DCTerms + "rights", Kind: KindText},
		"publisher":  {Property: DCTerms + "publisher", Multilingual: true, Kind: KindText},
		"coverage":   {Property: DCTerms + "coverage", Multilingual: true, Kind: KindText},
		"relation":   {Property: DCTerms + "relation", Multilingual: true, Kind: KindText},
		"source":     {Property: DCTerms + "source", Multilingual: true, Kind: KindText},
		"identifier": {Property: DCTerms + "identifier", Kind: KindText},
	})
}
