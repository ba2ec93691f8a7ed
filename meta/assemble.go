package meta

import (
	"errors"
	"strings"

	"github.com/research-data-tools/depositcsv/catalog"
)

// Assembler turns rows into the ordered metadata entry lists the
// deposit API expects. The catalog is injected so callers can supply
// custom field mappings; the assembler itself holds no mutable state
// and is safe for concurrent use.
type Assembler struct {
	catalog *catalog.Catalog
}

// NewAssembler creates an assembler over the given catalog.
func NewAssembler(c *catalog.Catalog) *Assembler {
	return &Assembler{catalog: c}
}

// Assemble converts one row. Fields are visited in the row's column
// order. Empty values and fields the catalog does not know emit
// nothing; a malformed value falls back to the documented parsing
// rules rather than failing. The only error is a nil row or catalog.
func (a *Assembler) Assemble(row *Row) ([]Entry, error) {
	if a == nil || a.catalog == nil {
		return nil, errors.New("assembler has no catalog")
	}
	if row == nil {
		return nil, errors.New("nil row")
	}

	var entries []Entry
	for _, field := range row.Fields() {
		value := strings.TrimSpace(row.Value(field))
		if value == "" {
			// A blank title emits no entry either; the validator
			// reports the missing required field instead.
			continue
		}

		desc, ok := a.catalog.Lookup(field)
		if !ok {
			continue
		}
		entries = append(entries, a.assembleField(desc, value)...)
	}
	return entries, nil
}

func (a *Assembler) assembleField(desc catalog.Descriptor, value string) []Entry {
	switch desc.Kind {
	case catalog.KindPersonList:
		persons := ParsePersons(value)
		entries := make([]Entry, 0, len(persons))
		for _, p := range persons {
			entries = append(entries, Entry{
				PropertyURI: desc.Property,
				Value:       p.String(),
			})
		}
		return entries

	case catalog.KindURI, catalog.KindDate:
		// Pass-through: malformed dates and URIs are the validator's
		// business, never a reason to drop or rewrite the value.
		return []Entry{{
			PropertyURI: desc.Property,
			Value:       value,
			TypeURI:     desc.TypeURI,
		}}
	}

	if !desc.Multilingual {
		return []Entry{{
			PropertyURI: desc.Property,
			Value:       value,
			TypeURI:     desc.TypeURI,
		}}
	}

	var entries []Entry
	for _, lt := range ParseMultilingual(value) {
		if desc.MultiValued {
			for _, term := range strings.Split(lt.Text, ";") {
				term = strings.TrimSpace(term)
				if term == "" {
					continue
				}
				entries = append(entries, Entry{
					PropertyURI: desc.Property,
					Value:       term,
					Lang:        lt.Lang,
					TypeURI:     desc.TypeURI,
				})
			}
			continue
		}
		if lt.Text == "" {
			continue
		}
		entries = append(entries, Entry{
			PropertyURI: desc.Property,
			Value:       lt.Text,
			Lang:        lt.Lang,
			TypeURI:     desc.TypeURI,
		})
	}
	return entries
}
