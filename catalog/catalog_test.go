package catalog

import "testing"

func TestDefaultCoversCSVColumns(t *testing.T) {
	c := Default()
	fields := []string{
		"title", "alternative", "creator", "contributor", "type",
		"description", "keywords", "license", "date", "language",
		"temporal", "spatial", "accessRights", "rights", "publisher",
		"coverage", "relation", "source", "identifier",
	}
	for _, f := range fields {
		if _, ok := c.Lookup(f); !ok {
			t.Errorf("Lookup(%q) missing from default catalog", f)
		}
	}
}

func TestLookupUnknownField(t *testing.T) {
	c := Default()
	for _, f := range []string{"file", "status", "data_items", "nonsense"} {
		if _, ok := c.Lookup(f); ok {
			t.Errorf("Lookup(%q) ok = true, want miss", f)
		}
	}
}

func TestKeywordsMapToSubject(t *testing.T) {
	d, ok := Default().Lookup("keywords")
	if !ok {
		t.Fatal("keywords missing")
	}
	if d.Property != DCTerms+"subject" {
		t.Errorf("keywords property = %q, want subject term", d.Property)
	}
	if !d.Multilingual || !d.MultiValued {
		t.Errorf("keywords flags = %+v, want multilingual and multivalued", d)
	}
}

func TestDescriptorKinds(t *testing.T) {
	c := Default()
	tests := []struct {
		field string
		kind  Kind
	}{
		{"title", KindText},
		{"creator", KindPersonList},
		{"contributor", KindPersonList},
		{"type", KindURI},
		{"date", KindDate},
	}
	for _, tt := range tests {
		d, ok := c.Lookup(tt.field)
		if !ok {
			t.Fatalf("Lookup(%q) missing", tt.field)
		}
		if d.Kind != tt.kind {
			t.Errorf("%s kind = %q, want %q", tt.field, d.Kind, tt.kind)
		}
	}
}

func TestNewDefaultsKindToText(t *testing.T) {
	c := New(map[string]Descriptor{"x": {Property: "http://example.org/x"}})
	d, ok := c.Lookup("x")
	if !ok {
		t.Fatal("Lookup(x) missing")
	}
	if d.Kind != KindText {
		t.Errorf("kind = %q, want %q", d.Kind, KindText)
	}
}

func TestOverride(t *testing.T) {
	base := Default()
	over := New(map[string]Descriptor{
		"title":   {Property: "http://example.org/title", Multilingual: true},
		"funding": {Property: "http://example.org/funding"},
	})

	merged := base.Override(over)

	if d, _ := merged.Lookup("title"); d.Property != "http://example.org/title" {
		t.Errorf("title not overridden: %q", d.Property)
	}
	if _, ok := merged.Lookup("funding"); !ok {
		t.Error("funding not added")
	}
	if _, ok := merged.Lookup("creator"); !ok {
		t.Error("creator lost in override")
	}
	// Base unchanged.
	if d, _ := base.Lookup("title"); d.Property != RepositoryTerms+"title" {
		t.Errorf("base mutated: %q", d.Property)
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
name: my-project
fields:
  funding:
    property: http://purl.org/dc/terms/isReferencedBy
    multilingual: true
  orcid:
    property: http://purl.org/dc/terms/identifier
    kind: uri
    type_uri: http://www.w3.org/2001/XMLSchema#anyURI
`)
	c, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	d, ok := c.Lookup("funding")
	if !ok || !d.Multilingual {
		t.Errorf("funding = %+v, %v", d, ok)
	}
	d, ok = c.Lookup("orcid")
	if !ok || d.Kind != KindURI || d.TypeURI != XSDAnyURI {
		t.Errorf("orcid = %+v, %v", d, ok)
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no fields", "name: empty\n"},
		{"missing property", "fields:\n  x:\n    multilingual: true\n"},
		{"bad yaml", "fields: [unclosed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Error("Parse() error = nil, want error")
			}
		})
	}
}
