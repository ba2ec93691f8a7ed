package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the YAML shape of a custom catalog file:
//
//	name: my-project
//	fields:
//	  funding:
//	    property: http://purl.org/dc/terms/isReferencedBy
//	    multilingual: true
//	  title:
//	    property: http://nakala.fr/terms#title
//	    multilingual: true
type File struct {
	Name        string                `yaml:"name,omitempty"`
	Description string                `yaml:"description,omitempty"`
	Fields      map[string]Descriptor `yaml:"fields"`
}

// Parse builds a catalog from YAML bytes.
func Parse(data []byte) (*Catalog, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if len(f.Fields) == 0 {
		return nil, fmt.Errorf("catalog %q defines no fields", f.Name)
	}
	for name, d := range f.Fields {
		if d.Property == "" {
			return nil, fmt.Errorf("catalog field %q has no property URI", name)
		}
	}
	return New(f.Fields), nil
}

// Load reads a custom catalog file and overlays it on the default
// catalog, so a file only needs to declare the fields it adds or
// remaps.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	custom, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return Default().Override(custom), nil
}
