package meta

import (
	"reflect"
	"testing"
)

func TestRowPreservesColumnOrder(t *testing.T) {
	r := NewRow()
	r.Set("title", "T")
	r.Set("creator", "C")
	r.Set("type", "Ty")
	r.Set("title", "T2") // overwrite keeps position

	want := []string{"title", "creator", "type"}
	if got := r.Fields(); !reflect.DeepEqual(got, want) {
		t.Errorf("Fields() = %v, want %v", got, want)
	}
	if v := r.Value("title"); v != "T2" {
		t.Errorf("Value(title) = %q, want T2", v)
	}
}

func TestRowMissingKey(t *testing.T) {
	r := NewRow()
	r.Set("title", "T")

	if _, ok := r.Get("creator"); ok {
		t.Error("Get(creator) ok = true for absent field")
	}
	if r.Has("creator") {
		t.Error("Has(creator) = true for absent field")
	}
	if v := r.Value("creator"); v != "" {
		t.Errorf("Value(creator) = %q, want empty", v)
	}
}

func TestRowClone(t *testing.T) {
	r := NewRow()
	r.Set("title", "T")
	r.Set("creator", "C")

	c := r.Clone()
	c.Set("title", "changed")
	c.Set("extra", "new")

	if v := r.Value("title"); v != "T" {
		t.Errorf("original mutated: title = %q", v)
	}
	if r.Has("extra") {
		t.Error("original gained field from clone")
	}
}

func TestRowMarshalJSONOrdered(t *testing.T) {
	r := NewRow()
	r.Set("title", "fr:Été")
	r.Set("creator", "Dupont,Jean")

	data, err := r.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	want := `{"title":"fr:Été","creator":"Dupont,Jean"}`
	if string(data) != want {
		t.Errorf("MarshalJSON() = %s, want %s", data, want)
	}
}
