package meta

import (
	"bytes"
	"encoding/json"
)

// Row is one CSV line: an ordered mapping from column name to raw
// string value. Column order is preserved so assembly output is
// deterministic for a given input file.
type Row struct {
	fields []string
	values map[string]string
}

// NewRow creates an empty row.
func NewRow() *Row {
	return &Row{values: make(map[string]string)}
}

// Set stores a value, appending the field to the column order if it is
// new. Setting an existing field overwrites its value in place.
func (r *Row) Set(field, value string) {
	if r.values == nil {
		r.values = make(map[string]string)
	}
	if _, ok := r.values[field]; !ok {
		r.fields = append(r.fields, field)
	}
	r.values[field] = value
}

// Get returns the value for a field and whether the field is present.
func (r *Row) Get(field string) (string, bool) {
	v, ok := r.values[field]
	return v, ok
}

// Value returns the value for a field, or "" if absent.
func (r *Row) Value(field string) string {
	return r.values[field]
}

// Has reports whether the field is present, empty or not.
func (r *Row) Has(field string) bool {
	_, ok := r.values[field]
	return ok
}

// Fields returns the column names in original order. The returned
// slice is shared; callers must not modify it.
func (r *Row) Fields() []string {
	return r.fields
}

// Len returns the number of columns.
func (r *Row) Len() int {
	return len(r.fields)
}

// Clone returns an independent copy of the row.
func (r *Row) Clone() *Row {
	c := NewRow()
	for _, f := range r.fields {
		c.Set(f, r.values[f])
	}
	return c
}

// MarshalJSON writes the row as a JSON object with keys in column
// order.
func (r *Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.values[f])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
