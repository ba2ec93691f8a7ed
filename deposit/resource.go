// Package deposit submits prepared resources to the remote repository
// API. It is deliberately thin: one submission per resource, typed
// failures, no retry policy of its own.
package deposit

import (
	"encoding/json"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/research-data-tools/depositcsv/meta"
)

// Kind selects the API endpoint a resource goes to.
type Kind string

const (
	KindData       Kind = "data"
	KindCollection Kind = "collection"
)

// File describes one attached file of a data resource. The SHA1 is
// computed by the caller's upload step, not here.
type File struct {
	Name string `json:"name"`
	SHA1 string `json:"sha1,omitempty"`
}

// Resource is one prepared deposit: the metadata entry list plus the
// envelope the API expects around it.
type Resource struct {
	Kind   Kind
	Status string
	Metas  []meta.Entry
	// Files attach to data resources; DataIDs list the member data
	// identifiers of a collection.
	Files   []File
	DataIDs []string
	// Extra carries source columns that mapped to no property, so
	// nothing a researcher wrote is silently lost.
	Extra *structpb.Struct
}

// SetExtra records an unmapped source value on the resource.
func (r *Resource) SetExtra(key string, value any) {
	if r.Extra == nil {
		r.Extra = &structpb.Struct{Fields: make(map[string]*structpb.Value)}
	}
	v, err := structpb.NewValue(value)
	if err == nil {
		r.Extra.Fields[key] = v
	}
}

// GetExtraString retrieves an unmapped source value.
func (r *Resource) GetExtraString(key string) string {
	if r.Extra == nil || r.Extra.Fields == nil {
		return ""
	}
	v, ok := r.Extra.Fields[key]
	if !ok {
		return ""
	}
	if s, ok := v.AsInterface().(string); ok {
		return s
	}
	return ""
}

// payload is the wire shape of a submission.
type payload struct {
	Status string           `json:"status"`
	Metas  []meta.Entry     `json:"metas"`
	Files  []File           `json:"files,omitempty"`
	Datas  []string         `json:"datas,omitempty"`
	Extras *structpb.Struct `json:"extras,omitempty"`
}

// MarshalJSON writes the API payload for the resource.
func (r *Resource) MarshalJSON() ([]byte, error) {
	p := payload{
		Status: r.Status,
		Metas:  r.Metas,
		Extras: r.Extra,
	}
	if p.Metas == nil {
		p.Metas = []meta.Entry{}
	}
	switch r.Kind {
	case KindCollection:
		p.Datas = r.DataIDs
	default:
		p.Files = r.Files
	}
	return json.Marshal(p)
}

// endpoint returns the API path for the resource kind.
func (r *Resource) endpoint() string {
	if r.Kind == KindCollection {
		return "/collections"
	}
	return "/datas"
}
