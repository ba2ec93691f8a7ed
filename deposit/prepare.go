package deposit

import (
	"strings"

	"github.com/research-data-tools/depositcsv/catalog"
	"github.com/research-data-tools/depositcsv/meta"
)

// DefaultStatus is used when a row carries no status column.
const DefaultStatus = "pending"

// Prepare builds the deposit resource for one row: metadata entries
// from the assembler, the envelope fields from the structural columns,
// and every unmapped non-empty column preserved as an extra.
func Prepare(row *meta.Row, assembler *meta.Assembler, cat *catalog.Catalog, kind Kind) (*Resource, error) {
	metas, err := assembler.Assemble(row)
	if err != nil {
		return nil, err
	}

	res := &Resource{
		Kind:   kind,
		Status: DefaultStatus,
		Metas:  metas,
	}
	if status := strings.TrimSpace(row.Value("status")); status != "" {
		res.Status = status
	}

	switch kind {
	case KindCollection:
		for _, id := range strings.Split(row.Value("data_items"), ";") {
			id = strings.TrimSpace(id)
			if id != "" {
				res.DataIDs = append(res.DataIDs, id)
			}
		}
	default:
		if file := strings.TrimSpace(row.Value("file")); file != "" {
			res.Files = append(res.Files, File{Name: file})
		}
	}

	for _, field := range row.Fields() {
		if isEnvelopeField(field) {
			continue
		}
		if _, known := cat.Lookup(field); known {
			continue
		}
		if value := strings.TrimSpace(row.Value(field)); value != "" {
			res.SetExtra(field, value)
		}
	}
	return res, nil
}

func isEnvelopeField(field string) bool {
	switch field {
	case "file", "status", "data_items":
		return true
	}
	return false
}
