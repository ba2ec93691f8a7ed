package enhance

import (
	"path"
	"strings"

	"github.com/research-data-tools/depositcsv/meta"
)

// Suggestion is a proposed metadata improvement for one row.
type Suggestion struct {
	RowIndex    int                  `json:"rowIndex"`
	Category    Category             `json:"category"`
	Confidence  float64              `json:"confidence"`
	Title       []meta.LocalizedText `json:"title"`
	Description []meta.LocalizedText `json:"description"`
	Keywords    []meta.LocalizedText `json:"keywords"`
}

// Per-category proposed descriptions and keywords, French and English
// like the rest of the field conventions.
var proposals = map[Category]struct {
	descriptionFR string
	descriptionEN string
	keywordsFR    []string
	keywordsEN    []string
}{
	CategoryImages: {
		descriptionFR: "Images et documents visuels issus du projet de recherche",
		descriptionEN: "Images and visual materials from the research project",
		keywordsFR:    []string{"images", "documents visuels"},
		keywordsEN:    []string{"images", "visual materials"},
	},
	CategoryCode: {
		descriptionFR: "Scripts et programmes développés pour le traitement des données",
		descriptionEN: "Scripts and programs developed for data processing",
		keywordsFR:    []string{"code", "logiciel"},
		keywordsEN:    []string{"code", "software"},
	},
	CategoryPresentations: {
		descriptionFR: "Supports de présentation du projet de recherche",
		descriptionEN: "Presentation materials from the research project",
		keywordsFR:    []string{"présentation", "diaporama"},
		keywordsEN:    []string{"presentation", "slides"},
	},
	CategoryDocuments: {
		descriptionFR: "Documents textuels produits dans le cadre du projet",
		descriptionEN: "Text documents produced within the project",
		keywordsFR:    []string{"documents", "textes"},
		keywordsEN:    []string{"documents", "texts"},
	},
	CategoryData: {
		descriptionFR: "Jeux de données produits dans le cadre du projet",
		descriptionEN: "Datasets produced within the project",
		keywordsFR:    []string{"données", "jeu de données"},
		keywordsEN:    []string{"data", "dataset"},
	},
}

// Suggest classifies each row on its title, file path and description
// and returns one suggestion per row that matched a category. Rows
// whose text matches nothing produce no suggestion.
func Suggest(rows []*meta.Row) []Suggestion {
	var out []Suggestion
	for i, row := range rows {
		if row == nil {
			continue
		}

		blob := strings.Join([]string{
			row.Value("title"),
			row.Value("file"),
			row.Value("description"),
		}, " ")

		category, conf, ok := Classify(blob)
		if !ok {
			continue
		}

		p := proposals[category]
		out = append(out, Suggestion{
			RowIndex:   i,
			Category:   category,
			Confidence: conf,
			Title:      proposedTitle(row),
			Description: []meta.LocalizedText{
				{Lang: "fr", Text: p.descriptionFR},
				{Lang: "en", Text: p.descriptionEN},
			},
			Keywords: proposedKeywords(p.keywordsFR, p.keywordsEN),
		})
	}
	return out
}

// Apply merges the suggestions whose row indices appear in selected
// into copies of the corresponding rows, overwriting title,
// description and keywords and leaving every other field untouched.
// Unselected rows are returned as-is; the input slice is never
// modified, so applying the same selection twice yields the same
// result.
func Apply(rows []*meta.Row, suggestions []Suggestion, selected []int) []*meta.Row {
	chosen := make(map[int]bool, len(selected))
	for _, idx := range selected {
		chosen[idx] = true
	}

	byRow := make(map[int]Suggestion, len(suggestions))
	for _, s := range suggestions {
		byRow[s.RowIndex] = s
	}

	out := make([]*meta.Row, len(rows))
	copy(out, rows)
	for idx := range chosen {
		s, ok := byRow[idx]
		if !ok || idx < 0 || idx >= len(rows) || rows[idx] == nil {
			continue
		}
		merged := rows[idx].Clone()
		merged.Set("title", meta.FormatMultilingual(s.Title))
		merged.Set("description", meta.FormatMultilingual(s.Description))
		merged.Set("keywords", meta.FormatKeywords(s.Keywords))
		out[idx] = merged
	}
	return out
}

// proposedTitle keeps the row's own title when it has one and
// otherwise derives one from the file name.
func proposedTitle(row *meta.Row) []meta.LocalizedText {
	if title := strings.TrimSpace(row.Value("title")); title != "" {
		return meta.ParseMultilingual(title)
	}

	file := strings.TrimSpace(row.Value("file"))
	if file == "" {
		return nil
	}
	base := path.Base(file)
	base = strings.TrimSuffix(base, path.Ext(base))
	base = strings.NewReplacer("_", " ", "-", " ").Replace(base)
	base = strings.TrimSpace(base)
	if base == "" {
		return nil
	}
	return []meta.LocalizedText{{Lang: meta.LangUndetermined, Text: base}}
}

func proposedKeywords(fr, en []string) []meta.LocalizedText {
	out := make([]meta.LocalizedText, 0, len(fr)+len(en))
	for _, kw := range fr {
		out = append(out, meta.LocalizedText{Lang: "fr", Text: kw})
	}
	for _, kw := range en {
		out = append(out, meta.LocalizedText{Lang: "en", Text: kw})
	}
	return out
}
