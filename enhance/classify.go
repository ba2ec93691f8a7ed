// Package enhance suggests improved descriptive metadata for rows by
// scoring their free text against content-type keyword sets.
package enhance

import (
	"math"
	"strings"
)

// Category is a coarse content type inferred from row text.
type Category string

const (
	CategoryImages        Category = "images"
	CategoryCode          Category = "code"
	CategoryPresentations Category = "presentations"
	CategoryDocuments     Category = "documents"
	CategoryData          Category = "data"
)

// ConfidenceCeiling caps confidence: the classifier is a heuristic and
// never reports certainty.
const ConfidenceCeiling = 95.0

type categoryDef struct {
	name     Category
	keywords []string
}

// Declaration order is the tie-break order: the first category to
// reach the top score wins.
var categories = []categoryDef{
	{CategoryImages, []string{
		"image", "photo", "photograph", "picture", "scan", "jpg",
		"jpeg", "png", "tiff", "drawing", "map", "visual",
	}},
	{CategoryCode, []string{
		"code", "script", "program", "software", "python", "java",
		"notebook", "algorithm", "source", "repository", "library",
	}},
	{CategoryPresentations, []string{
		"presentation", "slide", "slides", "talk", "conference",
		"seminar", "lecture", "keynote", "workshop",
	}},
	{CategoryDocuments, []string{
		"document", "report", "article", "paper", "text", "pdf",
		"manuscript", "thesis", "essay", "transcription",
	}},
	{CategoryData, []string{
		"data", "dataset", "csv", "table", "statistics", "measurement",
		"survey", "database", "records", "corpus",
	}},
}

// Classify scores text against every category and returns the winner
// with its confidence in [0, ConfidenceCeiling]. The third return is
// false when no keyword matched at all. Repeated calls on the same
// input always return the same result.
func Classify(text string) (Category, float64, bool) {
	blob := strings.ToLower(text)

	var best categoryDef
	bestScore := 0
	for _, def := range categories {
		score := 0
		for _, kw := range def.keywords {
			if strings.Contains(blob, kw) {
				score++
			}
		}
		if score > bestScore {
			best = def
			bestScore = score
		}
	}

	if bestScore == 0 {
		return "", 0, false
	}
	return best.name, confidence(bestScore, len(best.keywords)), true
}

// confidence is matches/total scaled to a percentage, capped, and
// rounded to one decimal.
func confidence(matches, total int) float64 {
	c := float64(matches) / float64(total) * 100
	if c > ConfidenceCeiling {
		c = ConfidenceCeiling
	}
	return math.Round(c*10) / 10
}
