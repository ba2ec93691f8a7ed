package meta

import "strings"

// ParseMultilingual decomposes a delimited field value into ordered
// (language, text) pairs.
//
// The encoding is "lang:text|lang:text|...". A segment without a colon
// is text in an undetermined language; a colon with nothing before it
// falls back to the same rule. Segments that are empty after trimming
// are dropped, so "fr:A||en:B" yields two pairs, not three. The same
// input always yields the same ordered output, and an empty input
// yields nil.
func ParseMultilingual(raw string) []LocalizedText {
	var out []LocalizedText
	for _, segment := range strings.Split(raw, "|") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		idx := strings.Index(segment, ":")
		if idx > 0 {
			out = append(out, LocalizedText{
				Lang: strings.TrimSpace(segment[:idx]),
				Text: strings.TrimSpace(segment[idx+1:]),
			})
			continue
		}

		text := segment
		if idx == 0 {
			// Colon present but the tag is empty: treat like untagged text.
			text = strings.TrimSpace(segment[1:])
		}
		out = append(out, LocalizedText{Lang: LangUndetermined, Text: text})
	}
	return out
}

// FormatMultilingual is the inverse encoding of ParseMultilingual.
// Pairs with empty text are skipped.
func FormatMultilingual(texts []LocalizedText) string {
	segments := make([]string, 0, len(texts))
	for _, lt := range texts {
		if lt.Text == "" {
			continue
		}
		if lt.Lang == "" || lt.Lang == LangUndetermined {
			segments = append(segments, lt.Text)
			continue
		}
		segments = append(segments, lt.Lang+":"+lt.Text)
	}
	return strings.Join(segments, "|")
}

// FormatKeywords encodes keyword terms back into the field convention:
// terms sharing a language join with ";" inside one "lang:" segment,
// segments join with "|". Language groups keep first-seen order.
func FormatKeywords(terms []LocalizedText) string {
	var langs []string
	grouped := make(map[string][]string)
	for _, lt := range terms {
		if lt.Text == "" {
			continue
		}
		if _, seen := grouped[lt.Lang]; !seen {
			langs = append(langs, lt.Lang)
		}
		grouped[lt.Lang] = append(grouped[lt.Lang], lt.Text)
	}

	segments := make([]string, 0, len(langs))
	for _, lang := range langs {
		joined := strings.Join(grouped[lang], ";")
		if lang == "" || lang == LangUndetermined {
			segments = append(segments, joined)
			continue
		}
		segments = append(segments, lang+":"+joined)
	}
	return strings.Join(segments, "|")
}
