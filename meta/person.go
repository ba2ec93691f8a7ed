package meta

import "strings"

// ParsePersons decomposes a creator/contributor field into person
// records. People are separated by ";". A piece with exactly one comma
// splits into surname and given name; a piece with no comma is a full
// name (organizations, mononyms). A piece with two or more commas is
// malformed and falls back to a full name carrying the raw trimmed
// text. Empty pieces are dropped; the function never fails.
func ParsePersons(raw string) []Person {
	var out []Person
	for _, piece := range strings.Split(raw, ";") {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}

		if strings.Count(piece, ",") == 1 {
			idx := strings.Index(piece, ",")
			out = append(out, Person{
				Surname: strings.TrimSpace(piece[:idx]),
				Given:   strings.TrimSpace(piece[idx+1:]),
			})
			continue
		}

		out = append(out, Person{FullName: piece})
	}
	return out
}
