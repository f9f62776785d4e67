//    RentalTopics
//    Copyright: A Kranes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package prep

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/akranes/rentaltopics/internal/str"
)

// listing descriptions arrive with "café"-style accents and emoji bullets;
// fold the diacritics, lowercase, and split on anything that is not a letter or digit

var defold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Tokenize - one description string --> its stopword-free token stream
func Tokenize(text string, stops map[string]struct{}) []string {
	folded, _, e := transform.String(defold, text)
	if e != nil {
		// a malformed rune sequence is not worth losing the document over
		folded = text
	}

	folded = strings.ToLower(folded)

	words := strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var tokens []string
	for i := 0; i < len(words); i++ {
		// anti-join: keep tokens NOT in the stopword set
		if _, s := stops[words[i]]; s {
			continue
		}
		tokens = append(tokens, words[i])
	}

	return tokens
}

// TokenizeAll - token streams for every prepared listing, in input order
func TokenizeAll(listings []str.PreparedListing, stops map[string]struct{}) []str.TokenizedDoc {
	docs := make([]str.TokenizedDoc, len(listings))
	for i := 0; i < len(listings); i++ {
		docs[i] = str.TokenizedDoc{
			ID:     listings[i].ID,
			Tokens: Tokenize(listings[i].Comments, stops),
		}
	}
	return docs
}
