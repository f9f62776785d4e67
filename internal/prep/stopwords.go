//    RentalTopics
//    Copyright: A Kranes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package prep

import (
	"github.com/akranes/rentaltopics/internal/gen"
)

//
// STOPWORDS
//

var (
	// English100 - the most common english function words
	English100 = []string{"the", "be", "to", "of", "and", "a", "an", "in", "that", "have", "has", "had", "i", "it",
		"for", "not", "on", "with", "he", "as", "you", "do", "at", "this", "but", "his", "by", "from", "they",
		"we", "say", "her", "she", "or", "will", "my", "one", "all", "would", "there", "their", "what", "so",
		"up", "out", "if", "about", "who", "get", "which", "go", "me", "when", "make", "can", "like", "time",
		"no", "just", "him", "know", "take", "people", "into", "year", "your", "good", "some", "could", "them",
		"see", "other", "than", "then", "now", "look", "only", "come", "its", "over", "think", "also", "back",
		"after", "use", "two", "how", "our", "work", "first", "well", "way", "even", "new", "want", "because",
		"any", "these", "give", "day", "most", "us", "is", "are", "was", "were", "been", "being", "am"}
	// EnglishExtra - listing boilerplate that behaves like a function word in this corpus
	EnglishExtra = []string{"very", "more", "each", "every", "both", "few", "many", "much", "such", "own", "same",
		"too", "here", "where", "while", "during", "per", "via", "etc", "s", "t", "ll", "re", "ve", "d", "m",
		"within", "without", "between", "through", "away", "please", "note", "located", "situated"}
	EnglishStop = append(English100, EnglishExtra...)
	// EnglishKeep - members of EnglishStop we will not toss: informative for rental descriptions
	EnglishKeep = []string{"new", "good", "work", "time", "day", "people", "well"}
)

// GetStopSet - the stopword set the tokenizer anti-joins against
func GetStopSet() map[string]struct{} {
	es := gen.SetSubtraction(append([]string{}, EnglishStop...), EnglishKeep)
	return gen.ToSet(es)
}
