//    RentalTopics
//    Copyright: A Kranes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package prep

import (
	"fmt"
	"sort"

	"github.com/akranes/rentaltopics/internal/str"
)

// BuildVocabulary - the top-N words by global corpus frequency
//
// ties at the cutoff break deterministically: count descending, then the word itself ascending;
// re-running on unchanged input therefore yields a byte-identical vocabulary
func BuildVocabulary(docs []str.TokenizedDoc, cap int) []string {
	const (
		MSG1 = "vocabulary: kept %d of %d distinct words"
	)

	counts := make(map[string]int)
	for i := 0; i < len(docs); i++ {
		for _, t := range docs[i].Tokens {
			counts[t] += 1
		}
	}

	type wordcount struct {
		W string
		N int
	}

	ranked := make([]wordcount, 0, len(counts))
	for w, n := range counts {
		ranked = append(ranked, wordcount{W: w, N: n})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].N != ranked[j].N {
			return ranked[i].N > ranked[j].N
		}
		return ranked[i].W < ranked[j].W
	})

	if cap > len(ranked) {
		cap = len(ranked)
	}

	vocab := make([]string, cap)
	for i := 0; i < cap; i++ {
		vocab[i] = ranked[i].W
	}

	Msg.FYI(fmt.Sprintf(MSG1, len(vocab), len(counts)))

	return vocab
}
