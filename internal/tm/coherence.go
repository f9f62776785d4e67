//    RentalTopics
//    Copyright: A Kranes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tm

import (
	"math"

	"github.com/akranes/rentaltopics/internal/str"
)

// UMass coherence: for the ranked top words of a topic, sum log((D(wi,wj)+ε)/D(wj)) over pairs,
// where D() counts documents containing the word(s); every pair scores <= ~0, a perfectly
// co-occurring pair scores ~0, and a pair that never shares a document scores log(ε);
// so the scores are negative and closer to zero is more coherent

// TopicCoherences - per-topic UMass coherence for the given top-word lists
func TopicCoherences(c *str.Corpus, topwords [][]string) []float64 {
	// +1 smoothing would let a never-co-occurring pair score log(1/D(wj)) >= log(1/ndocs)
	// and break the sign convention above on small D(wj)
	const EPSILON = 1e-12

	presence := docpresence(c, topwords)

	scores := make([]float64, len(topwords))
	for t := 0; t < len(topwords); t++ {
		words := topwords[t]
		score := float64(0)
		for i := 1; i < len(words); i++ {
			for j := 0; j < i; j++ {
				dj := len(presence[words[j]])
				if dj == 0 {
					continue
				}
				dij := cooccurrence(presence[words[i]], presence[words[j]])
				score += math.Log((float64(dij) + EPSILON) / float64(dj))
			}
		}
		scores[t] = score
	}

	return scores
}

// MeanCoherence - single-number summary for the sweep diagnostics
func MeanCoherence(c *str.Corpus, topwords [][]string) float64 {
	scores := TopicCoherences(c, topwords)
	if len(scores) == 0 {
		return 0
	}
	total := float64(0)
	for _, s := range scores {
		total += s
	}
	return total / float64(len(scores))
}

// docpresence - for every word in play, the set of matrix columns whose count is nonzero
func docpresence(c *str.Corpus, topwords [][]string) map[string]map[int]struct{} {
	need := make(map[string]struct{})
	for _, words := range topwords {
		for _, w := range words {
			need[w] = struct{}{}
		}
	}

	_, ndocs := c.Matrix.Dims()

	presence := make(map[string]map[int]struct{}, len(need))
	for w := range need {
		row, ok := c.VocabIndex[w]
		if !ok {
			presence[w] = map[int]struct{}{}
			continue
		}
		cols := make(map[int]struct{})
		for doc := 0; doc < ndocs; doc++ {
			if c.Matrix.At(row, doc) > 0 {
				cols[doc] = struct{}{}
			}
		}
		presence[w] = cols
	}

	return presence
}

func cooccurrence(aa map[int]struct{}, bb map[int]struct{}) int {
	if len(bb) < len(aa) {
		aa, bb = bb, aa
	}
	n := 0
	for d := range aa {
		if _, ok := bb[d]; ok {
			n += 1
		}
	}
	return n
}
