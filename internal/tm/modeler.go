//    RentalTopics
//    Copyright: A Kranes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tm

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/akranes/rentaltopics/internal/str"
)

// TopicModelResult - what one fit hands back; opaque to the pipeline beyond these matrices
type TopicModelResult struct {
	K               int
	DocsOverTopics  mat.Matrix // K x ndocs
	TopicsOverWords mat.Matrix // K x vocab
	Perplexity      float64
}

// Modeler - the narrow capability the pipeline needs from a topic-modeling backend;
// the sweep and the final fit run against this, so tests can substitute a stub
type Modeler interface {
	Fit(c *str.Corpus, k int) (*TopicModelResult, error)
}

// TopWords - the n most heavily weighted vocabulary words per topic, weight descending
func TopWords(res *TopicModelResult, vocab []string, n int) [][]string {
	type wordweight struct {
		W string
		V float64
	}

	tr, tc := res.TopicsOverWords.Dims()
	if n > tc {
		n = tc
	}

	tops := make([][]string, tr)
	for topic := 0; topic < tr; topic++ {
		ww := make([]wordweight, tc)
		for word := 0; word < tc; word++ {
			ww[word] = wordweight{
				W: vocab[word],
				V: res.TopicsOverWords.At(topic, word),
			}
		}
		sort.Slice(ww, func(i, j int) bool {
			if ww[i].V != ww[j].V {
				return ww[i].V > ww[j].V
			}
			return ww[i].W < ww[j].W
		})

		words := make([]string, n)
		for i := 0; i < n; i++ {
			words[i] = ww[i].W
		}
		tops[topic] = words
	}

	return tops
}

// DominantTopics - for each document, the topic with the highest proportion
func DominantTopics(res *TopicModelResult) []int {
	dr, dc := res.DocsOverTopics.Dims()
	winners := make([]int, dc)
	for doc := 0; doc < dc; doc++ {
		max := float64(0)
		winner := 0
		for topic := 0; topic < dr; topic++ {
			if res.DocsOverTopics.At(topic, doc) > max {
				winner = topic
				max = res.DocsOverTopics.At(topic, doc)
			}
		}
		winners[doc] = winner
	}
	return winners
}

// TopicShares - scaled total accumulated weight of each topic across the corpus
func TopicShares(res *TopicModelResult) []float64 {
	dr, dc := res.DocsOverTopics.Dims()
	counter := make([]float64, dr)
	for doc := 0; doc < dc; doc++ {
		for topic := 0; topic < dr; topic++ {
			counter[topic] += res.DocsOverTopics.At(topic, doc)
		}
	}

	high := float64(0)
	for i := 0; i < dr; i++ {
		if counter[i] > high {
			high = counter[i]
		}
	}
	if high == 0 {
		return counter
	}

	scaled := make([]float64, dr)
	for i := 0; i < dr; i++ {
		scaled[i] = counter[i] / high
	}
	return scaled
}
