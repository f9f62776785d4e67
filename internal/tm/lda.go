//    RentalTopics
//    Copyright: A Kranes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tm

import (
	"fmt"

	"github.com/james-bowman/nlp"
	"golang.org/x/exp/rand"

	"github.com/akranes/rentaltopics/internal/str"
	"github.com/akranes/rentaltopics/internal/vv"
)

// see https://github.com/james-bowman/nlp/blob/26d441fa0ded/lda.go for the full knob list:
// PerplexityTolerance, BatchSize, BurnInPasses, MeanChangeTolerance, Alpha, Eta, RhoPhi, RhoTheta, ...
// the defaults are sensible for a corpus of this size; only the reproducibility knobs get pinned here

// LDAModeler - the production Modeler: variational LDA over the assembled document-term matrix
type LDAModeler struct {
	Iterations           int
	TransformationPasses int
	Processes            int
	Seed                 uint64
}

// NewLDAModeler - an LDAModeler with an explicit seed; no ambient process state decides reproducibility
func NewLDAModeler(iterations int, processes int, seed uint64) *LDAModeler {
	return &LDAModeler{
		Iterations:           iterations,
		TransformationPasses: vv.LDAXFORMPASSES,
		Processes:            processes,
		Seed:                 seed,
	}
}

// Fit - build a K-topic model of the corpus
func (l *LDAModeler) Fit(c *str.Corpus, k int) (*TopicModelResult, error) {
	const (
		FAIL1 = "lda fit failed for k=%d: %w"
	)

	lda := nlp.NewLatentDirichletAllocation(k)
	lda.Processes = l.Processes
	lda.Iterations = l.Iterations
	lda.TransformationPasses = l.TransformationPasses

	// offset the seed by k: every grid point is reproducible on its own, and no two share a stream
	lda.Rnd = rand.New(rand.NewSource(l.Seed + uint64(k)))

	docsOverTopics, err := lda.FitTransform(c.Matrix)
	if err != nil {
		return nil, fmt.Errorf(FAIL1, k, err)
	}

	return &TopicModelResult{
		K:               k,
		DocsOverTopics:  docsOverTopics,
		TopicsOverWords: lda.Components(),
		Perplexity:      lda.Perplexity(c.Matrix),
	}, nil
}
