//    RentalTopics
//    Copyright: A Kranes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package sweep

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/akranes/rentaltopics/internal/corpus"
	"github.com/akranes/rentaltopics/internal/str"
	"github.com/akranes/rentaltopics/internal/tm"
)

// stubmodeler - deterministic stand-in for the LDA backend; fails at the Ks it is told to fail at
type stubmodeler struct {
	badk map[int]bool
}

func (s *stubmodeler) Fit(c *str.Corpus, k int) (*tm.TopicModelResult, error) {
	if s.badk[k] {
		return nil, fmt.Errorf("synthetic convergence failure at k=%d", k)
	}

	ndocs := c.NumDocs()
	nterms := c.NumTerms()

	dot := mat.NewDense(k, ndocs, nil)
	tow := mat.NewDense(k, nterms, nil)
	for topic := 0; topic < k; topic++ {
		for doc := 0; doc < ndocs; doc++ {
			dot.Set(topic, doc, 1/float64(k))
		}
		for word := 0; word < nterms; word++ {
			tow.Set(topic, word, 1/float64(nterms))
		}
	}

	return &tm.TopicModelResult{
		K:               k,
		DocsOverTopics:  dot,
		TopicsOverWords: tow,
		Perplexity:      float64(100 - k),
	}, nil
}

func sweepcorpus(t *testing.T) *str.Corpus {
	t.Helper()

	listings := []str.PreparedListing{
		{ID: "1", LogPrice: 4.0},
		{ID: "2", LogPrice: 5.0},
		{ID: "3", LogPrice: 6.0},
	}
	docs := []str.TokenizedDoc{
		{ID: "1", Tokens: []string{"beach", "pool"}},
		{ID: "2", Tokens: []string{"beach", "garden"}},
		{ID: "3", Tokens: []string{"pool", "garden", "garden"}},
	}

	c, e := corpus.Assemble(listings, docs, []string{"beach", "pool", "garden"})
	require.NoError(t, e)
	return c
}

func TestGridSearch(t *testing.T) {
	c := sweepcorpus(t)
	mdl := &stubmodeler{badk: map[int]bool{}}

	diags, fails := GridSearch(c, mdl, 2, 7, 3)

	require.Len(t, diags, 6)
	assert.Empty(t, fails)

	// collation restores K order no matter which worker finished first
	for i, d := range diags {
		assert.Equal(t, i+2, d.K)
		assert.Equal(t, float64(100-d.K), d.Perplexity)
		assert.Len(t, d.TopWords, d.K)
	}
}

func TestGridSearchIsolatesFailures(t *testing.T) {
	c := sweepcorpus(t)
	mdl := &stubmodeler{badk: map[int]bool{5: true}}

	diags, fails := GridSearch(c, mdl, 2, 7, 2)

	// the failing grid point is excluded; the rest of the sweep completes
	require.Len(t, diags, 5)
	for _, d := range diags {
		assert.NotEqual(t, 5, d.K)
	}

	require.Len(t, fails, 1)
	assert.Equal(t, 5, fails[0].K)
	assert.Contains(t, fails[0].Err, "synthetic convergence failure")
}

func TestGridSearchSingleWorker(t *testing.T) {
	c := sweepcorpus(t)
	mdl := &stubmodeler{badk: map[int]bool{}}

	diags, fails := GridSearch(c, mdl, 3, 3, 1)

	require.Len(t, diags, 1)
	assert.Empty(t, fails)
	assert.Equal(t, 3, diags[0].K)
}
