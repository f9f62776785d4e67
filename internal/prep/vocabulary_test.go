//    RentalTopics
//    Copyright: A Kranes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package prep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akranes/rentaltopics/internal/str"
)

func TestBuildVocabularyRanksByFrequency(t *testing.T) {
	docs := []str.TokenizedDoc{
		{ID: "1", Tokens: []string{"beach", "beach", "beach", "pool", "pool", "wifi"}},
		{ID: "2", Tokens: []string{"beach", "pool", "garden"}},
	}

	vocab := BuildVocabulary(docs, 3)

	require.Len(t, vocab, 3)
	assert.Equal(t, "beach", vocab[0])
	assert.Equal(t, "pool", vocab[1])
	// garden and wifi both appear once; the tie breaks lexicographically
	assert.Equal(t, "garden", vocab[2])
}

func TestBuildVocabularyCapInvariant(t *testing.T) {
	docs := []str.TokenizedDoc{
		{ID: "1", Tokens: []string{"a1", "b2", "c3"}},
	}

	// cap above the distinct-word count yields every word, not padding
	vocab := BuildVocabulary(docs, 100)
	assert.Len(t, vocab, 3)

	vocab = BuildVocabulary(docs, 2)
	assert.Len(t, vocab, 2)

	vocab = BuildVocabulary(nil, 100)
	assert.Empty(t, vocab)
}

func TestBuildVocabularyDeterministic(t *testing.T) {
	docs := []str.TokenizedDoc{
		{ID: "1", Tokens: []string{"delta", "alpha", "echo", "bravo"}},
		{ID: "2", Tokens: []string{"charlie", "alpha"}},
	}

	first := BuildVocabulary(docs, 4)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, BuildVocabulary(docs, 4))
	}

	// the one repeated word outranks the four singletons; singletons sort by spelling
	assert.Equal(t, []string{"alpha", "bravo", "charlie", "delta"}, first)
}
