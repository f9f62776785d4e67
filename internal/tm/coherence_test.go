//    RentalTopics
//    Copyright: A Kranes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tm

import (
	"testing"

	"github.com/james-bowman/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akranes/rentaltopics/internal/str"
)

func coherencecorpus() *str.Corpus {
	// beach and pool always travel together; garden and wifi never share a document
	vocab := []string{"beach", "pool", "garden", "wifi"}

	dok := sparse.NewDOK(4, 4)
	dok.Set(0, 0, 1) // beach in docs 0,1
	dok.Set(0, 1, 1)
	dok.Set(1, 0, 1) // pool in docs 0,1
	dok.Set(1, 1, 1)
	dok.Set(2, 2, 1) // garden only in doc 2
	dok.Set(3, 3, 1) // wifi only in doc 3

	vi := make(map[string]int)
	for i, w := range vocab {
		vi[w] = i
	}

	return &str.Corpus{
		DocIDs:     []string{"a", "b", "c", "d"},
		Vocabulary: vocab,
		VocabIndex: vi,
		Matrix:     dok.ToCSR(),
	}
}

func TestTopicCoherences(t *testing.T) {
	c := coherencecorpus()

	topwords := [][]string{
		{"beach", "pool"},
		{"garden", "wifi"},
	}

	scores := TopicCoherences(c, topwords)
	require.Len(t, scores, 2)

	// co-occurring top words score higher than words that never share a document
	assert.Greater(t, scores[0], scores[1])

	// the convention the sweep page states: scores sit at or below zero, a perfectly
	// co-occurring pair lands at ~0, a disjoint pair is pushed far negative
	assert.InDelta(t, 0.0, scores[0], 1e-9)
	assert.Negative(t, scores[1])
	assert.Less(t, scores[1], -10.0)
}

func TestMeanCoherence(t *testing.T) {
	c := coherencecorpus()

	topwords := [][]string{
		{"beach", "pool"},
		{"garden", "wifi"},
	}

	scores := TopicCoherences(c, topwords)
	mean := MeanCoherence(c, topwords)
	assert.InDelta(t, (scores[0]+scores[1])/2, mean, 1e-12)

	assert.Zero(t, MeanCoherence(c, nil))
}
