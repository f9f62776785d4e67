//    RentalTopics
//    Copyright: A Kranes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestTopWords(t *testing.T) {
	vocab := []string{"beach", "pool", "garden", "wifi"}

	tow := mat.NewDense(2, 4, []float64{
		0.5, 0.3, 0.1, 0.1, // ties between garden and wifi
		0.1, 0.2, 0.3, 0.4,
	})
	res := &TopicModelResult{K: 2, TopicsOverWords: tow}

	tops := TopWords(res, vocab, 3)
	require.Len(t, tops, 2)

	assert.Equal(t, []string{"beach", "pool", "garden"}, tops[0])
	assert.Equal(t, []string{"wifi", "garden", "pool"}, tops[1])
}

func TestTopWordsClampsN(t *testing.T) {
	vocab := []string{"beach", "pool"}
	tow := mat.NewDense(1, 2, []float64{0.6, 0.4})
	res := &TopicModelResult{K: 1, TopicsOverWords: tow}

	tops := TopWords(res, vocab, 10)
	require.Len(t, tops, 1)
	assert.Len(t, tops[0], 2)
}

func TestDominantTopics(t *testing.T) {
	dot := mat.NewDense(3, 2, []float64{
		0.2, 0.1,
		0.7, 0.2,
		0.1, 0.7,
	})
	res := &TopicModelResult{K: 3, DocsOverTopics: dot}

	assert.Equal(t, []int{1, 2}, DominantTopics(res))
}

func TestTopicShares(t *testing.T) {
	dot := mat.NewDense(2, 2, []float64{
		0.8, 0.8, // total 1.6
		0.2, 0.2, // total 0.4
	})
	res := &TopicModelResult{K: 2, DocsOverTopics: dot}

	shares := TopicShares(res)
	require.Len(t, shares, 2)
	assert.InDelta(t, 1.0, shares[0], 1e-9)
	assert.InDelta(t, 0.25, shares[1], 1e-9)
}
