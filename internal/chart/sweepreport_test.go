//    RentalTopics
//    Copyright: A Kranes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akranes/rentaltopics/internal/str"
	"github.com/akranes/rentaltopics/internal/vv"
)

func testcfg() *str.CurrentConfiguration {
	return &str.CurrentConfiguration{
		ChtWidth:  vv.DEFAULTCHRTWIDTH,
		ChtHeight: vv.DEFAULTCHRTHEIGHT,
	}
}

func TestSweepReport(t *testing.T) {
	diags := []str.KDiagnostics{
		{K: 4, Perplexity: 410.2, Coherence: -12.5, TopWords: [][]string{{"beach", "pool"}}},
		{K: 5, Perplexity: 395.8, Coherence: -11.1, TopWords: [][]string{{"garden", "wifi"}}},
	}

	path := filepath.Join(t.TempDir(), "report", "abc123-sweep.html")
	require.NoError(t, SweepReport(diags, testcfg(), path))

	// the output directory is created on demand and the page actually lands on disk
	fi, e := os.Stat(path)
	require.NoError(t, e)
	assert.Positive(t, fi.Size())
}

func TestTopWordsSummary(t *testing.T) {
	diags := []str.KDiagnostics{
		{K: 4, Perplexity: 410.2, Coherence: -12.5, TopWords: [][]string{
			{"beach", "pool"},
			{"garden", "wifi"},
		}},
	}

	s := TopWordsSummary(diags)
	assert.Contains(t, s, "k=4")
	assert.Contains(t, s, "topic 1:\tbeach, pool")
	assert.Contains(t, s, "topic 2:\tgarden, wifi")
}

func TestEffectsSummary(t *testing.T) {
	effects := []str.EffectEstimate{
		{Topic: 0, Slope: 0.1234, R2: 0.56},
	}
	topwords := [][]string{{"beach", "pool"}}

	s := EffectsSummary(effects, topwords)
	assert.Contains(t, s, "topic 1")
	assert.Contains(t, s, "+0.1234")
	assert.Contains(t, s, "beach, pool")
}

func TestTopicLabel(t *testing.T) {
	topwords := [][]string{{"beach", "pool", "garden", "wifi"}}

	assert.Equal(t, "topic 1: beach, pool, garden", topiclabel(0, topwords))
	assert.Equal(t, "topic 3", topiclabel(2, topwords))
}
