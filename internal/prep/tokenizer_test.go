//    RentalTopics
//    Copyright: A Kranes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package prep

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akranes/rentaltopics/internal/str"
)

func TestTokenize(t *testing.T) {
	stops := GetStopSet()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"lowercase and split", "Luxury Downtown STUDIO!", []string{"luxury", "downtown", "studio"}},
		{"diacritics folded", "café at the plaça", []string{"cafe", "placa"}},
		{"stopwords removed", "the best view of the city", []string{"best", "view", "city"}},
		{"punctuation is a separator", "wi-fi,parking;garden", []string{"wi", "fi", "parking", "garden"}},
		{"digits survive", "2 bedrooms 5min walk", []string{"2", "bedrooms", "5min", "walk"}},
		{"empty text", "", nil},
		{"only stopwords", "it is what it is", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.text, stops))
		})
	}
}

func TestKeepListOverridesStops(t *testing.T) {
	stops := GetStopSet()

	// "new", "good", "work" are frequent words but they carry signal in a listing
	toks := Tokenize("new building good location work friendly", stops)
	assert.Contains(t, toks, "new")
	assert.Contains(t, toks, "good")
	assert.Contains(t, toks, "work")
}

func TestTokenizeAllPreservesOrder(t *testing.T) {
	stops := GetStopSet()

	listings := []str.PreparedListing{
		{ID: "b", Comments: "sunny loft"},
		{ID: "a", Comments: "quiet garden"},
	}

	docs := TokenizeAll(listings, stops)

	assert.Len(t, docs, 2)
	assert.Equal(t, "b", docs[0].ID)
	assert.Equal(t, "a", docs[1].ID)
	assert.Equal(t, []string{"sunny", "loft"}, docs[0].Tokens)
}
