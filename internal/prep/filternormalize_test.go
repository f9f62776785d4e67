//    RentalTopics
//    Copyright: A Kranes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package prep

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akranes/rentaltopics/internal/str"
)

func TestLogPrice(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
		ok   bool
	}{
		{"plain dollars", "$100.00", math.Log(100), true},
		{"thousands separator", "$1,200.00", math.Log(1200), true},
		{"no currency marker", "85", math.Log(85), true},
		{"euro", "€75.50", math.Log(75.5), true},
		{"leading whitespace", "  $44 ", math.Log(44), true},
		{"zero price", "$0.00", 0, false},
		{"negative price", "-30", 0, false},
		{"empty field", "", 0, false},
		{"only junk", "$,", 0, false},
		{"not a number", "call for pricing", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := logprice(tt.raw)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestLogPriceRoundTrip(t *testing.T) {
	lp, ok := logprice("$100.00")
	require.True(t, ok)
	assert.InDelta(t, 100.0, math.Exp(lp), 1e-9)
}

func TestPrepareListings(t *testing.T) {
	rows := []str.ListingRecord{
		{ID: "1", RoomType: "Entire home/apt", Price: "$200", Description: "luxury downtown studio"},
		{ID: "2", RoomType: "Private room", Price: "$50", Description: "cozy room"},
	}

	kept, dropped := PrepareListings(rows, "Entire")

	// the Private room is excluded by category and never reaches the price parse
	require.Len(t, kept, 1)
	assert.Equal(t, "1", kept[0].ID)
	assert.InDelta(t, math.Log(200), kept[0].LogPrice, 1e-9)
	assert.Equal(t, "luxury downtown studio", kept[0].Comments)
	assert.Equal(t, 0, dropped)
}

func TestPrepareListingsDropsBadPrices(t *testing.T) {
	rows := []str.ListingRecord{
		{ID: "1", RoomType: "Entire home/apt", Price: "$120", Description: "fine"},
		{ID: "2", RoomType: "Entire home/apt", Price: "ask me", Description: "unparseable"},
		{ID: "3", RoomType: "Entire home/apt", Price: "$0", Description: "free?"},
	}

	kept, dropped := PrepareListings(rows, "Entire")

	require.Len(t, kept, 1)
	assert.Equal(t, "1", kept[0].ID)
	assert.Equal(t, 2, dropped)

	for _, l := range kept {
		assert.False(t, math.IsNaN(l.LogPrice))
		assert.False(t, math.IsInf(l.LogPrice, 0))
	}
}
