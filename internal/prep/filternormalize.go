//    RentalTopics
//    Copyright: A Kranes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package prep

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/akranes/rentaltopics/internal/gen"
	"github.com/akranes/rentaltopics/internal/mm"
	"github.com/akranes/rentaltopics/internal/str"
	"github.com/akranes/rentaltopics/internal/vv"
)

var Msg = mm.NewMessageMaker()

// PrepareListings - keep the rows whose room_type matches the category, log-transform their prices, drop the junk
//
// price effects downstream are modeled as linear-in-log-price, so the log happens here, once,
// and everything after this sees only the transformed value
func PrepareListings(rows []str.ListingRecord, category string) ([]str.PreparedListing, int) {
	const (
		MSG1 = "%d of %d rows matched room_type '%s'; %d of those survived the price parse"
	)

	var kept []str.PreparedListing
	matched := 0

	for i := 0; i < len(rows); i++ {
		if !strings.Contains(rows[i].RoomType, category) {
			continue
		}
		matched += 1

		lp, ok := logprice(rows[i].Price)
		if !ok {
			// a data-quality filter, not a validation bug: drop and move on
			continue
		}

		kept = append(kept, str.PreparedListing{
			ID:       rows[i].ID,
			LogPrice: lp,
			Comments: rows[i].Description,
		})
	}

	Msg.FYI(fmt.Sprintf(MSG1, matched, len(rows), category, len(kept)))

	return kept, matched - len(kept)
}

// logprice - "$1,200.00" --> ln(1200); the bool reports whether the parse yielded something finite
func logprice(raw string) (float64, bool) {
	cleaned := gen.Purgechars(vv.CURRENCYJUNK, strings.TrimSpace(raw))
	if cleaned == "" {
		return 0, false
	}

	p, e := strconv.ParseFloat(cleaned, 64)
	if e != nil {
		return 0, false
	}

	lp := math.Log(p)
	if math.IsNaN(lp) || math.IsInf(lp, 0) {
		// zero and negative prices land here
		return 0, false
	}

	return lp, true
}
