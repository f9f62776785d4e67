//    RentalTopics
//    Copyright: A Kranes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

// ListingRecord - one raw row of the input table; never mutated, only filtered and derived from
type ListingRecord struct {
	ID          string
	RoomType    string
	Price       string // currency-formatted, e.g. "$1,200.00"
	Description string
}

// PreparedListing - a retained listing after the category filter and the price transform
type PreparedListing struct {
	ID       string
	LogPrice float64 // natural log of the numeric price; always finite
	Comments string  // the raw description text
}

// TokenizedDoc - the token stream of one document after stopword removal
type TokenizedDoc struct {
	ID     string
	Tokens []string
}
