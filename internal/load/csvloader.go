//    RentalTopics
//    Copyright: A Kranes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package load

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/akranes/rentaltopics/internal/mm"
	"github.com/akranes/rentaltopics/internal/str"
)

var Msg = mm.NewMessageMaker()

const (
	COLID   = "id"
	COLROOM = "room_type"
	COLPRC  = "price"
	COLDESC = "description"
)

// ReadListingsCSV - read the flat file of listing rows into memory; read once at pipeline start
func ReadListingsCSV(path string) ([]str.ListingRecord, error) {
	const (
		FAIL1 = "ReadListingsCSV() could not open '%s'"
		FAIL2 = "ReadListingsCSV() could not parse '%s'"
		FAIL3 = "ReadListingsCSV() did not find required column '%s' in '%s'"
		MSG1  = "read %d listing rows from '%s'"
	)

	f, e := os.Open(path)
	if e != nil {
		return nil, fmt.Errorf(FAIL1, path)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // scraped exports are ragged often enough that strictness is not worth a fatal

	records, e := r.ReadAll()
	if e != nil {
		return nil, fmt.Errorf(FAIL2, path)
	}

	if len(records) < 1 {
		return nil, fmt.Errorf(FAIL2, path)
	}

	// map the header; the export tools do not agree on column order
	cols := make(map[string]int)
	for i, h := range records[0] {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}

	for _, need := range []string{COLID, COLROOM, COLPRC, COLDESC} {
		if _, ok := cols[need]; !ok {
			return nil, fmt.Errorf(FAIL3, need, path)
		}
	}

	pick := func(row []string, c string) string {
		i := cols[c]
		if i >= len(row) {
			return ""
		}
		return row[i]
	}

	var listings []str.ListingRecord
	for _, row := range records[1:] {
		listings = append(listings, str.ListingRecord{
			ID:          pick(row, COLID),
			RoomType:    pick(row, COLROOM),
			Price:       pick(row, COLPRC),
			Description: pick(row, COLDESC),
		})
	}

	Msg.FYI(fmt.Sprintf(MSG1, len(listings), path))

	return listings, nil
}
