//    RentalTopics
//    Copyright: A Kranes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package load

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/akranes/rentaltopics/internal/str"
	"github.com/akranes/rentaltopics/internal/vv"
)

// the scraper half of this toolchain writes its cleaned rows into postgres;
// reading them back out is the alternative to a CSV export

// FillDBConnectionPool - build the pgxpool the loader will Acquire() from
func FillDBConnectionPool(cfg str.CurrentConfiguration) *pgxpool.Pool {
	const (
		UTPL    = "postgres://%s:%s@%s:%d/%s?pool_min_conns=%d&pool_max_conns=%d"
		FAIL1   = "Configuration error. Could not execute ParseConfig(url) via '%s'"
		FAIL2   = "Could not connect to PostgreSQL"
		ERRRUN  = `dial error`
		FAILRUN = `'%s': the PostgreSQL server cannot be found; check that it is running and serving on port %d`
		ERRSRV  = `server error`
		FAILSRV = `'%s': there is a configuration problem; see the following response from PostgreSQL:`
	)

	mn := cfg.WorkerCount
	mx := vv.POOLMAXMULT * cfg.WorkerCount

	pl := cfg.PGLogin
	url := fmt.Sprintf(UTPL, pl.User, pl.Pass, pl.Host, pl.Port, pl.DBName, mn, mx)

	config, e := pgxpool.ParseConfig(url)
	if e != nil {
		Msg.MAND(fmt.Sprintf(FAIL1, url))
		os.Exit(0)
	}

	thepool, e := pgxpool.NewWithConfig(context.Background(), config)
	if e != nil {
		Msg.MAND(FAIL2)
		if strings.Contains(e.Error(), ERRRUN) {
			Msg.MAND(fmt.Sprintf(FAILRUN, ERRRUN, cfg.PGLogin.Port))
		}
		if strings.Contains(e.Error(), ERRSRV) {
			Msg.MAND(fmt.Sprintf(FAILSRV, ERRSRV))
			parts := strings.Split(e.Error(), ERRSRV)
			Msg.CRIT(parts[1])
		}
		Msg.ExitOrHang(0)
	}
	return thepool
}

// ReadListingsPG - fetch the listing rows the scraper stored; read once at pipeline start
func ReadListingsPG(pool *pgxpool.Pool) ([]str.ListingRecord, error) {
	const (
		QT   = `SELECT id, room_type, price, description FROM listings ORDER BY id`
		MSG1 = "read %d listing rows from PostgreSQL"
	)

	dbconn, e := pool.Acquire(context.Background())
	if e != nil {
		return nil, e
	}
	defer dbconn.Release()

	rows, e := dbconn.Query(context.Background(), QT)
	if e != nil {
		return nil, e
	}
	defer rows.Close()

	var listings []str.ListingRecord
	for rows.Next() {
		var l str.ListingRecord
		if e = rows.Scan(&l.ID, &l.RoomType, &l.Price, &l.Description); e != nil {
			return nil, e
		}
		listings = append(listings, l)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	Msg.FYI(fmt.Sprintf(MSG1, len(listings)))

	return listings, nil
}
