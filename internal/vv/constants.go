//    RentalTopics
//    Copyright: A Kranes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	MYNAME    = "RentalTopics"
	SHORTNAME = "RT"
	VERSION   = "0.3.1"
	PROJURL   = "https://github.com/akranes/rentaltopics"

	CONFIGLOCATION = "."
	CONFIGNAME     = "rt-config.json"

	DEFAULTGOLOGLEVEL = 2

	// the pipeline defaults; all of them can be overridden at launch

	DEFAULTINPUT    = "./listings.csv"
	DEFAULTCATEGORY = "Entire" // "Entire home/apt" marks a whole unit
	DEFAULTOUTDIR   = "./report"

	VOCABCAP  = 1000
	KRANGELOW = 4
	KRANGEMAX = 33

	LDAITER        = 20
	LDAXFORMPASSES = 10
	LDACHOSENK     = 8
	LDADEFAULTSEED = 42

	// CURRENCYJUNK - the characters Purgechars() strips from a raw price field before the numeric parse
	CURRENCYJUNK = "$€£¥₹, "

	// the sweep should not starve the scheduler: leave at least one core alone
	WORKERRESERVE = 1

	TOPWORDSPERTOPIC = 8

	DEFAULTCHRTWIDTH  = "1500px"
	DEFAULTCHRTHEIGHT = "1200px"
	CHTSYMBOLSIZE     = 10

	TSNEPERPLEXITY = 150
	TSNELEARNRT    = 100
	TSNEMAXITER    = 150

	DEFAULTPSQLHOST = "localhost"
	DEFAULTPSQLPORT = 5432
	DEFAULTPSQLUSER = "scraper"
	DEFAULTPSQLDB   = "rental_db"

	// POOLMAXMULT - per-worker multiplier when capping the pgx pool
	POOLMAXMULT = 3
)

const HELPTEXTTEMPLATE = `S1command line optionsS0:
   C1-inC0       input CSV of listings (default: C2{{.input}}C0)
   C1-pgC0       read listings from PostgreSQL instead; expects a JSON login, e.g.
                    C6"{\"Pass\": \"YOURPASSWORDHERE\" ,\"Host\": \"127.0.0.1\", \"Port\": 5432, \"DBName\": \"rental_db\" ,\"User\": \"scraper\"}"C0
   C1-ctC0       room_type substring that marks a whole unit (default: C2{{.category}}C0)
   C1-vcC0       vocabulary size cap (default: C2{{.vocabcap}}C0)
   C1-klC0       low end of the topic-count search range (default: C2{{.klow}}C0)
   C1-khC0       high end of the topic-count search range (default: C2{{.khigh}}C0)
   C1-kC0        chosen topic count for the final fit (default: C2{{.chosenk}}C0)
   C1-itC0       iteration cap for each model fit (default: C2{{.iterations}}C0)
   C1-sdC0       random seed for the sweep (default: C2{{.seed}}C0)
   C1-wcC0       worker count for the sweep (default: C2{{.workers}}C0 on this machine)
   C1-odC0       output directory for the report artifacts (default: C2{{.outdir}}C0)
   C1-glC0       log level; 0-5 (default: C2{{.loglevel}}C0)
   C1-bwC0       disable color in the terminal output
   C1-dgC0       disable the t-SNE document scatter graph
   C1-pcC0       cpu profile this run
   C1-pmC0       memory profile this run
   C1-qC0        quiet start
   C1-vC0        print version and exit
   C1-hC0        print this help and exit
`
