//    RentalTopics
//    Copyright: A Kranes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

// CurrentConfiguration - the things you can set via the config file and/or the command line
type CurrentConfiguration struct {
	InputCSV      string
	UsePG         bool
	PGLogin       PostgresLogin
	Category      string // room_type substring that marks a whole unit
	VocabCap      int
	KLow          int
	KHigh         int
	ChosenK       int // picked by a human after inspecting the sweep diagnostics
	LdaIterations int
	Seed          uint64
	WorkerCount   int
	OutDir        string
	LogLevel      int
	BlackAndWhite bool
	DocGraph      bool // t-SNE scatter of documents over topics
	ProfileCPU    bool
	ProfileMEM    bool
	QuietStart    bool
	ChtWidth      string
	ChtHeight     string
}

// PostgresLogin - connection info for the alternative listings loader
type PostgresLogin struct {
	Host   string
	Port   int
	User   string
	Pass   string
	DBName string
}
