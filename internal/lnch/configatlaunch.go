//    RentalTopics
//    Copyright: A Kranes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"text/template"

	"github.com/akranes/rentaltopics/internal/mm"
	"github.com/akranes/rentaltopics/internal/str"
	"github.com/akranes/rentaltopics/internal/vv"
)

var (
	Config *str.CurrentConfiguration
	Msg    = mm.NewMessageMaker()
)

// BuildDefaultConfig - return a CurrentConfiguration filled out with various default values
func BuildDefaultConfig() *str.CurrentConfiguration {
	var c str.CurrentConfiguration
	c.InputCSV = vv.DEFAULTINPUT
	c.UsePG = false
	c.Category = vv.DEFAULTCATEGORY
	c.VocabCap = vv.VOCABCAP
	c.KLow = vv.KRANGELOW
	c.KHigh = vv.KRANGEMAX
	c.ChosenK = vv.LDACHOSENK
	c.LdaIterations = vv.LDAITER
	c.Seed = vv.LDADEFAULTSEED
	c.WorkerCount = runtime.NumCPU() - vv.WORKERRESERVE
	if c.WorkerCount < 1 {
		c.WorkerCount = 1
	}
	c.OutDir = vv.DEFAULTOUTDIR
	c.LogLevel = vv.DEFAULTGOLOGLEVEL
	c.BlackAndWhite = false
	c.DocGraph = true
	c.ProfileCPU = false
	c.ProfileMEM = false
	c.QuietStart = false
	c.ChtWidth = vv.DEFAULTCHRTWIDTH
	c.ChtHeight = vv.DEFAULTCHRTHEIGHT

	pl := str.PostgresLogin{
		Host:   vv.DEFAULTPSQLHOST,
		Port:   vv.DEFAULTPSQLPORT,
		User:   vv.DEFAULTPSQLUSER,
		Pass:   "",
		DBName: vv.DEFAULTPSQLDB,
	}

	c.PGLogin = pl

	return &c
}

// ConfigAtLaunch - read the configuration values from JSON and/or command line
func ConfigAtLaunch() {
	const (
		FAIL1 = "Could not parse your information as a valid collection of credentials. Use the following template:"
		FAIL2 = `"{\"Pass\": \"YOURPASSWORDHERE\" ,\"Host\": \"127.0.0.1\", \"Port\": 5432, \"DBName\": \"rental_db\" ,\"User\": \"scraper\"}"`
		FAIL3 = `Could not parse the information in '%s'. Skipping and attempting to use built-in defaults instead.`
		FAIL5 = "Refusing to oversubscribe the host: workercount %d requested ---> setting workercount to %d"
		FAIL7 = "ConfigAtLaunch() failed to execute help text template"
	)

	Config = BuildDefaultConfig()

	cfgfile := fmt.Sprintf("%s/%s", vv.CONFIGLOCATION, vv.CONFIGNAME)

	loadedcfg, e := os.Open(cfgfile)
	if e == nil {
		decoderc := json.NewDecoder(loadedcfg)
		confc := str.CurrentConfiguration{}
		errc := decoderc.Decode(&confc)
		_ = loadedcfg.Close()
		if errc == nil {
			Config = &confc
		} else {
			Msg.CRIT(fmt.Sprintf(FAIL3, cfgfile))
		}
	}

	// an old config file might zero out values that must not be zero
	if Config.VocabCap == 0 {
		Config.VocabCap = vv.VOCABCAP
	}
	if Config.LdaIterations == 0 {
		Config.LdaIterations = vv.LDAITER
	}
	if Config.WorkerCount == 0 {
		Config.WorkerCount = BuildDefaultConfig().WorkerCount
	}

	args := os.Args[1:len(os.Args)]

	help := func() {
		m := map[string]interface{}{
			"input":      Config.InputCSV,
			"category":   Config.Category,
			"vocabcap":   Config.VocabCap,
			"klow":       Config.KLow,
			"khigh":      Config.KHigh,
			"chosenk":    Config.ChosenK,
			"iterations": Config.LdaIterations,
			"seed":       Config.Seed,
			"workers":    Config.WorkerCount,
			"outdir":     Config.OutDir,
			"loglevel":   Config.LogLevel,
		}

		t := template.Must(template.New("").Parse(vv.HELPTEXTTEMPLATE))

		var b bytes.Buffer
		if ee := t.Execute(&b, m); ee != nil {
			Msg.CRIT(FAIL7)
		}
		fmt.Println(Msg.Styled(Msg.Color(b.String())))

		os.Exit(0)
	}

	for i, a := range args {
		switch a {
		case "-v":
			fmt.Println(vv.VERSION)
			os.Exit(1)
		case "-bw":
			Config.BlackAndWhite = true
		case "-ct":
			Config.Category = args[i+1]
		case "-dg":
			Config.DocGraph = false
		case "-gl":
			ll, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.LogLevel = ll
		case "-h":
			help()
		case "-in":
			Config.InputCSV = args[i+1]
		case "-it":
			it, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.LdaIterations = it
		case "-k":
			k, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.ChosenK = k
		case "-kh":
			kh, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.KHigh = kh
		case "-kl":
			kl, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.KLow = kl
		case "-od":
			Config.OutDir = args[i+1]
		case "-pc":
			Config.ProfileCPU = true
		case "-pg":
			js := args[i+1]
			var pl str.PostgresLogin
			err := json.Unmarshal([]byte(js), &pl)
			if err != nil {
				Msg.MAND(FAIL1)
				Msg.CRIT(FAIL2)
			}
			Config.PGLogin = pl
			Config.UsePG = true
		case "-pm":
			Config.ProfileMEM = true
		case "-q":
			Config.QuietStart = true
		case "-sd":
			sd, err := strconv.ParseUint(args[i+1], 10, 64)
			Msg.EC(err)
			Config.Seed = sd
		case "-vc":
			vc, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.VocabCap = vc
		case "-wc":
			wc, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.WorkerCount = wc
		default:
			// do nothing
		}
	}

	if capped := capworkercount(Config.WorkerCount); capped != Config.WorkerCount {
		Msg.CRIT(fmt.Sprintf(FAIL5, Config.WorkerCount, capped))
		Config.WorkerCount = capped
	}

	Msg.LLvl = Config.LogLevel
	Msg.BW = Config.BlackAndWhite
}

// capworkercount - the sweep must always leave the host at least one free core
func capworkercount(wc int) int {
	most := runtime.NumCPU() - vv.WORKERRESERVE
	if most < 1 {
		most = 1
	}
	if wc > most {
		return most
	}
	return wc
}

// PrintVersion - a top line of terminal output at launch
func PrintVersion(c str.CurrentConfiguration) {
	if c.QuietStart {
		return
	}
	v := fmt.Sprintf("S1C4%s v.%sC0S0 [loglevel=%d] C6%sC0", vv.MYNAME, vv.VERSION, c.LogLevel, vv.PROJURL)
	Msg.MAND(Msg.ColStyle(v))
}
