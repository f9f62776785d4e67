//    RentalTopics
//    Copyright: A Kranes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package sweep

import (
	"fmt"
	"sort"
	"sync"

	"github.com/akranes/rentaltopics/internal/mm"
	"github.com/akranes/rentaltopics/internal/str"
	"github.com/akranes/rentaltopics/internal/tm"
	"github.com/akranes/rentaltopics/internal/vv"
)

var Msg = mm.NewMessageMaker()

// see https://go.dev/blog/pipelines : Parallel digestion & Fan-out, fan-in

// every grid point is an independent, side-effect-free unit of work against the same read-only
// Corpus; a unit that fails is recorded and excluded, and the rest of the sweep keeps going

type unitresult struct {
	diag str.KDiagnostics
	fail *str.SweepFailure
}

// GridSearch - fit one model per candidate topic count and collect per-K diagnostics for human inspection
func GridSearch(c *str.Corpus, mdl tm.Modeler, klow int, khigh int, workers int) ([]str.KDiagnostics, []str.SweepFailure) {
	const (
		MSG1 = "sweeping k=%d..%d over %d workers"
		MSG2 = "sweep complete: %d grid points fit, %d failed"
	)

	Msg.FYI(fmt.Sprintf(MSG1, klow, khigh, workers))

	// [a] load the candidate topic counts into a channel
	kchannel := kfeeder(klow, khigh)

	// [b] fan out to fit models in parallel; workers fed by the K channel
	unitchannels := make([]<-chan unitresult, workers)
	for i := 0; i < workers; i++ {
		unitchannels[i] = gridworker(c, mdl, kchannel)
	}

	// [c] fan in to gather the per-K results into a single channel
	resultchan := resultaggregator(unitchannels...)

	// [d] pull the results off of the channel and collate them; completion order is not K order
	var diags []str.KDiagnostics
	var failures []str.SweepFailure
	for u := range resultchan {
		if u.fail != nil {
			failures = append(failures, *u.fail)
			continue
		}
		diags = append(diags, u.diag)
	}

	sort.Slice(diags, func(i, j int) bool { return diags[i].K < diags[j].K })
	sort.Slice(failures, func(i, j int) bool { return failures[i].K < failures[j].K })

	Msg.FYI(fmt.Sprintf(MSG2, len(diags), len(failures)))

	return diags, failures
}

// kfeeder - emit the candidate topic counts; they will be consumed by the gridworkers
func kfeeder(klow int, khigh int) <-chan int {
	kchannel := make(chan int, khigh-klow+1)

	feed := func() {
		defer close(kchannel)
		for k := klow; k <= khigh; k++ {
			kchannel <- k
		}
	}

	go feed()

	return kchannel
}

// gridworker - grab a K; fit a model; report diagnostics or an isolated failure
func gridworker(c *str.Corpus, mdl tm.Modeler, kchannel <-chan int) <-chan unitresult {
	const (
		WARN1 = "grid point k=%d failed and was excluded from the diagnostics: %s"
	)

	unitchannel := make(chan unitresult)

	consume := func() {
		defer close(unitchannel)
		for k := range kchannel {
			res, e := mdl.Fit(c, k)
			if e != nil {
				Msg.WARN(fmt.Sprintf(WARN1, k, e.Error()))
				unitchannel <- unitresult{fail: &str.SweepFailure{K: k, Err: e.Error()}}
				continue
			}

			topwords := tm.TopWords(res, c.Vocabulary, vv.TOPWORDSPERTOPIC)
			unitchannel <- unitresult{diag: str.KDiagnostics{
				K:          k,
				Perplexity: res.Perplexity,
				Coherence:  tm.MeanCoherence(c, topwords),
				TopWords:   topwords,
			}}
		}
	}

	go consume()

	return unitchannel
}

// resultaggregator - gather every worker's results into one place
func resultaggregator(unitchannels ...<-chan unitresult) <-chan unitresult {
	var wg sync.WaitGroup
	resultchan := make(chan unitresult)

	broadcast := func(units <-chan unitresult) {
		defer wg.Done()
		for u := range units {
			resultchan <- u
		}
	}

	wg.Add(len(unitchannels))
	for _, uc := range unitchannels {
		go broadcast(uc)
	}

	go func() {
		wg.Wait()
		close(resultchan)
	}()

	return resultchan
}
