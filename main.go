//    RentalTopics
//    Copyright: A Kranes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/profile"

	"github.com/akranes/rentaltopics/internal/chart"
	"github.com/akranes/rentaltopics/internal/corpus"
	"github.com/akranes/rentaltopics/internal/lnch"
	"github.com/akranes/rentaltopics/internal/load"
	"github.com/akranes/rentaltopics/internal/mm"
	"github.com/akranes/rentaltopics/internal/prep"
	"github.com/akranes/rentaltopics/internal/str"
	"github.com/akranes/rentaltopics/internal/sweep"
	"github.com/akranes/rentaltopics/internal/tm"
	"github.com/akranes/rentaltopics/internal/vv"
)

func main() {
	const (
		MSG1  = "run id: C2%sC0"
		MSG2  = "loaded %d raw listing rows"
		MSG3  = "%d listings survived the category and price filters (%d dropped)"
		MSG4  = "vocabulary capped at %d words"
		MSG5  = "corpus assembled: %d documents, %d words, %d doc-term rows"
		MSG6  = "sweeping K=%d..%d with %d workers"
		MSG7  = "sweep finished: %d fits, %d failures"
		MSG8  = "final fit at K=%d"
		MSG9  = "done; report artifacts are in 'C2%sC0'"
		FAIL1 = "no listings survived preparation; check '-in' and '-ct'"
		FAIL2 = "every K in the sweep range failed to fit"
	)

	lnch.ConfigAtLaunch()
	cfg := lnch.Config
	msg := lnch.Msg
	chke := msg.EC

	if cfg.ProfileCPU {
		defer profile.Start().Stop()
	} else if cfg.ProfileMEM {
		defer profile.Start(profile.MemProfile).Stop()
	}

	for _, m := range []*mm.MessageMaker{load.Msg, prep.Msg, corpus.Msg, sweep.Msg, chart.Msg} {
		lnch.UpdateMessageMakerWithConfig(m)
	}

	lnch.PrintVersion(*cfg)
	chke(lnch.ValidatePipelineConfig(cfg))

	runid := strings.Split(uuid.New().String(), "-")[0]
	msg.NOTE(msg.Color(fmt.Sprintf(MSG1, runid)))

	start := time.Now()
	previous := time.Now()

	// [a] load

	var raw []str.ListingRecord
	var e error
	if cfg.UsePG {
		pool := load.FillDBConnectionPool(*cfg)
		raw, e = load.ReadListingsPG(pool)
		pool.Close()
	} else {
		raw, e = load.ReadListingsCSV(cfg.InputCSV)
	}
	chke(e)

	msg.Timer("A", fmt.Sprintf(MSG2, len(raw)), start, previous)
	previous = time.Now()

	// [b] filter and normalize

	listings, dropped := prep.PrepareListings(raw, cfg.Category)
	if len(listings) == 0 {
		msg.CRIT(FAIL1)
		msg.ExitOrHang(1)
	}
	msg.Timer("B", fmt.Sprintf(MSG3, len(listings), dropped), start, previous)
	previous = time.Now()

	// [c] tokenize and build the vocabulary

	stops := prep.GetStopSet()
	docs := prep.TokenizeAll(listings, stops)
	vocab := prep.BuildVocabulary(docs, cfg.VocabCap)
	msg.Timer("C", fmt.Sprintf(MSG4, len(vocab)), start, previous)
	previous = time.Now()

	// [d] assemble the corpus

	crp, e := corpus.Assemble(listings, docs, vocab)
	chke(e)
	msg.Timer("D", fmt.Sprintf(MSG5, crp.NumDocs(), crp.NumTerms(), len(crp.Rows)), start, previous)
	previous = time.Now()

	// [e] the K sweep

	// one core per grid worker: the fan-out already runs WorkerCount fits at once,
	// and a multi-process modeler on top of that would oversubscribe the host
	sweepmdl := tm.NewLDAModeler(cfg.LdaIterations, 1, cfg.Seed)

	msg.NOTE(fmt.Sprintf(MSG6, cfg.KLow, cfg.KHigh, cfg.WorkerCount))
	diags, fails := sweep.GridSearch(crp, sweepmdl, cfg.KLow, cfg.KHigh, cfg.WorkerCount)
	if len(diags) == 0 {
		msg.CRIT(FAIL2)
		msg.ExitOrHang(1)
	}
	msg.Timer("E", fmt.Sprintf(MSG7, len(diags), len(fails)), start, previous)
	previous = time.Now()

	msg.PEEK(chart.TopWordsSummary(diags))

	e = chart.SweepReport(diags, cfg, artifact(cfg.OutDir, runid, "sweep"))
	chke(e)

	// [f] the final fit and the effect estimates

	chosen := cfg.ChosenK
	if chosen == 0 {
		chosen = vv.LDACHOSENK
	}
	msg.NOTE(fmt.Sprintf(MSG8, chosen))

	// the final fit runs by itself, so it gets every worker core
	finalmdl := tm.NewLDAModeler(cfg.LdaIterations, cfg.WorkerCount, cfg.Seed)
	final, e := finalmdl.Fit(crp, chosen)
	chke(e)

	topwords := tm.TopWords(final, crp.Vocabulary, vv.TOPWORDSPERTOPIC)

	effects, e := tm.EstimateEffects(final, crp.Metadata)
	chke(e)
	msg.Timer("F", fmt.Sprintf("fit K=%d: perplexity %.2f", chosen, final.Perplexity), start, previous)
	previous = time.Now()

	msg.NOTE(chart.EffectsSummary(effects, topwords))

	// [g] the report pages

	e = chart.TopicReport(final, effects, topwords, cfg, artifact(cfg.OutDir, runid, "topics"))
	chke(e)

	if cfg.DocGraph {
		e = chart.DocScatter(final, topwords, cfg, artifact(cfg.OutDir, runid, "docscatter"))
		chke(e)
	}

	msg.Timer("G", "report pages rendered", start, previous)
	msg.MAND(msg.Color(fmt.Sprintf(MSG9, cfg.OutDir)))
}

func artifact(outdir string, runid string, name string) string {
	return filepath.Join(outdir, fmt.Sprintf("%s-%s.html", runid, name))
}
