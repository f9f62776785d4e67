//    RentalTopics
//    Copyright: A Kranes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package chart

import (
	"fmt"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/akranes/rentaltopics/internal/str"
	"github.com/akranes/rentaltopics/internal/tm"
)

// TopicReport - chosen-K summary page: topic shares and the price association per topic
func TopicReport(res *tm.TopicModelResult, effects []str.EffectEstimate, topwords [][]string, cfg *str.CurrentConfiguration, path string) error {
	const (
		TTL1 = "Topic shares at K=%d"
		SUB1 = "corpus-wide prevalence, scaled to the largest topic"
		TTL2 = "Log-price association by topic"
		SUB2 = "OLS slope of topic prevalence on ln(price)"
		MSG1 = "wrote topic summary: '%s'"
	)

	shares := tm.TopicShares(res)

	labels := make([]string, res.K)
	ss := make([]opts.BarData, res.K)
	ee := make([]opts.BarData, res.K)
	for t := 0; t < res.K; t++ {
		labels[t] = topiclabel(t, topwords)
		ss[t] = opts.BarData{Value: shares[t]}
	}
	for _, ef := range effects {
		ee[ef.Topic] = opts.BarData{Value: ef.Slope}
	}

	sharebar := newtopicbar(cfg, fmt.Sprintf(TTL1, res.K), SUB1)
	sharebar.SetXAxis(labels).AddSeries("share", ss)

	effectbar := newtopicbar(cfg, TTL2, SUB2)
	effectbar.SetXAxis(labels).AddSeries("slope", ee)

	p := components.NewPage()
	p.AddCharts(sharebar, effectbar)

	if e := renderpage(p, path); e != nil {
		return e
	}

	Msg.FYI(fmt.Sprintf(MSG1, path))

	return nil
}

func newtopicbar(cfg *str.CurrentConfiguration, title string, subtitle string) *charts.Bar {
	b := charts.NewBar()
	b.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  cfg.ChtWidth,
			Height: cfg.ChtHeight,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{Show: true, Rotate: 30},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)
	return b
}

// topic 3: kitchen, beach, walk
func topiclabel(t int, topwords [][]string) string {
	const (
		LBL      = "topic %d: %s"
		LBLWORDS = 3
	)

	if t >= len(topwords) {
		return fmt.Sprintf("topic %d", t+1)
	}
	w := topwords[t]
	if len(w) > LBLWORDS {
		w = w[:LBLWORDS]
	}
	return fmt.Sprintf(LBL, t+1, strings.Join(w, ", "))
}

// EffectsSummary - terminal table of the per-topic regressions
func EffectsSummary(effects []str.EffectEstimate, topwords [][]string) string {
	const ROW = "topic %d\tslope=%+.4f\tr2=%.4f\t[%s]"

	out := make([]string, len(effects))
	for i, ef := range effects {
		words := ""
		if ef.Topic < len(topwords) {
			words = strings.Join(topwords[ef.Topic], ", ")
		}
		out[i] = fmt.Sprintf(ROW, ef.Topic+1, ef.Slope, ef.R2, words)
	}
	return strings.Join(out, "\n")
}
