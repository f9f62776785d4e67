//    RentalTopics
//    Copyright: A Kranes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package chart

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/akranes/rentaltopics/internal/mm"
	"github.com/akranes/rentaltopics/internal/str"
)

var Msg = mm.NewMessageMaker()

// the selection rule is a human: render everything the sweep measured and let the reader pick K

// SweepReport - per-K diagnostic line charts; the page a human inspects before choosing K
func SweepReport(diags []str.KDiagnostics, cfg *str.CurrentConfiguration, path string) error {
	const (
		TTL1 = "Held-out perplexity by topic count"
		SUB1 = "lower is better; look for the elbow"
		TTL2 = "Mean semantic coherence (UMass) by topic count"
		SUB2 = "closer to zero is better"
		MSG1 = "wrote sweep diagnostics: '%s'"
	)

	xx := make([]string, len(diags))
	pp := make([]opts.LineData, len(diags))
	cc := make([]opts.LineData, len(diags))
	for i, d := range diags {
		xx[i] = strconv.Itoa(d.K)
		pp[i] = opts.LineData{Value: d.Perplexity}
		cc[i] = opts.LineData{Value: d.Coherence}
	}

	perp := newsweepline(cfg, TTL1, SUB1)
	perp.SetXAxis(xx).AddSeries("perplexity", pp).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: true}))

	coh := newsweepline(cfg, TTL2, SUB2)
	coh.SetXAxis(xx).AddSeries("coherence", cc).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: true}))

	p := components.NewPage()
	p.AddCharts(perp, coh)

	if e := renderpage(p, path); e != nil {
		return e
	}

	Msg.FYI(fmt.Sprintf(MSG1, path))

	return nil
}

func newsweepline(cfg *str.CurrentConfiguration, title string, subtitle string) *charts.Line {
	l := charts.NewLine()
	l.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  cfg.ChtWidth,
			Height: cfg.ChtHeight,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "topics (K)",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
	)
	return l
}

// TopWordsSummary - the terminal rendition of the per-K top words; kept plain so it pastes into notes
func TopWordsSummary(diags []str.KDiagnostics) string {
	const (
		HDR = "k=%d\tperplexity=%.2f\tcoherence=%.2f"
		ROW = "\ttopic %d:\t%s"
	)

	var sb strings.Builder
	for _, d := range diags {
		sb.WriteString(fmt.Sprintf(HDR, d.K, d.Perplexity, d.Coherence) + "\n")
		for t, words := range d.TopWords {
			sb.WriteString(fmt.Sprintf(ROW, t+1, strings.Join(words, ", ")) + "\n")
		}
	}
	return sb.String()
}

func renderpage(p *components.Page, path string) error {
	if e := os.MkdirAll(filepath.Dir(path), 0755); e != nil {
		return e
	}

	f, e := os.Create(path)
	if e != nil {
		return e
	}
	defer func() { _ = f.Close() }()

	return p.Render(f)
}
