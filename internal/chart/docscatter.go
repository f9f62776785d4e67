//    RentalTopics
//    Copyright: A Kranes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package chart

import (
	"fmt"

	"github.com/danaugrs/go-tsne/tsne"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/mat"

	"github.com/akranes/rentaltopics/internal/str"
	"github.com/akranes/rentaltopics/internal/tm"
	"github.com/akranes/rentaltopics/internal/vv"
)

// DocScatter - embed the documents into 2d via t-SNE and color each by its dominant topic
func DocScatter(res *tm.TopicModelResult, topwords [][]string, cfg *str.CurrentConfiguration, path string) error {
	const (
		TTL1 = "Documents at K=%d"
		SUB1 = "t-SNE embedding of per-document topic mixtures"
		MSG1 = "embedding %d documents via t-SNE; this is the slow part"
		MSG2 = "wrote document scatter: '%s'"
	)

	dr, dc := res.DocsOverTopics.Dims()

	// t-SNE wants documents as rows; the model yields them as columns
	dd := make([]float64, 0, dr*dc)
	for doc := 0; doc < dc; doc++ {
		for topic := 0; topic < dr; topic++ {
			dd = append(dd, res.DocsOverTopics.At(topic, doc))
		}
	}
	wv := mat.NewDense(dc, dr, dd)

	Msg.FYI(fmt.Sprintf(MSG1, dc))

	t := tsne.NewTSNE(2, vv.TSNEPERPLEXITY, vv.TSNELEARNRT, vv.TSNEMAXITER, false)
	t.EmbedData(wv, nil)

	winners := tm.DominantTopics(res)

	series := make(map[int][]opts.ScatterData)
	for doc := 0; doc < dc; doc++ {
		w := winners[doc]
		series[w] = append(series[w], opts.ScatterData{
			Value:      []interface{}{t.Y.At(doc, 0), t.Y.At(doc, 1)},
			SymbolSize: vv.CHTSYMBOLSIZE,
		})
	}

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  cfg.ChtWidth,
			Height: cfg.ChtHeight,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf(TTL1, res.K),
			Subtitle: SUB1,
		}),
		charts.WithXAxisOpts(opts.XAxis{Show: true}),
		charts.WithYAxisOpts(opts.YAxis{Show: true}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
	)

	// stable series order so re-runs of the same seed yield the same page
	for topic := 0; topic < res.K; topic++ {
		pts, ok := series[topic]
		if !ok {
			continue
		}
		sc.AddSeries(topiclabel(topic, topwords), pts)
	}

	p := components.NewPage()
	p.AddCharts(sc)

	if e := renderpage(p, path); e != nil {
		return e
	}

	Msg.FYI(fmt.Sprintf(MSG2, path))

	return nil
}
