//    RentalTopics
//    Copyright: A Kranes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tm

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/akranes/rentaltopics/internal/str"
)

// the covariate formula is fixed: topic prevalence ~ log price, one simple regression per topic;
// the price was logged back in the prep stage, so the fit here is linear

// EstimateEffects - relate the log-price covariate to each topic's prevalence
func EstimateEffects(res *TopicModelResult, metadata []str.CovariateRow) ([]str.EffectEstimate, error) {
	const (
		FAIL1 = "effect estimation needs one metadata row per document: %d metadata rows vs %d documents"
	)

	dr, dc := res.DocsOverTopics.Dims()

	if len(metadata) != dc {
		return nil, fmt.Errorf(FAIL1, len(metadata), dc)
	}

	x := make([]float64, dc)
	for doc := 0; doc < dc; doc++ {
		x[doc] = metadata[doc].LogPrice
	}

	estimates := make([]str.EffectEstimate, dr)
	for topic := 0; topic < dr; topic++ {
		y := make([]float64, dc)
		for doc := 0; doc < dc; doc++ {
			y[doc] = res.DocsOverTopics.At(topic, doc)
		}

		alpha, beta := stat.LinearRegression(x, y, nil, false)
		r2 := stat.RSquared(x, y, nil, alpha, beta)

		estimates[topic] = str.EffectEstimate{
			Topic:     topic,
			Slope:     beta,
			Intercept: alpha,
			R2:        r2,
		}
	}

	return estimates, nil
}
