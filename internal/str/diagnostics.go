//    RentalTopics
//    Copyright: A Kranes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

// KDiagnostics - what one grid point of the topic-count sweep reports back for human inspection
type KDiagnostics struct {
	K          int
	Perplexity float64
	Coherence  float64    // mean UMass coherence across the K topics
	TopWords   [][]string // per topic, most heavily weighted vocabulary
}

// SweepFailure - a grid point whose fit failed; excluded from the diagnostics, reported as a count
type SweepFailure struct {
	K   int
	Err string
}

// EffectEstimate - how the log-price covariate relates to one topic's prevalence
type EffectEstimate struct {
	Topic     int
	Slope     float64 // change in topic proportion per unit of log price
	Intercept float64
	R2        float64
}
