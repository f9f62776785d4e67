//    RentalTopics
//    Copyright: A Kranes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package corpus

import (
	"fmt"
	"sort"

	"github.com/james-bowman/sparse"

	"github.com/akranes/rentaltopics/internal/mm"
	"github.com/akranes/rentaltopics/internal/str"
)

var Msg = mm.NewMessageMaker()

// AlignmentError - document ids in the metadata diverge from the matrix; a misaligned covariate
// silently corrupts every downstream effect estimate, so no partial Corpus ever leaves this package
type AlignmentError struct {
	OnlyMeta   []string
	OnlyMatrix []string
}

func (a *AlignmentError) Error() string {
	return fmt.Sprintf("corpus alignment failure: %d ids only in metadata, %d ids only in matrix",
		len(a.OnlyMeta), len(a.OnlyMatrix))
}

// Assemble - token streams + prepared metadata --> the aligned Corpus the modeler consumes
func Assemble(listings []str.PreparedListing, docs []str.TokenizedDoc, vocab []string) (*str.Corpus, error) {
	const (
		WARN1 = "document id '%s' carries conflicting prices (%f vs %f); keeping the first"
		MSG1  = "corpus assembled: %d documents x %d words; %d empty documents dropped"
	)

	vocabindex := make(map[string]int, len(vocab))
	for i, w := range vocab {
		vocabindex[w] = i
	}

	// [a] per-document counts over the retained vocabulary; zero counts never materialize

	type doccounts struct {
		ID     string
		Counts map[string]int
	}

	var present []doccounts
	dropped := 0
	for i := 0; i < len(docs); i++ {
		cc := make(map[string]int)
		for _, t := range docs[i].Tokens {
			if _, ok := vocabindex[t]; ok {
				cc[t] += 1
			}
		}
		if len(cc) == 0 {
			// a document whose text produced zero retained-vocabulary tokens has no matrix row
			dropped += 1
			continue
		}
		present = append(present, doccounts{ID: docs[i].ID, Counts: cc})
	}

	// [b] alignment is by the id key, never by positional coincidence: fix one order for everything

	sort.Slice(present, func(i, j int) bool { return present[i].ID < present[j].ID })

	docids := make([]string, len(present))
	colindex := make(map[string]int, len(present))
	for i := 0; i < len(present); i++ {
		docids[i] = present[i].ID
		colindex[present[i].ID] = i
	}

	// [c] the matrix and the flat rows; terms x documents, the orientation the modeler wants

	dok := sparse.NewDOK(len(vocab), len(present))
	var rows []str.DocumentTermRow
	for i := 0; i < len(present); i++ {
		// iterate the vocabulary, not the count map: map order would wreck idempotence
		for w := 0; w < len(vocab); w++ {
			n, ok := present[i].Counts[vocab[w]]
			if !ok {
				continue
			}
			dok.Set(w, i, float64(n))
			rows = append(rows, str.DocumentTermRow{DocID: docids[i], Word: vocab[w], Count: n})
		}
	}

	// [d] the covariate table: one price per id, first-seen, restricted to ids with a matrix column

	firstseen := make(map[string]float64)
	for i := 0; i < len(listings); i++ {
		id := listings[i].ID
		if prior, dup := firstseen[id]; dup {
			if prior != listings[i].LogPrice {
				Msg.WARN(fmt.Sprintf(WARN1, id, prior, listings[i].LogPrice))
			}
			continue
		}
		firstseen[id] = listings[i].LogPrice
	}

	var metadata []str.CovariateRow
	for i := 0; i < len(docids); i++ {
		if lp, ok := firstseen[docids[i]]; ok {
			metadata = append(metadata, str.CovariateRow{DocID: docids[i], LogPrice: lp})
		}
	}

	// [e] the invariant: set(metadata.id) == set(matrix.document_ids); hard failure otherwise

	if e := checkalignment(docids, metadata); e != nil {
		return nil, e
	}

	Msg.FYI(fmt.Sprintf(MSG1, len(docids), len(vocab), dropped))

	return &str.Corpus{
		DocIDs:     docids,
		Vocabulary: vocab,
		VocabIndex: vocabindex,
		Matrix:     dok.ToCSR(),
		Rows:       rows,
		Metadata:   metadata,
	}, nil
}

// checkalignment - symmetric difference of the two id sets must be empty
func checkalignment(docids []string, metadata []str.CovariateRow) error {
	inmatrix := make(map[string]bool, len(docids))
	for _, id := range docids {
		inmatrix[id] = true
	}

	inmeta := make(map[string]bool, len(metadata))
	for _, m := range metadata {
		inmeta[m.DocID] = true
	}

	var onlymeta, onlymatrix []string
	for id := range inmeta {
		if !inmatrix[id] {
			onlymeta = append(onlymeta, id)
		}
	}
	for id := range inmatrix {
		if !inmeta[id] {
			onlymatrix = append(onlymatrix, id)
		}
	}

	if len(onlymeta) != 0 || len(onlymatrix) != 0 {
		sort.Strings(onlymeta)
		sort.Strings(onlymatrix)
		return &AlignmentError{OnlyMeta: onlymeta, OnlyMatrix: onlymatrix}
	}

	return nil
}
