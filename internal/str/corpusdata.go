//    RentalTopics
//    Copyright: A Kranes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import (
	"github.com/james-bowman/sparse"
)

// DocumentTermRow - count of a vocabulary word within one document; zero counts are never materialized
type DocumentTermRow struct {
	DocID string
	Word  string
	Count int
}

// CovariateRow - the per-document metadata the topic model conditions on
type CovariateRow struct {
	DocID    string
	LogPrice float64
}

// Corpus - the aligned document-term matrix + covariate table handed to the modeler
//
// invariants: DocIDs, the matrix columns, and Metadata are all in the same order and
// carry exactly the same id set; the assembler refuses to emit a Corpus otherwise
type Corpus struct {
	DocIDs     []string
	Vocabulary []string       // ordered; index = matrix row
	VocabIndex map[string]int // word -> matrix row
	Matrix     *sparse.CSR    // terms x documents, the orientation the modeler consumes
	Rows       []DocumentTermRow
	Metadata   []CovariateRow
}

// NumDocs - number of documents in the corpus
func (c *Corpus) NumDocs() int {
	return len(c.DocIDs)
}

// NumTerms - size of the retained vocabulary
func (c *Corpus) NumTerms() int {
	return len(c.Vocabulary)
}
