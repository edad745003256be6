// Package blast implements the demo sequence search responder. Searches
// validate their input against the catalog but always answer with the same
// fixed hit list; the service mimics the BLAST API shape without running
// an alignment.
package blast

import (
	"strings"
	"time"

	"ednalyzer/internal/catalog"
)

// MinSequenceLength is the minimum cleaned query length accepted.
const MinSequenceLength = 10

// cleaner strips newlines, FASTA header markers, and spaces. Tabs and
// carriage returns intentionally survive cleaning.
var cleaner = strings.NewReplacer("\n", "", ">", "", " ", "")

// CleanSequence removes '\n', '>', and ' ' from a raw query sequence.
func CleanSequence(sequence string) string {
	return cleaner.Replace(sequence)
}

// Hit is a single alignment record in a search response.
type Hit struct {
	HitID           string  `json:"hit_id"`
	Description     string  `json:"description"`
	Length          int     `json:"length"`
	EValue          float64 `json:"evalue"`
	Score           float64 `json:"score"`
	Identity        int     `json:"identity"`
	AlignmentLength int     `json:"alignment_length"`
}

// Result is the response for a single search request. Constructed fresh
// per request and never stored.
type Result struct {
	Database    string `json:"database"`
	QueryLength int    `json:"query_length"`
	Results     []Hit  `json:"results"`
	Timestamp   string `json:"timestamp"`
}

// cannedHits is the fixed demo hit list, returned in this order for every
// search regardless of query content.
var cannedHits = []Hit{
	{
		HitID:           "gi|123456789|ref|NR_123456.1|",
		Description:     "Escherichia coli strain K-12 16S ribosomal RNA gene",
		Length:          1542,
		EValue:          2e-85,
		Score:           312.4,
		Identity:        98,
		AlignmentLength: 1520,
	},
	{
		HitID:           "gi|987654321|ref|NR_987654.1|",
		Description:     "Bacillus subtilis 16S ribosomal RNA gene, complete sequence",
		Length:          1560,
		EValue:          5e-78,
		Score:           289.7,
		Identity:        95,
		AlignmentLength: 1495,
	},
	{
		HitID:           "gi|456789123|ref|NR_456789.1|",
		Description:     "Pseudomonas aeruginosa 16S ribosomal RNA gene",
		Length:          1535,
		EValue:          1e-72,
		Score:           267.2,
		Identity:        93,
		AlignmentLength: 1480,
	},
}

// Searcher answers search requests against the catalog.
type Searcher struct {
	catalog *catalog.Catalog
}

// NewSearcher creates a searcher backed by the given catalog.
func NewSearcher(cat *catalog.Catalog) *Searcher {
	return &Searcher{catalog: cat}
}

// Search validates the query and returns the canned hit list truncated to
// maxHits entries. blastType is accepted for API compatibility but has no
// effect on the response.
func (s *Searcher) Search(sequence, dbName, blastType string, maxHits int) (*Result, error) {
	clean := CleanSequence(sequence)
	if len(clean) < MinSequenceLength {
		return nil, ErrSequenceTooShort
	}

	if _, err := s.catalog.Get(dbName); err != nil {
		return nil, err
	}

	if maxHits < 0 {
		maxHits = 0
	}
	n := min(maxHits, len(cannedHits))
	hits := make([]Hit, n)
	copy(hits, cannedHits[:n])

	return &Result{
		Database:    dbName,
		QueryLength: len(clean),
		Results:     hits,
		Timestamp:   time.Now().Format(time.RFC3339),
	}, nil
}
