package blast

import (
	"errors"
	"testing"

	"ednalyzer/internal/catalog"
)

func TestCleanSequence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain sequence", "ACGTACGT", "ACGTACGT"},
		{"fasta header marker", ">ACGTACGT", "ACGTACGT"},
		{"newlines removed", "ACGT\nACGT\n", "ACGTACGT"},
		{"spaces removed", "ACGT ACGT", "ACGTACGT"},
		{"header line kept minus marker", ">seq1\nACGT", "seq1ACGT"},
		// Tabs and carriage returns are deliberately not stripped.
		{"tabs survive", "ACGT\tACGT", "ACGT\tACGT"},
		{"carriage returns survive", "ACGT\r\nACGT", "ACGT\rACGT"},
		{"empty", "", ""},
		{"only stripped chars", "> \n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanSequence(tt.in); got != tt.want {
				t.Errorf("CleanSequence(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSearchMaxHits(t *testing.T) {
	s := NewSearcher(catalog.New())

	tests := []struct {
		maxHits  int
		wantHits int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 3},
		{10, 3},
		{-1, 0},
	}

	for _, tt := range tests {
		result, err := s.Search("ACGTACGTACGTACGT", "nt", "blastn", tt.maxHits)
		if err != nil {
			t.Fatalf("Search(maxHits=%d) failed: %v", tt.maxHits, err)
		}
		if len(result.Results) != tt.wantHits {
			t.Errorf("Search(maxHits=%d) returned %d hits, want %d", tt.maxHits, len(result.Results), tt.wantHits)
		}
	}
}

func TestSearchHitOrder(t *testing.T) {
	s := NewSearcher(catalog.New())

	result, err := s.Search("ACGTACGTACGTACGT", "16S_ribosomal_RNA", "blastn", 3)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	wantIDs := []string{
		"gi|123456789|ref|NR_123456.1|",
		"gi|987654321|ref|NR_987654.1|",
		"gi|456789123|ref|NR_456789.1|",
	}
	for i, id := range wantIDs {
		if result.Results[i].HitID != id {
			t.Errorf("Results[%d].HitID = %q, want %q", i, result.Results[i].HitID, id)
		}
	}

	if result.Results[0].Score != 312.4 {
		t.Errorf("Results[0].Score = %v, want 312.4", result.Results[0].Score)
	}
	if result.Results[2].EValue != 1e-72 {
		t.Errorf("Results[2].EValue = %v, want 1e-72", result.Results[2].EValue)
	}
}

func TestSearchQueryLength(t *testing.T) {
	s := NewSearcher(catalog.New())

	tests := []struct {
		name     string
		sequence string
		want     int
	}{
		{"plain", "ACGTACGTACGT", 12},
		{"fasta with header", ">seq1\nACGTACGTACGTACGT", 20},
		{"spaces stripped", "ACGTA CGTAC GTACG", 15},
		// Tab counts toward the query length because it is not stripped.
		{"tab counted", "ACGTACGTAC\tGT", 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := s.Search(tt.sequence, "nt", "blastn", 10)
			if err != nil {
				t.Fatalf("Search(%q) failed: %v", tt.sequence, err)
			}
			if result.QueryLength != tt.want {
				t.Errorf("QueryLength = %d, want %d", result.QueryLength, tt.want)
			}
		})
	}
}

func TestSearchErrors(t *testing.T) {
	s := NewSearcher(catalog.New())

	t.Run("sequence too short", func(t *testing.T) {
		_, err := s.Search("ACGT", "nt", "blastn", 10)
		if !errors.Is(err, ErrSequenceTooShort) {
			t.Fatalf("error = %v, want ErrSequenceTooShort", err)
		}
	})

	t.Run("cleaning can shorten below minimum", func(t *testing.T) {
		// 12 raw characters but only 8 after cleaning.
		_, err := s.Search("> ACGT\nACGT\n", "nt", "blastn", 10)
		if !errors.Is(err, ErrSequenceTooShort) {
			t.Fatalf("error = %v, want ErrSequenceTooShort", err)
		}
	})

	t.Run("unknown database", func(t *testing.T) {
		_, err := s.Search("ACGTACGTACGTACGT", "unknown_db", "blastn", 10)
		if !errors.Is(err, catalog.ErrDatabaseNotFound) {
			t.Fatalf("error = %v, want ErrDatabaseNotFound", err)
		}
	})

	t.Run("validation runs before database lookup", func(t *testing.T) {
		_, err := s.Search("ACGT", "unknown_db", "blastn", 10)
		if !errors.Is(err, ErrSequenceTooShort) {
			t.Fatalf("error = %v, want ErrSequenceTooShort", err)
		}
	})
}

func TestSearchResultIsolated(t *testing.T) {
	s := NewSearcher(catalog.New())

	first, err := s.Search("ACGTACGTACGTACGT", "nt", "blastn", 3)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	first.Results[0].Description = "mutated"

	second, err := s.Search("ACGTACGTACGTACGT", "nt", "blastn", 3)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if second.Results[0].Description == "mutated" {
		t.Error("mutating a result leaked into subsequent searches")
	}
}
