// Package catalog holds the fixed set of reference sequence databases
// the analyzer exposes. The set is defined once at process start and is
// never mutated, so it is safe to share across requests without locking.
package catalog

// Database describes a single reference sequence database.
type Database struct {
	Name           string  `json:"name"`
	SizeGB         float64 `json:"size_gb"`
	FileCount      int     `json:"file_count"`
	ExtractionDate string  `json:"extraction_date"`
	CloudFiles     int     `json:"cloud_files"`
}

// Catalog is a read-only collection of database descriptors.
type Catalog struct {
	databases []Database
}

// New returns the catalog of available databases.
func New() *Catalog {
	return &Catalog{
		databases: []Database{
			{
				Name:           "16S_ribosomal_RNA",
				SizeGB:         50.2,
				FileCount:      15,
				ExtractionDate: "2025-09-08T05:00:00Z",
				CloudFiles:     15,
			},
			{
				Name:           "env_nt",
				SizeGB:         120.8,
				FileCount:      25,
				ExtractionDate: "2025-09-08T04:30:00Z",
				CloudFiles:     25,
			},
			{
				Name:           "nt",
				SizeGB:         500.5,
				FileCount:      80,
				ExtractionDate: "2025-09-08T03:00:00Z",
				CloudFiles:     80,
			},
			{
				Name:           "refseq_rna",
				SizeGB:         200.3,
				FileCount:      35,
				ExtractionDate: "2025-09-08T02:00:00Z",
				CloudFiles:     35,
			},
		},
	}
}

// List returns all database descriptors in declaration order.
func (c *Catalog) List() []Database {
	return c.databases
}

// Count returns the number of databases in the catalog.
func (c *Catalog) Count() int {
	return len(c.databases)
}

// Get returns the descriptor whose name matches exactly (case-sensitive).
func (c *Catalog) Get(name string) (*Database, error) {
	for i := range c.databases {
		if c.databases[i].Name == name {
			return &c.databases[i], nil
		}
	}
	return nil, ErrDatabaseNotFound
}
