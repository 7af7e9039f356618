package model

// DateRange is the analysis window, inclusive ISO date bounds.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ExcludedBatch records the most recent batch of exclusions for single-level
// undo. Only the latest batch is kept; a new exclusion overwrites it.
type ExcludedBatch struct {
	Reason string   `json:"reason"`
	IDs    []string `json:"ids"`
}

// Snapshot is the complete serializable categorization state. A session can
// be reconstructed from exactly this shape with no hidden fields, so
// persistence round-trips losslessly.
type Snapshot struct {
	Transactions      []Transaction     `json:"transactions"`
	Assignments       map[string]string `json:"assignments"`
	Excluded          []string          `json:"excluded"`
	LastExcludedBatch *ExcludedBatch    `json:"last_excluded_batch,omitempty"`
	DateRange         DateRange         `json:"date_range"`
	CustomCategories  []Category        `json:"custom_categories"`
}
