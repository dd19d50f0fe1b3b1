package dto

// MergeStats counts the outcome of merging one candidate batch.
type MergeStats struct {
	Added            int `json:"added"`
	SkippedInvalid   int `json:"skipped_invalid"`
	SkippedDuplicate int `json:"skipped_duplicate"`
}

// ScanReport summarizes a full pipeline run.
type ScanReport struct {
	ScanID     string         `json:"scan_id"`
	Loaded     int            `json:"loaded"`
	Expired    int            `json:"expired"`
	Candidates int            `json:"candidates"`
	Merge      MergeStats     `json:"merge"`
	Total      int            `json:"total"`
	ByCity     map[string]int `json:"by_city"`
	ByType     map[string]int `json:"by_type"`
}
