package domain

// RefreshSummary is the only output of a dataset refresh run. Row-level
// problems are accounted here and never abort the batch.
type RefreshSummary struct {
	RecordsBefore int64 `json:"records_before"`
	RecordsAfter  int64 `json:"records_after"`
	Success       int   `json:"success"`
	Errors        int   `json:"errors"`
	Skipped       int   `json:"skipped"`
}

type RefreshAck struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}
