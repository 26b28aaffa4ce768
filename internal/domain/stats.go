package domain

type AedStats struct {
	Total      int64            `json:"total"`
	Public     int64            `json:"public"`
	Private    int64            `json:"private"`
	Flagged    int64            `json:"flagged"`
	ByCategory map[string]int64 `json:"by_category"`
}

type ReportStats struct {
	Total    int64            `json:"total"`
	ByType   map[string]int64 `json:"by_type"`
	ByStatus map[string]int64 `json:"by_status"`
}

type Stats struct {
	Aeds    AedStats    `json:"aeds"`
	Reports ReportStats `json:"reports"`
}
