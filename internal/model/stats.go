package model

// DocumentStats aggregates a document collection.
type DocumentStats struct {
	TotalDocuments  int            `json:"totalDocuments"`
	TotalSize       int64          `json:"totalSize"`
	AvgSize         float64        `json:"avgSize"`
	StatusCounts    map[string]int `json:"statusCounts"`
	CategoryCounts  map[string]int `json:"categoryCounts"`
	RecentDocuments []Document     `json:"recentDocuments"`
	OldestDocument  *Document      `json:"oldestDocument"`
	NewestDocument  *Document      `json:"newestDocument"`
}

// DocumentGroup is one bucket produced by grouping. Groups are returned as a slice
// so first-seen key order survives JSON encoding.
type DocumentGroup struct {
	Key       string     `json:"key"`
	Documents []Document `json:"documents"`
}
