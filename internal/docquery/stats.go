package docquery

import (
	"slices"

	"sitedocs/internal/model"
)

// RecentLimit caps DocumentStats.RecentDocuments.
const RecentLimit = 5

// Stats aggregates docs. An empty collection yields zero totals and nil oldest/newest.
func Stats(docs []model.Document) model.DocumentStats {
	st := model.DocumentStats{
		TotalDocuments:  len(docs),
		StatusCounts:    make(map[string]int),
		CategoryCounts:  make(map[string]int),
		RecentDocuments: []model.Document{},
	}
	if len(docs) == 0 {
		return st
	}

	oldest, newest := 0, 0
	for i, d := range docs {
		st.TotalSize += d.CurrentVersion.FileSize
		st.StatusCounts[d.CurrentVersion.Status]++
		st.CategoryCounts[d.Category.Name]++

		if d.CreatedAt.Before(docs[oldest].CreatedAt) {
			oldest = i
		}
		if d.CreatedAt.After(docs[newest].CreatedAt) {
			newest = i
		}
	}
	st.AvgSize = float64(st.TotalSize) / float64(len(docs))

	o, n := docs[oldest], docs[newest]
	st.OldestDocument = &o
	st.NewestDocument = &n

	recent := slices.Clone(docs)
	slices.SortStableFunc(recent, func(a, b model.Document) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	st.RecentDocuments = recent[:min(RecentLimit, len(recent))]
	return st
}
