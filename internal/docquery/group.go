package docquery

import "sitedocs/internal/model"

// OtherGroup is the bucket key used for unrecognised grouping modes.
const OtherGroup = "Other"

// Group partitions docs into buckets in first-seen key order. Input order is kept
// inside each bucket. Date keys use the short date form of CreatedAt in its own location.
func Group(docs []model.Document, by model.GroupBy) []model.DocumentGroup {
	if by == "" {
		by = model.GroupByCategory
	}

	groups := make([]model.DocumentGroup, 0)
	index := make(map[string]int)
	for _, d := range docs {
		key := groupKey(d, by)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, model.DocumentGroup{Key: key})
		}
		groups[i].Documents = append(groups[i].Documents, d)
	}
	return groups
}

func groupKey(d model.Document, by model.GroupBy) string {
	switch by {
	case model.GroupByCategory:
		return d.Category.Name
	case model.GroupByStatus:
		return d.CurrentVersion.Status
	case model.GroupByDate:
		return FormatDate(d.CreatedAt, model.DateShort)
	case model.GroupByUser:
		return d.CurrentVersion.UploadedBy.Name
	default:
		return OtherGroup
	}
}
