package docquery

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"sitedocs/internal/model"
)

type comparator func(a, b model.Document) int

// Sort returns a stably ordered copy of docs. An empty field sorts by creation date and
// any order other than asc is descending. Unknown fields leave the order unchanged.
func Sort(docs []model.Document, by model.SortField, order model.SortOrder) []model.Document {
	out := slices.Clone(docs)
	sortInPlace(out, by, order)
	return out
}

func sortInPlace(docs []model.Document, by model.SortField, order model.SortOrder) {
	if by == "" {
		by = model.SortByDate
	}
	compare := comparatorFor(by)
	if compare == nil {
		return
	}
	if order != model.SortAsc {
		asc := compare
		compare = func(a, b model.Document) int { return -asc(a, b) }
	}
	slices.SortStableFunc(docs, compare)
}

func comparatorFor(by model.SortField) comparator {
	switch by {
	case model.SortByName:
		c := collate.New(language.English)
		return func(a, b model.Document) int { return c.CompareString(a.Title, b.Title) }
	case model.SortByDate, model.SortByCreated:
		return func(a, b model.Document) int { return a.CreatedAt.Compare(b.CreatedAt) }
	case model.SortByModified:
		return func(a, b model.Document) int { return a.UpdatedAt.Compare(b.UpdatedAt) }
	case model.SortBySize:
		return func(a, b model.Document) int {
			return cmp.Compare(a.CurrentVersion.FileSize, b.CurrentVersion.FileSize)
		}
	case model.SortByStatus:
		c := collate.New(language.English)
		return func(a, b model.Document) int {
			return c.CompareString(a.CurrentVersion.Status, b.CurrentVersion.Status)
		}
	case model.SortByCategory:
		c := collate.New(language.English)
		return func(a, b model.Document) int { return c.CompareString(a.Category.Name, b.Category.Name) }
	default:
		return nil
	}
}
