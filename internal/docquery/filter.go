package docquery

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"sitedocs/internal/model"
)

// Predicate reports whether a document is retained.
type Predicate func(model.Document) bool

// Predicates builds one predicate per criterion set on f, in evaluation order:
// search, categories, status, date range, uploader, tags, comments, confidentiality.
func Predicates(f model.DocumentFilter) []Predicate {
	var ps []Predicate

	if f.Search != "" {
		ps = append(ps, MatchSearch(f.Search))
	}
	if len(f.Categories) > 0 {
		ps = append(ps, InCategories(f.Categories...))
	}
	if len(f.Status) > 0 {
		ps = append(ps, InStatus(f.Status...))
	}
	if f.DateRange != nil {
		ps = append(ps, CreatedWithin(*f.DateRange))
	}
	if len(f.UploadedBy) > 0 {
		ps = append(ps, UploadedBy(f.UploadedBy...))
	}
	if len(f.Tags) > 0 {
		ps = append(ps, AnyTag(f.Tags...))
	}
	if f.HasComments != nil {
		ps = append(ps, WithComments(*f.HasComments))
	}
	if f.Confidential != nil {
		ps = append(ps, IsConfidential(*f.Confidential))
	}
	return ps
}

// All folds predicates with logical AND. No predicates accept everything.
func All(ps ...Predicate) Predicate {
	return func(d model.Document) bool {
		for _, p := range ps {
			if !p(d) {
				return false
			}
		}
		return true
	}
}

// Filter returns the documents matching every criterion of f, sorted when f.SortBy is set.
func Filter(docs []model.Document, f model.DocumentFilter) []model.Document {
	keep := All(Predicates(f)...)

	out := make([]model.Document, 0, len(docs))
	for _, d := range docs {
		if keep(d) {
			out = append(out, d)
		}
	}

	if f.SortBy != "" {
		sortInPlace(out, f.SortBy, f.SortOrder)
	}
	return out
}

// MatchSearch matches q case-insensitively against title, document number,
// description and tags.
func MatchSearch(q string) Predicate {
	q = strings.ToLower(q)
	contains := func(s string) bool { return strings.Contains(strings.ToLower(s), q) }

	return func(d model.Document) bool {
		if contains(d.Title) || contains(d.DocumentNumber) {
			return true
		}
		if d.Description != nil && contains(*d.Description) {
			return true
		}
		for _, tag := range d.Tags {
			if contains(tag) {
				return true
			}
		}
		return false
	}
}

func InCategories(ids ...string) Predicate {
	set := mapset.NewThreadUnsafeSet(ids...)
	return func(d model.Document) bool { return set.Contains(d.Category.ID) }
}

func InStatus(statuses ...string) Predicate {
	set := mapset.NewThreadUnsafeSet(statuses...)
	return func(d model.Document) bool { return set.Contains(d.CurrentVersion.Status) }
}

// CreatedWithin matches creation times in [r.Start, r.End].
func CreatedWithin(r model.DateRange) Predicate {
	return func(d model.Document) bool {
		return !d.CreatedAt.Before(r.Start) && !d.CreatedAt.After(r.End)
	}
}

func UploadedBy(userIDs ...string) Predicate {
	set := mapset.NewThreadUnsafeSet(userIDs...)
	return func(d model.Document) bool { return set.Contains(d.CurrentVersion.UploadedBy.ID) }
}

// AnyTag matches documents carrying at least one of tags.
func AnyTag(tags ...string) Predicate {
	set := mapset.NewThreadUnsafeSet(tags...)
	return func(d model.Document) bool {
		for _, t := range d.Tags {
			if set.Contains(t) {
				return true
			}
		}
		return false
	}
}

func WithComments(want bool) Predicate {
	return func(d model.Document) bool { return d.HasComments() == want }
}

func IsConfidential(want bool) Predicate {
	return func(d model.Document) bool { return d.Confidential == want }
}
