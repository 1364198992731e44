package docquery

import "sitedocs/internal/model"

// Related resolves the relation edges touching documentID into directional buckets.
//
// An edge authored from the subject's side (documentID == edge.DocumentID) is read as-is;
// an edge authored from the other side is read inverted, so a parent edge A→B makes B a
// parent of A and A a child of B. Reference and related edges are undirected. Targets that
// are not present in all are skipped.
func Related(documentID string, relations []model.RelatedDocument, all []model.Document) model.RelatedDocuments {
	index := make(map[string]model.Document, len(all))
	for _, d := range all {
		if _, ok := index[d.ID]; !ok {
			index[d.ID] = d
		}
	}

	res := model.RelatedDocuments{
		Parents:      []model.Document{},
		Children:     []model.Document{},
		References:   []model.Document{},
		Supersedes:   []model.Document{},
		SupersededBy: []model.Document{},
		Related:      []model.Document{},
	}

	for _, r := range relations {
		if r.DocumentID != documentID && r.RelatedDocumentID != documentID {
			continue
		}
		isSource := r.DocumentID == documentID
		targetID := r.RelatedDocumentID
		if !isSource {
			targetID = r.DocumentID
		}
		target, ok := index[targetID]
		if !ok {
			continue
		}

		switch r.RelationType {
		case model.RelationParent:
			if isSource {
				res.Parents = append(res.Parents, target)
			} else {
				res.Children = append(res.Children, target)
			}
		case model.RelationChild:
			if isSource {
				res.Children = append(res.Children, target)
			} else {
				res.Parents = append(res.Parents, target)
			}
		case model.RelationReference:
			res.References = append(res.References, target)
		case model.RelationSupersedes:
			if isSource {
				res.Supersedes = append(res.Supersedes, target)
			} else {
				res.SupersededBy = append(res.SupersededBy, target)
			}
		case model.RelationSupersededBy:
			if isSource {
				res.SupersededBy = append(res.SupersededBy, target)
			} else {
				res.Supersedes = append(res.Supersedes, target)
			}
		case model.RelationRelated:
			res.Related = append(res.Related, target)
		}
	}
	return res
}
