package model

import (
	"fmt"
	"strings"
)

// RelationType is the semantic carried by a relation edge.
type RelationType string

const (
	RelationParent       RelationType = "parent"
	RelationChild        RelationType = "child"
	RelationReference    RelationType = "reference"
	RelationSupersedes   RelationType = "supersedes"
	RelationSupersededBy RelationType = "superseded_by"
	RelationRelated      RelationType = "related"
)

// ParseRelationType validates a relation type name.
func ParseRelationType(s string) (RelationType, error) {
	switch r := RelationType(strings.ToLower(strings.TrimSpace(s))); r {
	case RelationParent, RelationChild, RelationReference, RelationSupersedes, RelationSupersededBy, RelationRelated:
		return r, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRelation, s)
	}
}

// RelatedDocument is a directed edge from DocumentID to RelatedDocumentID.
type RelatedDocument struct {
	ID                string       `json:"id,omitempty"`
	DocumentID        string       `json:"documentId"`
	RelatedDocumentID string       `json:"relatedDocumentId"`
	RelationType      RelationType `json:"relationType"`
}

// RelatedDocuments holds the six directional buckets for one subject document.
type RelatedDocuments struct {
	Parents      []Document `json:"parents"`
	Children     []Document `json:"children"`
	References   []Document `json:"references"`
	Supersedes   []Document `json:"supersedes"`
	SupersededBy []Document `json:"supersededBy"`
	Related      []Document `json:"related"`
}
