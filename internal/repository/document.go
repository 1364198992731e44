package repository

import (
	"context"

	"sitedocs/internal/model"
)

// DocumentRepository is the read side of the document register.
// Persistence only, no business logic.
type DocumentRepository interface {
	// FindAll returns every document with its current version, newest first.
	FindAll(ctx context.Context) ([]model.Document, error)

	// FindByID returns a document by its ID, or sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.Document, error)

	// ListRelations returns the relation edges where documentID is either endpoint,
	// in the order they were recorded.
	ListRelations(ctx context.Context, documentID string) ([]model.RelatedDocument, error)
}
