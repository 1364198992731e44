package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"sitedocs/internal/model"
	"sitedocs/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

// selectDocuments joins each document with its category, current version and uploader.
// Comments are aggregated to a JSON array, or NULL when the version has none.
const selectDocuments = `
	SELECT d.id, d.document_number, d.title, d.description,
	       c.id, c.name, d.tags, d.confidential, d.created_at, d.updated_at,
	       v.version_number, v.file_size, v.status, u.id, u.name,
	       (SELECT json_agg(json_build_object(
	                   'id', cm.id,
	                   'author', json_build_object('id', a.id, 'name', a.name),
	                   'body', cm.body,
	                   'createdAt', cm.created_at) ORDER BY cm.created_at)
	          FROM document_comments cm
	          JOIN users a ON a.id = cm.author_id
	         WHERE cm.version_id = v.id) AS comments
	FROM documents d
	JOIN categories c ON c.id = d.category_id
	JOIN document_versions v ON v.document_id = d.id AND v.is_current
	JOIN users u ON u.id = v.uploaded_by
`

type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(s scanner) (model.Document, error) {
	var (
		d           model.Document
		description sql.NullString
		tags        []byte
		comments    []byte
	)
	if err := s.Scan(
		&d.ID,
		&d.DocumentNumber,
		&d.Title,
		&description,
		&d.Category.ID,
		&d.Category.Name,
		&tags,
		&d.Confidential,
		&d.CreatedAt,
		&d.UpdatedAt,
		&d.CurrentVersion.VersionNumber,
		&d.CurrentVersion.FileSize,
		&d.CurrentVersion.Status,
		&d.CurrentVersion.UploadedBy.ID,
		&d.CurrentVersion.UploadedBy.Name,
		&comments,
	); err != nil {
		return model.Document{}, err
	}

	if description.Valid {
		d.Description = &description.String
	}
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &d.Tags); err != nil {
			return model.Document{}, fmt.Errorf("decode tags of %s: %w", d.ID, err)
		}
	}
	if len(comments) > 0 {
		if err := json.Unmarshal(comments, &d.CurrentVersion.Comments); err != nil {
			return model.Document{}, fmt.Errorf("decode comments of %s: %w", d.ID, err)
		}
	}
	return d, nil
}

// FindAll returns the whole register ordered by creation time, newest first.
func (r *DocumentPostgres) FindAll(ctx context.Context) ([]model.Document, error) {
	rows, err := r.db.QueryContext(ctx, selectDocuments+` ORDER BY d.created_at DESC, d.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID fetches a single document by its ID. Missing rows surface as sql.ErrNoRows.
func (r *DocumentPostgres) FindByID(ctx context.Context, id string) (*model.Document, error) {
	row := r.db.QueryRowContext(ctx, selectDocuments+` WHERE d.id = $1`, id)
	d, err := scanDocument(row)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListRelations returns edges touching documentID from either side.
func (r *DocumentPostgres) ListRelations(ctx context.Context, documentID string) ([]model.RelatedDocument, error) {
	const q = `
		SELECT id, document_id, related_document_id, relation_type
		FROM document_relations
		WHERE document_id = $1 OR related_document_id = $1
		ORDER BY created_at, id
	`
	rows, err := r.db.QueryContext(ctx, q, documentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.RelatedDocument, 0)
	for rows.Next() {
		var (
			rel          model.RelatedDocument
			relationType string
		)
		if err := rows.Scan(&rel.ID, &rel.DocumentID, &rel.RelatedDocumentID, &relationType); err != nil {
			return nil, err
		}
		rel.RelationType = model.RelationType(relationType)
		items = append(items, rel)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
