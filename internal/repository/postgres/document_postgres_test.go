package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"sitedocs/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var documentColumns = []string{
	"id", "document_number", "title", "description",
	"id", "name", "tags", "confidential", "created_at", "updated_at",
	"version_number", "file_size", "status", "id", "name",
	"comments",
}

func newRepo(t *testing.T) (*DocumentPostgres, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewDocumentPostgres(db), mock
}

func TestDocumentPostgres_FindAll(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	updated := created.Add(48 * time.Hour)

	t.Run("success", func(t *testing.T) {
		repo, mock := newRepo(t)

		rows := sqlmock.NewRows(documentColumns).
			AddRow("doc-1", "CON-001", "Contract", "Main agreement",
				"cat-legal", "Legal", []byte(`["contract","signed"]`), true, created, updated,
				int64(3), int64(2048), "approved", "u1", "Sam",
				[]byte(`[{"id":"c1","author":{"id":"u2","name":"Lee"},"body":"ok","createdAt":"2024-01-02T08:00:00Z"}]`)).
			AddRow("doc-2", "REP-014", "Report", nil,
				"cat-progress", "Progress", []byte(`[]`), false, created, created,
				int64(1), int64(512), "draft", "u2", "Lee",
				nil)

		mock.ExpectQuery("SELECT (.+) FROM documents d JOIN categories c (.+) ORDER BY d.created_at DESC, d.id").
			WillReturnRows(rows)

		docs, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, docs, 2)

		first := docs[0]
		assert.Equal(t, "doc-1", first.ID)
		require.NotNil(t, first.Description)
		assert.Equal(t, "Main agreement", *first.Description)
		assert.Equal(t, model.Category{ID: "cat-legal", Name: "Legal"}, first.Category)
		assert.Equal(t, []string{"contract", "signed"}, first.Tags)
		assert.True(t, first.Confidential)
		assert.Equal(t, updated, first.UpdatedAt)
		assert.Equal(t, 3, first.CurrentVersion.VersionNumber)
		assert.Equal(t, int64(2048), first.CurrentVersion.FileSize)
		assert.Equal(t, model.User{ID: "u1", Name: "Sam"}, first.CurrentVersion.UploadedBy)
		require.Len(t, first.CurrentVersion.Comments, 1)
		assert.Equal(t, "Lee", first.CurrentVersion.Comments[0].Author.Name)

		second := docs[1]
		assert.Nil(t, second.Description)
		assert.Empty(t, second.Tags)
		assert.Nil(t, second.CurrentVersion.Comments)
		assert.False(t, second.HasComments())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty table", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM documents d").WillReturnRows(sqlmock.NewRows(documentColumns))

		docs, err := repo.FindAll(ctx)
		assert.NoError(t, err)
		assert.NotNil(t, docs)
		assert.Empty(t, docs)
	})

	t.Run("malformed tags", func(t *testing.T) {
		repo, mock := newRepo(t)
		rows := sqlmock.NewRows(documentColumns).
			AddRow("doc-1", "CON-001", "Contract", nil,
				"cat-legal", "Legal", []byte(`{not json`), false, created, created,
				int64(1), int64(1), "draft", "u1", "Sam", nil)
		mock.ExpectQuery("SELECT (.+) FROM documents d").WillReturnRows(rows)

		docs, err := repo.FindAll(ctx)
		assert.ErrorContains(t, err, "decode tags of doc-1")
		assert.Nil(t, docs)
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM documents d").WillReturnError(errors.New("db down"))

		docs, err := repo.FindAll(ctx)
		assert.EqualError(t, err, "db down")
		assert.Nil(t, docs)
	})
}

func TestDocumentPostgres_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo, mock := newRepo(t)
		rows := sqlmock.NewRows(documentColumns).
			AddRow("doc-1", "DRW-102", "Foundation drawing", nil,
				"cat-drawings", "Drawings", []byte(`["structural"]`), false, time.Now(), time.Now(),
				int64(2), int64(4096), "review", "u1", "Sam", nil)

		mock.ExpectQuery("SELECT (.+) FROM documents d (.+) WHERE d.id = \\$1").
			WithArgs("doc-1").
			WillReturnRows(rows)

		doc, err := repo.FindByID(ctx, "doc-1")

		assert.NoError(t, err)
		require.NotNil(t, doc)
		assert.Equal(t, "doc-1", doc.ID)
		assert.Equal(t, "review", doc.CurrentVersion.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM documents d (.+) WHERE d.id = \\$1").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(documentColumns))

		doc, err := repo.FindByID(ctx, "missing")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, doc)
	})
}

func TestDocumentPostgres_ListRelations(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo, mock := newRepo(t)
		rows := sqlmock.NewRows([]string{"id", "document_id", "related_document_id", "relation_type"}).
			AddRow("r1", "A", "B", "parent").
			AddRow("r2", "C", "A", "supersedes")

		mock.ExpectQuery("SELECT (.+) FROM document_relations WHERE document_id = \\$1 OR related_document_id = \\$1").
			WithArgs("A").
			WillReturnRows(rows)

		rels, err := repo.ListRelations(ctx, "A")

		require.NoError(t, err)
		assert.Equal(t, []model.RelatedDocument{
			{ID: "r1", DocumentID: "A", RelatedDocumentID: "B", RelationType: model.RelationParent},
			{ID: "r2", DocumentID: "C", RelatedDocumentID: "A", RelationType: model.RelationSupersedes},
		}, rels)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM document_relations").
			WithArgs("A").
			WillReturnError(errors.New("db fail"))

		rels, err := repo.ListRelations(ctx, "A")
		assert.Error(t, err)
		assert.Nil(t, rels)
	})
}
