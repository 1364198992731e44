package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_categories",
		SQL: `CREATE TABLE IF NOT EXISTS categories (
  id   TEXT PRIMARY KEY,
  name TEXT NOT NULL
);`,
	},
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id   TEXT PRIMARY KEY,
  name TEXT NOT NULL
);`,
	},
	{
		Name: "create_table_documents",
		SQL: `CREATE TABLE IF NOT EXISTS documents (
  id              UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  document_number TEXT        NOT NULL UNIQUE,
  title           TEXT        NOT NULL,
  description     TEXT,
  category_id     TEXT        NOT NULL REFERENCES categories (id),
  tags            JSONB       NOT NULL DEFAULT '[]'::jsonb,
  confidential    BOOLEAN     NOT NULL DEFAULT false,
  created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_document_versions",
		SQL: `CREATE TABLE IF NOT EXISTS document_versions (
  id             UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  document_id    UUID        NOT NULL REFERENCES documents (id) ON DELETE CASCADE,
  version_number INTEGER     NOT NULL CHECK (version_number > 0),
  file_size      BIGINT      NOT NULL CHECK (file_size >= 0),
  status         TEXT        NOT NULL,
  uploaded_by    TEXT        NOT NULL REFERENCES users (id),
  is_current     BOOLEAN     NOT NULL DEFAULT false,
  created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
  UNIQUE (document_id, version_number)
);`,
	},
	{
		Name: "create_index_document_versions_current",
		SQL:  `CREATE UNIQUE INDEX IF NOT EXISTS idx_document_versions_current ON document_versions (document_id) WHERE is_current;`,
	},
	{
		Name: "create_table_document_comments",
		SQL: `CREATE TABLE IF NOT EXISTS document_comments (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  version_id UUID        NOT NULL REFERENCES document_versions (id) ON DELETE CASCADE,
  author_id  TEXT        NOT NULL REFERENCES users (id),
  body       TEXT        NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_document_relations",
		SQL: `CREATE TABLE IF NOT EXISTS document_relations (
  id                  UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  document_id         UUID        NOT NULL REFERENCES documents (id) ON DELETE CASCADE,
  related_document_id UUID        NOT NULL REFERENCES documents (id) ON DELETE CASCADE,
  relation_type       TEXT        NOT NULL CHECK (relation_type IN ('parent', 'child', 'reference', 'supersedes', 'superseded_by', 'related')),
  created_at          TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_document_relations_document_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_document_relations_document_id ON document_relations (document_id);`,
	},
	{
		Name: "create_index_document_relations_related_document_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_document_relations_related_document_id ON document_relations (related_document_id);`,
	},
}

// EnsureMigrated runs the schema steps when the documents table is missing.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *zap.Logger, dbHost string) error {
	start := time.Now()
	log = log.With(zap.String("component", "database"), zap.String("db_host", dbHost))

	log.Info("db_migration_check", zap.String("status", "starting"))

	var exists bool
	if err := db.QueryRowContext(ctx, "SELECT to_regclass('public.documents') IS NOT NULL").Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			zap.String("status", "error"),
			zap.Error(err),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return fmt.Errorf("check sentinel table: %w", err)
	}

	if exists {
		log.Info("db_migration_skip",
			zap.String("status", "success"),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil
	}

	log.Info("db_migration_start", zap.String("status", "in_progress"), zap.Int("steps", len(steps)))

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				zap.String("status", "error"),
				zap.String("migration_step", step.Name),
				zap.Error(err),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Debug("db_migration_step",
			zap.String("status", "success"),
			zap.String("migration_step", step.Name),
			zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
		)
	}

	log.Info("db_migration_success",
		zap.String("status", "success"),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
	return nil
}
