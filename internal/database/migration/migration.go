package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

// Column types differ between dialects; everything else is shared.
type dialect struct {
	sentinel  string
	timestamp string
	float     string
}

var dialects = map[string]dialect{
	"postgres": {
		sentinel:  "SELECT to_regclass('public.documents') IS NOT NULL",
		timestamp: "TIMESTAMPTZ",
		float:     "DOUBLE PRECISION",
	},
	"sqlite": {
		sentinel:  "SELECT COUNT(*) > 0 FROM sqlite_master WHERE type = 'table' AND name = 'documents'",
		timestamp: "TIMESTAMP",
		float:     "REAL",
	},
}

func stepsFor(d dialect) []migrationStep {
	return []migrationStep{
		{
			Name: "create_table_documents",
			SQL: fmt.Sprintf(`CREATE TABLE IF NOT EXISTS documents (
  id           TEXT        PRIMARY KEY,
  name         TEXT        NOT NULL,
  type         TEXT        NOT NULL CHECK (type IN ('pdf', 'docx', 'csv', 'txt')),
  storage_path TEXT        NOT NULL UNIQUE,
  size         BIGINT      NOT NULL CHECK (size >= 0),
  content_type TEXT        NOT NULL,
  created_at   %s NOT NULL,
  processed    BOOLEAN     NOT NULL DEFAULT FALSE
);`, d.timestamp),
		},
		{
			Name: "create_table_concepts",
			SQL: `CREATE TABLE IF NOT EXISTS concepts (
  id               TEXT PRIMARY KEY,
  document_id      TEXT NOT NULL REFERENCES documents (id) ON DELETE CASCADE,
  title            TEXT NOT NULL,
  explanation      TEXT NOT NULL,
  importance       TEXT NOT NULL CHECK (importance IN ('high', 'medium', 'low')),
  related_concepts TEXT
);`,
		},
		{
			Name: "create_table_flashcards",
			SQL: fmt.Sprintf(`CREATE TABLE IF NOT EXISTS flashcards (
  id              TEXT    PRIMARY KEY,
  concept_id      TEXT    REFERENCES concepts (id) ON DELETE CASCADE,
  document_id     TEXT    NOT NULL REFERENCES documents (id) ON DELETE CASCADE,
  question        TEXT    NOT NULL,
  answer          TEXT    NOT NULL,
  difficulty      %s NOT NULL DEFAULT 1.0 CHECK (difficulty >= 0.1 AND difficulty <= 3.0),
  last_reviewed   %s,
  correct_count   INTEGER NOT NULL DEFAULT 0 CHECK (correct_count >= 0),
  incorrect_count INTEGER NOT NULL DEFAULT 0 CHECK (incorrect_count >= 0)
);`, d.float, d.timestamp),
		},
		{
			Name: "create_table_folders",
			SQL: fmt.Sprintf(`CREATE TABLE IF NOT EXISTS folders (
  id         TEXT PRIMARY KEY,
  name       TEXT NOT NULL,
  user_id    TEXT NOT NULL,
  created_at %s NOT NULL
);`, d.timestamp),
		},
		{
			Name: "create_table_document_folders",
			SQL: `CREATE TABLE IF NOT EXISTS document_folders (
  document_id TEXT NOT NULL REFERENCES documents (id) ON DELETE CASCADE,
  folder_id   TEXT NOT NULL REFERENCES folders (id) ON DELETE CASCADE,
  PRIMARY KEY (document_id, folder_id)
);`,
		},
		{
			Name: "create_index_documents_created_at",
			SQL:  `CREATE INDEX IF NOT EXISTS idx_documents_created_at ON documents (created_at);`,
		},
		{
			Name: "create_index_concepts_document_id",
			SQL:  `CREATE INDEX IF NOT EXISTS idx_concepts_document_id ON concepts (document_id);`,
		},
		{
			Name: "create_index_flashcards_document_id",
			SQL:  `CREATE INDEX IF NOT EXISTS idx_flashcards_document_id ON flashcards (document_id);`,
		},
		{
			Name: "create_index_flashcards_review_order",
			SQL:  `CREATE INDEX IF NOT EXISTS idx_flashcards_review_order ON flashcards (last_reviewed, difficulty);`,
		},
		{
			Name: "create_index_folders_user_id",
			SQL:  `CREATE INDEX IF NOT EXISTS idx_folders_user_id ON folders (user_id);`,
		},
	}
}

// EnsureMigrated checks if the 'documents' table exists and runs migrations if it doesn't.
// driver is "postgres" or "sqlite".
func EnsureMigrated(ctx context.Context, db *sql.DB, driver string, loc *time.Location, dbHost string) error {
	d, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("unsupported migration dialect: %s", driver)
	}
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
		"db_driver": driver,
	})

	var exists bool
	err := db.QueryRowContext(ctx, d.sentinel).Scan(&exists)
	if err != nil {
		logJSON(loc, map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logJSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "in_progress",
		"db_host":   dbHost,
	})

	for _, step := range stepsFor(d) {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			logJSON(loc, map[string]any{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logJSON(loc, map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
