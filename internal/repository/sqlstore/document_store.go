package sqlstore

import (
	"context"
	"database/sql"

	"tutorapi/internal/model"
	"tutorapi/internal/repository"
)

// DocumentStore is a SQL implementation of repository.DocumentRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DocumentStore struct {
	db *sql.DB
}

// NewDocumentStore creates a new DocumentStore repository.
func NewDocumentStore(db *sql.DB) *DocumentStore {
	return &DocumentStore{db: db}
}

var _ repository.DocumentRepository = (*DocumentStore)(nil)

const documentColumns = `id, name, type, storage_path, size, content_type, created_at, processed`

func scanDocument(s scanner) (*model.Document, error) {
	var d model.Document
	if err := s.Scan(
		&d.ID,
		&d.Name,
		&d.Type,
		&d.StoragePath,
		&d.Size,
		&d.ContentType,
		&d.CreatedAt,
		&d.Processed,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

// Create inserts a new document row and returns the stored record.
func (r *DocumentStore) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	const q = `
		INSERT INTO documents (id, name, type, storage_path, size, content_type, created_at, processed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + documentColumns
	row := conn(ctx, r.db).QueryRowContext(ctx, q,
		doc.ID,
		doc.Name,
		doc.Type,
		doc.StoragePath,
		doc.Size,
		doc.ContentType,
		doc.CreatedAt,
		doc.Processed,
	)
	return scanDocument(row)
}

// FindByID fetches a single document by its ID.
func (r *DocumentStore) FindByID(ctx context.Context, id string) (*model.Document, error) {
	const q = `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	return scanDocument(conn(ctx, r.db).QueryRowContext(ctx, q, id))
}

// List returns documents using LIMIT/OFFSET pagination and a total count.
func (r *DocumentStore) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Document], error) {
	total, err := r.Count(ctx)
	if err != nil {
		return nil, err
	}

	const qList = `
		SELECT ` + documentColumns + `
		FROM documents
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := conn(ctx, r.db).QueryContext(ctx, qList, pq.Limit, pq.Offset)
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
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Document]{
		Items: items,
		Total: total,
	}, nil
}

// MarkProcessed flips the processed flag only while it is still false.
func (r *DocumentStore) MarkProcessed(ctx context.Context, id string) (bool, error) {
	const q = `UPDATE documents SET processed = TRUE WHERE id = $1 AND processed = FALSE`
	res, err := conn(ctx, r.db).ExecContext(ctx, q, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// Delete removes a document and everything hanging off it. Run it inside a
// transaction so a failure leaves nothing half-deleted.
func (r *DocumentStore) Delete(ctx context.Context, id string) error {
	c := conn(ctx, r.db)
	for _, q := range []string{
		`DELETE FROM flashcards WHERE document_id = $1`,
		`DELETE FROM concepts WHERE document_id = $1`,
		`DELETE FROM document_folders WHERE document_id = $1`,
		`DELETE FROM documents WHERE id = $1`,
	} {
		if _, err := c.ExecContext(ctx, q, id); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of documents.
func (r *DocumentStore) Count(ctx context.Context) (int, error) {
	var total int
	if err := conn(ctx, r.db).QueryRowContext(ctx, `SELECT COUNT(*) FROM documents`).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
