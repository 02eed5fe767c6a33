package sqlstore

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"tutorapi/internal/model"
	"tutorapi/internal/repository"
)

// FolderStore is a sqlx implementation of repository.FolderRepository.
// Folder rows map straight onto model.Folder through db tags.
type FolderStore struct {
	db *sqlx.DB
}

// NewFolderStore wraps db for struct scanning. driverName picks the bind style.
func NewFolderStore(db *sql.DB, driverName string) *FolderStore {
	return &FolderStore{db: sqlx.NewDb(db, driverName)}
}

var _ repository.FolderRepository = (*FolderStore)(nil)

func (r *FolderStore) ext(ctx context.Context) sqlx.ExtContext {
	if tx, ok := repository.TxFromContext(ctx); ok {
		return &sqlx.Tx{Tx: tx, Mapper: r.db.Mapper}
	}
	return r.db
}

// Create inserts a folder.
func (r *FolderStore) Create(ctx context.Context, f *model.Folder) (*model.Folder, error) {
	const q = `
		INSERT INTO folders (id, name, user_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, user_id, created_at
	`
	var out model.Folder
	if err := sqlx.GetContext(ctx, r.ext(ctx), &out, q, f.ID, f.Name, f.UserID, f.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single folder by its ID.
func (r *FolderStore) FindByID(ctx context.Context, id string) (*model.Folder, error) {
	var out model.Folder
	const q = `SELECT id, name, user_id, created_at FROM folders WHERE id = $1`
	if err := sqlx.GetContext(ctx, r.ext(ctx), &out, q, id); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByUser returns the folders owned by userID, oldest first.
func (r *FolderStore) ListByUser(ctx context.Context, userID string) ([]model.Folder, error) {
	out := make([]model.Folder, 0)
	const q = `SELECT id, name, user_id, created_at FROM folders WHERE user_id = $1 ORDER BY created_at ASC, id ASC`
	if err := sqlx.SelectContext(ctx, r.ext(ctx), &out, q, userID); err != nil {
		return nil, err
	}
	return out, nil
}

// AddDocument links a document to a folder. An existing link is left untouched.
func (r *FolderStore) AddDocument(ctx context.Context, folderID, documentID string) (bool, error) {
	var n int
	const qExists = `SELECT COUNT(*) FROM document_folders WHERE folder_id = $1 AND document_id = $2`
	if err := sqlx.GetContext(ctx, r.ext(ctx), &n, qExists, folderID, documentID); err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	const qInsert = `INSERT INTO document_folders (document_id, folder_id) VALUES ($1, $2)`
	if _, err := r.ext(ctx).ExecContext(ctx, qInsert, documentID, folderID); err != nil {
		return false, err
	}
	return true, nil
}

// ListDocuments returns the documents linked to a folder, newest first.
func (r *FolderStore) ListDocuments(ctx context.Context, folderID string) ([]model.Document, error) {
	const q = `
		SELECT d.id, d.name, d.type, d.storage_path, d.size, d.content_type, d.created_at, d.processed
		FROM documents d
		JOIN document_folders df ON df.document_id = d.id
		WHERE df.folder_id = $1
		ORDER BY d.created_at DESC, d.id DESC
	`
	rows, err := r.ext(ctx).QueryContext(ctx, q, folderID)
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
	return items, rows.Err()
}

// Delete removes a folder and its document links. The documents themselves stay.
func (r *FolderStore) Delete(ctx context.Context, id string) error {
	e := r.ext(ctx)
	if _, err := e.ExecContext(ctx, `DELETE FROM document_folders WHERE folder_id = $1`, id); err != nil {
		return err
	}
	_, err := e.ExecContext(ctx, `DELETE FROM folders WHERE id = $1`, id)
	return err
}
