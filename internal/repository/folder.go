package repository

import (
	"context"

	"tutorapi/internal/model"
)

// FolderRepository persists user folders and document links.
type FolderRepository interface {
	Create(ctx context.Context, f *model.Folder) (*model.Folder, error)
	// FindByID returns a folder by its ID, or sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.Folder, error)
	ListByUser(ctx context.Context, userID string) ([]model.Folder, error)
	// AddDocument links a document to a folder. It reports false when the link already exists.
	AddDocument(ctx context.Context, folderID, documentID string) (bool, error)
	ListDocuments(ctx context.Context, folderID string) ([]model.Document, error)
	Delete(ctx context.Context, id string) error
}
