package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"tutorapi/internal/model"
	"tutorapi/internal/repository"
)

const maxFolderNameLength = 100

// CreateFolderRequest carries the input of FolderService.Create.
type CreateFolderRequest struct {
	UserID string
	Name   string
}

func (r *CreateFolderRequest) validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.UserID, validation.Required),
		validation.Field(&r.Name, validation.Required, validation.Length(1, maxFolderNameLength)),
	)
}

// FolderService manages a user's folders. Folders of other users read as missing.
type FolderService interface {
	Create(ctx context.Context, req CreateFolderRequest) (*model.Folder, error)
	List(ctx context.Context, userID string) ([]model.Folder, error)
	Delete(ctx context.Context, userID, folderID string) error
	// AddDocument links a document to a folder; a second link fails with ErrConflict.
	AddDocument(ctx context.Context, userID, folderID, documentID string) error
	Documents(ctx context.Context, userID, folderID string) ([]model.Document, error)
}

type folderService struct {
	folders repository.FolderRepository
	docs    repository.DocumentRepository
	tx      repository.TransactionManager
}

// NewFolderService constructs a new FolderService.
func NewFolderService(folders repository.FolderRepository, docs repository.DocumentRepository, tx repository.TransactionManager) FolderService {
	return &folderService{folders: folders, docs: docs, tx: tx}
}

func (s *folderService) Create(ctx context.Context, req CreateFolderRequest) (*model.Folder, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := req.validate(); err != nil {
		return nil, invalid(err)
	}
	return s.folders.Create(ctx, &model.Folder{
		ID:        uuid.New().String(),
		Name:      req.Name,
		UserID:    req.UserID,
		CreatedAt: time.Now().UTC(),
	})
}

func (s *folderService) List(ctx context.Context, userID string) ([]model.Folder, error) {
	return s.folders.ListByUser(ctx, userID)
}

// owned returns the folder when it exists and belongs to userID.
func (s *folderService) owned(ctx context.Context, userID, folderID string) (*model.Folder, error) {
	if folderID == "" {
		return nil, ErrIDRequired
	}
	f, err := s.folders.FindByID(ctx, folderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("folder")
		}
		return nil, err
	}
	if f.UserID != userID {
		return nil, notFound("folder")
	}
	return f, nil
}

func (s *folderService) Delete(ctx context.Context, userID, folderID string) error {
	if _, err := s.owned(ctx, userID, folderID); err != nil {
		return err
	}
	if err := s.tx.ExecTx(ctx, func(ctx context.Context) error {
		return s.folders.Delete(ctx, folderID)
	}); err != nil {
		return fmt.Errorf("%w: delete folder: %v", ErrPersistence, err)
	}
	return nil
}

func (s *folderService) AddDocument(ctx context.Context, userID, folderID, documentID string) error {
	if _, err := s.owned(ctx, userID, folderID); err != nil {
		return err
	}
	if _, err := findDocument(ctx, s.docs, documentID); err != nil {
		return err
	}
	added, err := s.folders.AddDocument(ctx, folderID, documentID)
	if err != nil {
		return err
	}
	if !added {
		return fmt.Errorf("%w: document already in folder", ErrConflict)
	}
	return nil
}

func (s *folderService) Documents(ctx context.Context, userID, folderID string) ([]model.Document, error) {
	if _, err := s.owned(ctx, userID, folderID); err != nil {
		return nil, err
	}
	return s.folders.ListDocuments(ctx, folderID)
}
