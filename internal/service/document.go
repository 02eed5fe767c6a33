package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"mime"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"tutorapi/internal/extract"
	"tutorapi/internal/model"
	"tutorapi/internal/repository"
	"tutorapi/internal/storage"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// TextExtractor turns stored bytes into text for a document type tag.
type TextExtractor interface {
	Extract(ctx context.Context, docType string, content []byte) (string, error)
}

// DocumentListResult is the service-level DTO for paginated documents.
type DocumentListResult struct {
	Items []model.Document `json:"data"`
	Total int              `json:"total"`
}

// DocumentService defines the use cases for handling documents.
type DocumentService interface {
	// Upload stores the content, saves metadata to DB, and removes the stored object if the DB save fails.
	// Only .pdf, .docx, .csv and .txt names are accepted.
	Upload(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (*model.Document, error)

	// List returns documents using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*DocumentListResult, error)

	// Get returns a single document by its ID.
	Get(ctx context.Context, id string) (*model.Document, error)

	// Content returns the extracted text of a document.
	Content(ctx context.Context, id string) (string, error)

	// Delete removes the stored file, then the document with its concepts, flashcards and folder links.
	Delete(ctx context.Context, id string) error
}

type documentService struct {
	store storage.Storage
	repo  repository.DocumentRepository
	tx    repository.TransactionManager
	text  textLoader
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(store storage.Storage, repo repository.DocumentRepository, tx repository.TransactionManager, extractor TextExtractor) DocumentService {
	return &documentService{
		store: store,
		repo:  repo,
		tx:    tx,
		text:  textLoader{store: store, extractor: extractor},
	}
}

func (s *documentService) Upload(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (*model.Document, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	name := filepath.Base(strings.TrimSpace(originalFilename))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return nil, fmt.Errorf("%w: filename is required", ErrInvalidInput)
	}
	ext := strings.ToLower(filepath.Ext(name))
	docType := strings.TrimPrefix(ext, ".")
	if !model.IsSupportedType(docType) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, ext)
	}
	if contentType == "" {
		contentType = mime.TypeByExtension(ext)
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	id := uuid.New().String()
	key := path.Join("documents", id+ext)

	objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": name,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	doc := &model.Document{
		ID:          id,
		Name:        name,
		Type:        docType,
		StoragePath: objInfo.Key,
		Size:        objInfo.Size,
		ContentType: contentType,
		CreatedAt:   time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, doc)
	if err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

func (s *documentService) List(ctx context.Context, limit, offset int) (*DocumentListResult, error) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &DocumentListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *documentService) Get(ctx context.Context, id string) (*model.Document, error) {
	return findDocument(ctx, s.repo, id)
}

func (s *documentService) Content(ctx context.Context, id string) (string, error) {
	doc, err := findDocument(ctx, s.repo, id)
	if err != nil {
		return "", err
	}
	return s.text.load(ctx, doc)
}

func (s *documentService) Delete(ctx context.Context, id string) error {
	doc, err := findDocument(ctx, s.repo, id)
	if err != nil {
		return err
	}
	// Storage first: a failure here leaves the row so the delete can be retried.
	if err := s.store.Delete(ctx, doc.StoragePath); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	if err := s.tx.ExecTx(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	}); err != nil {
		return fmt.Errorf("%w: delete document: %v", ErrPersistence, err)
	}
	return nil
}

// findDocument maps a missing row to ErrNotFound.
func findDocument(ctx context.Context, repo repository.DocumentRepository, id string) (*model.Document, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	doc, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("document")
		}
		return nil, err
	}
	return doc, nil
}

// textLoader reads a document's stored bytes and extracts its text.
type textLoader struct {
	store     storage.Storage
	extractor TextExtractor
}

func (l textLoader) load(ctx context.Context, doc *model.Document) (string, error) {
	b, err := storage.ReadAll(ctx, l.store, doc.StoragePath)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return "", notFound("stored file")
		}
		return "", fmt.Errorf("%w: read stored file: %v", ErrPersistence, err)
	}
	text, err := l.extractor.Extract(ctx, doc.Type, b)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedType) {
			return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return "", fmt.Errorf("%w: extract text: %v", ErrUpstream, err)
	}
	return text, nil
}
