package repository

import (
	"context"

	"tutorapi/internal/model"
)

// DocumentRepository defines data access for documents using SQL queries only.
// Persistence only; no business rules.
type DocumentRepository interface {
	// Create inserts a new document record and returns the stored row.
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// FindByID returns a document by its ID, or sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.Document, error)

	// List returns a paginated list of documents, newest first, and the total row count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Document], error)

	// MarkProcessed flips processed to true. It reports false when the row was
	// missing or already processed, leaving the row untouched.
	MarkProcessed(ctx context.Context, id string) (bool, error)

	// Delete removes a document together with its flashcards, concepts and folder links.
	// It returns nil if the row did not exist.
	Delete(ctx context.Context, id string) error

	// Count returns the number of stored documents.
	Count(ctx context.Context) (int, error)
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
