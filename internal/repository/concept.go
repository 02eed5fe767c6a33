package repository

import (
	"context"

	"tutorapi/internal/model"
)

// ConceptRepository persists concepts derived from documents.
type ConceptRepository interface {
	// CreateBatch inserts all concepts; callers wrap it in a transaction for atomicity.
	CreateBatch(ctx context.Context, concepts []model.Concept) error

	// ListByDocument returns concepts ordered by importance (high first) then title.
	ListByDocument(ctx context.Context, documentID string) ([]model.Concept, error)

	// Count returns the number of stored concepts.
	Count(ctx context.Context) (int, error)
}
