package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"

	"tutorapi/internal/model"
	"tutorapi/internal/repository"
)

// ConceptStore is a SQL implementation of repository.ConceptRepository.
type ConceptStore struct {
	db *sql.DB
}

// NewConceptStore creates a new ConceptStore repository.
func NewConceptStore(db *sql.DB) *ConceptStore {
	return &ConceptStore{db: db}
}

var _ repository.ConceptRepository = (*ConceptStore)(nil)

// CreateBatch inserts every concept. Related concept ids are stored as a JSON array, or NULL when empty.
func (r *ConceptStore) CreateBatch(ctx context.Context, concepts []model.Concept) error {
	const q = `
		INSERT INTO concepts (id, document_id, title, explanation, importance, related_concepts)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	c := conn(ctx, r.db)
	for _, concept := range concepts {
		var related sql.NullString
		if len(concept.RelatedConcepts) > 0 {
			b, err := json.Marshal(concept.RelatedConcepts)
			if err != nil {
				return err
			}
			related = sql.NullString{String: string(b), Valid: true}
		}
		if _, err := c.ExecContext(ctx, q,
			concept.ID,
			concept.DocumentID,
			concept.Title,
			concept.Explanation,
			concept.Importance,
			related,
		); err != nil {
			return err
		}
	}
	return nil
}

// ListByDocument returns concepts ranked high, medium, low and then by title.
func (r *ConceptStore) ListByDocument(ctx context.Context, documentID string) ([]model.Concept, error) {
	const q = `
		SELECT id, document_id, title, explanation, importance, related_concepts
		FROM concepts
		WHERE document_id = $1
		ORDER BY CASE importance WHEN 'high' THEN 3 WHEN 'medium' THEN 2 ELSE 1 END DESC, title ASC
	`
	rows, err := conn(ctx, r.db).QueryContext(ctx, q, documentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Concept, 0)
	for rows.Next() {
		var (
			cpt     model.Concept
			related sql.NullString
		)
		if err := rows.Scan(
			&cpt.ID,
			&cpt.DocumentID,
			&cpt.Title,
			&cpt.Explanation,
			&cpt.Importance,
			&related,
		); err != nil {
			return nil, err
		}
		cpt.RelatedConcepts = []string{}
		if related.Valid && related.String != "" {
			if err := json.Unmarshal([]byte(related.String), &cpt.RelatedConcepts); err != nil {
				return nil, err
			}
		}
		items = append(items, cpt)
	}
	return items, rows.Err()
}

// Count returns the number of concepts.
func (r *ConceptStore) Count(ctx context.Context) (int, error) {
	var total int
	if err := conn(ctx, r.db).QueryRowContext(ctx, `SELECT COUNT(*) FROM concepts`).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
