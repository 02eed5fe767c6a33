package sqlstore

import (
	"context"
	"database/sql"
	"time"

	"tutorapi/internal/model"
	"tutorapi/internal/repository"
)

// FlashcardStore is a SQL implementation of repository.FlashcardRepository.
type FlashcardStore struct {
	db *sql.DB
}

// NewFlashcardStore creates a new FlashcardStore repository.
func NewFlashcardStore(db *sql.DB) *FlashcardStore {
	return &FlashcardStore{db: db}
}

var _ repository.FlashcardRepository = (*FlashcardStore)(nil)

const flashcardColumns = `id, concept_id, document_id, question, answer, difficulty, last_reviewed, correct_count, incorrect_count`

func scanFlashcard(s scanner) (*model.Flashcard, error) {
	var (
		c            model.Flashcard
		conceptID    sql.NullString
		lastReviewed sql.NullTime
	)
	if err := s.Scan(
		&c.ID,
		&conceptID,
		&c.DocumentID,
		&c.Question,
		&c.Answer,
		&c.Difficulty,
		&lastReviewed,
		&c.CorrectCount,
		&c.IncorrectCount,
	); err != nil {
		return nil, err
	}
	if conceptID.Valid {
		c.ConceptID = &conceptID.String
	}
	if lastReviewed.Valid {
		t := lastReviewed.Time
		c.LastReviewed = &t
	}
	return &c, nil
}

func (r *FlashcardStore) query(ctx context.Context, q string, args ...any) ([]model.Flashcard, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Flashcard, 0)
	for rows.Next() {
		c, err := scanFlashcard(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// CreateBatch inserts every flashcard.
func (r *FlashcardStore) CreateBatch(ctx context.Context, cards []model.Flashcard) error {
	const q = `
		INSERT INTO flashcards (id, concept_id, document_id, question, answer, difficulty, last_reviewed, correct_count, incorrect_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	c := conn(ctx, r.db)
	for _, card := range cards {
		var conceptID sql.NullString
		if card.ConceptID != nil {
			conceptID = sql.NullString{String: *card.ConceptID, Valid: true}
		}
		var lastReviewed sql.NullTime
		if card.LastReviewed != nil {
			lastReviewed = sql.NullTime{Time: *card.LastReviewed, Valid: true}
		}
		if _, err := c.ExecContext(ctx, q,
			card.ID,
			conceptID,
			card.DocumentID,
			card.Question,
			card.Answer,
			card.Difficulty,
			lastReviewed,
			card.CorrectCount,
			card.IncorrectCount,
		); err != nil {
			return err
		}
	}
	return nil
}

// FindByID fetches a single flashcard by its ID.
func (r *FlashcardStore) FindByID(ctx context.Context, id string) (*model.Flashcard, error) {
	const q = `SELECT ` + flashcardColumns + ` FROM flashcards WHERE id = $1`
	return scanFlashcard(conn(ctx, r.db).QueryRowContext(ctx, q, id))
}

// ListByDocument returns the cards of a document, hardest first.
func (r *FlashcardStore) ListByDocument(ctx context.Context, documentID string) ([]model.Flashcard, error) {
	const q = `
		SELECT ` + flashcardColumns + `
		FROM flashcards
		WHERE document_id = $1
		ORDER BY difficulty DESC, last_reviewed ASC NULLS FIRST
	`
	return r.query(ctx, q, documentID)
}

// ListForReview returns cards due for review across all documents.
func (r *FlashcardStore) ListForReview(ctx context.Context, limit int) ([]model.Flashcard, error) {
	const q = `
		SELECT ` + flashcardColumns + `
		FROM flashcards
		ORDER BY CASE WHEN last_reviewed IS NULL THEN 1 ELSE 0 END DESC, difficulty DESC, random()
		LIMIT $1
	`
	return r.query(ctx, q, limit)
}

// UpdateReview writes the new review state guarded by the previous counters.
func (r *FlashcardStore) UpdateReview(ctx context.Context, card *model.Flashcard, prevCorrect, prevIncorrect int) (bool, error) {
	const q = `
		UPDATE flashcards
		SET difficulty = $1, last_reviewed = $2, correct_count = $3, incorrect_count = $4
		WHERE id = $5 AND correct_count = $6 AND incorrect_count = $7
	`
	var lastReviewed sql.NullTime
	if card.LastReviewed != nil {
		lastReviewed = sql.NullTime{Time: *card.LastReviewed, Valid: true}
	}
	res, err := conn(ctx, r.db).ExecContext(ctx, q,
		card.Difficulty,
		lastReviewed,
		card.CorrectCount,
		card.IncorrectCount,
		card.ID,
		prevCorrect,
		prevIncorrect,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// Stats sums review counters over all cards.
func (r *FlashcardStore) Stats(ctx context.Context) (repository.ReviewStats, error) {
	const q = `SELECT COALESCE(SUM(correct_count), 0), COALESCE(SUM(incorrect_count), 0) FROM flashcards`
	var s repository.ReviewStats
	if err := conn(ctx, r.db).QueryRowContext(ctx, q).Scan(&s.Correct, &s.Incorrect); err != nil {
		return repository.ReviewStats{}, err
	}
	return s, nil
}

// ReviewTimes returns the last_reviewed value of every reviewed card.
func (r *FlashcardStore) ReviewTimes(ctx context.Context) ([]time.Time, error) {
	const q = `SELECT last_reviewed FROM flashcards WHERE last_reviewed IS NOT NULL`
	rows, err := conn(ctx, r.db).QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]time.Time, 0)
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
