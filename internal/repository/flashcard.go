package repository

import (
	"context"
	"time"

	"tutorapi/internal/model"
)

// ReviewStats aggregates review counters over all flashcards.
type ReviewStats struct {
	Correct   int
	Incorrect int
}

// FlashcardRepository persists flashcards and their review state.
type FlashcardRepository interface {
	// CreateBatch inserts all flashcards; callers wrap it in a transaction for atomicity.
	CreateBatch(ctx context.Context, cards []model.Flashcard) error

	// FindByID returns a flashcard by its ID, or sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.Flashcard, error)

	// ListByDocument returns cards ordered by difficulty descending, then least recently reviewed.
	ListByDocument(ctx context.Context, documentID string) ([]model.Flashcard, error)

	// ListForReview returns up to limit cards: never reviewed first, then hardest, random among ties.
	ListForReview(ctx context.Context, limit int) ([]model.Flashcard, error)

	// UpdateReview stores the review state of card if its counters still equal the
	// expected previous values. It reports false when another review got there first.
	UpdateReview(ctx context.Context, card *model.Flashcard, prevCorrect, prevIncorrect int) (bool, error)

	// Stats sums the review counters of every card.
	Stats(ctx context.Context) (ReviewStats, error)

	// ReviewTimes returns the last-reviewed timestamps of all reviewed cards.
	ReviewTimes(ctx context.Context) ([]time.Time, error)
}
