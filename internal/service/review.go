package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"tutorapi/internal/model"
	"tutorapi/internal/repository"
)

const (
	correctFactor      = 0.9
	incorrectFactor    = 1.2
	defaultReviewLimit = 10
	maxReviewLimit     = 100
	maxReviewAttempts  = 3
)

// ApplyReview returns card after one review at now. A correct answer lowers
// difficulty by 10%, an incorrect one raises it by 20%, both clamped to
// [model.MinDifficulty, model.MaxDifficulty].
func ApplyReview(card model.Flashcard, correct bool, now time.Time) model.Flashcard {
	factor := incorrectFactor
	if correct {
		factor = correctFactor
		card.CorrectCount++
	} else {
		card.IncorrectCount++
	}
	card.Difficulty = math.Min(model.MaxDifficulty, math.Max(model.MinDifficulty, card.Difficulty*factor))
	card.LastReviewed = &now
	return card
}

// ReviewService reads flashcards and records review outcomes.
type ReviewService interface {
	Get(ctx context.Context, id string) (*model.Flashcard, error)
	ListByDocument(ctx context.Context, documentID string) ([]model.Flashcard, error)
	// Review applies one outcome to a card and returns its new state.
	Review(ctx context.Context, id string, correct bool) (*model.Flashcard, error)
	// ForReview lists up to limit cards, never reviewed first, then hardest.
	// A zero limit means the default of 10.
	ForReview(ctx context.Context, limit int) ([]model.ReviewCard, error)
}

type reviewService struct {
	docs    repository.DocumentRepository
	cards   repository.FlashcardRepository
	metrics *Metrics
	now     func() time.Time
}

// NewReviewService constructs a new ReviewService.
func NewReviewService(docs repository.DocumentRepository, cards repository.FlashcardRepository, metrics *Metrics) ReviewService {
	return &reviewService{docs: docs, cards: cards, metrics: metrics, now: func() time.Time { return time.Now().UTC() }}
}

func (s *reviewService) Get(ctx context.Context, id string) (*model.Flashcard, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	card, err := s.cards.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("flashcard")
		}
		return nil, err
	}
	return card, nil
}

func (s *reviewService) ListByDocument(ctx context.Context, documentID string) ([]model.Flashcard, error) {
	if _, err := findDocument(ctx, s.docs, documentID); err != nil {
		return nil, err
	}
	return s.cards.ListByDocument(ctx, documentID)
}

func (s *reviewService) Review(ctx context.Context, id string, correct bool) (*model.Flashcard, error) {
	for attempt := 0; attempt < maxReviewAttempts; attempt++ {
		card, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}

		next := ApplyReview(*card, correct, s.now())
		ok, err := s.cards.UpdateReview(ctx, &next, card.CorrectCount, card.IncorrectCount)
		if err != nil {
			return nil, fmt.Errorf("%w: update review: %v", ErrPersistence, err)
		}
		if ok {
			s.metrics.observeReview(correct)
			return &next, nil
		}
	}
	return nil, fmt.Errorf("%w: flashcard %s is being reviewed concurrently", ErrConflict, id)
}

func (s *reviewService) ForReview(ctx context.Context, limit int) ([]model.ReviewCard, error) {
	if limit == 0 {
		limit = defaultReviewLimit
	}
	if limit < 1 || limit > maxReviewLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, maxReviewLimit)
	}

	cards, err := s.cards.ListForReview(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]model.ReviewCard, 0, len(cards))
	for _, c := range cards {
		out = append(out, model.ReviewCard{ID: c.ID, Question: c.Question, Answer: c.Answer})
	}
	return out, nil
}
