package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"tutorapi/internal/model"
	"tutorapi/internal/repository"
)

type MockFlashcardRepository struct {
	mock.Mock
}

func (m *MockFlashcardRepository) CreateBatch(ctx context.Context, cards []model.Flashcard) error {
	args := m.Called(ctx, cards)
	return args.Error(0)
}

func (m *MockFlashcardRepository) FindByID(ctx context.Context, id string) (*model.Flashcard, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Flashcard), args.Error(1)
}

func (m *MockFlashcardRepository) ListByDocument(ctx context.Context, documentID string) ([]model.Flashcard, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Flashcard), args.Error(1)
}

func (m *MockFlashcardRepository) ListForReview(ctx context.Context, limit int) ([]model.Flashcard, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Flashcard), args.Error(1)
}

func (m *MockFlashcardRepository) UpdateReview(ctx context.Context, card *model.Flashcard, prevCorrect, prevIncorrect int) (bool, error) {
	args := m.Called(ctx, card, prevCorrect, prevIncorrect)
	return args.Bool(0), args.Error(1)
}

func (m *MockFlashcardRepository) Stats(ctx context.Context) (repository.ReviewStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(repository.ReviewStats), args.Error(1)
}

func (m *MockFlashcardRepository) ReviewTimes(ctx context.Context) ([]time.Time, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}
