package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tutorapi/internal/model"
)

type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) Get(ctx context.Context, id string) (*model.Flashcard, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Flashcard), args.Error(1)
}

func (m *MockReviewService) ListByDocument(ctx context.Context, documentID string) ([]model.Flashcard, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Flashcard), args.Error(1)
}

func (m *MockReviewService) Review(ctx context.Context, id string, correct bool) (*model.Flashcard, error) {
	args := m.Called(ctx, id, correct)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Flashcard), args.Error(1)
}

func (m *MockReviewService) ForReview(ctx context.Context, limit int) ([]model.ReviewCard, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ReviewCard), args.Error(1)
}
