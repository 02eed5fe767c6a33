package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tutorapi/internal/model"
)

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) ExtractConcepts(ctx context.Context, text, documentID string) ([]model.Concept, error) {
	args := m.Called(ctx, text, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Concept), args.Error(1)
}

func (m *MockGenerator) GenerateFlashcards(ctx context.Context, concept model.Concept) ([]model.Flashcard, error) {
	args := m.Called(ctx, concept)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Flashcard), args.Error(1)
}

func (m *MockGenerator) StudyPlan(ctx context.Context, concepts []model.Concept) (string, error) {
	args := m.Called(ctx, concepts)
	return args.String(0), args.Error(1)
}

func (m *MockGenerator) Quiz(ctx context.Context, concepts []model.Concept, n int) ([]model.QuizQuestion, error) {
	args := m.Called(ctx, concepts, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.QuizQuestion), args.Error(1)
}
