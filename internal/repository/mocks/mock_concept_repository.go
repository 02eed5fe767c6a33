package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tutorapi/internal/model"
)

type MockConceptRepository struct {
	mock.Mock
}

func (m *MockConceptRepository) CreateBatch(ctx context.Context, concepts []model.Concept) error {
	args := m.Called(ctx, concepts)
	return args.Error(0)
}

func (m *MockConceptRepository) ListByDocument(ctx context.Context, documentID string) ([]model.Concept, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Concept), args.Error(1)
}

func (m *MockConceptRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
