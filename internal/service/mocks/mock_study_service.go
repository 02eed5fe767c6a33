package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tutorapi/internal/model"
	"tutorapi/internal/service"
)

type MockStudyService struct {
	mock.Mock
}

func (m *MockStudyService) Concepts(ctx context.Context, documentID string) ([]model.Concept, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Concept), args.Error(1)
}

func (m *MockStudyService) StudyPlan(ctx context.Context, documentID string) (string, error) {
	args := m.Called(ctx, documentID)
	return args.String(0), args.Error(1)
}

func (m *MockStudyService) Quiz(ctx context.Context, documentID string, n int) ([]model.QuizQuestion, error) {
	args := m.Called(ctx, documentID, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.QuizQuestion), args.Error(1)
}

func (m *MockStudyService) ExportFlashcards(ctx context.Context, documentID, format string) (*service.Export, error) {
	args := m.Called(ctx, documentID, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Export), args.Error(1)
}

func (m *MockStudyService) ExportSummary(ctx context.Context, documentID string) (*service.Export, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Export), args.Error(1)
}

func (m *MockStudyService) Progress(ctx context.Context) (*model.StudyProgress, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StudyProgress), args.Error(1)
}

func (m *MockStudyService) ProbeAI(ctx context.Context) *service.AIProbeResult {
	args := m.Called(ctx)
	return args.Get(0).(*service.AIProbeResult)
}
