package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tutorapi/internal/service"
)

type MockProcessingService struct {
	mock.Mock
}

func (m *MockProcessingService) Process(ctx context.Context, documentID string) (*service.ProcessResult, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProcessResult), args.Error(1)
}
