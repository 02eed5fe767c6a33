package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tutorapi/internal/model"
	"tutorapi/internal/service"
)

type MockFolderService struct {
	mock.Mock
}

func (m *MockFolderService) Create(ctx context.Context, req service.CreateFolderRequest) (*model.Folder, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Folder), args.Error(1)
}

func (m *MockFolderService) List(ctx context.Context, userID string) ([]model.Folder, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Folder), args.Error(1)
}

func (m *MockFolderService) Delete(ctx context.Context, userID, folderID string) error {
	args := m.Called(ctx, userID, folderID)
	return args.Error(0)
}

func (m *MockFolderService) AddDocument(ctx context.Context, userID, folderID, documentID string) error {
	args := m.Called(ctx, userID, folderID, documentID)
	return args.Error(0)
}

func (m *MockFolderService) Documents(ctx context.Context, userID, folderID string) ([]model.Document, error) {
	args := m.Called(ctx, userID, folderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}
