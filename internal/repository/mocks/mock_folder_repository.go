package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tutorapi/internal/model"
)

type MockFolderRepository struct {
	mock.Mock
}

func (m *MockFolderRepository) Create(ctx context.Context, f *model.Folder) (*model.Folder, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Folder), args.Error(1)
}

func (m *MockFolderRepository) FindByID(ctx context.Context, id string) (*model.Folder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Folder), args.Error(1)
}

func (m *MockFolderRepository) ListByUser(ctx context.Context, userID string) ([]model.Folder, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Folder), args.Error(1)
}

func (m *MockFolderRepository) AddDocument(ctx context.Context, folderID, documentID string) (bool, error) {
	args := m.Called(ctx, folderID, documentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFolderRepository) ListDocuments(ctx context.Context, folderID string) ([]model.Document, error) {
	args := m.Called(ctx, folderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}

func (m *MockFolderRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
