package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tutorapi/internal/repository"
)

// MockTransactionManager records ExecTx and runs fn unless an error is configured.
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) ExecTx(ctx context.Context, fn repository.TxFn) error {
	args := m.Called(ctx, fn)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx)
}
